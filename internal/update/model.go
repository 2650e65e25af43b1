package update

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/rs/zerolog"
	"github.com/sandeepkv93/vibetask/internal/model"
)

type Pane string

const (
	PaneComposer Pane = "composer"
	PaneTasks    Pane = "tasks"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// TaskStore is the persistence boundary: the full list in, the full list out.
type TaskStore interface {
	Load(ctx context.Context) ([]model.Task, error)
	Save(ctx context.Context, tasks []model.Task) error
}

type Options struct {
	Store          TaskStore
	Opener         URLOpener
	IDs            model.IDSource
	Clock          func() time.Time
	Logger         zerolog.Logger
	ExportDir      string
	// DefaultUrgency is where the slider starts and returns after each add;
	// nil means model.DefaultUrgency.
	DefaultUrgency *model.UrgencyLevel
}

type Model struct {
	Focus       Pane
	Tasks       []model.Task
	Cursor      int
	Urgency     model.UrgencyLevel
	Loaded      bool
	Palette     CommandPaletteState
	HelpVisible bool
	Status      StatusBar
	Quitting    bool
	LastError   error

	defaultUrgency model.UrgencyLevel
	exportDir      string
	saveSeq        uint64
	saveBlocked    bool
	saver          *saver
	opener         URLOpener
	ids            model.IDSource
	clock          func() time.Time
	log            zerolog.Logger

	nameInput    textinput.Model
	commandInput textinput.Model
	slider       progress.Model
	taskTable    table.Model
	helpModel    help.Model
}

func NewModel(opts Options) Model {
	if opts.Opener == nil {
		opts.Opener = NoopURLOpener{}
	}
	if opts.IDs == nil {
		opts.IDs = model.NewULIDSource()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	start := model.DefaultUrgency
	if opts.DefaultUrgency != nil && opts.DefaultUrgency.IsValid() {
		start = *opts.DefaultUrgency
	}
	exportDir := strings.TrimSpace(opts.ExportDir)
	if exportDir == "" {
		exportDir = "."
	}

	m := Model{
		Focus:          PaneComposer,
		Tasks:          []model.Task{},
		Urgency:        start,
		Loaded:         opts.Store == nil,
		defaultUrgency: start,
		exportDir:      exportDir,
		saver:          newSaver(opts.Store),
		opener:         opts.Opener,
		ids:            opts.IDs,
		clock:          opts.Clock,
		log:            opts.Logger,
	}
	m.initBubbleComponents()
	m.syncBubbleData()
	return m
}

func (m *Model) initBubbleComponents() {
	m.nameInput = textinput.New()
	m.nameInput.Placeholder = "What needs to be done?"
	m.nameInput.Prompt = "task> "
	m.nameInput.CharLimit = 256
	m.nameInput.Width = 40
	m.nameInput.Focus()

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	cols := []table.Column{
		{Title: "", Width: 2},
		{Title: "Task", Width: 30},
		{Title: "Due", Width: 24},
	}
	m.taskTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithHeight(10))

	m.helpModel = help.New()
}

func (m *Model) syncBubbleData() {
	m.slider = progress.New(
		progress.WithSolidFill(model.UrgencyColor(m.Urgency)),
		progress.WithWidth(24),
		progress.WithoutPercentage(),
	)

	now := m.now()
	rows := make([]table.Row, 0, len(m.Tasks))
	for _, task := range m.Tasks {
		rows = append(rows, table.Row{
			model.UrgencyEmoji(task.UrgencyLevel),
			task.Name,
			model.FormatDue(task.DueDate, now),
		})
	}
	m.taskTable.SetRows(rows)
	m.clampCursor()
	if len(rows) > 0 {
		m.taskTable.SetCursor(m.Cursor)
	}

	if m.Focus == PaneTasks && !m.Palette.Active {
		m.taskTable.Focus()
	} else {
		m.taskTable.Blur()
	}
	if m.Focus == PaneComposer && !m.Palette.Active {
		m.nameInput.Focus()
	} else {
		m.nameInput.Blur()
	}
	if m.Palette.Active {
		m.commandInput.Focus()
	} else {
		m.commandInput.Blur()
	}
}

func (m *Model) clampCursor() {
	if m.Cursor >= len(m.Tasks) {
		m.Cursor = len(m.Tasks) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

func (m Model) now() time.Time {
	if m.clock == nil {
		return time.Now()
	}
	return m.clock()
}

func (m Model) selectedTask() (model.Task, bool) {
	if len(m.Tasks) == 0 || m.Cursor < 0 || m.Cursor >= len(m.Tasks) {
		return model.Task{}, false
	}
	return m.Tasks[m.Cursor], true
}

// NameInput exposes the composer's current text.
func (m Model) NameInput() string {
	return m.nameInput.Value()
}
