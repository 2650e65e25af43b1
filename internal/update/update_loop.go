package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/vibetask/internal/model"
	"github.com/sandeepkv93/vibetask/internal/views"
)

func (m Model) Init() tea.Cmd {
	return m.loadTasksCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.syncBubbleData()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)
	case TasksLoadedMsg:
		return m.onTasksLoaded(typed)
	case TasksSavedMsg:
		return m.onTasksSaved(typed), nil
	case LinkOpenedMsg:
		return m.onLinkOpened(typed), nil
	case ExportedMsg:
		return m.onExported(typed), nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	keyStr := msg.String()
	if keyStr == "ctrl+c" {
		m.Quitting = true
		return m, tea.Quit
	}
	if m.Palette.Active {
		return m.handlePaletteKey(msg)
	}

	switch keyStr {
	case "tab":
		if m.Focus == PaneComposer {
			m.Focus = PaneTasks
		} else {
			m.Focus = PaneComposer
		}
		return m, nil
	}

	if m.Focus == PaneComposer {
		return m.handleComposerKey(msg)
	}
	return m.handleTaskListKey(msg)
}

func (m Model) handleComposerKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		next, cmd, _ := m.addTask(m.nameInput.Value(), m.Urgency)
		return next, cmd
	case "up":
		m.Urgency = model.ClampUrgency(int(m.Urgency) + 1)
		return m, nil
	case "down":
		m.Urgency = model.ClampUrgency(int(m.Urgency) - 1)
		return m, nil
	case "pgup":
		m.Urgency = model.ClampUrgency(int(m.Urgency) + 10)
		return m, nil
	case "pgdown":
		m.Urgency = model.ClampUrgency(int(m.Urgency) - 10)
		return m, nil
	}
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m Model) handleTaskListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.Cursor < len(m.Tasks)-1 {
			m.Cursor++
		}
	case "k", "up":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "d", "delete", "backspace":
		return m.deleteSelected()
	case "o":
		if task, ok := m.selectedTask(); ok {
			m.Status = StatusBar{Text: fmt.Sprintf("opening %q in Google Calendar", task.Name)}
			return m, openLinkCmd(m.opener, task)
		}
	case "e":
		if task, ok := m.selectedTask(); ok {
			return m, exportICSCmd(m.exportDir, task)
		}
	case "/":
		return m.openPalette(), nil
	case "?":
		m.HelpVisible = !m.HelpVisible
		if m.HelpVisible {
			m.Status = StatusBar{Text: "help shown"}
		} else {
			m.Status = StatusBar{Text: "help hidden"}
		}
	case "q":
		m.Quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}
	if !m.Loaded {
		status = "status: loading tasks..."
	}

	return views.RenderApp(views.AppData{
		Title:        "Vibe Task Scheduler",
		Subtitle:     "Schedule by feeling, not by thinking",
		LeftPane:     m.renderComposer() + m.renderHelpIfVisible(),
		RightPane:    m.renderTaskList(),
		StatusLine:   status,
		StatusError:  m.Status.IsError,
		Notification: views.RenderCommandPalette(m.Palette.Active, m.Palette.Input),
		Footer:       "keys: tab switch pane | list: / cmd, ? help, q quit | ctrl+c quit",
	})
}

func (m Model) renderComposer() string {
	c := model.ClassifyUrgency(m.Urgency)
	return views.RenderComposerPanel(views.ComposerPanelData{
		InputView:  m.nameInput.View(),
		Focused:    m.Focus == PaneComposer,
		Emoji:      c.Emoji,
		Label:      c.Label,
		Color:      c.Color,
		SliderView: m.slider.ViewAs(float64(m.Urgency) / float64(model.MaxUrgency)),
		Urgency:    int(m.Urgency),
	})
}

func (m Model) renderTaskList() string {
	data := views.TaskListPanelData{
		TableView: m.taskTable.View(),
		Count:     len(m.Tasks),
		Focused:   m.Focus == PaneTasks,
	}
	if task, ok := m.selectedTask(); ok && m.Focus == PaneTasks {
		c := task.Classification()
		data.Selected = &views.TaskDetailData{
			ID:      task.ID,
			Name:    task.Name,
			Label:   c.Label,
			Color:   c.Color,
			Due:     model.FormatDue(task.DueDate, m.now()),
			DueUTC:  task.DueDate.UTC().Format("2006-01-02 15:04Z"),
			CalLink: task.CalLink,
		}
	}
	return views.RenderTaskListPanel(data)
}
