package update

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/vibetask/internal/commands"
	"github.com/sandeepkv93/vibetask/internal/model"
)

type TasksLoadedMsg struct {
	Tasks []model.Task
	Err   error
}

type TasksSavedMsg struct {
	Seq     uint64
	Skipped bool
	Err     error
}

func (m Model) loadTasksCmd() tea.Cmd {
	store := m.saver.store
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		tasks, err := store.Load(context.Background())
		return TasksLoadedMsg{Tasks: tasks, Err: err}
	}
}

// persist snapshots the collection for a background save. Nothing is written
// until the initial load lands, and nothing at all after a failed load, so the
// stored list cannot be clobbered by a partial one.
func (m *Model) persist() tea.Cmd {
	if !m.Loaded || m.saveBlocked || m.saver.store == nil {
		return nil
	}
	m.saveSeq++
	seq := m.saveSeq
	snapshot := append([]model.Task(nil), m.Tasks...)
	s := m.saver
	return func() tea.Msg {
		skipped, err := s.save(context.Background(), seq, snapshot)
		return TasksSavedMsg{Seq: seq, Skipped: skipped, Err: err}
	}
}

func (m Model) onTasksLoaded(msg TasksLoadedMsg) (Model, tea.Cmd) {
	m.Loaded = true
	if msg.Err != nil {
		m.saveBlocked = true
		m.log.Error().Err(msg.Err).Msg("load tasks; saving disabled for this session")
		m.Status = StatusBar{Text: fmt.Sprintf("could not load tasks, changes will not be saved: %v", msg.Err), IsError: true}
		m.LastError = msg.Err
		return m, nil
	}

	// Tasks created while loading are newer than anything stored.
	early := m.Tasks
	merged := make([]model.Task, 0, len(early)+len(msg.Tasks))
	merged = append(merged, early...)
	for _, t := range msg.Tasks {
		if _, dup := model.Find(early, t.ID); dup {
			continue
		}
		merged = append(merged, t)
	}
	m.Tasks = merged
	m.log.Debug().Int("loaded", len(msg.Tasks)).Int("pending", len(early)).Msg("tasks loaded")
	if len(early) == 0 {
		return m, nil
	}
	save := m.persist()
	return m, save
}

func (m Model) onTasksSaved(msg TasksSavedMsg) Model {
	if msg.Err != nil {
		m.log.Error().Err(msg.Err).Uint64("seq", msg.Seq).Msg("save tasks")
		m.Status = StatusBar{Text: fmt.Sprintf("could not save tasks: %v", msg.Err), IsError: true}
		m.LastError = msg.Err
		return m
	}
	if msg.Skipped {
		m.log.Debug().Uint64("seq", msg.Seq).Msg("stale save skipped")
	}
	return m
}

// addTask creates a task from the composer and resets it. A blank name is
// dropped without touching anything.
func (m Model) addTask(name string, u model.UrgencyLevel) (Model, tea.Cmd, bool) {
	task, ok := model.NewTask(name, u, m.now(), m.ids)
	if !ok {
		return m, nil, false
	}
	m.Tasks = model.Prepend(m.Tasks, task)
	m.Cursor = 0
	m.Urgency = m.defaultUrgency
	m.nameInput.SetValue("")
	m.Status = StatusBar{Text: fmt.Sprintf("added %q, due %s", task.Name, model.FormatDue(task.DueDate, m.now()))}
	m.log.Info().Str("id", task.ID).Int("urgency", int(task.UrgencyLevel)).Time("due", task.DueDate).Msg("task added")
	save := m.persist()
	return m, save, true
}

func (m Model) deleteTask(id string) (Model, tea.Cmd, bool) {
	next, ok := model.Remove(m.Tasks, id)
	if !ok {
		return m, nil, false
	}
	m.Tasks = next
	m.clampCursor()
	m.Status = StatusBar{Text: "task deleted"}
	m.log.Info().Str("id", id).Msg("task deleted")
	save := m.persist()
	return m, save, true
}

func (m Model) deleteSelected() (Model, tea.Cmd) {
	task, ok := m.selectedTask()
	if !ok {
		return m, nil
	}
	next, cmd, _ := m.deleteTask(task.ID)
	return next, cmd
}

// resolveTarget maps an id or a 1-based "#n" position onto a task.
func (m Model) resolveTarget(t commands.TargetArgs) (model.Task, error) {
	if t.Position > 0 {
		if t.Position > len(m.Tasks) {
			return model.Task{}, &commands.CommandError{Code: commands.ErrCodeNotFound, Message: fmt.Sprintf("no task at #%d", t.Position)}
		}
		return m.Tasks[t.Position-1], nil
	}
	task, ok := model.Find(m.Tasks, t.ID)
	if !ok {
		return model.Task{}, &commands.CommandError{Code: commands.ErrCodeNotFound, Message: fmt.Sprintf("no task with id %s", t.ID)}
	}
	return task, nil
}
