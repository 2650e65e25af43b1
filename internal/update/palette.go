package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/vibetask/internal/calendar"
	"github.com/sandeepkv93/vibetask/internal/commands"
	"github.com/sandeepkv93/vibetask/internal/model"
)

func (m Model) openPalette() Model {
	m.Palette.Active = true
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Focus()
	m.Status = StatusBar{Text: "command palette active"}
	return m
}

func (m Model) closePalette() Model {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
	return m
}

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m = m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	default:
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		m.Palette.Input = m.commandInput.Value()
		return m, cmd
	}
}

func (m Model) executePaletteCommand() (Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	m = m.closePalette()

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	var follow tea.Cmd
	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			u := m.Urgency
			if a.Urgency != nil {
				u = model.ClampUrgency(*a.Urgency)
			}
			next, c, ok := m.addTask(a.Name, u)
			if !ok {
				return commands.Result{Message: "nothing to add"}, nil
			}
			m, follow = next, c
			return commands.Result{Message: m.Status.Text}, nil
		},
		Delete: func(t commands.TargetArgs) (commands.Result, error) {
			task, err := m.resolveTarget(t)
			if err != nil {
				return commands.Result{}, err
			}
			m, follow, _ = m.deleteTask(task.ID)
			return commands.Result{Message: fmt.Sprintf("deleted %q", task.Name)}, nil
		},
		Open: func(t commands.TargetArgs) (commands.Result, error) {
			task, err := m.resolveTarget(t)
			if err != nil {
				return commands.Result{}, err
			}
			follow = openLinkCmd(m.opener, task)
			return commands.Result{Message: fmt.Sprintf("opening %q in Google Calendar", task.Name)}, nil
		},
		Export: func(t commands.TargetArgs) (commands.Result, error) {
			task, err := m.resolveTarget(t)
			if err != nil {
				return commands.Result{}, err
			}
			follow = exportICSCmd(m.exportDir, task)
			return commands.Result{Message: fmt.Sprintf("exporting %q", task.Name)}, nil
		},
		Inspect: func(t commands.TargetArgs) (commands.Result, error) {
			task, err := m.resolveTarget(t)
			if err != nil {
				return commands.Result{}, err
			}
			ev, err := calendar.ParseEvent(task.ICSContent)
			if err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			return commands.Result{Message: fmt.Sprintf("%s | %s -> %s | alarm %s",
				ev.Summary,
				ev.Start.UTC().Format("2006-01-02 15:04Z"),
				ev.End.UTC().Format("2006-01-02 15:04Z"),
				ev.AlarmTrigger,
			)}, nil
		},
		Vibe: func(v commands.VibeArgs) (commands.Result, error) {
			m.Urgency = model.ClampUrgency(v.Level)
			return commands.Result{Message: fmt.Sprintf("vibe set to %d (%s)", m.Urgency, model.UrgencyLabel(m.Urgency))}, nil
		},
	})
	if err != nil {
		m.log.Warn().Err(err).Str("command", raw).Msg("palette command failed")
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}
	m.Status = StatusBar{Text: res.Message}
	return m, follow
}
