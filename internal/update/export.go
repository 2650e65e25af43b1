package update

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/vibetask/internal/model"
)

type LinkOpenedMsg struct {
	TaskID string
	Err    error
}

type ExportedMsg struct {
	TaskID string
	Path   string
	Err    error
}

func openLinkCmd(opener URLOpener, task model.Task) tea.Cmd {
	return func() tea.Msg {
		return LinkOpenedMsg{TaskID: task.ID, Err: opener.Open(task.CalLink)}
	}
}

// exportICSCmd writes the task's stored ICS document to <dir>/<id>.ics.
func exportICSCmd(dir string, task model.Task) tea.Cmd {
	return func() tea.Msg {
		path, err := writeICS(dir, task)
		return ExportedMsg{TaskID: task.ID, Path: path, Err: err}
	}
}

func writeICS(dir string, task model.Task) (string, error) {
	if !safeFileStem(task.ID) {
		return "", fmt.Errorf("export: unsafe task id %q", task.ID)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, task.ID+".ics")
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(task.ICSContent), 0o644); err != nil {
		return "", fmt.Errorf("write ics: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", fmt.Errorf("write ics: %w", err)
	}
	return path, nil
}

// safeFileStem reports whether id can name a file inside the export dir.
func safeFileStem(id string) bool {
	if id == "" || id == "." || id == ".." {
		return false
	}
	return !strings.ContainsAny(id, `/\`) && filepath.Base(id) == id
}

func (m Model) onLinkOpened(msg LinkOpenedMsg) Model {
	if msg.Err != nil {
		m.log.Error().Err(msg.Err).Str("id", msg.TaskID).Msg("open calendar link")
		m.Status = StatusBar{Text: fmt.Sprintf("could not open calendar link: %v", msg.Err), IsError: true}
		m.LastError = msg.Err
		return m
	}
	m.Status = StatusBar{Text: "opened Google Calendar link"}
	return m
}

func (m Model) onExported(msg ExportedMsg) Model {
	if msg.Err != nil {
		m.log.Error().Err(msg.Err).Str("id", msg.TaskID).Msg("export ics")
		m.Status = StatusBar{Text: fmt.Sprintf("could not export: %v", msg.Err), IsError: true}
		m.LastError = msg.Err
		return m
	}
	m.log.Info().Str("id", msg.TaskID).Str("path", msg.Path).Msg("ics exported")
	m.Status = StatusBar{Text: fmt.Sprintf("exported %s", msg.Path)}
	return m
}
