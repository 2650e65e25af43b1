package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/vibetask/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

const paletteHelp = `### Commands
- ` + "`add [0-100] <name>`" + ` add a task, optionally at a given vibe
- ` + "`delete <id|#n>`" + ` remove a task
- ` + "`open <id|#n>`" + ` open the Google Calendar link
- ` + "`export <id|#n>`" + ` write the .ics file
- ` + "`inspect <id|#n>`" + ` show the parsed calendar event
- ` + "`vibe <0-100>`" + ` set the composer vibe
`

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return "\n\n" + m.renderHelpView()
}

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.paneBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		Bindings: plain,
		Markdown: views.RenderMarkdown(paletteHelp),
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

func globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: "tab", Action: "switch composer/list"},
		{Key: "ctrl+c", Action: "quit app"},
	}
}

func (m Model) paneBindings() []KeyBinding {
	switch m.Focus {
	case PaneComposer:
		return []KeyBinding{
			{Key: "enter", Action: "add task"},
			{Key: "up/down", Action: "vibe ±1"},
			{Key: "pgup/pgdown", Action: "vibe ±10"},
		}
	case PaneTasks:
		return []KeyBinding{
			{Key: "j/k", Action: "move cursor"},
			{Key: "d", Action: "delete task"},
			{Key: "o", Action: "open in Google Calendar"},
			{Key: "e", Action: "export .ics"},
			{Key: "/", Action: "open command palette"},
			{Key: "?", Action: "toggle help panel"},
			{Key: "q", Action: "quit app"},
		}
	default:
		return []KeyBinding{{Key: "-", Action: "no contextual bindings"}}
	}
}

func (m Model) helpBindings() []key.Binding {
	all := append(globalBindings(), m.paneBindings()...)
	out := make([]key.Binding, 0, len(all))
	for _, kb := range all {
		keys := strings.Split(kb.Key, "/")
		if kb.Key == "/" {
			keys = []string{"/"}
		}
		out = append(out, key.NewBinding(key.WithKeys(keys...), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
