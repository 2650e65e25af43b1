package views

import (
	"fmt"
	"strings"
)

type ComposerPanelData struct {
	InputView  string
	Focused    bool
	Emoji      string
	Label      string
	Color      string
	SliderView string
	Urgency    int
}

type TaskDetailData struct {
	ID      string
	Name    string
	Label   string
	Color   string
	Due     string
	DueUTC  string
	CalLink string
}

type TaskListPanelData struct {
	TableView string
	Count     int
	Focused   bool
	Selected  *TaskDetailData
}

type HelpPanelData struct {
	Bindings []string
	HelpView string
	Markdown string
}

func RenderComposerPanel(data ComposerPanelData) string {
	var b strings.Builder
	b.WriteString(focusMarker(data.Focused) + "new task:\n")
	b.WriteString(data.InputView + "\n\n")
	b.WriteString("The vibe is...\n")
	b.WriteString(fmt.Sprintf("%s %s\n", data.Emoji, Colorize(data.Label, data.Color)))
	b.WriteString(fmt.Sprintf("Never ever %s ASAP!!!\n", data.SliderView))
	b.WriteString(fmt.Sprintf("urgency: %d/100\n", data.Urgency))
	b.WriteString("actions: [enter]add [↑/↓]vibe±1 [pgup/pgdn]vibe±10 [tab]list")
	return strings.TrimSpace(b.String())
}

func RenderTaskListPanel(data TaskListPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%syour tasks (%d):\n", focusMarker(data.Focused), data.Count))
	if data.Count == 0 {
		b.WriteString("(no tasks yet, add one to get the vibe going)")
		return b.String()
	}
	b.WriteString("actions: [j/k]move [d]delete [o]open calendar [e]export .ics [tab]composer\n")
	b.WriteString(data.TableView + "\n")

	if data.Selected != nil {
		b.WriteString("\ntask:\n")
		b.WriteString(fmt.Sprintf("id: %s\n", data.Selected.ID))
		b.WriteString(fmt.Sprintf("name: %s\n", data.Selected.Name))
		b.WriteString(fmt.Sprintf("vibe: %s\n", Colorize(data.Selected.Label, data.Selected.Color)))
		b.WriteString(fmt.Sprintf("due: %s (%s)\n", data.Selected.Due, data.Selected.DueUTC))
		b.WriteString(fmt.Sprintf("calendar: %s\n", data.Selected.CalLink))
	}
	return strings.TrimSpace(b.String())
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderHelpPanel(data HelpPanelData) string {
	var b strings.Builder
	b.WriteString("help:\n")
	if data.Markdown != "" {
		b.WriteString(data.Markdown + "\n")
	}
	b.WriteString(strings.Join(data.Bindings, "\n"))
	if data.HelpView != "" {
		b.WriteString("\n" + data.HelpView)
	}
	return b.String()
}

func focusMarker(focused bool) string {
	if focused {
		return "> "
	}
	return "  "
}
