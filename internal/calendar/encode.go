// Package calendar turns a task name and due instant into payloads an external
// calendar can import: an iCalendar document and a provider quick-add link.
package calendar

import (
	"net/url"
	"strings"
	"time"
)

const (
	// EventDuration is the fixed length of an exported event.
	EventDuration = time.Hour

	EventDescription = "Task created with Vibe Task Scheduler"

	stampLayout = "20060102T150405Z"
	crlf        = "\r\n"

	providerEndpoint = "https://calendar.google.com/calendar/render"
)

type Export struct {
	ICS  string
	Link string
}

func Encode(name string, due time.Time) Export {
	start := FormatStamp(due)
	end := FormatStamp(EndOf(due))
	return Export{
		ICS:  renderICS(name, start, end),
		Link: renderLink(name, start, end),
	}
}

func EndOf(due time.Time) time.Time {
	return due.Add(EventDuration)
}

// FormatStamp renders t as a UTC basic-format timestamp, truncated to seconds.
func FormatStamp(t time.Time) string {
	return t.UTC().Format(stampLayout)
}

func renderICS(summary, start, end string) string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"CALSCALE:GREGORIAN",
		"BEGIN:VEVENT",
		"SUMMARY:" + summary,
		"DTSTART:" + start,
		"DTEND:" + end,
		"DESCRIPTION:" + EventDescription,
		"STATUS:CONFIRMED",
		"SEQUENCE:0",
		"BEGIN:VALARM",
		"TRIGGER:-PT15M",
		"ACTION:DISPLAY",
		"DESCRIPTION:Reminder",
		"END:VALARM",
		"END:VEVENT",
		"END:VCALENDAR",
	}
	return strings.Join(lines, crlf) + crlf
}

func renderLink(name, start, end string) string {
	var b strings.Builder
	b.WriteString(providerEndpoint)
	b.WriteString("?action=TEMPLATE")
	b.WriteString("&text=" + EscapeComponent(name))
	b.WriteString("&dates=" + start + "/" + end)
	b.WriteString("&details=" + EscapeComponent(EventDescription))
	return b.String()
}

// EscapeComponent percent-encodes s as a URI component. Spaces become %20
// rather than '+'.
func EscapeComponent(s string) string {
	// QueryEscape already turns a literal '+' into %2B, so every '+' left is a space.
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
