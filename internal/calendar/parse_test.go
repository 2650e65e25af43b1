package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestParseEventRoundTrip(t *testing.T) {
	due := time.Date(2024, 12, 31, 23, 30, 0, 0, time.UTC)
	out := Encode("Ship release notes", due)

	ev, err := ParseEvent(out.ICS)
	if err != nil {
		t.Fatalf("parse event: %v", err)
	}
	if ev.Summary != "Ship release notes" {
		t.Fatalf("unexpected summary: %q", ev.Summary)
	}
	if !ev.Start.Equal(due) {
		t.Fatalf("start = %s, want %s", ev.Start, due)
	}
	if !ev.End.Equal(due.Add(time.Hour)) {
		t.Fatalf("end = %s, want %s", ev.End, due.Add(time.Hour))
	}
	if ev.Status != "CONFIRMED" || ev.Description != EventDescription {
		t.Fatalf("unexpected event fields: %+v", ev)
	}
	if ev.AlarmTrigger != "-PT15M" {
		t.Fatalf("unexpected alarm trigger: %q", ev.AlarmTrigger)
	}
}

func TestParseEventTruncatesToSeconds(t *testing.T) {
	due := time.Date(2026, 3, 1, 8, 5, 9, 450_000_000, time.UTC)
	ev, err := ParseEvent(Encode("x", due).ICS)
	if err != nil {
		t.Fatalf("parse event: %v", err)
	}
	if !ev.Start.Equal(due.Truncate(time.Second)) {
		t.Fatalf("unexpected start: %s", ev.Start)
	}
}

func TestParseEventWithoutEvent(t *testing.T) {
	doc := "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nEND:VCALENDAR\r\n"
	_, err := ParseEvent(doc)
	if !errors.Is(err, ErrNoEvent) {
		t.Fatalf("expected ErrNoEvent, got %v", err)
	}
}
