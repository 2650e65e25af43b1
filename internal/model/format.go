package model

import (
	"fmt"
	"time"
)

// FormatDue renders a due instant relative to now, in now's location.
func FormatDue(due, now time.Time) string {
	due = due.In(now.Location())
	clock := fmt.Sprintf("%d:%02d", due.Hour(), due.Minute())
	switch {
	case sameDay(due, now):
		return "Today at " + clock
	case sameDay(due, now.AddDate(0, 0, 1)):
		return "Tomorrow at " + clock
	default:
		return fmt.Sprintf("%s, %s %d at %s", due.Format("Mon"), due.Format("Jan"), due.Day(), clock)
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
