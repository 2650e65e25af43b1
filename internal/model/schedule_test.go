package model

import (
	"testing"
	"time"
)

func TestDeriveDueDateBuckets(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		urgency UrgencyLevel
		want    time.Time
	}{
		{100, now.Add(2 * time.Hour)},
		{91, now.Add(2 * time.Hour)},
		{90, now.Add(5 * time.Hour)},
		{76, now.Add(5 * time.Hour)},
		{75, time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)},
		{61, time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)},
		{60, time.Date(2026, 2, 12, 12, 0, 0, 0, time.UTC)},
		{41, time.Date(2026, 2, 12, 12, 0, 0, 0, time.UTC)},
		{40, time.Date(2026, 2, 16, 12, 0, 0, 0, time.UTC)},
		{26, time.Date(2026, 2, 16, 12, 0, 0, 0, time.UTC)},
		{25, time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)},
		{11, time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)},
		{10, time.Date(2026, 5, 9, 12, 0, 0, 0, time.UTC)},
		{0, time.Date(2026, 5, 9, 12, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got := DeriveDueDate(tc.urgency, now)
		if !got.Equal(tc.want) {
			t.Fatalf("DeriveDueDate(%d) = %s, want %s", tc.urgency, got.Format(time.RFC3339), tc.want.Format(time.RFC3339))
		}
	}
}

func TestDeriveDueDateMonotonic(t *testing.T) {
	instants := []time.Time{
		time.Date(2026, 1, 31, 23, 59, 0, 0, time.UTC),
		time.Date(2024, 2, 29, 8, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 31, 22, 30, 0, 0, time.UTC),
	}
	for _, now := range instants {
		prev := DeriveDueDate(0, now)
		for u := UrgencyLevel(0); u <= MaxUrgency; u++ {
			due := DeriveDueDate(u, now)
			if !due.After(now) {
				t.Fatalf("urgency %d at %s: due %s not after now", u, now, due)
			}
			if due.After(prev) {
				t.Fatalf("urgency %d at %s: due %s later than lower urgency %s", u, now, due, prev)
			}
			prev = due
		}
	}
}

func TestDeriveDueDateIsDeterministic(t *testing.T) {
	now := time.Date(2026, 7, 4, 6, 45, 0, 0, time.UTC)
	for u := UrgencyLevel(0); u <= MaxUrgency; u += 7 {
		if a, b := DeriveDueDate(u, now), DeriveDueDate(u, now); !a.Equal(b) {
			t.Fatalf("urgency %d not deterministic: %s vs %s", u, a, b)
		}
	}
}

func TestAddMonthsClampsToLastDay(t *testing.T) {
	cases := []struct {
		from   time.Time
		months int
		want   time.Time
	}{
		{time.Date(2026, 1, 31, 9, 0, 0, 0, time.UTC), 1, time.Date(2026, 2, 28, 9, 0, 0, 0, time.UTC)},
		{time.Date(2024, 1, 31, 9, 0, 0, 0, time.UTC), 1, time.Date(2024, 2, 29, 9, 0, 0, 0, time.UTC)},
		{time.Date(2025, 11, 30, 18, 15, 0, 0, time.UTC), 3, time.Date(2026, 2, 28, 18, 15, 0, 0, time.UTC)},
		{time.Date(2025, 12, 15, 7, 0, 0, 0, time.UTC), 1, time.Date(2026, 1, 15, 7, 0, 0, 0, time.UTC)},
		{time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), 3, time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got := AddMonthsClamped(tc.from, tc.months)
		if !got.Equal(tc.want) {
			t.Fatalf("AddMonthsClamped(%s, %d) = %s, want %s", tc.from.Format(time.RFC3339), tc.months, got.Format(time.RFC3339), tc.want.Format(time.RFC3339))
		}
	}
}

func TestDeriveDueDateKeepsLocation(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	now := time.Date(2026, 1, 31, 20, 0, 0, 0, loc)
	due := DeriveDueDate(20, now)
	if due.Location() != loc {
		t.Fatalf("expected location %v, got %v", loc, due.Location())
	}
	if due.Format("2006-01-02 15:04") != "2026-02-28 20:00" {
		t.Fatalf("unexpected clamped due date: %s", due.Format(time.RFC3339))
	}
}
