package model

import "time"

// offset advances an instant by a bucket's distance.
type offset struct {
	hours  int
	days   int
	months int
}

func (o offset) apply(now time.Time) time.Time {
	switch {
	case o.hours > 0:
		return now.Add(time.Duration(o.hours) * time.Hour)
	case o.days > 0:
		return now.AddDate(0, 0, o.days)
	default:
		return AddMonthsClamped(now, o.months)
	}
}

type dueBucket struct {
	above  UrgencyLevel
	offset offset
}

// Evaluated top-down, first match wins. Lower bounds are exclusive, so a level
// sitting on a boundary falls into the bucket below it.
var dueBuckets = []dueBucket{
	{above: 90, offset: offset{hours: 2}},
	{above: 75, offset: offset{hours: 5}},
	{above: 60, offset: offset{days: 1}},
	{above: 40, offset: offset{days: 3}},
	{above: 25, offset: offset{days: 7}},
	{above: 10, offset: offset{months: 1}},
}

var fallbackOffset = offset{months: 3}

// DeriveDueDate maps an urgency level to a concrete due instant relative to now.
// It is total over all ints; callers clamp to [0,100] beforehand.
func DeriveDueDate(u UrgencyLevel, now time.Time) time.Time {
	for _, b := range dueBuckets {
		if u > b.above {
			return b.offset.apply(now)
		}
	}
	return fallbackOffset.apply(now)
}

// AddMonthsClamped advances the month field by n, keeping the wall clock and
// location of t. A day past the end of the target month is clamped to that
// month's last day, so Jan 31 + 1 month is Feb 28 (or 29).
func AddMonthsClamped(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	loc := t.Location()
	first := time.Date(y, m+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
	if last := daysIn(first.Year(), first.Month(), loc); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

func daysIn(y int, m time.Month, loc *time.Location) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, loc).Day()
}
