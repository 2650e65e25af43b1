package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
)

var ErrNoEvent = errors.New("calendar: document has no event")

// Event is the subset of a parsed VEVENT the app cares about.
type Event struct {
	Summary      string
	Description  string
	Status       string
	Start        time.Time
	End          time.Time
	AlarmTrigger string
}

// ParseEvent reads the first VEVENT of an iCalendar document.
func ParseEvent(doc string) (Event, error) {
	cal, err := ics.ParseCalendar(strings.NewReader(doc))
	if err != nil {
		return Event{}, fmt.Errorf("parse calendar: %w", err)
	}
	events := cal.Events()
	if len(events) == 0 {
		return Event{}, ErrNoEvent
	}
	ev := events[0]

	start, err := ev.GetStartAt()
	if err != nil {
		return Event{}, fmt.Errorf("parse start: %w", err)
	}
	end, err := ev.GetEndAt()
	if err != nil {
		return Event{}, fmt.Errorf("parse end: %w", err)
	}

	out := Event{
		Summary:     propertyValue(ev.GetProperty(ics.ComponentPropertySummary)),
		Description: propertyValue(ev.GetProperty(ics.ComponentPropertyDescription)),
		Status:      propertyValue(ev.GetProperty(ics.ComponentPropertyStatus)),
		Start:       start.UTC(),
		End:         end.UTC(),
	}
	if alarms := ev.Alarms(); len(alarms) > 0 {
		out.AlarmTrigger = propertyValue(alarms[0].GetProperty(ics.ComponentPropertyTrigger))
	}
	return out, nil
}

func propertyValue(p *ics.IANAProperty) string {
	if p == nil {
		return ""
	}
	return p.Value
}
