package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sandeepkv93/vibetask/internal/calendar"
)

var ErrInvalidUrgency = errors.New("model: invalid urgency level")

// Task is immutable after NewTask; the only lifecycle event is removal.
type Task struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	UrgencyLevel UrgencyLevel `json:"urgencyLevel"`
	DueDate      time.Time    `json:"dueDate"`
	ICSContent   string       `json:"icsContent"`
	CalLink      string       `json:"calLink"`
}

// NewTask derives the due date and calendar payloads once, at creation.
// A blank name yields ok=false and no task.
func NewTask(name string, u UrgencyLevel, now time.Time, ids IDSource) (Task, bool) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Task{}, false
	}
	due := DeriveDueDate(u, now)
	export := calendar.Encode(trimmed, due)
	return Task{
		ID:           ids.NewID(now),
		Name:         trimmed,
		UrgencyLevel: u,
		DueDate:      due,
		ICSContent:   export.ICS,
		CalLink:      export.Link,
	}, true
}

func (t Task) Classification() Classification {
	return ClassifyUrgency(t.UrgencyLevel)
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("model: task name is required")
	}
	if !t.UrgencyLevel.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidUrgency, t.UrgencyLevel)
	}
	if t.DueDate.IsZero() {
		return errors.New("model: task due date is required")
	}
	return nil
}
