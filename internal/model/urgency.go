package model

import (
	"encoding/json"
	"fmt"
	"math"
)

type UrgencyLevel int

const (
	MinUrgency     UrgencyLevel = 0
	MaxUrgency     UrgencyLevel = 100
	DefaultUrgency UrgencyLevel = 50
)

func (u UrgencyLevel) IsValid() bool {
	return u >= MinUrgency && u <= MaxUrgency
}

// ClampUrgency pins raw slider or command input into [0,100].
func ClampUrgency(v int) UrgencyLevel {
	switch {
	case v < int(MinUrgency):
		return MinUrgency
	case v > int(MaxUrgency):
		return MaxUrgency
	default:
		return UrgencyLevel(v)
	}
}

// UnmarshalJSON accepts any JSON number. Older collections were written by a
// continuous slider, so fractional levels are rounded and the result clamped.
func (u *UrgencyLevel) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidUrgency, data)
	}
	switch {
	case v < float64(MinUrgency):
		*u = MinUrgency
	case v > float64(MaxUrgency):
		*u = MaxUrgency
	default:
		*u = UrgencyLevel(math.Round(v))
	}
	return nil
}

type Classification struct {
	Label string
	Color string
	Emoji string
}

// The label, color and emoji tables use their own breakpoints and are kept
// apart from the due-date buckets in schedule.go. A level picks the first row
// whose bound it is strictly below.
type labelStep struct {
	below UrgencyLevel
	value string
}

var urgencyLabels = []labelStep{
	{below: 10, value: "Never in a million years"},
	{below: 25, value: "Eventually... maybe"},
	{below: 40, value: "When I get around to it"},
	{below: 60, value: "Somewhat important"},
	{below: 75, value: "Pretty urgent"},
	{below: 90, value: "Very urgent!"},
}

const topUrgencyLabel = "ASAP!!! Life or death!!!"

var urgencyColors = []labelStep{
	{below: 20, value: "#3498db"},
	{below: 40, value: "#2ecc71"},
	{below: 60, value: "#f39c12"},
	{below: 80, value: "#e67e22"},
}

const topUrgencyColor = "#e74c3c"

var urgencyEmoji = []labelStep{
	{below: 10, value: "😴"},
	{below: 25, value: "🙂"},
	{below: 40, value: "🤔"},
	{below: 60, value: "😐"},
	{below: 75, value: "😬"},
	{below: 90, value: "😰"},
}

const topUrgencyEmoji = "🔥"

func ClassifyUrgency(u UrgencyLevel) Classification {
	return Classification{
		Label: UrgencyLabel(u),
		Color: UrgencyColor(u),
		Emoji: UrgencyEmoji(u),
	}
}

func UrgencyLabel(u UrgencyLevel) string {
	return lookupStep(urgencyLabels, u, topUrgencyLabel)
}

func UrgencyColor(u UrgencyLevel) string {
	return lookupStep(urgencyColors, u, topUrgencyColor)
}

func UrgencyEmoji(u UrgencyLevel) string {
	return lookupStep(urgencyEmoji, u, topUrgencyEmoji)
}

func lookupStep(table []labelStep, u UrgencyLevel, top string) string {
	for _, step := range table {
		if u < step.below {
			return step.value
		}
	}
	return top
}
