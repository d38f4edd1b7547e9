package recurrence

import (
	"time"

	"github.com/samber/mo"
)

// Type is the recurrence pattern of a selection.
type Type int

const (
	None Type = iota
	Daily
	Weekly
	BiWeekly
	Monthly
	Yearly
	Custom
)

var typeNames = map[Type]string{
	None:     "none",
	Daily:    "daily",
	Weekly:   "weekly",
	BiWeekly: "biWeekly",
	Monthly:  "monthly",
	Yearly:   "yearly",
	Custom:   "custom",
}

var typeLabels = map[Type]string{
	None:     "None",
	Daily:    "Daily",
	Weekly:   "Weekly",
	BiWeekly: "BiWeekly",
	Monthly:  "Monthly",
	Yearly:   "Yearly",
	Custom:   "Custom",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "unknown"
}

// Label is the name shown in the pattern picker.
func (t Type) Label() string {
	if s, ok := typeLabels[t]; ok {
		return s
	}
	return "Unknown"
}

func (t Type) valid() bool {
	_, ok := typeNames[t]
	return ok
}

// ParseType is the inverse of Type.String.
func ParseType(s string) (Type, bool) {
	for t, name := range typeNames {
		if name == s {
			return t, true
		}
	}
	return None, false
}

// Types returns the selectable patterns in picker order.
func Types() []Type {
	return []Type{Daily, Weekly, BiWeekly, Monthly, Yearly, Custom}
}

// DefaultCustomInterval is the interval a fresh selection starts with.
const DefaultCustomInterval = 4

// Selection is a snapshot of the picker state.
type Selection struct {
	AnchorDate         mo.Option[time.Time]
	Recurring          bool
	Type               Type
	CustomIntervalDays int
}

// Summary holds the "Selected Date" card. Every field is absent when no
// date is selected; Recurrence is also absent while not recurring.
type Summary struct {
	Date       mo.Option[string]
	Weekday    mo.Option[string]
	Recurrence mo.Option[string]
}
