package recurrence

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// WeekdayName returns the full weekday name, e.g. "Friday".
func WeekdayName(t time.Time) string {
	return t.Format("Monday")
}

// OrdinalDay returns the day of month with its ordinal suffix, e.g. "15th".
func OrdinalDay(t time.Time) string {
	return humanize.Ordinal(t.Day())
}

// MonthDay returns e.g. "March 15".
func MonthDay(t time.Time) string {
	return t.Format("January 2")
}

// LongDate returns e.g. "March 15, 2024".
func LongDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// DisplayDate returns e.g. "March 15th, 2024".
func DisplayDate(t time.Time) string {
	return fmt.Sprintf("%s %s, %d", t.Format("January"), OrdinalDay(t), t.Year())
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
