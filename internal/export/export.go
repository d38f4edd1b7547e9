// Package export writes a snapshot of the current selection to disk.
package export

import (
	"errors"
	"fmt"
	"time"

	"github.com/sadopc/datepick/internal/recurrence"
)

// ErrNoDate is returned when the selection has no anchor date.
var ErrNoDate = errors.New("no date selected")

// Format is an export file format.
type Format int

const (
	FormatICS Format = iota
	FormatJSON
	FormatCSV
)

var formatNames = []string{"iCalendar (.ics)", "JSON", "CSV"}
var formatExts = []string{"ics", "json", "csv"}

// Formats lists every export format in picker order.
func Formats() []Format {
	return []Format{FormatICS, FormatJSON, FormatCSV}
}

func (f Format) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// Ext returns the file extension without the dot.
func (f Format) Ext() string {
	if f >= 0 && int(f) < len(formatExts) {
		return formatExts[f]
	}
	return "txt"
}

// FileName returns datepick-YYYY-MM-DD.<ext>.
func FileName(f Format, date time.Time) string {
	return fmt.Sprintf("datepick-%s.%s", date.Format("2006-01-02"), f.Ext())
}

// Write dispatches to the writer for f.
func Write(f Format, sel recurrence.Selection, title, path string) error {
	switch f {
	case FormatICS:
		return ToICS(sel, title, path)
	case FormatJSON:
		return ToJSON(sel, title, path)
	case FormatCSV:
		return ToCSV(sel, title, path)
	}
	return fmt.Errorf("unknown export format %d", f)
}

// record is the flat view shared by the JSON and CSV writers.
type record struct {
	title       string
	date        time.Time
	recurring   bool
	typ         recurrence.Type
	description string
	rrule       string
	interval    int
}

func newRecord(sel recurrence.Selection, title string) (record, error) {
	date, ok := sel.AnchorDate.Get()
	if !ok {
		return record{}, ErrNoDate
	}
	r := record{
		title:       title,
		date:        date,
		recurring:   sel.Recurring,
		typ:         sel.Type,
		description: sel.Describe(),
		rrule:       sel.RuleString(),
	}
	if sel.Recurring && sel.Type == recurrence.Custom {
		r.interval = sel.CustomIntervalDays
	}
	return r, nil
}
