package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/datepick/internal/recurrence"
)

type jsonExport struct {
	ExportedAt         string `json:"exported_at"`
	Title              string `json:"title"`
	Date               string `json:"date"`
	Weekday            string `json:"weekday"`
	Recurring          bool   `json:"recurring"`
	RecurrenceType     string `json:"recurrence_type"`
	Description        string `json:"description"`
	RRule              string `json:"rrule,omitempty"`
	CustomIntervalDays int    `json:"custom_interval_days,omitempty"`
}

func ToJSON(sel recurrence.Selection, title, path string) error {
	r, err := newRecord(sel, title)
	if err != nil {
		return err
	}

	export := jsonExport{
		ExportedAt:         time.Now().UTC().Format(time.RFC3339),
		Title:              r.title,
		Date:               r.date.Format("2006-01-02"),
		Weekday:            recurrence.WeekdayName(r.date),
		Recurring:          r.recurring,
		RecurrenceType:     r.typ.String(),
		Description:        r.description,
		RRule:              r.rrule,
		CustomIntervalDays: r.interval,
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
