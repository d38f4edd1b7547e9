package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/sadopc/datepick/internal/recurrence"
)

var csvHeader = []string{"Title", "Date", "Weekday", "Recurring", "Type", "Description", "RRULE", "Interval (days)"}

func ToCSV(sel recurrence.Selection, title, path string) error {
	r, err := newRecord(sel, title)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	interval := ""
	if r.interval > 0 {
		interval = strconv.Itoa(r.interval)
	}
	row := []string{
		r.title,
		r.date.Format("2006-01-02"),
		recurrence.WeekdayName(r.date),
		strconv.FormatBool(r.recurring),
		r.typ.String(),
		r.description,
		r.rrule,
		interval,
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("write csv row: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}
