package export

import (
	"fmt"
	"os"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
	"github.com/sadopc/datepick/internal/recurrence"
)

const prodID = "-//datepick//Date Picker//EN"

// ToICS writes the selection as a calendar with one all-day event.
func ToICS(sel recurrence.Selection, title, path string) error {
	cal, err := buildCalendar(sel, title, time.Now().UTC())
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create ics file: %w", err)
	}
	defer f.Close()

	if err := ical.NewEncoder(f).Encode(cal); err != nil {
		return fmt.Errorf("encode ics: %w", err)
	}
	return nil
}

func buildCalendar(sel recurrence.Selection, title string, now time.Time) (*ical.Calendar, error) {
	date, ok := sel.AnchorDate.Get()
	if !ok {
		return nil, ErrNoDate
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropProductID, prodID)
	cal.Props.SetText(ical.PropVersion, "2.0")

	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, uuid.NewString())
	event.Props.SetDateTime(ical.PropDateTimeStamp, now)
	event.Props.SetDate(ical.PropDateTimeStart, date)
	event.Props.SetText(ical.PropSummary, title)
	event.Props.SetText(ical.PropDescription, sel.Describe())

	if opt, ok := sel.Rule(); ok {
		// DTSTART already carries the anchor; the RRULE value must not.
		rule := *opt
		rule.Dtstart = time.Time{}
		event.Props.SetRecurrenceRule(&rule)
	}

	cal.Children = append(cal.Children, event.Component)
	return cal, nil
}
