// Package recurrence holds the date selection of the picker and derives the
// human-readable recurrence description and RRULE from it.
//
// The model is not safe for concurrent use. The UI is its only writer.
package recurrence

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/samber/mo"
)

// Model owns the selection state. All mutations go through its methods so
// subscribers see every change. Use New; the zero value has no anchor date
// and a zero custom interval.
type Model struct {
	sel Selection

	subs   map[int]func(Selection)
	order  []int
	nextID int
}

// New returns a model anchored on today with recurrence off.
func New(today time.Time) *Model {
	return &Model{
		sel: Selection{
			AnchorDate:         mo.Some(dateOnly(today)),
			Type:               None,
			CustomIntervalDays: DefaultCustomInterval,
		},
		subs: make(map[int]func(Selection)),
	}
}

// Selection returns a snapshot of the current state.
func (m *Model) Selection() Selection {
	return m.sel
}

// Subscribe registers fn to be called after every mutation. The returned
// func removes the subscription.
func (m *Model) Subscribe(fn func(Selection)) func() {
	if m.subs == nil {
		m.subs = make(map[int]func(Selection))
	}
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	m.order = append(m.order, id)
	return func() {
		delete(m.subs, id)
		for i, v := range m.order {
			if v == id {
				m.order = append(m.order[:i], m.order[i+1:]...)
				break
			}
		}
	}
}

// notify walks a copy of the order so a subscriber may unsubscribe itself
// (or another) from inside its callback.
func (m *Model) notify() {
	for _, id := range slices.Clone(m.order) {
		if fn, ok := m.subs[id]; ok {
			fn(m.sel)
		}
	}
}

// SelectDate replaces the anchor date. An absent value clears it.
func (m *Model) SelectDate(d mo.Option[time.Time]) {
	if t, ok := d.Get(); ok {
		m.sel.AnchorDate = mo.Some(dateOnly(t))
	} else {
		m.sel.AnchorDate = mo.None[time.Time]()
	}
	m.notify()
}

// ClearDate removes the anchor date.
func (m *Model) ClearDate() {
	m.SelectDate(mo.None[time.Time]())
}

// Today anchors the selection on now's calendar date.
func (m *Model) Today(now time.Time) {
	m.SelectDate(mo.Some(now))
}

// SetRecurring toggles recurrence. Turning it off resets the type to None;
// turning it on picks Weekly unless a pattern is already set.
func (m *Model) SetRecurring(on bool) {
	m.sel.Recurring = on
	if !on {
		m.sel.Type = None
	} else if m.sel.Type == None {
		m.sel.Type = Weekly
	}
	m.notify()
}

// SetType changes the pattern. It does nothing while recurrence is off.
// Setting None turns recurrence off.
func (m *Model) SetType(t Type) {
	if !m.sel.Recurring || !t.valid() {
		return
	}
	if t == None {
		m.SetRecurring(false)
		return
	}
	m.sel.Type = t
	m.notify()
}

// SetCustomIntervalDays parses raw as a day count. Anything that is not a
// positive integer is stored as 1.
func (m *Model) SetCustomIntervalDays(raw string) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		n = 1
	}
	m.SetCustomInterval(n)
}

// SetCustomInterval stores n, coerced to at least 1.
func (m *Model) SetCustomInterval(n int) {
	if n < 1 {
		n = 1
	}
	m.sel.CustomIntervalDays = n
	m.notify()
}

// Describe returns the human-readable recurrence line.
func (m *Model) Describe() string {
	return m.sel.Describe()
}

// Summary returns the "Selected Date" card for the current state.
func (m *Model) Summary() Summary {
	return m.sel.Summary()
}

// Describe returns the recurrence line for s. The phrasing differs per
// pattern ("Repeats every day" vs "every 2 weeks on ...") and must stay
// that way; the UI copy depends on it.
func (s Selection) Describe() string {
	if !s.Recurring {
		return "No recurrence"
	}

	date, hasDate := s.AnchorDate.Get()
	switch s.Type {
	case Daily:
		return "Repeats every day"
	case Weekly:
		if !hasDate {
			return "Repeats every week"
		}
		return "Repeats every " + WeekdayName(date)
	case BiWeekly:
		if !hasDate {
			return "every 2 weeks on "
		}
		return "every 2 weeks on " + WeekdayName(date)
	case Monthly:
		if !hasDate {
			return "Repeats monthly on the "
		}
		return "Repeats monthly on the " + OrdinalDay(date)
	case Yearly:
		if !hasDate {
			return "Repeats yearly on "
		}
		return "Repeats yearly on " + MonthDay(date)
	case Custom:
		suffix := "s"
		if s.CustomIntervalDays == 1 {
			suffix = ""
		}
		return "Repeats every " + strconv.Itoa(s.CustomIntervalDays) + " day" + suffix
	}
	return "No recurrence"
}

// Summary returns the "Selected Date" card for s.
func (s Selection) Summary() Summary {
	date, ok := s.AnchorDate.Get()
	if !ok {
		return Summary{
			Date:       mo.None[string](),
			Weekday:    mo.None[string](),
			Recurrence: mo.None[string](),
		}
	}

	sum := Summary{
		Date:       mo.Some(LongDate(date)),
		Weekday:    mo.Some(WeekdayName(date)),
		Recurrence: mo.None[string](),
	}
	if s.Recurring {
		sum.Recurrence = mo.Some(s.Describe())
	}
	return sum
}
