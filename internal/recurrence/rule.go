package recurrence

import (
	"time"

	"github.com/teambition/rrule-go"
)

var rruleWeekdays = [...]rrule.Weekday{
	time.Sunday:    rrule.SU,
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
}

// Rule returns the RRULE options for the current state, or false when the
// selection does not recur.
func (m *Model) Rule() (*rrule.ROption, bool) {
	return m.sel.Rule()
}

// RuleString returns the RRULE body without DTSTART, or "" when the
// selection does not recur.
func (m *Model) RuleString() string {
	return m.sel.RuleString()
}

// Rule returns the RRULE options for s. BY* parts that depend on the anchor
// date are left out when no date is selected.
func (s Selection) Rule() (*rrule.ROption, bool) {
	if !s.Recurring || s.Type == None {
		return nil, false
	}

	date, hasDate := s.AnchorDate.Get()
	opt := &rrule.ROption{}
	if hasDate {
		opt.Dtstart = date
	}

	switch s.Type {
	case Daily:
		opt.Freq = rrule.DAILY
	case Weekly, BiWeekly:
		opt.Freq = rrule.WEEKLY
		if s.Type == BiWeekly {
			opt.Interval = 2
		}
		if hasDate {
			opt.Byweekday = []rrule.Weekday{rruleWeekdays[date.Weekday()]}
		}
	case Monthly:
		opt.Freq = rrule.MONTHLY
		if hasDate {
			opt.Bymonthday = []int{date.Day()}
		}
	case Yearly:
		opt.Freq = rrule.YEARLY
		if hasDate {
			opt.Bymonth = []int{int(date.Month())}
			opt.Bymonthday = []int{date.Day()}
		}
	case Custom:
		opt.Freq = rrule.DAILY
		opt.Interval = max(s.CustomIntervalDays, 1)
	default:
		return nil, false
	}

	if _, err := rrule.NewRRule(*opt); err != nil {
		return nil, false
	}
	return opt, true
}

// RuleString returns the RRULE body for s.
func (s Selection) RuleString() string {
	opt, ok := s.Rule()
	if !ok {
		return ""
	}
	return opt.RRuleString()
}
