package recurrence

import (
	"testing"
	"time"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teambition/rrule-go"
)

func TestRuleAbsentWhenNotRecurring(t *testing.T) {
	m := New(friday)
	_, ok := m.Rule()
	assert.False(t, ok)
	assert.Empty(t, m.RuleString())
}

func TestRuleByType(t *testing.T) {
	tests := []struct {
		name  string
		typ   Type
		freq  rrule.Frequency
		parts []string
	}{
		{"daily", Daily, rrule.DAILY, []string{"FREQ=DAILY"}},
		{"weekly", Weekly, rrule.WEEKLY, []string{"FREQ=WEEKLY", "BYDAY=FR"}},
		{"biweekly", BiWeekly, rrule.WEEKLY, []string{"FREQ=WEEKLY", "INTERVAL=2", "BYDAY=FR"}},
		{"monthly", Monthly, rrule.MONTHLY, []string{"FREQ=MONTHLY", "BYMONTHDAY=15"}},
		{"yearly", Yearly, rrule.YEARLY, []string{"FREQ=YEARLY", "BYMONTH=3", "BYMONTHDAY=15"}},
		{"custom", Custom, rrule.DAILY, []string{"FREQ=DAILY", "INTERVAL=4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(friday)
			m.SetRecurring(true)
			m.SetType(tt.typ)

			opt, ok := m.Rule()
			require.True(t, ok)
			assert.Equal(t, tt.freq, opt.Freq)
			assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), opt.Dtstart)

			s := m.RuleString()
			assert.NotContains(t, s, "DTSTART")
			for _, p := range tt.parts {
				assert.Contains(t, s, p)
			}
		})
	}
}

func TestRuleWithoutAnchorDate(t *testing.T) {
	m := New(friday)
	m.SetRecurring(true)
	m.SetType(Yearly)
	m.ClearDate()

	opt, ok := m.Rule()
	require.True(t, ok)
	assert.True(t, opt.Dtstart.IsZero())
	assert.Empty(t, opt.Bymonth)
	assert.Empty(t, opt.Bymonthday)
	assert.Contains(t, m.RuleString(), "FREQ=YEARLY")
	assert.NotContains(t, m.RuleString(), "BYMONTH")
}

func TestRuleStringParses(t *testing.T) {
	m := New(friday)
	m.SetRecurring(true)
	m.SetType(Custom)
	m.SetCustomIntervalDays("10")

	opt, err := rrule.StrToROption(m.RuleString())
	require.NoError(t, err)
	assert.Equal(t, rrule.DAILY, opt.Freq)
	assert.Equal(t, 10, opt.Interval)
}

func TestRuleWeekdayMapping(t *testing.T) {
	// 2024-03-10 is a Sunday.
	for i, want := range []string{"SU", "MO", "TU", "WE", "TH", "FR", "SA"} {
		sel := Selection{
			AnchorDate: mo.Some(time.Date(2024, 3, 10+i, 0, 0, 0, 0, time.UTC)),
			Recurring:  true,
			Type:       Weekly,
		}
		assert.Contains(t, sel.RuleString(), "BYDAY="+want)
	}
}
