package recurrence

import (
	"testing"
	"time"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-03-15 is a Friday.
var friday = time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

func TestNewDefaults(t *testing.T) {
	m := New(friday)
	sel := m.Selection()

	date, ok := sel.AnchorDate.Get()
	require.True(t, ok, "anchor should default to today")
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), date)
	assert.False(t, sel.Recurring)
	assert.Equal(t, None, sel.Type)
	assert.Equal(t, 4, sel.CustomIntervalDays)
}

func TestSetRecurring(t *testing.T) {
	m := New(friday)

	m.SetRecurring(true)
	assert.True(t, m.Selection().Recurring)
	assert.Equal(t, Weekly, m.Selection().Type, "enabling from None defaults to Weekly")

	m.SetType(Monthly)
	m.SetRecurring(false)
	assert.False(t, m.Selection().Recurring)
	assert.Equal(t, None, m.Selection().Type, "disabling resets the type")

	m.SetRecurring(true)
	assert.Equal(t, Weekly, m.Selection().Type)
}

func TestSetRecurringKeepsExistingType(t *testing.T) {
	m := New(friday)
	m.SetRecurring(true)
	m.SetType(Yearly)

	m.SetRecurring(true)
	assert.Equal(t, Yearly, m.Selection().Type)
}

func TestSetTypeIgnoredWhenNotRecurring(t *testing.T) {
	m := New(friday)
	m.SetType(Daily)
	assert.Equal(t, None, m.Selection().Type)
	assert.Equal(t, "No recurrence", m.Describe())
}

func TestSetTypeNoneTurnsRecurrenceOff(t *testing.T) {
	m := New(friday)
	m.SetRecurring(true)
	m.SetType(None)

	sel := m.Selection()
	assert.False(t, sel.Recurring)
	assert.Equal(t, None, sel.Type)
}

func TestSetTypeRejectsUnknown(t *testing.T) {
	m := New(friday)
	m.SetRecurring(true)
	m.SetType(Type(42))
	assert.Equal(t, Weekly, m.Selection().Type)
}

func TestSetTypeLeavesCustomInterval(t *testing.T) {
	m := New(friday)
	m.SetRecurring(true)
	m.SetCustomIntervalDays("9")
	m.SetType(Daily)
	assert.Equal(t, 9, m.Selection().CustomIntervalDays)
}

func TestSetCustomIntervalDays(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"0", 1},
		{"", 1},
		{"-5", 1},
		{"abc", 1},
		{"7", 7},
		{" 12 ", 12},
		{"1", 1},
		{"3.5", 1},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			m := New(friday)
			m.SetCustomIntervalDays(tt.raw)
			assert.Equal(t, tt.want, m.Selection().CustomIntervalDays)
		})
	}
}

func TestSetCustomInterval(t *testing.T) {
	m := New(friday)
	m.SetCustomInterval(-3)
	assert.Equal(t, 1, m.Selection().CustomIntervalDays)
	m.SetCustomInterval(30)
	assert.Equal(t, 30, m.Selection().CustomIntervalDays)
}

func TestSelectDateKeepsRecurrence(t *testing.T) {
	m := New(friday)
	m.SetRecurring(true)
	m.SetType(BiWeekly)

	m.SelectDate(mo.Some(time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC)))
	sel := m.Selection()
	assert.True(t, sel.Recurring)
	assert.Equal(t, BiWeekly, sel.Type)
	assert.Equal(t, "every 2 weeks on Monday", m.Describe())
}

func TestSelectDateIdempotent(t *testing.T) {
	m := New(friday)
	m.SetRecurring(true)
	d := mo.Some(time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC))

	m.SelectDate(d)
	first := m.Describe()
	m.SelectDate(d)
	assert.Equal(t, first, m.Describe())
}

func TestClearAndToday(t *testing.T) {
	m := New(friday)
	m.ClearDate()
	assert.True(t, m.Selection().AnchorDate.IsAbsent())

	m.Today(time.Date(2024, 12, 25, 23, 59, 0, 0, time.UTC))
	date, ok := m.Selection().AnchorDate.Get()
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC), date)
}

func TestDescribeTable(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		date mo.Option[time.Time]
		want string
	}{
		{"daily", Daily, mo.Some(friday), "Repeats every day"},
		{"weekly", Weekly, mo.Some(friday), "Repeats every Friday"},
		{"weekly no date", Weekly, mo.None[time.Time](), "Repeats every week"},
		{"biweekly", BiWeekly, mo.Some(friday), "every 2 weeks on Friday"},
		{"biweekly no date", BiWeekly, mo.None[time.Time](), "every 2 weeks on "},
		{"monthly", Monthly, mo.Some(friday), "Repeats monthly on the 15th"},
		{"monthly 1st", Monthly, mo.Some(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)), "Repeats monthly on the 1st"},
		{"monthly 22nd", Monthly, mo.Some(time.Date(2024, 5, 22, 0, 0, 0, 0, time.UTC)), "Repeats monthly on the 22nd"},
		{"monthly 11th", Monthly, mo.Some(time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC)), "Repeats monthly on the 11th"},
		{"monthly no date", Monthly, mo.None[time.Time](), "Repeats monthly on the "},
		{"yearly", Yearly, mo.Some(friday), "Repeats yearly on March 15"},
		{"yearly no date", Yearly, mo.None[time.Time](), "Repeats yearly on "},
		{"custom", Custom, mo.Some(friday), "Repeats every 4 days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := Selection{
				AnchorDate:         tt.date,
				Recurring:          true,
				Type:               tt.typ,
				CustomIntervalDays: DefaultCustomInterval,
			}
			assert.Equal(t, tt.want, sel.Describe())
		})
	}
}

func TestDescribeNotRecurringIgnoresStaleType(t *testing.T) {
	for _, typ := range append(Types(), None) {
		sel := Selection{AnchorDate: mo.Some(friday), Type: typ, CustomIntervalDays: 3}
		assert.Equal(t, "No recurrence", sel.Describe(), "type %s", typ)
	}
}

func TestDescribePluralization(t *testing.T) {
	m := New(friday)
	m.SetRecurring(true)
	m.SetType(Custom)

	m.SetCustomIntervalDays("1")
	assert.Equal(t, "Repeats every 1 day", m.Describe())

	m.SetCustomIntervalDays("2")
	assert.Equal(t, "Repeats every 2 days", m.Describe())
}

func TestScenarios(t *testing.T) {
	m := New(friday)
	assert.Equal(t, "No recurrence", m.Describe())

	m.SetRecurring(true)
	assert.Equal(t, Weekly, m.Selection().Type)
	assert.Equal(t, "Repeats every Friday", m.Describe())

	m.SetType(Custom)
	m.SetCustomIntervalDays("10")
	assert.Equal(t, "Repeats every 10 days", m.Describe())

	m.SetType(Monthly)
	m.SelectDate(mo.None[time.Time]())
	assert.Equal(t, "Repeats monthly on the ", m.Describe())
}

func TestSummary(t *testing.T) {
	m := New(friday)

	sum := m.Summary()
	assert.Equal(t, mo.Some("March 15, 2024"), sum.Date)
	assert.Equal(t, mo.Some("Friday"), sum.Weekday)
	assert.True(t, sum.Recurrence.IsAbsent(), "no recurrence line while not recurring")

	m.SetRecurring(true)
	sum = m.Summary()
	assert.Equal(t, mo.Some("Repeats every Friday"), sum.Recurrence)

	m.ClearDate()
	sum = m.Summary()
	assert.True(t, sum.Date.IsAbsent())
	assert.True(t, sum.Weekday.IsAbsent())
	assert.True(t, sum.Recurrence.IsAbsent())
}

func TestSubscribe(t *testing.T) {
	m := New(friday)

	var got []Selection
	unsubscribe := m.Subscribe(func(s Selection) { got = append(got, s) })

	m.SetRecurring(true)
	m.SetType(Daily)
	m.SetCustomIntervalDays("x")
	require.Len(t, got, 3)
	assert.Equal(t, Weekly, got[0].Type)
	assert.Equal(t, Daily, got[1].Type)
	assert.Equal(t, 1, got[2].CustomIntervalDays)

	unsubscribe()
	m.ClearDate()
	assert.Len(t, got, 3)
}

func TestSubscribeOrder(t *testing.T) {
	m := New(friday)

	var order []string
	m.Subscribe(func(Selection) { order = append(order, "a") })
	unsubB := m.Subscribe(func(Selection) { order = append(order, "b") })
	m.Subscribe(func(Selection) { order = append(order, "c") })

	m.ClearDate()
	assert.Equal(t, []string{"a", "b", "c"}, order)

	unsubB()
	order = nil
	m.ClearDate()
	assert.Equal(t, []string{"a", "c"}, order)
}

func TestUnsubscribeDuringNotify(t *testing.T) {
	m := New(friday)

	var order []string
	var unsubA func()
	unsubA = m.Subscribe(func(Selection) {
		order = append(order, "a")
		unsubA()
	})
	m.Subscribe(func(Selection) { order = append(order, "b") })
	m.Subscribe(func(Selection) { order = append(order, "c") })

	m.ClearDate()
	assert.Equal(t, []string{"a", "b", "c"}, order)

	order = nil
	m.Today(friday)
	assert.Equal(t, []string{"b", "c"}, order)
}

func TestUnsubscribeOtherDuringNotify(t *testing.T) {
	m := New(friday)

	var order []string
	var unsubB func()
	m.Subscribe(func(Selection) {
		order = append(order, "a")
		unsubB()
	})
	unsubB = m.Subscribe(func(Selection) { order = append(order, "b") })
	m.Subscribe(func(Selection) { order = append(order, "c") })

	m.ClearDate()
	assert.Equal(t, []string{"a", "c"}, order)
}

func TestZeroModelSubscribe(t *testing.T) {
	var m Model

	calls := 0
	unsubscribe := m.Subscribe(func(Selection) { calls++ })
	m.SetRecurring(true)
	assert.Equal(t, 1, calls)
	assert.Equal(t, Weekly, m.Selection().Type)

	unsubscribe()
	m.SetRecurring(false)
	assert.Equal(t, 1, calls)
}

func TestSetTypeIgnoredDoesNotNotify(t *testing.T) {
	m := New(friday)
	calls := 0
	m.Subscribe(func(Selection) { calls++ })

	m.SetType(Daily)
	assert.Zero(t, calls)
}
