package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/mo"
)

// calendarModel is the month grid. It only moves a cursor; choosing a day
// is reported back to the picker with dateChosenMsg.
type calendarModel struct {
	cursor    time.Time
	weekStart time.Weekday
}

// dateChosenMsg carries the date picked on the grid.
type dateChosenMsg struct {
	date time.Time
}

func newCalendarModel(today time.Time, weekStart time.Weekday) calendarModel {
	return calendarModel{
		cursor:    time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location()),
		weekStart: weekStart,
	}
}

func (c *calendarModel) move(days int) {
	c.cursor = c.cursor.AddDate(0, 0, days)
}

// moveMonth shifts the cursor by n months, clamping the day to the end of
// the target month (Jan 31 + 1 month = Feb 29 in 2024).
func (c *calendarModel) moveMonth(n int) {
	first := time.Date(c.cursor.Year(), c.cursor.Month()+time.Month(n), 1, 0, 0, 0, 0, c.cursor.Location())
	day := min(c.cursor.Day(), daysIn(first.Year(), first.Month(), first.Location()))
	c.cursor = first.AddDate(0, 0, day-1)
}

// jump moves the cursor to t.
func (c *calendarModel) jump(t time.Time) {
	c.cursor = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func (c calendarModel) update(msg tea.KeyMsg) (calendarModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Left):
		c.move(-1)
	case key.Matches(msg, keys.Right):
		c.move(1)
	case key.Matches(msg, keys.Up):
		c.move(-7)
	case key.Matches(msg, keys.Down):
		c.move(7)
	case key.Matches(msg, keys.PrevMonth):
		c.moveMonth(-1)
	case key.Matches(msg, keys.NextMonth):
		c.moveMonth(1)
	case key.Matches(msg, keys.Select):
		d := c.cursor
		return c, func() tea.Msg { return dateChosenMsg{date: d} }
	}
	return c, nil
}

// weeks returns the grid rows for the cursor's month. Each row has seven
// days starting at weekStart; days outside the month are included so the
// grid is rectangular.
func (c calendarModel) weeks() [][]time.Time {
	first := time.Date(c.cursor.Year(), c.cursor.Month(), 1, 0, 0, 0, 0, c.cursor.Location())
	offset := (int(first.Weekday()) - int(c.weekStart) + 7) % 7
	start := first.AddDate(0, 0, -offset)

	var rows [][]time.Time
	day := start
	for {
		row := make([]time.Time, 7)
		for i := range row {
			row[i] = day
			day = day.AddDate(0, 0, 1)
		}
		rows = append(rows, row)
		if day.Month() != first.Month() {
			break
		}
	}
	return rows
}

func (c calendarModel) weekdayHeader() []string {
	names := make([]string, 7)
	for i := range names {
		wd := time.Weekday((int(c.weekStart) + i) % 7)
		names[i] = wd.String()[:2]
	}
	return names
}

func (c calendarModel) view(selected mo.Option[time.Time], today time.Time) string {
	title := titleStyle.Render(c.cursor.Format("January 2006"))

	var header []string
	for _, n := range c.weekdayHeader() {
		header = append(header, weekdayHeaderStyle.Render(n))
	}

	rows := []string{title, lipgloss.JoinHorizontal(lipgloss.Top, header...)}
	sel, hasSel := selected.Get()
	for _, week := range c.weeks() {
		var cells []string
		for _, d := range week {
			style := dayStyle
			switch {
			case sameDay(d, c.cursor):
				style = cursorDayStyle
			case hasSel && sameDay(d, sel):
				style = selectedDayStyle
			case sameDay(d, today):
				style = todayStyle
			case d.Month() != c.cursor.Month():
				style = outsideDayStyle
			}
			cells = append(cells, style.Render(d.Format("2")))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}
