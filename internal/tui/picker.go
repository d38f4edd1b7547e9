package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/mo"

	"github.com/sadopc/datepick/internal/recurrence"
)

type pickerModel struct {
	model    *recurrence.Model
	calendar calendarModel
	now      func() time.Time
	width    int
	height   int

	formActive bool
	form       *huh.Form
	formType   string // "pattern", "interval"

	// Form field pointers (survive value copies)
	formPattern  *string
	formInterval *string
}

func newPickerModel(m *recurrence.Model, weekStart time.Weekday, now func() time.Time) pickerModel {
	pattern, interval := "", ""
	cursor := now()
	if d, ok := m.Selection().AnchorDate.Get(); ok {
		cursor = d
	}
	return pickerModel{
		model:        m,
		calendar:     newCalendarModel(cursor, weekStart),
		now:          now,
		formPattern:  &pattern,
		formInterval: &interval,
	}
}

func (p *pickerModel) setSize(w, h int) {
	p.width = w
	p.height = h
}

func (p pickerModel) update(msg tea.Msg) (pickerModel, tea.Cmd) {
	if p.formActive && p.form != nil {
		return p.updateForm(msg)
	}

	switch msg := msg.(type) {
	case dateChosenMsg:
		p.model.SelectDate(mo.Some(msg.date))
		return p, nil

	case tea.KeyMsg:
		sel := p.model.Selection()
		switch {
		case key.Matches(msg, keys.Clear):
			p.model.ClearDate()
			return p, nil
		case key.Matches(msg, keys.Today):
			today := p.now()
			p.model.Today(today)
			p.calendar.jump(today)
			return p, nil
		case key.Matches(msg, keys.Recurring):
			p.model.SetRecurring(!sel.Recurring)
			return p, nil
		case key.Matches(msg, keys.Pattern):
			if sel.Recurring {
				return p.showPatternForm()
			}
			return p, nil
		case key.Matches(msg, keys.CycleType):
			if sel.Recurring {
				p.model.SetType(nextType(sel.Type))
			}
			return p, nil
		case key.Matches(msg, keys.Interval):
			if sel.Recurring && sel.Type == recurrence.Custom {
				return p.showIntervalForm()
			}
			return p, nil
		}

		var cmd tea.Cmd
		p.calendar, cmd = p.calendar.update(msg)
		return p, cmd
	}
	return p, nil
}

// nextType cycles through the selectable patterns.
func nextType(t recurrence.Type) recurrence.Type {
	types := recurrence.Types()
	for i, v := range types {
		if v == t {
			return types[(i+1)%len(types)]
		}
	}
	return types[0]
}

func (p pickerModel) showPatternForm() (pickerModel, tea.Cmd) {
	*p.formPattern = p.model.Selection().Type.String()
	p.formType = "pattern"

	types := recurrence.Types()
	options := make([]huh.Option[string], len(types))
	for i, t := range types {
		options[i] = huh.NewOption(t.Label(), t.String())
	}

	p.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Recurrence Pattern").
				Options(options...).
				Value(p.formPattern),
		),
	).WithShowHelp(true).WithShowErrors(true)

	p.formActive = true
	return p, p.form.Init()
}

func (p pickerModel) showIntervalForm() (pickerModel, tea.Cmd) {
	*p.formInterval = strconv.Itoa(p.model.Selection().CustomIntervalDays)
	p.formType = "interval"

	p.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Every").
				Description("days").
				CharLimit(6).
				Value(p.formInterval),
		),
	).WithShowHelp(true).WithShowErrors(true)

	p.formActive = true
	return p, p.form.Init()
}

func (p pickerModel) updateForm(msg tea.Msg) (pickerModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			p.formActive = false
			p.form = nil
			return p, nil
		}
	}

	form, cmd := p.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		p.form = f
	}

	if p.form.State == huh.StateCompleted {
		p.formActive = false
		p.applyForm()
		return p, nil
	}

	return p, cmd
}

func (p pickerModel) applyForm() {
	switch p.formType {
	case "pattern":
		if t, ok := recurrence.ParseType(*p.formPattern); ok {
			p.model.SetType(t)
		}
	case "interval":
		p.model.SetCustomIntervalDays(*p.formInterval)
	}
}

func (p pickerModel) view() string {
	w := p.width - 4

	if p.formActive && p.form != nil {
		title := titleStyle.Render("Recurrence Pattern")
		if p.formType == "interval" {
			title = titleStyle.Render("Custom Interval")
		}
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", p.form.View())
		return activePanelStyle.Width(w).Render(content)
	}

	sel := p.model.Selection()

	head := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Date Picker for events"),
		subtitleStyle.Render("Select a date for your event"),
	)

	button := labelStyle.Render("Select Date") + "  " + highlightStyle.Render("▦ "+anchorText(sel))
	if sel.AnchorDate.IsAbsent() {
		button = labelStyle.Render("Select Date") + "  " + mutedStyle.Render("▦ "+anchorText(sel))
	}

	cal := p.calendar.view(sel.AnchorDate, p.now())

	rows := []string{head, "", button, "", cal, "", p.renderRecurrence(sel)}
	if card := p.renderSummary(sel); card != "" {
		rows = append(rows, "", card)
	}
	rows = append(rows, "", mutedStyle.Render("  enter: pick  c: clear  t: today  r: recurring  e: export"))

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (p pickerModel) renderRecurrence(sel recurrence.Selection) string {
	toggle := mutedStyle.Render("[ ]")
	if sel.Recurring {
		toggle = successStyle.Render("[x]")
	}
	line := fmt.Sprintf("↻ %s %s", labelStyle.Render("Recurring Event"), toggle)
	if !sel.Recurring {
		return line
	}

	rows := []string{line}
	rows = append(rows, fmt.Sprintf("  %s %s", labelStyle.Render("Recurrence Pattern"), selectedItemStyle.Render(sel.Type.Label())))
	if sel.Type == recurrence.Custom {
		rows = append(rows, fmt.Sprintf("  Every %s days", highlightStyle.Render(strconv.Itoa(sel.CustomIntervalDays))))
	}
	rows = append(rows, "  "+mutedStyle.Render(sel.Describe()))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderSummary draws the "Selected Date" card, or "" when no date is set.
func (p pickerModel) renderSummary(sel recurrence.Selection) string {
	sum := sel.Summary()
	date, ok := sum.Date.Get()
	if !ok {
		return ""
	}

	rows := []string{
		labelStyle.Render("Selected Date:"),
		labelStyle.Render("Date:") + " " + date,
		labelStyle.Render("Day of week:") + " " + sum.Weekday.OrEmpty(),
	}
	if rec, ok := sum.Recurrence.Get(); ok {
		rows = append(rows, labelStyle.Render("Recurrence:")+" "+rec)
	}
	return summaryStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
