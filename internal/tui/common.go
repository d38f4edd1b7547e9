package tui

import (
	"time"

	"github.com/sadopc/datepick/internal/recurrence"
)

// viewState represents the currently active view.
type viewState int

const (
	viewPicker viewState = iota
	viewSettings
)

var viewNames = []string{"Picker", "Settings"}

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

type exportDoneMsg struct {
	path string
}

type settingsSavedMsg struct{}

// --- Helpers ---

// anchorText is the label of the date button: the chosen date or a prompt.
func anchorText(sel recurrence.Selection) string {
	if d, ok := sel.AnchorDate.Get(); ok {
		return recurrence.DisplayDate(d)
	}
	return "Pick a date"
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
