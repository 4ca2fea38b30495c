package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/calpick/calpick/internal/grid"
)

// DayState classifies one grid cell for rendering. States are exclusive;
// the classifier picks the strongest that applies.
type DayState int

const (
	// DayNormal is a plain selectable day inside the anchor month.
	DayNormal DayState = iota
	// DayAdjacent is a leading/trailing day from a neighboring month.
	DayAdjacent
	// DayDisabled is unselectable under the active constraints.
	DayDisabled
	// DaySelected is part of the committed selection.
	DaySelected
	// DayPreview is inside the advisory hover interval of an open gesture.
	DayPreview
	// DayCursor is the focused cell in the interactive picker.
	DayCursor
	// DayToday is the current day, when nothing stronger applies.
	DayToday
)

// CalendarView renders one month grid as styled terminal text.
type CalendarView struct {
	// Anchor selects the displayed month.
	Anchor time.Time
	// WeekStart is the first day of each row.
	WeekStart time.Weekday
	// Label supplies weekday header names; nil uses English abbreviations.
	Label func(time.Weekday) string
	// Classify assigns a state per day; nil renders everything DayNormal.
	Classify func(day time.Time) DayState
}

const cellWidth = 4

// Render produces the grid: a month header, a weekday header row, and
// five or six week rows.
func (v CalendarView) Render() string {
	classify := v.Classify
	if classify == nil {
		classify = func(time.Time) DayState { return DayNormal }
	}

	days := grid.Month(v.Anchor, v.WeekStart)
	rowWidth := grid.DaysPerWeek * cellWidth

	var b strings.Builder

	header := v.Anchor.Format("January 2006")
	b.WriteString(AccentBold.Width(rowWidth).Align(lipgloss.Center).Render(header))
	b.WriteString("\n")

	for _, label := range grid.WeekdayLabels(v.WeekStart, v.Label) {
		b.WriteString(Muted.Render(padCell(label)))
	}
	b.WriteString("\n")

	for _, week := range grid.Weeks(days) {
		for _, day := range week {
			b.WriteString(v.renderCell(day, classify(day)))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (v CalendarView) renderCell(day time.Time, state DayState) string {
	text := padCell(fmt.Sprintf("%2d", day.Day()))

	switch state {
	case DayAdjacent:
		return Muted.Render(text)
	case DayDisabled:
		return Disabled.Render(text)
	case DaySelected:
		return Selected.Render(text)
	case DayPreview:
		return Preview.Render(text)
	case DayCursor:
		return Cursor.Render(text)
	case DayToday:
		return Bold.Render(text)
	default:
		return text
	}
}

// padCell centers content in a fixed-width cell so styled and unstyled
// cells line up.
func padCell(s string) string {
	if len(s) >= cellWidth {
		return s[:cellWidth]
	}
	left := (cellWidth - len(s)) / 2
	right := cellWidth - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
