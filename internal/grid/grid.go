// Package grid generates calendar month grids: the contiguous run of days
// shown for one month, padded to complete weeks under a week-start
// convention. Generation is pure; the same inputs always produce the same
// sequence, including the leading and trailing days that belong to the
// adjacent months.
package grid

import (
	"time"
)

// DaysPerWeek is the length of one grid row.
const DaysPerWeek = 7

// Month returns the ordered run of calendar days displayed for the month
// containing anchor, starting each week on weekStart. The run always spans
// complete weeks, so its length is 35 or 42 depending on how many weeks the
// month straddles. Each entry is a day-start instant in anchor's location.
func Month(anchor time.Time, weekStart time.Weekday) []time.Time {
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	last := first.AddDate(0, 1, -1)

	// Walk back from the first of the month to the week boundary.
	lead := (int(first.Weekday()) - int(weekStart) + DaysPerWeek) % DaysPerWeek
	start := first.AddDate(0, 0, -lead)

	// Walk forward from the last of the month to the end of its week.
	trail := (int(weekStart) + DaysPerWeek - 1 - int(last.Weekday())) % DaysPerWeek
	end := last.AddDate(0, 0, trail)

	days := make([]time.Time, 0, 42)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}

	// A 28-day month aligned with the week start fits exactly four weeks.
	// The grid contract is five or six rows, so pad with the following week.
	for len(days) < 5*DaysPerWeek {
		days = append(days, days[len(days)-1].AddDate(0, 0, 1))
	}
	return days
}

// Weeks splits a Month run into rows of seven days.
func Weeks(days []time.Time) [][]time.Time {
	weeks := make([][]time.Time, 0, len(days)/DaysPerWeek)
	for i := 0; i+DaysPerWeek <= len(days); i += DaysPerWeek {
		weeks = append(weeks, days[i:i+DaysPerWeek])
	}
	return weeks
}

// WeekdayLabels returns the seven weekday headers for a grid row, in
// display order for the given week start. The label function lets callers
// supply localized names; passing nil uses English two-letter abbreviations.
func WeekdayLabels(weekStart time.Weekday, label func(time.Weekday) string) []string {
	if label == nil {
		label = func(d time.Weekday) string { return d.String()[:2] }
	}
	out := make([]string, DaysPerWeek)
	for i := 0; i < DaysPerWeek; i++ {
		out[i] = label(time.Weekday((int(weekStart) + i) % DaysPerWeek))
	}
	return out
}

// PrevMonth returns the first day of the month before anchor's month.
func PrevMonth(anchor time.Time) time.Time {
	return time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location()).AddDate(0, -1, 0)
}

// NextMonth returns the first day of the month after anchor's month.
func NextMonth(anchor time.Time) time.Time {
	return time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location()).AddDate(0, 1, 0)
}

// ParseWeekStart maps a config string to a weekday. Supported values are
// "monday" (default) and "sunday", matching the config file contract.
func ParseWeekStart(s string) time.Weekday {
	if s == "sunday" {
		return time.Sunday
	}
	return time.Monday
}
