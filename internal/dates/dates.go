// Package dates provides canonical date/time parsing and day-level helpers.
//
// This package exists to avoid duplicating date handling across:
// - the selection engine (day equality, combining date and time)
// - constraint evaluation (day-level bounds checks)
// - CLI date args and the TUI text entry
package dates

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DateLayout is the canonical YYYY-MM-DD layout.
const DateLayout = "2006-01-02"

var (
	dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRegex = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
)

// TimeValue is a validated wall-clock time of day.
type TimeValue struct {
	Hours   int // 0-23
	Minutes int // 0-59
}

// IsValidDate checks if a string is a valid YYYY-MM-DD date.
func IsValidDate(s string) bool {
	if !dateRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if !IsValidDate(s) {
		return time.Time{}, fmt.Errorf("invalid date: %q", s)
	}
	return time.Parse(DateLayout, s)
}

// ParseTime parses a time of day in H:MM or HH:MM form.
// Returns false for anything that is not a valid wall-clock time,
// including out-of-range hours or minutes. Malformed time text is an
// expected user-input condition, so there is no error return.
func ParseTime(s string) (TimeValue, bool) {
	m := timeRegex.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return TimeValue{}, false
	}
	// The regex guarantees digits, so manual conversion cannot fail.
	hours := atoi(m[1])
	minutes := atoi(m[2])
	if hours > 23 || minutes > 59 {
		return TimeValue{}, false
	}
	return TimeValue{Hours: hours, Minutes: minutes}, true
}

func atoi(s string) int {
	n := 0
	for _, ch := range s {
		n = n*10 + int(ch-'0')
	}
	return n
}

// Combine sets the hour and minute components on a date, leaving the
// calendar day untouched.
func Combine(date time.Time, tv TimeValue) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), tv.Hours, tv.Minutes, 0, 0, date.Location())
}

// StartOfDay truncates a timestamp to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// BeforeDay reports whether a falls on an earlier calendar day than b,
// ignoring time of day.
func BeforeDay(a, b time.Time) bool {
	return StartOfDay(a).Before(StartOfDay(b))
}

// AfterDay reports whether a falls on a later calendar day than b,
// ignoring time of day.
func AfterDay(a, b time.Time) bool {
	return StartOfDay(a).After(StartOfDay(b))
}

// ParseDateArg parses a CLI date argument which can be:
// - "today", "yesterday", "tomorrow" (relative dates)
// - "YYYY-MM-DD" format (absolute date)
// - Empty string defaults to today
func ParseDateArg(arg string, now time.Time) (time.Time, error) {
	if arg == "" {
		return StartOfDay(now), nil
	}

	dateArg := strings.ToLower(strings.TrimSpace(arg))
	if resolved, ok := ResolveRelativeKeyword(dateArg, now); ok {
		return resolved, nil
	}
	parsed, err := ParseDate(dateArg)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format '%s', use YYYY-MM-DD or today/yesterday/tomorrow", dateArg)
	}
	return parsed, nil
}

// ParseMonthArg parses a CLI month argument in YYYY-MM form.
// An empty string defaults to the month containing now.
func ParseMonthArg(arg string, now time.Time) (time.Time, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), nil
	}
	t, err := time.Parse("2006-01", arg)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q, use YYYY-MM", arg)
	}
	return t, nil
}
