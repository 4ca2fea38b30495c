// Package constraint decides whether a calendar day is selectable.
//
// Evaluation order is fixed: the min bound, then the max bound, then the
// disabled rule. Bounds take precedence so a custom rule never needs to
// re-check them.
package constraint

import (
	"time"

	"github.com/calpick/calpick/internal/dates"
)

// Rule marks individual days as disabled. Implementations are the closed
// set in this package: day sets, predicates, and recurrences.
type Rule interface {
	// Disables reports whether the rule disables the given day.
	Disables(day time.Time) bool
}

// Constraints bounds and filters selectable days. The zero value allows
// everything.
type Constraints struct {
	// Min, if non-nil, disables days strictly before it.
	Min *time.Time
	// Max, if non-nil, disables days strictly after it.
	Max *time.Time
	// Disabled, if non-nil, disables days the rule matches.
	Disabled Rule
}

// IsDisabled reports whether day is unselectable under c. Comparison is at
// day granularity; time of day never affects the outcome.
func (c Constraints) IsDisabled(day time.Time) bool {
	if c.Min != nil && dates.BeforeDay(day, *c.Min) {
		return true
	}
	if c.Max != nil && dates.AfterDay(day, *c.Max) {
		return true
	}
	if c.Disabled != nil {
		return c.Disabled.Disables(day)
	}
	return false
}

// DaySet disables an enumerated set of days. Membership is same-day
// equality regardless of time of day or location offset within the day.
type DaySet map[string]struct{}

// NewDaySet builds a DaySet from explicit days.
func NewDaySet(days ...time.Time) DaySet {
	s := make(DaySet, len(days))
	for _, d := range days {
		s.Add(d)
	}
	return s
}

// Add marks a day as disabled.
func (s DaySet) Add(day time.Time) {
	s[day.Format(dates.DateLayout)] = struct{}{}
}

// Disables implements Rule.
func (s DaySet) Disables(day time.Time) bool {
	_, ok := s[day.Format(dates.DateLayout)]
	return ok
}

// Predicate adapts a plain function into a Rule.
type Predicate func(day time.Time) bool

// Disables implements Rule.
func (p Predicate) Disables(day time.Time) bool {
	return p(day)
}

// Weekdays disables every occurrence of the listed weekdays.
func Weekdays(days ...time.Weekday) Rule {
	set := make(map[time.Weekday]struct{}, len(days))
	for _, d := range days {
		set[d] = struct{}{}
	}
	return Predicate(func(day time.Time) bool {
		_, ok := set[day.Weekday()]
		return ok
	})
}

// Any combines rules; a day is disabled when any rule disables it.
func Any(rules ...Rule) Rule {
	return Predicate(func(day time.Time) bool {
		for _, r := range rules {
			if r != nil && r.Disables(day) {
				return true
			}
		}
		return false
	})
}
