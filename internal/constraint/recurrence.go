package constraint

import (
	"fmt"
	"sync"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/calpick/calpick/internal/dates"
)

// occurrenceCap bounds a single expansion window so a pathological rule
// cannot stall an interaction.
const occurrenceCap = 5000

// Recurrence disables every day an RFC 5545 RRULE produces. Expansion is
// windowed and memoized per window, so repeated evaluation over one visible
// month costs a single rule expansion.
type Recurrence struct {
	rule *rrule.RRule

	mu     sync.Mutex
	winLo  time.Time
	winHi  time.Time
	window DaySet
}

// NewRecurrence parses an RRULE string such as
// "FREQ=WEEKLY;BYDAY=SA,SU" into a disabled-day rule. The rule's DTSTART
// anchors expansion; when the string carries none, start is used.
func NewRecurrence(raw string, start time.Time) (*Recurrence, error) {
	r, err := rrule.StrToRRule(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid recurrence rule %q: %w", raw, err)
	}
	if r.OrigOptions.Dtstart.IsZero() {
		r.DTStart(dates.StartOfDay(start))
	}
	return &Recurrence{rule: r}, nil
}

// Disables implements Rule. The day is tested against the rule's
// occurrences within the surrounding window.
func (rc *Recurrence) Disables(day time.Time) bool {
	day = dates.StartOfDay(day)

	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.window == nil || day.Before(rc.winLo) || day.After(rc.winHi) {
		rc.expandAround(day)
	}
	return rc.window.Disables(day)
}

// expandAround recomputes the memoized window centered on day. The window
// spans three months so month navigation in either direction stays inside it.
func (rc *Recurrence) expandAround(day time.Time) {
	lo := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location()).AddDate(0, -1, 0)
	hi := lo.AddDate(0, 3, -1)

	occurrences := rc.rule.Between(lo.Add(-24*time.Hour), hi.Add(24*time.Hour), true)
	if len(occurrences) > occurrenceCap {
		occurrences = occurrences[:occurrenceCap]
	}

	window := make(DaySet, len(occurrences))
	for _, occ := range occurrences {
		window.Add(occ)
	}

	rc.winLo = lo
	rc.winHi = hi
	rc.window = window
}
