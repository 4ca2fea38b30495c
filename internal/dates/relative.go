package dates

import (
	"strings"
	"time"
)

var relativeKeywords = map[string]int{
	"today":     0,
	"tomorrow":  1,
	"yesterday": -1,
}

// NormalizeRelativeKeyword normalizes and validates a relative date keyword.
// Returns the canonical keyword and true when valid.
func NormalizeRelativeKeyword(value string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if _, ok := relativeKeywords[normalized]; !ok {
		return "", false
	}
	return normalized, true
}

// ResolveRelativeKeyword resolves a relative date keyword against "now",
// returning a day-start instant. Shared by CLI date args and the TUI text
// entry so that typing "today" behaves like clicking today's cell.
func ResolveRelativeKeyword(value string, now time.Time) (time.Time, bool) {
	keyword, ok := NormalizeRelativeKeyword(value)
	if !ok {
		return time.Time{}, false
	}
	return StartOfDay(now).AddDate(0, 0, relativeKeywords[keyword]), true
}
