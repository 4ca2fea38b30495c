// Package preset enumerates the named quick ranges offered beside the
// calendar. Each preset is a pure function of "now"; resolving one never
// touches selection state.
package preset

import (
	"fmt"
	"strings"
	"time"

	"github.com/calpick/calpick/internal/dates"
)

// Preset is a named range generator.
type Preset struct {
	// Name is the canonical identifier, e.g. "last-7-days".
	Name string
	// Label is the display name, e.g. "Last 7 Days".
	Label string
	// Resolve computes the range for a given now. Both endpoints are
	// day-start instants and Resolve(now).Start never exceeds .End.
	Resolve func(now time.Time) Range
}

// Range is a resolved preset interval, inclusive on both ends.
type Range struct {
	Start time.Time
	End   time.Time
}

// Catalog returns the fixed preset list, in display order.
func Catalog() []Preset {
	return []Preset{
		{
			Name:  "today",
			Label: "Today",
			Resolve: func(now time.Time) Range {
				d := dates.StartOfDay(now)
				return Range{Start: d, End: d}
			},
		},
		{
			Name:  "yesterday",
			Label: "Yesterday",
			Resolve: func(now time.Time) Range {
				d := dates.StartOfDay(now).AddDate(0, 0, -1)
				return Range{Start: d, End: d}
			},
		},
		{
			Name:  "last-7-days",
			Label: "Last 7 Days",
			Resolve: func(now time.Time) Range {
				end := dates.StartOfDay(now)
				return Range{Start: end.AddDate(0, 0, -6), End: end}
			},
		},
		{
			Name:  "last-30-days",
			Label: "Last 30 Days",
			Resolve: func(now time.Time) Range {
				end := dates.StartOfDay(now)
				return Range{Start: end.AddDate(0, 0, -29), End: end}
			},
		},
		{
			Name:  "this-week",
			Label: "This Week",
			Resolve: func(now time.Time) Range {
				d := dates.StartOfDay(now)
				back := (int(d.Weekday()) - int(time.Monday) + 7) % 7
				start := d.AddDate(0, 0, -back)
				return Range{Start: start, End: start.AddDate(0, 0, 6)}
			},
		},
		{
			Name:  "this-month",
			Label: "This Month",
			Resolve: func(now time.Time) Range {
				start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
				return Range{Start: start, End: start.AddDate(0, 1, -1)}
			},
		},
		{
			Name:  "this-year",
			Label: "This Year",
			Resolve: func(now time.Time) Range {
				start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
				return Range{Start: start, End: time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, now.Location())}
			},
		},
	}
}

// Lookup finds a preset by name, case-insensitively.
func Lookup(name string) (Preset, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "-")
	for _, p := range Catalog() {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("unknown preset %q, run 'calpick presets' to list them", name)
}
