package preset

import (
	"testing"
	"time"

	"github.com/calpick/calpick/internal/dates"
)

// Wednesday mid-month, mid-day.
var now = time.Date(2025, time.June, 18, 15, 45, 0, 0, time.UTC)

func resolve(t *testing.T, name string) Range {
	t.Helper()
	p, err := Lookup(name)
	if err != nil {
		t.Fatalf("Lookup(%q): %v", name, err)
	}
	return p.Resolve(now)
}

func TestToday(t *testing.T) {
	r := resolve(t, "today")
	want := dates.StartOfDay(now)
	if !r.Start.Equal(want) || !r.End.Equal(want) {
		t.Fatalf("today = %v..%v, want %v", r.Start, r.End, want)
	}
}

func TestYesterday(t *testing.T) {
	r := resolve(t, "yesterday")
	if r.Start.Day() != 17 || r.End.Day() != 17 {
		t.Fatalf("yesterday = %v..%v", r.Start, r.End)
	}
}

func TestLast7Days(t *testing.T) {
	r := resolve(t, "last-7-days")
	if r.Start.Day() != 12 || r.End.Day() != 18 {
		t.Fatalf("last-7-days = %v..%v, want 12..18", r.Start, r.End)
	}
	if r.End.Sub(r.Start) != 6*24*time.Hour {
		t.Fatalf("last-7-days should span 7 calendar days inclusive")
	}
}

func TestLast30Days(t *testing.T) {
	r := resolve(t, "last-30-days")
	if r.Start.Format(dates.DateLayout) != "2025-05-20" || r.End.Day() != 18 {
		t.Fatalf("last-30-days = %v..%v", r.Start, r.End)
	}
}

func TestThisWeek(t *testing.T) {
	r := resolve(t, "this-week")
	// June 18 2025 is a Wednesday; week runs Mon 16 .. Sun 22.
	if r.Start.Format(dates.DateLayout) != "2025-06-16" || r.End.Format(dates.DateLayout) != "2025-06-22" {
		t.Fatalf("this-week = %v..%v", r.Start, r.End)
	}
}

func TestThisMonth(t *testing.T) {
	r := resolve(t, "this-month")
	if r.Start.Day() != 1 || r.End.Day() != 30 || r.End.Month() != time.June {
		t.Fatalf("this-month = %v..%v", r.Start, r.End)
	}
}

func TestThisYear(t *testing.T) {
	r := resolve(t, "this-year")
	if r.Start.Format(dates.DateLayout) != "2025-01-01" || r.End.Format(dates.DateLayout) != "2025-12-31" {
		t.Fatalf("this-year = %v..%v", r.Start, r.End)
	}
}

func TestAllPresetsWellFormed(t *testing.T) {
	for _, p := range Catalog() {
		r := p.Resolve(now)
		if r.Start.After(r.End) {
			t.Fatalf("preset %s resolved inverted range %v..%v", p.Name, r.Start, r.End)
		}
		if r.Start.Hour() != 0 || r.End.Hour() != 0 {
			t.Fatalf("preset %s should resolve to day-start instants", p.Name)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("last-century"); err == nil {
		t.Fatalf("expected error for unknown preset")
	}
	if p, err := Lookup(" TODAY "); err != nil || p.Name != "today" {
		t.Fatalf("lookup should be case-insensitive, got %v err=%v", p.Name, err)
	}
}
