package format

import (
	"testing"
	"time"
)

func TestNativePassThrough(t *testing.T) {
	d := time.Date(2025, time.April, 5, 9, 30, 0, 0, time.UTC)
	out := NativeFormat().Apply(d)
	if out.Kind != Native || !out.Time.Equal(d) {
		t.Fatalf("native format should pass the value through, got %+v", out)
	}
	// Callers print Output.Text unconditionally, so Native must render
	// the canonical date text too.
	if out.Text != "2025-04-05" {
		t.Fatalf("native text = %q, want 2025-04-05", out.Text)
	}
}

func TestISORoundTrip(t *testing.T) {
	d := time.Date(2025, time.April, 5, 9, 30, 0, 0, time.UTC)
	f := ISOFormat()

	out := f.Apply(d)
	if out.Text != "2025-04-05T09:30:00Z" {
		t.Fatalf("unexpected ISO rendering: %q", out.Text)
	}

	back, ok := f.Parse(out.Text)
	if !ok || !back.Equal(d) {
		t.Fatalf("ISO round trip failed: %v ok=%v", back, ok)
	}
}

func TestCustomFormat(t *testing.T) {
	f, err := CustomFormat("DD/MM/YYYY")
	if err != nil {
		t.Fatalf("CustomFormat: %v", err)
	}

	d := time.Date(2025, time.January, 9, 0, 0, 0, 0, time.UTC)
	out := f.Apply(d)
	if out.Text != "09/01/2025" {
		t.Fatalf("unexpected rendering: %q", out.Text)
	}
}

func TestCustomRoundTrip(t *testing.T) {
	patterns := []string{"YYYY-MM-DD", "DD/MM/YYYY", "MM.DD.YYYY", "YYYY-MM-DD HH:mm"}
	d := time.Date(2024, time.December, 31, 23, 45, 0, 0, time.UTC)

	for _, pattern := range patterns {
		f, err := CustomFormat(pattern)
		if err != nil {
			t.Fatalf("CustomFormat(%q): %v", pattern, err)
		}
		rendered := f.Apply(d).Text
		back, ok := f.Parse(rendered)
		if !ok {
			t.Fatalf("pattern %q: failed to parse own rendering %q", pattern, rendered)
		}
		if back.Year() != d.Year() || back.Month() != d.Month() || back.Day() != d.Day() {
			t.Fatalf("pattern %q: round trip changed the day: %v -> %v", pattern, d, back)
		}
	}
}

func TestCustomFormatRejectsUnknownTokens(t *testing.T) {
	for _, pattern := range []string{"YYY-MM-DD", "QQ", "YYYY-MM-XX", ""} {
		if _, err := CustomFormat(pattern); err == nil {
			t.Fatalf("expected error for pattern %q", pattern)
		}
	}
}

func TestParseRejectsInvalidCalendarDates(t *testing.T) {
	f, err := CustomFormat("YYYY-MM-DD")
	if err != nil {
		t.Fatalf("CustomFormat: %v", err)
	}

	for _, text := range []string{"2025-13-01", "2025-02-30", "2025-00-10", "garbage", ""} {
		if _, ok := f.Parse(text); ok {
			t.Fatalf("expected %q to fail parsing", text)
		}
	}
}

func TestParseUserInput(t *testing.T) {
	d, ok := ParseUserInput("15/06/2025", "DD/MM/YYYY")
	if !ok || d.Day() != 15 || d.Month() != time.June || d.Year() != 2025 {
		t.Fatalf("ParseUserInput = %v ok=%v", d, ok)
	}

	if _, ok := ParseUserInput("2025-06-15", "DD/MM/YYYY"); ok {
		t.Fatalf("mismatched layout should fail")
	}
	if _, ok := ParseUserInput("15/06/2025", "bad-pattern"); ok {
		t.Fatalf("invalid pattern should yield a failed parse, not a panic")
	}
}

func TestFormatString(t *testing.T) {
	if NativeFormat().String() != "native" {
		t.Fatalf("unexpected native string")
	}
	if ISOFormat().String() != "iso" {
		t.Fatalf("unexpected iso string")
	}
	f, _ := CustomFormat("YYYY-MM-DD")
	if f.String() != "custom(YYYY-MM-DD)" {
		t.Fatalf("unexpected custom string: %s", f.String())
	}
}
