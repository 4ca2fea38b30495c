package dates

import (
	"testing"
	"time"
)

func TestNormalizeRelativeKeyword(t *testing.T) {
	if got, ok := NormalizeRelativeKeyword(" Today "); !ok || got != "today" {
		t.Fatalf("NormalizeRelativeKeyword(today) = %q, %v", got, ok)
	}
	if _, ok := NormalizeRelativeKeyword("next-week"); ok {
		t.Fatalf("expected next-week to be rejected")
	}
}

func TestResolveRelativeKeyword(t *testing.T) {
	now := time.Date(2026, time.March, 4, 14, 30, 0, 0, time.UTC)

	today, ok := ResolveRelativeKeyword("today", now)
	if !ok || today.Format(DateLayout) != "2026-03-04" {
		t.Fatalf("unexpected today: %v ok=%v", today, ok)
	}
	if today.Hour() != 0 || today.Minute() != 0 {
		t.Fatalf("resolved keyword should be day-start, got %v", today)
	}

	tomorrow, ok := ResolveRelativeKeyword("tomorrow", now)
	if !ok || tomorrow.Format(DateLayout) != "2026-03-05" {
		t.Fatalf("unexpected tomorrow: %v ok=%v", tomorrow, ok)
	}

	yesterday, ok := ResolveRelativeKeyword("yesterday", now)
	if !ok || yesterday.Format(DateLayout) != "2026-03-03" {
		t.Fatalf("unexpected yesterday: %v ok=%v", yesterday, ok)
	}

	if _, ok := ResolveRelativeKeyword("someday", now); ok {
		t.Fatalf("expected someday to be rejected")
	}
}
