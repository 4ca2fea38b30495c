package selection

import (
	"testing"
	"time"
)

func TestOwnedInitialValue(t *testing.T) {
	d := day(7)
	e, err := New(Config{Mode: Single, Ownership: Owned{Initial: Value{Date: &d}}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	v, ok := e.Value()
	if !ok || v.Day() != 7 {
		t.Fatalf("initial value = %v ok=%v", v, ok)
	}
}

func TestExternalOwnershipDefersAllReads(t *testing.T) {
	// The caller holds the value and, in this test, never accepts commits.
	held := Value{}
	var received []Commit

	e, err := New(Config{
		Mode: Range,
		Ownership: External{
			Get: func() Value { return held },
			Set: func(c Commit) { received = append(received, c) },
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Dispatch several interactions without the caller storing anything.
	e.Pick(day(10))
	e.Pick(day(5))
	e.Pick(day(20))
	e.Pick(day(25))

	// The engine never overrides the external source of truth.
	if _, ok := e.RangeValue(); ok {
		t.Fatalf("engine must reflect the external getter, which still holds nothing")
	}
	if len(received) != 4 {
		t.Fatalf("expected 4 commits delivered to the setter, got %d", len(received))
	}

	// Once the caller stores a value, the engine reads it back.
	held = received[3].Value
	r, ok := e.RangeValue()
	if !ok || r.Start.Day() != 20 || r.End.Day() != 25 {
		t.Fatalf("range = %+v ok=%v, want 20..25", r, ok)
	}
}

func TestExternalSetterReceivesFormattedResult(t *testing.T) {
	var last Commit
	e, err := New(Config{
		Mode: Single,
		Ownership: External{
			Get: func() Value { return Value{} },
			Set: func(c Commit) { last = c },
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	e.Pick(day(9))
	if last.Date == nil {
		t.Fatalf("setter should receive the formatted date")
	}
	if !last.Date.Time.Equal(time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected native output: %+v", last.Date)
	}
}
