package selection

import (
	"time"

	"github.com/calpick/calpick/internal/format"
)

// DateRange is a committed interval, inclusive on both ends.
// Start never exceeds End in any range the engine stores or emits.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Value is the raw selection payload, independent of the output format.
// Date is set in single mode, Rng in range mode; both nil means cleared.
type Value struct {
	Date *time.Time
	Rng  *DateRange
}

// IsZero reports whether the value holds no selection.
func (v Value) IsZero() bool {
	return v.Date == nil && v.Rng == nil
}

// RangeOutput pairs the formatted endpoints of a committed range.
type RangeOutput struct {
	Start format.Output
	End   format.Output
}

// Commit is what leaves the engine when a selection transition completes.
// Value is the raw selection; Date or Range carry the formatted rendering
// per the active output format. A cleared selection has all three empty.
type Commit struct {
	Value Value
	Date  *format.Output
	Range *RangeOutput
}

// Ownership decides where the committed value lives. It is a closed union:
// Owned (the engine stores the value) or External (the caller does).
// Resolution happens once, in New; the choice is fixed for the engine's
// lifetime.
type Ownership interface {
	newStore() (valueStore, error)
}

// Owned keeps the committed value inside the engine. Initial seeds it.
type Owned struct {
	Initial Value
}

func (o Owned) newStore() (valueStore, error) {
	return &ownedStore{value: o.Initial}, nil
}

// External defers the committed value to the caller: Get is consulted on
// every read and Set receives every commit, formatted result included.
// The engine keeps no copy, so the caller's storage is the single source
// of truth: if the caller's Set discards the commit, the engine's
// observable value stays whatever Get returns.
type External struct {
	Get func() Value
	Set func(Commit)
}

func (e External) newStore() (valueStore, error) {
	if e.Get == nil || e.Set == nil {
		return nil, errExternalIncomplete
	}
	return &externalStore{get: e.Get, set: e.Set}, nil
}

// valueStore is the resolved read/write contract the engine commits
// through.
type valueStore interface {
	current() Value
	commit(c Commit)
}

type ownedStore struct {
	value Value
}

func (s *ownedStore) current() Value { return s.value }

func (s *ownedStore) commit(c Commit) { s.value = c.Value }

type externalStore struct {
	get func() Value
	set func(Commit)
}

func (s *externalStore) current() Value { return s.get() }

func (s *externalStore) commit(c Commit) { s.set(c) }
