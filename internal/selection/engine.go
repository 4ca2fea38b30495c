// Package selection owns the date-picking protocol: what a click, typed
// value, or preset means given the current mode, phase, and constraints,
// and where the committed value lives.
//
// The engine is single-threaded by contract. Every operation completes
// synchronously inside one interaction event; the range phase register is
// a plain struct field read and written inline by Pick, so a rapid second
// click always observes the phase the first click set.
package selection

import (
	"errors"
	"fmt"
	"time"

	"github.com/calpick/calpick/internal/constraint"
	"github.com/calpick/calpick/internal/dates"
	"github.com/calpick/calpick/internal/format"
	"github.com/calpick/calpick/internal/preset"
)

// Mode fixes the selection shape for the engine's lifetime.
type Mode int

const (
	// Single selects one date.
	Single Mode = iota
	// Range selects an inclusive start/end pair via two clicks.
	Range
)

// Phase is the transient range-entry sub-state. It is not part of the
// committed value: it exists so the second click of a gesture knows a
// first click happened.
type Phase int

const (
	// Idle means no gesture is in progress.
	Idle Phase = iota
	// AwaitingEnd means a start day is recorded and the next click
	// completes the range.
	AwaitingEnd
)

var (
	errExternalIncomplete = errors.New("external ownership requires both Get and Set")
)

// Config assembles an engine. Mode and Ownership are fixed at
// construction; Constraints and Format may be replaced between
// interactions via the setters.
type Config struct {
	Mode        Mode
	Ownership   Ownership // nil means Owned with no initial value
	Constraints constraint.Constraints
	Format      format.Format

	// OnChange observes every commit, formatted per the active format.
	// With External ownership the setter already receives the commit;
	// OnChange still fires so one observer wiring serves both modes.
	OnChange func(Commit)
}

// Engine is the selection state machine. One instance owns its phase
// register and hover preview exclusively; instances must not be shared.
type Engine struct {
	mode        Mode
	store       valueStore
	constraints constraint.Constraints
	outputFmt   format.Format
	onChange    func(Commit)

	// phase and pendingStart form the synchronous side-register for the
	// two-click range gesture. They are plain fields on purpose: Pick
	// reads then writes them in the same call, with no notification
	// machinery in between.
	phase        Phase
	pendingStart time.Time

	hover *time.Time
}

// New resolves the configuration into an engine. Configuration mistakes
// (an unknown mode, external ownership missing a getter or setter, an
// initial value whose shape contradicts the mode) are integration bugs
// and fail here rather than surfacing mid-interaction.
func New(cfg Config) (*Engine, error) {
	if cfg.Mode != Single && cfg.Mode != Range {
		return nil, fmt.Errorf("unknown selection mode %d", cfg.Mode)
	}

	ownership := cfg.Ownership
	if ownership == nil {
		ownership = Owned{}
	}
	store, err := ownership.newStore()
	if err != nil {
		return nil, err
	}

	if owned, ok := ownership.(Owned); ok {
		if cfg.Mode == Single && owned.Initial.Rng != nil {
			return nil, errors.New("single mode cannot start with a range value")
		}
		if cfg.Mode == Range && owned.Initial.Date != nil {
			return nil, errors.New("range mode cannot start with a single date value")
		}
	}

	return &Engine{
		mode:        cfg.Mode,
		store:       store,
		constraints: cfg.Constraints,
		outputFmt:   cfg.Format,
		onChange:    cfg.OnChange,
	}, nil
}

// Mode reports the fixed selection mode.
func (e *Engine) Mode() Mode {
	return e.mode
}

// Phase reports the current range-entry phase. Always Idle in single mode.
func (e *Engine) Phase() Phase {
	return e.phase
}

// SetConstraints replaces the constraint set for subsequent interactions.
func (e *Engine) SetConstraints(c constraint.Constraints) {
	e.constraints = c
}

// Constraints returns the active constraint set, for rendering
// disabled-state per cell.
func (e *Engine) Constraints() constraint.Constraints {
	return e.constraints
}

// SetFormat replaces the output format used by subsequent commits.
func (e *Engine) SetFormat(f format.Format) {
	e.outputFmt = f
}

// Pick handles a date-cell interaction. A disabled day is ignored
// entirely: no state change, no notification. In single mode a pick
// commits the date; in range mode it advances the two-click gesture.
func (e *Engine) Pick(day time.Time) {
	if e.constraints.IsDisabled(day) {
		return
	}
	day = dates.StartOfDay(day)

	if e.mode == Single {
		d := day
		e.commit(Value{Date: &d})
		return
	}

	// Range gesture. The phase register is read and advanced inline;
	// nothing here defers, so consecutive picks always see each other.
	switch e.phase {
	case Idle:
		// First click: the observable range collapses onto the start day
		// while the phase register waits for the closing click.
		e.pendingStart = day
		e.phase = AwaitingEnd
		e.commit(Value{Rng: &DateRange{Start: day, End: day}})
	case AwaitingEnd:
		start, end := e.pendingStart, day
		if dates.BeforeDay(end, start) {
			start, end = end, start
		}
		e.phase = Idle
		e.hover = nil
		e.commit(Value{Rng: &DateRange{Start: start, End: end}})
	}
}

// Clear discards the committed selection and any gesture in progress,
// emitting an empty commit.
func (e *Engine) Clear() {
	e.phase = Idle
	e.hover = nil
	e.commit(Value{})
}

// ApplyPreset commits a resolved preset range as if the user had completed
// a two-click gesture: the phase resets to Idle and the committed range is
// notified once. Only meaningful in range mode; in single mode the
// preset's start day is committed.
func (e *Engine) ApplyPreset(r preset.Range) {
	e.phase = Idle
	e.hover = nil
	if e.mode == Single {
		d := dates.StartOfDay(r.Start)
		e.commit(Value{Date: &d})
		return
	}
	e.commit(Value{Rng: &DateRange{
		Start: dates.StartOfDay(r.Start),
		End:   dates.StartOfDay(r.End),
	}})
}

// PickText handles typed input: text that parses under the pattern is
// treated exactly like a pick on that day; anything else is a no-op and
// the caller keeps echoing the raw text.
func (e *Engine) PickText(text, pattern string) bool {
	day, ok := format.ParseUserInput(text, pattern)
	if !ok {
		return false
	}
	e.Pick(day)
	return true
}

// Hover records the day under the pointer while a range gesture is in
// progress. Outside range mode or the AwaitingEnd phase it is a no-op.
// Passing the zero time clears the hover (pointer left the grid).
func (e *Engine) Hover(day time.Time) {
	if e.mode != Range || e.phase != AwaitingEnd {
		return
	}
	if day.IsZero() {
		e.hover = nil
		return
	}
	d := dates.StartOfDay(day)
	e.hover = &d
}

// HoverPreview returns the advisory interval between the pending start and
// the hovered day, normalized so Start never exceeds End. It reports false
// when no preview applies. The preview never affects committed state.
func (e *Engine) HoverPreview() (DateRange, bool) {
	if e.mode != Range || e.phase != AwaitingEnd || e.hover == nil {
		return DateRange{}, false
	}
	start, end := e.pendingStart, *e.hover
	if dates.BeforeDay(end, start) {
		start, end = end, start
	}
	return DateRange{Start: start, End: end}, true
}

// PendingStart returns the recorded start of an in-progress range gesture.
// It reports false when no gesture is in progress.
func (e *Engine) PendingStart() (time.Time, bool) {
	if e.mode != Range || e.phase != AwaitingEnd {
		return time.Time{}, false
	}
	return e.pendingStart, true
}

// Value returns the committed date in single mode. It panics in range
// mode: asking a range engine for a single date is an integration bug.
func (e *Engine) Value() (time.Time, bool) {
	if e.mode != Single {
		panic("selection: Value called on a range-mode engine")
	}
	v := e.store.current()
	if v.Date == nil {
		return time.Time{}, false
	}
	return *v.Date, true
}

// RangeValue returns the committed range in range mode. It panics in
// single mode.
func (e *Engine) RangeValue() (DateRange, bool) {
	if e.mode != Range {
		panic("selection: RangeValue called on a single-mode engine")
	}
	v := e.store.current()
	if v.Rng == nil {
		return DateRange{}, false
	}
	return *v.Rng, true
}

// IsDisabled reports the constraint verdict for one day, for the
// rendering layer.
func (e *Engine) IsDisabled(day time.Time) bool {
	return e.constraints.IsDisabled(day)
}

// commit routes a raw value through the output format, stores it per the
// ownership contract, and notifies the observer.
func (e *Engine) commit(v Value) {
	c := Commit{Value: v}
	if v.Date != nil {
		out := e.outputFmt.Apply(*v.Date)
		c.Date = &out
	}
	if v.Rng != nil {
		c.Range = &RangeOutput{
			Start: e.outputFmt.Apply(v.Rng.Start),
			End:   e.outputFmt.Apply(v.Rng.End),
		}
	}

	e.store.commit(c)
	if e.onChange != nil {
		e.onChange(c)
	}
}
