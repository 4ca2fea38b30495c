// Package tui implements the interactive calendar picker. It is the
// rendering layer over the selection engine: every key becomes one
// engine interaction, and all highlighting derives from engine reads.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/calpick/calpick/internal/dates"
	"github.com/calpick/calpick/internal/grid"
	"github.com/calpick/calpick/internal/preset"
	"github.com/calpick/calpick/internal/selection"
	"github.com/calpick/calpick/internal/ui"
)

// Options configures one picker session.
type Options struct {
	// Config builds the engine that drives the session. Its OnChange, if
	// any, still fires on every commit; the picker chains its own
	// observer in front of it.
	Config selection.Config
	// Anchor is the initially displayed month; zero means the month of Now.
	Anchor time.Time
	// WeekStart is the first day of each grid row.
	WeekStart time.Weekday
	// Pattern is the token pattern for free-text date entry.
	Pattern string
	// Now anchors "today" highlighting and preset resolution; zero means
	// time.Now.
	Now time.Time
	// DisablePresets hides the preset panel.
	DisablePresets bool
}

// Result reports how the session ended.
type Result struct {
	// Accepted is true when a selection was committed and the picker
	// closed on it, false on cancel.
	Accepted bool
	// Commit is the final commit when Accepted.
	Commit selection.Commit
}

// presetItem implements list.Item for a preset with its resolved range.
type presetItem struct {
	preset preset.Preset
	rng    preset.Range
}

func (p presetItem) Title() string { return p.preset.Label }

func (p presetItem) Description() string {
	return fmt.Sprintf("%s .. %s",
		p.rng.Start.Format(dates.DateLayout), p.rng.End.Format(dates.DateLayout))
}

func (p presetItem) FilterValue() string { return p.preset.Label }

// pickerModel is the Bubble Tea model for the picker.
type pickerModel struct {
	engine    *selection.Engine
	anchor    time.Time
	cursor    time.Time
	weekStart time.Weekday
	pattern   string
	now       time.Time

	// Text entry mode
	entry       textinput.Model
	entryActive bool
	entryFailed bool

	// notice is a one-shot advisory line, cleared on the next movement.
	notice string

	// Preset panel
	presetList     list.Model
	presetsActive  bool
	presetsEnabled bool

	// Commit tracking: the engine's observer bumps commitSeq, so the
	// model can tell a real commit from an ignored interaction.
	lastCommit *selection.Commit
	commitSeq  int

	width    int
	height   int
	accepted bool
}

func newPickerModel(opts Options) (*pickerModel, error) {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	anchor := opts.Anchor
	if anchor.IsZero() {
		anchor = now
	}

	items := make([]list.Item, 0)
	for _, p := range preset.Catalog() {
		items = append(items, presetItem{preset: p, rng: p.Resolve(now)})
	}
	presetList := list.New(items, list.NewDefaultDelegate(), 0, 0)
	presetList.Title = "Presets"
	presetList.SetShowHelp(false)
	if accent, ok := ui.AccentColor(); ok {
		presetList.Styles.Title = presetList.Styles.Title.Background(lipgloss.Color(accent))
	}

	entry := textinput.New()
	entry.Placeholder = opts.Pattern
	entry.CharLimit = 32

	m := &pickerModel{
		anchor:         dates.StartOfDay(anchor),
		cursor:         dates.StartOfDay(anchor),
		weekStart:      opts.WeekStart,
		pattern:        opts.Pattern,
		now:            now,
		entry:          entry,
		presetList:     presetList,
		presetsEnabled: !opts.DisablePresets,
	}

	cfg := opts.Config
	chained := cfg.OnChange
	cfg.OnChange = func(c selection.Commit) {
		m.observe(c)
		if chained != nil {
			chained(c)
		}
	}
	engine, err := selection.New(cfg)
	if err != nil {
		return nil, err
	}
	m.engine = engine
	return m, nil
}

// observe is installed as the engine's change observer by Run.
func (m *pickerModel) observe(c selection.Commit) {
	m.lastCommit = &c
	m.commitSeq++
}

func (m *pickerModel) Init() tea.Cmd {
	return nil
}

func (m *pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.presetList.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case tea.KeyMsg:
		if m.entryActive {
			return m.updateEntry(msg)
		}
		if m.presetsActive {
			return m.updatePresets(msg)
		}
		return m.updateCalendar(msg)
	}
	return m, nil
}

func (m *pickerModel) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit

	case "left", "h":
		return m.moveCursor(-1), nil
	case "right", "l":
		return m.moveCursor(1), nil
	case "up", "k":
		return m.moveCursor(-7), nil
	case "down", "j":
		return m.moveCursor(7), nil

	case "pgup", "[":
		m.notice = ""
		m.anchor = grid.PrevMonth(m.anchor)
		m.cursor = m.cursorInAnchorMonth()
		m.syncHover()
		return m, nil
	case "pgdown", "]":
		m.notice = ""
		m.anchor = grid.NextMonth(m.anchor)
		m.cursor = m.cursorInAnchorMonth()
		m.syncHover()
		return m, nil

	case "t":
		m.notice = ""
		m.anchor = dates.StartOfDay(m.now)
		m.cursor = dates.StartOfDay(m.now)
		m.syncHover()
		return m, nil

	case "enter", " ":
		if m.engine.IsDisabled(m.cursor) {
			// The engine ignores the pick; tell the user why nothing
			// happened.
			m.notice = ui.Warning("that day is not selectable")
			return m, nil
		}
		m.engine.Pick(m.cursor)
		if m.selectionResolved() {
			m.accepted = true
			return m, tea.Quit
		}
		// Range first click: keep going, preview from the cursor.
		m.syncHover()
		return m, nil

	case "c":
		m.engine.Clear()
		m.accepted = false
		return m, nil

	case "i", "/":
		m.entry.SetValue("")
		m.entry.Focus()
		m.entryActive = true
		m.entryFailed = false
		return m, textinput.Blink

	case "p":
		if m.presetsEnabled {
			m.presetsActive = true
		}
		return m, nil
	}
	return m, nil
}

func (m *pickerModel) moveCursor(days int) *pickerModel {
	m.notice = ""
	m.cursor = m.cursor.AddDate(0, 0, days)
	if m.cursor.Month() != m.anchor.Month() || m.cursor.Year() != m.anchor.Year() {
		m.anchor = m.cursor
	}
	m.syncHover()
	return m
}

// selectionResolved reports whether the last interaction produced a
// final commit: in range mode a commit with the gesture closed, in
// single mode any commit.
func (m *pickerModel) selectionResolved() bool {
	return m.lastCommit != nil && !m.lastCommit.Value.IsZero() &&
		m.engine.Phase() == selection.Idle
}

// syncHover mirrors the cursor into the engine's hover preview while a
// range gesture is open. A no-op otherwise, by the engine's contract.
func (m *pickerModel) syncHover() {
	m.engine.Hover(m.cursor)
}

// cursorInAnchorMonth moves the cursor into the anchor month, keeping
// the day of month and clamping to the month's last day when the target
// month is shorter (e.g. Jan 31 -> Feb 28).
func (m *pickerModel) cursorInAnchorMonth() time.Time {
	last := grid.NextMonth(m.anchor).AddDate(0, 0, -1).Day()
	d := m.cursor.Day()
	if d > last {
		d = last
	}
	return time.Date(m.anchor.Year(), m.anchor.Month(), d, 0, 0, 0, 0, m.anchor.Location())
}

func (m *pickerModel) updateEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		text := strings.TrimSpace(m.entry.Value())
		m.entryActive = false
		if text == "" {
			return m, nil
		}
		if day, ok := dates.ResolveRelativeKeyword(text, m.now); ok {
			m.cursor = day
			m.anchor = day
			m.engine.Pick(day)
			if m.selectionResolved() {
				m.accepted = true
				return m, tea.Quit
			}
			m.syncHover()
			return m, nil
		}
		if !m.engine.PickText(text, m.pattern) {
			// Failed parse: only the raw echo changes, committed state
			// is untouched. Surface the failure once text was long
			// enough to plausibly be a date.
			m.entryFailed = len(text) >= len(m.pattern)
			m.entryActive = true
			return m, nil
		}
		if m.selectionResolved() {
			m.accepted = true
			return m, tea.Quit
		}
		m.syncHover()
		return m, nil

	case "esc":
		m.entryActive = false
		m.entryFailed = false
		return m, nil
	}

	var cmd tea.Cmd
	m.entry, cmd = m.entry.Update(msg)
	return m, cmd
}

func (m *pickerModel) updatePresets(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.presetsActive = false
		return m, nil
	case "enter":
		if item, ok := m.presetList.SelectedItem().(presetItem); ok {
			m.engine.ApplyPreset(item.rng)
			m.accepted = true
			return m, tea.Quit
		}
	case "q", "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.presetList, cmd = m.presetList.Update(msg)
	return m, cmd
}

func (m *pickerModel) View() string {
	if m.presetsActive {
		return m.presetList.View() + "\n" + ui.Hint("enter apply • esc back • q quit")
	}

	view := ui.CalendarView{
		Anchor:    m.anchor,
		WeekStart: m.weekStart,
		Classify:  m.classify,
	}

	var b strings.Builder
	b.WriteString(view.Render())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString(m.notice)
		b.WriteString("\n")
	}

	if m.entryActive {
		b.WriteString(m.entry.View())
		if m.entryFailed {
			b.WriteString("  " + ui.Error("not a valid date"))
		}
		b.WriteString("\n")
	} else {
		hint := "←↓↑→ move • enter pick • [/] month • t today • / type"
		if m.presetsEnabled {
			hint += " • p presets"
		}
		hint += " • c clear • q quit"
		b.WriteString(ui.Hint(hint))
		b.WriteString("\n")
	}
	return b.String()
}

// classify derives each cell's rendering state from engine reads only.
func (m *pickerModel) classify(day time.Time) ui.DayState {
	if dates.SameDay(day, m.cursor) {
		return ui.DayCursor
	}
	if m.engine.IsDisabled(day) {
		return ui.DayDisabled
	}
	if m.inCommitted(day) {
		return ui.DaySelected
	}
	if start, ok := m.engine.PendingStart(); ok && dates.SameDay(day, start) {
		return ui.DaySelected
	}
	if preview, ok := m.engine.HoverPreview(); ok {
		if !dates.BeforeDay(day, preview.Start) && !dates.AfterDay(day, preview.End) {
			return ui.DayPreview
		}
	}
	if day.Month() != m.anchor.Month() {
		return ui.DayAdjacent
	}
	if dates.SameDay(day, m.now) {
		return ui.DayToday
	}
	return ui.DayNormal
}

func (m *pickerModel) inCommitted(day time.Time) bool {
	switch m.engine.Mode() {
	case selection.Single:
		v, ok := m.engine.Value()
		return ok && dates.SameDay(day, v)
	default:
		r, ok := m.engine.RangeValue()
		return ok && !dates.BeforeDay(day, r.Start) && !dates.AfterDay(day, r.End)
	}
}

func (m *pickerModel) statusLine() string {
	if m.engine.Mode() == selection.Single {
		if v, ok := m.engine.Value(); ok {
			return ui.Success("selected " + ui.DateText(v.Format(dates.DateLayout)))
		}
		return ui.Hint("no selection")
	}

	if start, ok := m.engine.PendingStart(); ok {
		return fmt.Sprintf("from %s %s",
			ui.DateText(start.Format(dates.DateLayout)),
			ui.Hint("— pick the end date"))
	}
	if r, ok := m.engine.RangeValue(); ok {
		return ui.Success(fmt.Sprintf("selected %s .. %s",
			ui.DateText(r.Start.Format(dates.DateLayout)),
			ui.DateText(r.End.Format(dates.DateLayout))))
	}
	return ui.Hint("no selection")
}

// Run launches the picker and blocks until the user accepts or cancels.
func Run(opts Options) (Result, error) {
	m, err := newPickerModel(opts)
	if err != nil {
		return Result{}, err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return Result{}, err
	}
	pm, ok := final.(*pickerModel)
	if !ok || !pm.accepted || pm.lastCommit == nil {
		return Result{}, nil
	}
	return Result{Accepted: true, Commit: *pm.lastCommit}, nil
}
