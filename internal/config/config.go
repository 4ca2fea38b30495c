// Package config handles global calpick configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/calpick/calpick/internal/constraint"
	"github.com/calpick/calpick/internal/dates"
	"github.com/calpick/calpick/internal/format"
)

// Config represents the global calpick configuration.
type Config struct {
	// WeekStart is the first day of the week: "monday" (default) or "sunday".
	WeekStart string `toml:"week_start"`

	// Format selects the output representation: "native", "iso", or "custom".
	Format string `toml:"format"`

	// Pattern is the token pattern for format = "custom", e.g. "DD/MM/YYYY".
	// It also drives free-text date entry in the picker.
	Pattern string `toml:"pattern"`

	// Min and Max bound selectable days, YYYY-MM-DD. Empty means unbounded.
	Min string `toml:"min"`
	Max string `toml:"max"`

	// DisabledDates lists individual unselectable days, YYYY-MM-DD.
	DisabledDates []string `toml:"disabled_dates"`

	// DisabledWeekdays lists weekday names that are never selectable,
	// e.g. ["saturday", "sunday"].
	DisabledWeekdays []string `toml:"disabled_weekdays"`

	// DisabledRule is an RFC 5545 RRULE marking recurring unselectable
	// days, e.g. "FREQ=MONTHLY;BYMONTHDAY=13".
	DisabledRule string `toml:"disabled_rule"`

	// Presets toggles the preset panel in the interactive picker.
	// Unset means enabled.
	Presets *bool `toml:"presets"`

	// UI controls optional theming preferences.
	UI UIConfig `toml:"ui"`
}

// PresetsEnabled reports whether the picker offers the preset panel.
func (c *Config) PresetsEnabled() bool {
	return c.Presets == nil || *c.Presets
}

// UIConfig represents optional theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for the picker and CLI output.
	// Supported values are ANSI color codes ("0" to "255") or hex colors
	// ("#RRGGBB").
	Accent string `toml:"accent"`
}

// Load loads the configuration from the default location.
// Returns a default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath := DefaultPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{}, nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &config, nil
}

// DefaultPath returns the default config file path.
// Checks ~/.config/calpick/config.toml first (XDG style),
// then falls back to OS-specific location.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "calpick", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "calpick", "config.toml")
	}

	return filepath.Join(".", "config.toml")
}

// OutputFormat resolves the configured output format.
func (c *Config) OutputFormat() (format.Format, error) {
	switch c.Format {
	case "", "native":
		return format.NativeFormat(), nil
	case "iso":
		return format.ISOFormat(), nil
	case "custom":
		if c.Pattern == "" {
			return format.Format{}, fmt.Errorf("format = \"custom\" requires pattern")
		}
		return format.CustomFormat(c.Pattern)
	default:
		return format.Format{}, fmt.Errorf("unknown format %q, use native, iso, or custom", c.Format)
	}
}

// EntryPattern returns the pattern used for free-text date entry,
// defaulting to the canonical YYYY-MM-DD.
func (c *Config) EntryPattern() string {
	if c.Pattern != "" {
		return c.Pattern
	}
	return "YYYY-MM-DD"
}

// Constraints resolves the configured bounds and disabled rules.
func (c *Config) Constraints() (constraint.Constraints, error) {
	var out constraint.Constraints

	if c.Min != "" {
		min, err := dates.ParseDate(c.Min)
		if err != nil {
			return out, fmt.Errorf("invalid min: %w", err)
		}
		out.Min = &min
	}
	if c.Max != "" {
		max, err := dates.ParseDate(c.Max)
		if err != nil {
			return out, fmt.Errorf("invalid max: %w", err)
		}
		out.Max = &max
	}

	var rules []constraint.Rule

	if len(c.DisabledDates) > 0 {
		set := constraint.NewDaySet()
		for _, raw := range c.DisabledDates {
			d, err := dates.ParseDate(raw)
			if err != nil {
				return out, fmt.Errorf("invalid disabled date: %w", err)
			}
			set.Add(d)
		}
		rules = append(rules, set)
	}

	if len(c.DisabledWeekdays) > 0 {
		weekdays, err := parseWeekdays(c.DisabledWeekdays)
		if err != nil {
			return out, err
		}
		rules = append(rules, constraint.Weekdays(weekdays...))
	}

	if c.DisabledRule != "" {
		anchor := time.Now()
		if out.Min != nil {
			anchor = *out.Min
		}
		rec, err := constraint.NewRecurrence(c.DisabledRule, anchor)
		if err != nil {
			return out, err
		}
		rules = append(rules, rec)
	}

	switch len(rules) {
	case 0:
	case 1:
		out.Disabled = rules[0]
	default:
		out.Disabled = constraint.Any(rules...)
	}
	return out, nil
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func parseWeekdays(names []string) ([]time.Weekday, error) {
	out := make([]time.Weekday, 0, len(names))
	for _, name := range names {
		d, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", name)
		}
		out = append(out, d)
	}
	return out, nil
}
