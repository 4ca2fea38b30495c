package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
// - Default (white/black): Primary text
// - Accent (soft purple #A78BFA): Selected days, month header, highlights
// - Muted (gray): Adjacent-month days, weekday headers, hints
// - Disabled days render muted with strikethrough; no red/green semantics

const defaultAccent = "#A78BFA"

var (
	// Accent style for the selected day, month header, highlights
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))

	// AccentBold combines accent color with bold
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent)).Bold(true)

	// Muted style for adjacent-month days, weekday headers, hints
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().Bold(true)

	// Disabled style for unselectable days
	Disabled = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")).Strikethrough(true)

	// Selected style for committed-selection cells
	Selected = lipgloss.NewStyle().Background(lipgloss.Color(defaultAccent)).Foreground(lipgloss.Color("#1E1E2E")).Bold(true)

	// Preview style for hover-preview cells during an open range gesture
	Preview = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent)).Underline(true)

	// Cursor style for the focused cell in the interactive picker
	Cursor = lipgloss.NewStyle().Reverse(true).Bold(true)

	accentColor = defaultAccent
)

// ConfigureTheme applies a user-configured accent color to the themed
// styles. Values like "none", "off", or anything unparsable fall back to
// the default palette.
func ConfigureTheme(accent string) {
	color, ok := normalizeAccentColor(accent)
	if !ok {
		color = defaultAccent
		accentColor = ""
	} else {
		accentColor = color
	}

	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
	Selected = lipgloss.NewStyle().Background(lipgloss.Color(color)).Foreground(lipgloss.Color("#1E1E2E")).Bold(true)
	Preview = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Underline(true)
}

// AccentColor returns the configured accent color, if any.
func AccentColor() (string, bool) {
	if accentColor == "" {
		return "", false
	}
	return accentColor, true
}

// normalizeAccentColor validates an accent color: an ANSI 256 code
// ("0"-"255") or a hex color ("#RGB" or "#RRGGBB"). Three-digit hex is
// expanded. Returns false for disabling keywords and invalid input.
func normalizeAccentColor(value string) (string, bool) {
	value = strings.TrimSpace(value)
	switch value {
	case "", "none", "off", "default":
		return "", false
	}

	if strings.HasPrefix(value, "#") {
		hex := value[1:]
		if !isHex(hex) {
			return "", false
		}
		switch len(hex) {
		case 3:
			var b strings.Builder
			b.WriteByte('#')
			for i := 0; i < 3; i++ {
				b.WriteByte(hex[i])
				b.WriteByte(hex[i])
			}
			return b.String(), true
		case 6:
			return value, true
		default:
			return "", false
		}
	}

	if n, err := strconv.Atoi(value); err == nil && n >= 0 && n <= 255 {
		return strconv.Itoa(n), true
	}
	return "", false
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, ch := range s {
		switch {
		case ch >= '0' && ch <= '9':
		case ch >= 'a' && ch <= 'f':
		case ch >= 'A' && ch <= 'F':
		default:
			return false
		}
	}
	return true
}
