// Package format converts committed selection values into the
// representation a caller asked for: the raw time.Time, the canonical ISO
// timestamp string, or a custom pattern rendering.
//
// Patterns use the token vocabulary common to date-picker widgets (YYYY,
// MM, DD, HH, mm, ss) and are compiled once into Go reference layouts.
// Formatting and parsing share the compiled layout, which is what makes
// the round trip format-then-parse return the original day.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/calpick/calpick/internal/dates"
)

// Kind discriminates the closed set of output representations.
type Kind int

const (
	// Native passes the time.Time through unchanged.
	Native Kind = iota
	// ISO renders the canonical RFC 3339 timestamp.
	ISO
	// Custom renders through a compiled token pattern.
	Custom
)

// Output is a selection value in its caller-facing representation.
// Text is always set; Time additionally carries the raw value for
// Native outputs.
type Output struct {
	Kind Kind
	Time time.Time
	Text string
}

// Format is a resolved output format. Construct with one of the
// constructors below; the zero value is Native.
type Format struct {
	kind   Kind
	layout string // compiled Go layout, Custom only
	tokens string // original token pattern, for errors and display
}

// NativeFormat returns the pass-through format.
func NativeFormat() Format {
	return Format{kind: Native}
}

// ISOFormat returns the RFC 3339 string format.
func ISOFormat() Format {
	return Format{kind: ISO}
}

// CustomFormat compiles a token pattern such as "DD/MM/YYYY" or
// "YYYY-MM-DD HH:mm". Unknown alphabetic runs are an error so that a typo
// like "YYY-MM-DD" fails at configuration time instead of rendering
// garbage on every commit.
func CustomFormat(pattern string) (Format, error) {
	layout, err := compilePattern(pattern)
	if err != nil {
		return Format{}, err
	}
	return Format{kind: Custom, layout: layout, tokens: pattern}, nil
}

// Kind reports the discriminant.
func (f Format) Kind() Kind {
	return f.kind
}

// Pattern returns the original token pattern for Custom formats, "" otherwise.
func (f Format) Pattern() string {
	return f.tokens
}

// Apply renders a date under the format. Dispatch happens here and only
// here; callers never branch on Kind to produce output.
func (f Format) Apply(t time.Time) Output {
	switch f.kind {
	case ISO:
		return Output{Kind: ISO, Text: t.Format(time.RFC3339)}
	case Custom:
		return Output{Kind: Custom, Text: t.Format(f.layout)}
	default:
		// Native keeps the raw time but still renders the canonical
		// date text, so callers that print never get an empty string.
		return Output{Kind: Native, Time: t, Text: t.Format(dates.DateLayout)}
	}
}

// Parse is the inverse of Apply for text-producing formats. For Native it
// accepts the canonical YYYY-MM-DD form. The bool result is false for text
// that does not match the layout or names an impossible calendar date;
// malformed user input is never an error.
func (f Format) Parse(text string) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}
	switch f.kind {
	case ISO:
		t, err := time.Parse(time.RFC3339, text)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	case Custom:
		t, err := time.Parse(f.layout, text)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	default:
		t, err := dates.ParseDate(text)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}
}

// String describes the format for display.
func (f Format) String() string {
	switch f.kind {
	case ISO:
		return "iso"
	case Custom:
		return fmt.Sprintf("custom(%s)", f.tokens)
	default:
		return "native"
	}
}

// patternTokens maps picker tokens to Go layout fragments, longest first
// so "MM" wins over two adjacent "M" readings.
var patternTokens = []struct {
	token  string
	layout string
}{
	{"YYYY", "2006"},
	{"YY", "06"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"MM", "01"},
	{"M", "1"},
	{"DD", "02"},
	{"D", "2"},
	{"HH", "15"},
	{"mm", "04"},
	{"ss", "05"},
}

func compilePattern(pattern string) (string, error) {
	if strings.TrimSpace(pattern) == "" {
		return "", fmt.Errorf("empty format pattern")
	}

	var b strings.Builder
	rest := pattern
outer:
	for rest != "" {
		for _, tok := range patternTokens {
			if strings.HasPrefix(rest, tok.token) {
				b.WriteString(tok.layout)
				rest = rest[len(tok.token):]
				continue outer
			}
		}
		ch := rest[0]
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') {
			return "", fmt.Errorf("unknown token at %q in pattern %q", rest, pattern)
		}
		b.WriteByte(ch)
		rest = rest[1:]
	}
	return b.String(), nil
}

// ParseUserInput parses free-typed date text under a token pattern.
// Equivalent to CustomFormat(pattern) followed by Parse, with pattern
// errors folded into the nil result: the caller treats both the same way.
func ParseUserInput(text, pattern string) (time.Time, bool) {
	f, err := CustomFormat(pattern)
	if err != nil {
		return time.Time{}, false
	}
	return f.Parse(text)
}
