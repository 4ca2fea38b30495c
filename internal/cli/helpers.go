package cli

import (
	"fmt"
	"time"

	"github.com/calpick/calpick/internal/constraint"
	"github.com/calpick/calpick/internal/format"
	"github.com/calpick/calpick/internal/grid"
	"github.com/calpick/calpick/internal/selection"
)

// resolvedSettings is the per-invocation view of the config every
// command works from.
type resolvedSettings struct {
	weekStart   time.Weekday
	output      format.Format
	pattern     string
	constraints constraint.Constraints
}

func resolveSettings() (resolvedSettings, error) {
	c := getConfig()

	output, err := c.OutputFormat()
	if err != nil {
		return resolvedSettings{}, err
	}
	cons, err := c.Constraints()
	if err != nil {
		return resolvedSettings{}, err
	}

	return resolvedSettings{
		weekStart:   grid.ParseWeekStart(c.WeekStart),
		output:      output,
		pattern:     c.EntryPattern(),
		constraints: cons,
	}, nil
}

// dateData is the JSON shape for a committed single date.
type dateData struct {
	Date      string `json:"date"`
	Formatted string `json:"formatted"`
}

// rangeData is the JSON shape for a committed range.
type rangeData struct {
	Start          string `json:"start"`
	End            string `json:"end"`
	StartFormatted string `json:"start_formatted"`
	EndFormatted   string `json:"end_formatted"`
	Days           int    `json:"days"`
}

func commitData(c selection.Commit) interface{} {
	if c.Date != nil {
		return dateData{
			Date:      c.Date.Time.Format("2006-01-02"),
			Formatted: c.Date.Text,
		}
	}
	if c.Range != nil {
		days := calendarDays(c.Range.Start.Time, c.Range.End.Time)
		return rangeData{
			Start:          c.Range.Start.Time.Format("2006-01-02"),
			End:            c.Range.End.Time.Format("2006-01-02"),
			StartFormatted: c.Range.Start.Text,
			EndFormatted:   c.Range.End.Text,
			Days:           days,
		}
	}
	return nil
}

// calendarDays counts the inclusive span in calendar days. The endpoints
// are re-anchored to UTC midnights so a DST transition inside the range
// cannot skew the division.
func calendarDays(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours()/24) + 1
}

func commitText(c selection.Commit) string {
	if c.Date != nil {
		return c.Date.Text
	}
	if c.Range != nil {
		return fmt.Sprintf("%s\t%s", c.Range.Start.Text, c.Range.End.Text)
	}
	return ""
}
