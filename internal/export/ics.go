// Package export renders a committed selection as an iCalendar payload,
// so a picked range can land directly in a calendar application.
package export

import (
	"fmt"
	"io"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/calpick/calpick/internal/dates"
	"github.com/calpick/calpick/internal/selection"
)

// prodID identifies calpick as the generator in exported payloads.
const prodID = "-//calpick//calpick//EN"

// Event is the exportable shape of a committed selection.
type Event struct {
	// Summary is the VEVENT title. Empty defaults to "calpick selection".
	Summary string
	// Range is the committed interval, inclusive on both ends.
	Range selection.DateRange
	// Now stamps DTSTAMP and seeds the UID; zero means time.Now.
	Now time.Time
}

// WriteICS serializes the event as an all-day VEVENT. Per RFC 5545 the
// DTEND of an all-day event is exclusive, so the end day is advanced by
// one before serialization.
func WriteICS(w io.Writer, ev Event) error {
	if ev.Range.Start.After(ev.Range.End) {
		return fmt.Errorf("inverted range %s .. %s",
			ev.Range.Start.Format(dates.DateLayout), ev.Range.End.Format(dates.DateLayout))
	}

	now := ev.Now
	if now.IsZero() {
		now = time.Now()
	}
	summary := ev.Summary
	if summary == "" {
		summary = "calpick selection"
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(prodID)

	uid := fmt.Sprintf("%d-%s@calpick", now.Unix(), ev.Range.Start.Format("20060102"))
	event := cal.AddEvent(uid)
	event.SetDtStampTime(now)
	event.SetSummary(summary)
	event.SetAllDayStartAt(dates.StartOfDay(ev.Range.Start))
	event.SetAllDayEndAt(dates.StartOfDay(ev.Range.End).AddDate(0, 0, 1))

	return cal.SerializeTo(w)
}
