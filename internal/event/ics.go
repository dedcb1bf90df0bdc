package event

import (
	"io"
	"time"

	ics "github.com/arran4/golang-ical"
)

// WriteICS serializes events as an iCalendar feed. Recurring events are
// written once with their base date; consumers that need occurrences should
// expand before exporting.
func WriteICS(w io.Writer, events []Event) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//eventide//catalog//EN")

	now := time.Now()
	for _, e := range events {
		ve := cal.AddEvent(e.ID)
		ve.SetCreatedTime(now)
		ve.SetDtStampTime(now)
		ve.SetStartAt(e.StartAt(time.Local))
		ve.SetEndAt(endAt(e))
		ve.SetSummary(e.Title)
		ve.SetDescription(e.Description)
		if e.Location != "" {
			loc := e.Location
			if e.Address != "" {
				loc += ", " + e.Address
			}
			ve.SetLocation(loc)
		}
		if e.Privacy != PrivacyPublic {
			ve.SetClass(ics.ClassificationPrivate)
		}
	}

	return cal.SerializeTo(w)
}

func endAt(e Event) time.Time {
	hour, minute := 0, 0
	if t, err := time.Parse("15:04", e.EndTime); err == nil {
		hour, minute = t.Hour(), t.Minute()
	}
	end := e.EndDate
	if end.IsZero() {
		end = e.StartDate
	}
	return time.Date(end.Year(), end.Month(), end.Day(), hour, minute, 0, 0, time.Local)
}
