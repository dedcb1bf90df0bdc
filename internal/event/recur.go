package event

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// Cap on expanded occurrences per event so a daily event with no end date
// cannot blow up a wide query window.
const maxOccurrencesPerEvent = 366

// ExpandOccurrences expands a recurring event into dated occurrences inside
// [start, end]. The base event's own start date counts as the first
// occurrence. Custom recurrence carries no machine-readable rule and is
// returned unexpanded when its start falls in range.
func ExpandOccurrences(e Event, start, end time.Time) []Event {
	freq, ok := frequencyFor(e.RecurringType)
	if !ok {
		if inRange(e.StartDate, start, end) {
			return []Event{e}
		}
		return nil
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    freq,
		Dtstart: e.StartAt(time.Local),
		Count:   maxOccurrencesPerEvent,
	})
	if err != nil {
		return nil
	}

	span := e.EndDate.Sub(e.StartDate)
	if span < 0 {
		span = 0
	}

	var out []Event
	for i, at := range rule.Between(dateOnly(start), dateOnly(end).AddDate(0, 0, 1), true) {
		occ := e
		occ.ID = fmt.Sprintf("%s#%d", e.ID, i)
		occ.StartDate = dateOnly(at)
		occ.EndDate = dateOnly(at.Add(span))
		out = append(out, occ)
	}
	return out
}

func frequencyFor(r Recurrence) (rrule.Frequency, bool) {
	switch r {
	case RecurDaily:
		return rrule.DAILY, true
	case RecurWeekly:
		return rrule.WEEKLY, true
	case RecurMonthly:
		return rrule.MONTHLY, true
	default:
		return 0, false
	}
}
