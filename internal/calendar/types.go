package calendar

import (
	"time"

	"eventide/internal/event"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

func (p Priority) Label() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	default:
		return string(p)
	}
}

// weight orders priorities for sorting, high first.
func (p Priority) weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// DateLayout is the display format reminders store their date in,
// e.g. "June 15, 2025".
const DateLayout = "January 2, 2006"

// Reminder is a user-created, date/time-tagged note unrelated to the event
// catalog.
type Reminder struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Date     string   `json:"date"` // DateLayout
	Time     string   `json:"time"`
	Priority Priority `json:"priority"`
}

// On reports whether the reminder falls on the given calendar day.
func (r Reminder) On(day time.Time) bool {
	d, err := time.ParseInLocation(DateLayout, r.Date, day.Location())
	if err != nil {
		return false
	}
	return d.Year() == day.Year() && d.Month() == day.Month() && d.Day() == day.Day()
}

// Day is one cell of the 6x7 month grid; it may belong to an adjacent
// month, in which case it carries no events or reminders.
type Day struct {
	Number         int
	InCurrentMonth bool
	IsToday        bool
	Events         []event.Event
	Reminders      []Reminder
}
