package event

import (
	"time"
)

type Type string

const (
	TypeConference Type = "conference"
	TypeWorkshop   Type = "workshop"
	TypeMeetup     Type = "meetup"
	TypeExhibition Type = "exhibition"
	TypeSeminar    Type = "seminar"
	TypeOther      Type = "other"
)

// Types lists every event type in display order.
func Types() []Type {
	return []Type{TypeConference, TypeWorkshop, TypeMeetup, TypeExhibition, TypeSeminar, TypeOther}
}

// Label returns the human-readable form shown in the UI.
func (t Type) Label() string {
	switch t {
	case TypeConference:
		return "Conference"
	case TypeWorkshop:
		return "Workshop"
	case TypeMeetup:
		return "Meetup"
	case TypeExhibition:
		return "Exhibition"
	case TypeSeminar:
		return "Seminar"
	case TypeOther:
		return "Other"
	default:
		return string(t)
	}
}

type Privacy string

const (
	PrivacyPublic   Privacy = "public"
	PrivacyPrivate  Privacy = "private"
	PrivacyUnlisted Privacy = "unlisted"
)

func Privacies() []Privacy {
	return []Privacy{PrivacyPublic, PrivacyPrivate, PrivacyUnlisted}
}

func (p Privacy) Label() string {
	switch p {
	case PrivacyPublic:
		return "Public"
	case PrivacyPrivate:
		return "Private"
	case PrivacyUnlisted:
		return "Unlisted"
	default:
		return string(p)
	}
}

type Recurrence string

const (
	RecurNone    Recurrence = "none"
	RecurDaily   Recurrence = "daily"
	RecurWeekly  Recurrence = "weekly"
	RecurMonthly Recurrence = "monthly"
	RecurCustom  Recurrence = "custom"
)

func Recurrences() []Recurrence {
	return []Recurrence{RecurDaily, RecurWeekly, RecurMonthly, RecurCustom}
}

// Label returns the human-readable form shown in the UI.
func (r Recurrence) Label() string {
	switch r {
	case RecurNone:
		return "None"
	case RecurDaily:
		return "Daily"
	case RecurWeekly:
		return "Weekly"
	case RecurMonthly:
		return "Monthly"
	case RecurCustom:
		return "Custom"
	default:
		return string(r)
	}
}

// Event is a catalog record. The catalog is read-only for consumers except
// for appending events created through the wizard.
type Event struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Type          Type       `json:"eventType"`
	StartDate     time.Time  `json:"startDate"`
	EndDate       time.Time  `json:"endDate"`
	StartTime     string     `json:"startTime"` // "15:04"
	EndTime       string     `json:"endTime"`
	Location      string     `json:"location"`
	Address       string     `json:"address"`
	Privacy       Privacy    `json:"privacy"`
	ImageURL      string     `json:"imageUrl,omitempty"`
	Attendees     int        `json:"attendees"`
	MaxAttendance int        `json:"maxAttendance"`
	Recurring     bool       `json:"recurring,omitempty"`
	RecurringType Recurrence `json:"recurringType,omitempty"`
}

// SameDay reports whether the event starts on the given calendar day.
func (e Event) SameDay(day time.Time) bool {
	return e.StartDate.Year() == day.Year() &&
		e.StartDate.Month() == day.Month() &&
		e.StartDate.Day() == day.Day()
}

// StartAt combines StartDate and StartTime into a single instant in loc.
// A missing or malformed StartTime yields midnight.
func (e Event) StartAt(loc *time.Location) time.Time {
	hour, minute := 0, 0
	if t, err := time.Parse("15:04", e.StartTime); err == nil {
		hour, minute = t.Hour(), t.Minute()
	}
	return time.Date(e.StartDate.Year(), e.StartDate.Month(), e.StartDate.Day(),
		hour, minute, 0, 0, loc)
}
