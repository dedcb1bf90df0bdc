package wizard

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"eventide/internal/event"
)

var validate = validator.New()

// fieldKeys maps struct field names to the names Change values use, so
// validation errors key on the same identifiers the form edits with.
var fieldKeys = map[string]string{
	"Title":         "title",
	"Description":   "description",
	"EventType":     "eventType",
	"StartDate":     "startDate",
	"StartTime":     "startTime",
	"EndDate":       "endDate",
	"EndTime":       "endTime",
	"RecurringType": "recurringType",
	"Location":      "location",
	"Address":       "address",
	"Privacy":       "privacy",
	"MaxAttendance": "maxAttendance",
}

func fieldKey(name string) string {
	if k, ok := fieldKeys[name]; ok {
		return k
	}
	return name
}

// FieldError is a submit-time validation failure surfaced inline next to
// the offending field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the draft for submission. It returns every field error at
// once so the UI can annotate all offending fields in one pass.
func (d Draft) Validate() []FieldError {
	var out []FieldError

	if err := validate.Struct(d); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				out = append(out, FieldError{Field: fieldKey(fe.Field()), Message: messageFor(fe)})
			}
		} else {
			out = append(out, FieldError{Field: "", Message: err.Error()})
		}
	}

	if d.Recurring {
		switch d.RecurringType {
		case event.RecurDaily, event.RecurWeekly, event.RecurMonthly, event.RecurCustom:
		default:
			out = append(out, FieldError{Field: "recurringType", Message: "choose a recurrence pattern"})
		}
	}

	if start, end, ok := d.span(); ok && end.Before(start) {
		out = append(out, FieldError{Field: "endDate", Message: "event must end after it starts"})
	}

	return out
}

func (d Draft) span() (start, end time.Time, ok bool) {
	start, err := time.Parse("2006-01-02 15:04", d.StartDate+" "+d.StartTime)
	if err != nil {
		return start, end, false
	}
	end, err = time.Parse("2006-01-02 15:04", d.EndDate+" "+d.EndTime)
	if err != nil {
		return start, end, false
	}
	return start, end, true
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "datetime":
		return "invalid format"
	case "number":
		return "digits only"
	case "oneof":
		return "not a valid choice"
	default:
		return fe.Tag()
	}
}

// ToEvent converts a validated draft into a catalog event. The caller must
// have run Validate first; parse failures here fall back to zero values.
func (d Draft) ToEvent() event.Event {
	startDate, _ := time.ParseInLocation("2006-01-02", d.StartDate, time.Local)
	endDate, _ := time.ParseInLocation("2006-01-02", d.EndDate, time.Local)
	maxAttendance, _ := strconv.Atoi(d.MaxAttendance)

	recurringType := d.RecurringType
	if !d.Recurring {
		recurringType = event.RecurNone
	}

	e := event.Event{
		ID:            uuid.NewString(),
		Title:         d.Title,
		Description:   d.Description,
		Type:          d.EventType,
		StartDate:     startDate,
		EndDate:       endDate,
		StartTime:     d.StartTime,
		EndTime:       d.EndTime,
		Location:      d.Location,
		Address:       d.Address,
		Privacy:       d.Privacy,
		MaxAttendance: maxAttendance,
		Recurring:     d.Recurring,
		RecurringType: recurringType,
	}
	if d.Image != nil && !d.Image.Released() {
		e.ImageURL = d.Image.Name
	}
	return e
}
