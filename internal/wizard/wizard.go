package wizard

import (
	"fmt"
	"strings"

	"eventide/internal/event"
)

// Step is one of the four sequential wizard pages.
type Step int

const (
	StepBasicInfo Step = 1 + iota
	StepSchedule
	StepLocation
	StepSettings
)

const (
	FirstStep = StepBasicInfo
	LastStep  = StepSettings
)

func (s Step) Title() string {
	switch s {
	case StepBasicInfo:
		return "Basic Info"
	case StepSchedule:
		return "Date & Time"
	case StepLocation:
		return "Location"
	case StepSettings:
		return "Settings"
	default:
		return fmt.Sprintf("Step %d", int(s))
	}
}

// Draft is the in-progress, unsaved event record. Dates and times stay as
// entered; parsing happens at validation so a half-typed value never gets
// rejected mid-edit.
type Draft struct {
	Title         string           `validate:"required"`
	Description   string           `validate:"required"`
	EventType     event.Type       `validate:"required,oneof=conference workshop meetup exhibition seminar other"`
	StartDate     string           `validate:"required,datetime=2006-01-02"`
	StartTime     string           `validate:"required,datetime=15:04"`
	EndDate       string           `validate:"required,datetime=2006-01-02"`
	EndTime       string           `validate:"required,datetime=15:04"`
	Recurring     bool             `validate:"-"`
	RecurringType event.Recurrence `validate:"-"`
	Location      string           `validate:"required"`
	Address       string           `validate:"required"`
	Privacy       event.Privacy    `validate:"required,oneof=public private unlisted"`
	Image         *Image           `validate:"-"`
	MaxAttendance string           `validate:"required,number"`
}

// NewDraft returns the empty draft the wizard mounts with.
func NewDraft() Draft {
	return Draft{
		EventType:     event.TypeConference,
		RecurringType: event.RecurNone,
		Privacy:       event.PrivacyPublic,
	}
}

// Change is a single field update, tagged by input kind. Dispatch is
// explicit instead of being inferred from a generic form-event shape.
type Change interface {
	FieldName() string
}

// TextChange carries the raw value of a text, date, time or select input.
type TextChange struct {
	Field string
	Value string
}

func (c TextChange) FieldName() string { return c.Field }

// CheckChange carries the checked state of a checkbox input.
type CheckChange struct {
	Field   string
	Checked bool
}

func (c CheckChange) FieldName() string { return c.Field }

// NumericChange carries a digits-only input; non-digit characters are
// stripped before storage.
type NumericChange struct {
	Field string
	Value string
}

func (c NumericChange) FieldName() string { return c.Field }

// StripDigits removes every non-digit rune. Idempotent.
func StripDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Apply returns a copy of the draft with the single named field updated.
// No validation happens here; invalid intermediate states are allowed while
// the user is typing. Unknown fields or a kind mismatch are an error.
func Apply(d Draft, c Change) (Draft, error) {
	switch ch := c.(type) {
	case TextChange:
		switch ch.Field {
		case "title":
			d.Title = ch.Value
		case "description":
			d.Description = ch.Value
		case "eventType":
			d.EventType = event.Type(ch.Value)
		case "startDate":
			d.StartDate = ch.Value
		case "startTime":
			d.StartTime = ch.Value
		case "endDate":
			d.EndDate = ch.Value
		case "endTime":
			d.EndTime = ch.Value
		case "recurringType":
			d.RecurringType = event.Recurrence(ch.Value)
		case "location":
			d.Location = ch.Value
		case "address":
			d.Address = ch.Value
		case "privacy":
			d.Privacy = event.Privacy(ch.Value)
		default:
			return d, fmt.Errorf("unknown text field %q", ch.Field)
		}

	case CheckChange:
		switch ch.Field {
		case "recurring":
			d.Recurring = ch.Checked
		default:
			return d, fmt.Errorf("unknown checkbox field %q", ch.Field)
		}

	case NumericChange:
		switch ch.Field {
		case "maxAttendance":
			d.MaxAttendance = StripDigits(ch.Value)
		default:
			return d, fmt.Errorf("unknown numeric field %q", ch.Field)
		}

	default:
		return d, fmt.Errorf("unknown change kind %T", c)
	}

	return d, nil
}

// Wizard drives the 4-step creation flow: it owns the draft, gates step
// navigation at the bounds, and hands out the derived preview.
type Wizard struct {
	step  Step
	draft Draft
}

func New() *Wizard {
	return &Wizard{step: FirstStep, draft: NewDraft()}
}

func (w *Wizard) Step() Step   { return w.step }
func (w *Wizard) Draft() Draft { return w.draft }

// Next advances one step. A no-op on the last step; completion of the
// current step is deliberately not required.
func (w *Wizard) Next() {
	if w.step < LastStep {
		w.step++
	}
}

// Prev retreats one step. A no-op on the first step.
func (w *Wizard) Prev() {
	if w.step > FirstStep {
		w.step--
	}
}

// Update applies a single field change to the draft.
func (w *Wizard) Update(c Change) error {
	d, err := Apply(w.draft, c)
	if err != nil {
		return err
	}
	w.draft = d
	return nil
}

// SetImage replaces the draft image, releasing the previously held one
// first. A nil img clears the slot.
func (w *Wizard) SetImage(img *Image) error {
	if img != nil && !img.IsImage() {
		return ErrNotImage
	}
	if w.draft.Image != nil {
		w.draft.Image.Release()
	}
	w.draft.Image = img
	return nil
}

// Close releases draft-owned resources. Called on cancel and after submit.
func (w *Wizard) Close() {
	if w.draft.Image != nil {
		w.draft.Image.Release()
		w.draft.Image = nil
	}
}

// StepComplete reports whether the step's required display fields are
// filled in. Used for the UI hint only; navigation is never blocked on it.
func (w *Wizard) StepComplete(s Step) bool {
	d := w.draft
	switch s {
	case StepBasicInfo:
		return d.Title != "" && d.Description != "" && d.EventType != "" && d.MaxAttendance != ""
	case StepSchedule:
		if d.StartDate == "" || d.StartTime == "" || d.EndDate == "" || d.EndTime == "" {
			return false
		}
		if d.Recurring && (d.RecurringType == "" || d.RecurringType == event.RecurNone) {
			return false
		}
		return true
	case StepLocation:
		return d.Location != "" && d.Address != ""
	case StepSettings:
		return d.Privacy != ""
	default:
		return false
	}
}
