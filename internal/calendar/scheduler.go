package calendar

import (
	"errors"
	"sort"
	"strings"
	"time"
)

var (
	// ErrPastDate is the only user-visible temporal failure; it is
	// recoverable by picking another day.
	ErrPastDate = errors.New("cannot select a date in the past")

	ErrNoDateSelected = errors.New("no date selected")
	ErrMissingTitle   = errors.New("reminder title is required")
	ErrMissingTime    = errors.New("reminder time is required")
)

// Form holds the reminder-creation inputs.
type Form struct {
	Title    string
	Time     string
	Priority Priority
}

func defaultForm() Form {
	return Form{Priority: PriorityMedium}
}

// Scheduler owns the reminder list and the creation flow: a calendar-day
// click selects and validates a date, then the form appends the reminder.
// IDs come from a monotonic counter so delete-then-create never reuses one.
type Scheduler struct {
	reminders []Reminder
	nextID    int

	selectedDate string
	formOpen     bool
	dateError    string
	form         Form

	now   func() time.Time
	store *Store // optional persistence
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock injects the source of "today" for past-date validation.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

// WithStore persists the reminder list after every mutation.
func WithStore(store *Store) Option {
	return func(s *Scheduler) { s.store = store }
}

func NewScheduler(existing []Reminder, opts ...Option) *Scheduler {
	s := &Scheduler{
		reminders: append([]Reminder(nil), existing...),
		nextID:    1,
		form:      defaultForm(),
		now:       time.Now,
	}
	for _, r := range existing {
		if r.ID >= s.nextID {
			s.nextID = r.ID + 1
		}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reminders returns a copy of the list in insertion order.
func (s *Scheduler) Reminders() []Reminder {
	return append([]Reminder(nil), s.reminders...)
}

func (s *Scheduler) FormOpen() bool        { return s.formOpen }
func (s *Scheduler) SelectedDate() string  { return s.selectedDate }
func (s *Scheduler) DateError() string     { return s.dateError }
func (s *Scheduler) Form() Form            { return s.form }
func (s *Scheduler) SetForm(f Form)        { s.form = f }
func (s *Scheduler) CloseForm() {
	s.formOpen = false
	s.form = defaultForm()
}

// SelectDate handles a click on a grid cell. Cells outside the current
// month are inert. A past date (compared at local midnight) sets the date
// error and keeps the form closed; any valid date clears the error, stores
// the formatted date, and opens the form.
func (s *Scheduler) SelectDate(day Day, month time.Month, year int) error {
	if !day.InCurrentMonth {
		return nil
	}

	now := s.now()
	candidate := time.Date(year, month, day.Number, 0, 0, 0, 0, now.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if candidate.Before(today) {
		s.dateError = "Cannot select a date in the past."
		return ErrPastDate
	}

	s.dateError = ""
	s.selectedDate = candidate.Format(DateLayout)
	s.formOpen = true
	return nil
}

// CreateReminder appends a reminder for the selected date. Missing inputs
// are surfaced as typed errors instead of silently dropping the submit. On
// success the form resets to its defaults and closes.
func (s *Scheduler) CreateReminder(title, timeStr string, priority Priority) (Reminder, error) {
	switch {
	case s.selectedDate == "":
		return Reminder{}, ErrNoDateSelected
	case strings.TrimSpace(title) == "":
		return Reminder{}, ErrMissingTitle
	case strings.TrimSpace(timeStr) == "":
		return Reminder{}, ErrMissingTime
	}

	if priority == "" {
		priority = PriorityMedium
	}

	r := Reminder{
		ID:       s.nextID,
		Title:    title,
		Date:     s.selectedDate,
		Time:     timeStr,
		Priority: priority,
	}
	s.nextID++
	s.reminders = append(s.reminders, r)

	s.form = defaultForm()
	s.formOpen = false
	s.persist()

	return r, nil
}

// Delete removes the reminder with the given id; unknown ids are a no-op.
func (s *Scheduler) Delete(id int) {
	for i, r := range s.reminders {
		if r.ID == id {
			s.reminders = append(s.reminders[:i], s.reminders[i+1:]...)
			s.persist()
			return
		}
	}
}

// Complete marks a reminder done, which removes it from the list.
func (s *Scheduler) Complete(id int) {
	s.Delete(id)
}

// Filtered returns reminders matching the priority filter (empty matches
// all) and search term, sorted by priority high-first and then by date.
func (s *Scheduler) Filtered(priority Priority, term string) []Reminder {
	term = strings.ToLower(strings.TrimSpace(term))

	var out []Reminder
	for _, r := range s.reminders {
		if priority != "" && r.Priority != priority {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(r.Title), term) {
			continue
		}
		out = append(out, r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority.weight() != out[j].Priority.weight() {
			return out[i].Priority.weight() > out[j].Priority.weight()
		}
		di, erri := time.Parse(DateLayout, out[i].Date)
		dj, errj := time.Parse(DateLayout, out[j].Date)
		if erri != nil || errj != nil {
			return out[i].ID < out[j].ID
		}
		return di.Before(dj)
	})

	return out
}

func (s *Scheduler) persist() {
	if s.store != nil {
		// Persistence failures are non-fatal; the in-memory list stays
		// authoritative for the session.
		_ = s.store.Save(s.reminders)
	}
}
