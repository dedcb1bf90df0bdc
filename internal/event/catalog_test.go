package event

import (
	"path/filepath"
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestOpenFileSourceSeedsOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "events.json")

	s, err := OpenFileSource(path)
	if err != nil {
		t.Fatalf("OpenFileSource: %v", err)
	}
	defer s.Close()

	events, err := s.All()
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != len(SeedEvents()) {
		t.Errorf("seeded %d events, want %d", len(events), len(SeedEvents()))
	}

	// A second open must read the file, not reseed.
	s2, err := OpenFileSource(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()
	events2, err := s2.All()
	if err != nil {
		t.Fatal(err)
	}
	if len(events2) != len(events) {
		t.Errorf("reopen = %d events, want %d", len(events2), len(events))
	}
}

func TestAddPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")

	s, err := OpenFileSource(path)
	if err != nil {
		t.Fatal(err)
	}
	before, _ := s.All()

	ev := Event{
		ID:        "new-1",
		Title:     "Added",
		Type:      TypeMeetup,
		StartDate: day(2025, time.August, 1),
		EndDate:   day(2025, time.August, 1),
		StartTime: "10:00",
		EndTime:   "11:00",
		Privacy:   PrivacyPublic,
	}
	if err := s.Add(ev); err != nil {
		t.Fatalf("Add: %v", err)
	}
	s.Close()

	s2, err := OpenFileSource(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()
	after, _ := s2.All()
	if len(after) != len(before)+1 {
		t.Fatalf("after reopen %d events, want %d", len(after), len(before)+1)
	}

	var found bool
	for _, e := range after {
		if e.ID == "new-1" {
			found = true
			if !e.StartDate.Equal(ev.StartDate) {
				t.Errorf("StartDate = %v, want %v", e.StartDate, ev.StartDate)
			}
		}
	}
	if !found {
		t.Error("added event missing after reload")
	}
}

func TestGetEventsRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	s, err := OpenFileSource(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	// The seed catalog has one event on April 15, 2025.
	events, err := s.GetEvents(day(2025, time.April, 1), day(2025, time.April, 30))
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range events {
		if e.StartDate.Before(day(2025, time.April, 1)) || e.StartDate.After(day(2025, time.April, 30)) {
			t.Errorf("event %q on %v outside range", e.Title, e.StartDate)
		}
	}
	if len(events) == 0 {
		t.Error("no April events found")
	}
}

func TestGetEventsExpandsRecurring(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	s, err := OpenFileSource(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	weekly := Event{
		ID:            "rec-1",
		Title:         "Standup",
		Type:          TypeMeetup,
		StartDate:     day(2025, time.June, 2),
		EndDate:       day(2025, time.June, 2),
		StartTime:     "09:00",
		EndTime:       "09:15",
		Privacy:       PrivacyPublic,
		Recurring:     true,
		RecurringType: RecurWeekly,
	}
	if err := s.Add(weekly); err != nil {
		t.Fatal(err)
	}

	events, err := s.GetEvents(day(2025, time.June, 1), day(2025, time.June, 30))
	if err != nil {
		t.Fatal(err)
	}

	var dates []time.Time
	for _, e := range events {
		if e.Title == "Standup" {
			dates = append(dates, e.StartDate)
		}
	}
	// June 2025 Mondays from the 2nd: 2, 9, 16, 23, 30.
	if len(dates) != 5 {
		t.Fatalf("weekly occurrences = %v", dates)
	}
	for i, d := range dates {
		want := day(2025, time.June, 2+7*i)
		if !d.Equal(want) {
			t.Errorf("occurrence %d = %v, want %v", i, d, want)
		}
	}
}

func TestExpandOccurrencesCustomUnexpanded(t *testing.T) {
	e := Event{
		ID:            "c1",
		StartDate:     day(2025, time.June, 10),
		EndDate:       day(2025, time.June, 10),
		Recurring:     true,
		RecurringType: RecurCustom,
	}

	got := ExpandOccurrences(e, day(2025, time.June, 1), day(2025, time.June, 30))
	if len(got) != 1 || got[0].ID != "c1" {
		t.Errorf("custom recurrence = %v", got)
	}

	got = ExpandOccurrences(e, day(2025, time.July, 1), day(2025, time.July, 31))
	if len(got) != 0 {
		t.Errorf("out-of-range custom recurrence = %v", got)
	}
}

func TestExpandOccurrencesKeepsSpan(t *testing.T) {
	e := Event{
		ID:            "m1",
		StartDate:     day(2025, time.June, 10),
		EndDate:       day(2025, time.June, 12),
		Recurring:     true,
		RecurringType: RecurMonthly,
	}

	got := ExpandOccurrences(e, day(2025, time.July, 1), day(2025, time.July, 31))
	if len(got) != 1 {
		t.Fatalf("occurrences = %v", got)
	}
	if !got[0].StartDate.Equal(day(2025, time.July, 10)) {
		t.Errorf("StartDate = %v", got[0].StartDate)
	}
	if !got[0].EndDate.Equal(day(2025, time.July, 12)) {
		t.Errorf("EndDate = %v", got[0].EndDate)
	}
}

func TestSortByStart(t *testing.T) {
	events := []Event{
		{Title: "b", StartDate: day(2025, time.June, 2), StartTime: "09:00"},
		{Title: "a", StartDate: day(2025, time.June, 2), StartTime: "09:00"},
		{Title: "c", StartDate: day(2025, time.June, 1), StartTime: "18:00"},
		{Title: "d", StartDate: day(2025, time.June, 2), StartTime: "08:00"},
	}

	SortByStart(events)

	want := []string{"c", "d", "a", "b"}
	for i, title := range want {
		if events[i].Title != title {
			t.Fatalf("order = %v, want %v", titles(events), want)
		}
	}
}

func titles(events []Event) []string {
	var out []string
	for _, e := range events {
		out = append(out, e.Title)
	}
	return out
}
