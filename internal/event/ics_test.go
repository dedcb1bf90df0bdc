package event

import (
	"strings"
	"testing"
	"time"
)

func TestWriteICS(t *testing.T) {
	events := []Event{
		{
			ID:          "e1",
			Title:       "Launch Party",
			Description: "Celebrate the release",
			StartDate:   time.Date(2025, time.July, 1, 0, 0, 0, 0, time.Local),
			EndDate:     time.Date(2025, time.July, 1, 0, 0, 0, 0, time.Local),
			StartTime:   "18:00",
			EndTime:     "22:00",
			Location:    "HQ Rooftop",
			Privacy:     PrivacyPrivate,
		},
		{
			ID:        "e2",
			Title:     "Open Day",
			StartDate: time.Date(2025, time.July, 2, 0, 0, 0, 0, time.Local),
			EndDate:   time.Date(2025, time.July, 2, 0, 0, 0, 0, time.Local),
			Privacy:   PrivacyPublic,
		},
	}

	var b strings.Builder
	if err := WriteICS(&b, events); err != nil {
		t.Fatalf("WriteICS: %v", err)
	}
	out := b.String()

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"END:VCALENDAR",
		"SUMMARY:Launch Party",
		"SUMMARY:Open Day",
		"LOCATION:HQ Rooftop",
		"CLASS:PRIVATE",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	if strings.Count(out, "BEGIN:VEVENT") != 2 {
		t.Errorf("VEVENT count = %d", strings.Count(out, "BEGIN:VEVENT"))
	}
}
