package calendar

import (
	"testing"
	"time"

	"eventide/internal/event"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestBuildMonthGridShape(t *testing.T) {
	tests := []struct {
		name        string
		cursor      time.Time
		daysInMonth int
		firstNumber int // number shown in cell 0
	}{
		// June 2025 starts on a Sunday, so cell 0 is June 1.
		{"june 2025", date(2025, time.June, 1), 30, 1},
		// July 2025 starts on a Tuesday; May-style trailing days lead in.
		{"july 2025", date(2025, time.July, 1), 31, 29},
		// February in a leap year.
		{"february 2024", date(2024, time.February, 1), 29, 28},
		// February 2026 starts on a Sunday.
		{"february 2026", date(2026, time.February, 1), 28, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := BuildMonthGrid(tt.cursor, nil, nil, date(2025, time.June, 15))

			if len(grid) != GridCells {
				t.Fatalf("len = %d, want %d", len(grid), GridCells)
			}

			current := 0
			for _, d := range grid {
				if d.InCurrentMonth {
					current++
				}
			}
			if current != tt.daysInMonth {
				t.Errorf("in-month cells = %d, want %d", current, tt.daysInMonth)
			}

			if grid[0].Number != tt.firstNumber {
				t.Errorf("cell 0 number = %d, want %d", grid[0].Number, tt.firstNumber)
			}

			// In-month numbers run 1..daysInMonth contiguously.
			n := 1
			for _, d := range grid {
				if d.InCurrentMonth {
					if d.Number != n {
						t.Fatalf("in-month sequence broken: got %d, want %d", d.Number, n)
					}
					n++
				}
			}
		})
	}
}

func TestBuildMonthGridToday(t *testing.T) {
	cursor := date(2025, time.June, 1)
	today := date(2025, time.June, 15)

	grid := BuildMonthGrid(cursor, nil, nil, today)

	var marked []int
	for _, d := range grid {
		if d.IsToday {
			marked = append(marked, d.Number)
		}
	}
	if len(marked) != 1 || marked[0] != 15 {
		t.Errorf("today cells = %v, want [15]", marked)
	}

	// Cursor on a different month never flags today.
	grid = BuildMonthGrid(date(2025, time.July, 1), nil, nil, today)
	for _, d := range grid {
		if d.IsToday {
			t.Fatalf("day %d flagged today in wrong month", d.Number)
		}
	}
}

func TestBuildMonthGridMatching(t *testing.T) {
	cursor := date(2025, time.June, 1)

	events := []event.Event{
		{ID: "1", Title: "standup", StartDate: date(2025, time.June, 10)},
		{ID: "2", Title: "other month", StartDate: date(2025, time.July, 10)},
	}
	reminders := []Reminder{
		{ID: 1, Title: "dentist", Date: "June 10, 2025", Time: "14:00"},
		{ID: 2, Title: "bad date", Date: "garbage", Time: "09:00"},
	}

	grid := BuildMonthGrid(cursor, events, reminders, date(2025, time.June, 1))

	for _, d := range grid {
		switch {
		case d.InCurrentMonth && d.Number == 10:
			if len(d.Events) != 1 || d.Events[0].ID != "1" {
				t.Errorf("June 10 events = %v", d.Events)
			}
			if len(d.Reminders) != 1 || d.Reminders[0].ID != 1 {
				t.Errorf("June 10 reminders = %v", d.Reminders)
			}
		default:
			if len(d.Events) != 0 || len(d.Reminders) != 0 {
				t.Errorf("day %d (in month: %v) has stray matches", d.Number, d.InCurrentMonth)
			}
		}
	}
}
