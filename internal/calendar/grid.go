package calendar

import (
	"time"

	"eventide/internal/event"
)

// GridCells is the fixed size of the month grid: six rows of seven days,
// regardless of month length or starting weekday. The constant row count
// keeps the layout stable, not a performance concern.
const GridCells = 6 * 7

// BuildMonthGrid lays out the month containing cursor as exactly GridCells
// days. Leading and trailing cells belong to the adjacent months and get no
// event or reminder matching. today decides the IsToday flag; callers pass
// the current time, tests pass a fixture.
func BuildMonthGrid(cursor time.Time, events []event.Event, reminders []Reminder, today time.Time) []Day {
	year, month := cursor.Year(), cursor.Month()
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, cursor.Location())

	daysInMonth := firstOfMonth.AddDate(0, 1, -1).Day()
	startOffset := int(firstOfMonth.Weekday()) // 0 = Sunday

	days := make([]Day, 0, GridCells)

	// Trailing days of the previous month fill the first week.
	prevMonthDays := firstOfMonth.AddDate(0, 0, -1).Day()
	for i := startOffset - 1; i >= 0; i-- {
		days = append(days, Day{Number: prevMonthDays - i})
	}

	for dayNum := 1; dayNum <= daysInMonth; dayNum++ {
		date := time.Date(year, month, dayNum, 0, 0, 0, 0, cursor.Location())

		day := Day{
			Number:         dayNum,
			InCurrentMonth: true,
			IsToday: today.Year() == year &&
				today.Month() == month &&
				today.Day() == dayNum,
		}
		for _, e := range events {
			if e.SameDay(date) {
				day.Events = append(day.Events, e)
			}
		}
		for _, r := range reminders {
			if r.On(date) {
				day.Reminders = append(day.Reminders, r)
			}
		}

		days = append(days, day)
	}

	// Lead-in days of the next month complete the last rows.
	for next := 1; len(days) < GridCells; next++ {
		days = append(days, Day{Number: next})
	}

	return days
}
