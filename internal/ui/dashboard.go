package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"eventide/internal/calendar"
)

const (
	remFieldTitle = iota
	remFieldTime
	remFieldPriority
	remFieldCount
)

func (m *Model) handleDashboardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "h", "left":
		if m.selectedDay > 0 {
			m.selectedDay--
		}
	case "l", "right":
		if m.selectedDay < calendar.GridCells-1 {
			m.selectedDay++
		}
	case "k", "up":
		if m.selectedDay >= 7 {
			m.selectedDay -= 7
		}
	case "j", "down":
		if m.selectedDay < calendar.GridCells-7 {
			m.selectedDay += 7
		}

	case "<", "p":
		m.monthCursor = m.monthCursor.AddDate(0, -1, 0)
		m.selectedDay = 0
		m.loadEvents()
	case ">", "N":
		m.monthCursor = m.monthCursor.AddDate(0, 1, 0)
		m.selectedDay = 0
		m.loadEvents()

	case "t":
		now := time.Now()
		m.monthCursor = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
		m.selectedDay = m.todayIndex()
		m.loadEvents()

	case "enter":
		grid := m.grid()
		if m.selectedDay < len(grid) {
			err := m.sched.SelectDate(grid[m.selectedDay], m.monthCursor.Month(), m.monthCursor.Year())
			if err != nil {
				m.log.WithError(err).Debug("date selection rejected")
			}
		}
	}
	return m, nil
}

func (m *Model) handleReminderFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form := m.sched.Form()

	switch msg.String() {
	case "ctrl+c":
		return m.quit()

	case "esc":
		m.sched.CloseForm()
		m.remFocus = 0
		return m, nil

	case "tab", "down":
		m.remFocus = (m.remFocus + 1) % remFieldCount
		return m, nil

	case "shift+tab", "up":
		m.remFocus = (m.remFocus - 1 + remFieldCount) % remFieldCount
		return m, nil

	case "left", "right":
		if m.remFocus == remFieldPriority {
			form.Priority = cyclePriority(form.Priority, msg.String() == "right")
			m.sched.SetForm(form)
		}
		return m, nil

	case "enter":
		r, err := m.sched.CreateReminder(form.Title, form.Time, form.Priority)
		if err != nil {
			return m, m.showMessage(reminderErrorText(err))
		}
		m.remFocus = 0
		return m, m.showMessage(fmt.Sprintf("Reminder %q set for %s", r.Title, r.Date))

	case "backspace":
		switch m.remFocus {
		case remFieldTitle:
			form.Title = trimLast(form.Title)
		case remFieldTime:
			form.Time = trimLast(form.Time)
		}
		m.sched.SetForm(form)
		return m, nil
	}

	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		s := string(msg.Runes)
		if msg.Type == tea.KeySpace {
			s = " "
		}
		switch m.remFocus {
		case remFieldTitle:
			form.Title += s
		case remFieldTime:
			form.Time += s
		}
		m.sched.SetForm(form)
	}
	return m, nil
}

func reminderErrorText(err error) string {
	switch err {
	case calendar.ErrMissingTitle:
		return "A title is required"
	case calendar.ErrMissingTime:
		return "A time is required"
	case calendar.ErrNoDateSelected:
		return "Select a date first"
	default:
		return err.Error()
	}
}

func cyclePriority(p calendar.Priority, forward bool) calendar.Priority {
	order := calendar.Priorities()
	for i, cand := range order {
		if cand == p {
			if forward {
				return order[(i+1)%len(order)]
			}
			return order[(i-1+len(order))%len(order)]
		}
	}
	return calendar.PriorityMedium
}

func (m *Model) grid() []calendar.Day {
	return calendar.BuildMonthGrid(m.monthCursor, m.gridEvents, m.sched.Reminders(), time.Now())
}

// todayIndex is the grid index of today's cell, or 0 when the cursor is
// on another month.
func (m *Model) todayIndex() int {
	now := time.Now()
	if now.Year() != m.monthCursor.Year() || now.Month() != m.monthCursor.Month() {
		return 0
	}
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
	return int(first.Weekday()) + now.Day() - 1
}

func (m *Model) viewDashboard() string {
	s := m.styles

	header := s.Header.Render(m.monthCursor.Format("January 2006"))
	grid := m.renderMonthGrid()

	left := lipgloss.JoinVertical(lipgloss.Left, header, "", grid)

	var right string
	if m.sched.FormOpen() {
		right = m.renderReminderForm()
	} else {
		right = m.renderUpcoming()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		s.Border.Padding(0, 1).Render(left),
		" ",
		s.Border.Padding(0, 1).Width(38).Render(right),
	)

	if dateErr := m.sched.DateError(); dateErr != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, s.Error.Render(dateErr))
	}

	return body
}

// TODO: honor the week_start setting with a Monday-anchored grid.
func (m *Model) renderMonthGrid() string {
	s := m.styles
	grid := m.grid()

	var b strings.Builder
	for _, wd := range []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"} {
		b.WriteString(s.Dim.Render(fmt.Sprintf("%-6s", wd)))
	}
	b.WriteString("\n")

	for row := 0; row < calendar.GridCells/7; row++ {
		for col := 0; col < 7; col++ {
			idx := row*7 + col
			day := grid[idx]

			marks := ""
			if len(day.Events) > 0 {
				marks += "*"
			}
			if len(day.Reminders) > 0 {
				marks += "!"
			}

			cell := fmt.Sprintf("%2d%-3s ", day.Number, marks)

			style := s.Normal
			switch {
			case idx == m.selectedDay:
				style = s.Selected
			case day.IsToday:
				style = s.Today
			case !day.InCurrentMonth:
				style = s.Dim
			}
			b.WriteString(style.Render(cell))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.Event.Render("* event") + "  " + s.Reminder.Render("! reminder"))
	return b.String()
}

func (m *Model) renderReminderForm() string {
	s := m.styles
	form := m.sched.Form()

	var b strings.Builder
	b.WriteString(s.Header.Render("New Reminder"))
	b.WriteString("\n")
	b.WriteString(s.Dim.Render(m.sched.SelectedDate()))
	b.WriteString("\n\n")

	b.WriteString(m.renderFormField("Title", form.Title, m.remFocus == remFieldTitle))
	b.WriteString("\n")
	b.WriteString(m.renderFormField("Time", form.Time, m.remFocus == remFieldTime))
	b.WriteString("\n")
	b.WriteString(m.renderFormField("Priority", form.Priority.Label(), m.remFocus == remFieldPriority))
	b.WriteString("\n\n")
	b.WriteString(s.Help.Render("enter: save  esc: cancel\ntab: next field  ←/→: priority"))

	return b.String()
}

func (m *Model) renderFormField(label, value string, focused bool) string {
	s := m.styles
	line := fmt.Sprintf("%-9s %s", label+":", value)
	if focused {
		return s.Selected.Render(line + "_")
	}
	return s.Normal.Render(line)
}

// renderUpcoming lists this month's reminders next to the grid.
func (m *Model) renderUpcoming() string {
	s := m.styles

	var b strings.Builder
	b.WriteString(s.Header.Render("Reminders"))
	b.WriteString("\n\n")

	reminders := m.sched.Filtered("", "")
	if len(reminders) == 0 {
		b.WriteString(s.Dim.Render("No reminders yet.\nPress enter on a day to add one."))
		return b.String()
	}

	shown := 0
	for _, r := range reminders {
		if shown >= 10 {
			b.WriteString(s.Dim.Render(fmt.Sprintf("...and %d more", len(reminders)-shown)))
			break
		}
		b.WriteString(s.Reminder.Render(priorityMark(r.Priority)))
		b.WriteString(fmt.Sprintf(" %s\n", r.Title))
		b.WriteString(s.Dim.Render(fmt.Sprintf("   %s at %s\n", r.Date, r.Time)))
		shown++
	}
	return b.String()
}

func priorityMark(p calendar.Priority) string {
	switch p {
	case calendar.PriorityHigh:
		return "[!]"
	case calendar.PriorityLow:
		return "[.]"
	default:
		return "[-]"
	}
}
