package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"eventide/internal/calendar"
)

func (m *Model) handleRemindersKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.sched.Filtered(m.remFilter, m.remSearch)

	switch msg.String() {
	case "j", "down":
		if m.remIndex < len(visible)-1 {
			m.remIndex++
		}
	case "k", "up":
		if m.remIndex > 0 {
			m.remIndex--
		}

	case "f":
		m.remFilter = cyclePriorityFilter(m.remFilter)
		m.remIndex = 0

	case "/":
		m.remSearching = true

	case "d", "x":
		if m.remIndex < len(visible) {
			r := visible[m.remIndex]
			m.sched.Delete(r.ID)
			if m.remIndex > 0 {
				m.remIndex--
			}
			return m, m.showMessage(fmt.Sprintf("Deleted %q", r.Title))
		}

	case "c", "enter":
		if m.remIndex < len(visible) {
			r := visible[m.remIndex]
			m.sched.Complete(r.ID)
			if m.remIndex > 0 {
				m.remIndex--
			}
			return m, m.showMessage(fmt.Sprintf("Completed %q", r.Title))
		}
	}
	return m, nil
}

func cyclePriorityFilter(current calendar.Priority) calendar.Priority {
	order := calendar.Priorities()
	if current == "" {
		return order[0]
	}
	for i, p := range order {
		if p == current {
			if i == len(order)-1 {
				return ""
			}
			return order[i+1]
		}
	}
	return ""
}

func (m *Model) viewReminders() string {
	s := m.styles
	visible := m.sched.Filtered(m.remFilter, m.remSearch)

	var b strings.Builder
	b.WriteString(s.Header.Render("Reminders"))

	filterLabel := "all"
	if m.remFilter != "" {
		filterLabel = m.remFilter.Label()
	}
	b.WriteString(s.Dim.Render(fmt.Sprintf("  priority: %s", filterLabel)))
	if m.remSearching {
		b.WriteString(s.Selected.Render(fmt.Sprintf("  /%s_", m.remSearch)))
	} else if m.remSearch != "" {
		b.WriteString(s.Dim.Render(fmt.Sprintf("  /%s", m.remSearch)))
	}
	b.WriteString("\n\n")

	if len(visible) == 0 {
		b.WriteString(s.Dim.Render("No reminders match.\nSelect a day on the dashboard to add one."))
		return s.Border.Padding(0, 1).Render(b.String())
	}

	if m.remIndex >= len(visible) {
		m.remIndex = 0
	}

	for i, r := range visible {
		line := fmt.Sprintf("%s %-30s %-18s %s",
			priorityMark(r.Priority), clip(r.Title, 30), r.Date, r.Time)
		if i == m.remIndex {
			b.WriteString(s.Selected.Render("> " + line))
		} else {
			b.WriteString(s.Normal.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.Help.Render("c: complete  d: delete  f: filter  /: search"))

	return s.Border.Padding(0, 1).Render(b.String())
}
