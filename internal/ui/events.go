package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"eventide/internal/event"
)

func (m *Model) handleEventsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visibleEvents()

	switch msg.String() {
	case "j", "down":
		if m.eventIndex < len(visible)-1 {
			m.eventIndex++
		}
	case "k", "up":
		if m.eventIndex > 0 {
			m.eventIndex--
		}
	case "g":
		m.eventIndex = 0
	case "G":
		if len(visible) > 0 {
			m.eventIndex = len(visible) - 1
		}

	case "f":
		m.typeFilter = cycleTypeFilter(m.typeFilter)
		m.eventIndex = 0

	case "/":
		m.searching = true
	}
	return m, nil
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	term := &m.searchTerm
	if m.remSearching {
		term = &m.remSearch
	}

	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "enter":
		m.searching = false
		m.remSearching = false
	case "esc":
		*term = ""
		m.searching = false
		m.remSearching = false
	case "backspace":
		*term = trimLast(*term)
	default:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			s := string(msg.Runes)
			if msg.Type == tea.KeySpace {
				s = " "
			}
			*term += s
		}
	}
	m.eventIndex = 0
	m.remIndex = 0
	return m, nil
}

// cycleTypeFilter rotates through "all" plus every event type.
func cycleTypeFilter(current event.Type) event.Type {
	types := event.Types()
	if current == "" {
		return types[0]
	}
	for i, t := range types {
		if t == current {
			if i == len(types)-1 {
				return ""
			}
			return types[i+1]
		}
	}
	return ""
}

func (m *Model) visibleEvents() []event.Event {
	return event.Filter(m.catalog, m.typeFilter, m.searchTerm)
}

func (m *Model) viewEvents() string {
	s := m.styles
	visible := m.visibleEvents()

	var b strings.Builder
	b.WriteString(s.Header.Render("Events"))

	filterLabel := "all"
	if m.typeFilter != "" {
		filterLabel = m.typeFilter.Label()
	}
	b.WriteString(s.Dim.Render(fmt.Sprintf("  type: %s", filterLabel)))
	if m.searching {
		b.WriteString(s.Selected.Render(fmt.Sprintf("  /%s_", m.searchTerm)))
	} else if m.searchTerm != "" {
		b.WriteString(s.Dim.Render(fmt.Sprintf("  /%s", m.searchTerm)))
	}
	b.WriteString("\n\n")

	if len(visible) == 0 {
		b.WriteString(s.Dim.Render("No events match."))
	}

	if m.eventIndex >= len(visible) {
		m.eventIndex = 0
	}

	for i, ev := range visible {
		line := fmt.Sprintf("%-28s %-12s %s",
			clip(ev.Title, 28), ev.Type.Label(), ev.StartDate.Format(m.config.DateFormat))
		if i == m.eventIndex {
			b.WriteString(s.Selected.Render("> " + line))
		} else {
			b.WriteString(s.Normal.Render("  " + line))
		}
		b.WriteString("\n")
	}

	list := b.String()

	var detail string
	if len(visible) > 0 {
		detail = m.renderEventDetail(visible[m.eventIndex])
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		s.Border.Padding(0, 1).Render(list),
		" ",
		s.Border.Padding(0, 1).Width(42).Render(detail),
	)
}

func (m *Model) renderEventDetail(ev event.Event) string {
	s := m.styles

	var b strings.Builder
	title := s.Normal.Bold(true).Render(ev.Title)
	if ev.Privacy != event.PrivacyPublic {
		title += " " + s.Badge.Render(ev.Privacy.Label())
	}
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(s.Dim.Render(ev.Type.Label()))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s %s - %s %s\n",
		ev.StartDate.Format(m.config.DateFormat), ev.StartTime,
		ev.EndDate.Format(m.config.DateFormat), ev.EndTime))
	if ev.Recurring {
		b.WriteString(s.Dim.Render(fmt.Sprintf("repeats %s\n", ev.RecurringType.Label())))
	}
	b.WriteString("\n")

	b.WriteString(ev.Location)
	b.WriteString("\n")
	b.WriteString(s.Dim.Render(ev.Address))
	b.WriteString("\n\n")

	b.WriteString(wordwrap.String(ev.Description, 38))
	b.WriteString("\n\n")
	b.WriteString(s.Dim.Render(fmt.Sprintf("%d / %d attending", ev.Attendees, ev.MaxAttendance)))

	return b.String()
}

func clip(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "…"
}
