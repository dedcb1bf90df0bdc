package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m *Model) viewHelp() string {
	s := m.styles

	sections := []struct {
		title string
		keys  [][2]string
	}{
		{"Global", [][2]string{
			{"1 / 2 / 3", "dashboard / events / reminders"},
			{"n", "new event"},
			{"r", "refresh"},
			{"ctrl+l", "log out"},
			{"?", "toggle help"},
			{"q", "quit"},
		}},
		{"Dashboard", [][2]string{
			{"h j k l", "move day selection"},
			{"< / >", "previous / next month"},
			{"t", "jump to today"},
			{"enter", "add reminder on day"},
		}},
		{"Events", [][2]string{
			{"j / k", "move selection"},
			{"f", "cycle type filter"},
			{"/", "search"},
		}},
		{"Reminders", [][2]string{
			{"c", "complete"},
			{"d", "delete"},
			{"f", "cycle priority filter"},
			{"/", "search"},
		}},
		{"Event wizard", [][2]string{
			{"tab / shift+tab", "next / previous field"},
			{"enter", "next step, create on last"},
			{"pgup", "previous step"},
			{"left / right", "change selection"},
			{"space", "toggle checkbox"},
			{"esc", "cancel"},
		}},
	}

	var b strings.Builder
	b.WriteString(s.Header.Render("Keys"))
	b.WriteString("\n")
	for _, sec := range sections {
		b.WriteString("\n")
		b.WriteString(s.Normal.Bold(true).Render(sec.title))
		b.WriteString("\n")
		for _, k := range sec.keys {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				s.Today.Render(fmt.Sprintf("%-16s", k[0])), s.Dim.Render(k[1])))
		}
	}

	box := s.Border.Padding(1, 2).Render(b.String())
	return lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) renderStatusBar() string {
	s := m.styles

	if m.message != "" {
		return s.Message.Render(m.message)
	}

	var parts []string
	if m.loggedIn {
		parts = append(parts, m.session.User.Name)
	}
	switch m.mode {
	case ViewDashboard:
		parts = append(parts, "enter: add reminder", "n: new event", "?: help")
	case ViewEvents:
		parts = append(parts, "n: new event", "f: filter", "/: search", "?: help")
	case ViewReminders:
		parts = append(parts, "c: complete", "d: delete", "?: help")
	case ViewWizard:
		parts = append(parts, "esc: cancel")
	case ViewLogin:
		parts = append(parts, "demo password: 123456")
	}

	return s.Help.Render(strings.Join(parts, "  "))
}
