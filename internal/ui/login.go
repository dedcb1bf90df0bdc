package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"eventide/internal/auth"
)

const (
	loginFieldEmail = iota
	loginFieldPassword
	loginFieldName
)

type loginForm struct {
	email      string
	password   string
	name       string
	focus      int
	registering bool
}

func (f loginForm) fieldCount() int {
	if f.registering {
		return 3
	}
	return 2
}

func (m *Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.authBusy {
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m.quit()

	case "tab", "down":
		m.login.focus = (m.login.focus + 1) % m.login.fieldCount()
		return m, nil

	case "shift+tab", "up":
		m.login.focus = (m.login.focus - 1 + m.login.fieldCount()) % m.login.fieldCount()
		return m, nil

	case "ctrl+r":
		m.login.registering = !m.login.registering
		m.login.focus = 0
		return m, nil

	case "enter":
		return m, m.authCmd()

	case "backspace":
		switch m.login.focus {
		case loginFieldEmail:
			m.login.email = trimLast(m.login.email)
		case loginFieldPassword:
			m.login.password = trimLast(m.login.password)
		case loginFieldName:
			m.login.name = trimLast(m.login.name)
		}
		return m, nil
	}

	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		s := string(msg.Runes)
		if msg.Type == tea.KeySpace {
			s = " "
		}
		switch m.login.focus {
		case loginFieldEmail:
			m.login.email += s
		case loginFieldPassword:
			m.login.password += s
		case loginFieldName:
			m.login.name += s
		}
	}
	return m, nil
}

func (m *Model) authCmd() tea.Cmd {
	m.authBusy = true

	ctx, cancel := context.WithCancel(context.Background())
	m.authStop = cancel

	mgr := m.auth
	form := m.login
	return func() tea.Msg {
		var (
			sess auth.Session
			err  error
		)
		if form.registering {
			sess, err = mgr.Register(ctx, form.name, form.email, form.password)
		} else {
			sess, err = mgr.Login(ctx, form.email, form.password)
		}
		return authResultMsg{session: sess, err: err}
	}
}

func (m *Model) viewLogin() string {
	s := m.styles

	title := "Sign in"
	action := "sign in"
	if m.login.registering {
		title = "Create account"
		action = "register"
	}

	var b strings.Builder
	b.WriteString(s.Header.Render(title))
	b.WriteString("\n\n")

	b.WriteString(m.renderLoginField("Email", m.login.email, loginFieldEmail, false))
	b.WriteString("\n")
	b.WriteString(m.renderLoginField("Password", m.login.password, loginFieldPassword, true))
	if m.login.registering {
		b.WriteString("\n")
		b.WriteString(m.renderLoginField("Name", m.login.name, loginFieldName, false))
	}
	b.WriteString("\n\n")

	if m.authBusy {
		b.WriteString(s.Dim.Render("Signing in..."))
	} else {
		b.WriteString(s.Help.Render(fmt.Sprintf("enter: %s  ctrl+r: toggle register  tab: next field  ctrl+c: quit", action)))
	}

	box := s.Border.Padding(1, 2).Render(b.String())
	return lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) renderLoginField(label, value string, idx int, mask bool) string {
	s := m.styles

	shown := value
	if mask {
		shown = strings.Repeat("*", len(value))
	}

	line := fmt.Sprintf("%-9s %s", label+":", shown)
	if m.login.focus == idx && !m.authBusy {
		return s.Selected.Render(line + "_")
	}
	return s.Normal.Render(line)
}

func trimLast(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}
