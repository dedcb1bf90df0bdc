package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"eventide/internal/auth"
	"eventide/internal/calendar"
	"eventide/internal/config"
	"eventide/internal/event"
	"eventide/internal/wizard"
)

type ViewMode int

const (
	ViewLogin ViewMode = iota
	ViewDashboard
	ViewEvents
	ViewWizard
	ViewReminders
	ViewHelp
)

type Model struct {
	// Core components
	config *config.Config
	log    *logrus.Logger
	auth   *auth.Manager
	source event.Source
	sched  *calendar.Scheduler

	// View state
	mode        ViewMode
	prevMode    ViewMode
	width       int
	height      int
	message     string
	messageSeq  int
	session     auth.Session
	loggedIn    bool

	// Login form state
	login     loginForm
	authBusy  bool
	authStop  context.CancelFunc

	// Dashboard state
	monthCursor time.Time
	selectedDay int
	gridEvents  []event.Event
	remFocus    int

	// Event browser state
	catalog    []event.Event
	eventIndex int
	typeFilter event.Type
	searching  bool
	searchTerm string

	// Wizard state
	wiz       *wizard.Wizard
	wizFocus  int
	imagePath string
	wizErrors map[string]string

	// Reminders page state
	remIndex     int
	remFilter    calendar.Priority
	remSearch    string
	remSearching bool

	styles Styles
}

type Styles struct {
	Normal   lipgloss.Style
	Dim      lipgloss.Style
	Selected lipgloss.Style
	Today    lipgloss.Style
	Header   lipgloss.Style
	Event    lipgloss.Style
	Reminder lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
	Message  lipgloss.Style
	Border   lipgloss.Style
	Badge    lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		Dim: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("235")).
			Background(lipgloss.Color("212")).
			Bold(true),
		Today: lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true),
		Event: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")),
		Reminder: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Message: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Background(lipgloss.Color("235")).
			Padding(0, 1),
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")),
		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("235")).
			Background(lipgloss.Color("220")).
			Padding(0, 1),
	}
}

func NewModel(cfg *config.Config, log *logrus.Logger, mgr *auth.Manager, source event.Source, sched *calendar.Scheduler) *Model {
	now := time.Now()

	m := &Model{
		config:      cfg,
		log:         log,
		auth:        mgr,
		source:      source,
		sched:       sched,
		mode:        ViewLogin,
		monthCursor: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local),
		wizErrors:   map[string]string{},
		styles:      DefaultStyles(),
	}

	// Resume a stored session so a restart doesn't force a fresh login.
	if sess, ok := mgr.Current(); ok {
		m.session = sess
		m.loggedIn = true
		m.mode = ViewDashboard
	}

	m.selectedDay = m.todayIndex()
	m.loadEvents()
	m.loadCatalog()

	return m
}

// Message types
type tickMsg struct{}
type messageTimeoutMsg struct{ seq int }

// CatalogChangedMsg is sent into the program when the events file changes
// on disk, so edits from other processes show up without waiting for the
// refresh tick.
type CatalogChangedMsg struct{}
type authResultMsg struct {
	session auth.Session
	err     error
}
type logoutDoneMsg struct{ err error }

func (m *Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tickMsg:
		if m.loggedIn {
			m.loadEvents()
			m.loadCatalog()
		}
		return m, m.tickCmd()

	case CatalogChangedMsg:
		m.loadEvents()
		m.loadCatalog()
		return m, nil

	case authResultMsg:
		m.authBusy = false
		m.authStop = nil
		if msg.err != nil {
			if msg.err == context.Canceled {
				return m, nil
			}
			m.log.WithError(msg.err).Warn("authentication failed")
			return m, m.showMessage("Invalid email or password")
		}
		m.session = msg.session
		m.loggedIn = true
		m.login = loginForm{}
		m.mode = ViewDashboard
		m.loadEvents()
		m.loadCatalog()
		return m, m.showMessage("Login successful!")

	case logoutDoneMsg:
		if msg.err != nil {
			m.log.WithError(msg.err).Warn("logout")
		}
		m.loggedIn = false
		m.session = auth.Session{}
		m.mode = ViewLogin
		return m, m.showMessage("Logged out")

	case messageTimeoutMsg:
		if msg.seq == m.messageSeq {
			m.message = ""
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var body string
	switch m.mode {
	case ViewLogin:
		body = m.viewLogin()
	case ViewDashboard:
		body = m.viewDashboard()
	case ViewEvents:
		body = m.viewEvents()
	case ViewWizard:
		body = m.viewWizard()
	case ViewReminders:
		body = m.viewReminders()
	case ViewHelp:
		body = m.viewHelp()
	default:
		body = m.viewDashboard()
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatusBar())
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Text-entry contexts consume almost everything; dispatch to them
	// before the global keys.
	switch m.mode {
	case ViewLogin:
		return m.handleLoginKeys(msg)
	case ViewWizard:
		return m.handleWizardKeys(msg)
	}
	if m.sched.FormOpen() {
		return m.handleReminderFormKeys(msg)
	}
	if m.searching || m.remSearching {
		return m.handleSearchKeys(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m.quit()

	case "?":
		if m.mode == ViewHelp {
			m.mode = m.prevMode
		} else {
			m.prevMode = m.mode
			m.mode = ViewHelp
		}
		return m, nil

	case "r":
		m.loadEvents()
		m.loadCatalog()
		return m, m.showMessage("Refreshed")

	case "n":
		m.startWizard()
		return m, nil

	case "1":
		m.mode = ViewDashboard
		return m, nil

	case "2":
		m.mode = ViewEvents
		return m, nil

	case "3":
		m.mode = ViewReminders
		return m, nil

	case "ctrl+l":
		return m, m.logoutCmd()
	}

	switch m.mode {
	case ViewDashboard:
		return m.handleDashboardKeys(msg)
	case ViewEvents:
		return m.handleEventsKeys(msg)
	case ViewReminders:
		return m.handleRemindersKeys(msg)
	case ViewHelp:
		m.mode = m.prevMode
	}

	return m, nil
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	if m.authStop != nil {
		// Tear-down cancels the pending login so a late resolution is a
		// guaranteed no-op.
		m.authStop()
	}
	if m.wiz != nil {
		m.wiz.Close()
	}
	return m, tea.Quit
}

func (m *Model) loadEvents() {
	start := m.monthCursor.AddDate(0, 0, -7)
	end := m.monthCursor.AddDate(0, 1, 7)

	events, err := m.source.GetEvents(start, end)
	if err != nil {
		m.log.WithError(err).Error("loading events for grid")
		return
	}
	m.gridEvents = events
}

func (m *Model) loadCatalog() {
	events, err := m.source.All()
	if err != nil {
		m.log.WithError(err).Error("loading catalog")
		return
	}
	event.SortByStart(events)
	m.catalog = events
	if m.eventIndex >= len(events) {
		m.eventIndex = 0
	}
}

func (m *Model) showMessage(msg string) tea.Cmd {
	m.message = msg
	m.messageSeq++
	seq := m.messageSeq
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return messageTimeoutMsg{seq: seq}
	})
}

func (m *Model) tickCmd() tea.Cmd {
	rate := m.config.RefreshRate()
	if rate <= 0 {
		rate = 30 * time.Second
	}
	return tea.Tick(rate, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func (m *Model) logoutCmd() tea.Cmd {
	mgr := m.auth
	return func() tea.Msg {
		return logoutDoneMsg{err: mgr.Logout(context.Background())}
	}
}
