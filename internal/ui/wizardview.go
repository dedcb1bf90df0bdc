package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"eventide/internal/event"
	"eventide/internal/wizard"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldNumeric
	fieldSelect
	fieldCheck
	fieldImagePath
)

type wizField struct {
	name    string
	label   string
	kind    fieldKind
	options []string
	hint    string
}

func (m *Model) startWizard() {
	m.wiz = wizard.New()
	m.wizFocus = 0
	m.imagePath = ""
	m.wizErrors = map[string]string{}
	m.prevMode = m.mode
	m.mode = ViewWizard
}

// wizardFields describes the inputs on the current step. The recurrence
// selector only exists while the recurring box is checked, matching the
// draft's conditional validation.
func (m *Model) wizardFields() []wizField {
	d := m.wiz.Draft()

	switch m.wiz.Step() {
	case wizard.StepBasicInfo:
		return []wizField{
			{name: "title", label: "Title", kind: fieldText},
			{name: "description", label: "Description", kind: fieldText},
			{name: "eventType", label: "Type", kind: fieldSelect, options: typeOptions()},
			{name: "maxAttendance", label: "Max attendees", kind: fieldNumeric},
		}
	case wizard.StepSchedule:
		fields := []wizField{
			{name: "startDate", label: "Start date", kind: fieldText, hint: "YYYY-MM-DD"},
			{name: "startTime", label: "Start time", kind: fieldText, hint: "HH:MM"},
			{name: "endDate", label: "End date", kind: fieldText, hint: "YYYY-MM-DD"},
			{name: "endTime", label: "End time", kind: fieldText, hint: "HH:MM"},
			{name: "recurring", label: "Recurring", kind: fieldCheck},
		}
		if d.Recurring {
			fields = append(fields, wizField{
				name: "recurringType", label: "Repeats", kind: fieldSelect, options: recurrenceOptions(),
			})
		}
		return fields
	case wizard.StepLocation:
		return []wizField{
			{name: "location", label: "Venue", kind: fieldText},
			{name: "address", label: "Address", kind: fieldText},
		}
	default:
		return []wizField{
			{name: "privacy", label: "Privacy", kind: fieldSelect, options: privacyOptions()},
			{name: "image", label: "Image file", kind: fieldImagePath, hint: "path, optional"},
		}
	}
}

func typeOptions() []string {
	var out []string
	for _, t := range event.Types() {
		out = append(out, string(t))
	}
	return out
}

func privacyOptions() []string {
	var out []string
	for _, p := range event.Privacies() {
		out = append(out, string(p))
	}
	return out
}

func recurrenceOptions() []string {
	var out []string
	for _, r := range event.Recurrences() {
		if r == event.RecurNone {
			continue
		}
		out = append(out, string(r))
	}
	return out
}

func (m *Model) handleWizardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fields := m.wizardFields()
	if m.wizFocus >= len(fields) {
		m.wizFocus = 0
	}
	field := fields[m.wizFocus]

	switch msg.String() {
	case "ctrl+c":
		return m.quit()

	case "esc":
		m.wiz.Close()
		m.wiz = nil
		m.mode = m.prevMode
		return m, m.showMessage("Event creation cancelled")

	case "tab", "down":
		m.wizFocus = (m.wizFocus + 1) % len(fields)
		return m, nil

	case "shift+tab", "up":
		m.wizFocus = (m.wizFocus - 1 + len(fields)) % len(fields)
		return m, nil

	case "pgup":
		m.wiz.Prev()
		m.wizFocus = 0
		return m, nil

	case "pgdown":
		m.wiz.Next()
		m.wizFocus = 0
		return m, nil

	case "enter":
		if m.wiz.Step() == wizard.LastStep {
			return m.submitWizard()
		}
		m.wiz.Next()
		m.wizFocus = 0
		return m, nil

	case "left", "right":
		if field.kind == fieldSelect {
			cur := m.draftValue(field.name)
			next := cycleOption(field.options, cur, msg.String() == "right")
			if err := m.wiz.Update(wizard.TextChange{Field: field.name, Value: next}); err != nil {
				m.log.WithError(err).Error("applying select change")
			}
		}
		return m, nil

	case " ":
		if field.kind == fieldCheck {
			checked := !m.wiz.Draft().Recurring
			if err := m.wiz.Update(wizard.CheckChange{Field: field.name, Checked: checked}); err != nil {
				m.log.WithError(err).Error("applying checkbox change")
			}
			return m, nil
		}

	case "backspace":
		m.editField(field, trimLast(m.draftValue(field.name)))
		return m, nil
	}

	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		s := string(msg.Runes)
		if msg.Type == tea.KeySpace {
			s = " "
		}
		m.editField(field, m.draftValue(field.name)+s)
	}
	return m, nil
}

// editField routes typed input through the change kind the field expects.
func (m *Model) editField(f wizField, value string) {
	delete(m.wizErrors, f.name)

	var err error
	switch f.kind {
	case fieldText:
		err = m.wiz.Update(wizard.TextChange{Field: f.name, Value: value})
	case fieldNumeric:
		err = m.wiz.Update(wizard.NumericChange{Field: f.name, Value: value})
	case fieldImagePath:
		m.imagePath = value
	}
	if err != nil {
		m.log.WithError(err).Error("applying field change")
	}
}

func (m *Model) draftValue(field string) string {
	d := m.wiz.Draft()
	switch field {
	case "title":
		return d.Title
	case "description":
		return d.Description
	case "eventType":
		return string(d.EventType)
	case "startDate":
		return d.StartDate
	case "startTime":
		return d.StartTime
	case "endDate":
		return d.EndDate
	case "endTime":
		return d.EndTime
	case "recurringType":
		return string(d.RecurringType)
	case "location":
		return d.Location
	case "address":
		return d.Address
	case "privacy":
		return string(d.Privacy)
	case "maxAttendance":
		return d.MaxAttendance
	case "image":
		return m.imagePath
	default:
		return ""
	}
}

func cycleOption(options []string, current string, forward bool) string {
	if len(options) == 0 {
		return current
	}
	for i, opt := range options {
		if opt == current {
			if forward {
				return options[(i+1)%len(options)]
			}
			return options[(i-1+len(options))%len(options)]
		}
	}
	return options[0]
}

func (m *Model) submitWizard() (tea.Model, tea.Cmd) {
	if m.imagePath != "" && m.wiz.Draft().Image == nil {
		img, err := wizard.LoadImage(m.imagePath)
		if err != nil {
			m.wizErrors["image"] = err.Error()
			return m, m.showMessage("Could not attach image")
		}
		if err := m.wiz.SetImage(img); err != nil {
			m.wizErrors["image"] = err.Error()
			return m, m.showMessage("Could not attach image")
		}
	}

	draft := m.wiz.Draft()
	if errs := draft.Validate(); len(errs) > 0 {
		m.wizErrors = map[string]string{}
		for _, fe := range errs {
			m.wizErrors[fe.Field] = fe.Message
		}
		return m, m.showMessage(fmt.Sprintf("%d field(s) need attention", len(errs)))
	}

	ev := draft.ToEvent()
	if err := m.source.Add(ev); err != nil {
		m.log.WithError(err).Error("saving event")
		return m, m.showMessage("Could not save event")
	}

	m.log.WithField("event_id", ev.ID).Info("event created")
	m.wiz.Close()
	m.wiz = nil
	m.mode = ViewEvents
	m.loadEvents()
	m.loadCatalog()
	return m, m.showMessage(fmt.Sprintf("Event %q created", ev.Title))
}

func (m *Model) viewWizard() string {
	s := m.styles

	form := m.renderWizardForm()
	preview := m.renderPreviewCard()

	return lipgloss.JoinHorizontal(lipgloss.Top,
		s.Border.Padding(0, 1).Width(48).Render(form),
		" ",
		s.Border.Padding(0, 1).Width(40).Render(preview),
	)
}

func (m *Model) renderWizardForm() string {
	s := m.styles
	step := m.wiz.Step()
	fields := m.wizardFields()

	var b strings.Builder

	// Progress row: done steps get a check, the current one is highlighted.
	var marks []string
	for st := wizard.FirstStep; st <= wizard.LastStep; st++ {
		mark := fmt.Sprintf(" %d ", int(st))
		if m.wiz.StepComplete(st) {
			mark = fmt.Sprintf(" %d+", int(st))
		}
		if st == step {
			marks = append(marks, s.Selected.Render(mark))
		} else {
			marks = append(marks, s.Dim.Render(mark))
		}
	}
	b.WriteString(strings.Join(marks, " "))
	b.WriteString("\n")
	b.WriteString(s.Header.Render(fmt.Sprintf("Step %d of %d: %s", int(step), int(wizard.LastStep), step.Title())))
	b.WriteString("\n\n")

	for i, f := range fields {
		value := m.draftValue(f.name)
		switch f.kind {
		case fieldCheck:
			box := "[ ]"
			if m.wiz.Draft().Recurring {
				box = "[x]"
			}
			value = box
		case fieldSelect:
			value = "< " + value + " >"
		}
		if value == "" && f.hint != "" {
			value = s.Dim.Render(f.hint)
		}

		line := fmt.Sprintf("%-14s %s", f.label+":", value)
		if i == m.wizFocus {
			b.WriteString(s.Selected.Render(line))
		} else {
			b.WriteString(s.Normal.Render(line))
		}
		b.WriteString("\n")
		if msg, ok := m.wizErrors[f.name]; ok {
			b.WriteString(s.Error.Render("  " + msg))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if step == wizard.LastStep {
		b.WriteString(s.Help.Render("enter: create event  pgup: back  esc: cancel"))
	} else {
		b.WriteString(s.Help.Render("enter: next step  pgup: back  esc: cancel"))
	}
	return b.String()
}

func (m *Model) renderPreviewCard() string {
	s := m.styles
	p := m.wiz.Draft().Preview()

	var b strings.Builder
	b.WriteString(s.Header.Render("Preview"))
	b.WriteString("\n\n")

	if p.HasImage {
		b.WriteString(s.Dim.Render("[image attached]"))
		b.WriteString("\n")
	}

	title := s.Normal.Bold(true).Render(p.Title)
	if p.PrivacyBadge != "" {
		title += " " + s.Badge.Render(p.PrivacyBadge)
	}
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(s.Dim.Render(p.TypeLabel))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s at %s\n", p.Date, p.Time))
	b.WriteString(p.Location)
	b.WriteString("\n\n")
	b.WriteString(s.Dim.Render(wordwrap.String(p.Description, 36)))

	return b.String()
}
