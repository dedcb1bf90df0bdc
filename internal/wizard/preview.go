package wizard

import (
	"time"
	"unicode/utf8"
)

// Preview is the derived live-preview card. It is a pure function of the
// draft, usable at every step without requiring step completion.
type Preview struct {
	Title        string
	Date         string
	Time         string
	Location     string
	Description  string
	TypeLabel    string
	PrivacyBadge string // empty for public events
	HasImage     bool
}

const (
	placeholderTitle       = "Event Title"
	placeholderDate        = "Date"
	placeholderTime        = "Time"
	placeholderLocation    = "Location"
	placeholderDescription = "Event description will appear here..."

	previewDescriptionLimit = 140
)

// Preview derives the summary card from the draft.
func (d Draft) Preview() Preview {
	p := Preview{
		Title:       placeholderTitle,
		Date:        placeholderDate,
		Time:        placeholderTime,
		Location:    placeholderLocation,
		Description: placeholderDescription,
		TypeLabel:   d.EventType.Label(),
		HasImage:    d.Image != nil && !d.Image.Released(),
	}

	if d.Title != "" {
		p.Title = d.Title
	}
	if t, err := time.Parse("2006-01-02", d.StartDate); err == nil {
		p.Date = t.Format("Jan 2, 2006")
	} else if d.StartDate != "" {
		p.Date = d.StartDate
	}
	if d.StartTime != "" {
		p.Time = d.StartTime
	}
	if d.Location != "" {
		p.Location = d.Location
	}
	if d.Description != "" {
		p.Description = truncate(d.Description, previewDescriptionLimit)
	}
	if d.Privacy != "" && d.Privacy != "public" {
		p.PrivacyBadge = d.Privacy.Label()
	}

	return p
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit-3]) + "..."
}
