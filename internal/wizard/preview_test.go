package wizard

import (
	"strings"
	"testing"
)

func TestPreviewPlaceholders(t *testing.T) {
	p := NewDraft().Preview()

	if p.Title != "Event Title" {
		t.Errorf("Title = %q", p.Title)
	}
	if p.Date != "Date" || p.Time != "Time" || p.Location != "Location" {
		t.Errorf("placeholders = %q / %q / %q", p.Date, p.Time, p.Location)
	}
	if p.Description != "Event description will appear here..." {
		t.Errorf("Description = %q", p.Description)
	}
	if p.TypeLabel != "Conference" {
		t.Errorf("TypeLabel = %q", p.TypeLabel)
	}
	if p.PrivacyBadge != "" {
		t.Errorf("public draft has badge %q", p.PrivacyBadge)
	}
	if p.HasImage {
		t.Error("empty draft reports an image")
	}
}

func TestPreviewReflectsDraft(t *testing.T) {
	d := NewDraft()
	d.Title = "Summit"
	d.StartDate = "2025-04-15"
	d.StartTime = "09:00"
	d.Location = "Moscone Center"
	d.Privacy = "private"

	p := d.Preview()
	if p.Title != "Summit" {
		t.Errorf("Title = %q", p.Title)
	}
	if p.Date != "Apr 15, 2025" {
		t.Errorf("Date = %q", p.Date)
	}
	if p.Time != "09:00" {
		t.Errorf("Time = %q", p.Time)
	}
	if p.Location != "Moscone Center" {
		t.Errorf("Location = %q", p.Location)
	}
	if p.PrivacyBadge != "Private" {
		t.Errorf("PrivacyBadge = %q", p.PrivacyBadge)
	}
}

func TestPreviewPartialDate(t *testing.T) {
	d := NewDraft()
	d.StartDate = "2025-04" // mid-edit

	if p := d.Preview(); p.Date != "2025-04" {
		t.Errorf("Date = %q, want raw input", p.Date)
	}
}

func TestPreviewTruncatesDescription(t *testing.T) {
	d := NewDraft()
	d.Description = strings.Repeat("x", 200)

	p := d.Preview()
	if len([]rune(p.Description)) != previewDescriptionLimit {
		t.Errorf("len = %d, want %d", len([]rune(p.Description)), previewDescriptionLimit)
	}
	if !strings.HasSuffix(p.Description, "...") {
		t.Errorf("no ellipsis: %q", p.Description[len(p.Description)-10:])
	}

	d.Description = strings.Repeat("y", previewDescriptionLimit)
	if p := d.Preview(); strings.HasSuffix(p.Description, "...") {
		t.Error("description at the limit was truncated")
	}
}

func TestPreviewIsPure(t *testing.T) {
	d := NewDraft()
	d.Title = "Stable"

	a := d.Preview()
	b := d.Preview()
	if a != b {
		t.Errorf("same draft gave different previews: %+v vs %+v", a, b)
	}
	if d.Title != "Stable" {
		t.Error("Preview mutated the draft")
	}
}
