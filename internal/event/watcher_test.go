package event

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchReloadsOnExternalWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")

	s, err := OpenFileSource(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	reloaded := make(chan struct{}, 1)
	if err := s.Watch(func() {
		select {
		case reloaded <- struct{}{}:
		default:
		}
	}); err != nil {
		t.Fatalf("Watch: %v", err)
	}

	replacement := []Event{{
		ID:        "only",
		Title:     "Replaced externally",
		Type:      TypeOther,
		StartDate: day(2025, time.June, 1),
		EndDate:   day(2025, time.June, 1),
		Privacy:   PrivacyPublic,
	}}
	data, err := json.Marshal(replacement)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-reloaded:
	case <-time.After(3 * time.Second):
		t.Fatal("no reload after external write")
	}

	events, err := s.All()
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 || events[0].ID != "only" {
		t.Errorf("events after reload = %v", titles(events))
	}
}
