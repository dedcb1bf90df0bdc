package event

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// FileSource stores the catalog in a single JSON file. Writes go through a
// temp file and rename so a crash never leaves a half-written catalog.
type FileSource struct {
	path    string
	mu      sync.RWMutex
	events  []Event
	watcher *FileWatcher
}

// OpenFileSource loads the catalog at path, seeding it with the demo
// catalog on first run.
func OpenFileSource(path string) (*FileSource, error) {
	s := &FileSource{path: path}

	if err := s.load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		s.events = SeedEvents()
		if err := s.save(); err != nil {
			return nil, fmt.Errorf("seeding catalog: %w", err)
		}
	}

	return s, nil
}

func (s *FileSource) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var events []Event
	if err := json.Unmarshal(data, &events); err != nil {
		return fmt.Errorf("parsing catalog %s: %w", s.path, err)
	}

	s.mu.Lock()
	s.events = events
	s.mu.Unlock()
	return nil
}

func (s *FileSource) save() error {
	s.mu.RLock()
	data, err := json.MarshalIndent(s.events, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *FileSource) All() ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out, nil
}

func (s *FileSource) GetEvents(start, end time.Time) ([]Event, error) {
	s.mu.RLock()
	events := make([]Event, len(s.events))
	copy(events, s.events)
	s.mu.RUnlock()

	var out []Event
	for _, e := range events {
		if e.Recurring && e.RecurringType != RecurNone && e.RecurringType != RecurCustom {
			out = append(out, ExpandOccurrences(e, start, end)...)
			continue
		}
		if inRange(e.StartDate, start, end) {
			out = append(out, e)
		}
	}

	SortByStart(out)
	return out, nil
}

func (s *FileSource) Add(e Event) error {
	s.mu.Lock()
	s.events = append(s.events, e)
	s.mu.Unlock()
	return s.save()
}

// Watch reloads the catalog when the file changes on disk and invokes
// onReload after each successful reload.
func (s *FileSource) Watch(onReload func()) error {
	w, err := NewFileWatcher(func(string) {
		if err := s.load(); err == nil && onReload != nil {
			onReload()
		}
	})
	if err != nil {
		return err
	}
	if err := w.AddFile(s.path); err != nil {
		w.Close()
		return err
	}
	s.watcher = w
	return nil
}

func (s *FileSource) Close() error {
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}

func inRange(day, start, end time.Time) bool {
	d := dateOnly(day)
	return !d.Before(dateOnly(start)) && !d.After(dateOnly(end))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SortByStart orders events by start date, then start time, then title for
// stable ordering.
func SortByStart(events []Event) {
	sort.Slice(events, func(i, j int) bool {
		if !events[i].StartDate.Equal(events[j].StartDate) {
			return events[i].StartDate.Before(events[j].StartDate)
		}
		if events[i].StartTime != events[j].StartTime {
			return events[i].StartTime < events[j].StartTime
		}
		return events[i].Title < events[j].Title
	})
}
