package event

import (
	"time"
)

// Source is an injected, replaceable provider of catalog events. The file
// source is the only implementation here; a real backend client would
// satisfy the same interface.
type Source interface {
	// GetEvents returns events whose start date falls between start and end
	// (inclusive), with recurring events expanded into occurrences.
	GetEvents(start, end time.Time) ([]Event, error)
	// All returns every stored event without recurrence expansion.
	All() ([]Event, error)
	// Add appends a new event to the catalog.
	Add(e Event) error
	// Close releases any watch resources.
	Close() error
}
