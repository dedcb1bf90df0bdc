package event

import (
	"strings"
)

// Filter returns the events matching both the type filter and the search
// term. An empty eventType matches every type. The search term is matched
// case-insensitively against title and description, the way the catalog
// browser filters.
func Filter(events []Event, eventType Type, term string) []Event {
	term = strings.ToLower(strings.TrimSpace(term))

	var out []Event
	for _, e := range events {
		if eventType != "" && e.Type != eventType {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(e.Title), term) &&
			!strings.Contains(strings.ToLower(e.Description), term) {
			continue
		}
		out = append(out, e)
	}
	return out
}
