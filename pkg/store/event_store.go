package store

import (
	"log"
	"sync"
	"time"

	"github.com/42connor/fastcalendar/pkg/models"
	"github.com/42connor/fastcalendar/pkg/schedule"
)

// EventStore holds the events of the current session. It is append-only and
// preserves insertion order; events live only as long as the process. The
// schedule window is the sole writer, while the refresh ticker and the views
// read concurrently.
type EventStore struct {
	mu     sync.RWMutex
	events []models.Event
}

// NewEventStore creates an empty EventStore
func NewEventStore() *EventStore {
	return &EventStore{}
}

// ParseAndAppend consumes one raw input submission, appends every entry that
// parses to the end of the store, and logs the ones that do not. Bad entries
// never surface to the user; the worst case is that no event appears for
// them. Returns the number of events appended.
func (s *EventStore) ParseAndAppend(raw string, now time.Time) int {
	events, failures := schedule.ParseLine(raw, now)

	for _, f := range failures {
		log.Printf("  [SKIPPED] Unparseable entry: %q (%v)", f.Entry, f.Err)
	}
	if len(events) == 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, events...)
	return len(events)
}

// Append adds already-built events to the end of the store
func (s *EventStore) Append(events ...models.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, events...)
}

// Events returns a copy of the event list in insertion order
func (s *EventStore) Events() []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Event, len(s.events))
	copy(out, s.events)
	return out
}

// Len returns the number of stored events
func (s *EventStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}

// EventsOn returns the events starting on the same calendar day as t,
// in insertion order
func (s *EventStore) EventsOn(t time.Time) []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Event{}
	for _, event := range s.events {
		if event.StartsOn(t) {
			out = append(out, event)
		}
	}
	return out
}

// ActiveAt returns the events in progress at the given time
func (s *EventStore) ActiveAt(t time.Time) []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Event{}
	for _, event := range s.events {
		if event.IsActiveAt(t) {
			out = append(out, event)
		}
	}
	return out
}

// NextStartingAfter returns the earliest-starting event strictly after t
func (s *EventStore) NextStartingAfter(t time.Time) (models.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var next models.Event
	found := false
	for _, event := range s.events {
		if !event.StartTime.After(t) {
			continue
		}
		if !found || event.StartTime.Before(next.StartTime) {
			next = event
			found = true
		}
	}
	return next, found
}
