package models

import "time"

// Event represents a single scheduled event typed in by the user
type Event struct {
	ID        string    // Unique event identifier
	Title     string    // Event title, trimmed and bracket-stripped
	StartTime time.Time // Event start time (anchored to the day it was typed)
	EndTime   time.Time // Event end time, rolled over one day if it precedes start
}

// IsActiveAt returns true if the event is in progress at the given time
func (e Event) IsActiveAt(t time.Time) bool {
	return !t.Before(e.StartTime) && !t.After(e.EndTime)
}

// Duration returns the length of the event
func (e Event) Duration() time.Duration {
	return e.EndTime.Sub(e.StartTime)
}

// StartsOn returns true if the event starts on the same calendar day as t
func (e Event) StartsOn(t time.Time) bool {
	y1, m1, d1 := e.StartTime.Date()
	y2, m2, d2 := t.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
