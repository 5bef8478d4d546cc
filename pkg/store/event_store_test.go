package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/42connor/fastcalendar/pkg/models"
)

var testDay = time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local)

func storedEvent(id, title string, startHour, endHour int) models.Event {
	return models.Event{
		ID:        id,
		Title:     title,
		StartTime: time.Date(2026, 8, 31, startHour, 0, 0, 0, time.Local),
		EndTime:   time.Date(2026, 8, 31, endHour, 0, 0, 0, time.Local),
	}
}

func TestParseAndAppend(t *testing.T) {
	t.Run("appends parsed events in submission order", func(t *testing.T) {
		s := NewEventStore()

		added := s.ParseAndAppend("Meeting with Team 9:00-10:00 am; Lunch 12:00-1:00 pm", testDay)
		assert.Equal(t, 2, added)

		events := s.Events()
		require.Len(t, events, 2)
		assert.Equal(t, "Meeting with Team", events[0].Title)
		assert.Equal(t, "Lunch", events[1].Title)
	})

	t.Run("later submissions append after earlier ones", func(t *testing.T) {
		s := NewEventStore()
		s.ParseAndAppend("First 8:00-9:00 am", testDay)
		s.ParseAndAppend("Second 10:00-11:00 am", testDay)

		events := s.Events()
		require.Len(t, events, 2)
		assert.Equal(t, "First", events[0].Title)
		assert.Equal(t, "Second", events[1].Title)
	})

	t.Run("all-bad submission leaves the store unchanged", func(t *testing.T) {
		s := NewEventStore()
		s.ParseAndAppend("Keeper 9:00-10:00 am", testDay)

		added := s.ParseAndAppend("Bad Entry", testDay)
		assert.Equal(t, 0, added)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("mixed submission keeps only the good entries", func(t *testing.T) {
		s := NewEventStore()

		added := s.ParseAndAppend("Good 9:00-10:00 am; broken; Also Good 2:00-3:00 pm", testDay)
		assert.Equal(t, 2, added)
		assert.Equal(t, 2, s.Len())
	})
}

func TestEventStoreReads(t *testing.T) {
	t.Run("Events returns a copy", func(t *testing.T) {
		s := NewEventStore()
		s.Append(storedEvent("a", "A", 9, 10))

		events := s.Events()
		events[0].Title = "mutated"

		assert.Equal(t, "A", s.Events()[0].Title)
	})

	t.Run("EventsOn filters by calendar day", func(t *testing.T) {
		s := NewEventStore()
		today := storedEvent("a", "Today", 9, 10)
		tomorrow := storedEvent("b", "Tomorrow", 9, 10)
		tomorrow.StartTime = tomorrow.StartTime.AddDate(0, 0, 1)
		tomorrow.EndTime = tomorrow.EndTime.AddDate(0, 0, 1)
		s.Append(today, tomorrow)

		onDay := s.EventsOn(testDay)
		require.Len(t, onDay, 1)
		assert.Equal(t, "Today", onDay[0].Title)
	})

	t.Run("ActiveAt returns in-progress events", func(t *testing.T) {
		s := NewEventStore()
		s.Append(
			storedEvent("a", "Morning", 9, 10),
			storedEvent("b", "Afternoon", 14, 16),
		)

		active := s.ActiveAt(time.Date(2026, 8, 31, 15, 0, 0, 0, time.Local))
		require.Len(t, active, 1)
		assert.Equal(t, "Afternoon", active[0].Title)

		assert.Empty(t, s.ActiveAt(time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)))
	})

	t.Run("NextStartingAfter picks the earliest later start", func(t *testing.T) {
		s := NewEventStore()
		s.Append(
			storedEvent("a", "Late", 18, 19),
			storedEvent("b", "Soon", 14, 15),
		)

		next, ok := s.NextStartingAfter(time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local))
		require.True(t, ok)
		assert.Equal(t, "Soon", next.Title)

		_, ok = s.NextStartingAfter(time.Date(2026, 8, 31, 20, 0, 0, 0, time.Local))
		assert.False(t, ok)
	})

	t.Run("empty store", func(t *testing.T) {
		s := NewEventStore()
		assert.Equal(t, 0, s.Len())
		assert.Empty(t, s.Events())
		assert.Empty(t, s.ActiveAt(time.Now()))
	})
}
