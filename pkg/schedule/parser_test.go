package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDay = time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local)

func clock(hour, minute int) time.Time {
	return time.Date(2026, 8, 31, hour, minute, 0, 0, time.Local)
}

func TestParseLine(t *testing.T) {
	t.Run("two entries in one submission", func(t *testing.T) {
		events, failures := ParseLine("Meeting with Team 9:00-10:00 am; Lunch 12:00-1:00 pm", testDay)

		require.Len(t, events, 2)
		assert.Empty(t, failures)

		assert.Equal(t, "Meeting with Team", events[0].Title)
		assert.Equal(t, clock(9, 0), events[0].StartTime)
		assert.Equal(t, clock(10, 0), events[0].EndTime)

		assert.Equal(t, "Lunch", events[1].Title)
		assert.Equal(t, clock(12, 0), events[1].StartTime)
		assert.Equal(t, clock(13, 0), events[1].EndTime)
	})

	t.Run("entry without a time component yields no event", func(t *testing.T) {
		events, failures := ParseLine("Bad Entry", testDay)

		assert.Empty(t, events)
		require.Len(t, failures, 1)
		assert.Equal(t, "Bad Entry", failures[0].Entry)
		assert.ErrorIs(t, failures[0].Err, errNoMatch)
	})

	t.Run("failed entry does not affect its siblings", func(t *testing.T) {
		events, failures := ParseLine("Standup 9:15-9:30 am; nonsense; Review 4:00-5:00 pm", testDay)

		require.Len(t, events, 2)
		assert.Equal(t, "Standup", events[0].Title)
		assert.Equal(t, "Review", events[1].Title)

		require.Len(t, failures, 1)
		assert.Equal(t, "nonsense", failures[0].Entry)
	})

	t.Run("empty and whitespace entries are skipped silently", func(t *testing.T) {
		events, failures := ParseLine(" ; ;  ;", testDay)

		assert.Empty(t, events)
		assert.Empty(t, failures)
	})

	t.Run("brackets around the title are stripped", func(t *testing.T) {
		tests := []struct {
			name  string
			input string
			title string
		}{
			{"both brackets", "[Gym] 6:30-7:15 pm", "Gym"},
			{"leading bracket only", "[Standup 9:15-9:30 am", "Standup"},
			{"trailing bracket only", "Review] 2:00-3:00 pm", "Review"},
			{"no brackets", "Coffee 8:00-8:30 am", "Coffee"},
			{"inner whitespace trimmed", "[  Walk  ] 7:00-7:45 am", "Walk"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				events, failures := ParseLine(tt.input, testDay)
				require.Len(t, events, 1)
				assert.Empty(t, failures)
				assert.Equal(t, tt.title, events[0].Title)
			})
		}
	})

	t.Run("empty title is still accepted", func(t *testing.T) {
		events, failures := ParseLine("9:00-10:00 am", testDay)

		require.Len(t, events, 1)
		assert.Empty(t, failures)
		assert.Equal(t, "", events[0].Title)
		assert.Equal(t, clock(9, 0), events[0].StartTime)
	})

	t.Run("designator is case-insensitive", func(t *testing.T) {
		events, failures := ParseLine("Tea 4:00-5:00 PM", testDay)

		require.Len(t, events, 1)
		assert.Empty(t, failures)
		assert.Equal(t, clock(16, 0), events[0].StartTime)
		assert.Equal(t, clock(17, 0), events[0].EndTime)
	})

	t.Run("single designator covers both clock times", func(t *testing.T) {
		// Under the shared designator, 12:15 pm resolves earlier than
		// 11:30 pm, so the end rolls forward one day.
		events, failures := ParseLine("Errand 11:30-12:15 pm", testDay)

		require.Len(t, events, 1)
		assert.Empty(t, failures)
		assert.Equal(t, clock(23, 30), events[0].StartTime)
		assert.Equal(t, clock(12, 15).AddDate(0, 0, 1), events[0].EndTime)
	})

	t.Run("midnight rollover keeps end after start", func(t *testing.T) {
		events, failures := ParseLine("Night Shift 11:00-2:00 pm", testDay)

		require.Len(t, events, 1)
		assert.Empty(t, failures)

		event := events[0]
		assert.Equal(t, clock(23, 0), event.StartTime)
		assert.True(t, event.EndTime.After(event.StartTime))
		assert.Equal(t, event.StartTime.AddDate(0, 0, 1).Day(), event.EndTime.Day())
	})

	t.Run("twelve o'clock resolves per designator", func(t *testing.T) {
		events, failures := ParseLine("Midnight Snack 12:00-12:30 am", testDay)

		require.Len(t, events, 1)
		assert.Empty(t, failures)
		assert.Equal(t, clock(0, 0), events[0].StartTime)
		assert.Equal(t, clock(0, 30), events[0].EndTime)
	})

	t.Run("out-of-range clock values are rejected", func(t *testing.T) {
		tests := []struct {
			name  string
			input string
		}{
			{"hour above twelve", "Call 13:00-14:00 pm"},
			{"hour zero", "Call 0:30-1:00 am"},
			{"minute above fifty-nine", "Call 9:61-10:00 am"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				events, failures := ParseLine(tt.input, testDay)
				assert.Empty(t, events)
				require.Len(t, failures, 1)
			})
		}
	})

	t.Run("events are anchored to the given day and location", func(t *testing.T) {
		day := time.Date(2026, 2, 14, 17, 45, 0, 0, time.UTC)
		events, _ := ParseLine("Dinner 7:00-8:00 pm", day)

		require.Len(t, events, 1)
		assert.Equal(t, time.Date(2026, 2, 14, 19, 0, 0, 0, time.UTC), events[0].StartTime)
	})

	t.Run("every event gets a unique ID", func(t *testing.T) {
		events, _ := ParseLine("A 1:00-2:00 pm; B 1:00-2:00 pm", testDay)

		require.Len(t, events, 2)
		assert.NotEmpty(t, events[0].ID)
		assert.NotEmpty(t, events[1].ID)
		assert.NotEqual(t, events[0].ID, events[1].ID)
	})
}
