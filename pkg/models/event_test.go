package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsActiveAt(t *testing.T) {
	event := Event{
		Title:     "Standup",
		StartTime: time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local),
		EndTime:   time.Date(2026, 8, 31, 10, 0, 0, 0, time.Local),
	}

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"before start", time.Date(2026, 8, 31, 8, 59, 0, 0, time.Local), false},
		{"exactly at start", event.StartTime, true},
		{"midway", time.Date(2026, 8, 31, 9, 30, 0, 0, time.Local), true},
		{"exactly at end", event.EndTime, true},
		{"after end", time.Date(2026, 8, 31, 10, 1, 0, 0, time.Local), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, event.IsActiveAt(tt.at))
		})
	}
}

func TestStartsOn(t *testing.T) {
	event := Event{
		StartTime: time.Date(2026, 8, 31, 23, 30, 0, 0, time.Local),
		EndTime:   time.Date(2026, 9, 1, 0, 15, 0, 0, time.Local),
	}

	assert.True(t, event.StartsOn(time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)))
	assert.False(t, event.StartsOn(time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)))
}

func TestDuration(t *testing.T) {
	event := Event{
		StartTime: time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local),
		EndTime:   time.Date(2026, 8, 31, 10, 30, 0, 0, time.Local),
	}
	assert.Equal(t, 90*time.Minute, event.Duration())
}
