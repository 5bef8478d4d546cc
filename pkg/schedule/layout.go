package schedule

import (
	"github.com/42connor/fastcalendar/pkg/models"
)

// Estimate derives the grid sizing for the given event list. It builds an
// hour-of-day histogram: every event increments the bucket for each hour in
// its inclusive [start hour, end hour] range, using the event's own local
// hour values. The peak bucket count drives both the extra grid height and
// the label shrink factor.
//
// Estimate is pure and total: it never fails and an empty list yields
// MaxOverlap 0, the base grid height, and FontScale 1.
func Estimate(events []models.Event, cfg models.LayoutConfig) models.LayoutParams {
	cfg = cfg.Normalized()

	counts := make(map[int]int)
	for _, event := range events {
		for h := event.StartTime.Hour(); h <= event.EndTime.Hour(); h++ {
			counts[h]++
		}
	}

	maxOverlap := 0
	for _, n := range counts {
		if n > maxOverlap {
			maxOverlap = n
		}
	}

	fontScale := 1 - float32(maxOverlap)*0.05
	if fontScale < models.MinFontScale {
		fontScale = models.MinFontScale
	}

	return models.LayoutParams{
		MaxOverlap:  maxOverlap,
		PixelHeight: models.HoursPerDay*cfg.BaseHeightPerHour + float32(maxOverlap)*cfg.ExtraHeightPerOverlap,
		FontScale:   fontScale,
	}
}
