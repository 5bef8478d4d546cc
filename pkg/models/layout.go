package models

// Default sizing constants for the schedule grid
const (
	HoursPerDay                  = 24
	DefaultBaseHeightPerHour     = 200
	DefaultExtraHeightPerOverlap = 50

	// MinFontScale is the floor applied to label shrinking on dense days
	MinFontScale = 0.7
)

// LayoutConfig holds the sizing knobs for the schedule grid
type LayoutConfig struct {
	BaseHeightPerHour     float32 // vertical pixels per hour with no overlap
	ExtraHeightPerOverlap float32 // additional pixels per unit of peak overlap
}

// DefaultLayoutConfig returns the standard grid sizing
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		BaseHeightPerHour:     DefaultBaseHeightPerHour,
		ExtraHeightPerOverlap: DefaultExtraHeightPerOverlap,
	}
}

// Normalized returns a copy with non-positive values replaced by the defaults
func (c LayoutConfig) Normalized() LayoutConfig {
	if c.BaseHeightPerHour <= 0 {
		c.BaseHeightPerHour = DefaultBaseHeightPerHour
	}
	if c.ExtraHeightPerOverlap <= 0 {
		c.ExtraHeightPerOverlap = DefaultExtraHeightPerOverlap
	}
	return c
}

// LayoutParams is the derived sizing the schedule view applies. It is
// recomputed from the event list on every change and never mutated directly.
type LayoutParams struct {
	MaxOverlap  int     // peak simultaneous-event count across all hour buckets
	PixelHeight float32 // total height of the day grid
	FontScale   float32 // label scale factor, floored at MinFontScale
}
