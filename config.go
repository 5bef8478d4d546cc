package main

import (
	"fyne.io/fyne/v2"

	"github.com/42connor/fastcalendar/pkg/models"
)

type Config struct {
	AutoStart     bool `json:"auto_start"`
	DarkTheme     bool `json:"dark_theme"`
	NotifyOnStart bool `json:"notify_on_start"`
	ChimeOnStart  bool `json:"chime_on_start"`

	// Schedule grid sizing
	BaseHeightPerHour     int `json:"base_height_per_hour"`
	ExtraHeightPerOverlap int `json:"extra_height_per_overlap"`
}

func loadConfig(app fyne.App) *Config {
	prefs := app.Preferences()

	return &Config{
		AutoStart:             prefs.BoolWithFallback("auto_start", false),
		DarkTheme:             prefs.BoolWithFallback("dark_theme", false),
		NotifyOnStart:         prefs.BoolWithFallback("notify_on_start", true),
		ChimeOnStart:          prefs.BoolWithFallback("chime_on_start", false),
		BaseHeightPerHour:     prefs.IntWithFallback("base_height_per_hour", models.DefaultBaseHeightPerHour),
		ExtraHeightPerOverlap: prefs.IntWithFallback("extra_height_per_overlap", models.DefaultExtraHeightPerOverlap),
	}
}

func saveConfig(app fyne.App, config *Config) {
	prefs := app.Preferences()

	prefs.SetBool("auto_start", config.AutoStart)
	prefs.SetBool("dark_theme", config.DarkTheme)
	prefs.SetBool("notify_on_start", config.NotifyOnStart)
	prefs.SetBool("chime_on_start", config.ChimeOnStart)
	prefs.SetInt("base_height_per_hour", config.BaseHeightPerHour)
	prefs.SetInt("extra_height_per_overlap", config.ExtraHeightPerOverlap)
}

// LayoutConfig converts the persisted sizing options into the core's
// layout configuration, substituting defaults for invalid values.
func (c *Config) LayoutConfig() models.LayoutConfig {
	return models.LayoutConfig{
		BaseHeightPerHour:     float32(c.BaseHeightPerHour),
		ExtraHeightPerOverlap: float32(c.ExtraHeightPerOverlap),
	}.Normalized()
}
