package main

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// forcedVariantTheme pins the light or dark variant regardless of the
// system preference, so the in-app theme toggle wins.
type forcedVariantTheme struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

func (t *forcedVariantTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return t.Theme.Color(name, t.variant)
}

func (fc *FastCalendar) applyTheme() {
	variant := theme.VariantLight
	if fc.config.DarkTheme {
		variant = theme.VariantDark
	}
	fc.app.Settings().SetTheme(&forcedVariantTheme{Theme: theme.DefaultTheme(), variant: variant})
}
