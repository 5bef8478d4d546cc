package main

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/42connor/fastcalendar/pkg/models"
)

type SettingsWindow struct {
	window fyne.Window
	app    fyne.App
	config *Config
	onSave func(*Config)

	// General tab
	autoStartCheck *widget.Check
	darkThemeCheck *widget.Check
	notifyCheck    *widget.Check
	chimeCheck     *widget.Check

	// Layout tab
	baseHeightEntry  *widget.Entry
	extraHeightEntry *widget.Entry
}

func NewSettingsWindow(app fyne.App, config *Config, onSave func(*Config)) *SettingsWindow {
	sw := &SettingsWindow{
		app:    app,
		config: config,
		onSave: onSave,
	}

	sw.window = app.NewWindow("FastCalendar - Settings")
	sw.buildUI()

	return sw
}

func (sw *SettingsWindow) buildUI() {
	tabs := container.NewAppTabs(
		container.NewTabItem("General", sw.buildGeneralTab()),
		container.NewTabItem("Layout", sw.buildLayoutTab()),
	)

	saveButton := widget.NewButton("Save", func() {
		sw.onSave(sw.getConfigFromUI())
		sw.window.Close()
	})
	saveButton.Importance = widget.HighImportance

	cancelButton := widget.NewButton("Cancel", func() {
		sw.window.Close()
	})

	buttons := container.NewHBox(layout.NewSpacer(), cancelButton, saveButton)

	sw.window.SetContent(container.NewBorder(nil, buttons, nil, nil, tabs))
	sw.window.Resize(fyne.NewSize(480, 400))
}

func (sw *SettingsWindow) buildGeneralTab() fyne.CanvasObject {
	sw.autoStartCheck = widget.NewCheck("Launch FastCalendar when your system starts", nil)
	sw.autoStartCheck.SetChecked(sw.config.AutoStart)

	sw.darkThemeCheck = widget.NewCheck("Dark theme", nil)
	sw.darkThemeCheck.SetChecked(sw.config.DarkTheme)

	sw.notifyCheck = widget.NewCheck("Desktop notification when an event starts", nil)
	sw.notifyCheck.SetChecked(sw.config.NotifyOnStart)

	sw.chimeCheck = widget.NewCheck("Play a chime when an event starts", nil)
	sw.chimeCheck.SetChecked(sw.config.ChimeOnStart)

	return container.NewVBox(
		widget.NewLabelWithStyle("General", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		sw.autoStartCheck,
		sw.darkThemeCheck,
		widget.NewSeparator(),
		sw.notifyCheck,
		sw.chimeCheck,
	)
}

func (sw *SettingsWindow) buildLayoutTab() fyne.CanvasObject {
	sw.baseHeightEntry = widget.NewEntry()
	sw.baseHeightEntry.SetText(strconv.Itoa(sw.config.BaseHeightPerHour))

	sw.extraHeightEntry = widget.NewEntry()
	sw.extraHeightEntry.SetText(strconv.Itoa(sw.config.ExtraHeightPerOverlap))

	baseHelp := widget.NewLabel("Vertical pixels per hour with no overlapping events")
	baseHelp.Importance = widget.MediumImportance
	extraHelp := widget.NewLabel("Extra pixels added per unit of peak overlap")
	extraHelp.Importance = widget.MediumImportance

	form := container.New(layout.NewFormLayout(),
		container.NewVBox(widget.NewLabel("Base height per hour:"), baseHelp),
		sw.baseHeightEntry,

		container.NewVBox(widget.NewLabel("Extra height per overlap:"), extraHelp),
		sw.extraHeightEntry,
	)

	return container.NewVBox(
		widget.NewLabelWithStyle("Schedule Grid", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		form,
	)
}

// getConfigFromUI builds a new Config from the widgets; invalid sizing
// entries fall back to the defaults
func (sw *SettingsWindow) getConfigFromUI() *Config {
	newConfig := &Config{
		AutoStart:             sw.autoStartCheck.Checked,
		DarkTheme:             sw.darkThemeCheck.Checked,
		NotifyOnStart:         sw.notifyCheck.Checked,
		ChimeOnStart:          sw.chimeCheck.Checked,
		BaseHeightPerHour:     models.DefaultBaseHeightPerHour,
		ExtraHeightPerOverlap: models.DefaultExtraHeightPerOverlap,
	}

	if n, err := strconv.Atoi(sw.baseHeightEntry.Text); err == nil && n > 0 {
		newConfig.BaseHeightPerHour = n
	}
	if n, err := strconv.Atoi(sw.extraHeightEntry.Text); err == nil && n > 0 {
		newConfig.ExtraHeightPerOverlap = n
	}

	return newConfig
}

func (sw *SettingsWindow) Show() {
	sw.window.Show()
}
