package main

import (
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/42connor/fastcalendar/pkg/store"
)

type FastCalendar struct {
	app            fyne.App
	config         *Config
	store          *store.EventStore
	scheduleWindow *ScheduleWindow
	refreshTicker  *time.Ticker

	// Event IDs that already triggered a start notification this session
	notified map[string]bool
}

func main() {
	fc := &FastCalendar{
		app:      app.NewWithID("com.fastcalendar.app"),
		store:    store.NewEventStore(),
		notified: make(map[string]bool),
	}

	if err := fc.initialize(); err != nil {
		log.Fatal(err)
	}

	fc.run()
}

func (fc *FastCalendar) initialize() error {
	fc.config = loadConfig(fc.app)

	// Sync autostart state with config on startup
	if err := setupAutostart(fc.config.AutoStart); err != nil {
		log.Printf("Warning: failed to setup autostart: %v", err)
	}

	saveConfig(fc.app, fc.config)
	fc.applyTheme()

	fc.scheduleWindow = NewScheduleWindow(fc)
	fc.setupSystemTray()
	fc.startRefreshTicker()

	return nil
}

func (fc *FastCalendar) run() {
	fc.scheduleWindow.Show()
	fc.app.Run()
}

// startRefreshTicker drives the shell's once-a-minute work: re-evaluating
// which event is current in the day view and firing start notifications.
func (fc *FastCalendar) startRefreshTicker() {
	fc.refreshTicker = time.NewTicker(1 * time.Minute)
	go func() {
		for range fc.refreshTicker.C {
			fc.onMinute()
		}
	}()

	go func() {
		time.Sleep(5 * time.Second)
		fc.onMinute()
	}()
}

func (fc *FastCalendar) onMinute() {
	fc.checkStartingEvents()
	fyne.Do(func() {
		if fc.scheduleWindow != nil {
			fc.scheduleWindow.RefreshViews()
		}
		fc.updateSystemTrayMenu()
	})
}

// checkStartingEvents notifies once per event when it becomes current
func (fc *FastCalendar) checkStartingEvents() {
	now := time.Now()

	for _, event := range fc.store.ActiveAt(now) {
		if fc.notified[event.ID] {
			continue
		}
		fc.notified[event.ID] = true

		if fc.config.NotifyOnStart {
			fc.app.SendNotification(fyne.NewNotification(
				event.Title,
				event.StartTime.Format("3:04 PM")+" - "+event.EndTime.Format("3:04 PM"),
			))
			log.Printf("Notified start of event: %s", event.Title)
		}
		if fc.config.ChimeOnStart {
			playChime()
		}
	}
}

func (fc *FastCalendar) showSettingsWindow() {
	NewSettingsWindow(fc.app, fc.config, func(newConfig *Config) {
		fc.config = newConfig
		saveConfig(fc.app, fc.config)
		fc.applyTheme()

		if err := setupAutostart(fc.config.AutoStart); err != nil {
			log.Printf("Error setting autostart: %v", err)
		}

		fc.scheduleWindow.RefreshViews()
	}).Show()
}

func (fc *FastCalendar) quit() {
	if fc.refreshTicker != nil {
		fc.refreshTicker.Stop()
	}
	fc.app.Quit()
}
