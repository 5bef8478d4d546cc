package main

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/42connor/fastcalendar/pkg/models"
)

func (fc *FastCalendar) setupSystemTray() {
	fc.updateSystemTrayMenu()
}

func (fc *FastCalendar) updateSystemTrayMenu() {
	desk, ok := fc.app.(desktop.App)
	if !ok {
		return
	}

	menuItems := []*fyne.MenuItem{}

	// Upcoming events section at the top
	upcoming := fc.upcomingTodayEvents(5)
	if len(upcoming) > 0 {
		headerItem := fyne.NewMenuItem("Upcoming Today:", nil)
		headerItem.Disabled = true
		menuItems = append(menuItems, headerItem)

		for _, event := range upcoming {
			itemText := fmt.Sprintf("  %s - %s",
				event.StartTime.Format("3:04 PM"),
				truncateString(event.Title, 35))

			eventItem := fyne.NewMenuItem(itemText, nil)
			eventItem.Disabled = true
			menuItems = append(menuItems, eventItem)
		}

		menuItems = append(menuItems, fyne.NewMenuItemSeparator())
	}

	menuItems = append(menuItems,
		fyne.NewMenuItem("Show Schedule", func() {
			fc.scheduleWindow.Show()
		}),
		fyne.NewMenuItem("Settings", func() {
			fc.showSettingsWindow()
		}),
	)

	menuItems = append(menuItems, fyne.NewMenuItemSeparator())
	menuItems = append(menuItems, fyne.NewMenuItem("Quit", func() {
		fc.quit()
	}))

	desk.SetSystemTrayMenu(fyne.NewMenu("FastCalendar", menuItems...))
}

// upcomingTodayEvents returns the next N events starting later today
func (fc *FastCalendar) upcomingTodayEvents(limit int) []models.Event {
	now := time.Now()

	upcoming := []models.Event{}
	for _, event := range sortedByStart(fc.store.EventsOn(now)) {
		if !event.StartTime.After(now) {
			continue
		}
		upcoming = append(upcoming, event)
		if len(upcoming) == limit {
			break
		}
	}
	return upcoming
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
