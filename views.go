package main

import (
	"fmt"
	"sort"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/42connor/fastcalendar/pkg/models"
)

// buildWeekView lays out seven day columns for the week containing the
// current view date. These summary views are presentation only; all sizing
// logic lives in the day view.
func (sw *ScheduleWindow) buildWeekView() fyne.CanvasObject {
	weekStart := startOfWeek(sw.viewDate)

	columns := make([]fyne.CanvasObject, 0, 7)
	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		col := container.NewVBox(
			widget.NewLabelWithStyle(day.Format("Mon 2"), fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
			widget.NewSeparator(),
		)

		for _, event := range sortedByStart(sw.fc.store.EventsOn(day)) {
			label := widget.NewLabel(fmt.Sprintf("%s %s",
				event.StartTime.Format("3:04 PM"), event.Title))
			label.Wrapping = fyne.TextWrapWord
			col.Add(label)
		}

		columns = append(columns, col)
	}

	return container.NewGridWithColumns(7, columns...)
}

// buildMonthView lists the days of the view month that have events
func (sw *ScheduleWindow) buildMonthView() fyne.CanvasObject {
	year, month, _ := sw.viewDate.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, sw.viewDate.Location())

	box := container.NewVBox(
		widget.NewLabelWithStyle(first.Format("January 2006"), fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),
	)

	total := 0
	for day := first; day.Month() == month; day = day.AddDate(0, 0, 1) {
		events := sortedByStart(sw.fc.store.EventsOn(day))
		if len(events) == 0 {
			continue
		}
		total += len(events)

		box.Add(widget.NewLabelWithStyle(day.Format("Monday, Jan 2"), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
		for _, event := range events {
			box.Add(widget.NewLabel(fmt.Sprintf("    %s - %s  %s",
				event.StartTime.Format("3:04 PM"), event.EndTime.Format("3:04 PM"), event.Title)))
		}
	}

	if total == 0 {
		box.Add(widget.NewLabel("No events this month"))
	}

	return box
}

// startOfWeek returns midnight of the Sunday beginning t's week
func startOfWeek(t time.Time) time.Time {
	year, month, day := t.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

func sortedByStart(events []models.Event) []models.Event {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].StartTime.Before(events[j].StartTime)
	})
	return events
}
