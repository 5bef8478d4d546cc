package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/42connor/fastcalendar/pkg/schedule"
)

// ScheduleWindow is the main window: a free-text input on top and the
// day/week/month schedule views underneath. It owns the submission flow
// (parse, append, recompute layout, re-render).
type ScheduleWindow struct {
	fc     *FastCalendar
	window fyne.Window

	input       *widget.Entry
	dayView     *DayView
	dayScroll   *container.Scroll
	weekBox     *fyne.Container
	monthBox    *fyne.Container
	tabs        *container.AppTabs
	dateLabel   *widget.Label
	statusLabel *widget.Label

	viewDate time.Time
}

func NewScheduleWindow(fc *FastCalendar) *ScheduleWindow {
	sw := &ScheduleWindow{
		fc:       fc,
		viewDate: time.Now(),
	}

	sw.window = fc.app.NewWindow("FastCalendar")
	sw.buildUI()
	sw.window.Resize(fyne.NewSize(900, 700))

	// Closing the window keeps the app alive in the tray
	sw.window.SetCloseIntercept(func() {
		sw.window.Hide()
	})

	return sw
}

func (sw *ScheduleWindow) buildUI() {
	sw.input = widget.NewEntry()
	sw.input.SetPlaceHolder("Meeting with Team 9:00-10:00 am; Lunch 12:00-1:00 pm")
	sw.input.OnSubmitted = func(string) { sw.submit() }

	addButton := widget.NewButtonWithIcon("Add", theme.ContentAddIcon(), sw.submit)
	addButton.Importance = widget.HighImportance

	inputRow := container.NewBorder(nil, nil, nil, addButton, sw.input)

	sw.dateLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	navRow := container.NewHBox(
		widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() { sw.navigateDays(-1) }),
		sw.dateLabel,
		widget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() { sw.navigateDays(1) }),
		widget.NewButton("Today", func() {
			sw.viewDate = time.Now()
			sw.RefreshViews()
		}),
		layout.NewSpacer(),
		widget.NewButtonWithIcon("Now", theme.HistoryIcon(), sw.scrollToNow),
		widget.NewButtonWithIcon("Copy as iCal", theme.ContentCopyIcon(), sw.copyAsICal),
		widget.NewButtonWithIcon("", theme.SettingsIcon(), func() { sw.fc.showSettingsWindow() }),
	)

	sw.dayView = NewDayView()
	sw.dayScroll = container.NewVScroll(sw.dayView)

	sw.weekBox = container.NewStack()
	sw.monthBox = container.NewStack()

	sw.tabs = container.NewAppTabs(
		container.NewTabItem("Day", sw.dayScroll),
		container.NewTabItem("Week", container.NewVScroll(sw.weekBox)),
		container.NewTabItem("Month", container.NewVScroll(sw.monthBox)),
	)
	sw.tabs.OnSelected = func(*container.TabItem) { sw.RefreshViews() }

	sw.statusLabel = widget.NewLabel("No events yet")

	content := container.NewBorder(
		container.NewVBox(inputRow, navRow),
		sw.statusLabel,
		nil, nil,
		sw.tabs,
	)
	sw.window.SetContent(content)

	sw.RefreshViews()
}

// submit consumes the input line. Empty submissions are a no-op; entries
// that fail to parse are logged by the store and simply do not appear.
func (sw *ScheduleWindow) submit() {
	raw := sw.input.Text
	if strings.TrimSpace(raw) == "" {
		return
	}

	added := sw.fc.store.ParseAndAppend(raw, time.Now())
	log.Printf("Submission added %d event(s)", added)
	if added > 0 {
		sw.input.SetText("")
	}

	sw.RefreshViews()
	sw.fc.updateSystemTrayMenu()
}

// RefreshViews recomputes the layout from the full event list and
// re-renders whichever views are visible
func (sw *ScheduleWindow) RefreshViews() {
	events := sw.fc.store.Events()
	params := schedule.Estimate(events, sw.fc.config.LayoutConfig())

	sw.dayView.SetSchedule(sw.fc.store.EventsOn(sw.viewDate), params)
	sw.weekBox.Objects = []fyne.CanvasObject{sw.buildWeekView()}
	sw.weekBox.Refresh()
	sw.monthBox.Objects = []fyne.CanvasObject{sw.buildMonthView()}
	sw.monthBox.Refresh()

	sw.dateLabel.SetText(sw.viewDate.Format("Mon, Jan 2 2006"))
	if len(events) == 0 {
		sw.statusLabel.SetText("No events yet")
	} else {
		sw.statusLabel.SetText(fmt.Sprintf("%d event(s) · peak overlap %d · grid %.0fpx · font %.0f%%",
			len(events), params.MaxOverlap, params.PixelHeight, params.FontScale*100))
	}
}

func (sw *ScheduleWindow) navigateDays(days int) {
	sw.viewDate = sw.viewDate.AddDate(0, 0, days)
	sw.RefreshViews()
}

// scrollToNow centers the day view on the current time
func (sw *ScheduleWindow) scrollToNow() {
	sw.tabs.SelectIndex(0)

	offset := hourFraction(time.Now())*sw.dayView.RowHeight() - sw.dayScroll.Size().Height/2
	if offset < 0 {
		offset = 0
	}
	sw.dayScroll.Offset = fyne.NewPos(0, offset)
	sw.dayScroll.Refresh()
}

// copyAsICal puts the whole session's events on the clipboard as ICS
func (sw *ScheduleWindow) copyAsICal() {
	data, err := schedule.EncodeICal(sw.fc.store.Events())
	if err != nil {
		dialog.ShowInformation("Export", "There are no events to export yet.", sw.window)
		return
	}

	sw.window.Clipboard().SetContent(string(data))
	sw.statusLabel.SetText(fmt.Sprintf("Copied %d event(s) to clipboard as iCal", sw.fc.store.Len()))
	log.Printf("Exported %d events to clipboard", sw.fc.store.Len())
}

func (sw *ScheduleWindow) Show() {
	sw.window.Show()
}
