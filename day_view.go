package main

import (
	"fmt"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/42connor/fastcalendar/pkg/models"
	"github.com/42connor/fastcalendar/pkg/schedule"
)

const (
	timeGutterWidth = 56
	blockInset      = 8
	minBlockHeight  = 18
)

// DayView renders one day as a 24-hour grid with positioned event blocks.
// Its total height and label size come from the layout estimator, so dense
// days grow taller and shrink their labels instead of colliding.
type DayView struct {
	widget.BaseWidget

	events []models.Event
	params models.LayoutParams
	now    func() time.Time
}

func NewDayView() *DayView {
	v := &DayView{
		now:    time.Now,
		params: schedule.Estimate(nil, models.DefaultLayoutConfig()),
	}
	v.ExtendBaseWidget(v)
	return v
}

// SetSchedule replaces the displayed events and the derived sizing
func (v *DayView) SetSchedule(events []models.Event, params models.LayoutParams) {
	v.events = events
	v.params = params
	v.Refresh()
}

// RowHeight returns the height of one hour row at the current sizing
func (v *DayView) RowHeight() float32 {
	return v.params.PixelHeight / models.HoursPerDay
}

func (v *DayView) CreateRenderer() fyne.WidgetRenderer {
	r := &dayViewRenderer{view: v}
	r.rebuild()
	return r
}

type eventBlock struct {
	event models.Event
	bg    *canvas.Rectangle
	label *canvas.Text
}

type dayViewRenderer struct {
	view *DayView

	hourLines  []*canvas.Line
	hourLabels []*canvas.Text
	blocks     []*eventBlock
	nowLine    *canvas.Line
}

// rebuild recreates the canvas objects from the view's current events
func (r *dayViewRenderer) rebuild() {
	lineColor := theme.DisabledColor()
	labelColor := theme.ForegroundColor()

	r.hourLines = r.hourLines[:0]
	r.hourLabels = r.hourLabels[:0]
	for h := 0; h < models.HoursPerDay; h++ {
		line := canvas.NewLine(lineColor)
		line.StrokeWidth = 1
		r.hourLines = append(r.hourLines, line)

		label := canvas.NewText(time.Date(0, 1, 1, h, 0, 0, 0, time.UTC).Format("3 PM"), labelColor)
		label.TextSize = theme.TextSize() * 0.8
		r.hourLabels = append(r.hourLabels, label)
	}

	now := r.view.now()
	fill := withAlpha(theme.PrimaryColor(), 60)

	r.blocks = r.blocks[:0]
	for _, event := range r.view.events {
		bg := canvas.NewRectangle(fill)
		bg.CornerRadius = 4
		if event.IsActiveAt(now) {
			bg.StrokeColor = theme.PrimaryColor()
			bg.StrokeWidth = 2
		}

		text := fmt.Sprintf("%s  %s - %s", event.Title,
			event.StartTime.Format("3:04 PM"), event.EndTime.Format("3:04 PM"))
		label := canvas.NewText(text, labelColor)
		label.TextSize = theme.TextSize() * r.view.params.FontScale
		label.TextStyle = fyne.TextStyle{Bold: true}

		r.blocks = append(r.blocks, &eventBlock{event: event, bg: bg, label: label})
	}

	r.nowLine = canvas.NewLine(theme.ErrorColor())
	r.nowLine.StrokeWidth = 2
}

func (r *dayViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(320, r.view.params.PixelHeight)
}

func (r *dayViewRenderer) Layout(size fyne.Size) {
	rowHeight := r.view.RowHeight()
	totalHeight := r.view.params.PixelHeight

	for h, line := range r.hourLines {
		y := float32(h) * rowHeight
		line.Position1 = fyne.NewPos(timeGutterWidth, y)
		line.Position2 = fyne.NewPos(size.Width, y)
		r.hourLabels[h].Move(fyne.NewPos(4, y+2))
	}

	blockWidth := size.Width - timeGutterWidth - blockInset
	for _, b := range r.blocks {
		y := hourFraction(b.event.StartTime) * rowHeight
		height := float32(b.event.Duration().Hours()) * rowHeight
		if height < minBlockHeight {
			height = minBlockHeight
		}
		if y+height > totalHeight {
			height = totalHeight - y
		}

		b.bg.Move(fyne.NewPos(timeGutterWidth, y))
		b.bg.Resize(fyne.NewSize(blockWidth, height))
		b.label.Move(fyne.NewPos(timeGutterWidth+blockInset, y+2))
	}

	nowY := hourFraction(r.view.now()) * rowHeight
	r.nowLine.Position1 = fyne.NewPos(timeGutterWidth, nowY)
	r.nowLine.Position2 = fyne.NewPos(size.Width, nowY)
}

func (r *dayViewRenderer) Refresh() {
	r.rebuild()
	r.Layout(r.view.Size())
	canvas.Refresh(r.view)
}

func (r *dayViewRenderer) Objects() []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, 2*len(r.hourLines)+2*len(r.blocks)+1)
	for _, line := range r.hourLines {
		objects = append(objects, line)
	}
	for _, label := range r.hourLabels {
		objects = append(objects, label)
	}
	for _, b := range r.blocks {
		objects = append(objects, b.bg, b.label)
	}
	objects = append(objects, r.nowLine)
	return objects
}

func (r *dayViewRenderer) Destroy() {}

// hourFraction returns the time of day as fractional hours since midnight
func hourFraction(t time.Time) float32 {
	return float32(t.Hour()) + float32(t.Minute())/60
}

func withAlpha(c color.Color, alpha uint8) color.Color {
	red, green, blue, _ := c.RGBA()
	return color.NRGBA{R: uint8(red >> 8), G: uint8(green >> 8), B: uint8(blue >> 8), A: alpha}
}
