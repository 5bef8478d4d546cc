package schedule

import (
	"bytes"
	"errors"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"

	"github.com/42connor/fastcalendar/pkg/models"
)

// EncodeICal renders the given events as an iCalendar payload, suitable for
// pasting into any calendar application. Events keep their session IDs as
// iCal UIDs.
func EncodeICal(events []models.Event) ([]byte, error) {
	if len(events) == 0 {
		return nil, errors.New("no events to export")
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//fastcalendar//fastcalendar//EN")

	now := time.Now()
	for _, event := range events {
		uid := event.ID
		if uid == "" {
			uid = uuid.New().String()
		}

		ve := ical.NewEvent()
		ve.Props.SetText(ical.PropUID, uid)
		ve.Props.SetText(ical.PropSummary, event.Title)
		ve.Props.SetDateTime(ical.PropDateTimeStamp, now)
		ve.Props.SetDateTime(ical.PropDateTimeStart, event.StartTime)
		ve.Props.SetDateTime(ical.PropDateTimeEnd, event.EndTime)

		cal.Children = append(cal.Children, ve.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
