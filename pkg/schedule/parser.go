package schedule

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/42connor/fastcalendar/pkg/models"
)

// entryPattern matches one free-text entry of the form
// "[optional title in brackets] H:MM - H:MM am|pm". The brackets are
// independently optional, the title runs up to the first time token, and a
// single am/pm designator covers both clock times.
var entryPattern = regexp.MustCompile(`(?i)^\[?(.*?)\]?\s*(\d{1,2}):(\d{2})\s*-\s*(\d{1,2}):(\d{2})\s*(am|pm)$`)

var errNoMatch = errors.New("entry does not match \"TITLE H:MM-H:MM am|pm\"")

// ParseError describes one rejected entry from a submission. Rejections are
// per entry and never abort the rest of the submission.
type ParseError struct {
	Entry string // the trimmed entry text that failed
	Err   error  // what went wrong
}

func (e ParseError) Error() string {
	return fmt.Sprintf("entry %q: %v", e.Entry, e.Err)
}

func (e ParseError) Unwrap() error {
	return e.Err
}

// ParseLine converts one raw input submission into events. The input is split
// on semicolons into independent entries; entries that trim to empty are
// skipped, and entries that fail to parse are collected as ParseErrors while
// their siblings continue to be processed. Clock times are anchored to the
// calendar date of day.
func ParseLine(raw string, day time.Time) ([]models.Event, []ParseError) {
	entries := strings.Split(raw, ";")

	events := make([]models.Event, 0, len(entries))
	var failures []ParseError

	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		event, err := parseEntry(entry, day)
		if err != nil {
			failures = append(failures, ParseError{Entry: entry, Err: err})
			continue
		}
		events = append(events, event)
	}

	return events, failures
}

func parseEntry(entry string, day time.Time) (models.Event, error) {
	m := entryPattern.FindStringSubmatch(entry)
	if m == nil {
		return models.Event{}, errNoMatch
	}

	title := strings.TrimSpace(m[1])
	designator := m[6]

	// The single designator applies to both sides. Mixed-designator spans
	// like "11:30am - 12:15pm" therefore resolve under one designator; the
	// rollover below is the only cross-midnight handling.
	start, err := resolveClock(day, m[2], m[3], designator)
	if err != nil {
		return models.Event{}, fmt.Errorf("start time: %w", err)
	}
	end, err := resolveClock(day, m[4], m[5], designator)
	if err != nil {
		return models.Event{}, fmt.Errorf("end time: %w", err)
	}

	// An end before its start means the event crosses midnight; push the
	// end forward one calendar day. Spans longer than one rollover are not
	// representable in this grammar.
	if end.Before(start) {
		end = end.AddDate(0, 0, 1)
	}

	return models.Event{
		ID:        uuid.New().String(),
		Title:     title,
		StartTime: start,
		EndTime:   end,
	}, nil
}

// resolveClock turns a 12-hour clock reading into a concrete time on the
// given calendar day, in that day's location.
func resolveClock(day time.Time, hourStr, minuteStr, designator string) (time.Time, error) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid hour %q: %w", hourStr, err)
	}
	minute, err := strconv.Atoi(minuteStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid minute %q: %w", minuteStr, err)
	}

	if hour < 1 || hour > 12 {
		return time.Time{}, fmt.Errorf("hour %d out of 12-hour range", hour)
	}
	if minute > 59 {
		return time.Time{}, fmt.Errorf("minute %d out of range", minute)
	}

	switch strings.ToLower(designator) {
	case "pm":
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location()), nil
}
