// File: calendar/classify.go
package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates throughout the system.
const DateLayout = "2006-01-02"

// ErrInvalidClock is returned for clock strings that do not match the
// "H:MM AM" / "H:MM PM" format.
var ErrInvalidClock = errors.New("invalid clock time format, want \"H:MM AM|PM\"")

// Status classifies an appointment instant relative to the current time.
type Status string

const (
	// StatusNone means there was nothing to classify (missing date or clock).
	// It is a safe default, not an "upcoming" signal; callers must check
	// presence themselves before trusting it.
	StatusNone Status = ""
	// StatusPast means the appointment instant lies strictly before now.
	StatusPast Status = "past"
	// StatusUpcoming means the appointment instant is now or later.
	StatusUpcoming Status = "upcoming"
)

// ParseClock parses a 12-hour clock string such as "9:30 AM" or "12:05 PM"
// into a 24-hour (hour, minute) pair. Hour 12 maps to 12 with a PM marker
// and to 0 with an AM marker; hours 1-11 gain 12 under PM. Anything that
// is not exactly two space-separated tokens with an in-range integer hour
// and minute yields ErrInvalidClock.
func ParseClock(s string) (hour, minute int, err error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	hm := strings.Split(fields[0], ":")
	if len(hm) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	hour, err = strconv.Atoi(hm[0])
	if err != nil || hour < 1 || hour > 12 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	minute, err = strconv.Atoi(hm[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	switch strings.ToUpper(fields[1]) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	default:
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return hour, minute, nil
}

// At resolves a date string ("2006-01-02") and a 12-hour clock string to
// the instant they describe in the given location, with seconds and
// sub-second fields zeroed.
func At(date, clock string, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	hour, minute, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc), nil
}

// Classify decides whether the appointment described by date and clock
// lies strictly before now. A missing date or clock yields StatusNone.
func Classify(date, clock string, now time.Time) (Status, error) {
	if date == "" || clock == "" {
		return StatusNone, nil
	}
	at, err := At(date, clock, now.Location())
	if err != nil {
		return StatusNone, err
	}
	if at.Before(now) {
		return StatusPast, nil
	}
	return StatusUpcoming, nil
}
