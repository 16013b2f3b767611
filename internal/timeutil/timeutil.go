// Package timeutil provides utility functions for converting between the raw
// integer time fields used by the TANSS API and time.Time values.
package timeutil

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	minutesInAnHour = 60
	hoursInADay     = 24
)

// RoundHalfEven rounds a value to the nearest integer. Values exactly
// halfway between two integers go to the even one.
func RoundHalfEven(v float64) int {
	return int(math.RoundToEven(v))
}

// MinsToHoursAndMins expresses a minutes value in hours and mins.
func MinsToHoursAndMins(val int) (hrs, mins int) {
	hrs = int(math.Floor(float64(val) / float64(minutesInAnHour)))
	mins = val % minutesInAnHour

	return
}

// EpochToDay interprets secs as a whole-day UTC epoch value and returns
// midnight of that calendar date in loc. Any time of day carried by secs is
// dropped.
func EpochToDay(secs int64, loc *time.Location) time.Time {
	u := time.Unix(secs, 0).UTC()

	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, loc)
}

// DayToEpoch returns the epoch seconds of UTC midnight on the calendar date
// of t, as seen in t's own location.
func DayToEpoch(t time.Time) int64 {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).Unix()
}

// FormatSpan renders a duration as "hh:mm:ss", prefixed with "d." when it
// spans one or more days. Sub-second precision is dropped and negative
// durations are rendered with a leading minus sign.
func FormatSpan(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}

	total := int64(d / time.Second)
	secs := total % 60
	mins := (total / 60) % minutesInAnHour
	hrs := (total / 3600) % hoursInADay
	days := total / (3600 * hoursInADay)

	if days > 0 {
		return fmt.Sprintf("%s%d.%02d:%02d:%02d", sign, days, hrs, mins, secs)
	}

	return fmt.Sprintf("%s%02d:%02d:%02d", sign, hrs, mins, secs)
}

// ParseClock parses a wall clock value such as "9:30" or "17:05" into its
// hour and minute components.
func ParseClock(s string) (hour, minute int, err error) {
	h, m, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		return 0, 0, ErrInvalidClock.Fmt(s)
	}

	hour, err = strconv.Atoi(h)
	if err != nil || hour < 0 || hour >= hoursInADay {
		return 0, 0, ErrInvalidClock.Fmt(s)
	}

	minute, err = strconv.Atoi(m)
	if err != nil || minute < 0 || minute >= minutesInAnHour {
		return 0, 0, ErrInvalidClock.Fmt(s)
	}

	return hour, minute, nil
}
