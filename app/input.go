package app

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	dps "github.com/markusmobius/go-dateparser"

	"github.com/ayoisaiah/tanss/internal/config"
	"github.com/ayoisaiah/tanss/internal/timeutil"
	"github.com/ayoisaiah/tanss/internal/vacation"
)

const dateLayout = "2006-01-02"

// parseDate accepts an ISO date or a natural language expression such as
// "tomorrow" or "next friday", resolved relative to now in loc.
func parseDate(s string, now time.Time, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return now.In(loc), nil
	}

	if t, err := time.ParseInLocation(dateLayout, s, loc); err == nil {
		return t, nil
	}

	cfg := &dps.Configuration{
		CurrentTime:     now.In(loc),
		DefaultTimezone: loc,
	}

	dt, err := dps.Parse(cfg, s)
	if err != nil || dt.Time.IsZero() {
		return time.Time{}, errInvalidDate.Fmt(s)
	}

	return dt.Time.In(loc), nil
}

// parseClock turns "hh:mm" into a time value carrying only that hour and
// minute.
func parseClock(s string) (time.Time, error) {
	h, m, err := timeutil.ParseClock(s)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(0, time.January, 1, h, m, 0, 0, time.UTC), nil
}

// readPayload decodes a raw vacation day record from path, or from
// config.Stdin when path is "-".
func readPayload(path string) (vacation.DayBaseObject, error) {
	var base vacation.DayBaseObject

	var r io.Reader = config.Stdin

	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return base, errReadPayload.Wrap(err)
		}
		defer f.Close()

		r = f
	}

	if err := json.NewDecoder(r).Decode(&base); err != nil {
		return base, errReadPayload.Wrap(err)
	}

	return base, nil
}

// promptSecret asks for a value without echoing it.
func promptSecret(title string) (string, error) {
	var secret string

	err := huh.NewInput().
		Title(title).
		EchoMode(huh.EchoModePassword).
		Value(&secret).
		Run()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(secret), nil
}

// confirm asks a yes/no question. It defaults to no.
func confirm(title string) (bool, error) {
	var ok bool

	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()

	return ok, err
}
