package app

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/ayoisaiah/tanss/internal/config"
	"github.com/ayoisaiah/tanss/internal/lookup"
	"github.com/ayoisaiah/tanss/internal/session"
	"github.com/ayoisaiah/tanss/internal/timeutil"
	"github.com/ayoisaiah/tanss/internal/ui"
)

const (
	noSessionsMsg = "No sessions stored yet"
	noLookupsMsg  = "No lookup entries stored yet"
)

// sessionStatus is the printable snapshot of a session's lifetime.
type sessionStatus struct {
	Created          *time.Time `json:"created,omitempty"`
	Expires          *time.Time `json:"expires,omitempty"`
	Label            string     `json:"label"`
	Key              string     `json:"key"`
	Error            string     `json:"error,omitempty"`
	LifetimeSeconds  int64      `json:"lifetime_seconds"`
	RemainingSeconds int64      `json:"remaining_seconds"`
	Percent          int        `json:"percent_remaining"`
	EmployeeID       int        `json:"employee_id,omitempty"`
	Valid            bool       `json:"valid"`
}

func newSessionStatus(sess *session.Session) sessionStatus {
	s := sessionStatus{
		Created:          sess.Created,
		Expires:          sess.Expires,
		Label:            sess.String(),
		Key:              sess.Key(),
		LifetimeSeconds:  int64(sess.AccessLifetime() / time.Second),
		RemainingSeconds: int64(sess.TimeRemaining() / time.Second),
		EmployeeID:       sess.EmployeeID,
		Valid:            sess.Valid(),
	}

	percent, err := sess.PercentRemaining()
	if err != nil {
		s.Error = err.Error()
	}

	s.Percent = percent

	return s
}

func formatTimestamp(t *time.Time, cfg *config.Config) string {
	if t == nil {
		return ""
	}

	layout := "Jan 02, 2006 03:04:05 PM"
	if cfg.Display.TwentyFourHour {
		layout = "Jan 02, 2006 15:04:05"
	}

	return t.Local().Format(layout)
}

// printSessionStatus prints one session as label/value rows.
func printSessionStatus(w io.Writer, s sessionStatus, employee string, cfg *config.Config) {
	percent := ui.Percent(s.Percent, cfg.Session.WarnPercent)
	if s.Error != "" {
		percent = ui.Red(s.Error)
	}

	rows := [][]string{
		{"Session", ui.Highlight(s.Label)},
		{"Valid", ui.Bool(s.Valid)},
		{"Created", formatTimestamp(s.Created, cfg)},
		{"Expires", formatTimestamp(s.Expires, cfg)},
		{"Lifetime", timeutil.FormatSpan(time.Duration(s.LifetimeSeconds) * time.Second)},
		{"Remaining", timeutil.FormatSpan(time.Duration(s.RemainingSeconds) * time.Second)},
		{"Percent", percent},
	}

	if employee != "" {
		rows = append(rows, []string{"Employee", employee})
	}

	ui.PrintKeyValues(rows, w)
}

// printSessionsTable prints a session table to the command-line.
func printSessionsTable(
	w io.Writer,
	sessions []*session.Session,
	cache *lookup.Cache,
	warnPercent int,
) {
	tableBody := make([][]string, len(sessions))

	for i, sess := range sessions {
		s := newSessionStatus(sess)

		percent := ui.Percent(s.Percent, warnPercent)
		if s.Error != "" {
			percent = ui.Red("n/a")
		}

		tableBody[i] = []string{
			strconv.Itoa(i + 1),
			sess.Server,
			sess.Username,
			employeeName(cache, sess),
			ui.Bool(s.Valid),
			timeutil.FormatSpan(sess.TimeRemaining()),
			percent,
		}
	}

	tableBody = append([][]string{
		{"#", "SERVER", "USER", "EMPLOYEE", "VALID", "REMAINING", "PERCENT"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// printLookupTable prints the entries of the given kinds.
func printLookupTable(w io.Writer, cache *lookup.Cache, kinds []lookup.Kind) {
	var tableBody [][]string

	for _, kind := range kinds {
		for _, e := range cache.Entries(kind) {
			tableBody = append(tableBody, []string{
				string(kind),
				strconv.Itoa(e.ID),
				e.Name,
			})
		}
	}

	tableBody = append([][]string{{"KIND", "ID", "NAME"}}, tableBody...)

	ui.PrintTable(tableBody, w)
}

func lookupSummary(cache *lookup.Cache) string {
	total := 0
	for _, k := range cache.Kinds() {
		total += cache.Len(k)
	}

	return fmt.Sprintf("%d entries in %d tables", total, len(cache.Kinds()))
}
