package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/tanss/internal/config"
	"github.com/ayoisaiah/tanss/internal/lookup"
	"github.com/ayoisaiah/tanss/internal/timeutil"
	"github.com/ayoisaiah/tanss/internal/ui"
	"github.com/ayoisaiah/tanss/internal/vacation"
)

// dayView is the printable form of a vacation day.
type dayView struct {
	Base        vacation.DayBaseObject `json:"baseObject"`
	Label       string                 `json:"label"`
	Date        string                 `json:"date"`
	Start       string                 `json:"start"`
	End         string                 `json:"end"`
	Shape       vacation.Shape         `json:"shape"`
	WorkingTime string                 `json:"workingTime"`
}

func newDayView(d *vacation.Day) dayView {
	return dayView{
		Base:        d.Base,
		Label:       d.String(),
		Date:        d.Date().Format(dateLayout),
		Start:       d.StartTime().Format(time.RFC3339),
		End:         d.EndTime().Format(time.RFC3339),
		Shape:       d.Shape(),
		WorkingTime: timeutil.FormatSpan(d.WorkingTime()),
	}
}

// buildDay assembles a vacation day from an optional payload and the
// command flags. Flags that were set override payload fields.
func buildDay(ctx *cli.Context, now time.Time, loc *time.Location) (*vacation.Day, error) {
	var base vacation.DayBaseObject

	if path := ctx.String(payloadFlag.Name); path != "" {
		var err error

		base, err = readPayload(path)
		if err != nil {
			return nil, err
		}
	}

	d := vacation.NewDay(base, vacation.WithLocation(loc))

	if ctx.IsSet(dateFlag.Name) || base.Date == 0 {
		date, err := parseDate(ctx.String(dateFlag.Name), now, loc)
		if err != nil {
			return nil, err
		}

		d.SetDate(date)
	}

	if ctx.IsSet(forenoonFlag.Name) {
		d.SetForenoon(ctx.Bool(forenoonFlag.Name))
	}

	if ctx.IsSet(afternoonFlag.Name) {
		d.SetAfternoon(ctx.Bool(afternoonFlag.Name))
	}

	if ctx.IsSet(startFlag.Name) {
		t, err := parseClock(ctx.String(startFlag.Name))
		if err != nil {
			return nil, err
		}

		d.SetStartTime(t)
	}

	if ctx.IsSet(endFlag.Name) {
		t, err := parseClock(ctx.String(endFlag.Name))
		if err != nil {
			return nil, err
		}

		d.SetEndTime(t)
	}

	if ctx.IsSet(pauseFlag.Name) {
		d.SetPause(ctx.Int(pauseFlag.Name))
	}

	if ctx.IsSet(requestIDFlag.Name) {
		d.SetRequestID(ctx.Int(requestIDFlag.Name))
	}

	return d, nil
}

// vacationDayAction prints the calendar view of a vacation day record.
func vacationDayAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	loc, err := cfg.Vacation.Location()
	if err != nil {
		return err
	}

	d, err := buildDay(ctx, time.Now(), loc)
	if err != nil {
		return err
	}

	view := newDayView(d)

	if ctx.Bool(jsonFlag.Name) {
		b, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return err
		}

		fmt.Fprintln(config.Stdout, string(b))

		return nil
	}

	printDay(config.Stdout, d, cfg)

	return nil
}

// formatPause renders a break length such as 95 minutes as "1h 35m".
func formatPause(mins int) string {
	hrs, m := timeutil.MinsToHoursAndMins(mins)
	if hrs == 0 {
		return fmt.Sprintf("%dm", m)
	}

	return fmt.Sprintf("%dh %02dm", hrs, m)
}

func printDay(w io.Writer, d *vacation.Day, cfg *config.Config) {
	layout := "03:04 PM"
	if cfg.Display.TwentyFourHour {
		layout = "15:04"
	}

	rows := [][]string{
		{"Day", ui.Highlight(d.String())},
		{"Date", d.Date().Format("Mon, Jan 02 2006 MST")},
		{"Start", d.StartTime().Format(layout)},
		{"End", d.EndTime().Format(layout)},
		{"Pause", formatPause(d.Pause())},
		{"Working time", timeutil.FormatSpan(d.WorkingTime())},
	}

	if d.RequestID() != 0 {
		rows = append(rows, []string{"Request", strconv.Itoa(d.RequestID())})
	}

	ui.PrintKeyValues(rows, w)
}

// entitlementView is the printable form of a vacation entitlement.
type entitlementView struct {
	Label    string `json:"label"`
	Employee string `json:"employee,omitempty"`
	vacation.Entitlement
	Total int `json:"total"`
}

func buildEntitlement(ctx *cli.Context, now time.Time) vacation.Entitlement {
	year := ctx.Int(yearFlag.Name)
	if year == 0 {
		year = now.Year()
	}

	return vacation.Entitlement{
		EmployeeID:      ctx.Int(employeeIDFlag.Name),
		Year:            year,
		NumberOfDays:    ctx.Int(daysFlag.Name),
		TransferredDays: ctx.Int(transferredFlag.Name),
	}
}

func newEntitlementView(e vacation.Entitlement, cache *lookup.Cache) entitlementView {
	v := entitlementView{
		Label:       e.String(),
		Entitlement: e,
		Total:       e.Total(),
	}

	if e.EmployeeID != 0 {
		if name, ok := cache.Get(lookup.Employees, e.EmployeeID); ok {
			v.Employee = name
		}
	}

	return v
}

// vacationEntitlementAction prints an entitlement with the employee name
// resolved from the lookup tables when known.
func vacationEntitlementAction(ctx *cli.Context) error {
	_, db, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	view := newEntitlementView(buildEntitlement(ctx, time.Now()), loadLookups(ctx, db))

	if ctx.Bool(jsonFlag.Name) {
		b, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return err
		}

		fmt.Fprintln(config.Stdout, string(b))

		return nil
	}

	rows := [][]string{
		{"Entitlement", ui.Highlight(view.Label)},
		{"Days", strconv.Itoa(view.NumberOfDays)},
		{"Transferred", strconv.Itoa(view.TransferredDays)},
		{"Total", ui.Green(strconv.Itoa(view.Total))},
	}

	if view.Employee != "" {
		rows = append(rows, []string{"Employee", view.Employee})
	}

	ui.PrintKeyValues(rows, config.Stdout)

	return nil
}
