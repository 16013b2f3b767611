// Package vacation models vacation request days and entitlements as they
// are exchanged with the TANSS API.
package vacation

import (
	"time"

	"github.com/ayoisaiah/tanss/internal/timeutil"
)

// Shape classifies how much of a day a vacation day covers.
type Shape string

const (
	FullDay Shape = "FullDay"
	HalfDay Shape = "HalfDay"
	None    Shape = "None"
)

const dateLayout = "2006-01-02"

// DayBaseObject is the raw payload of a vacation day as delivered by the API.
// Date is a whole-day value in epoch seconds; the time of day is carried by
// the hour and minute offsets.
type DayBaseObject struct {
	VacationRequestID int  `json:"vacationRequestId"`
	Date              int  `json:"date"`
	StartHour         int  `json:"startHour"`
	StartMinute       int  `json:"startMinute"`
	EndHour           int  `json:"endHour"`
	EndMinute         int  `json:"endMinute"`
	Pause             int  `json:"pause"`
	Forenoon          bool `json:"forenoon"`
	Afternoon         bool `json:"afternoon"`
}

// Day is one day, or half day, of a vacation request. It stores nothing of
// its own: every accessor reads from and writes to the base object.
type Day struct {
	loc  *time.Location
	Base DayBaseObject `json:"baseObject"`
}

// DayOption configures a Day.
type DayOption func(*Day)

// WithLocation sets the location in which calendar dates and times of day
// are expressed. It defaults to time.Local.
func WithLocation(loc *time.Location) DayOption {
	return func(d *Day) {
		d.loc = loc
	}
}

// NewDay wraps a raw payload.
func NewDay(base DayBaseObject, opts ...DayOption) *Day {
	d := &Day{Base: base}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

func (d *Day) location() *time.Location {
	if d.loc != nil {
		return d.loc
	}

	return time.Local
}

// RequestID returns the id of the vacation request the day belongs to.
func (d *Day) RequestID() int {
	return d.Base.VacationRequestID
}

func (d *Day) SetRequestID(id int) {
	d.Base.VacationRequestID = id
}

// Date returns midnight of the day's calendar date.
func (d *Day) Date() time.Time {
	return timeutil.EpochToDay(int64(d.Base.Date), d.location())
}

// SetDate stores the calendar date of t. The time of day is discarded.
func (d *Day) SetDate(t time.Time) {
	d.Base.Date = int(timeutil.DayToEpoch(t))
}

// at returns the wall clock time hour:minute on the day's calendar date.
func (d *Day) at(hour, minute int) time.Time {
	date := d.Date()

	return time.Date(
		date.Year(), date.Month(), date.Day(),
		hour, minute, 0, 0,
		date.Location(),
	)
}

func (d *Day) Forenoon() bool {
	return d.Base.Forenoon
}

func (d *Day) SetForenoon(v bool) {
	d.Base.Forenoon = v
}

func (d *Day) Afternoon() bool {
	return d.Base.Afternoon
}

func (d *Day) SetAfternoon(v bool) {
	d.Base.Afternoon = v
}

// StartTime is the calendar date plus the start hour and minute.
func (d *Day) StartTime() time.Time {
	return d.at(d.Base.StartHour, d.Base.StartMinute)
}

// SetStartTime keeps only the hour and minute of t. Use SetDate to change
// the date.
func (d *Day) SetStartTime(t time.Time) {
	d.Base.StartHour = t.Hour()
	d.Base.StartMinute = t.Minute()
}

// EndTime is the calendar date plus the end hour and minute.
func (d *Day) EndTime() time.Time {
	return d.at(d.Base.EndHour, d.Base.EndMinute)
}

// SetEndTime keeps only the hour and minute of t. Use SetDate to change the
// date.
func (d *Day) SetEndTime(t time.Time) {
	d.Base.EndHour = t.Hour()
	d.Base.EndMinute = t.Minute()
}

// Pause is the break taken during the day, in minutes.
func (d *Day) Pause() int {
	return d.Base.Pause
}

func (d *Day) SetPause(mins int) {
	d.Base.Pause = mins
}

// WorkingTime is the span between start and end less the pause. It is never
// negative.
func (d *Day) WorkingTime() time.Duration {
	span := d.EndTime().Sub(d.StartTime()) -
		time.Duration(d.Base.Pause)*time.Minute

	return max(span, 0)
}

// IsFullDay reports whether both the forenoon and the afternoon are taken.
func (d *Day) IsFullDay() bool {
	return d.Base.Forenoon && d.Base.Afternoon
}

// Shape classifies the day from its forenoon and afternoon flags.
func (d *Day) Shape() Shape {
	switch {
	case d.IsFullDay():
		return FullDay
	case d.Base.Forenoon || d.Base.Afternoon:
		return HalfDay
	default:
		return None
	}
}

// String returns "yyyy-MM-dd/<Shape>".
func (d *Day) String() string {
	return d.Date().Format(dateLayout) + "/" + string(d.Shape())
}
