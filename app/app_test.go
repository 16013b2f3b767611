package app

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/tanss/internal/config"
	"github.com/ayoisaiah/tanss/internal/lookup"
	"github.com/ayoisaiah/tanss/internal/session"
	"github.com/ayoisaiah/tanss/internal/testutil"
	"github.com/ayoisaiah/tanss/internal/timeutil"
	"github.com/ayoisaiah/tanss/internal/vacation"
	"github.com/ayoisaiah/tanss/store"
)

var t0 = time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)

func newContext(t *testing.T, flags []cli.Flag, args ...string) *cli.Context {
	t.Helper()

	set := flag.NewFlagSet(t.Name(), flag.ContinueOnError)

	for _, f := range flags {
		require.NoError(t, f.Apply(set))
	}

	require.NoError(t, set.Parse(args))

	return cli.NewContext(cli.NewApp(), set, nil)
}

func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()

	pterm.DisableStyling()

	var buf bytes.Buffer

	prev := config.Stdout
	config.Stdout = &buf

	t.Cleanup(func() {
		config.Stdout = prev
		pterm.EnableStyling()
	})

	return &buf
}

var dayFlags = []cli.Flag{
	dateFlag,
	forenoonFlag,
	afternoonFlag,
	startFlag,
	endFlag,
	pauseFlag,
	requestIDFlag,
	payloadFlag,
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("2024-06-10", t0, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), got)

	got, err = parseDate("", t0, time.UTC)
	require.NoError(t, err)
	assert.True(t, got.Equal(t0))

	got, err = parseDate("tomorrow", t0, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-11", got.Format(dateLayout))

	_, err = parseDate("not a date at all", t0, time.UTC)
	assert.ErrorIs(t, err, errInvalidDate)
}

func TestParseClock(t *testing.T) {
	got, err := parseClock("9:30")
	require.NoError(t, err)
	assert.Equal(t, 9, got.Hour())
	assert.Equal(t, 30, got.Minute())

	_, err = parseClock("25:00")
	assert.ErrorIs(t, err, timeutil.ErrInvalidClock)
}

func TestBuildDayFromFlags(t *testing.T) {
	ctx := newContext(t, dayFlags,
		"--date", "2024-06-10",
		"--forenoon",
		"--start", "9:30",
		"--end", "17:00",
		"--pause", "30",
		"--request-id", "42",
	)

	d, err := buildDay(ctx, t0, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, "2024-06-10/HalfDay", d.String())
	assert.Equal(t, time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC), d.StartTime())
	assert.Equal(t, time.Date(2024, 6, 10, 17, 0, 0, 0, time.UTC), d.EndTime())
	assert.Equal(t, 7*time.Hour, d.WorkingTime())
	assert.Equal(t, 42, d.RequestID())
	assert.Equal(t, 1717977600, d.Base.Date)
}

func TestBuildDayDefaultsToToday(t *testing.T) {
	d, err := buildDay(newContext(t, dayFlags), t0, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, "2024-06-10/None", d.String())
}

func TestBuildDayFromPayload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day.json")

	payload := `{"vacationRequestId":3,"date":1717977600,"startHour":8,"startMinute":0,` +
		`"endHour":12,"endMinute":0,"pause":0,"forenoon":true,"afternoon":true}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	ctx := newContext(t, dayFlags, "--payload", path, "--afternoon=false")

	d, err := buildDay(ctx, t0, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, "2024-06-10/HalfDay", d.String())
	assert.Equal(t, 3, d.RequestID())
	assert.Equal(t, 4*time.Hour, d.WorkingTime())
}

func TestBuildDayFromStdin(t *testing.T) {
	prev := config.Stdin
	config.Stdin = bytes.NewBufferString(`{"date":1718064000,"forenoon":true,"afternoon":true}`)

	t.Cleanup(func() { config.Stdin = prev })

	d, err := buildDay(newContext(t, dayFlags, "--payload", "-"), t0, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, "2024-06-11/FullDay", d.String())
}

func TestBuildDayInvalidInput(t *testing.T) {
	_, err := buildDay(newContext(t, dayFlags, "--start", "9.30"), t0, time.UTC)
	assert.ErrorIs(t, err, timeutil.ErrInvalidClock)

	_, err = buildDay(newContext(t, dayFlags, "--payload", "missing.json"), t0, time.UTC)
	assert.ErrorIs(t, err, errReadPayload)
}

func TestTokenLifetime(t *testing.T) {
	flags := []cli.Flag{lifetimeFlag, expiresFlag}
	now := time.Date(2024, 6, 10, 8, 0, 0, 0, time.Local)

	got, err := tokenLifetime(newContext(t, flags), now)
	require.NoError(t, err)
	assert.Equal(t, 4*time.Hour, got)

	got, err = tokenLifetime(newContext(t, flags, "--lifetime", "30m"), now)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, got)

	got, err = tokenLifetime(newContext(t, flags, "--expires", "2024-06-11"), now)
	require.NoError(t, err)
	assert.Equal(t, 16*time.Hour, got)

	_, err = tokenLifetime(newContext(t, flags, "--expires", "2024-06-01"), now)
	assert.ErrorIs(t, err, errInvalidExpiry)

	_, err = tokenLifetime(newContext(t, flags, "--lifetime", "0s"), now)
	assert.ErrorIs(t, err, session.ErrInvalidLifetime)
}

func TestCredentialsFromFlags(t *testing.T) {
	ctx := newContext(
		t,
		[]cli.Flag{accessTokenFlag, refreshTokenFlag},
		"--access-token", " abc ",
		"--refresh-token", "def",
	)

	access, refresh, err := credentials(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", access.Reveal())
	assert.Equal(t, "def", refresh.Reveal())
}

func TestAccountKey(t *testing.T) {
	cfg := &config.Config{}

	_, err := accountKey(cfg)
	assert.ErrorIs(t, err, errNoAccount)

	cfg.Server = config.ServerConfig{URL: "https://tanss.example.com", Username: "jdoe"}

	key, err := accountKey(cfg)
	require.NoError(t, err)
	assert.Equal(t, "https://tanss.example.com|jdoe", key)
}

func TestNewSessionStatus(t *testing.T) {
	clock := &testutil.Clock{T: t0}

	sess := session.New(
		"https://tanss.example.com",
		"jdoe",
		session.NewCredential("access"),
		session.Credential{},
		time.Hour,
		session.WithClock(clock.Now),
		session.WithEmployee(7, "technician"),
	)

	clock.Advance(15 * time.Minute)

	s := newSessionStatus(sess)

	assert.True(t, s.Valid)
	assert.Equal(t, "https://tanss.example.com|jdoe", s.Key)
	assert.Equal(t, "https://tanss.example.com | jdoe | 00:45:00", s.Label)
	assert.EqualValues(t, 3600, s.LifetimeSeconds)
	assert.EqualValues(t, 2700, s.RemainingSeconds)
	assert.Equal(t, 75, s.Percent)
	assert.Empty(t, s.Error)

	sess.Created = nil

	s = newSessionStatus(sess)
	assert.NotEmpty(t, s.Error)
	assert.Zero(t, s.Percent)
}

func TestEntitlementView(t *testing.T) {
	ctx := newContext(
		t,
		[]cli.Flag{employeeIDFlag, yearFlag, daysFlag, transferredFlag},
		"--employee-id", "7",
		"--days", "20",
		"--transferred", "2",
	)

	e := buildEntitlement(ctx, t0)
	assert.Equal(t, vacation.Entitlement{
		EmployeeID:      7,
		Year:            2024,
		NumberOfDays:    20,
		TransferredDays: 2,
	}, e)

	cache := lookup.New()
	cache.Put(lookup.Employees, 7, "Jane Doe")

	v := newEntitlementView(e, cache)
	assert.Equal(t, "2024: EmployeeId 7 - 20 days", v.Label)
	assert.Equal(t, "Jane Doe", v.Employee)
	assert.Equal(t, 22, v.Total)

	v = newEntitlementView(e, lookup.New())
	assert.Empty(t, v.Employee)
}

func TestDelSession(t *testing.T) {
	out := captureStdout(t)
	clock := &testutil.Clock{T: t0}

	db, err := store.NewClient(filepath.Join(t.TempDir(), "tanss.db"), store.WithClock(clock.Now))
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	sess := session.New(
		"https://tanss.example.com",
		"jdoe",
		session.NewCredential("access"),
		session.Credential{},
		time.Hour,
		session.WithClock(clock.Now),
	)
	require.NoError(t, db.SaveSession(sess))

	decline := func(string) (bool, error) { return false, nil }
	require.NoError(t, delSession(db, sess, false, decline))

	assert.Contains(t, out.String(), "jdoe")

	_, err = db.GetSession(sess.Key())
	require.NoError(t, err)

	accept := func(string) (bool, error) { return true, nil }
	require.NoError(t, delSession(db, sess, false, accept))

	_, err = db.GetSession(sess.Key())
	assert.ErrorIs(t, err, store.ErrSessionNotFound)

	err = delSession(db, sess, true, nil)
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestPrintLookupTable(t *testing.T) {
	out := captureStdout(t)

	cache := lookup.New()
	cache.Put(lookup.Employees, 12, "Employee 10")
	cache.Put(lookup.Employees, 7, "Employee 9")
	cache.Put(lookup.TicketStates, 1, "Open")

	printLookupTable(config.Stdout, cache, []lookup.Kind{lookup.Employees})

	s := out.String()
	assert.Contains(t, s, "employees")
	assert.NotContains(t, s, "Open")
	assert.Less(t, bytes.Index(out.Bytes(), []byte("Employee 9")), bytes.Index(out.Bytes(), []byte("Employee 10")))
	assert.Equal(t, "3 entries in 2 tables", lookupSummary(cache))
}

func TestFormatPause(t *testing.T) {
	cases := map[int]string{
		0:   "0m",
		45:  "45m",
		60:  "1h 00m",
		95:  "1h 35m",
		605: "10h 05m",
	}

	for mins, want := range cases {
		assert.Equal(t, want, formatPause(mins), mins)
	}
}

func TestPrintDay(t *testing.T) {
	out := captureStdout(t)

	d := vacation.NewDay(vacation.DayBaseObject{
		Date:      1717977600,
		Forenoon:  true,
		Afternoon: true,
		StartHour: 8,
		EndHour:   17,
		Pause:     95,
	}, vacation.WithLocation(time.UTC))

	cfg := &config.Config{}
	cfg.Display.TwentyFourHour = true

	printDay(config.Stdout, d, cfg)

	s := out.String()
	assert.Contains(t, s, "2024-06-10/FullDay")
	assert.Contains(t, s, "08:00")
	assert.Contains(t, s, "17:00")
	assert.Contains(t, s, "1h 35m")
	assert.Contains(t, s, "07:25:00")
}
