package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/tanss/internal/config"
	"github.com/ayoisaiah/tanss/internal/lookup"
	"github.com/ayoisaiah/tanss/internal/session"
	"github.com/ayoisaiah/tanss/internal/static"
	"github.com/ayoisaiah/tanss/report"
	"github.com/ayoisaiah/tanss/store"
	"github.com/ayoisaiah/tanss/watch"
)

// credentials reads the token flags, prompting for the access token when it
// was not supplied.
func credentials(ctx *cli.Context) (access, refresh session.Credential, err error) {
	token := strings.TrimSpace(ctx.String(accessTokenFlag.Name))

	if token == "" {
		token, err = promptSecret("Access token")
		if err != nil {
			return access, refresh, err
		}
	}

	if token == "" {
		return access, refresh, errMissingToken
	}

	access = session.NewCredential(token)
	refresh = session.NewCredential(strings.TrimSpace(ctx.String(refreshTokenFlag.Name)))

	return access, refresh, nil
}

// tokenLifetime returns the lifetime given by --expires if set, or by
// --lifetime otherwise.
func tokenLifetime(ctx *cli.Context, now time.Time) (time.Duration, error) {
	expires := ctx.String(expiresFlag.Name)
	if expires == "" {
		lifetime := ctx.Duration(lifetimeFlag.Name)
		if lifetime <= 0 {
			return 0, session.ErrInvalidLifetime.Fmt(lifetime)
		}

		return lifetime, nil
	}

	t, err := parseDate(expires, now, time.Local)
	if err != nil {
		return 0, err
	}

	if !t.After(now) {
		return 0, errInvalidExpiry.Fmt(t.Format(time.DateTime))
	}

	return t.Sub(now), nil
}

// sessionSaveAction handles the session save command which records a new
// set of credentials for the configured account.
func sessionSaveAction(ctx *cli.Context) error {
	cfg, db, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err = accountKey(cfg); err != nil {
		return err
	}

	access, refresh, err := credentials(ctx)
	if err != nil {
		return err
	}

	lifetime, err := tokenLifetime(ctx, time.Now())
	if err != nil {
		return err
	}

	sess := session.New(
		cfg.Server.URL,
		cfg.Server.Username,
		access,
		refresh,
		lifetime,
		session.WithEmployee(
			ctx.Int(employeeIDFlag.Name),
			ctx.String(employeeTypeFlag.Name),
		),
		session.WithMessage(ctx.String(messageFlag.Name)),
	)

	if err := db.SaveSession(sess); err != nil {
		return err
	}

	slog.InfoContext(
		ctx.Context,
		"session saved",
		slog.String("session", sess.Key()),
		slog.Any("access_token", sess.AccessToken),
		slog.Duration("lifetime", lifetime),
	)

	report.SessionSaved(sess.Key())

	return nil
}

// sessionRefreshAction replaces the credentials of a stored session.
func sessionRefreshAction(ctx *cli.Context) error {
	cfg, db, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	sess, err := configuredSession(cfg, db)
	if err != nil {
		return err
	}

	access, refresh, err := credentials(ctx)
	if err != nil {
		return err
	}

	if refresh.IsZero() {
		refresh = sess.RefreshToken
	}

	lifetime, err := tokenLifetime(ctx, time.Now())
	if err != nil {
		return err
	}

	sess.Refresh(access, refresh, lifetime)

	if err := db.SaveSession(sess); err != nil {
		return err
	}

	slog.InfoContext(
		ctx.Context,
		"session refreshed",
		slog.String("session", sess.Key()),
		slog.Duration("lifetime", lifetime),
	)

	report.SessionSaved(sess.Key())

	return nil
}

func configuredSession(cfg *config.Config, db store.DB) (*session.Session, error) {
	key, err := accountKey(cfg)
	if err != nil {
		return nil, err
	}

	return db.GetSession(key)
}

// sessionStatusAction prints the lifetime figures of the configured session.
func sessionStatusAction(ctx *cli.Context) error {
	cfg, db, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	sess, err := configuredSession(cfg, db)
	if err != nil {
		return err
	}

	status := newSessionStatus(sess)

	if ctx.Bool(jsonFlag.Name) {
		b, err := json.MarshalIndent(status, "", "  ")
		if err != nil {
			return err
		}

		fmt.Fprintln(config.Stdout, string(b))

		return nil
	}

	cache := loadLookups(ctx, db)

	printSessionStatus(config.Stdout, status, employeeName(cache, sess), cfg)

	return nil
}

func employeeName(cache *lookup.Cache, sess *session.Session) string {
	if sess.EmployeeID == 0 {
		return ""
	}

	return cache.Name(lookup.Employees, sess.EmployeeID)
}

// sessionListAction prints a table of all stored sessions.
func sessionListAction(ctx *cli.Context) error {
	cfg, db, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, err := db.ListSessions()
	if err != nil {
		return err
	}

	if ctx.Bool(jsonFlag.Name) {
		statuses := make([]sessionStatus, len(sessions))
		for i, sess := range sessions {
			statuses[i] = newSessionStatus(sess)
		}

		b, err := json.MarshalIndent(statuses, "", "  ")
		if err != nil {
			return err
		}

		fmt.Fprintln(config.Stdout, string(b))

		return nil
	}

	if len(sessions) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	printSessionsTable(config.Stdout, sessions, loadLookups(ctx, db), cfg.Session.WarnPercent)

	return nil
}

// sessionTokenAction prints the access token of the configured session if
// it can still be used.
func sessionTokenAction(ctx *cli.Context) error {
	cfg, db, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	sess, err := configuredSession(cfg, db)
	if err != nil {
		return err
	}

	token, err := sess.Authorization()
	if err != nil {
		return err
	}

	fmt.Fprintln(config.Stdout, token.Reveal())

	return nil
}

// sessionDeleteAction removes the configured session after confirmation.
func sessionDeleteAction(ctx *cli.Context) error {
	cfg, db, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	sess, err := configuredSession(cfg, db)
	if err != nil {
		return err
	}

	return delSession(db, sess, ctx.Bool(yesFlag.Name), confirm)
}

// sessionWatchAction opens the live view of the configured session.
func sessionWatchAction(ctx *cli.Context) error {
	cfg, db, err := openStore(ctx)
	if err != nil {
		return err
	}

	sess, err := configuredSession(cfg, db)

	// the database stays locked while the view is open otherwise
	_ = db.Close()

	if err != nil {
		return err
	}

	env, err := currentEnv(ctx)
	if err != nil {
		return err
	}

	icon := ""

	dir, err := static.Install(env.paths.Dir())
	if err != nil {
		slog.WarnContext(ctx.Context, "notification icon unavailable", slog.Any("error", err))
	} else {
		icon = filepath.Join(dir, static.Icon)
	}

	m, err := watch.Run(sess, watch.Options{
		Icon:           icon,
		ExpireCmd:      cfg.Session.ExpireCmd,
		WarnPercent:    cfg.Session.WarnPercent,
		NotifyEnabled:  cfg.Session.Notify,
		TwentyFourHour: cfg.Display.TwentyFourHour,
		DarkTheme:      cfg.Display.DarkTheme,
	})
	if err != nil {
		if errors.Is(err, session.ErrInvalidLifetime) {
			report.Warn("the stored session has no usable lifetime: save it again")
		}

		return err
	}

	if m.Expired() {
		report.Warn(fmt.Sprintf("session %s has expired", sess.Key()))
	}

	return nil
}
