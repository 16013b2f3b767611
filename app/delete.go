package app

import (
	"log/slog"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/tanss/internal/config"
	"github.com/ayoisaiah/tanss/internal/lookup"
	"github.com/ayoisaiah/tanss/internal/session"
	"github.com/ayoisaiah/tanss/report"
	"github.com/ayoisaiah/tanss/store"
)

// delSession deletes the specified session. It requests for confirmation
// before proceeding with the operation unless skipConfirm is set.
func delSession(
	db store.DB,
	sess *session.Session,
	skipConfirm bool,
	ask func(string) (bool, error),
) error {
	if !skipConfirm {
		printSessionsTable(config.Stdout, []*session.Session{sess}, lookup.New(), 0)

		ok, err := ask("The above session will be deleted permanently. Proceed?")
		if err != nil {
			return err
		}

		if !ok {
			pterm.Info.Println("nothing deleted")
			return nil
		}
	}

	if err := db.DeleteSession(sess.Key()); err != nil {
		return err
	}

	slog.Info("session deleted", slog.String("session", sess.Key()))

	report.SessionDeleted(sess.Key())

	return nil
}
