package main

import (
	"log/slog"
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/tanss/app"
	"github.com/ayoisaiah/tanss/internal/osutil"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		slog.Error("command failed", slog.Any("error", err))
		pterm.Error.Println(err)
		os.Exit(osutil.ExitError.Int())
	}
}
