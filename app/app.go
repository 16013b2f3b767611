package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/tanss/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

func sessionCommand() *cli.Command {
	tokenFlags := []cli.Flag{
		accessTokenFlag,
		refreshTokenFlag,
		lifetimeFlag,
		expiresFlag,
	}

	return &cli.Command{
		Name:  "session",
		Usage: "Store and inspect the access token of a TANSS account",
		Subcommands: []*cli.Command{
			{
				Name:  "save",
				Usage: "Record the tokens returned by a successful login",
				Flags: append([]cli.Flag{
					employeeIDFlag,
					employeeTypeFlag,
					messageFlag,
				}, tokenFlags...),
				Action: sessionSaveAction,
			},
			{
				Name:   "refresh",
				Usage:  "Replace the tokens of the stored session after a refresh",
				Flags:  tokenFlags,
				Action: sessionRefreshAction,
			},
			{
				Name:   "status",
				Usage:  "Print validity, lifetime and remaining time of the stored session",
				Flags:  []cli.Flag{jsonFlag},
				Action: sessionStatusAction,
			},
			{
				Name:   "list",
				Usage:  "List all stored sessions",
				Flags:  []cli.Flag{jsonFlag},
				Action: sessionListAction,
			},
			{
				Name:   "token",
				Usage:  "Print the access token if it is still valid",
				Action: sessionTokenAction,
			},
			{
				Name:   "delete",
				Usage:  "Delete the stored session",
				Flags:  []cli.Flag{yesFlag},
				Action: sessionDeleteAction,
			},
			{
				Name:   "watch",
				Usage:  "Watch the remaining lifetime of the access token",
				Action: sessionWatchAction,
			},
		},
	}
}

func vacationCommand() *cli.Command {
	return &cli.Command{
		Name:  "vacation",
		Usage: "Inspect vacation day and entitlement records",
		Subcommands: []*cli.Command{
			{
				Name:  "day",
				Usage: "Show the dates, times and shape of a vacation day",
				Flags: []cli.Flag{
					dateFlag,
					forenoonFlag,
					afternoonFlag,
					startFlag,
					endFlag,
					pauseFlag,
					requestIDFlag,
					payloadFlag,
					jsonFlag,
				},
				Action: vacationDayAction,
			},
			{
				Name:  "entitlement",
				Usage: "Show the vacation days allotted to an employee for a year",
				Flags: []cli.Flag{
					employeeIDFlag,
					yearFlag,
					daysFlag,
					transferredFlag,
					jsonFlag,
				},
				Action: vacationEntitlementAction,
			},
		},
	}
}

func lookupCommand() *cli.Command {
	return &cli.Command{
		Name:  "lookup",
		Usage: "Manage the tables that resolve ids to display names",
		Subcommands: []*cli.Command{
			{
				Name:   "put",
				Usage:  "Store the name of an id",
				Flags:  []cli.Flag{kindFlag, idFlag, nameFlag},
				Action: lookupPutAction,
			},
			{
				Name:   "get",
				Usage:  "Print the name of an id",
				Flags:  []cli.Flag{kindFlag, idFlag},
				Action: lookupGetAction,
			},
			{
				Name:   "list",
				Usage:  "List stored entries",
				Flags:  []cli.Flag{kindOptionalFlag, jsonFlag},
				Action: lookupListAction,
			},
		},
	}
}

// Get retrieves the tanss app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "tanss",
		Usage: `
		tanss keeps track of TANSS access tokens and renders the ticketing
		system's raw records, such as vacation days, in calendar terms.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Reader:               config.Stdin,
		Writer:               config.Stdout,
		ErrWriter:            config.Stderr,
		Metadata:             map[string]any{},
		Commands: []*cli.Command{
			sessionCommand(),
			vacationCommand(),
			lookupCommand(),
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			noColorFlag,
			serverFlag,
			userFlag,
			logLevelFlag,
			logStderrFlag,
		},
		Before: beforeAction,
		After:  afterAction,
	}
}
