package app

import (
	"time"

	"github.com/urfave/cli/v2"
)

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	serverFlag = &cli.StringFlag{
		Name:    "server",
		Aliases: []string{"s"},
		Usage:   "TANSS server url. Overrides server.url from the config file",
	}

	userFlag = &cli.StringFlag{
		Name:    "user",
		Aliases: []string{"u"},
		Usage:   "TANSS username. Overrides server.username from the config file",
	}

	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "Log level: debug, info, warn or error. Overrides log.level",
	}

	logStderrFlag = &cli.BoolFlag{
		Name:  "log-stderr",
		Usage: "Write logs to the terminal instead of the log file",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print output in JSON format",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Skip the confirmation prompt",
	}

	accessTokenFlag = &cli.StringFlag{
		Name:    "access-token",
		Aliases: []string{"token"},
		Usage:   "Access token returned by the server. Prompted for when omitted",
		EnvVars: []string{"TANSS_ACCESS_TOKEN"},
	}

	refreshTokenFlag = &cli.StringFlag{
		Name:    "refresh-token",
		Usage:   "Refresh token returned by the server",
		EnvVars: []string{"TANSS_REFRESH_TOKEN"},
	}

	lifetimeFlag = &cli.DurationFlag{
		Name:  "lifetime",
		Usage: "How long the access token is valid for",
		Value: 4 * time.Hour,
	}

	expiresFlag = &cli.StringFlag{
		Name:  "expires",
		Usage: "When the access token expires (e.g. '17:00', 'in 2 hours'). Takes precedence over --lifetime",
	}

	employeeIDFlag = &cli.IntFlag{
		Name:  "employee-id",
		Usage: "Id of the employee the session or entitlement belongs to",
	}

	employeeTypeFlag = &cli.StringFlag{
		Name:  "employee-type",
		Usage: "Employee type reported by the server",
	}

	messageFlag = &cli.StringFlag{
		Name:  "message",
		Usage: "Status message reported by the server",
	}

	dateFlag = &cli.StringFlag{
		Name:    "date",
		Aliases: []string{"d"},
		Usage:   "Calendar date of the vacation day (e.g. 2024-06-10, 'next monday'). Defaults to today",
	}

	forenoonFlag = &cli.BoolFlag{
		Name:  "forenoon",
		Usage: "The forenoon is taken",
	}

	afternoonFlag = &cli.BoolFlag{
		Name:  "afternoon",
		Usage: "The afternoon is taken",
	}

	startFlag = &cli.StringFlag{
		Name:  "start",
		Usage: "Start of the working time as hh:mm",
	}

	endFlag = &cli.StringFlag{
		Name:  "end",
		Usage: "End of the working time as hh:mm",
	}

	pauseFlag = &cli.IntFlag{
		Name:  "pause",
		Usage: "Break taken during the day in minutes",
	}

	requestIDFlag = &cli.IntFlag{
		Name:  "request-id",
		Usage: "Id of the vacation request the day belongs to",
	}

	payloadFlag = &cli.StringFlag{
		Name:  "payload",
		Usage: "Read the raw day record from a JSON file ('-' for stdin). Other flags override its fields",
	}

	yearFlag = &cli.IntFlag{
		Name:  "year",
		Usage: "Year of the entitlement. Defaults to the current year",
	}

	daysFlag = &cli.IntFlag{
		Name:  "days",
		Usage: "Vacation days allotted for the year",
	}

	transferredFlag = &cli.IntFlag{
		Name:  "transferred",
		Usage: "Vacation days carried over from the previous year",
	}

	kindFlag = &cli.StringFlag{
		Name:     "kind",
		Aliases:  []string{"k"},
		Usage:    "Lookup kind (e.g. employees, ticket_states)",
		Required: true,
	}

	kindOptionalFlag = &cli.StringFlag{
		Name:    "kind",
		Aliases: []string{"k"},
		Usage:   "Only list entries of this kind",
	}

	idFlag = &cli.IntFlag{
		Name:     "id",
		Usage:    "Numeric id of the entry",
		Required: true,
	}

	nameFlag = &cli.StringFlag{
		Name:     "name",
		Aliases:  []string{"n"},
		Usage:    "Display name of the entry",
		Required: true,
	}
)
