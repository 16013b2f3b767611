package app

import (
	"fmt"

	"github.com/pterm/pterm"
)

func helpText() string {
	description := fmt.Sprintf(
		"%s\n\t\t{{.Usage}}\n\n",
		pterm.Yellow("DESCRIPTION"),
	)

	usage := fmt.Sprintf(
		"%s\n\t\t{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}\n\n",
		pterm.Yellow("USAGE"),
	)

	version := fmt.Sprintf(
		"{{if .Version}}%s\n\t\t{{.Version}}{{end}}\n\n",
		pterm.Yellow("VERSION"),
	)

	commands := fmt.Sprintf(
		"%s\n{{range .Commands}}{{if not .HideHelp}}   %s{{ `\t`}}{{.Usage}}{{ `\n` }}{{end}}{{end}}\n\n",
		pterm.Yellow("COMMANDS"),
		pterm.Green("{{join .Names `, `}}"),
	)

	options := fmt.Sprintf(
		"%s\n{{range .VisibleFlags}}\t\t{{if .Aliases}}{{range $element := .Aliases}}%s,{{end}}{{end}} %s\n\t\t\t\t{{.Usage}}\n\n{{end}}",
		pterm.Yellow("OPTIONS"),
		pterm.Green("-{{$element}}"),
		pterm.Green("--{{.Name}} {{.DefaultText}}"),
	)

	env := fmt.Sprintf(
		"%s\n\t\t%s\n\n",
		pterm.Yellow("ENVIRONMENTAL VARIABLES"),
		envHelp(),
	)

	files := fmt.Sprintf(
		"%s\n\t\t%s\n",
		pterm.Yellow("FILES"),
		filesHelp(),
	)

	return description + usage + version + commands + options + env + files
}

func envHelp() string {
	return `
TANSS_NO_COLOR, NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.

TANSS_ENV: keep config, database and logs for a named environment apart (e.g. TANSS_ENV=staging).

TANSS_ACCESS_TOKEN, TANSS_REFRESH_TOKEN: credentials for 'session save' and 'session refresh'.`
}

func filesHelp() string {
	return `
$XDG_CONFIG_HOME/tanss/config.yml: configuration, created on first run.

$XDG_DATA_HOME/tanss/tanss.db: stored sessions and lookup tables.

$XDG_DATA_HOME/tanss/log/tanss.log: rotated log file.`
}
