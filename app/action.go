package app

import (
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/tanss/internal/config"
	"github.com/ayoisaiah/tanss/internal/logger"
	"github.com/ayoisaiah/tanss/internal/lookup"
	"github.com/ayoisaiah/tanss/internal/pathutil"
	"github.com/ayoisaiah/tanss/internal/ui"
	"github.com/ayoisaiah/tanss/store"
)

const (
	envNoColor      = "NO_COLOR"
	envTanssNoColor = "TANSS_NO_COLOR"

	metaEnv = "env"
)

// appEnv is the state shared by the actions of one invocation.
type appEnv struct {
	cfg   *config.Config
	paths *pathutil.Paths
	logs  io.Closer
}

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// loadConfig builds the configuration and logger once per invocation.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	if env, ok := ctx.App.Metadata[metaEnv].(*appEnv); ok {
		return env.cfg, nil
	}

	paths, err := pathutil.New()
	if err != nil {
		return nil, err
	}

	cfg, err := config.New(
		config.WithPaths(paths.ConfigFile, paths.DBFile, paths.LogFile),
		config.WithPromptConfig(paths.ConfigFile),
		config.WithViperConfig(paths.ConfigFile),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return nil, err
	}

	_, logs, err := logger.New(cfg.Log, logger.Options{
		Path:   cfg.System.LogPath,
		Stderr: ctx.Bool(logStderrFlag.Name),
	})
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	ctx.App.Metadata[metaEnv] = &appEnv{
		cfg:   cfg,
		paths: paths,
		logs:  logs,
	}

	slog.DebugContext(
		ctx.Context,
		"config loaded",
		slog.String("path", cfg.System.ConfigPath),
		slog.String("server", cfg.Server.URL),
		slog.String("user", cfg.Server.Username),
	)

	return cfg, nil
}

func currentEnv(ctx *cli.Context) (*appEnv, error) {
	env, ok := ctx.App.Metadata[metaEnv].(*appEnv)
	if !ok {
		return nil, errNotLoaded
	}

	return env, nil
}

// openStore loads the configuration and opens the database.
func openStore(ctx *cli.Context) (*config.Config, *store.Client, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, nil, err
	}

	db, err := store.NewClient(cfg.System.DBPath)
	if err != nil {
		return nil, nil, err
	}

	return cfg, db, nil
}

// accountKey returns the store key for the configured server and username.
func accountKey(cfg *config.Config) (string, error) {
	if cfg.Server.URL == "" || cfg.Server.Username == "" {
		return "", errNoAccount
	}

	return cfg.Server.SessionKey(), nil
}

// loadLookups returns the stored lookup tables, or an empty cache when they
// cannot be read.
func loadLookups(ctx *cli.Context, db store.DB) *lookup.Cache {
	cache, err := db.LoadLookups()
	if err != nil {
		slog.WarnContext(ctx.Context, "lookup tables unavailable", slog.Any("error", err))
		return lookup.New()
	}

	return cache
}

// editConfigAction handles the edit-config command which opens the tanss
// config file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	cmd := exec.Command(editor, cfg.System.ConfigPath)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if TANSS_NO_COLOR is set
	if _, exists := os.LookupEnv(envTanssNoColor); exists {
		disableStyling()
	}

	if ctx.Bool(noColorFlag.Name) {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	env, err := currentEnv(ctx)
	if err != nil {
		return nil
	}

	slog.InfoContext(ctx.Context, "exiting tanss")

	return env.logs.Close()
}
