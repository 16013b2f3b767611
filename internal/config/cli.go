package config

import (
	"strings"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Server   string
	Username string
	LogLevel string
}

// WithCLIConfig returns an Option that applies global flag overrides.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Server:   ctx.String("server"),
			Username: ctx.String("user"),
			LogLevel: ctx.String("log-level"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.Server != "" {
		c.Server.URL = normalizeURL(opts.Server)
	}

	if opts.Username != "" {
		c.Server.Username = strings.TrimSpace(opts.Username)
	}

	if opts.LogLevel != "" {
		c.Log.Level = strings.ToLower(opts.LogLevel)
	}
}
