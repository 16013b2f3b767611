package config

import (
	"fmt"
	"io"
	"os"
	"time"
)

type (
	// Config holds all configuration settings
	Config struct {
		Server   ServerConfig   `mapstructure:"server"`
		Display  DisplayConfig  `mapstructure:"display"`
		Vacation VacationConfig `mapstructure:"vacation"`
		Session  SessionConfig  `mapstructure:"session"`
		Log      LogConfig      `mapstructure:"log"`
		System   SystemConfig   `mapstructure:"-"`
	}

	// ServerConfig identifies the TANSS server and account in use
	ServerConfig struct {
		URL      string `mapstructure:"url"`
		Username string `mapstructure:"username"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme      bool `mapstructure:"dark_theme"`
		TwentyFourHour bool `mapstructure:"24hr_clock"`
	}

	// VacationConfig holds settings for rendering vacation days
	VacationConfig struct {
		Timezone string `mapstructure:"timezone"`
	}

	// SessionConfig holds settings for watching a stored session
	SessionConfig struct {
		ExpireCmd   string `mapstructure:"expire_cmd"`
		WarnPercent int    `mapstructure:"warn_percent"`
		Notify      bool   `mapstructure:"notify"`
	}

	// LogConfig holds logging settings
	LogConfig struct {
		Level      string `mapstructure:"level"`
		MaxSizeMB  int    `mapstructure:"max_size"`
		MaxBackups int    `mapstructure:"max_backups"`
	}

	// SystemConfig holds system-related settings
	SystemConfig struct {
		ConfigPath string
		DBPath     string
		LogPath    string
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config and applies options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// WithPaths records where the config, database and log files live.
func WithPaths(configPath, dbPath, logPath string) Option {
	return func(c *Config) error {
		c.System = SystemConfig{
			ConfigPath: configPath,
			DBPath:     dbPath,
			LogPath:    logPath,
		}

		return nil
	}
}

// Location resolves the configured timezone. An empty value or "Local"
// means the system zone.
func (v VacationConfig) Location() (*time.Location, error) {
	if v.Timezone == "" || v.Timezone == "Local" {
		return time.Local, nil
	}

	loc, err := time.LoadLocation(v.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", v.Timezone, err)
	}

	return loc, nil
}

// SessionKey returns the store key of the configured account.
func (s ServerConfig) SessionKey() string {
	return s.URL + "|" + s.Username
}
