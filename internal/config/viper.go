package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

const (
	keyServerURL      = "server.url"
	keyServerUsername = "server.username"
	keyDarkTheme      = "display.dark_theme"
	keyTwentyFourHour = "display.24hr_clock"
	keyTimezone       = "vacation.timezone"
	keyWarnPercent    = "session.warn_percent"
	keyExpireCmd      = "session.expire_cmd"
	keyNotify         = "session.notify"
	keyLogLevel       = "log.level"
	keyLogMaxSize     = "log.max_size"
	keyLogMaxBackups  = "log.max_backups"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath. A file with default values is written if none exists.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults and any values already
// collected from the first-run prompt.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyServerURL, "")
	v.SetDefault(keyServerUsername, "")
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyTimezone, "Local")
	v.SetDefault(keyWarnPercent, 10)
	v.SetDefault(keyExpireCmd, "")
	v.SetDefault(keyNotify, true)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogMaxSize, 5)
	v.SetDefault(keyLogMaxBackups, 3)

	if c.Server.URL != "" {
		v.Set(keyServerURL, c.Server.URL)
	}

	if c.Server.Username != "" {
		v.Set(keyServerUsername, c.Server.Username)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}

	return nil
}
