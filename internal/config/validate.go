package config

import (
	"net/url"
	"slices"
	"strings"
	"time"
)

const (
	minWarnPercent = 1
	maxWarnPercent = 99
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if c.Server.URL != "" {
		if err := validateServerURL(c.Server.URL); err != nil {
			return err
		}
	}

	if c.Vacation.Timezone != "" && c.Vacation.Timezone != "Local" {
		if _, err := time.LoadLocation(c.Vacation.Timezone); err != nil {
			return errInvalidTimezone.Fmt(c.Vacation.Timezone)
		}
	}

	if c.Session.WarnPercent < minWarnPercent ||
		c.Session.WarnPercent > maxWarnPercent {
		return errInvalidWarnPercent.Fmt(
			minWarnPercent,
			maxWarnPercent,
			c.Session.WarnPercent,
		)
	}

	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return errInvalidLogLevel.Fmt(logLevels, c.Log.Level)
	}

	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 {
		return errInvalidLogRotation
	}

	return nil
}

func validateServerURL(s string) error {
	u, err := url.Parse(s)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return errInvalidServerURL.Fmt(s)
	}

	return nil
}
