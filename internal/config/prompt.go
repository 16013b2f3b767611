package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
████████╗ █████╗ ███╗   ██╗███████╗███████╗
╚══██╔══╝██╔══██╗████╗  ██║██╔════╝██╔════╝
   ██║   ███████║██╔██╗ ██║███████╗███████╗
   ██║   ██╔══██║██║╚██╗██║╚════██║╚════██║
   ██║   ██║  ██║██║ ╚████║███████║███████║
   ╚═╝   ╚═╝  ╚═╝╚═╝  ╚═══╝╚══════╝╚══════╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	ServerURL string
	Username  string
}

// WithPromptConfig returns an Option that asks for the server and account
// on first run, before a config file exists.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

func promptUser() (PromptOptions, error) {
	var opts PromptOptions

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure tanss for the first time.
Both values can be left empty and supplied later with --server and --user.
Edit the config file with 'tanss edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("TANSS server url").
				Placeholder("https://tanss.example.com").
				Validate(validatePromptURL).
				Value(&opts.ServerURL),
			huh.NewInput().
				Title("Username").
				Value(&opts.Username),
		),
	)

	if err := form.Run(); err != nil {
		return opts, fmt.Errorf("form interaction failed: %w", err)
	}

	return opts, nil
}

func validatePromptURL(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	return validateServerURL(s)
}

func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Server.URL = normalizeURL(opts.ServerURL)
	c.Server.Username = strings.TrimSpace(opts.Username)
}

// normalizeURL trims whitespace and any trailing slash so that session
// keys stay stable however the url was typed.
func normalizeURL(s string) string {
	s = strings.TrimSpace(s)

	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return s
	}

	return strings.TrimRight(s, "/")
}
