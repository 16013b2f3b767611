// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/ayoisaiah/tanss/internal/osutil"
)

const envName = "TANSS_ENV"

// Paths holds all application path configurations.
type Paths struct {
	configDir      string
	configFileName string
	dbFileName     string
	logFileName    string

	// Computed absolute paths
	ConfigFile string
	DBFile     string
	LogFile    string
}

// New computes the application paths under the XDG base directories. The
// file names are suffixed with the value of TANSS_ENV when it is set, so
// that separate environments do not share state.
func New() (*Paths, error) {
	p := &Paths{
		configDir:      "tanss",
		configFileName: "config.yml",
		dbFileName:     "tanss.db",
		logFileName:    "tanss.log",
	}

	p.applyEnvironmentOverrides(os.Getenv(envName))

	if err := p.computePaths(); err != nil {
		return nil, err
	}

	return p, nil
}

// Dir returns the name of the application directory.
func (p *Paths) Dir() string {
	return p.configDir
}

func (p *Paths) applyEnvironmentOverrides(env string) {
	env = strings.TrimSpace(env)
	if env == "" {
		return
	}

	p.configFileName = fmt.Sprintf("config_%s.yml", env)
	p.dbFileName = fmt.Sprintf("tanss_%s.db", env)
	p.logFileName = fmt.Sprintf("tanss_%s.log", env)
}

func (p *Paths) computePaths() error {
	var err error

	p.ConfigFile, err = xdg.ConfigFile(filepath.Join(p.configDir, p.configFileName))
	if err != nil {
		return fmt.Errorf("resolving config file path: %w", err)
	}

	dataDir, err := xdg.DataFile(p.configDir)
	if err != nil {
		return fmt.Errorf("resolving data directory: %w", err)
	}

	if err = os.MkdirAll(dataDir, osutil.DirPermission); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	p.DBFile = filepath.Join(dataDir, p.dbFileName)

	p.LogFile = filepath.Join(dataDir, "log", p.logFileName)

	return nil
}
