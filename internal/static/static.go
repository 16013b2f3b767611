// Package static embeds static files into the binary and copies them to the
// filesystem
package static

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/ayoisaiah/tanss/internal/osutil"
)

const (
	filesDir = "files"

	// Icon is the notification icon, relative to the installed directory.
	Icon = "icon.svg"
)

//go:embed files/*
var embeddedFiles embed.FS

// Install copies the embedded files to <XDG_DATA_HOME>/<appDir>/static,
// keeping any file that already exists, and returns that directory.
func Install(appDir string) (string, error) {
	dir, err := xdg.DataFile(filepath.Join(appDir, "static"))
	if err != nil {
		return "", err
	}

	return dir, installTo(dir)
}

func installTo(dir string) error {
	return fs.WalkDir(
		embeddedFiles,
		filesDir,
		func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			b, err := embeddedFiles.ReadFile(p)
			if err != nil {
				return err
			}

			// embed paths always use forward slashes
			stripped := strings.TrimPrefix(p, filesDir+"/")

			destPath := filepath.Join(dir, filepath.FromSlash(path.Clean(stripped)))

			// Only write if file does not already exist
			if _, err := os.Stat(destPath); !errors.Is(err, fs.ErrNotExist) {
				return err
			}

			if err := os.MkdirAll(filepath.Dir(destPath), osutil.DirPermission); err != nil {
				return err
			}

			return os.WriteFile(destPath, b, 0o644)
		},
	)
}
