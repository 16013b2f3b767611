package static

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallTo(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, installTo(dir))

	b, err := os.ReadFile(filepath.Join(dir, Icon))
	require.NoError(t, err)
	assert.Contains(t, string(b), "<svg")
}

func TestInstallToKeepsExisting(t *testing.T) {
	dir := t.TempDir()
	icon := filepath.Join(dir, Icon)

	require.NoError(t, os.WriteFile(icon, []byte("custom"), 0o600))
	require.NoError(t, installTo(dir))

	b, err := os.ReadFile(icon)
	require.NoError(t, err)
	assert.Equal(t, "custom", string(b))
}
