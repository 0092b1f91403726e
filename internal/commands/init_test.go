package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segmental-dev/segmental/internal/config"
)

func TestRunInit(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, runInit(dir, "Soi 11 Izakaya"))

	// Directory structure.
	for _, d := range []string{"data", "logs"} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, d)
		assert.True(t, info.IsDir(), d)
	}

	// Config file.
	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "Soi 11 Izakaya", cfg.Project.Name)
	assert.Equal(t, "data", cfg.Data.Dir)

	// .gitignore.
	data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "data/")
}

func TestRunInitIdempotent(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, runInit(dir, "First"))
	require.NoError(t, runInit(dir, "Second"))

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "Second", cfg.Project.Name)
}
