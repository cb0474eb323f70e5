package config

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadOverridesOnlySetKeys(t *testing.T) {
	cfg, err := Read(strings.NewReader(`
data_dir = "/tmp/markup-test"
log_level = "debug"
`))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/markup-test", cfg.DataDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "library.db", cfg.LibraryFile, "unset key falls back to default")
	assert.Equal(t, "red", cfg.DefaultColor)
	assert.Equal(t, 3, cfg.DefaultWidth)
}

func TestReadRejectsMalformedTOML(t *testing.T) {
	_, err := Read(strings.NewReader(`data_dir = [unterminated`))
	assert.Error(t, err)
}

func TestMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := ReadFromFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default().LibraryFile, cfg.LibraryFile)
}

func TestLibraryPath(t *testing.T) {
	cfg := &Config{DataDir: "/data", LibraryFile: "lib.db"}
	assert.Equal(t, filepath.Join("/data", "lib.db"), cfg.LibraryPath())
}

func TestWriteReadRoundTrip(t *testing.T) {
	original := Default()
	original.LogLevel = "warn"

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, original))

	got, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, original, got)
}

func TestInvalidWidthBackfilled(t *testing.T) {
	cfg, err := Read(strings.NewReader(`default_width = -2`))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.DefaultWidth)
}
