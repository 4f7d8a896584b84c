package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := loadConfig(newViper(), "")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Empty(t, cfg.Wasm.Path)
	assert.Empty(t, cfg.Wasm.CacheDir)
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "brutil.yaml")
	content := `
log:
  level: debug
  format: json
wasm:
  path: /opt/brutil/brutil.wasm
  cache_dir: /tmp/brutil-cache
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := loadConfig(newViper(), path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/opt/brutil/brutil.wasm", cfg.Wasm.Path)
	assert.Equal(t, "/tmp/brutil-cache", cfg.Wasm.CacheDir)
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := loadConfig(newViper(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

// Environment variables are process wide, so this test does not run in parallel.
func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("BRUTIL_LOG_LEVEL", "error")
	t.Setenv("BRUTIL_WASM_PATH", "/env/brutil.wasm")

	cfg, err := loadConfig(newViper(), "")
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "/env/brutil.wasm", cfg.Wasm.Path)
}

func TestNewLogHandler(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h, err := newLogHandler(LogConfig{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)
	slog.New(h).Info("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	h, err = newLogHandler(LogConfig{Level: "warn", Format: "text"}, &buf)
	require.NoError(t, err)
	assert.False(t, h.Enabled(t.Context(), slog.LevelInfo))

	_, err = newLogHandler(LogConfig{Level: "info", Format: "xml"}, &buf)
	require.Error(t, err)

	_, err = newLogHandler(LogConfig{Level: "verbose", Format: "text"}, &buf)
	require.Error(t, err)
}
