package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, "console", c.Log.Format)
	assert.True(t, c.Log.Color)
	assert.Zero(t, c.Log.RefreshInterval)
	assert.Equal(t, "auto", c.Log.Styling)
	assert.Equal(t, "memory", c.Store.Backend)
	assert.Empty(t, c.File)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prefixlog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: warn
  refresh_interval: 5s
  prefix_color: "#00FF00"
  debug: true
store:
  backend: leveldb
  path: /tmp/levels
`), 0o600))
	t.Setenv("PREFIXLOG_LOG_LEVEL", "error")
	t.Setenv("PREFIXLOG_METRICS_ADDR", ":9090")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", c.Log.Level)
	assert.Equal(t, 5*time.Second, c.Log.RefreshInterval)
	assert.Equal(t, "#00FF00", c.Log.PrefixColor)
	assert.True(t, c.Log.Debug)
	assert.Equal(t, "leveldb", c.Store.Backend)
	assert.Equal(t, "/tmp/levels", c.Store.Path)
	assert.Equal(t, ":9090", c.Metrics.Addr)
	assert.Equal(t, path, c.File)
}

func TestLoadDiscoversConfigsDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "config.yaml"), []byte("log:\n  styling: \"on\"\n"), 0o600))
	chdir(t, dir)

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "on", c.Log.Styling)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test, like
// testing.T.Chdir in newer Go releases.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
