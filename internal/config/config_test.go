package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("BITBUDDY_CONFIG", "")
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	require.False(t, cfg.Log.Enabled)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, filepath.Join(home, ".local", "state", "bitbuddy", "logs"), cfg.Log.Dir)
	require.True(t, cfg.UI.Mouse)
	require.Equal(t, "endpoints", cfg.UI.Overlap)
	require.Zero(t, cfg.UI.Seed)
	require.Equal(t, filepath.Join(home, ".config", "bitbuddy", "keybindings.toml"), cfg.UI.Keybindings)
}

func TestLoadFromFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "bitbuddy.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[log]
enabled = true
level = "debug"

[ui]
mouse = false
overlap = "Span"
seed = 42
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.True(t, cfg.Log.Enabled)
	require.Equal(t, "debug", cfg.Log.Level)
	require.False(t, cfg.UI.Mouse)
	require.Equal(t, "span", cfg.UI.Overlap)
	require.Equal(t, int64(42), cfg.UI.Seed)
}

func TestLoadDefaultLocation(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".config", "bitbuddy")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[ui]\nseed = 9\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, int64(9), cfg.UI.Seed)
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("BITBUDDY_UI_OVERLAP", "span")
	t.Setenv("BITBUDDY_LOG_ENABLED", "true")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "span", cfg.UI.Overlap)
	require.True(t, cfg.Log.Enabled)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoadRejectsUnknownOverlap(t *testing.T) {
	isolate(t)
	t.Setenv("BITBUDDY_UI_OVERLAP", "everything")

	_, err := Load("")
	require.ErrorContains(t, err, "ui.overlap")
}

func TestValidateLogLevel(t *testing.T) {
	c := Config{UI: UIConfig{Overlap: "endpoints"}, Log: LogConfig{Level: "loud"}}
	require.ErrorContains(t, c.Validate(), "log.level")
	c.Log.Level = "warn"
	require.NoError(t, c.Validate())
}
