package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Log LogConfig
	UI  UIConfig
}

// LogConfig controls the debug log file.
type LogConfig struct {
	Enabled bool
	Dir     string
	Level   string
}

// UIConfig holds interaction settings.
type UIConfig struct {
	Mouse       bool
	Overlap     string
	Seed        int64
	Keybindings string
}

// Load reads configuration from defaults, an optional TOML file and the
// environment, in increasing priority. Env vars use the prefix BITBUDDY_.
// path overrides $BITBUDDY_CONFIG and the default location.
func Load(path string) (Config, error) {
	v := viper.New()

	home := os.Getenv("HOME")
	v.SetDefault("log.enabled", false)
	v.SetDefault("log.dir", filepath.Join(home, ".local", "state", "bitbuddy", "logs"))
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.mouse", true)
	v.SetDefault("ui.overlap", "endpoints")
	v.SetDefault("ui.seed", 0)
	v.SetDefault("ui.keybindings", filepath.Join(home, ".config", "bitbuddy", "keybindings.toml"))

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("BITBUDDY_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "bitbuddy"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("BITBUDDY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// A missing default file is fine; a named file must exist and parse.
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.UI.Overlap = strings.ToLower(strings.TrimSpace(c.UI.Overlap))
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the UI cannot honour.
func (c Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.UI.Overlap)) {
	case "endpoints", "span":
	default:
		return fmt.Errorf("ui.overlap: %q is not one of endpoints, span", c.UI.Overlap)
	}
	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level: unknown level %q", c.Log.Level)
	}
	return nil
}
