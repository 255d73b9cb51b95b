package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Options  OptionsConfig
	Log      LogConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path       string
	Migrations string
}

// OptionsConfig points at the TOML file listing roles and locations.
type OptionsConfig struct {
	Path string
}

// LogConfig enables file logging while the TUI owns the terminal.
type LogConfig struct {
	Path string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Timezone string
}

// Load reads configuration from file and env. Env var overrides use prefix QUEUEDESK_.
// An explicit path wins over QUEUEDESK_CONFIG. A missing file leaves the defaults.
func Load(path string) (Config, error) {
	v := viper.New()
	home := os.Getenv("HOME")

	v.SetDefault("database.path", filepath.Join(home, ".local", "share", "queuedesk", "queuedesk.db"))
	v.SetDefault("database.migrations", filepath.Join("internal", "database", "migrations"))
	v.SetDefault("options.path", filepath.Join(home, ".config", "queuedesk", "options.toml"))
	v.SetDefault("log.path", "")
	v.SetDefault("ui.timezone", "Local")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("QUEUEDESK_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "queuedesk"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("QUEUEDESK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Location resolves the configured timezone, falling back to the local zone.
func (c Config) Location() *time.Location {
	if tz := strings.TrimSpace(c.UI.Timezone); tz != "" && tz != "Local" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.Local
}

// Save writes the provided config to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if path == "" {
		path = os.Getenv("QUEUEDESK_CONFIG")
	}
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "queuedesk", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("database.migrations", cfg.Database.Migrations)
	v.Set("options.path", cfg.Options.Path)
	v.Set("log.path", cfg.Log.Path)
	v.Set("ui.timezone", cfg.UI.Timezone)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
