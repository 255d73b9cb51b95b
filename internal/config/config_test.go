package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("QUEUEDESK_CONFIG", "")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Contains(t, cfg.Database.Path, filepath.Join(".local", "share", "queuedesk"))
	require.Equal(t, filepath.Join("internal", "database", "migrations"), cfg.Database.Migrations)
	require.Empty(t, cfg.Log.Path)
	require.NotNil(t, cfg.Location())
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	path := filepath.Join(dir, "queuedesk.toml")
	require.NoError(t, os.WriteFile(path, []byte("[database]\npath = \"/tmp/q.db\"\n\n[ui]\ntimezone = \"UTC\"\n"), 0o600))
	t.Setenv("QUEUEDESK_LOG_PATH", "/tmp/queuedesk.log")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/tmp/q.db", cfg.Database.Path)
	require.Equal(t, "/tmp/queuedesk.log", cfg.Log.Path)
	require.Equal(t, "UTC", cfg.Location().String())
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	path := filepath.Join(dir, "nested", "config.toml")
	in := Config{
		Database: DatabaseConfig{Path: "/data/q.db", Migrations: "/srv/migrations"},
		Options:  OptionsConfig{Path: "/etc/queuedesk/options.toml"},
		UI:       UIConfig{Timezone: "Asia/Kolkata"},
	}
	require.NoError(t, Save(path, in))

	out, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, in.Database, out.Database)
	require.Equal(t, in.Options, out.Options)
	require.Equal(t, "Asia/Kolkata", out.UI.Timezone)
}

func TestLoadMissingExplicitFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	cfg, err := Load(filepath.Join(dir, "absent.toml"))
	require.NoError(t, err)
	require.Equal(t, "Local", cfg.UI.Timezone)
}
