package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/queuedesk/core"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	opts, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	require.Equal(t, Defaults(), opts)
}

func TestLoadOverridesLocationsOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.toml")
	body := `
[[locations]]
value = "Gym"
label = "Sports Centre"

[keybindings]
submit = ["ctrl+enter"]
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	opts, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Defaults().Roles, opts.Roles)
	require.Equal(t, []Option{{Value: "Gym", Label: "Sports Centre"}}, opts.Locations)
	require.Equal(t, []string{"ctrl+enter"}, opts.Keybindings["submit"])
}

func TestLoadRejectsEmptyValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[roles]]\nlabel = \"Nobody\"\n"), 0o600))
	_, err := Load(path)
	require.Error(t, err)
}

func TestWriteDefaultRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "options.toml")
	require.NoError(t, WriteDefault(path))
	opts, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Defaults().Locations, opts.Locations)
	require.Equal(t, []string{"q"}, opts.Keybindings["quit"])

	require.NoError(t, os.WriteFile(path, []byte("[[roles]]\nvalue = \"tutor\"\n"), 0o600))
	require.NoError(t, WriteDefault(path))
	opts, err = Load(path)
	require.NoError(t, err)
	require.Equal(t, "tutor", opts.Roles[0].Value)
}

func TestRoleNodesDeclareTriggerAndItems(t *testing.T) {
	nodes := Defaults().RoleNodes()
	require.Len(t, nodes, 2)
	require.Equal(t, core.RoleTrigger, nodes[0].Role)
	require.Equal(t, "Select role", nodes[0].PlainText())
	require.Equal(t, core.RoleContentPanel, nodes[1].Role)
	require.Len(t, nodes[1].Children, 2)
	require.Equal(t, "admin", nodes[1].Children[1].Value)
	require.Equal(t, "Admin", nodes[1].Children[1].Label())
}

func TestCanonical(t *testing.T) {
	opts := Defaults()
	cases := map[string]string{
		"canteen":       "Canteen",
		"  LIBRARY ":    "Library",
		"Libary":        "Library",
		"Hostel Ofice":  "Hostel Office",
		"admin  office": "Admin Office",
	}
	for raw, want := range cases {
		got, ok := opts.Canonical(raw)
		require.True(t, ok, raw)
		require.Equal(t, want, got, raw)
	}
	for _, raw := range []string{"", "Cafeteria", "Gym"} {
		_, ok := opts.Canonical(raw)
		require.False(t, ok, raw)
	}
	require.True(t, opts.HasLocation("Library"))
	require.False(t, opts.HasLocation("library"))
	require.True(t, opts.HasRole("student"))
}
