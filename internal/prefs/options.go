package prefs

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/agnivade/levenshtein"

	"github.com/jask/queuedesk/core"
)

// maxTypoDistance bounds how far free text may be from an option and still match.
const maxTypoDistance = 2

type Option struct {
	Value string `toml:"value"`
	Label string `toml:"label"`
}

// Options lists the values the select controls offer, plus optional key
// overrides by action.
type Options struct {
	Roles       []Option            `toml:"roles"`
	Locations   []Option            `toml:"locations"`
	Keybindings map[string][]string `toml:"keybindings"`
}

func Defaults() Options {
	return Options{
		Roles: []Option{
			{Value: "student", Label: "Student"},
			{Value: "admin", Label: "Admin"},
		},
		Locations: []Option{
			{Value: "Canteen", Label: "Canteen"},
			{Value: "Admin Office", Label: "Admin Office"},
			{Value: "Library", Label: "Library"},
			{Value: "Hostel Office", Label: "Hostel Office"},
		},
	}
}

// Load reads the option file at path. A missing file yields the defaults; an
// empty section falls back to its default list.
func Load(path string) (Options, error) {
	def := Defaults()
	if strings.TrimSpace(path) == "" {
		return def, nil
	}
	var opts Options
	if _, err := toml.DecodeFile(path, &opts); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return def, nil
		}
		return Options{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(opts.Roles) == 0 {
		opts.Roles = def.Roles
	}
	if len(opts.Locations) == 0 {
		opts.Locations = def.Locations
	}
	if err := opts.validate(); err != nil {
		return Options{}, fmt.Errorf("validate %s: %w", path, err)
	}
	return opts, nil
}

func (o Options) validate() error {
	for _, set := range []struct {
		name string
		opts []Option
	}{{"roles", o.Roles}, {"locations", o.Locations}} {
		for i, opt := range set.opts {
			if strings.TrimSpace(opt.Value) == "" {
				return fmt.Errorf("%s[%d]: value is required", set.name, i)
			}
		}
	}
	for action, keys := range o.Keybindings {
		if len(keys) == 0 {
			return fmt.Errorf("keybindings.%s: at least one key is required", action)
		}
	}
	return nil
}

// WriteDefault writes the default option file, including the default key
// bindings, unless a file already exists at path.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir options dir: %w", err)
	}
	opts := Defaults()
	opts.Keybindings = core.DefaultKeybindingsByAction(core.DefaultKeyBindings())
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(opts); err != nil {
		return fmt.Errorf("encode options: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func (o Options) RoleNodes() []core.SelectNode {
	return selectNodes("Select role", o.Roles)
}

func (o Options) LocationNodes() []core.SelectNode {
	return selectNodes("Select location", o.Locations)
}

func selectNodes(placeholder string, opts []Option) []core.SelectNode {
	items := make([]core.SelectNode, 0, len(opts))
	for _, opt := range opts {
		items = append(items, core.ItemNode(opt.Value, opt.Label))
	}
	return []core.SelectNode{
		core.TriggerNode(core.PlaceholderNode(placeholder)),
		core.ContentNode(items...),
	}
}

func (o Options) HasRole(value string) bool     { return hasValue(o.Roles, value) }
func (o Options) HasLocation(value string) bool { return hasValue(o.Locations, value) }

func hasValue(opts []Option, value string) bool {
	for _, opt := range opts {
		if opt.Value == value {
			return true
		}
	}
	return false
}

// Canonical maps free text to a location value. Case-insensitive matches on
// value or label win; otherwise the closest value within maxTypoDistance
// edits, first declared on ties.
func (o Options) Canonical(raw string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(raw))
	if needle == "" {
		return "", false
	}
	for _, opt := range o.Locations {
		if strings.ToLower(opt.Value) == needle || strings.ToLower(opt.Label) == needle {
			return opt.Value, true
		}
	}
	best, bestDist := "", maxTypoDistance+1
	for _, opt := range o.Locations {
		if d := levenshtein.ComputeDistance(needle, strings.ToLower(opt.Value)); d < bestDist {
			best, bestDist = opt.Value, d
		}
	}
	return best, best != ""
}
