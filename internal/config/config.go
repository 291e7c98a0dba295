// Package config loads application profiles from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Profile describes one controllable application.
type Profile struct {
	Path    string `yaml:"path"`
	Process string `yaml:"process"`
	Window  string `yaml:"window"`
	Class   string `yaml:"class,omitempty"`
}

// File is the on-disk profile file.
type File struct {
	Default  string             `yaml:"default,omitempty"`
	Profiles map[string]Profile `yaml:"profiles"`
}

// ErrNoProfile is returned when a profile cannot be resolved.
var ErrNoProfile = errors.New("no profile selected")

// DefaultPath returns the per-user profile file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "gamectl.yaml"
	}
	return filepath.Join(dir, "gamectl", "config.yaml")
}

// Load reads and parses the profile file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a profile file.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &f, nil
}

// Resolve returns the named profile. An empty name selects the file's
// default, or the only profile when there is exactly one.
func (f *File) Resolve(name string) (Profile, error) {
	if name == "" {
		name = f.Default
	}
	if name == "" && len(f.Profiles) == 1 {
		for only := range f.Profiles {
			name = only
		}
	}
	if name == "" {
		return Profile{}, fmt.Errorf("%w: use --profile (available: %v)", ErrNoProfile, f.Names())
	}
	p, ok := f.Profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("unknown profile %q (available: %v)", name, f.Names())
	}
	return p, nil
}

// Names returns the profile names in sorted order.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Profiles))
	for n := range f.Profiles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Merge returns p with every non-empty field of override applied.
func (p Profile) Merge(override Profile) Profile {
	if override.Path != "" {
		p.Path = override.Path
	}
	if override.Process != "" {
		p.Process = override.Process
	}
	if override.Window != "" {
		p.Window = override.Window
	}
	if override.Class != "" {
		p.Class = override.Class
	}
	return p
}

// Validate reports the first missing required field.
func (p Profile) Validate() error {
	switch {
	case p.Path == "":
		return errors.New("profile is missing an executable path (--path)")
	case p.Process == "":
		return errors.New("profile is missing a process name (--process)")
	case p.Window == "":
		return errors.New("profile is missing a window title (--window)")
	}
	return nil
}
