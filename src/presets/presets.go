// Package presets provides the built-in named option records.
package presets

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/sofmeright/eslintgen/src/options"
)

//go:embed presets.yaml
var presetsYAML []byte

// Preset is a named options record.
type Preset struct {
	Name        string
	Description string
	Options     options.Options
}

type rawPreset struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Options     yaml.Node `yaml:"options"`
}

var (
	loadOnce sync.Once
	loaded   []Preset
	loadErr  error
)

func load() ([]Preset, error) {
	loadOnce.Do(func() {
		loaded, loadErr = decode(presetsYAML)
	})
	return loaded, loadErr
}

func decode(data []byte) ([]Preset, error) {
	var raw []rawPreset
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing presets: %w", err)
	}

	out := make([]Preset, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for _, r := range raw {
		if r.Name == "" {
			return nil, fmt.Errorf("preset without a name")
		}
		if seen[r.Name] {
			return nil, fmt.Errorf("duplicate preset %q", r.Name)
		}
		seen[r.Name] = true

		opts := options.Default()
		if r.Options.Kind != 0 {
			if err := r.Options.Decode(&opts); err != nil {
				return nil, fmt.Errorf("preset %s: %w", r.Name, err)
			}
		}
		if err := opts.Validate(); err != nil {
			return nil, fmt.Errorf("preset %s: %w", r.Name, err)
		}
		out = append(out, Preset{Name: r.Name, Description: r.Description, Options: opts})
	}
	return out, nil
}

// All returns every preset in definition order.
func All() ([]Preset, error) {
	ps, err := load()
	if err != nil {
		return nil, err
	}
	out := make([]Preset, len(ps))
	for i, p := range ps {
		p.Options = p.Options.Clone()
		out[i] = p
	}
	return out, nil
}

// Names returns the preset names in definition order.
func Names() []string {
	ps, _ := load()
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.Name
	}
	return names
}

// Get returns a copy of the named preset's options.
func Get(name string) (options.Options, error) {
	ps, err := load()
	if err != nil {
		return options.Options{}, err
	}
	for _, p := range ps {
		if p.Name == name {
			return p.Options.Clone(), nil
		}
	}
	known := append([]string(nil), Names()...)
	sort.Strings(known)
	return options.Options{}, fmt.Errorf("unknown preset %q (available: %s)", name, strings.Join(known, ", "))
}
