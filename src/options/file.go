package options

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a pre-built options record for non-interactive use.
// YAML and JSON files go through yaml.v3, TOML through go-toml. Fields that
// are absent keep their values from base. The result is not validated.
func LoadFile(path string, base Options) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, err
	}
	return Decode(data, filepath.Ext(path), base)
}

// Decode parses options from raw bytes on top of base. ext selects the
// syntax (".toml" or anything else for YAML/JSON).
func Decode(data []byte, ext string, base Options) (Options, error) {
	opts := base.Clone()

	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &opts); err != nil {
			return Options{}, fmt.Errorf("parsing options toml: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return Options{}, fmt.Errorf("parsing options: %w", err)
		}
	}

	if opts.Features == nil {
		opts.Features = []Feature{}
	}
	return opts, nil
}

// UnmarshalYAML accepts either an integer width or the string "tab".
func (i *Indent) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: indent must be a number or \"tab\"", node.Line)
	}
	v, err := ParseIndent(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*i = v
	return nil
}

// MarshalYAML writes tab indentation as "tab" and widths as integers.
func (i Indent) MarshalYAML() (any, error) {
	return i.Value(), nil
}

// UnmarshalText is used by go-toml for both integer and string nodes.
func (i *Indent) UnmarshalText(text []byte) error {
	v, err := ParseIndent(string(text))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// UnmarshalYAML accepts the same spellings as ParseFormat.
func (f *Format) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: configFormat must be a string", node.Line)
	}
	v, err := ParseFormat(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*f = v
	return nil
}

// UnmarshalText is used by go-toml.
func (f *Format) UnmarshalText(text []byte) error {
	v, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
