// Package config loads the optional .eslintgen.yml project file that sets
// defaults for the generator's own behaviour.
package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is read when no --config flag is given.
const DefaultFile = ".eslintgen.yml"

// InstallMode controls whether dependencies are installed after generation.
type InstallMode string

const (
	InstallAsk    InstallMode = "ask"
	InstallAlways InstallMode = "always"
	InstallNever  InstallMode = "never"
)

// Config is the top-level eslintgen configuration.
type Config struct {
	Version int `yaml:"version"`

	// PackageManager is auto, npm, yarn or pnpm.
	PackageManager string `yaml:"package_manager"`
	// OutputDir is where the config file is written, relative to the
	// project root.
	OutputDir     string      `yaml:"output_dir"`
	DefaultFormat string      `yaml:"default_format"`
	Preview       bool        `yaml:"preview"`
	Install       InstallMode `yaml:"install"`

	CustomRulesFile string `yaml:"custom_rules_file"`
	LogLevel        string `yaml:"log_level"`
}

// Load reads configuration from a YAML file.
// If path is empty, it tries the default file.
// Returns defaults if the file doesn't exist.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaults(), nil
		}
		return nil, err
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return defaults()
}

func defaults() *Config {
	return &Config{
		Version:         1,
		PackageManager:  "auto",
		OutputDir:       ".",
		DefaultFormat:   "json",
		Preview:         true,
		Install:         InstallAsk,
		CustomRulesFile: ".eslint-custom-rules.json",
		LogLevel:        "warn",
	}
}
