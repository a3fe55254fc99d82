package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), ".eslintgen.yml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	warnings, err := Validate(cfg)
	assert.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".eslintgen.yml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1\npackage_manager: pnpm\ndefault_format: yml\ninstall: never\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "pnpm", cfg.PackageManager)
	assert.Equal(t, "yml", cfg.DefaultFormat)
	assert.Equal(t, InstallNever, cfg.Install)
	// Untouched keys keep their defaults.
	assert.True(t, cfg.Preview)
	assert.Equal(t, ".eslint-custom-rules.json", cfg.CustomRulesFile)

	_, err = Validate(cfg)
	assert.NoError(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".eslintgen.yml")
	require.NoError(t, os.WriteFile(path, []byte("version: [1\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
		warning string
	}{
		{"version", func(c *Config) { c.Version = 2 }, "version: must be 1", ""},
		{"package manager", func(c *Config) { c.PackageManager = "bun" }, `package_manager: unknown value "bun"`, ""},
		{"format", func(c *Config) { c.DefaultFormat = "toml" }, "default_format: invalid configuration format", ""},
		{"install", func(c *Config) { c.Install = "sometimes" }, `install: unknown value "sometimes"`, ""},
		{"log level", func(c *Config) { c.LogLevel = "loud" }, `log_level: unknown level "loud"`, ""},
		{"absolute output", func(c *Config) { c.OutputDir = "/etc" }, "must be relative", ""},
		{"traversal", func(c *Config) { c.OutputDir = "../elsewhere" }, "must not contain '..'", ""},
		{"no custom rules", func(c *Config) { c.CustomRulesFile = "" }, "", "custom rule sets are disabled"},
		{"shared custom rules", func(c *Config) { c.CustomRulesFile = "/srv/lint/rules.json" }, "", ""},
		{"custom rules traversal", func(c *Config) { c.CustomRulesFile = "../rules.json" }, "must not contain '..'", ""},
		{"blind install", func(c *Config) { c.Install = InstallAlways; c.Preview = false }, "", "without preview"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			warnings, err := Validate(cfg)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			if tt.warning != "" {
				require.Len(t, warnings, 1)
				assert.Contains(t, warnings[0], tt.warning)
			}
		})
	}
}
