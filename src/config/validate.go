package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/sofmeright/eslintgen/src/options"
)

var validPackageManagers = map[string]bool{
	"auto": true,
	"npm":  true,
	"yarn": true,
	"pnpm": true,
}

var validInstallModes = map[InstallMode]bool{
	InstallAsk:    true,
	InstallAlways: true,
	InstallNever:  true,
}

// Validate checks structural invariants of a loaded Config.
// Returns warnings (soft issues) and a hard error if the config is invalid.
func Validate(cfg *Config) (warnings []string, err error) {
	var errs []string

	if cfg.Version != 1 {
		errs = append(errs, fmt.Sprintf("version: must be 1, got %d", cfg.Version))
	}

	if !validPackageManagers[strings.ToLower(cfg.PackageManager)] {
		errs = append(errs, fmt.Sprintf("package_manager: unknown value %q (supported: auto, npm, yarn, pnpm)", cfg.PackageManager))
	}

	if _, ferr := options.ParseFormat(cfg.DefaultFormat); ferr != nil {
		errs = append(errs, "default_format: "+ferr.Error())
	}

	if !validInstallModes[cfg.Install] {
		errs = append(errs, fmt.Sprintf("install: unknown value %q (supported: ask, always, never)", cfg.Install))
	}

	if hclog.LevelFromString(cfg.LogLevel) == hclog.NoLevel {
		errs = append(errs, fmt.Sprintf("log_level: unknown level %q (supported: trace, debug, info, warn, error, off)", cfg.LogLevel))
	}

	errs = append(errs, validateRelativePath(cfg.OutputDir, "output_dir")...)

	switch {
	case cfg.CustomRulesFile == "":
		warnings = append(warnings, "custom_rules_file: empty, custom rule sets are disabled")
	case filepath.IsAbs(cfg.CustomRulesFile):
		// A shared rule set file may live outside the project.
	default:
		errs = append(errs, validateRelativePath(cfg.CustomRulesFile, "custom_rules_file")...)
	}

	if cfg.Install == InstallAlways && !cfg.Preview {
		warnings = append(warnings, "install: always without preview installs packages for a config you have not reviewed")
	}

	if len(errs) > 0 {
		return warnings, fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return warnings, nil
}

// validateRelativePath checks that a project-relative path stays inside the
// project.
func validateRelativePath(p string, field string) []string {
	var errs []string

	if p == "" {
		errs = append(errs, fmt.Sprintf("%s: path is empty", field))
		return errs
	}

	if filepath.IsAbs(p) {
		errs = append(errs, fmt.Sprintf("%s: path %q must be relative, not absolute", field, p))
		return errs
	}

	if strings.HasPrefix(p, "~") {
		errs = append(errs, fmt.Sprintf("%s: path %q must not start with ~", field, p))
		return errs
	}

	if len(p) >= 2 && p[1] == ':' && ((p[0] >= 'A' && p[0] <= 'Z') || (p[0] >= 'a' && p[0] <= 'z')) {
		errs = append(errs, fmt.Sprintf("%s: path %q looks like a Windows drive path", field, p))
		return errs
	}

	for _, part := range strings.Split(filepath.ToSlash(p), "/") {
		if part == ".." {
			errs = append(errs, fmt.Sprintf("%s: path %q must not contain '..'", field, p))
			return errs
		}
	}

	return errs
}
