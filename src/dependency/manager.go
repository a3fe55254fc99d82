package dependency

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Manager is an npm-compatible package manager.
type Manager string

const (
	NPM  Manager = "npm"
	Yarn Manager = "yarn"
	PNPM Manager = "pnpm"
)

// Managers lists the supported package managers.
var Managers = []Manager{NPM, Yarn, PNPM}

// lockfiles are checked in order; the first one present decides.
var lockfiles = []struct {
	name    string
	manager Manager
}{
	{"pnpm-lock.yaml", PNPM},
	{"yarn.lock", Yarn},
	{"package-lock.json", NPM},
}

// ParseManager accepts a manager name. "auto" and "" return an empty Manager,
// meaning detect from the lockfile.
func ParseManager(s string) (Manager, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return "", nil
	case "npm":
		return NPM, nil
	case "yarn":
		return Yarn, nil
	case "pnpm":
		return PNPM, nil
	}
	return "", fmt.Errorf("unknown package manager %q (supported: auto, npm, yarn, pnpm)", s)
}

// DetectManager picks the package manager whose lockfile exists in dir,
// falling back to npm.
func DetectManager(dir string) Manager {
	for _, lf := range lockfiles {
		if _, err := os.Stat(filepath.Join(dir, lf.name)); err == nil {
			return lf.manager
		}
	}
	return NPM
}

// InstallArgs returns the argv that installs pkgs as development dependencies.
func (m Manager) InstallArgs(pkgs []string) []string {
	var args []string
	switch m {
	case Yarn:
		args = []string{"yarn", "add", "--dev"}
	case PNPM:
		args = []string{"pnpm", "add", "--save-dev"}
	default:
		args = []string{"npm", "install", "--save-dev"}
	}
	return append(args, pkgs...)
}

// Command renders InstallArgs as a single shell line for manual use.
func (m Manager) Command(pkgs []string) string {
	return strings.Join(m.InstallArgs(pkgs), " ")
}
