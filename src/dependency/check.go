package dependency

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	masterminds "github.com/Masterminds/semver/v3"
	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"golang.org/x/sync/errgroup"
)

// flatConfigOnly matches eslint releases that no longer read .eslintrc files
// unless ESLINT_USE_FLAT_CONFIG=false is set.
var flatConfigOnly = mustConstraint(">= 9.0.0-0")

var versionPath = jp.R().C("version")

// Status describes one package in node_modules.
type Status struct {
	Package   string
	Installed bool
	Version   string
	// Warning is set when the installed version needs attention.
	Warning string
}

// Missing filters statuses down to packages that are not installed.
func Missing(statuses []Status) []string {
	var out []string
	for _, s := range statuses {
		if !s.Installed {
			out = append(out, s.Package)
		}
	}
	return out
}

// Check inspects node_modules under dir for every package. Statuses are
// returned in the order of pkgs. A package.json that exists but cannot be
// read or parsed is an error.
func Check(ctx context.Context, dir string, pkgs []string) ([]Status, error) {
	statuses := make([]Status, len(pkgs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU() * 2)

	for i, pkg := range pkgs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			st, err := checkPackage(dir, pkg)
			if err != nil {
				return err
			}
			statuses[i] = st
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return statuses, nil
}

func checkPackage(dir, pkg string) (Status, error) {
	st := Status{Package: pkg}

	path := filepath.Join(dir, "node_modules", filepath.FromSlash(pkg), "package.json")
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return st, nil
	}
	if err != nil {
		return st, fmt.Errorf("reading %s: %w", path, err)
	}

	manifest, err := oj.Parse(data)
	if err != nil {
		return st, fmt.Errorf("parsing %s: %w", path, err)
	}

	st.Installed = true
	if v, ok := versionPath.First(manifest).(string); ok {
		st.Version = v
	}

	if pkg == "eslint" && st.Version != "" {
		if v, err := masterminds.NewVersion(st.Version); err == nil && flatConfigOnly.Check(v) {
			st.Warning = fmt.Sprintf("eslint %s only reads .eslintrc files with ESLINT_USE_FLAT_CONFIG=false", st.Version)
		}
	}
	return st, nil
}

func mustConstraint(c string) *masterminds.Constraints {
	cs, err := masterminds.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return cs
}
