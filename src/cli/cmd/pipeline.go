package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/sofmeright/eslintgen/src/customrules"
	"github.com/sofmeright/eslintgen/src/dependency"
	"github.com/sofmeright/eslintgen/src/eslintrc"
	"github.com/sofmeright/eslintgen/src/generator"
	"github.com/sofmeright/eslintgen/src/options"
	"github.com/sofmeright/eslintgen/src/output"
	"github.com/sofmeright/eslintgen/src/workspace"
)

// rendered is a generated configuration that has not been written yet.
type rendered struct {
	opts     options.Options
	text     string
	fileName string
}

// render generates and serializes opts entirely in memory. ruleSet names an
// optional custom rule set applied on top.
func render(opts options.Options, ruleSet string) (*rendered, error) {
	gen := generator.New(logger.Named("generator"))
	if ruleSet != "" {
		store, err := ruleStore()
		if err != nil {
			return nil, err
		}
		rs, err := store.Get(ruleSet)
		if err != nil {
			return nil, err
		}
		gen = gen.WithCustomRules(rs.Table())
	}

	doc, err := gen.Generate(opts)
	if err != nil {
		return nil, err
	}
	text, fileName, err := eslintrc.Render(doc, opts.ConfigFormat)
	if err != nil {
		return nil, err
	}
	return &rendered{opts: opts, text: text, fileName: fileName}, nil
}

var errCustomRulesDisabled = errors.New("custom rule sets are disabled: custom_rules_file is empty in the config file")

// ruleStore opens the configured rule set file. Relative paths are resolved
// against the project root.
func ruleStore() (*customrules.Store, error) {
	path := cfg.CustomRulesFile
	if path == "" {
		return nil, errCustomRulesDisabled
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(projectDir, path)
	}
	return customrules.NewStore(path), nil
}

func outputDir() string {
	return filepath.Join(projectDir, cfg.OutputDir)
}

// overwriteState inspects the file a write would replace.
func overwriteState(path string) (exists, dirty bool, err error) {
	if !workspace.Exists(path) {
		return false, false, nil
	}
	dirty, err = workspace.Dirty(path)
	if err != nil {
		return true, false, err
	}
	return true, dirty, nil
}

func writeRendered(r *rendered) (string, error) {
	return workspace.WriteFile(outputDir(), r.fileName, []byte(r.text))
}

func packageManager() (dependency.Manager, error) {
	m, err := dependency.ParseManager(cfg.PackageManager)
	if err != nil {
		return "", err
	}
	if m == "" {
		m = dependency.DetectManager(projectDir)
	}
	return m, nil
}

// spinFunc wraps a long-running action, typically with a spinner.
type spinFunc func(ctx context.Context, title string, action func(context.Context) error) error

func runPlain(ctx context.Context, _ string, action func(context.Context) error) error {
	return action(ctx)
}

// installDeps installs the packages opts needs. A failed install is not
// fatal: the manual command is printed and nil returned. Cancellation is
// returned as an error.
func installDeps(ctx context.Context, w io.Writer, opts options.Options, color bool, spin spinFunc) error {
	pkgs := dependency.Packages(opts)
	m, err := packageManager()
	if err != nil {
		return err
	}
	if spin == nil {
		spin = runPlain
	}

	logger.Debug("installing dependencies", "manager", string(m), "packages", len(pkgs))
	err = spin(ctx, fmt.Sprintf("Installing %d packages with %s...", len(pkgs), m), func(ctx context.Context) error {
		return dependency.Install(ctx, projectDir, m, pkgs)
	})

	var ie *dependency.InstallError
	if errors.As(err, &ie) {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		logger.Error("dependency install failed", "error", ie.Err, "output", ie.Output)
		output.Failure(w, color, "could not install dependencies")
		output.Warn(w, color, "install them manually: %s", ie.Command)
		return nil
	}
	if err != nil {
		return err
	}
	output.Success(w, color, "installed %d packages with %s", len(pkgs), m)
	return nil
}
