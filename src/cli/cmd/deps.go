package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sofmeright/eslintgen/src/dependency"
	"github.com/sofmeright/eslintgen/src/output"
)

var (
	depsInstall bool
	depsCheck   bool
)

var depsCmd = &cobra.Command{
	Use:     "deps",
	Aliases: []string{"dependencies"},
	Short:   "Show the packages a configuration needs",
	Long: `List the npm packages the generated configuration depends on and the
command that installs them.

Takes the same option flags as "generate". Use --install to run the
package manager, or --check to compare against node_modules.`,
	Args: cobra.NoArgs,
	RunE: runDeps,
}

func init() {
	f := depsCmd.Flags()
	addOptionFlags(f)
	f.BoolVar(&depsInstall, "install", false, "install the packages with the project's package manager")
	f.BoolVar(&depsCheck, "check", false, "report which packages are missing from node_modules")

	depsCmd.MarkFlagsMutuallyExclusive("preset", "options")
	depsCmd.MarkFlagsMutuallyExclusive("install", "check")

	rootCmd.AddCommand(depsCmd)
}

func runDeps(cmd *cobra.Command, args []string) error {
	opts, err := generateOptions(cmd)
	if err != nil {
		return err
	}
	m, err := packageManager()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	color := output.UseColor()
	pkgs := dependency.Packages(opts)

	switch {
	case depsCheck:
		statuses, err := dependency.Check(cmd.Context(), projectDir, pkgs)
		if err != nil {
			return err
		}
		output.Statuses(w, statuses, color)
		if missing := dependency.Missing(statuses); len(missing) > 0 {
			output.Warn(w, color, "%d missing: %s", len(missing), m.Command(missing))
			return fmt.Errorf("%d of %d packages are not installed", len(missing), len(pkgs))
		}
		return nil
	case depsInstall:
		return installDeps(cmd.Context(), w, opts, color, nil)
	default:
		output.Packages(w, pkgs, m.Command(pkgs), color)
		return nil
	}
}
