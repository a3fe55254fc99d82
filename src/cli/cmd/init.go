package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sofmeright/eslintgen/src/config"
	"github.com/sofmeright/eslintgen/src/importer"
	"github.com/sofmeright/eslintgen/src/options"
	"github.com/sofmeright/eslintgen/src/output"
	"github.com/sofmeright/eslintgen/src/prompt"
	"github.com/sofmeright/eslintgen/src/version"
)

var initCustomRules string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a configuration interactively",
	Long: `Ask about the project and write an ESLint configuration.

When the project already has an .eslintrc file, its settings can be used as
the starting answers. This is also what running eslintgen without a
subcommand does.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&initCustomRules, "custom-rules", "", "apply a saved custom rule set on top")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	w := cmd.OutOrStdout()
	color := output.UseColor()

	p, err := prompt.New()
	if err != nil {
		return err
	}
	p.Out = w
	p.PreviewDefault = cfg.Preview
	p.InstallDefault = cfg.Install != config.InstallNever

	output.Banner(w, version.Short(), color)

	defaults, err := startingOptions(ctx, p)
	if err != nil {
		return err
	}

	ans, err := p.Run(ctx, defaults)
	if err != nil {
		return err
	}
	logger.Debug("answers", "preset", ans.Preset, "format", string(ans.Options.ConfigFormat))

	r, err := render(ans.Options, initCustomRules)
	if err != nil {
		return err
	}

	if ans.Preview {
		output.Summary(w, r.opts, color)
		output.Preview(w, r.fileName, r.text, color)
		ok, err := p.Confirm(ctx, "Save this configuration?", true)
		if err != nil {
			return err
		}
		if !ok {
			output.Warn(w, color, "configuration discarded")
			return nil
		}
	}

	path := filepath.Join(outputDir(), r.fileName)
	exists, dirty, err := overwriteState(path)
	if err != nil {
		logger.Warn("could not inspect existing configuration", "error", err)
	}
	if exists {
		title := fmt.Sprintf("%s already exists. Replace it?", r.fileName)
		if dirty {
			title = fmt.Sprintf("%s has uncommitted changes. Replace it anyway?", r.fileName)
		}
		ok, err := p.Confirm(ctx, title, !dirty)
		if err != nil {
			return err
		}
		if !ok {
			output.Warn(w, color, "kept existing %s", r.fileName)
			return nil
		}
	}

	written, err := writeRendered(r)
	if err != nil {
		return err
	}
	output.Success(w, color, "ESLint config file created: %s", written)

	if ans.Install {
		if err := installDeps(ctx, w, r.opts, color, p.Spin); err != nil {
			return err
		}
	}
	output.Success(w, color, "You can now run ESLint with this configuration.")
	return nil
}

// startingOptions returns the answers the flow starts from: the existing
// configuration when one is found and the user wants it, else the defaults
// with the configured format.
func startingOptions(ctx context.Context, p *prompt.Prompter) (options.Options, error) {
	opts := options.Default()
	if f, err := options.ParseFormat(cfg.DefaultFormat); err == nil {
		opts.ConfigFormat = f
	}

	path, ok := importer.Discover(outputDir())
	if !ok {
		return opts, nil
	}
	use, err := p.Confirm(ctx, fmt.Sprintf("Found %s. Use it as the starting point?", filepath.Base(path)), true)
	if err != nil || !use {
		return opts, err
	}

	imported := importer.New(logger.Named("importer")).ImportFile(path)
	imported.ConfigFormat = opts.ConfigFormat
	return imported, nil
}
