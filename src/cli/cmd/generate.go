package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sofmeright/eslintgen/src/config"
	"github.com/sofmeright/eslintgen/src/options"
	"github.com/sofmeright/eslintgen/src/output"
	"github.com/sofmeright/eslintgen/src/presets"
)

var (
	genPreset      string
	genOptionsFile string
	genFormat      string
	genEnv         string
	genTypeScript  bool
	genFramework   string
	genFeatures    []string
	genIndent      string
	genQuotes      string
	genSemicolons  string
	genTrailing    string
	genLineEnding  string
	genMaxLen      int
	genCustomRules string
	genStdout      bool
	genDryRun      bool
	genInstall     bool
	genForce       bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a configuration without prompting",
	Long: `Generate an ESLint configuration from flags.

Options start from --preset or --options FILE (YAML, JSON or TOML) when given,
otherwise from the defaults. Individual flags override single fields.

An existing configuration file with uncommitted changes is only replaced
with --force.`,
	Example: `  eslintgen generate --preset react-typescript
  eslintgen generate --env node --framework express --feature jest --format yaml
  eslintgen generate --options eslintgen-options.toml --stdout`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	addOptionFlags(f)
	f.StringVar(&genCustomRules, "custom-rules", "", "apply a saved custom rule set on top")
	f.BoolVar(&genStdout, "stdout", false, "print the configuration instead of writing it")
	f.BoolVar(&genDryRun, "dry-run", false, "preview the configuration without writing it")
	f.BoolVar(&genInstall, "install", false, "install the required dependencies")
	f.BoolVar(&genForce, "force", false, "replace a configuration file with uncommitted changes")

	generateCmd.MarkFlagsMutuallyExclusive("preset", "options")
	generateCmd.MarkFlagsMutuallyExclusive("stdout", "dry-run")

	rootCmd.AddCommand(generateCmd)
}

// addOptionFlags binds the flags read by generateOptions.
func addOptionFlags(f *pflag.FlagSet) {
	f.StringVar(&genPreset, "preset", "", "start from a built-in preset (see \"eslintgen presets\")")
	f.StringVar(&genOptionsFile, "options", "", "start from an options file (.yaml, .json or .toml)")
	f.StringVarP(&genFormat, "format", "f", "", "output format: json, javascript, yaml (default: from config, then json)")
	f.StringVar(&genEnv, "env", "", "environment: browser, node, both")
	f.BoolVar(&genTypeScript, "typescript", false, "enable TypeScript support")
	f.StringVar(&genFramework, "framework", "", "framework: react, vue, next, express, node, angular, svelte, nuxt, none")
	f.StringSliceVar(&genFeatures, "feature", nil, "feature to enable (repeatable or comma-separated)")
	f.StringVar(&genIndent, "indent", "", "indentation: a width or \"tab\"")
	f.StringVar(&genQuotes, "quotes", "", "quotes: single, double, both-single, both-double")
	f.StringVar(&genSemicolons, "semicolons", "", "semicolons: always, never")
	f.StringVar(&genTrailing, "trailing-comma", "", "trailing commas: none, es5, all")
	f.StringVar(&genLineEnding, "line-ending", "", "line endings: unix, windows")
	f.IntVar(&genMaxLen, "max-len", 0, "maximum line length")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	opts, err := generateOptions(cmd)
	if err != nil {
		return err
	}

	r, err := render(opts, genCustomRules)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if genStdout {
		fmt.Fprint(w, r.text)
		return nil
	}

	color := output.UseColor()
	if genDryRun || cfg.Preview {
		output.Summary(w, r.opts, color)
		output.Preview(w, r.fileName, r.text, color)
	}
	if genDryRun {
		output.Warn(w, color, "dry run: %s not written", r.fileName)
		return nil
	}

	exists, dirty, err := overwriteState(filepath.Join(outputDir(), r.fileName))
	if err != nil {
		logger.Warn("could not inspect existing configuration", "error", err)
	}
	if dirty && !genForce {
		return fmt.Errorf("%s has uncommitted changes; commit them or pass --force", r.fileName)
	}

	path, err := writeRendered(r)
	if err != nil {
		return err
	}
	verb := "created"
	if exists {
		verb = "replaced"
	}
	output.Success(w, color, "%s %s", verb, path)

	// CLI flag > config
	install := genInstall
	if !cmd.Flags().Changed("install") {
		install = cfg.Install == config.InstallAlways
	}
	if install {
		return installDeps(cmd.Context(), w, r.opts, color, nil)
	}
	return nil
}

// generateOptions assembles the options record. Precedence for every field:
// flag > preset or options file > config default_format > default.
func generateOptions(cmd *cobra.Command) (options.Options, error) {
	opts := options.Default()
	if f, err := options.ParseFormat(cfg.DefaultFormat); err == nil {
		opts.ConfigFormat = f
	}

	switch {
	case genPreset != "":
		p, err := presets.Get(genPreset)
		if err != nil {
			return opts, err
		}
		opts = p
	case genOptionsFile != "":
		o, err := options.LoadFile(genOptionsFile, opts)
		if err != nil {
			return opts, err
		}
		opts = o
	}

	flags := cmd.Flags()
	var err error
	if flags.Changed("format") {
		if opts.ConfigFormat, err = options.ParseFormat(genFormat); err != nil {
			return opts, err
		}
	}
	if flags.Changed("env") {
		if opts.Environment, err = options.ParseEnvironment(genEnv); err != nil {
			return opts, err
		}
	}
	if flags.Changed("typescript") {
		opts.TypeScript = genTypeScript
	}
	if flags.Changed("framework") {
		if opts.Framework, err = options.ParseFramework(genFramework); err != nil {
			return opts, err
		}
	}
	if flags.Changed("feature") {
		opts.Features = make([]options.Feature, 0, len(genFeatures))
		for _, name := range genFeatures {
			f, err := options.ParseFeature(name)
			if err != nil {
				return opts, err
			}
			opts.Features = append(opts.Features, f)
		}
	}

	st := &opts.Style
	if flags.Changed("indent") {
		if st.Indent, err = options.ParseIndent(genIndent); err != nil {
			return opts, err
		}
	}
	if flags.Changed("quotes") {
		if st.Quotes, err = options.ParseQuoteStyle(genQuotes); err != nil {
			return opts, err
		}
	}
	if flags.Changed("semicolons") {
		if st.Semicolons, err = options.ParseSemicolonStyle(genSemicolons); err != nil {
			return opts, err
		}
	}
	if flags.Changed("trailing-comma") {
		if st.TrailingComma, err = options.ParseTrailingCommaStyle(genTrailing); err != nil {
			return opts, err
		}
	}
	if flags.Changed("line-ending") {
		if st.LineEnding, err = options.ParseLineEndingStyle(genLineEnding); err != nil {
			return opts, err
		}
	}
	if flags.Changed("max-len") {
		if genMaxLen <= 0 {
			return opts, fmt.Errorf("invalid --max-len %d (expected a positive integer)", genMaxLen)
		}
		st.MaxLineLength = genMaxLen
	}
	return opts, nil
}
