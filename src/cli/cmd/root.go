package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/sofmeright/eslintgen/src/config"
	"github.com/sofmeright/eslintgen/src/logging"
	"github.com/sofmeright/eslintgen/src/output"
	"github.com/sofmeright/eslintgen/src/prompt"
	"github.com/sofmeright/eslintgen/src/version"
	"github.com/sofmeright/eslintgen/src/workspace"
)

var (
	cfgFile  string
	verbose  bool
	logLevel string
	workDir  string

	cfg        *config.Config
	logger     hclog.Logger
	projectDir string
)

var rootCmd = &cobra.Command{
	Use:   "eslintgen",
	Short: "ESLint configuration generator",
	Long: `eslintgen builds an .eslintrc configuration from a handful of answers
about your project: environment, TypeScript, framework, features and code style.

Run without a subcommand for the interactive flow, or use "generate" with
flags for scripted use.`,
	Version: version.Short(),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it.
		if cmd.Name() == "version" {
			return nil
		}
		return setup(cmd)
	},
	RunE:          runInit,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: "+config.DefaultFile+" in the project root)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error (default: from config, then warn)")
	rootCmd.PersistentFlags().StringVarP(&workDir, "dir", "C", "", "project directory (default: current directory)")

	rootCmd.SetVersionTemplate(version.String() + "\n")
}

// setup resolves the project root, loads the config file and builds the
// logger. Every command except version runs it first.
func setup(cmd *cobra.Command) error {
	dir := workDir
	if dir == "" {
		dir = "."
	}
	root, err := workspace.Root(dir)
	if err != nil {
		return fmt.Errorf("resolving project root: %w", err)
	}
	projectDir = root

	path := cfgFile
	if path == "" {
		path = filepath.Join(projectDir, config.DefaultFile)
	}
	cfg, err = config.Load(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	warnings, err := config.Validate(cfg)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}

	// CLI flag > config > default warn
	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	logger = logging.New(logging.Options{
		Level:   level,
		Verbose: verbose,
		Output:  cmd.ErrOrStderr(),
		Color:   output.UseColor(),
	})
	for _, w := range warnings {
		logger.Warn("config", "path", path, "warning", w)
	}
	logger.Debug("project", "root", projectDir, "config", path)
	return nil
}

// Execute runs the root command.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			fmt.Fprintln(os.Stderr, "aborted")
			return err
		}
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}
