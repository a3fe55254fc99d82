package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sofmeright/eslintgen/src/importer"
)

var importCmd = &cobra.Command{
	Use:   "import [FILE]",
	Short: "Reconstruct options from an existing configuration",
	Long: `Read an existing .eslintrc file and print the options that would
regenerate it, as YAML. The output can be passed back with
"eslintgen generate --options FILE". A file that cannot be parsed is
reported in the log and yields the default options.

Without FILE the first of .eslintrc, .eslintrc.json, .eslintrc.js,
.eslintrc.yaml and .eslintrc.yml found in the output directory is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) > 0 {
		path = args[0]
	} else {
		found, ok := importer.Discover(outputDir())
		if !ok {
			return fmt.Errorf("no existing ESLint configuration found in %s", outputDir())
		}
		path = found
	}

	opts := importer.New(logger.Named("importer")).ImportFile(path)

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(opts); err != nil {
		return fmt.Errorf("encoding options: %w", err)
	}
	return enc.Close()
}
