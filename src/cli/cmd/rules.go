package cmd

import (
	"fmt"
	"strings"

	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"

	"github.com/sofmeright/eslintgen/src/customrules"
	"github.com/sofmeright/eslintgen/src/output"
)

var (
	rulesDescription string
	rulesSpecs       []string
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Manage custom rule sets",
	Long: `Custom rule sets are named groups of rules stored in the project
(default .eslint-custom-rules.json). Apply one with
"eslintgen generate --custom-rules NAME"; its rules override the generated ones.`,
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved rule sets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := ruleStore()
		if err != nil {
			return err
		}
		sets, err := store.Load()
		if err != nil {
			return err
		}
		color := output.UseColor()
		sec := output.NewSection(cmd.OutOrStdout(), fmt.Sprintf("Rule sets (%d)", len(sets)), 0, color)
		if len(sets) == 0 {
			sec.Row("%s", output.Dimmed("none saved", color))
		}
		for _, rs := range sets {
			sec.KV(rs.Name, fmt.Sprintf("%s %s", rs.Description, output.Dimmed(fmt.Sprintf("(%d rules)", len(rs.Rules)), color)))
		}
		sec.Close()
		return nil
	},
}

var rulesShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Show the rules of a rule set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := ruleStore()
		if err != nil {
			return err
		}
		rs, err := store.Get(args[0])
		if err != nil {
			return err
		}
		color := output.UseColor()
		sec := output.NewSection(cmd.OutOrStdout(), rs.Name, 0, color)
		sec.Row("%s", output.Dimmed(rs.Description, color))
		sec.Separator()
		for _, nr := range rs.Table() {
			sec.KV(nr.Name, nr.Rule.String())
		}
		sec.Close()
		return nil
	},
}

var rulesAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Create or replace a rule set",
	Long: `Create or replace a rule set. Each --rule takes NAME=LEVEL, optionally
followed by a colon and a JSON array of rule options:

  eslintgen rules add team --description "Team overrides" \
    --rule no-console=warn \
    --rule 'quotes=error:["double",{"avoidEscape":true}]'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := ruleStore()
		if err != nil {
			return err
		}
		rs := customrules.RuleSet{Name: args[0], Description: rulesDescription}
		for _, spec := range rulesSpecs {
			r, err := parseRuleSpec(spec)
			if err != nil {
				return err
			}
			rs.Rules = append(rs.Rules, r)
		}

		if err := store.Save(rs); err != nil {
			return err
		}
		output.Success(cmd.OutOrStdout(), output.UseColor(), "saved rule set %s (%d rules) to %s", rs.Name, len(rs.Rules), store.Path)
		return nil
	},
}

var rulesRemoveCmd = &cobra.Command{
	Use:     "remove NAME",
	Aliases: []string{"rm"},
	Short:   "Delete a rule set",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := ruleStore()
		if err != nil {
			return err
		}
		removed, err := store.Delete(args[0])
		if err != nil {
			return err
		}
		if !removed {
			return fmt.Errorf("rule set %q not found", args[0])
		}
		output.Success(cmd.OutOrStdout(), output.UseColor(), "removed rule set %s", args[0])
		return nil
	},
}

func init() {
	rulesAddCmd.Flags().StringVarP(&rulesDescription, "description", "d", "", "what the rule set is for (required)")
	rulesAddCmd.Flags().StringArrayVarP(&rulesSpecs, "rule", "r", nil, "rule as NAME=LEVEL[:JSON-OPTIONS] (repeatable)")

	rulesCmd.AddCommand(rulesListCmd, rulesShowCmd, rulesAddCmd, rulesRemoveCmd)
	rootCmd.AddCommand(rulesCmd)
}

// parseRuleSpec reads NAME=LEVEL[:JSON-OPTIONS].
func parseRuleSpec(spec string) (customrules.Rule, error) {
	name, rest, ok := strings.Cut(spec, "=")
	if !ok || strings.TrimSpace(name) == "" {
		return customrules.Rule{}, fmt.Errorf("invalid rule %q (expected NAME=LEVEL[:JSON-OPTIONS])", spec)
	}
	level, raw, hasOpts := strings.Cut(rest, ":")
	r := customrules.Rule{Name: strings.TrimSpace(name), Level: strings.TrimSpace(level)}
	if !hasOpts {
		return r, nil
	}

	v, err := oj.ParseString(raw)
	if err != nil {
		return r, fmt.Errorf("rule %s: parsing options: %w", r.Name, err)
	}
	opts, ok := v.([]any)
	if !ok {
		return r, fmt.Errorf("rule %s: options must be a JSON array", r.Name)
	}
	r.Options = opts
	return r, nil
}
