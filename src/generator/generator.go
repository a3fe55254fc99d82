// Package generator maps a validated options record to an ESLint
// configuration document.
//
// Stages run in a fixed order and only ever add to the document:
//
//	base + style → environment → typescript → framework → features → custom rules
//
// A later stage that sets a rule already present overwrites it (last write
// wins), so framework rules refine TypeScript rules and feature rules refine
// both.
package generator

import (
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/sofmeright/eslintgen/src/eslintrc"
	"github.com/sofmeright/eslintgen/src/options"
	"github.com/sofmeright/eslintgen/src/rules"
)

// ConflictMessage prefixes the warning logged for conflicting style guides.
const ConflictMessage = "Conflicting style guides selected"

// Generator builds documents. The zero value is ready to use and discards
// diagnostics.
type Generator struct {
	Logger hclog.Logger
	// Custom is merged after every other stage when non-empty.
	Custom eslintrc.RuleTable
}

// New returns a generator logging through logger.
func New(logger hclog.Logger) *Generator {
	return &Generator{Logger: logger}
}

// WithCustomRules returns a copy of g that overlays table as the last stage.
func (g *Generator) WithCustomRules(table eslintrc.RuleTable) *Generator {
	c := *g
	c.Custom = table.Clone()
	return &c
}

// Generate validates opts and builds a fresh document.
func Generate(opts options.Options) (*eslintrc.Document, error) {
	return (&Generator{}).Generate(opts)
}

// Generate validates opts and builds a fresh document. The returned document
// shares nothing with the rule tables or with previous calls.
func (g *Generator) Generate(opts options.Options) (*eslintrc.Document, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	log := g.logger()

	if conflicts := Conflicts(opts); len(conflicts) > 0 {
		log.Warn(ConflictMessage+": "+joinFeatures(conflicts), "features", joinFeatures(conflicts))
	}

	doc := eslintrc.New()
	applyBase(doc, opts.Style)
	applyEnvironment(doc, opts.Environment)
	applyTypeScript(doc, opts)
	applyFramework(doc, opts)
	applyFeatures(doc, opts)

	if len(g.Custom) > 0 {
		doc.MergeRules(g.Custom)
		log.Debug("custom rules applied", "count", len(g.Custom))
	}

	log.Debug("document generated",
		"framework", string(opts.Framework),
		"typescript", opts.TypeScript,
		"rules", len(doc.RuleNames()),
		"plugins", len(doc.Plugins),
	)
	return doc, nil
}

// Conflicts returns the selected style guides when more than one is chosen.
func Conflicts(opts options.Options) []options.Feature {
	var selected []options.Feature
	for _, f := range rules.StyleGuides() {
		if opts.HasFeature(f) {
			selected = append(selected, f)
		}
	}
	if len(selected) < 2 {
		return nil
	}
	return selected
}

func (g *Generator) logger() hclog.Logger {
	if g == nil || g.Logger == nil {
		return hclog.NewNullLogger()
	}
	return g.Logger
}

func joinFeatures(fs []options.Feature) string {
	names := make([]string, len(fs))
	for i, f := range fs {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
