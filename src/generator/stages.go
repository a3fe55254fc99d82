package generator

import (
	"github.com/sofmeright/eslintgen/src/eslintrc"
	"github.com/sofmeright/eslintgen/src/options"
	"github.com/sofmeright/eslintgen/src/rules"
)

// applyBase seeds the document: root marker, parser options, base rules and
// the six code-style rules.
func applyBase(doc *eslintrc.Document, style options.Style) {
	doc.Root = true
	doc.SetParserOption("ecmaVersion", "latest")
	doc.SetParserOption("sourceType", "module")
	doc.MergeRules(rules.Base())
	doc.MergeRules(styleRules(style))
}

func styleRules(style options.Style) eslintrc.RuleTable {
	return eslintrc.RuleTable{
		{Name: "indent", Rule: eslintrc.Tuple(eslintrc.LevelError, style.Indent.Value())},
		{Name: "quotes", Rule: eslintrc.Tuple(eslintrc.LevelError, style.Quotes.Preferred(),
			map[string]any{"avoidEscape": style.Quotes.AvoidEscape()})},
		{Name: "semi", Rule: eslintrc.Tuple(eslintrc.LevelError, string(style.Semicolons))},
		{Name: "comma-dangle", Rule: eslintrc.Tuple(eslintrc.LevelError, string(style.TrailingComma))},
		{Name: "max-len", Rule: eslintrc.Tuple(eslintrc.LevelError, map[string]any{"code": style.MaxLineLength})},
		{Name: "linebreak-style", Rule: eslintrc.Tuple(eslintrc.LevelError, string(style.LineEnding))},
	}
}

// applyEnvironment only ever writes true flags.
func applyEnvironment(doc *eslintrc.Document, env options.Environment) {
	if env.Browser() {
		doc.SetEnv("browser")
	}
	if env.Node() {
		doc.SetEnv("node")
	}
}

func applyTypeScript(doc *eslintrc.Document, opts options.Options) {
	if !opts.TypeScript {
		return
	}
	apply(doc, rules.TypeScript(), true)
}

func applyFramework(doc *eslintrc.Document, opts options.Options) {
	if rules.NodeFamily(opts.Framework) {
		apply(doc, rules.Node(), opts.TypeScript)
	}

	profile := rules.Framework(opts.Framework)
	if profile.Parser != "" && opts.TypeScript {
		// The framework parser owns the top level; script blocks still go
		// through the TypeScript parser.
		doc.SetParserOption("parser", rules.TypeScriptParser)
	}
	apply(doc, profile, opts.TypeScript)
}

func applyFeatures(doc *eslintrc.Document, opts options.Options) {
	for _, f := range opts.NormalizeFeatures() {
		apply(doc, rules.Feature(f), opts.TypeScript)
	}
}

// apply merges one profile. Rules already present are overwritten.
func apply(doc *eslintrc.Document, p rules.Profile, typescript bool) {
	doc.AddExtends(p.ExtendsFor(typescript)...)
	if p.Parser != "" {
		doc.SetParser(p.Parser)
	}
	doc.AddPlugins(p.Plugins...)
	doc.MergeRules(p.Rules)
	for k, v := range p.Settings {
		doc.SetSetting(k, v)
	}
}
