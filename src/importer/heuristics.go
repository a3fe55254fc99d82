package importer

import (
	"slices"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/ohler55/ojg/jp"

	"github.com/sofmeright/eslintgen/src/options"
	"github.com/sofmeright/eslintgen/src/rules"
)

// marker identifies an option in a parsed document: a substring of any
// extends entry, or a plugin short-name listed verbatim.
type marker struct {
	extends string
	plugin  string
}

func (m marker) matches(extends, plugins []string) bool {
	if m.extends != "" && anyContains(extends, m.extends) {
		return true
	}
	return m.plugin != "" && slices.Contains(plugins, m.plugin)
}

// frameworkMarkers are checked in order; the first match wins. Extends
// markers name the plugin namespace so that feature identifiers such as
// react-redux never read as a framework.
var frameworkMarkers = []struct {
	marker
	framework options.Framework
}{
	{marker{extends: "plugin:react/"}, options.FrameworkReact},
	{marker{extends: "plugin:vue/"}, options.FrameworkVue},
	{marker{extends: "next"}, options.FrameworkNext},
	{marker{extends: "@angular-eslint"}, options.FrameworkAngular},
	{marker{extends: "svelte"}, options.FrameworkSvelte},
	{marker{extends: "@nuxtjs", plugin: "@nuxtjs"}, options.FrameworkNuxt},
	// Lowest priority: only considered when no application framework matched.
	{marker{extends: "plugin:node/"}, options.FrameworkNode},
}

// featureMarkers are matched independently of each other, in declaration
// order. Features without an extends entry are found by their plugin.
var featureMarkers = []struct {
	marker
	feature options.Feature
}{
	{marker{extends: "prettier"}, options.FeaturePrettier},
	{marker{extends: "import"}, options.FeatureImport},
	{marker{extends: "jest"}, options.FeatureJest},
	{marker{extends: "jsx-a11y"}, options.FeatureA11y},
	{marker{extends: "performance"}, options.FeaturePerformance},
	{marker{extends: "security"}, options.FeatureSecurity},
	{marker{plugin: "react-redux"}, options.FeatureRedux},
	{marker{plugin: "mobx"}, options.FeatureMobX},
	{marker{plugin: "pinia"}, options.FeaturePinia},
	{marker{extends: "airbnb"}, options.FeatureAirbnbStyle},
	{marker{extends: "google"}, options.FeatureGoogleStyle},
	{marker{extends: "standard"}, options.FeatureStandardStyle},
}

var (
	envBrowser = jp.R().C("env").C("browser")
	envNode    = jp.R().C("env").C("node")
	parserPath = jp.R().C("parser")
	extendsKey = jp.R().C("extends")
	pluginsKey = jp.R().C("plugins")

	// Only the Express profile sets this rule.
	expressRule = jp.R().C("rules").C("node/exports-style")
)

// ImportFile parses path and reconstructs options from it. Parse failures are
// logged and produce the default options.
func (im *Importer) ImportFile(path string) options.Options {
	log := im.logger()

	doc, err := ParseFile(path)
	if err != nil {
		log.Error("could not import existing configuration, using defaults", "path", path, "error", err)
		return options.Default()
	}

	opts := Import(doc)
	log.Debug("imported configuration",
		"path", path,
		"framework", string(opts.Framework),
		"typescript", opts.TypeScript,
		"features", len(opts.Features),
	)
	return opts
}

func (im *Importer) logger() hclog.Logger {
	if im == nil || im.Logger == nil {
		return hclog.NewNullLogger()
	}
	return im.Logger
}

// Import reconstructs an options record from a parsed configuration. Any key
// that is absent or holds an unrecognized value leaves the default in place.
//
// TypeScript is detected from the parser alone. A Vue config generated
// with TypeScript keeps the TypeScript parser under parserOptions.parser and
// is therefore read back as plain JavaScript.
func Import(doc map[string]any) options.Options {
	opts := options.Default()

	browser := truthy(first(envBrowser, doc))
	node := truthy(first(envNode, doc))
	switch {
	case browser && node:
		opts.Environment = options.EnvBoth
	case browser:
		opts.Environment = options.EnvBrowser
	case node:
		opts.Environment = options.EnvNode
	}

	parser, _ := first(parserPath, doc).(string)
	opts.TypeScript = parser == rules.TypeScriptParser

	extends := stringList(first(extendsKey, doc))
	plugins := stringList(first(pluginsKey, doc))
	opts.Framework = detectFramework(extends, plugins, doc)
	opts.Features = detectFeatures(extends, plugins)

	importStyle(&opts.Style, doc)
	return opts
}

func detectFramework(extends, plugins []string, doc map[string]any) options.Framework {
	for _, m := range frameworkMarkers {
		if !m.matches(extends, plugins) {
			continue
		}
		if m.framework == options.FrameworkNode && first(expressRule, doc) != nil {
			return options.FrameworkExpress
		}
		return m.framework
	}
	return options.FrameworkNone
}

func detectFeatures(extends, plugins []string) []options.Feature {
	found := []options.Feature{}
	for _, m := range featureMarkers {
		if m.matches(extends, plugins) {
			found = append(found, m.feature)
		}
	}
	return found
}

func importStyle(style *options.Style, doc map[string]any) {
	switch v := ruleOption(doc, "indent", 1).(type) {
	case string:
		if v == "tab" {
			style.Indent = options.IndentTab
		}
	default:
		if n, ok := toInt(v); ok && n > 0 {
			style.Indent = options.Indent(n)
		}
	}

	if q, ok := ruleOption(doc, "quotes", 1).(string); ok {
		avoid, _ := ruleOption(doc, "quotes", 2).(map[string]any)
		both := truthy(avoid["avoidEscape"])
		switch {
		case q == "single" && both:
			style.Quotes = options.QuotesBothSingle
		case q == "double" && both:
			style.Quotes = options.QuotesBothDouble
		case q == "single":
			style.Quotes = options.QuotesSingle
		case q == "double":
			style.Quotes = options.QuotesDouble
		}
	}

	if s, ok := ruleOption(doc, "semi", 1).(string); ok {
		if v, err := options.ParseSemicolonStyle(s); err == nil {
			style.Semicolons = v
		}
	}

	if s, ok := ruleOption(doc, "comma-dangle", 1).(string); ok {
		if v, ok := trailingComma(s); ok {
			style.TrailingComma = v
		}
	}

	if s, ok := ruleOption(doc, "linebreak-style", 1).(string); ok {
		if v, err := options.ParseLineEndingStyle(s); err == nil {
			style.LineEnding = v
		}
	}

	switch v := ruleOption(doc, "max-len", 1).(type) {
	case map[string]any:
		if n, ok := toInt(v["code"]); ok && n > 0 {
			style.MaxLineLength = n
		}
	default:
		if n, ok := toInt(v); ok && n > 0 {
			style.MaxLineLength = n
		}
	}
}

// trailingComma accepts the generated values and ESLint's own spelling.
func trailingComma(s string) (options.TrailingCommaStyle, bool) {
	switch s {
	case "none", "never":
		return options.TrailingCommaNone, true
	case "es5", "always-multiline":
		return options.TrailingCommaES5, true
	case "all", "always":
		return options.TrailingCommaAll, true
	}
	return "", false
}

// ruleOption returns element idx of a rule given in array form, or nil.
func ruleOption(doc map[string]any, rule string, idx int) any {
	return first(jp.R().C("rules").C(rule).N(idx), doc)
}

func first(x jp.Expr, doc map[string]any) any {
	results := x.Get(doc)
	if len(results) == 0 {
		return nil
	}
	return results[0]
}

// stringList accepts a single string or a sequence of strings.
func stringList(v any) []string {
	switch x := v.(type) {
	case string:
		return []string{x}
	case []any:
		out := make([]string, 0, len(x))
		for _, e := range x {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func anyContains(list []string, sub string) bool {
	for _, s := range list {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func truthy(v any) bool {
	b, ok := v.(bool)
	return ok && b
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}
