package options

import (
	"fmt"
	"strconv"
	"strings"
)

// Format selects the serialized form of the generated configuration.
type Format string

const (
	FormatJSON       Format = "json"
	FormatJavaScript Format = "javascript"
	FormatYAML       Format = "yaml"
)

// Formats lists every supported output format in prompt order.
var Formats = []Format{FormatJSON, FormatJavaScript, FormatYAML}

// ParseFormat accepts the canonical names plus the common short forms.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "javascript", "js", "js-module":
		return FormatJavaScript, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", &InvalidFormatError{Value: s}
}

// Valid reports whether f is one of the closed set values.
func (f Format) Valid() bool {
	return f == FormatJSON || f == FormatJavaScript || f == FormatYAML
}

func (f Format) Label() string {
	switch f {
	case FormatJSON:
		return "JSON (.eslintrc.json)"
	case FormatJavaScript:
		return "JavaScript (.eslintrc.js)"
	case FormatYAML:
		return "YAML (.eslintrc.yaml)"
	}
	return string(f)
}

// Environment is the runtime the linted code targets.
type Environment string

const (
	EnvBrowser Environment = "browser"
	EnvNode    Environment = "node"
	EnvBoth    Environment = "both"
)

var Environments = []Environment{EnvBrowser, EnvNode, EnvBoth}

func ParseEnvironment(s string) (Environment, error) {
	return parseEnum("environment", s, Environments)
}

func (e Environment) Label() string {
	switch e {
	case EnvBrowser:
		return "Browser"
	case EnvNode:
		return "Node.js"
	case EnvBoth:
		return "Both"
	}
	return string(e)
}

// Browser reports whether the browser globals apply.
func (e Environment) Browser() bool { return e == EnvBrowser || e == EnvBoth }

// Node reports whether the Node.js globals apply.
func (e Environment) Node() bool { return e == EnvNode || e == EnvBoth }

// Framework is the application framework. Exactly one is selected.
type Framework string

const (
	FrameworkReact   Framework = "react"
	FrameworkVue     Framework = "vue"
	FrameworkNext    Framework = "next"
	FrameworkExpress Framework = "express"
	FrameworkNode    Framework = "node"
	FrameworkAngular Framework = "angular"
	FrameworkSvelte  Framework = "svelte"
	FrameworkNuxt    Framework = "nuxt"
	FrameworkNone    Framework = "none"
)

var Frameworks = []Framework{
	FrameworkReact, FrameworkVue, FrameworkNext, FrameworkExpress, FrameworkNode,
	FrameworkAngular, FrameworkSvelte, FrameworkNuxt, FrameworkNone,
}

func ParseFramework(s string) (Framework, error) {
	return parseEnum("framework", s, Frameworks)
}

func (f Framework) Label() string {
	switch f {
	case FrameworkReact:
		return "React"
	case FrameworkVue:
		return "Vue.js"
	case FrameworkNext:
		return "Next.js"
	case FrameworkExpress:
		return "Express"
	case FrameworkNode:
		return "Node.js (plain)"
	case FrameworkAngular:
		return "Angular"
	case FrameworkSvelte:
		return "Svelte"
	case FrameworkNuxt:
		return "Nuxt.js"
	case FrameworkNone:
		return "None (Vanilla JavaScript/TypeScript)"
	}
	return string(f)
}

// Feature is an optional add-on. Several may be selected at once.
type Feature string

const (
	FeaturePrettier      Feature = "prettier"
	FeatureImport        Feature = "import"
	FeatureJest          Feature = "jest"
	FeatureA11y          Feature = "a11y"
	FeaturePerformance   Feature = "performance"
	FeatureSecurity      Feature = "security"
	FeatureRedux         Feature = "redux"
	FeatureMobX          Feature = "mobx"
	FeaturePinia         Feature = "pinia"
	FeatureAirbnbStyle   Feature = "airbnb-style"
	FeatureGoogleStyle   Feature = "google-style"
	FeatureStandardStyle Feature = "standard-style"
)

// Features is the declaration order. The generator applies selected features
// in this order regardless of how the user listed them.
var Features = []Feature{
	FeaturePrettier, FeatureImport, FeatureJest, FeatureA11y, FeaturePerformance,
	FeatureSecurity, FeatureRedux, FeatureMobX, FeaturePinia,
	FeatureAirbnbStyle, FeatureGoogleStyle, FeatureStandardStyle,
}

func ParseFeature(s string) (Feature, error) {
	return parseEnum("feature", s, Features)
}

func (f Feature) Label() string {
	switch f {
	case FeaturePrettier:
		return "Prettier Integration"
	case FeatureImport:
		return "Import/Export Syntax Rules"
	case FeatureJest:
		return "Jest Testing Support"
	case FeatureA11y:
		return "Accessibility (A11y) Rules"
	case FeaturePerformance:
		return "Performance Rules"
	case FeatureSecurity:
		return "Security Rules"
	case FeatureRedux:
		return "Redux"
	case FeatureMobX:
		return "MobX"
	case FeaturePinia:
		return "Pinia"
	case FeatureAirbnbStyle:
		return "Airbnb Style Guide"
	case FeatureGoogleStyle:
		return "Google Style Guide"
	case FeatureStandardStyle:
		return "Standard Style Guide"
	}
	return string(f)
}

// Indent is an indentation width in spaces, or IndentTab.
type Indent int

// IndentTab selects tab indentation.
const IndentTab Indent = -1

var Indents = []Indent{2, 4, IndentTab}

// ParseIndent accepts a positive integer or "tab".
func ParseIndent(s string) (Indent, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "tab" {
		return IndentTab, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid indent %q (expected a positive integer or \"tab\")", s)
	}
	return Indent(n), nil
}

func (i Indent) Valid() bool { return i == IndentTab || i > 0 }

// Value returns the rule option form: the width, or the string "tab".
func (i Indent) Value() any {
	if i == IndentTab {
		return "tab"
	}
	return int(i)
}

func (i Indent) String() string {
	if i == IndentTab {
		return "tab"
	}
	return strconv.Itoa(int(i))
}

func (i Indent) Label() string {
	if i == IndentTab {
		return "Tab"
	}
	return fmt.Sprintf("%d Spaces", int(i))
}

// QuoteStyle is the preferred string delimiter. The both-* variants prefer
// one delimiter but allow the other to avoid escapes.
type QuoteStyle string

const (
	QuotesSingle     QuoteStyle = "single"
	QuotesDouble     QuoteStyle = "double"
	QuotesBothSingle QuoteStyle = "both-single"
	QuotesBothDouble QuoteStyle = "both-double"
)

var QuoteStyles = []QuoteStyle{QuotesSingle, QuotesDouble, QuotesBothSingle, QuotesBothDouble}

func ParseQuoteStyle(s string) (QuoteStyle, error) {
	return parseEnum("quote style", s, QuoteStyles)
}

// Preferred is the delimiter handed to the quotes rule. The both-* styles
// prefer the delimiter they name.
func (q QuoteStyle) Preferred() string {
	if q == QuotesDouble || q == QuotesBothDouble {
		return "double"
	}
	return "single"
}

// AvoidEscape reports whether the other delimiter is allowed to avoid escapes.
func (q QuoteStyle) AvoidEscape() bool {
	return q == QuotesBothSingle || q == QuotesBothDouble
}

func (q QuoteStyle) Label() string {
	switch q {
	case QuotesSingle:
		return "Single Quotes ('example')"
	case QuotesDouble:
		return `Double Quotes ("example")`
	case QuotesBothSingle:
		return "Allow Both (prefer single)"
	case QuotesBothDouble:
		return "Allow Both (prefer double)"
	}
	return string(q)
}

type SemicolonStyle string

const (
	SemicolonsAlways SemicolonStyle = "always"
	SemicolonsNever  SemicolonStyle = "never"
)

var SemicolonStyles = []SemicolonStyle{SemicolonsAlways, SemicolonsNever}

func ParseSemicolonStyle(s string) (SemicolonStyle, error) {
	return parseEnum("semicolon style", s, SemicolonStyles)
}

func (s SemicolonStyle) Label() string {
	switch s {
	case SemicolonsAlways:
		return "Always Required"
	case SemicolonsNever:
		return "Never (ASI)"
	}
	return string(s)
}

type TrailingCommaStyle string

const (
	TrailingCommaNone TrailingCommaStyle = "none"
	TrailingCommaES5  TrailingCommaStyle = "es5"
	TrailingCommaAll  TrailingCommaStyle = "all"
)

var TrailingCommaStyles = []TrailingCommaStyle{TrailingCommaNone, TrailingCommaES5, TrailingCommaAll}

func ParseTrailingCommaStyle(s string) (TrailingCommaStyle, error) {
	return parseEnum("trailing comma style", s, TrailingCommaStyles)
}

func (t TrailingCommaStyle) Label() string {
	switch t {
	case TrailingCommaNone:
		return "None"
	case TrailingCommaES5:
		return "ES5 Compatible"
	case TrailingCommaAll:
		return "All Possible"
	}
	return string(t)
}

type LineEndingStyle string

const (
	LineEndingUnix    LineEndingStyle = "unix"
	LineEndingWindows LineEndingStyle = "windows"
)

var LineEndingStyles = []LineEndingStyle{LineEndingUnix, LineEndingWindows}

func ParseLineEndingStyle(s string) (LineEndingStyle, error) {
	return parseEnum("line ending style", s, LineEndingStyles)
}

func (l LineEndingStyle) Label() string {
	switch l {
	case LineEndingUnix:
		return "Unix (LF)"
	case LineEndingWindows:
		return "Windows (CRLF)"
	}
	return string(l)
}

func parseEnum[T ~string](kind, s string, valid []T) (T, error) {
	v := T(strings.ToLower(strings.TrimSpace(s)))
	for _, candidate := range valid {
		if v == candidate {
			return v, nil
		}
	}
	names := make([]string, len(valid))
	for i, candidate := range valid {
		names[i] = string(candidate)
	}
	var zero T
	return zero, fmt.Errorf("unknown %s %q (supported: %s)", kind, s, strings.Join(names, ", "))
}
