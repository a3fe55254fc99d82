// Package rules holds the static lookup tables that map the TypeScript flag,
// frameworks and features to extends identifiers, plugins, rule levels and
// installable packages. The tables are process-wide constants: every
// accessor hands out a copy.
package rules

import (
	"github.com/sofmeright/eslintgen/src/eslintrc"
	"github.com/sofmeright/eslintgen/src/options"
)

// Profile is everything one option contributes to a document.
type Profile struct {
	Extends []string
	// TypeScriptExtends are appended after Extends when TypeScript is enabled.
	TypeScriptExtends []string
	Parser            string
	Plugins           []string
	Rules             eslintrc.RuleTable
	Settings          map[string]any
	Packages          []string
	// TypeScriptPackages are installed in addition to Packages with TypeScript.
	TypeScriptPackages []string
}

func (p Profile) clone() Profile {
	return Profile{
		Extends:            append([]string(nil), p.Extends...),
		TypeScriptExtends:  append([]string(nil), p.TypeScriptExtends...),
		Parser:             p.Parser,
		Plugins:            append([]string(nil), p.Plugins...),
		Rules:              p.Rules.Clone(),
		Settings:           cloneMap(p.Settings),
		Packages:           append([]string(nil), p.Packages...),
		TypeScriptPackages: append([]string(nil), p.TypeScriptPackages...),
	}
}

// ExtendsFor returns the extends list, including the TypeScript extras when
// typescript is set.
func (p Profile) ExtendsFor(typescript bool) []string {
	out := append([]string(nil), p.Extends...)
	if typescript {
		out = append(out, p.TypeScriptExtends...)
	}
	return out
}

// PackagesFor returns the installable packages, including the TypeScript
// extras when typescript is set.
func (p Profile) PackagesFor(typescript bool) []string {
	out := append([]string(nil), p.Packages...)
	if typescript {
		out = append(out, p.TypeScriptPackages...)
	}
	return out
}

// Base returns the rules every document starts with.
func Base() eslintrc.RuleTable {
	return baseRules.Clone()
}

// TypeScript returns the TypeScript profile.
func TypeScript() Profile {
	return typeScript.clone()
}

// Framework returns the profile for f. FrameworkNone has an empty profile.
func Framework(f options.Framework) Profile {
	return frameworks[f].clone()
}

// NodeFamily reports whether f builds on the plain Node.js profile.
func NodeFamily(f options.Framework) bool {
	return f == options.FrameworkNode || f == options.FrameworkExpress
}

// Node returns the profile shared by the Node.js family.
func Node() Profile {
	return node.clone()
}

// Feature returns the profile for f.
func Feature(f options.Feature) Profile {
	return features[f].clone()
}

// StyleGuides are features that are mutually exclusive by convention.
func StyleGuides() []options.Feature {
	return []options.Feature{options.FeatureAirbnbStyle, options.FeatureGoogleStyle, options.FeatureStandardStyle}
}

// TypeScriptParser is the parser identifier the TypeScript stage installs.
const TypeScriptParser = "@typescript-eslint/parser"

// TypeScriptPlugin is the plugin short-name of the TypeScript stage.
const TypeScriptPlugin = "@typescript-eslint"

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		return cloneMap(x)
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
