// Package eslintrc holds the ESLint configuration document model and renders
// it as JSON, a CommonJS module or YAML.
package eslintrc

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Document is a generated .eslintrc configuration. Key order of every
// mapping follows insertion order so output is stable across runs.
type Document struct {
	Root          bool                                 `json:"root,omitempty"`
	Env           *orderedmap.OrderedMap[string, bool] `json:"env,omitempty"`
	Extends       []string                             `json:"extends,omitempty"`
	Parser        string                               `json:"parser,omitempty"`
	ParserOptions *orderedmap.OrderedMap[string, any]  `json:"parserOptions,omitempty"`
	Plugins       []string                             `json:"plugins,omitempty"`
	Rules         *orderedmap.OrderedMap[string, Rule] `json:"rules,omitempty"`
	Settings      map[string]any                       `json:"settings,omitempty"`
}

// New returns an empty document.
func New() *Document {
	return &Document{}
}

// SetEnv marks an environment as enabled. Environments are never written as
// false; absence means disabled.
func (d *Document) SetEnv(name string) {
	if d.Env == nil {
		d.Env = orderedmap.New[string, bool]()
	}
	d.Env.Set(name, true)
}

// HasEnv reports whether the environment key is present and true.
func (d *Document) HasEnv(name string) bool {
	if d.Env == nil {
		return false
	}
	v, ok := d.Env.Get(name)
	return ok && v
}

// EnvNames returns the enabled environment keys in insertion order.
func (d *Document) EnvNames() []string {
	var names []string
	if d.Env == nil {
		return names
	}
	for p := d.Env.Oldest(); p != nil; p = p.Next() {
		names = append(names, p.Key)
	}
	return names
}

// AddExtends appends identifiers in application order.
func (d *Document) AddExtends(ids ...string) {
	d.Extends = append(d.Extends, ids...)
}

// SetParser replaces the parser. The last caller wins.
func (d *Document) SetParser(parser string) {
	d.Parser = parser
}

// SetParserOption sets a parserOptions key, keeping the original position
// when the key already exists.
func (d *Document) SetParserOption(key string, value any) {
	if d.ParserOptions == nil {
		d.ParserOptions = orderedmap.New[string, any]()
	}
	d.ParserOptions.Set(key, value)
}

// ParserOption returns a parserOptions value.
func (d *Document) ParserOption(key string) (any, bool) {
	if d.ParserOptions == nil {
		return nil, false
	}
	return d.ParserOptions.Get(key)
}

// AddPlugins appends plugin short-names, skipping ones already present.
func (d *Document) AddPlugins(names ...string) {
	for _, n := range names {
		if !d.HasPlugin(n) {
			d.Plugins = append(d.Plugins, n)
		}
	}
}

func (d *Document) HasPlugin(name string) bool {
	for _, p := range d.Plugins {
		if p == name {
			return true
		}
	}
	return false
}

// SetRule sets a single rule. An existing rule keeps its position but takes
// the new value.
func (d *Document) SetRule(name string, r Rule) {
	if d.Rules == nil {
		d.Rules = orderedmap.New[string, Rule]()
	}
	d.Rules.Set(name, r)
}

// MergeRules shallow-merges a table into the rules, last write wins.
func (d *Document) MergeRules(t RuleTable) {
	for _, nr := range t {
		d.SetRule(nr.Name, nr.Rule)
	}
}

// Rule returns the rule registered under name.
func (d *Document) Rule(name string) (Rule, bool) {
	if d.Rules == nil {
		return Rule{}, false
	}
	return d.Rules.Get(name)
}

// RuleNames returns rule names in insertion order.
func (d *Document) RuleNames() []string {
	var names []string
	if d.Rules == nil {
		return names
	}
	for p := d.Rules.Oldest(); p != nil; p = p.Next() {
		names = append(names, p.Key)
	}
	return names
}

// SetSetting stores a top-level settings entry.
func (d *Document) SetSetting(key string, value any) {
	if d.Settings == nil {
		d.Settings = map[string]any{}
	}
	d.Settings[key] = value
}
