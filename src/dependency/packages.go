// Package dependency derives the npm packages a generated configuration
// needs, installs them through the project's package manager and checks
// what is already present in node_modules.
package dependency

import (
	"github.com/sofmeright/eslintgen/src/options"
	"github.com/sofmeright/eslintgen/src/rules"
)

// Packages returns the development packages required by opts as an ordered,
// deduplicated list: eslint, the TypeScript toolchain, the framework and then
// every selected feature in declaration order.
func Packages(opts options.Options) []string {
	set := newOrderedSet("eslint")

	if opts.TypeScript {
		set.add(rules.TypeScript().Packages...)
	}

	if rules.NodeFamily(opts.Framework) {
		set.add(rules.Node().PackagesFor(opts.TypeScript)...)
	}
	set.add(rules.Framework(opts.Framework).PackagesFor(opts.TypeScript)...)

	for _, f := range opts.NormalizeFeatures() {
		set.add(rules.Feature(f).PackagesFor(opts.TypeScript)...)
	}
	return set.items
}

type orderedSet struct {
	items []string
	seen  map[string]struct{}
}

func newOrderedSet(items ...string) *orderedSet {
	s := &orderedSet{seen: make(map[string]struct{})}
	s.add(items...)
	return s
}

func (s *orderedSet) add(items ...string) {
	for _, it := range items {
		if _, ok := s.seen[it]; ok {
			continue
		}
		s.seen[it] = struct{}{}
		s.items = append(s.items, it)
	}
}
