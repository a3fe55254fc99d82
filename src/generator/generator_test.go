package generator

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofmeright/eslintgen/src/eslintrc"
	"github.com/sofmeright/eslintgen/src/options"
)

func mustGenerate(t *testing.T, opts options.Options) *eslintrc.Document {
	t.Helper()
	doc, err := Generate(opts)
	require.NoError(t, err)
	return doc
}

func ruleValue(t *testing.T, doc *eslintrc.Document, name string) any {
	t.Helper()
	r, ok := doc.Rule(name)
	require.True(t, ok, "rule %s missing", name)
	return r.Value()
}

func TestGenerateDefaults(t *testing.T) {
	doc := mustGenerate(t, options.Default())

	assert.True(t, doc.Root)
	assert.Equal(t, []string{"browser"}, doc.EnvNames())
	assert.Equal(t, []any{"error", 2}, ruleValue(t, doc, "indent"))
	assert.Equal(t, []any{"error", "single", map[string]any{"avoidEscape": false}}, ruleValue(t, doc, "quotes"))
	assert.Equal(t, []any{"error", "always"}, ruleValue(t, doc, "semi"))
	assert.Equal(t, []any{"error", "es5"}, ruleValue(t, doc, "comma-dangle"))
	assert.Equal(t, []any{"error", map[string]any{"code": 80}}, ruleValue(t, doc, "max-len"))
	assert.Equal(t, []any{"error", "unix"}, ruleValue(t, doc, "linebreak-style"))
	assert.Empty(t, doc.Parser)
	assert.Empty(t, doc.Plugins)
	assert.Empty(t, doc.Extends)

	// Parser options are added on top of the base rules so modern syntax
	// and ES modules parse without an env entry.
	v, ok := doc.ParserOption("ecmaVersion")
	require.True(t, ok)
	assert.Equal(t, "latest", v)
	v, ok = doc.ParserOption("sourceType")
	require.True(t, ok)
	assert.Equal(t, "module", v)
	assert.False(t, doc.HasEnv("es2021"))
}

func TestGenerateIsDeterministic(t *testing.T) {
	opts := options.Default()
	opts.TypeScript = true
	opts.Framework = options.FrameworkReact
	opts.Features = []options.Feature{options.FeatureJest, options.FeaturePrettier, options.FeatureA11y}

	for _, format := range options.Formats {
		t.Run(string(format), func(t *testing.T) {
			first, _, err := eslintrc.Render(mustGenerate(t, opts), format)
			require.NoError(t, err)
			second, _, err := eslintrc.Render(mustGenerate(t, opts), format)
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestGenerateEnvironment(t *testing.T) {
	tests := []struct {
		env  options.Environment
		want []string
	}{
		{options.EnvBrowser, []string{"browser"}},
		{options.EnvNode, []string{"node"}},
		{options.EnvBoth, []string{"browser", "node"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.env), func(t *testing.T) {
			opts := options.Default()
			opts.Environment = tt.env
			doc := mustGenerate(t, opts)

			assert.Equal(t, tt.want, doc.EnvNames())
			for _, name := range tt.want {
				assert.True(t, doc.HasEnv(name))
			}
		})
	}
}

func TestGenerateTypeScript(t *testing.T) {
	opts := options.Default()

	doc := mustGenerate(t, opts)
	assert.Empty(t, doc.Parser)
	assert.False(t, doc.HasPlugin("@typescript-eslint"))

	opts.TypeScript = true
	doc = mustGenerate(t, opts)
	assert.Equal(t, "@typescript-eslint/parser", doc.Parser)
	assert.True(t, doc.HasPlugin("@typescript-eslint"))
	assert.Contains(t, doc.Extends, "plugin:@typescript-eslint/recommended")
}

func TestGenerateReactTypeScriptOrder(t *testing.T) {
	opts := options.Default()
	opts.TypeScript = true
	opts.Framework = options.FrameworkReact
	doc := mustGenerate(t, opts)

	ts := indexOf(doc.Extends, "plugin:@typescript-eslint/recommended")
	react := indexOf(doc.Extends, "plugin:react/recommended")
	require.GreaterOrEqual(t, ts, 0)
	require.GreaterOrEqual(t, react, 0)
	assert.Less(t, ts, react)

	assert.Equal(t, map[string]any{"version": "detect"}, doc.Settings["react"])
}

func TestGeneratePrettier(t *testing.T) {
	opts := options.Default()
	before := mustGenerate(t, opts)

	opts.Features = []options.Feature{options.FeaturePrettier}
	doc := mustGenerate(t, opts)

	assert.Len(t, doc.Extends, len(before.Extends)+1)
	assert.Equal(t, "error", ruleValue(t, doc, "prettier/prettier"))
}

func TestGenerateFeatureOrderIgnoresSelectionOrder(t *testing.T) {
	a := options.Default()
	a.Features = []options.Feature{options.FeatureSecurity, options.FeatureJest, options.FeaturePrettier}
	b := options.Default()
	b.Features = []options.Feature{options.FeaturePrettier, options.FeatureSecurity, options.FeatureJest, options.FeatureJest}

	docA := mustGenerate(t, a)
	docB := mustGenerate(t, b)
	assert.Equal(t, docA.Extends, docB.Extends)
	assert.Equal(t, []string{"prettier", "plugin:jest/recommended", "plugin:security/recommended"}, docA.Extends)
}

func TestGenerateImportTypeScriptExtends(t *testing.T) {
	opts := options.Default()
	opts.Features = []options.Feature{options.FeatureImport}
	assert.Equal(t, []string{"plugin:import/errors"}, mustGenerate(t, opts).Extends)

	opts.TypeScript = true
	assert.Contains(t, mustGenerate(t, opts).Extends, "plugin:import/typescript")
}

func TestGenerateFrameworks(t *testing.T) {
	t.Run("express layers node overrides", func(t *testing.T) {
		opts := options.Default()
		opts.Framework = options.FrameworkExpress
		doc := mustGenerate(t, opts)

		assert.Contains(t, doc.Extends, "plugin:node/recommended")
		assert.True(t, doc.HasPlugin("node"))
		assert.Equal(t, []any{"error", "module.exports"}, ruleValue(t, doc, "node/exports-style"))
	})

	t.Run("plain node has no overrides", func(t *testing.T) {
		opts := options.Default()
		opts.Framework = options.FrameworkNode
		doc := mustGenerate(t, opts)

		assert.Equal(t, []string{"plugin:node/recommended"}, doc.Extends)
		_, ok := doc.Rule("node/exports-style")
		assert.False(t, ok)
	})

	t.Run("next adds core web vitals only with typescript", func(t *testing.T) {
		opts := options.Default()
		opts.Framework = options.FrameworkNext
		assert.Equal(t, []string{"next"}, mustGenerate(t, opts).Extends)

		opts.TypeScript = true
		assert.Contains(t, mustGenerate(t, opts).Extends, "next/core-web-vitals")
	})

	t.Run("vue keeps typescript parser for scripts", func(t *testing.T) {
		opts := options.Default()
		opts.Framework = options.FrameworkVue
		opts.TypeScript = true
		doc := mustGenerate(t, opts)

		assert.Equal(t, "vue-eslint-parser", doc.Parser)
		v, ok := doc.ParserOption("parser")
		require.True(t, ok)
		assert.Equal(t, "@typescript-eslint/parser", v)
	})

	t.Run("vue without typescript", func(t *testing.T) {
		opts := options.Default()
		opts.Framework = options.FrameworkVue
		doc := mustGenerate(t, opts)

		_, ok := doc.ParserOption("parser")
		assert.False(t, ok)
	})
}

func TestGenerateLastWriteWins(t *testing.T) {
	opts := options.Default()
	opts.TypeScript = true
	doc := mustGenerate(t, opts)

	// The typescript stage adds its own variant next to the base rule.
	assert.Equal(t, []any{"warn"}, ruleValue(t, doc, "no-unused-vars"))
	assert.Equal(t, []any{"warn"}, ruleValue(t, doc, "@typescript-eslint/no-unused-vars"))

	// Custom rules run last of all and replace values in place.
	custom := eslintrc.RuleTable{
		{Name: "no-unused-vars", Rule: eslintrc.Severity(eslintrc.LevelOff)},
		{Name: "quotes", Rule: eslintrc.Tuple(eslintrc.LevelError, "double")},
	}
	doc, err := New(nil).WithCustomRules(custom).Generate(opts)
	require.NoError(t, err)
	assert.Equal(t, "off", ruleValue(t, doc, "no-unused-vars"))
	assert.Equal(t, 2, indexOf(doc.RuleNames(), "no-unused-vars"))
	assert.Equal(t, []any{"error", "double"}, ruleValue(t, doc, "quotes"))
}

func TestGenerateConflictingStyleGuides(t *testing.T) {
	var buf bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{Output: &buf, Level: hclog.Warn})

	opts := options.Default()
	opts.Features = []options.Feature{options.FeatureStandardStyle, options.FeatureAirbnbStyle}

	doc, err := New(logger).Generate(opts)
	require.NoError(t, err)
	require.NotNil(t, doc)

	assert.Contains(t, buf.String(), "Conflicting style guides selected")
	assert.Equal(t, []string{"airbnb", "standard"}, doc.Extends)
	assert.Equal(t, []options.Feature{options.FeatureAirbnbStyle, options.FeatureStandardStyle}, Conflicts(opts))
}

func TestGenerateSingleStyleGuideDoesNotWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{Output: &buf, Level: hclog.Warn})

	opts := options.Default()
	opts.TypeScript = true
	opts.Features = []options.Feature{options.FeatureAirbnbStyle}

	doc, err := New(logger).Generate(opts)
	require.NoError(t, err)
	assert.Empty(t, buf.String())
	assert.Nil(t, Conflicts(opts))
	assert.Contains(t, doc.Extends, "airbnb-typescript")
}

func TestGenerateQuoteStyles(t *testing.T) {
	tests := []struct {
		quotes options.QuoteStyle
		want   []any
	}{
		{options.QuotesSingle, []any{"error", "single", map[string]any{"avoidEscape": false}}},
		{options.QuotesDouble, []any{"error", "double", map[string]any{"avoidEscape": false}}},
		{options.QuotesBothSingle, []any{"error", "single", map[string]any{"avoidEscape": true}}},
		{options.QuotesBothDouble, []any{"error", "double", map[string]any{"avoidEscape": true}}},
	}
	for _, tt := range tests {
		t.Run(string(tt.quotes), func(t *testing.T) {
			opts := options.Default()
			opts.Style.Quotes = tt.quotes
			assert.Equal(t, tt.want, ruleValue(t, mustGenerate(t, opts), "quotes"))
		})
	}
}

func TestGenerateTabIndent(t *testing.T) {
	opts := options.Default()
	opts.Style.Indent = options.IndentTab
	assert.Equal(t, []any{"error", "tab"}, ruleValue(t, mustGenerate(t, opts), "indent"))
}

func TestGenerateRejectsInvalidOptions(t *testing.T) {
	opts := options.Default()
	opts.ConfigFormat = "toml"
	_, err := Generate(opts)
	var formatErr *options.InvalidFormatError
	require.True(t, errors.As(err, &formatErr))
	assert.Equal(t, "toml", formatErr.Value)

	opts = options.Default()
	opts.Framework = "ember"
	_, err = Generate(opts)
	var verr *options.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Problems, 1)
}

func TestGenerateDoesNotShareState(t *testing.T) {
	opts := options.Default()
	opts.Framework = options.FrameworkReact

	first := mustGenerate(t, opts)
	first.SetSetting("react", "mutated")
	first.AddExtends("mutated")

	second := mustGenerate(t, opts)
	assert.Equal(t, map[string]any{"version": "detect"}, second.Settings["react"])
	assert.NotContains(t, second.Extends, "mutated")
}

func TestGenerateRendersBrowserExample(t *testing.T) {
	text, name, err := eslintrc.Render(mustGenerate(t, options.Default()), options.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, ".eslintrc.json", name)

	var tree map[string]any
	require.NoError(t, json.Unmarshal([]byte(text), &tree))
	assert.Equal(t, map[string]any{"browser": true}, tree["env"])
	assert.NotContains(t, tree, "parser")
	assert.NotContains(t, tree, "plugins")
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
