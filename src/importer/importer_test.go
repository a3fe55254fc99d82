package importer

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofmeright/eslintgen/src/eslintrc"
	"github.com/sofmeright/eslintgen/src/generator"
	"github.com/sofmeright/eslintgen/src/options"
	"github.com/sofmeright/eslintgen/src/presets"
	"github.com/sofmeright/eslintgen/src/rules"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDiscoverPriority(t *testing.T) {
	dir := t.TempDir()

	_, ok := Discover(dir)
	assert.False(t, ok)

	writeFile(t, dir, ".eslintrc.yml", "root: true\n")
	path, ok := Discover(dir)
	require.True(t, ok)
	assert.Equal(t, ".eslintrc.yml", filepath.Base(path))

	writeFile(t, dir, ".eslintrc.js", "module.exports = {};\n")
	writeFile(t, dir, ".eslintrc.json", "{}")
	path, ok = Discover(dir)
	require.True(t, ok)
	assert.Equal(t, ".eslintrc.json", filepath.Base(path))
}

func TestRoundTripThroughEveryFormat(t *testing.T) {
	opts := options.Default()
	opts.Environment = options.EnvBoth
	opts.TypeScript = true
	opts.Framework = options.FrameworkReact
	opts.Features = []options.Feature{options.FeaturePrettier, options.FeatureJest, options.FeatureRedux}
	opts.Style = options.Style{
		Indent:        4,
		Quotes:        options.QuotesBothDouble,
		Semicolons:    options.SemicolonsNever,
		TrailingComma: options.TrailingCommaAll,
		LineEnding:    options.LineEndingWindows,
		MaxLineLength: 120,
	}

	doc, err := generator.Generate(opts)
	require.NoError(t, err)

	dir := t.TempDir()
	for _, format := range options.Formats {
		t.Run(string(format), func(t *testing.T) {
			text, name, err := eslintrc.Render(doc, format)
			require.NoError(t, err)
			path := writeFile(t, dir, name, text)

			tree, err := ParseFile(path)
			require.NoError(t, err)

			got := Import(tree)
			got.ConfigFormat = format
			want := opts.Clone()
			want.ConfigFormat = format
			assert.Equal(t, want, got)
		})
	}
}

func TestRoundTripEveryPreset(t *testing.T) {
	all, err := presets.All()
	require.NoError(t, err)
	require.NotEmpty(t, all)

	dir := t.TempDir()
	for _, p := range all {
		t.Run(p.Name, func(t *testing.T) {
			doc, err := generator.Generate(p.Options)
			require.NoError(t, err)
			text, name, err := eslintrc.Render(doc, options.FormatJSON)
			require.NoError(t, err)

			tree, err := ParseFile(writeFile(t, dir, name, text))
			require.NoError(t, err)
			got := Import(tree)

			want := p.Options.Clone()
			want.ConfigFormat = options.FormatJSON
			want.Features = p.Options.NormalizeFeatures()
			if rules.Framework(p.Options.Framework).Parser != "" {
				// The framework parser hides the TypeScript one.
				want.TypeScript = false
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestImportStateLibraryAloneHasNoFramework(t *testing.T) {
	for _, f := range []options.Feature{options.FeatureRedux, options.FeatureMobX, options.FeaturePinia} {
		t.Run(string(f), func(t *testing.T) {
			opts := options.Default()
			opts.Features = []options.Feature{f}
			doc, err := generator.Generate(opts)
			require.NoError(t, err)
			text, name, err := eslintrc.Render(doc, options.FormatJSON)
			require.NoError(t, err)

			tree, err := ParseFile(writeFile(t, t.TempDir(), name, text))
			require.NoError(t, err)
			got := Import(tree)
			assert.Equal(t, options.FrameworkNone, got.Framework)
			assert.Equal(t, []options.Feature{f}, got.Features)
		})
	}
}

func TestImportTypeScriptAsymmetry(t *testing.T) {
	opts := options.Default()
	opts.TypeScript = true
	opts.Framework = options.FrameworkVue

	doc, err := generator.Generate(opts)
	require.NoError(t, err)
	text, _, err := eslintrc.Render(doc, options.FormatJSON)
	require.NoError(t, err)

	tree, err := ParseFile(writeFile(t, t.TempDir(), ".eslintrc.json", text))
	require.NoError(t, err)

	got := Import(tree)
	assert.Equal(t, options.FrameworkVue, got.Framework)
	// The parser is vue-eslint-parser, so TypeScript is not recognized.
	assert.False(t, got.TypeScript)
}

func TestImportFrameworkPriority(t *testing.T) {
	tests := []struct {
		name    string
		extends any
		rules   map[string]any
		want    options.Framework
	}{
		{"react beats vue", []any{"plugin:vue/vue3-recommended", "plugin:react/recommended"}, nil, options.FrameworkReact},
		{"single string", "next", nil, options.FrameworkNext},
		{"angular", []any{"plugin:@angular-eslint/recommended"}, nil, options.FrameworkAngular},
		{"nuxt", []any{"@nuxtjs", "plugin:nuxt/recommended"}, nil, options.FrameworkNuxt},
		{"redux config is not react", []any{"plugin:react-redux/recommended"}, nil, options.FrameworkNone},
		{"vue-a11y is not vue", []any{"plugin:vue-a11y/recommended"}, nil, options.FrameworkNone},
		{"node", []any{"plugin:node/recommended"}, nil, options.FrameworkNode},
		{"express", []any{"plugin:node/recommended"}, map[string]any{"node/exports-style": []any{"error", "module.exports"}}, options.FrameworkExpress},
		{"next beats node", []any{"plugin:node/recommended", "next"}, nil, options.FrameworkNext},
		{"nothing", []any{"eslint:recommended"}, nil, options.FrameworkNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := map[string]any{"extends": tt.extends}
			if tt.rules != nil {
				doc["rules"] = tt.rules
			}
			assert.Equal(t, tt.want, Import(doc).Framework)
		})
	}
}

func TestImportByPlugin(t *testing.T) {
	got := Import(map[string]any{
		"plugins": []any{"@nuxtjs", "pinia", "mobx"},
	})
	assert.Equal(t, options.FrameworkNuxt, got.Framework)
	assert.Equal(t, []options.Feature{options.FeatureMobX, options.FeaturePinia}, got.Features)

	// Plugin short-names of frameworks are not enough on their own.
	got = Import(map[string]any{"plugins": []any{"react", "vue"}})
	assert.Equal(t, options.FrameworkNone, got.Framework)
}

func TestImportLeavesDefaultsForUnknownValues(t *testing.T) {
	got := Import(map[string]any{
		"env": map[string]any{"browser": false, "node": false},
		"rules": map[string]any{
			"indent":          "error",
			"quotes":          []any{"error", "backtick"},
			"semi":            []any{"error", "sometimes"},
			"comma-dangle":    []any{"error", "always-multiline"},
			"linebreak-style": []any{"error", "mac"},
			"max-len":         []any{"error", 100},
		},
	})

	want := options.Default()
	want.Style.TrailingComma = options.TrailingCommaES5
	want.Style.MaxLineLength = 100
	assert.Equal(t, want, got)
}

func TestImportEnvironment(t *testing.T) {
	assert.Equal(t, options.EnvNode, Import(map[string]any{"env": map[string]any{"node": true}}).Environment)
	assert.Equal(t, options.EnvBoth, Import(map[string]any{"env": map[string]any{"node": true, "browser": true}}).Environment)
	assert.Equal(t, options.EnvBrowser, Import(map[string]any{}).Environment)
}

func TestParseFileErrors(t *testing.T) {
	dir := t.TempDir()

	for name, content := range map[string]string{
		".eslintrc.json": "{not json",
		".eslintrc.js":   "module.exports = require('./base');\n",
		".eslintrc.yaml": "- just\n- a list\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseFile(writeFile(t, dir, name, content))
			var perr *ImportParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, name, filepath.Base(perr.Path))
		})
	}
}

func TestParseFileHandWrittenModule(t *testing.T) {
	src := `// Project lint settings.
'use strict';

const path = require('path');

/* Shared by every package. */
module.exports = {
  root: true,
  env: { node: true, browser: true },
  extends: [
    'plugin:vue/vue3-recommended',
    "plugin:jest/recommended", // tests
  ],
  plugins: ['vue', 'pinia',],
  rules: {
    quotes: ['error', 'double', { avoidEscape: true }],
    'max-len': ['error', { code: 110, ignoreUrls: true }],
    'no-restricted-syntax': ['error', { selector: 'WithStatement', message: "Don't use with" }],
    'no-alert': 'off',
    'comma-dangle': ['error', 'always-multiline'],
    indent: ['error', 4],
  },
};
`
	tree, err := ParseFile(writeFile(t, t.TempDir(), ".eslintrc.js", src))
	require.NoError(t, err)

	got := Import(tree)
	assert.Equal(t, options.EnvBoth, got.Environment)
	assert.Equal(t, options.FrameworkVue, got.Framework)
	assert.Equal(t, []options.Feature{options.FeatureJest, options.FeaturePinia}, got.Features)
	assert.Equal(t, options.QuotesBothDouble, got.Style.Quotes)
	assert.Equal(t, 110, got.Style.MaxLineLength)
	assert.Equal(t, options.TrailingCommaES5, got.Style.TrailingComma)
	assert.Equal(t, options.Indent(4), got.Style.Indent)
}

func TestParseFileESModule(t *testing.T) {
	src := "export default {\n  env: { browser: true },\n  extends: ['next'],\n}\n"
	tree, err := ParseFile(writeFile(t, t.TempDir(), ".eslintrc.js", src))
	require.NoError(t, err)
	assert.Equal(t, options.FrameworkNext, Import(tree).Framework)
}

func TestImportFileFallsBackToDefaults(t *testing.T) {
	var buf bytes.Buffer
	im := New(hclog.New(&hclog.LoggerOptions{Output: &buf}))

	path := writeFile(t, t.TempDir(), ".eslintrc.json", `{"env": {"node": tru`)
	assert.Equal(t, options.Default(), im.ImportFile(path))
	assert.Contains(t, buf.String(), "could not import existing configuration")
}

func TestImportFileExtensionless(t *testing.T) {
	path := writeFile(t, t.TempDir(), ".eslintrc", `{"env": {"node": true}, "extends": ["plugin:jest/recommended"]}`)
	got := New(nil).ImportFile(path)
	assert.Equal(t, options.EnvNode, got.Environment)
	assert.Equal(t, []options.Feature{options.FeatureJest}, got.Features)
}
