package presets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofmeright/eslintgen/src/generator"
	"github.com/sofmeright/eslintgen/src/options"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"react-typescript", "react-js", "vue-modern", "node-backend", "next-app"}, Names())
}

func TestEveryPresetGenerates(t *testing.T) {
	all, err := All()
	require.NoError(t, err)
	for _, p := range all {
		t.Run(p.Name, func(t *testing.T) {
			assert.NotEmpty(t, p.Description)
			_, err := generator.Generate(p.Options)
			assert.NoError(t, err)
		})
	}
}

func TestGet(t *testing.T) {
	opts, err := Get("node-backend")
	require.NoError(t, err)
	assert.Equal(t, options.EnvNode, opts.Environment)
	assert.Equal(t, options.FrameworkNode, opts.Framework)
	assert.Equal(t, 120, opts.Style.MaxLineLength)
	assert.Equal(t, []options.Feature{options.FeatureImport, options.FeatureJest, options.FeatureSecurity, options.FeatureGoogleStyle}, opts.Features)

	_, err = Get("angular-enterprise")
	assert.ErrorContains(t, err, `unknown preset "angular-enterprise"`)
}

func TestGetReturnsCopies(t *testing.T) {
	a, err := Get("vue-modern")
	require.NoError(t, err)
	a.Features[0] = options.FeatureMobX
	a.Style.Semicolons = options.SemicolonsAlways

	b, err := Get("vue-modern")
	require.NoError(t, err)
	assert.Equal(t, options.FeaturePrettier, b.Features[0])
	assert.Equal(t, options.SemicolonsNever, b.Style.Semicolons)
}

func TestDecodeAppliesDefaults(t *testing.T) {
	ps, err := decode([]byte("- name: minimal\n  options:\n    framework: svelte\n"))
	require.NoError(t, err)
	require.Len(t, ps, 1)

	want := options.Default()
	want.Framework = options.FrameworkSvelte
	assert.Equal(t, want, ps[0].Options)
}

func TestDecodeRejectsBadPresets(t *testing.T) {
	_, err := decode([]byte("- name: a\n- name: a\n"))
	assert.ErrorContains(t, err, "duplicate")

	_, err = decode([]byte("- name: bad\n  options:\n    framework: ember\n"))
	assert.ErrorContains(t, err, "preset bad")
}
