package rules

import (
	"github.com/sofmeright/eslintgen/src/eslintrc"
	"github.com/sofmeright/eslintgen/src/options"
)

var (
	off  = eslintrc.LevelOff
	warn = eslintrc.LevelWarn
	errL = eslintrc.LevelError
	tup  = eslintrc.Tuple
	sev  = eslintrc.Severity
)

var baseRules = eslintrc.RuleTable{
	{"no-console", tup(warn)},
	{"no-debugger", tup(errL)},
	{"no-unused-vars", tup(warn)},
	{"no-undef", tup(errL)},
	{"no-var", tup(errL)},
	{"prefer-const", tup(warn)},
}

var typeScript = Profile{
	Extends: []string{"plugin:@typescript-eslint/recommended"},
	Parser:  TypeScriptParser,
	Plugins: []string{TypeScriptPlugin},
	Rules: eslintrc.RuleTable{
		{"@typescript-eslint/explicit-function-return-type", tup(warn)},
		{"@typescript-eslint/no-explicit-any", tup(warn)},
		{"@typescript-eslint/no-unused-vars", tup(warn)},
	},
	Packages: []string{"@typescript-eslint/parser", "@typescript-eslint/eslint-plugin"},
}

var node = Profile{
	Extends:  []string{"plugin:node/recommended"},
	Plugins:  []string{"node"},
	Packages: []string{"eslint-plugin-node"},
}

var frameworks = map[options.Framework]Profile{
	options.FrameworkNone: {},
	options.FrameworkReact: {
		Extends: []string{"plugin:react/recommended", "plugin:react-hooks/recommended"},
		Plugins: []string{"react", "react-hooks"},
		Rules: eslintrc.RuleTable{
			{"react/prop-types", tup(off)},
			{"react/react-in-jsx-scope", tup(off)},
			{"react-hooks/rules-of-hooks", tup(errL)},
			{"react-hooks/exhaustive-deps", tup(warn)},
		},
		Settings: map[string]any{"react": map[string]any{"version": "detect"}},
		Packages: []string{"eslint-plugin-react", "eslint-plugin-react-hooks"},
	},
	options.FrameworkVue: {
		Extends: []string{"plugin:vue/vue3-recommended"},
		// Ships as a dependency of eslint-plugin-vue.
		Parser:  "vue-eslint-parser",
		Plugins: []string{"vue"},
		Rules: eslintrc.RuleTable{
			{"vue/no-unused-components", tup(warn)},
			{"vue/multi-word-component-names", tup(warn)},
			{"vue/no-v-html", tup(warn)},
		},
		Packages: []string{"eslint-plugin-vue"},
	},
	options.FrameworkNext: {
		Extends:           []string{"next"},
		TypeScriptExtends: []string{"next/core-web-vitals"},
		Packages:          []string{"eslint-config-next"},
	},
	// Express builds on the Node.js profile and adds these overrides.
	options.FrameworkExpress: {
		Rules: eslintrc.RuleTable{
			{"node/exports-style", tup(errL, "module.exports")},
			{"node/file-extension-in-import", tup(errL, "always")},
			{"node/prefer-global/buffer", tup(errL, "always")},
			{"node/prefer-global/console", tup(errL, "always")},
			{"node/prefer-global/process", tup(errL, "always")},
			{"node/prefer-global/url-search-params", tup(errL, "always")},
			{"node/prefer-global/url", tup(errL, "always")},
			{"node/prefer-promises/dns", sev(errL)},
			{"node/prefer-promises/fs", sev(errL)},
		},
	},
	options.FrameworkNode: {},
	options.FrameworkAngular: {
		Extends: []string{"plugin:@angular-eslint/recommended"},
		Plugins: []string{"@angular-eslint"},
		Rules: eslintrc.RuleTable{
			{"@angular-eslint/component-selector", tup(errL)},
			{"@angular-eslint/directive-selector", tup(errL)},
			{"@angular-eslint/no-empty-lifecycle-method", tup(warn)},
		},
		Packages: []string{"@angular-eslint/eslint-plugin"},
	},
	options.FrameworkSvelte: {
		Extends: []string{"plugin:svelte/recommended"},
		Plugins: []string{"svelte"},
		Rules: eslintrc.RuleTable{
			{"svelte/valid-compile", tup(errL)},
			{"svelte/no-unused-svelte-ignore", tup(warn)},
			{"svelte/html-quotes", tup(warn)},
		},
		Packages: []string{"eslint-plugin-svelte"},
	},
	// Nuxt only registers its plugin.
	options.FrameworkNuxt: {
		Plugins:  []string{"@nuxtjs"},
		Packages: []string{"@nuxtjs/eslint-plugin"},
	},
}

var features = map[options.Feature]Profile{
	options.FeaturePrettier: {
		Extends: []string{"prettier"},
		Plugins: []string{"prettier"},
		Rules: eslintrc.RuleTable{
			{"prettier/prettier", sev(errL)},
		},
		Packages: []string{"eslint-plugin-prettier", "eslint-config-prettier", "prettier"},
	},
	options.FeatureImport: {
		Extends:           []string{"plugin:import/errors"},
		TypeScriptExtends: []string{"plugin:import/typescript"},
		Plugins:           []string{"import"},
		Packages:          []string{"eslint-plugin-import"},
	},
	options.FeatureJest: {
		Extends:  []string{"plugin:jest/recommended"},
		Plugins:  []string{"jest"},
		Packages: []string{"eslint-plugin-jest"},
	},
	options.FeatureA11y: {
		Extends: []string{"plugin:jsx-a11y/recommended"},
		Plugins: []string{"jsx-a11y"},
		Rules: eslintrc.RuleTable{
			{"jsx-a11y/alt-text", tup(errL)},
			{"jsx-a11y/aria-props", tup(errL)},
			{"jsx-a11y/aria-role", tup(errL)},
			{"vue-a11y/alt-text", tup(errL)},
		},
		Packages: []string{"eslint-plugin-jsx-a11y"},
	},
	options.FeaturePerformance: {
		Extends: []string{"plugin:performance/recommended"},
		Plugins: []string{"performance"},
		Rules: eslintrc.RuleTable{
			{"performance/no-array-push-push", tup(warn)},
			{"performance/no-delete", tup(warn)},
			{"performance/no-global-handle", tup(warn)},
		},
		Packages: []string{"eslint-plugin-performance"},
	},
	options.FeatureSecurity: {
		Extends: []string{"plugin:security/recommended"},
		Plugins: []string{"security"},
		Rules: eslintrc.RuleTable{
			{"security/detect-eval-with-expression", tup(errL)},
			{"security/detect-non-literal-regexp", tup(warn)},
			{"security/detect-unsafe-regex", tup(errL)},
		},
		Packages: []string{"eslint-plugin-security"},
	},
	// State libraries only register their plugin.
	options.FeatureRedux: {
		Plugins:  []string{"react-redux"},
		Packages: []string{"eslint-plugin-react-redux"},
	},
	options.FeatureMobX: {
		Plugins:  []string{"mobx"},
		Packages: []string{"eslint-plugin-mobx"},
	},
	options.FeaturePinia: {
		Plugins:  []string{"pinia"},
		Packages: []string{"eslint-plugin-pinia"},
	},
	// Style guides are shareable configs, so they extend instead of
	// registering a plugin.
	options.FeatureAirbnbStyle: {
		Extends:           []string{"airbnb"},
		TypeScriptExtends: []string{"airbnb-typescript"},
		Packages:          []string{"eslint-config-airbnb", "eslint-config-airbnb-typescript"},
	},
	options.FeatureGoogleStyle: {
		Extends:  []string{"google"},
		Packages: []string{"eslint-config-google"},
	},
	options.FeatureStandardStyle: {
		Extends:  []string{"standard"},
		Packages: []string{"eslint-config-standard"},
	},
}
