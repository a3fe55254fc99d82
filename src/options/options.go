// Package options models the answers that drive configuration generation:
// closed enumerations for every choice plus the composite Options record.
package options

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Style holds the code-style preferences that become base style rules.
type Style struct {
	Indent        Indent             `yaml:"indent" json:"indent" toml:"indent" validate:"indent"`
	Quotes        QuoteStyle         `yaml:"quotes" json:"quotes" toml:"quotes" validate:"oneof=single double both-single both-double"`
	Semicolons    SemicolonStyle     `yaml:"semicolons" json:"semicolons" toml:"semicolons" validate:"oneof=always never"`
	TrailingComma TrailingCommaStyle `yaml:"trailingComma" json:"trailingComma" toml:"trailingComma" validate:"oneof=none es5 all"`
	LineEnding    LineEndingStyle    `yaml:"lineEnding" json:"lineEnding" toml:"lineEnding" validate:"oneof=unix windows"`
	MaxLineLength int                `yaml:"maxLineLength" json:"maxLineLength" toml:"maxLineLength" validate:"gt=0"`
}

// Options is the single input to generation.
type Options struct {
	ConfigFormat Format      `yaml:"configFormat" json:"configFormat" toml:"configFormat"`
	Environment  Environment `yaml:"environment" json:"environment" toml:"environment" validate:"oneof=browser node both"`
	TypeScript   bool        `yaml:"typescript" json:"typescript" toml:"typescript"`
	Framework    Framework   `yaml:"framework" json:"framework" toml:"framework" validate:"oneof=react vue next express node angular svelte nuxt none"`
	Features     []Feature   `yaml:"features" json:"features" toml:"features" validate:"dive,oneof=prettier import jest a11y performance security redux mobx pinia airbnb-style google-style standard-style"`
	Style        Style       `yaml:"style" json:"style" toml:"style"`
}

// Default returns the baseline record used when nothing else is known.
// Every call returns an independent copy.
func Default() Options {
	return Options{
		ConfigFormat: FormatJSON,
		Environment:  EnvBrowser,
		TypeScript:   false,
		Framework:    FrameworkNone,
		Features:     []Feature{},
		Style: Style{
			Indent:        2,
			Quotes:        QuotesSingle,
			Semicolons:    SemicolonsAlways,
			TrailingComma: TrailingCommaES5,
			LineEnding:    LineEndingUnix,
			MaxLineLength: 80,
		},
	}
}

// Clone returns a deep copy.
func (o Options) Clone() Options {
	c := o
	c.Features = append([]Feature{}, o.Features...)
	return c
}

// HasFeature reports whether f was selected.
func (o Options) HasFeature(f Feature) bool {
	for _, sel := range o.Features {
		if sel == f {
			return true
		}
	}
	return false
}

// NormalizeFeatures returns the selected features deduplicated and in
// declaration order. Unknown values are dropped; Validate reports them.
func (o Options) NormalizeFeatures() []Feature {
	out := make([]Feature, 0, len(o.Features))
	for _, f := range Features {
		if o.HasFeature(f) {
			out = append(out, f)
		}
	}
	return out
}

// InvalidFormatError reports a configFormat outside the closed set.
type InvalidFormatError struct {
	Value string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid configuration format %q (supported: json, javascript, yaml)", e.Value)
}

// ValidationError lists every field that holds a value outside its closed set.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid options: " + strings.Join(e.Problems, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("indent", func(fl validator.FieldLevel) bool {
		return Indent(fl.Field().Int()).Valid()
	})
	return v
}

// Validate checks every enum field against its closed set. A bad format is
// reported as *InvalidFormatError; anything else as *ValidationError.
func (o Options) Validate() error {
	if !o.ConfigFormat.Valid() {
		return &InvalidFormatError{Value: string(o.ConfigFormat)}
	}

	err := validate.Struct(o)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating options: %w", err)
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "Options.")
		switch fe.Tag() {
		case "gt":
			problems = append(problems, fmt.Sprintf("%s: must be a positive integer, got %v", field, fe.Value()))
		case "indent":
			problems = append(problems, fmt.Sprintf("%s: must be a positive width or \"tab\", got %v", field, fe.Value()))
		default:
			problems = append(problems, fmt.Sprintf("%s: unknown value %q (supported: %s)", field, fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", ")))
		}
	}
	return &ValidationError{Problems: problems}
}
