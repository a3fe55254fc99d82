// Package prompt runs the interactive question flow with huh forms.
//
// Each form is built by an exported constructor that only binds fields to
// caller-owned values, so the flow can be inspected without a terminal.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"

	"github.com/sofmeright/eslintgen/src/options"
	"github.com/sofmeright/eslintgen/src/output"
	"github.com/sofmeright/eslintgen/src/presets"
)

// ErrAborted is returned when the user cancels a form.
var ErrAborted = huh.ErrUserAborted

// Answers is the outcome of one interactive session.
type Answers struct {
	UsePreset bool
	Preset    string
	Options   options.Options
	Preview   bool
	Install   bool
}

// Prompter asks the questions. The zero value is not usable; call New.
type Prompter struct {
	In         io.Reader
	Out        io.Writer
	Accessible bool
	Presets    []presets.Preset

	// PreviewDefault and InstallDefault pre-select the closing questions.
	PreviewDefault bool
	InstallDefault bool
}

// New returns a prompter on the process terminal. Accessible mode is
// selected when stdin or stdout is not a terminal.
func New() (*Prompter, error) {
	list, err := presets.All()
	if err != nil {
		return nil, err
	}
	return &Prompter{
		In:             os.Stdin,
		Out:            os.Stdout,
		Accessible:     !output.IsInteractive(),
		Presets:        list,
		PreviewDefault: true,
		InstallDefault: true,
	}, nil
}

// Run asks the full question flow. defaults pre-fills the manual answers,
// which lets an imported configuration serve as the starting point.
func (p *Prompter) Run(ctx context.Context, defaults options.Options) (Answers, error) {
	ans := Answers{
		Options: defaults.Clone(),
		Preview: p.PreviewDefault,
		Install: p.InstallDefault,
	}

	if len(p.Presets) > 0 {
		if err := p.run(ctx, ModeForm(&ans.UsePreset)); err != nil {
			return ans, err
		}
	}

	if ans.UsePreset {
		ans.Preset = p.Presets[0].Name
		if err := p.run(ctx, PresetForm(p.Presets, &ans.Preset)); err != nil {
			return ans, err
		}
		opts, err := presets.Get(ans.Preset)
		if err != nil {
			return ans, err
		}
		ans.Options = opts
	}

	if err := p.run(ctx, FormatForm(&ans.Options.ConfigFormat)); err != nil {
		return ans, err
	}

	if !ans.UsePreset {
		if err := p.run(ctx, ProjectForm(&ans.Options)); err != nil {
			return ans, err
		}
		maxLen := strconv.Itoa(ans.Options.Style.MaxLineLength)
		if err := p.run(ctx, StyleForm(&ans.Options.Style, &maxLen)); err != nil {
			return ans, err
		}
		n, err := parseMaxLineLength(maxLen)
		if err != nil {
			return ans, err
		}
		ans.Options.Style.MaxLineLength = n
	}

	if err := p.run(ctx, ConfirmForm("Would you like to preview the configuration before saving?", &ans.Preview)); err != nil {
		return ans, err
	}
	if err := p.run(ctx, ConfirmForm("Would you like to install the required dependencies?", &ans.Install)); err != nil {
		return ans, err
	}
	return ans, nil
}

// Confirm asks a single yes/no question.
func (p *Prompter) Confirm(ctx context.Context, title string, def bool) (bool, error) {
	v := def
	if err := p.run(ctx, ConfirmForm(title, &v)); err != nil {
		return def, err
	}
	return v, nil
}

// Spin runs action behind a spinner titled title and returns its error.
func (p *Prompter) Spin(ctx context.Context, title string, action func(context.Context) error) error {
	var actionErr error
	err := spinner.New().
		Title(title).
		Context(ctx).
		Accessible(p.Accessible).
		Action(func() { actionErr = action(ctx) }).
		Run()
	if actionErr != nil {
		return actionErr
	}
	return err
}

func (p *Prompter) run(ctx context.Context, form *huh.Form) error {
	form = form.WithAccessible(p.Accessible)
	if p.In != nil {
		form = form.WithInput(p.In)
	}
	if p.Out != nil {
		form = form.WithOutput(p.Out)
	}
	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return fmt.Errorf("prompt: %w", err)
	}
	return nil
}

// ModeForm asks whether to start from a preset.
func ModeForm(usePreset *bool) *huh.Form {
	return ConfirmForm("Would you like to use a preset configuration?", usePreset)
}

// PresetForm picks one preset by name.
func PresetForm(list []presets.Preset, name *string) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Which preset would you like to use?").
			Options(PresetOptions(list)...).
			Value(name),
	))
}

// FormatForm picks the output format.
func FormatForm(format *options.Format) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[options.Format]().
			Title("In which format would you like to receive the configuration?").
			Options(EnumOptions(options.Formats)...).
			Value(format),
	))
}

// ProjectForm asks for environment, TypeScript, framework and features.
func ProjectForm(opts *options.Options) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[options.Environment]().
			Title("What is your project environment?").
			Options(EnumOptions(options.Environments)...).
			Value(&opts.Environment),
		huh.NewConfirm().
			Title("Are you using TypeScript?").
			Value(&opts.TypeScript),
		huh.NewSelect[options.Framework]().
			Title("Which framework are you using?").
			Options(EnumOptions(options.Frameworks)...).
			Value(&opts.Framework),
		huh.NewMultiSelect[options.Feature]().
			Title("Which features would you like to use?").
			Options(FeatureOptions(opts.Features)...).
			Value(&opts.Features),
	))
}

// StyleForm asks the six code style questions. maxLen holds the line
// length as text and is validated with ValidateMaxLineLength.
func StyleForm(st *options.Style, maxLen *string) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[options.Indent]().
			Title("What should be the indentation size?").
			Options(EnumOptions(IndentValues(st.Indent))...).
			Value(&st.Indent),
		huh.NewSelect[options.QuoteStyle]().
			Title("Which quote style should be used for strings?").
			Options(EnumOptions(options.QuoteStyles)...).
			Value(&st.Quotes),
		huh.NewSelect[options.SemicolonStyle]().
			Title("How should semicolons be used?").
			Options(EnumOptions(options.SemicolonStyles)...).
			Value(&st.Semicolons),
		huh.NewSelect[options.TrailingCommaStyle]().
			Title("How should trailing commas be used?").
			Options(EnumOptions(options.TrailingCommaStyles)...).
			Value(&st.TrailingComma),
		huh.NewSelect[options.LineEndingStyle]().
			Title("What should be the line ending character?").
			Options(EnumOptions(options.LineEndingStyles)...).
			Value(&st.LineEnding),
		huh.NewInput().
			Title("What should be the maximum line length?").
			Value(maxLen).
			Validate(ValidateMaxLineLength),
	))
}

// ConfirmForm asks a yes/no question bound to v.
func ConfirmForm(title string, v *bool) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Affirmative("Yes").
			Negative("No").
			Value(v),
	))
}

type labeled interface {
	comparable
	Label() string
}

// EnumOptions turns enum values into select options keyed by their labels.
func EnumOptions[T labeled](values []T) []huh.Option[T] {
	out := make([]huh.Option[T], 0, len(values))
	for _, v := range values {
		out = append(out, huh.NewOption(v.Label(), v))
	}
	return out
}

// FeatureOptions lists every feature, marking those in selected.
func FeatureOptions(selected []options.Feature) []huh.Option[options.Feature] {
	sel := options.Options{Features: selected}
	out := EnumOptions(options.Features)
	for i := range out {
		out[i] = out[i].Selected(sel.HasFeature(out[i].Value))
	}
	return out
}

// PresetOptions keys each preset by name and description.
func PresetOptions(list []presets.Preset) []huh.Option[string] {
	out := make([]huh.Option[string], 0, len(list))
	for _, p := range list {
		key := p.Name
		if p.Description != "" {
			key += " - " + p.Description
		}
		out = append(out, huh.NewOption(key, p.Name))
	}
	return out
}

// IndentValues returns the standard indents plus current when it is a
// width the standard list does not offer.
func IndentValues(current options.Indent) []options.Indent {
	out := append([]options.Indent{}, options.Indents...)
	if !current.Valid() {
		return out
	}
	for _, v := range out {
		if v == current {
			return out
		}
	}
	return append(out, current)
}

// ValidateMaxLineLength accepts a positive integer.
func ValidateMaxLineLength(s string) error {
	_, err := parseMaxLineLength(s)
	return err
}

func parseMaxLineLength(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("maximum line length must be a positive integer, got %q", s)
	}
	return n, nil
}
