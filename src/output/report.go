package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sofmeright/eslintgen/src/dependency"
	"github.com/sofmeright/eslintgen/src/options"
)

// Banner prints the tool name and version in a rounded box.
func Banner(w io.Writer, version string, color bool) {
	text := "ESLint Config Generator"
	if version != "" {
		text += "  " + Dimmed(version, color)
	}
	if !color {
		fmt.Fprintf(w, "\n    %s\n", text)
		return
	}
	fmt.Fprintln(w, Styles.Box.Render(Styles.Title.Render(text)))
}

// Preview renders the configuration text with line numbers.
func Preview(w io.Writer, fileName, text string, color bool) {
	sec := NewSection(w, "Preview "+fileName, 0, color)
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	width := len(strconv.Itoa(len(lines)))
	for i, line := range lines {
		sec.Row("%s  %s", Dimmed(fmt.Sprintf("%*d", width, i+1), color), line)
	}
	sec.Close()
}

// Summary lists the options that produced a configuration.
func Summary(w io.Writer, opts options.Options, color bool) {
	sec := NewSection(w, "Configuration", 0, color)
	sec.KV("format", opts.ConfigFormat.Label())
	sec.KV("environment", opts.Environment.Label())
	sec.KV("typescript", yesNo(opts.TypeScript))
	sec.KV("framework", opts.Framework.Label())

	features := opts.NormalizeFeatures()
	if len(features) == 0 {
		sec.KV("features", Dimmed("none", color))
	}
	for i, f := range features {
		key := ""
		if i == 0 {
			key = "features"
		}
		sec.KV(key, f.Label())
	}

	sec.Separator()
	st := opts.Style
	sec.KV("indent", st.Indent.Label())
	sec.KV("quotes", st.Quotes.Label())
	sec.KV("semicolons", st.Semicolons.Label())
	sec.KV("trailing comma", st.TrailingComma.Label())
	sec.KV("line ending", st.LineEnding.Label())
	sec.KV("max line length", strconv.Itoa(st.MaxLineLength))
	sec.Close()
}

// Packages lists the packages to install and the command that does it.
func Packages(w io.Writer, pkgs []string, command string, color bool) {
	sec := NewSection(w, fmt.Sprintf("Dependencies (%d)", len(pkgs)), 0, color)
	for _, p := range pkgs {
		sec.Row("• %s", p)
	}
	sec.Separator()
	sec.Row("%s", Dimmed(command, color))
	sec.Close()
}

// Statuses renders the result of a node_modules check.
func Statuses(w io.Writer, statuses []dependency.Status, color bool) {
	sec := NewSection(w, "Installed packages", 0, color)
	for _, s := range statuses {
		switch {
		case !s.Installed:
			sec.Row("%s %-40s %s", StatusIcon(StatusFailed, color), s.Package, Dimmed("missing", color))
		case s.Warning != "":
			sec.Row("%s %-40s %s", StatusIcon(StatusSkipped, color), s.Package, s.Version)
			sec.Row("  %s", paint(Styles.Warning, s.Warning, color))
		default:
			sec.Row("%s %-40s %s", StatusIcon(StatusSuccess, color), s.Package, s.Version)
		}
	}
	sec.Close()
}

// Success prints a single success line.
func Success(w io.Writer, color bool, format string, args ...any) {
	fmt.Fprintf(w, "    %s %s\n", StatusIcon(StatusSuccess, color), fmt.Sprintf(format, args...))
}

// Warn prints a single warning line.
func Warn(w io.Writer, color bool, format string, args ...any) {
	fmt.Fprintf(w, "    %s %s\n", StatusIcon(StatusSkipped, color), paint(Styles.Warning, fmt.Sprintf(format, args...), color))
}

// Failure prints a single failure line.
func Failure(w io.Writer, color bool, format string, args ...any) {
	fmt.Fprintf(w, "    %s %s\n", StatusIcon(StatusFailed, color), paint(Styles.Error, fmt.Sprintf(format, args...), color))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
