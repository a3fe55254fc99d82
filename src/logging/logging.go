// Package logging builds the process logger.
package logging

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

// Name is the root logger name.
const Name = "eslintgen"

// Options selects where and how much to log.
type Options struct {
	// Level is an hclog level name. Empty means warn.
	Level string
	// Verbose forces debug output regardless of Level.
	Verbose bool
	Output  io.Writer
	Color   bool
}

// New returns the root logger. ESLINTGEN_DEBUG in the environment behaves
// like Verbose.
func New(opts Options) hclog.Logger {
	level := hclog.LevelFromString(opts.Level)
	if level == hclog.NoLevel {
		level = hclog.Warn
	}
	if opts.Verbose || os.Getenv("ESLINTGEN_DEBUG") != "" {
		level = hclog.Debug
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	color := hclog.ColorOff
	if opts.Color {
		color = hclog.AutoColor
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:            Name,
		Level:           level,
		Output:          out,
		Color:           color,
		DisableTime:     true,
		IncludeLocation: level <= hclog.Trace,
	})
}
