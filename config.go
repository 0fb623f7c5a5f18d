package qoy

import (
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/eason9999/qoy-rvv/clock"
	"github.com/eason9999/qoy-rvv/source"
	"github.com/eason9999/qoy-rvv/ycbcr"
)

// Config of one benchmark run. It is fixed once parsed.
type Config struct {
	// File or directory to benchmark
	Path string
	// Timed calls per routine per image, always at least 1
	Runs int
	// Compare both routines' output after timing
	Verify bool
}

// ParseRuns parses a run count. Anything that is not a positive integer
// becomes 1.
func ParseRuns(s string) int {
	runs, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || runs <= 0 {
		return 1
	}
	return runs
}

// ParseArgs builds a Config from the positional arguments
// <file_or_directory> <runs>. ok is false when either is missing; extra
// arguments are ignored.
func ParseArgs(args []string, verify bool) (config Config, ok bool) {
	if len(args) < 2 {
		return Config{}, false
	}

	return Config{
		Path:   args[0],
		Runs:   ParseRuns(args[1]),
		Verify: verify,
	}, true
}

type Option func(e *Engine)

func WithFileSystem(fsys source.FileSystem) Option {
	return func(e *Engine) {
		e.fsys = fsys
	}
}

func WithClock(clk clock.Clock) Option {
	return func(e *Engine) {
		e.clock = clk
	}
}

// WithRoutines replaces the baseline and accelerated conversion routines.
func WithRoutines(baseline, accelerated ycbcr.Func) Option {
	return func(e *Engine) {
		e.baseline = baseline
		e.accelerated = accelerated
	}
}

// WithOutput sets where the report is written. Defaults to stdout.
func WithOutput(out io.Writer) Option {
	return func(e *Engine) {
		e.out = out
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}
