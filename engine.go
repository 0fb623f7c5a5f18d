// Package qoy benchmarks a scalar and an accelerated RGBA to YCbCrA
// conversion against each other over a PNG file or a directory of PNG files.
package qoy

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/eason9999/qoy-rvv/bench"
	"github.com/eason9999/qoy-rvv/clock"
	"github.com/eason9999/qoy-rvv/loader"
	"github.com/eason9999/qoy-rvv/report"
	"github.com/eason9999/qoy-rvv/source"
	"github.com/eason9999/qoy-rvv/ycbcr"
)

type Engine struct {
	config Config

	fsys        source.FileSystem
	clock       clock.Clock
	baseline    ycbcr.Func
	accelerated ycbcr.Func
	out         io.Writer
	logger      *slog.Logger
}

func New(config Config, options ...Option) *Engine {
	if config.Runs < 1 {
		config.Runs = 1
	}

	engine := &Engine{
		config:      config,
		fsys:        source.OS{},
		clock:       clock.Default(),
		baseline:    ycbcr.RGBAToYCbCrA,
		accelerated: ycbcr.RGBAToYCbCrALUT,
		out:         os.Stdout,
		logger:      slog.Default(),
	}

	for _, option := range options {
		option(engine)
	}

	return engine
}

func (e *Engine) Config() Config {
	return e.config
}

// Process benchmarks every target under the configured path, one at a time,
// and prints per-image and global results. Problems with the path or with
// individual images are reported and skipped; they never stop the run.
//
// ok is false when no image was benchmarked.
func (e *Engine) Process() (summary bench.Summary, ok bool) {
	reporter := report.New(e.out)
	aggregator := bench.NewAggregator(e.config.Runs)
	imageLoader := loader.New(e.fsys)
	runner := bench.NewRunner(e.clock, e.baseline, e.accelerated,
		bench.WithVerify(e.config.Verify),
		bench.WithLogger(e.logger),
	)

	targets, err := source.Resolve(e.fsys, e.config.Path)
	if err != nil {
		e.reportResolveError(reporter, err)
	}
	e.logger.Info("resolved targets", "path", e.config.Path, "targets", len(targets), "runs", e.config.Runs)

	for _, target := range targets {
		e.processTarget(target, reporter, imageLoader, runner, aggregator)
	}

	summary, ok = aggregator.Finalize()
	reporter.Summary(summary, ok)

	return summary, ok
}

func (e *Engine) processTarget(target string, reporter *report.Reporter, imageLoader *loader.Loader, runner *bench.Runner, aggregator *bench.Aggregator) {
	img, err := imageLoader.Load(target)
	if err != nil {
		e.logger.Debug("failed to load image", "path", target, "error", err)
		reporter.LoadFailed(target)
		return
	}

	reporter.FileHeader(img.Path, img.Width, img.Height)
	result := runner.Run(img, e.config.Runs)
	reporter.FileResult(result)

	if result.Mismatch != bench.NoMismatch {
		reporter.Mismatch(result.Path, result.Mismatch)
	}

	aggregator.Accumulate(result)
}

func (e *Engine) reportResolveError(reporter *report.Reporter, err error) {
	e.logger.Debug("failed to resolve input path", "path", e.config.Path, "error", err)

	switch {
	case errors.Is(err, source.ErrInvalidInputPath):
		reporter.StatFailed(e.config.Path)
	case errors.Is(err, source.ErrUnsupportedPathType):
		reporter.UnsupportedPathType(e.config.Path)
	case errors.Is(err, source.ErrDirectoryOpen):
		reporter.DirectoryOpenFailed(e.config.Path)
	default:
		reporter.StatFailed(e.config.Path)
	}
}
