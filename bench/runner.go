// Package bench measures two conversion routines against each other on one
// image at a time and aggregates the results across images.
package bench

import (
	"log/slog"
	"runtime"

	"github.com/eason9999/qoy-rvv/clock"
	"github.com/eason9999/qoy-rvv/loader"
	"github.com/eason9999/qoy-rvv/ycbcr"
)

// ClearByte is written over every output buffer before each timed call.
const ClearByte byte = 0

// NoMismatch marks a result whose outputs were identical or not compared.
const NoMismatch = -1

// Result of benchmarking one image. Totals are summed over all timed calls;
// the warm-up call is never included.
type Result struct {
	Path             string
	Width            int
	Height           int
	Runs             int
	BaselineNanos    uint64
	AcceleratedNanos uint64
	// Verified is set when outputs were compared after the timed loop.
	Verified bool
	// Mismatch is the first differing output byte, or NoMismatch.
	Mismatch int
}

func (r Result) BaselineMs() float64 {
	return averageMs(r.BaselineNanos, r.Runs)
}

func (r Result) AcceleratedMs() float64 {
	return averageMs(r.AcceleratedNanos, r.Runs)
}

func averageMs(totalNanos uint64, calls int) float64 {
	if calls <= 0 {
		return 0
	}
	return float64(totalNanos) / float64(calls) / 1e6
}

// Runner executes the warm-up and timed protocol for a baseline and an
// accelerated routine. Not safe for concurrent use; benchmarks are meant to
// run one at a time.
type Runner struct {
	clock       clock.Clock
	baseline    ycbcr.Func
	accelerated ycbcr.Func
	verify      bool
	logger      *slog.Logger
}

func NewRunner(clk clock.Clock, baseline, accelerated ycbcr.Func, options ...RunnerOption) *Runner {
	runner := &Runner{
		clock:       clk,
		baseline:    baseline,
		accelerated: accelerated,
		verify:      true,
		logger:      slog.Default(),
	}

	for _, option := range options {
		option(runner)
	}

	return runner
}

// Run benchmarks img with runs timed calls per routine. runs below 1 is
// treated as 1.
//
// Each routine is called once untimed to warm caches. Then, runs times, the
// baseline and the accelerated routine are timed back to back, each writing
// into its own freshly cleared buffer.
func (r *Runner) Run(img *loader.Image, runs int) Result {
	if runs < 1 {
		runs = 1
	}

	capacity := Capacity(img.Width, img.Height)
	baselineBuf := make([]byte, capacity)
	acceleratedBuf := make([]byte, capacity)

	r.logger.Debug("benchmarking image",
		"path", img.Path,
		"width", img.Width,
		"height", img.Height,
		"capacity", capacity,
		"runs", runs,
	)

	r.baseline(img.Pix, img.Width, img.Height, loader.Channels, loader.Channels, baselineBuf)
	r.accelerated(img.Pix, img.Width, img.Height, loader.Channels, loader.Channels, acceleratedBuf)

	// Keep collection of loading garbage out of the timed calls.
	runtime.GC()

	result := Result{
		Path:     img.Path,
		Width:    img.Width,
		Height:   img.Height,
		Runs:     runs,
		Mismatch: NoMismatch,
	}

	var baselineLen, acceleratedLen int
	for range runs {
		fill(baselineBuf, ClearByte)
		start := r.clock.Now()
		baselineLen = r.baseline(img.Pix, img.Width, img.Height, loader.Channels, loader.Channels, baselineBuf)
		result.BaselineNanos += clock.Since(r.clock, start)

		fill(acceleratedBuf, ClearByte)
		start = r.clock.Now()
		acceleratedLen = r.accelerated(img.Pix, img.Width, img.Height, loader.Channels, loader.Channels, acceleratedBuf)
		result.AcceleratedNanos += clock.Since(r.clock, start)
	}

	if r.verify {
		result.Verified = true
		result.Mismatch = firstMismatch(baselineBuf[:clampLen(baselineLen, capacity)], acceleratedBuf[:clampLen(acceleratedLen, capacity)])
		if result.Mismatch != NoMismatch {
			r.logger.Debug("outputs differ",
				"path", img.Path,
				"offset", result.Mismatch,
				"baselineLen", baselineLen,
				"acceleratedLen", acceleratedLen,
			)
		}
	}

	return result
}

func fill(buf []byte, value byte) {
	for i := range buf {
		buf[i] = value
	}
}

func clampLen(n, capacity int) int {
	if n < 0 {
		return 0
	}
	if n > capacity {
		return capacity
	}
	return n
}

// firstMismatch returns the offset of the first byte where a and b differ.
// A length difference counts as a mismatch at the end of the shorter one.
func firstMismatch(a, b []byte) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}
	if len(a) != len(b) {
		return n
	}
	return NoMismatch
}
