// Package report prints benchmark results and diagnostics in the fixed,
// line-oriented text format the harness has always produced.
package report

import (
	"fmt"
	"io"

	"github.com/eason9999/qoy-rvv/bench"
)

// Reporter writes to a single stream. Write errors are ignored: the report
// is best-effort output and must never interrupt a benchmark run.
type Reporter struct {
	out io.Writer
}

func New(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// FileHeader is printed once the image is decoded, before it is benchmarked.
func (r *Reporter) FileHeader(path string, width, height int) {
	fmt.Fprintf(r.out, "[File] %s => %dx%d, forced RGBA=4\n", path, width, height)
}

func (r *Reporter) FileResult(result bench.Result) {
	fmt.Fprintf(r.out, "Runs=%d | C=%.3f ms, RVV=%.3f ms\n", result.Runs, result.BaselineMs(), result.AcceleratedMs())
}

// Summary prints the global averages, or the no-images line when nothing
// was benchmarked.
func (r *Reporter) Summary(summary bench.Summary, ok bool) {
	if !ok {
		fmt.Fprintln(r.out, "No PNG files were processed.")
		return
	}

	fmt.Fprintf(r.out, "===== Global Average across %d PNG(s) =====\n", summary.Images)
	fmt.Fprintf(r.out, "C   version: %.3f ms\n", summary.BaselineMs)
	fmt.Fprintf(r.out, "RVV version: %.3f ms\n", summary.AcceleratedMs)
}

func (r *Reporter) LoadFailed(path string) {
	fmt.Fprintf(r.out, "Error: failed to load PNG: %s\n", path)
}

func (r *Reporter) DirectoryOpenFailed(path string) {
	fmt.Fprintf(r.out, "Could not open directory: %s\n", path)
}

func (r *Reporter) StatFailed(path string) {
	fmt.Fprintf(r.out, "Cannot stat: %s\n", path)
}

func (r *Reporter) UnsupportedPathType(path string) {
	fmt.Fprintf(r.out, "Input path is neither file nor directory: %s\n", path)
}

func (r *Reporter) Usage(program string) {
	fmt.Fprintf(r.out, "Usage: %s <file_or_directory> <runs>\n", program)
}

func (r *Reporter) Mismatch(path string, offset int) {
	fmt.Fprintf(r.out, "Warning: C and RVV outputs differ: %s (first mismatch at byte %d)\n", path, offset)
}
