package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eason9999/qoy-rvv/bench"
)

func TestFileLines(t *testing.T) {
	var out bytes.Buffer
	r := New(&out)

	r.FileHeader("imgs/a.png", 640, 480)
	r.FileResult(bench.Result{Runs: 4, BaselineNanos: 10_000_000, AcceleratedNanos: 2_004_000})

	assert.Equal(t,
		"[File] imgs/a.png => 640x480, forced RGBA=4\n"+
			"Runs=4 | C=2.500 ms, RVV=0.501 ms\n",
		out.String())
}

func TestSummary(t *testing.T) {
	var out bytes.Buffer
	r := New(&out)

	r.Summary(bench.Summary{Images: 3, Runs: 2, BaselineMs: 1.23456, AcceleratedMs: 0.1}, true)

	assert.Equal(t,
		"===== Global Average across 3 PNG(s) =====\n"+
			"C   version: 1.235 ms\n"+
			"RVV version: 0.100 ms\n",
		out.String())
}

func TestSummaryEmpty(t *testing.T) {
	var out bytes.Buffer
	New(&out).Summary(bench.Summary{}, false)

	assert.Equal(t, "No PNG files were processed.\n", out.String())
}

func TestDiagnostics(t *testing.T) {
	var out bytes.Buffer
	r := New(&out)

	r.LoadFailed("bad.png")
	r.DirectoryOpenFailed("/locked")
	r.StatFailed("/missing")
	r.UnsupportedPathType("/dev/null")
	r.Usage("qoybench")
	r.Mismatch("x.png", 12)

	assert.Equal(t,
		"Error: failed to load PNG: bad.png\n"+
			"Could not open directory: /locked\n"+
			"Cannot stat: /missing\n"+
			"Input path is neither file nor directory: /dev/null\n"+
			"Usage: qoybench <file_or_directory> <runs>\n"+
			"Warning: C and RVV outputs differ: x.png (first mismatch at byte 12)\n",
		out.String())
}
