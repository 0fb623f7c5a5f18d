package bench

import (
	"github.com/eason9999/qoy-rvv/loader"
	"github.com/eason9999/qoy-rvv/ycbcr"
)

// Capacity returns the output buffer size used for a width x height image.
// It is an upper bound on what either routine writes, derived from the
// routines' worst case of ycbcr.PairBytes per horizontal pixel pair. A
// change to that worst case must be reflected here.
func Capacity(width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	pairs := (width + 1) / 2
	return pairs * height * ycbcr.PairBytes(loader.Channels)
}
