// Package ycbcr converts interleaved RGB(A) pixels into the block-based
// YCbCr(A) layout used by the QOY encoder.
//
// Output is a sequence of 2x2 pixel blocks in raster order. Each block holds
// the four luma samples (top-left, top-right, bottom-left, bottom-right),
// one Cb and one Cr sample computed from the four pixels, and, when four
// output channels are requested, the four alpha samples in the same order as
// the luma samples. Blocks on the right and bottom edges of odd-sized images
// replicate the last column or row.
//
// Two implementations are provided: RGBAToYCbCrA, the scalar reference, and
// RGBAToYCbCrALUT, which must produce byte-identical output.
package ycbcr

// Func is the signature shared by all conversion routines. It reads a
// width*height image with channelsIn interleaved channels from src, writes the
// converted blocks to dst and returns the number of bytes written. Invalid
// arguments write nothing and return 0. dst must hold at least
// EncodedLen(width, height, channelsOut) bytes.
type Func func(src []byte, width, height, channelsIn, channelsOut int, dst []byte) int

const (
	// PairBytesRGBA is the documented worst case number of output bytes per
	// horizontal pixel pair when converting to four channels.
	PairBytesRGBA = 10
	// PairBytesRGB is the same bound for three-channel output.
	PairBytesRGB = 6
)

// Fixed-point BT.601 full-range coefficients scaled by 1<<16.
const (
	yR = 19595
	yG = 38470
	yB = 7471

	cbR = -11056
	cbG = -21712
	cbB = 32768

	crR = 32768
	crG = -27440
	crB = -5328

	lumaRound = 1 << 15
	// Chroma is computed from the sum of four pixels, so the result carries
	// two extra bits of scale.
	chromaShift  = 18
	chromaOffset = 128<<chromaShift + 1<<(chromaShift-1)
)

// PairBytes returns the per-pixel-pair output bound for channelsOut, or 0 if
// channelsOut is not supported.
func PairBytes(channelsOut int) int {
	switch channelsOut {
	case 4:
		return PairBytesRGBA
	case 3:
		return PairBytesRGB
	default:
		return 0
	}
}

// EncodedLen returns the exact number of bytes both routines write for the
// given image, or 0 for invalid arguments.
func EncodedLen(width, height, channelsOut int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return ((width + 1) / 2) * ((height + 1) / 2) * PairBytes(channelsOut)
}

func validArgs(width, height, channelsIn, channelsOut int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	if channelsIn != 3 && channelsIn != 4 {
		return false
	}
	return channelsOut == 3 || channelsOut == 4
}

func luma(r, g, b int32) byte {
	return byte((yR*r + yG*g + yB*b + lumaRound) >> 16)
}

func clampChroma(v int32) byte {
	v >>= chromaShift
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}

// RGBAToYCbCrA is the scalar reference conversion.
func RGBAToYCbCrA(src []byte, width, height, channelsIn, channelsOut int, dst []byte) int {
	if !validArgs(width, height, channelsIn, channelsOut) {
		return 0
	}

	stride := width * channelsIn
	blockSize := PairBytes(channelsOut)
	n := 0

	for y := 0; y < height; y += 2 {
		y1 := y + 1
		if y1 >= height {
			y1 = height - 1
		}
		for x := 0; x < width; x += 2 {
			x1 := x + 1
			if x1 >= width {
				x1 = width - 1
			}

			offsets := [4]int{
				y*stride + x*channelsIn,
				y*stride + x1*channelsIn,
				y1*stride + x*channelsIn,
				y1*stride + x1*channelsIn,
			}

			var rs, gs, bs int32
			for i, o := range offsets {
				r, g, b := int32(src[o]), int32(src[o+1]), int32(src[o+2])
				dst[n+i] = luma(r, g, b)
				rs += r
				gs += g
				bs += b
			}
			dst[n+4] = clampChroma(cbR*rs + cbG*gs + cbB*bs + chromaOffset)
			dst[n+5] = clampChroma(crR*rs + crG*gs + crB*bs + chromaOffset)

			if channelsOut == 4 {
				for i, o := range offsets {
					a := byte(0xFF)
					if channelsIn == 4 {
						a = src[o+3]
					}
					dst[n+6+i] = a
				}
			}

			n += blockSize
		}
	}

	return n
}
