package ycbcr

// Product tables. Luma tables are indexed by an 8-bit sample; chroma tables
// by the sum of four samples (0..1020), padded to 1024 so that masking the
// index with 1023 removes the bounds check without changing the value.
var (
	lumaRT [256]int32
	lumaGT [256]int32
	lumaBT [256]int32 // includes the rounding term

	cbRT [1024]int32
	cbGT [1024]int32
	crGT [1024]int32
	crBT [1024]int32
	// cbB and crR are both 0.5, so one table serves both; it includes the
	// chroma offset and rounding term.
	halfT [1024]int32
)

func init() {
	for i := int32(0); i < 256; i++ {
		lumaRT[i] = yR * i
		lumaGT[i] = yG * i
		lumaBT[i] = yB*i + lumaRound
	}
	for i := int32(0); i < 1024; i++ {
		cbRT[i] = cbR * i
		cbGT[i] = cbG * i
		crGT[i] = crG * i
		crBT[i] = crB * i
		halfT[i] = cbB*i + chromaOffset
	}
}

// RGBAToYCbCrALUT is the accelerated conversion. It replaces the per-pixel
// multiplications with table lookups and, for the common 4-in/4-out case,
// walks two rows at a time through fixed-size windows so the compiler can
// drop bounds checks from the inner loop. Output is byte-identical to
// RGBAToYCbCrA.
func RGBAToYCbCrALUT(src []byte, width, height, channelsIn, channelsOut int, dst []byte) int {
	if !validArgs(width, height, channelsIn, channelsOut) {
		return 0
	}
	if channelsIn == 4 && channelsOut == 4 {
		return convertRGBAtoYCbCrA(src, width, height, dst)
	}
	return convertGenericLUT(src, width, height, channelsIn, channelsOut, dst)
}

func lumaLUT(r, g, b byte) byte {
	return byte((lumaRT[r] + lumaGT[g] + lumaBT[b]) >> 16)
}

func cbLUT(rs, gs, bs int) byte {
	return clampChroma(cbRT[rs&1023] + cbGT[gs&1023] + halfT[bs&1023])
}

func crLUT(rs, gs, bs int) byte {
	return clampChroma(halfT[rs&1023] + crGT[gs&1023] + crBT[bs&1023])
}

func convertRGBAtoYCbCrA(src []byte, width, height int, dst []byte) int {
	stride := width * 4
	even := (width &^ 1) * 4
	n := 0

	for y := 0; y < height; y += 2 {
		y1 := y + 1
		if y1 >= height {
			y1 = height - 1
		}
		row0 := src[y*stride : y*stride+stride]
		row1 := src[y1*stride : y1*stride+stride]

		for x := 0; x < even; x += 8 {
			p := row0[x : x+8 : x+8]
			q := row1[x : x+8 : x+8]
			d := dst[n : n+PairBytesRGBA : n+PairBytesRGBA]

			d[0] = lumaLUT(p[0], p[1], p[2])
			d[1] = lumaLUT(p[4], p[5], p[6])
			d[2] = lumaLUT(q[0], q[1], q[2])
			d[3] = lumaLUT(q[4], q[5], q[6])

			rs := int(p[0]) + int(p[4]) + int(q[0]) + int(q[4])
			gs := int(p[1]) + int(p[5]) + int(q[1]) + int(q[5])
			bs := int(p[2]) + int(p[6]) + int(q[2]) + int(q[6])
			d[4] = cbLUT(rs, gs, bs)
			d[5] = crLUT(rs, gs, bs)

			d[6] = p[3]
			d[7] = p[7]
			d[8] = q[3]
			d[9] = q[7]

			n += PairBytesRGBA
		}

		if even != stride {
			// Odd width: the last block repeats the final column.
			p := row0[even : even+4 : even+4]
			q := row1[even : even+4 : even+4]
			d := dst[n : n+PairBytesRGBA : n+PairBytesRGBA]

			lp := lumaLUT(p[0], p[1], p[2])
			lq := lumaLUT(q[0], q[1], q[2])
			d[0], d[1], d[2], d[3] = lp, lp, lq, lq

			rs := 2 * (int(p[0]) + int(q[0]))
			gs := 2 * (int(p[1]) + int(q[1]))
			bs := 2 * (int(p[2]) + int(q[2]))
			d[4] = cbLUT(rs, gs, bs)
			d[5] = crLUT(rs, gs, bs)

			d[6], d[7], d[8], d[9] = p[3], p[3], q[3], q[3]

			n += PairBytesRGBA
		}
	}

	return n
}

func convertGenericLUT(src []byte, width, height, channelsIn, channelsOut int, dst []byte) int {
	stride := width * channelsIn
	blockSize := PairBytes(channelsOut)
	n := 0

	for y := 0; y < height; y += 2 {
		y1 := y + 1
		if y1 >= height {
			y1 = height - 1
		}
		row0 := src[y*stride : y*stride+stride]
		row1 := src[y1*stride : y1*stride+stride]

		for x := 0; x < width; x += 2 {
			x1 := x + 1
			if x1 >= width {
				x1 = width - 1
			}
			o0 := x * channelsIn
			o1 := x1 * channelsIn

			p0 := row0[o0 : o0+channelsIn]
			p1 := row0[o1 : o1+channelsIn]
			q0 := row1[o0 : o0+channelsIn]
			q1 := row1[o1 : o1+channelsIn]
			d := dst[n : n+blockSize]

			d[0] = lumaLUT(p0[0], p0[1], p0[2])
			d[1] = lumaLUT(p1[0], p1[1], p1[2])
			d[2] = lumaLUT(q0[0], q0[1], q0[2])
			d[3] = lumaLUT(q1[0], q1[1], q1[2])

			rs := int(p0[0]) + int(p1[0]) + int(q0[0]) + int(q1[0])
			gs := int(p0[1]) + int(p1[1]) + int(q0[1]) + int(q1[1])
			bs := int(p0[2]) + int(p1[2]) + int(q0[2]) + int(q1[2])
			d[4] = cbLUT(rs, gs, bs)
			d[5] = crLUT(rs, gs, bs)

			if channelsOut == 4 {
				if channelsIn == 4 {
					d[6], d[7], d[8], d[9] = p0[3], p1[3], q0[3], q1[3]
				} else {
					d[6], d[7], d[8], d[9] = 0xFF, 0xFF, 0xFF, 0xFF
				}
			}

			n += blockSize
		}
	}

	return n
}
