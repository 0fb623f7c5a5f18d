package ycbcr

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// HostFeatures lists the vector extensions reported by the host CPU. It is
// informational: both routines are portable Go and run everywhere, but the
// numbers they produce only mean something next to the hardware they ran on.
func HostFeatures() []string {
	features := make([]string, 0, 4)

	switch runtime.GOARCH {
	case "amd64", "386":
		if cpu.X86.HasSSE41 {
			features = append(features, "sse4.1")
		}
		if cpu.X86.HasAVX2 {
			features = append(features, "avx2")
		}
		if cpu.X86.HasAVX512F {
			features = append(features, "avx512f")
		}
	case "arm64":
		if cpu.ARM64.HasASIMD {
			features = append(features, "asimd")
		}
		if cpu.ARM64.HasSVE {
			features = append(features, "sve")
		}
	case "riscv64":
		if cpu.RISCV64.HasV {
			features = append(features, "rvv")
		}
	}

	return features
}
