package pixop

import (
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Acceleration selects between the portable pixel loops and the batch
// kernels.
type Acceleration uint8

const (
	// Portable uses per-pixel loops only.
	Portable Acceleration = iota

	// Wide uses the batch kernels of internal/wide for long runs.
	Wide
)

// String returns a string representation of the acceleration level.
func (a Acceleration) String() string {
	switch a {
	case Portable:
		return "portable"
	case Wide:
		return "wide"
	default:
		return "unknown"
	}
}

var detected = sync.OnceValue(func() Acceleration {
	return detect(runtime.GOARCH)
})

func detect(arch string) Acceleration {
	switch arch {
	case "amd64", "386":
		if cpu.X86.HasSSE2 {
			return Wide
		}
	case "arm64":
		if cpu.ARM64.HasASIMD {
			return Wide
		}
	case "arm":
		if cpu.ARM.HasNEON {
			return Wide
		}
	}
	return Portable
}

// DetectAcceleration returns the level supported by the running CPU:
// Wide with SSE2 on x86, Advanced SIMD on arm64 and NEON on arm.
func DetectAcceleration() Acceleration {
	return detected()
}

// overridePlusOne holds the forced level plus one; zero means unset.
var overridePlusOne atomic.Uint32

// SetAcceleration forces the level returned by CurrentAcceleration for
// strategies created afterwards. Tests use it to exercise both paths.
func SetAcceleration(a Acceleration) {
	overridePlusOne.Store(uint32(a) + 1)
}

// ResetAcceleration removes a level forced with SetAcceleration.
func ResetAcceleration() {
	overridePlusOne.Store(0)
}

// CurrentAcceleration returns the forced level if any, otherwise the
// detected one.
func CurrentAcceleration() Acceleration {
	if v := overridePlusOne.Load(); v != 0 {
		return Acceleration(v - 1)
	}
	return DetectAcceleration()
}
