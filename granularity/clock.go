// File: granularity/clock.go
// Author: momentics <momentics@gmail.com>
//
// Two monotonic clocks: a cheap, drift-prone cycle counter and a stable,
// slightly costlier wall-clock. Grounded on
// original_source/include/granularity.hpp's rdtsc/now/elapsed/since, and on
// hioload-ws's cgo-shim build-tag style in affinity/affinity_linux.go.

package granularity

import (
	"time"

	"golang.org/x/sys/cpu"
)

// Cycles is a raw cycle-counter reading. Its absolute value is meaningless
// across cores/platforms; only differences (via Since/Elapsed) are used.
type Cycles uint64

var cpuFrequencyGHz = 2.1

// ticksPerMicrosecond converts a Cycles delta into microseconds, using
// the cpu-frequency-ghz config option (default 2.1).
func ticksPerMicrosecond() float64 {
	return cpuFrequencyGHz * 1000.0
}

// SetCPUFrequencyGHz calibrates the cycle-to-microsecond conversion used by
// Estimator.Report. It is a process-wide setting, applied before any
// estimator reports are expected to be accurate.
func SetCPUFrequencyGHz(ghz float64) {
	if ghz > 0 {
		cpuFrequencyGHz = ghz
	}
}

// rdtscTrusted reports whether this platform's RDTSC-based cycle read is
// believed to produce a usable, roughly-comparable-across-cores value. We
// require the serializing RDTSCP instruction to be present; without it a
// plain RDTSC can be reordered by the CPU relative to the code it is meant
// to time.
var rdtscTrusted = cpu.X86.HasRDTSCP

// Now returns the current cycle count, using a cgo RDTSC read on
// linux/amd64 when the platform supports it, and a scaled wall-clock
// reading everywhere else (see clock_rdtsc.go / clock_fallback.go).
func Now() Cycles {
	return platformNow()
}

// Elapsed returns end-start as a Cycles delta (never negative; clock reads
// are monotonic per worker).
func Elapsed(start, end Cycles) Cycles {
	if end < start {
		return 0
	}
	return end - start
}

// Since returns the number of cycles elapsed since start.
func Since(start Cycles) Cycles {
	return Elapsed(start, Now())
}

// ElapsedMicros converts a Cycles delta into microseconds using the
// configured cpu-frequency-ghz calibration.
func ElapsedMicros(delta Cycles) float64 {
	return float64(delta) / ticksPerMicrosecond()
}

// WallNow returns the current wall-clock time in nanoseconds, the stable
// but slightly costlier of the two clocks.
func WallNow() int64 {
	return time.Now().UnixNano()
}

// wallClockCycles approximates a cycle count from wall-clock time, scaled
// by the configured cpu-frequency-ghz. Used on platforms/builds where a
// real cycle counter isn't available or isn't trusted.
func wallClockCycles() Cycles {
	return Cycles(float64(time.Now().UnixNano()) * cpuFrequencyGHz)
}
