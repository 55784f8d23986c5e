//go:build !(linux && amd64 && cgo)

// File: granularity/clock_fallback.go
// Author: momentics <momentics@gmail.com>
//
// Portable cycle-counter fallback for platforms without the cgo RDTSC
// read, in the same spirit as hioload-ws's affinity_stub.go fallback.

package granularity

func platformNow() Cycles {
	return wallClockCycles()
}
