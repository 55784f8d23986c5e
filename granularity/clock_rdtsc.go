//go:build linux && amd64 && cgo

// File: granularity/clock_rdtsc.go
// Author: momentics <momentics@gmail.com>
//
// cgo RDTSC cycle read for linux/amd64, in the same style as hioload-ws's
// cgo affinity shim (affinity/affinity_linux.go).

package granularity

/*
static unsigned long long go_rdtsc(void) {
	unsigned int hi, lo;
	__asm__ __volatile__("rdtsc" : "=a"(lo), "=d"(hi));
	return ((unsigned long long)lo) | (((unsigned long long)hi) << 32);
}
*/
import "C"

func platformNow() Cycles {
	if !rdtscTrusted {
		return wallClockCycles()
	}
	return Cycles(C.go_rdtsc())
}
