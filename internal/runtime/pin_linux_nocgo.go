//go:build linux && !cgo

// File: internal/runtime/pin_linux_nocgo.go
// Author: momentics <momentics@gmail.com>
//
// Pure-Go fallback for Linux builds without cgo: locks the OS thread so the
// pool worker at least keeps a stable identity across its lifetime, but
// cannot set CPU affinity (that requires sched_setaffinity via cgo or
// golang.org/x/sys/unix.SchedSetaffinity, which this build intentionally
// avoids to keep CGO_ENABLED=0 builds dependency-free).

package runtime

import "runtime"

// PinCurrentThread is a no-op beyond locking the OS thread.
func PinCurrentThread(numaNode int, cpuID int) {
	runtime.LockOSThread()
}
