//go:build !linux && !windows

// File: internal/runtime/pin_other.go
// Author: momentics <momentics@gmail.com>
//
// Stub worker pinning for platforms without a dedicated implementation.

package runtime

import "runtime"

// PinCurrentThread is a no-op on unsupported platforms beyond locking the
// OS thread.
func PinCurrentThread(numaNode int, cpuID int) {
	runtime.LockOSThread()
}
