//go:build windows

// File: internal/runtime/pin_windows.go
// Author: momentics <momentics@gmail.com>
//
// Windows implementation of worker pinning via SetThreadAffinityMask.
// NUMA-aware placement is not implemented on this platform; numaNode is
// accepted only for API parity.

package runtime

import (
	"log"
	"runtime"

	"golang.org/x/sys/windows"
)

var (
	modkernel32               = windows.NewLazySystemDLL("kernel32.dll")
	procSetThreadAffinityMask = modkernel32.NewProc("SetThreadAffinityMask")
	procGetCurrentThread      = modkernel32.NewProc("GetCurrentThread")
)

// PinCurrentThread binds the calling OS thread to cpuID.
func PinCurrentThread(numaNode int, cpuID int) {
	runtime.LockOSThread()
	if cpuID < 0 {
		return
	}
	handle, _, _ := procGetCurrentThread.Call()
	mask := uintptr(1) << uint(cpuID)
	old, _, err := procSetThreadAffinityMask.Call(handle, mask)
	if old == 0 {
		log.Printf("[runtime] pin: SetThreadAffinityMask failed for cpu %d: %v", cpuID, err)
	}
}
