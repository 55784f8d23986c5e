//go:build linux && cgo

// File: internal/runtime/pin_linux_cgo.go
// Author: momentics <momentics@gmail.com>
//
// Linux/cgo implementation of worker pinning: binds the calling OS thread
// to a CPU core. No NUMA-node placement is done.

package runtime

/*
#define _GNU_SOURCE
#include <sched.h>
#include <pthread.h>
#include <string.h>

static int go_pin_thread_to_cpu(int cpu) {
	cpu_set_t set;
	CPU_ZERO(&set);
	CPU_SET(cpu, &set);
	return pthread_setaffinity_np(pthread_self(), sizeof(set), &set);
}
*/
import "C"
import (
	"log"
	goruntime "runtime"
	"syscall"
)

// PinCurrentThread pins the calling OS thread to cpuID. numaNode is
// currently advisory only (kept for API parity with the windows/stub
// implementations and future libnuma wiring).
func PinCurrentThread(numaNode int, cpuID int) {
	goruntime.LockOSThread()
	if ret := C.go_pin_thread_to_cpu(C.int(cpuID)); ret != 0 {
		log.Printf("[runtime] pin: pthread_setaffinity_np failed for cpu %d: %v", cpuID, syscall.Errno(ret))
	}
}
