// File: internal/runtime/fork2.go
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// PrimitiveFork2 is the one primitive the granularity controller requires
// from its runtime collaborator: run two closures and join.
// No promise is made about which goroutine resumes the caller's stack
// after the join.

package runtime

import "sync"

// Options configure the lazily-created default executor.
type Options struct {
	NumWorkers int // <= 0 means runtime.NumCPU()
	NUMANode   int // < 0 disables CPU pinning
}

var (
	defaultOnce    sync.Once
	defaultExec    *Executor
	defaultOptions = Options{NumWorkers: 0, NUMANode: -1}
)

// Configure sets the options used to build the default executor. It has an
// effect only if called before the first PrimitiveFork2/Submit call.
func Configure(opts Options) {
	defaultOptions = opts
}

func defaultExecutor() *Executor {
	defaultOnce.Do(func() {
		defaultExec = NewExecutor(defaultOptions.NumWorkers, defaultOptions.NUMANode)
	})
	return defaultExec
}

// PrimitiveFork2 runs f1 and f2 to completion and joins. f2 is submitted to
// the pool while f1 runs inline on the calling goroutine; if submission
// fails (executor saturated or closed) f2 also runs inline, so runtime
// absence degrades to sequential execution, never an error. While waiting
// for f2 the caller helps drain the pool's queues rather than blocking
// outright: a plain wg.Wait() here would let every worker end up parked
// inside a join with no runner left for the tasks it submitted, deadlocking
// the recursive fan-out cmd/fib and cmd/mergesort produce once outstanding
// forks approach the worker count.
func PrimitiveFork2(f1, f2 func()) {
	exec := defaultExecutor()
	done := make(chan struct{})
	err := exec.Submit(func() {
		defer close(done)
		f2()
	})
	if err != nil {
		f2()
		f1()
		return
	}
	f1()
	exec.helpUntil(done)
}
