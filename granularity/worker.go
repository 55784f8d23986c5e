// File: granularity/worker.go
// Author: momentics <momentics@gmail.com>
//
// Worker identity. The original controller keeps a stable small integer id
// per OS thread in a `__thread` variable, lazily assigned from a global
// atomic counter (granularity.hpp's `get_my_id`/`counter`). Go goroutines
// have no native thread-local storage, so this substitutes a goroutine-id
// keyed map, assigned on first use and read-only thereafter.

package granularity

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// MaxWorkers bounds the number of distinct worker identities the process
// can hand out, mirroring the original's compile-time cap (default 128).
const MaxWorkers = 128

var (
	workerCounter atomic.Int32
	workerIDs     sync.Map // goroutine id (int64) -> worker slot (int)
)

// goroutineID extracts the runtime's goroutine id from the first line of a
// stack trace ("goroutine 123 [running]:"). It is stable for the lifetime
// of the goroutine and unique across concurrently running goroutines --
// exactly the property a `__thread` variable would give us for OS threads.
func goroutineID() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	b := buf[:n]
	const prefix = "goroutine "
	if len(b) < len(prefix) {
		return -1
	}
	b = b[len(prefix):]
	var id int64
	i := 0
	for i < len(b) && b[i] >= '0' && b[i] <= '9' {
		id = id*10 + int64(b[i]-'0')
		i++
	}
	return id
}

// MyWorkerID returns the calling goroutine's stable worker identity,
// assigning one on first use. Panics on exhaustion of MaxWorkers: that
// case is a fatal bug, not a recoverable condition.
func MyWorkerID() int {
	gid := goroutineID()
	if v, ok := workerIDs.Load(gid); ok {
		return v.(int)
	}
	id := int(workerCounter.Add(1) - 1)
	if id >= MaxWorkers {
		panic(ErrWorkerExhaustion)
	}
	actual, _ := workerIDs.LoadOrStore(gid, id)
	return actual.(int)
}
