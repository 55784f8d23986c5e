// File: granularity/perworker.go
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity, cache-line padded per-worker storage. Grounded on
// original_source/include/perworker.hpp's cache_aligned_fixed_capacity_array
// and on the cache-line padding idiom hioload-ws uses around hot atomic
// fields in its lock-free queue (cacheLinePad = 64, blank byte-array pads).

package granularity

const cacheLinePad = 64

// paddedSlot wraps one worker's item with trailing padding so that two
// adjacent workers' slots never share a cache line.
type paddedSlot[T any] struct {
	item T
	_    [cacheLinePad]byte
}

// PerWorker is a fixed-capacity array indexed by worker identity, giving
// constant-time access to the current worker's slot plus a reduction over
// all slots. Writes to a worker's own slot are the sole writer; this type
// performs no synchronization of its own -- callers rely on an "owner
// writes, owner reads" discipline.
type PerWorker[T any] struct {
	slots [MaxWorkers]paddedSlot[T]
}

// NewPerWorker creates per-worker storage with every slot initialized to x.
func NewPerWorker[T any](x T) *PerWorker[T] {
	pw := &PerWorker[T]{}
	pw.Init(x)
	return pw
}

// Init resets every slot to x.
func (pw *PerWorker[T]) Init(x T) {
	for i := range pw.slots {
		pw.slots[i].item = x
	}
}

// Mine returns a pointer to the calling worker's slot.
func (pw *PerWorker[T]) Mine() *T {
	return &pw.slots[MyWorkerID()].item
}

// At returns a pointer to worker i's slot, for inspection/testing or for
// shutdown-time reductions performed by a single coordinating goroutine.
func (pw *PerWorker[T]) At(i int) *T {
	return &pw.slots[i].item
}

// Iterate calls f on every slot, in worker-index order.
func (pw *PerWorker[T]) Iterate(f func(*T)) {
	for i := range pw.slots {
		f(&pw.slots[i].item)
	}
}

// Reduce folds combine over every slot, starting from zero.
func (pw *PerWorker[T]) Reduce(zero T, combine func(acc, item T) T) T {
	acc := zero
	for i := range pw.slots {
		acc = combine(acc, pw.slots[i].item)
	}
	return acc
}
