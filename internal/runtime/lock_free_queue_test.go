package runtime

import (
	"sync"
	"testing"
)

func TestLockFreeQueueEnqueueDequeueOrder(t *testing.T) {
	q := newLockFreeQueue[int](8)
	for i := 0; i < 8; i++ {
		if !q.enqueue(i) {
			t.Fatalf("enqueue(%d) failed unexpectedly", i)
		}
	}
	if q.enqueue(99) {
		t.Fatal("enqueue on a full queue should fail")
	}
	for i := 0; i < 8; i++ {
		v, ok := q.dequeue()
		if !ok || v != i {
			t.Fatalf("dequeue() = (%d, %v), want (%d, true)", v, ok, i)
		}
	}
	if _, ok := q.dequeue(); ok {
		t.Fatal("dequeue on an empty queue should fail")
	}
}

func TestLockFreeQueueConcurrentProducersConsumers(t *testing.T) {
	const n = 4000
	q := newLockFreeQueue[int](256)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			for !q.enqueue(i) {
			}
		}
	}()

	seen := make([]bool, n)
	got := 0
	for got < n {
		if v, ok := q.dequeue(); ok {
			if seen[v] {
				t.Fatalf("value %d dequeued twice", v)
			}
			seen[v] = true
			got++
		}
	}
	wg.Wait()
}
