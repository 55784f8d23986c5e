package runtime

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestExecutorRunsSubmittedTasks(t *testing.T) {
	ex := NewExecutor(4, -1)
	defer ex.Close()

	var counter int64
	for i := 0; i < 50; i++ {
		if err := ex.Submit(func() { atomic.AddInt64(&counter, 1) }); err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
	}

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if atomic.LoadInt64(&counter) == 50 {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("counter = %d, want 50 within deadline", atomic.LoadInt64(&counter))
}

func TestExecutorSubmitAfterCloseFails(t *testing.T) {
	ex := NewExecutor(2, -1)
	ex.Close()
	if err := ex.Submit(func() {}); err != ErrExecutorClosed {
		t.Fatalf("Submit after Close returned %v, want ErrExecutorClosed", err)
	}
}

func TestExecutorNumWorkersDefaultsToNumCPU(t *testing.T) {
	ex := NewExecutor(0, -1)
	defer ex.Close()
	if ex.NumWorkers() <= 0 {
		t.Fatalf("NumWorkers() = %d, want > 0", ex.NumWorkers())
	}
}
