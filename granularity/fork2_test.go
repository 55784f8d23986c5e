package granularity

import (
	"sync/atomic"
	"testing"
)

func TestFork2SequentialRunsInline(t *testing.T) {
	var order []int
	withMode(Sequential, func() {
		Fork2(func() {
			order = append(order, 1)
		}, func() {
			order = append(order, 2)
		})
	})
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("Fork2 under Sequential ran out of order: %v", order)
	}
}

func TestFork2ParallelRunsBothBranches(t *testing.T) {
	var left, right atomic.Bool
	withMode(Parallel, func() {
		Fork2(func() {
			left.Store(true)
		}, func() {
			right.Store(true)
		})
	})
	if !left.Load() || !right.Load() {
		t.Fatal("Fork2 under Parallel did not run both branches")
	}
}

func TestFork2PropagatesModeToChildren(t *testing.T) {
	var leftMode, rightMode ExecutionMode
	withMode(ForceParallel, func() {
		Fork2(func() {
			leftMode = CurrentMode()
		}, func() {
			rightMode = CurrentMode()
		})
	})
	if leftMode != ForceParallel || rightMode != ForceParallel {
		t.Fatalf("Fork2 branches saw modes %v, %v; want both ForceParallel", leftMode, rightMode)
	}
}

func TestFork2HonestUnknownRunsInline(t *testing.T) {
	var order []int
	withMode(Unknown, func() {
		Fork2(func() {
			order = append(order, 1)
		}, func() {
			order = append(order, 2)
		})
	})
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("Fork2 under Honest Unknown ran out of order: %v", order)
	}
}
