// File: granularity/fork2.go
// Author: momentics <momentics@gmail.com>
//
// The mode-gated fork primitive. Grounded on
// original_source/include/granularity.hpp's fork2 free function, which
// wraps the runtime's native fork/join with the same mode propagation and
// Unknown-mode timing accounting cstmt uses.

package granularity

import (
	internalruntime "github.com/momentics/granularity-go/internal/runtime"
)

// Fork2 runs f1 and f2, forking them only when the calling worker's
// current execution mode permits it:
//
//   - Sequential or ForceSequential: run f1 then f2 inline, no fork.
//   - Unknown under the Honest strategy: also run inline, so the
//     enclosing bootstrap measurement's elapsed time is exactly the serial
//     cost with no parallel overlap to compensate for.
//   - Unknown under the Optimistic strategy: fork, propagating Unknown to
//     both children, and fold each branch's own elapsed time into the
//     calling worker's bootstrap accumulator via explicit return values
//     (never by re-reading per-worker state after the join, since the
//     parent may resume on a different worker).
//   - Parallel or ForceParallel: fork, propagating the current mode to
//     both children.
func Fork2(f1, f2 func()) {
	mode := CurrentMode()
	switch mode {
	case Sequential, ForceSequential:
		f1()
		f2()
	case Unknown:
		if currentStrategy() == StrategyHonest {
			f1()
			f2()
			return
		}
		forkUnknownOptimistic(f1, f2)
	default: // Parallel, ForceParallel
		internalruntime.PrimitiveFork2(
			func() { withMode(mode, f1) },
			func() { withMode(mode, f2) },
		)
	}
}

// forkUnknownOptimistic implements the Optimistic branch of Fork2 under
// Unknown mode. It closes the calling worker's currently open timer
// interval, forks both branches (each opening its own fresh timer on
// whichever worker runs it), and on join folds
// upper_work + left_work + right_work into the calling worker's bootstrap
// accumulator before reopening its timer.
func forkUnknownOptimistic(f1, f2 func()) {
	bs := myBootstrap()
	upper := Since(bs.timerOpen)

	left, right := fork2TimedBranches(f1, f2)

	bs.work += upper + left + right
	bs.timerOpen = Now()
}

// fork2TimedBranches runs f1 and f2 under Unknown mode on (possibly)
// different workers and returns each branch's own elapsed cycles, measured
// on whichever worker actually ran it. The values are threaded back purely
// through these return values, never through ambient per-worker state, so
// they stay correct regardless of which worker resumes the caller after
// the join.
func fork2TimedBranches(f1, f2 func()) (leftElapsed, rightElapsed Cycles) {
	run := func(f func()) Cycles {
		start := Now()
		withMode(Unknown, f)
		return Since(start)
	}
	internalruntime.PrimitiveFork2(func() {
		leftElapsed = run(f1)
	}, func() {
		rightElapsed = run(f2)
	})
	return
}
