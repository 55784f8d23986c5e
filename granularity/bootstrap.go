// File: granularity/bootstrap.go
// Author: momentics <momentics@gmail.com>
//
// Per-worker state used while an estimator is undefined and a controlled
// statement is running its one-shot, end-to-end-timed Unknown measurement,
// including nested-Unknown accounting and the timing bookkeeping that
// measurement needs.

package granularity

// bootstrapState tracks, per worker, the open Unknown measurement(s) on
// that worker. Fork2 branches never read another worker's bootstrapState:
// each branch opens its own fresh timer and reports its elapsed back to
// the caller through an explicit return value rather than through this
// ambient slot, precisely because the parent may resume on a different
// worker after a join.
type bootstrapState struct {
	// nestedUnknown is > 0 while a Honest-strategy Unknown measurement is
	// open on this worker; nested cstmt calls are forced Sequential while
	// it is.
	nestedUnknown int

	// optimisticDepth is > 0 while an Optimistic-strategy Unknown
	// measurement is open on this worker.
	optimisticDepth int

	// timeAdjustment accumulates the optimistic-strategy correction
	// `predicted(inner) - elapsed(inner)` for nested calls that completed
	// without themselves bootstrapping, so the outer's own elapsed can be
	// compensated toward a serial-equivalent estimate. Signed: a slower-
	// than-predicted inner call contributes a negative correction.
	timeAdjustment int64

	// work accumulates the sum of fork2 branch elapsed times during an
	// open Optimistic Unknown measurement, approximating serial work
	// rather than wall-clock span.
	work Cycles

	// timerOpen is the cycle reading at which the current open interval
	// started (reset on every fork2 join under Optimistic, and at the
	// start/resume of the outer measurement).
	timerOpen Cycles
}

var bootstraps = NewPerWorker[*bootstrapState](nil)

func myBootstrap() *bootstrapState {
	p := bootstraps.Mine()
	if *p == nil {
		*p = &bootstrapState{}
	}
	return *p
}
