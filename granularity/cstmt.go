// File: granularity/cstmt.go
// Author: momentics <momentics@gmail.com>
//
// The controlled statement: the decision procedure that picks Sequential
// or Parallel for one call site and reports back what actually happened.
// Grounded on original_source/include/granularity.hpp's cstmt free
// function template.

package granularity

// Cstmt wraps a call site with a single complexity function and a single
// body, used for both the sequential and parallel branches.
func Cstmt(h *Holder, complexity func() Complexity, body func()) {
	CstmtSeq(h, complexity, body, body)
}

// CstmtSeq wraps a call site with one complexity function but distinct
// parallel and sequential bodies.
func CstmtSeq(h *Holder, complexity func() Complexity, parBody, seqBody func()) {
	CstmtPaired(h, complexity, complexity, parBody, seqBody)
}

// CstmtPaired additionally accepts distinct complexity functions for the
// two branches: either one complexity() used for both, or a pair where
// the two differ. parComplexity
// decides the branch; if Sequential is chosen, seqComplexity is
// recomputed and is the value actually folded into the estimator's report
// -- the sequential path may have a cheaper or more representative way to
// measure its own size than the one used to decide whether to take it.
func CstmtPaired(h *Holder, parComplexity, seqComplexity func() Complexity, parBody, seqBody func()) {
	switch currentGlobalMode() {
	case ModeSequentialBaseline:
		seqBody()
		return
	case ModeParallelElision:
		parBody()
		return
	case ModeManual:
		withMode(ForceParallel, parBody)
		return
	}

	est := h.Estimator()
	p := CurrentMode()

	m := parComplexity()

	var c ExecutionMode
	var predicted Cost
	havePredicted := false

	if est.IsUndefined() {
		c = Unknown
	} else {
		switch {
		case m.IsTiny():
			c = Sequential
		case m.IsUndefined():
			c = Parallel
		default:
			predicted = est.Predict(clampComplexity(m))
			havePredicted = true
			if predicted <= currentKappa() {
				c = Sequential
			} else {
				c = Parallel
			}
		}
	}

	bs := myBootstrap()
	if currentStrategy() == StrategyHonest && bs.nestedUnknown > 0 {
		c = Sequential
	}

	final := Combine(p, c)

	switch final {
	case Unknown:
		runUnknownBootstrap(est, m, parBody)
	case Sequential, ForceSequential:
		runSequentialReporting(est, seqComplexity, seqBody, final)
	default: // Parallel, ForceParallel
		runParallelMaybeAdjusted(predicted, havePredicted, parBody, final)
	}
}

// runSequentialReporting runs seqBody under mode, timing it and reporting
// seqComplexity()'s value (computed after the decision, per CstmtPaired's
// doc) back to est.
func runSequentialReporting(est *Estimator, seqComplexity func() Complexity, seqBody func(), mode ExecutionMode) {
	m := seqComplexity()
	if m.IsTiny() || m.IsUndefined() {
		withMode(mode, seqBody)
		return
	}
	start := Now()
	withMode(mode, seqBody)
	elapsed := Since(start)
	est.Report(m, elapsed)
}

// runParallelMaybeAdjusted runs parBody under mode. When the Optimistic
// strategy is active and this call is itself nested inside an open Unknown
// bootstrap on the same worker, it also times the call and folds
// predicted-vs-actual into the outer's time_adjustment accumulator, per
// the optimistic nested-Unknown accounting policy.
func runParallelMaybeAdjusted(predicted Cost, havePredicted bool, parBody func(), mode ExecutionMode) {
	bs := myBootstrap()
	adjusting := currentStrategy() == StrategyOptimistic && bs.optimisticDepth > 0 && havePredicted

	if !adjusting {
		withMode(mode, parBody)
		return
	}

	start := Now()
	withMode(mode, parBody)
	actual := Since(start)
	predictedCycles := int64(float64(predicted) * ticksPerMicrosecond())
	bs.timeAdjustment += predictedCycles - int64(actual)
}

// runUnknownBootstrap runs parBody with mode Unknown, timing the whole
// call end-to-end (plus any fork2 branch-sum accounting folded in along
// the way) and reporting the total against m, the call site's own
// complexity, to est -- the one-shot measurement that flips est from
// Undefined to Defined. m comes from parComplexity(), the same function
// that would have been used to size the call had est already been
// defined; a Tiny or Undefined m carries no reliable per-unit scale, so
// the bootstrap sample is dropped in that case rather than divided by a
// sentinel, matching runSequentialReporting's guard.
func runUnknownBootstrap(est *Estimator, m Complexity, parBody func()) {
	bs := myBootstrap()

	savedWork := bs.work
	savedAdjustment := bs.timeAdjustment
	savedTimerOpen := bs.timerOpen
	bs.work = 0
	bs.timeAdjustment = 0
	bs.timerOpen = Now()

	honest := currentStrategy() == StrategyHonest
	if honest {
		bs.nestedUnknown++
	} else {
		bs.optimisticDepth++
	}

	withMode(Unknown, parBody)

	if honest {
		bs.nestedUnknown--
	} else {
		bs.optimisticDepth--
	}

	ownTail := Since(bs.timerOpen)
	total := int64(bs.work) + int64(ownTail) + bs.timeAdjustment
	if total < 0 {
		total = 0
	}

	bs.work = savedWork
	bs.timeAdjustment = savedAdjustment
	bs.timerOpen = savedTimerOpen

	if m.IsTiny() || m.IsUndefined() {
		return
	}
	est.Report(clampComplexity(m), Cycles(total))
}
