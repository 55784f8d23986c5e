// File: granularity/estimator.go
// Author: momentics <momentics@gmail.com>
//
// The on-line cost learner. Grounded on
// original_source/include/granularity.hpp's `estimator` class.

package granularity

import (
	"math"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/momentics/granularity-go/control"
)

// UpdateRegime selects which report() algorithm an estimator uses. Both
// are supported side by side, selectable per estimator.
type UpdateRegime int

const (
	// WeightedAverage folds each new per-worker measurement into that
	// worker's local constant with weight W=8 against the previous value.
	WeightedAverage UpdateRegime = iota
	// MonotoneShared descends the shared constant multiplicatively toward
	// newly observed, lower measurements, never increasing it.
	MonotoneShared
)

const (
	weightedAverageFactor = 8.0
	minReportSharedFactor = 2.0
)

// Estimator learns a single constant c for one call site such that
// elapsed ≈ c·m, and exposes a prediction. Safe for concurrent use by
// multiple workers: reports on the same estimator are not ordered, so
// its update must tolerate concurrent reporters.
type Estimator struct {
	name   string
	regime UpdateRegime

	sharedBits atomic.Uint64 // math.Float64bits(Cost); CostUndefined until first shared write
	estimated  atomic.Bool

	locals *PerWorker[float64] // Cost value; CostUndefined sentinel until this worker's first local write

	lastReportNanos *PerWorker[int64]
	reportCounts    *PerWorker[uint64]
	throttleNanos   int64

	log *EstimatorLog
}

// EstimatorOption configures an Estimator at construction.
type EstimatorOption func(*Estimator)

// WithUpdateRegime selects the report() algorithm. Default WeightedAverage.
func WithUpdateRegime(r UpdateRegime) EstimatorOption {
	return func(e *Estimator) { e.regime = r }
}

// WithReportThrottle suppresses reports that arrive within d of the
// calling worker's previous report -- except the very first report ever
// (the one that flips IsUndefined to false), which is never throttled.
func WithReportThrottle(d time.Duration) EstimatorOption {
	return func(e *Estimator) { e.throttleNanos = int64(d) }
}

// WithLog attaches a bounded event log.
func WithLog(l *EstimatorLog) EstimatorOption {
	return func(e *Estimator) { e.log = l }
}

// NewEstimator creates an estimator named name, undefined until its first
// report or an explicit Preload.
func NewEstimator(name string, opts ...EstimatorOption) *Estimator {
	e := &Estimator{
		name:            name,
		locals:          NewPerWorker[float64](float64(CostUndefined)),
		lastReportNanos: NewPerWorker[int64](0),
		reportCounts:    NewPerWorker[uint64](0),
	}
	e.sharedBits.Store(math.Float64bits(float64(CostUndefined)))
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = currentEstimatorLog()
	}
	if v, ok := control.Default().Lookup(name); ok {
		e.Preload(v)
	}
	control.Default().Register(e)
	return e
}

// Name returns the estimator's stable identifier, used as the constants
// store key and log tag.
func (e *Estimator) Name() string { return e.name }

// IsUndefined reports whether no confirmed measurement has been folded in
// yet -- equivalently, whether the one-shot estimated flag is still unset.
func (e *Estimator) IsUndefined() bool {
	return !e.estimated.Load()
}

// Preload seeds the estimator directly to Defined with a constant loaded
// from the sidecar file, jumping straight past the usual bootstrap.
func (e *Estimator) Preload(constant float64) {
	e.sharedBits.Store(math.Float64bits(constant))
	e.estimated.Store(true)
}

// SharedConstant returns the current shared constant, for persistence to
// the sidecar on shutdown.
func (e *Estimator) SharedConstant() float64 {
	return math.Float64frombits(e.sharedBits.Load())
}

func (e *Estimator) getConstant() Cost {
	local := Cost(*e.locals.Mine())
	if local != CostUndefined {
		return local
	}
	return Cost(e.SharedConstant())
}

func (e *Estimator) getConstantOrPessimistic() Cost {
	c := e.getConstant()
	if c == CostUndefined {
		return CostPessimistic
	}
	return c
}

// Predict returns the predicted execution time in microseconds for m.
// Tiny complexities predict tiny; undefined complexities must never reach
// Predict (the controlled statement routes those to Parallel directly).
func (e *Estimator) Predict(m Complexity) Cost {
	if m.IsTiny() {
		return CostTiny
	}
	if m.IsUndefined() {
		panic("granularity: Predict called with an undefined complexity")
	}
	c := e.getConstantOrPessimistic()
	predicted := Cost(float64(c) * float64(m))
	if e.log != nil {
		e.log.Record(LogEvent{
			Worker: MyWorkerID(), Type: EventPredict, Name: e.name,
			Complexity: float64(m), Value: float64(predicted), Timestamp: WallNow(),
		})
	}
	return predicted
}

// Report feeds one (m, elapsed) measurement back into the estimator. m is
// clamped to at least 1. The first report ever folded
// into this estimator flips IsUndefined to false and is never suppressed
// by throttling.
func (e *Estimator) Report(m Complexity, elapsed Cycles) {
	m = clampComplexity(m)
	firstEver := e.IsUndefined()
	if !firstEver && e.throttled() {
		return
	}

	measured := ElapsedMicros(elapsed) / float64(m)

	var candidate float64
	switch e.regime {
	case MonotoneShared:
		candidate = measured
	default:
		candidate = e.nextWeightedAverage(measured)
	}
	*e.locals.Mine() = candidate
	e.updateSharedMonotone(candidate)

	e.estimated.CompareAndSwap(false, true)

	counts := e.reportCounts.Mine()
	*counts++
	*e.lastReportNanos.Mine() = WallNow()

	if e.log != nil {
		e.log.Record(LogEvent{
			Worker: MyWorkerID(), Type: EventReport, Name: e.name,
			Complexity: float64(m), Value: measured, Timestamp: WallNow(),
		})
	}
}

// nextWeightedAverage folds measured into this worker's local constant
// with weight W=8 against the previous value, returning the new value
// without writing it back.
func (e *Estimator) nextWeightedAverage(measured float64) float64 {
	old := Cost(*e.locals.Mine())
	if old == CostUndefined {
		return measured
	}
	return (weightedAverageFactor*float64(old) + measured) / (weightedAverageFactor + 1.0)
}

// updateSharedMonotone descends the shared constant toward candidate via a
// bounded-backoff CAS loop: the shared constant never increases, matching
// the original estimator::update()'s unconditional shared-floor maintenance
// on every report regardless of which regime computed candidate.
func (e *Estimator) updateSharedMonotone(candidate float64) {
	for attempt := 0; ; attempt++ {
		oldBits := e.sharedBits.Load()
		oldVal := math.Float64frombits(oldBits)
		newVal := oldVal
		if Cost(oldVal) == CostUndefined {
			newVal = candidate
		} else if minShared := oldVal / minReportSharedFactor; candidate < minShared {
			newVal = minShared
		}
		if newVal == oldVal {
			break
		}
		if e.sharedBits.CompareAndSwap(oldBits, math.Float64bits(newVal)) {
			if e.log != nil {
				e.log.Record(LogEvent{
					Worker: MyWorkerID(), Type: EventUpdateShared, Name: e.name,
					Value: newVal, Timestamp: WallNow(),
				})
			}
			break
		}
		backoff(attempt)
	}
}

func (e *Estimator) throttled() bool {
	if e.throttleNanos <= 0 {
		return false
	}
	last := *e.lastReportNanos.Mine()
	return WallNow()-last < e.throttleNanos
}

// backoff briefly yields before retrying a failed CAS, bounded so a
// contended estimator never stalls a worker for long.
func backoff(attempt int) {
	if attempt > 6 {
		attempt = 6
	}
	runtime.Gosched()
	if attempt > 2 {
		time.Sleep(time.Duration(1<<uint(attempt)) * time.Microsecond)
	}
}
