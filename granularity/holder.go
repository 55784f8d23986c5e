// File: granularity/holder.go
// Author: momentics <momentics@gmail.com>
//
// Per-call-site estimator ownership. Grounded on
// original_source/include/ploop.hpp's control_by_prediction /
// contr::parallel_for<...>::contr static-template-instantiation pattern:
// Go has no per-type static storage, so a generic call site registers
// itself under a string key instead of relying on the compiler to give it
// one static per instantiation.

package granularity

import (
	"fmt"
	"sync"
)

// Holder owns exactly one Estimator, created lazily the first time the
// call site it represents is reached. A Holder is cheap to
// declare as a package-level var for a lexically fixed call site:
//
//	var cfib = granularity.NewHolder("fib", 0)
//
// mirroring the original's `control_by_prediction cfib("fib")` static.
type Holder struct {
	once      sync.Once
	estimator *Estimator
	name      string
	siteID    int
	opts      []EstimatorOption
}

// NewHolder creates a holder for a call site identified by name plus a
// caller-chosen siteID; its estimator is named "name#siteID". Use siteID to
// disambiguate two call sites that would otherwise share a name. Each call
// returns a new Holder: no registry is consulted, so two calls with the
// same pair yield two separate estimators (HolderFor is the keyed registry).
func NewHolder(name string, siteID int, opts ...EstimatorOption) *Holder {
	return &Holder{name: name, siteID: siteID, opts: opts}
}

// Estimator returns this call site's estimator, constructing it (and
// registering it with the constants store) on the first call.
func (h *Holder) Estimator() *Estimator {
	h.once.Do(func() {
		h.estimator = NewEstimator(fmt.Sprintf("%s#%d", h.name, h.siteID), h.opts...)
	})
	return h.estimator
}

var holderRegistry sync.Map // key: string -> *Holder

// HolderFor returns the process-wide Holder for key, creating it (and its
// Estimator, lazily, on first use) if it doesn't exist yet. Intended for
// generic call sites, where a single Go function is instantiated over many
// types and each instantiation needs its own estimator: callers fold the
// relevant type parameters into key themselves, e.g.
// fmt.Sprintf("parallel_for[%T]", zero), mirroring sota<T>() in ploop.hpp.
func HolderFor(key string, opts ...EstimatorOption) *Holder {
	if v, ok := holderRegistry.Load(key); ok {
		return v.(*Holder)
	}
	h := NewHolder(key, 0, opts...)
	actual, _ := holderRegistry.LoadOrStore(key, h)
	return actual.(*Holder)
}
