// File: granularity/cost.go
// Author: momentics <momentics@gmail.com>
//
// Cost values and their sentinels. Grounded on
// original_source/include/granularity.hpp's cost::undefined/unknown/tiny/
// pessimistic. See DESIGN.md Open Question 3 for why CostPessimistic is
// finite rather than +Inf in this module.

package granularity

// Cost is a predicted or measured execution time, in microseconds per unit
// of Complexity (when used as a learned constant), or microseconds
// outright (when used as a prediction to compare against kappa).
type Cost float64

const (
	// CostUndefined marks a constant that has not been learned yet.
	CostUndefined Cost = -1.0
	// CostUnknown forces parallel execution.
	CostUnknown Cost = -2.0
	// CostTiny forces sequential execution and skips time measurement.
	CostTiny Cost = -3.0
)

// CostPessimistic is the fallback constant used when nothing has been
// learned yet, chosen finite (1.0 microsecond per unit of m) so that a
// tiny m can still predict below kappa even before any measurement lands.
var CostPessimistic Cost = 1.0
