// File: granularity/errors.go
// Author: momentics <momentics@gmail.com>
//
// Sentinel errors, grounded on hioload-ws's core/concurrency/errors.go
// style (plain errors.New values, no wrapping machinery).

package granularity

import "errors"

var (
	// ErrConstantsFileUnreadable is returned by Controller.Shutdown when
	// writing the learned-constants sidecar fails. Loading a missing or
	// malformed sidecar is never an error; only the write path can fail
	// this way.
	ErrConstantsFileUnreadable = errors.New("granularity: could not write constants sidecar")

	// ErrWorkerExhaustion is the panic value's message text substitute for
	// MyWorkerID's panic; kept here as a sentinel so callers that want to
	// recover() can match on it with errors.Is after wrapping.
	ErrWorkerExhaustion = errors.New("granularity: more than MaxWorkers goroutines have requested a worker id")
)
