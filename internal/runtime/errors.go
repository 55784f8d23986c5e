// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Error definitions for the runtime package.

package runtime

import "errors"

var (
	// ErrExecutorClosed indicates the executor has been shut down.
	ErrExecutorClosed = errors.New("runtime: executor is closed")

	// ErrInvalidWorkerCount indicates invalid worker count configuration.
	ErrInvalidWorkerCount = errors.New("runtime: invalid worker count")
)
