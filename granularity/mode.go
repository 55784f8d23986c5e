// File: granularity/mode.go
// Author: momentics <momentics@gmail.com>
//
// Execution modes and the dynamic-scope cell that threads them through
// nested controlled statements without explicit parameters. Grounded on
// original_source/include/granularity.hpp's execmode_type/execmode_combine
// and dynidentifier<Item>.

package granularity

// ExecutionMode is carried by the per-worker dynamic-scope cell and governs
// how nested controlled statements and forks behave.
type ExecutionMode int8

const (
	// ForceParallel: caller demands parallel execution; overrides prediction.
	ForceParallel ExecutionMode = iota
	// ForceSequential: caller demands sequential execution; overrides prediction.
	ForceSequential
	// Sequential: inside a sequential region; nested statements stay sequential.
	Sequential
	// Parallel: inside a parallel region; nested decisions follow prediction.
	Parallel
	// Unknown: inside a bootstrapping measurement (estimator undefined).
	Unknown
)

func (m ExecutionMode) String() string {
	switch m {
	case ForceParallel:
		return "ForceParallel"
	case ForceSequential:
		return "ForceSequential"
	case Sequential:
		return "Sequential"
	case Parallel:
		return "Parallel"
	case Unknown:
		return "Unknown"
	default:
		return "ExecutionMode(?)"
	}
}

// Combine implements the mode combinator: `p` is the caller's mode, `c`
// is the callee's newly-decided mode. A Force* value on either side
// always wins, checked on the callee first since a callee can itself be
// an explicit Force* override -- so combine(Sequential, ForceParallel)
// yields ForceParallel, not Sequential; otherwise a Sequential caller
// propagates down unconditionally; otherwise the callee's own decision
// applies.
func Combine(p, c ExecutionMode) ExecutionMode {
	if c == ForceParallel || c == ForceSequential {
		return c
	}
	switch p {
	case ForceParallel, ForceSequential, Sequential:
		return p
	default:
		return c
	}
}

// modeCell is a per-worker stack of execution modes with scoped push/pop.
// The stack is never empty; its initial value is Parallel.
type modeCell struct {
	stack []ExecutionMode
}

func newModeCell() *modeCell {
	return &modeCell{stack: []ExecutionMode{Parallel}}
}

// top returns the current (innermost) mode.
func (c *modeCell) top() ExecutionMode {
	return c.stack[len(c.stack)-1]
}

// push pushes a new mode onto the stack.
func (c *modeCell) push(m ExecutionMode) {
	c.stack = append(c.stack, m)
}

// pop removes the innermost mode. Callers must guarantee a matching push.
func (c *modeCell) pop() {
	c.stack = c.stack[:len(c.stack)-1]
}

var modeCells = NewPerWorker[*modeCell](nil)

func myModeCell() *modeCell {
	cell := modeCells.Mine()
	if *cell == nil {
		*cell = newModeCell()
	}
	return *cell
}

// CurrentMode returns the calling worker's current execution mode.
func CurrentMode() ExecutionMode {
	return myModeCell().top()
}

// withMode pushes mode for the duration of body, guaranteeing pop on every
// exit path including a panic unwinding through body -- the scoped
// push/pop guard needs.
func withMode(mode ExecutionMode, body func()) {
	cell := myModeCell()
	cell.push(mode)
	defer cell.pop()
	body()
}
