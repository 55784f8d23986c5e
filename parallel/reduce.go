// File: parallel/reduce.go
// Author: momentics <momentics@gmail.com>
//
// Grounded on original_source/test/utils/reduce.hpp's reduce/reduce_serial:
// this Go version folds the block-then-recombine structure into a single
// controller-guided binary split instead of the original's explicit
// tmp_array block pass, since Fork2/Cstmt already give us that recursion
// for free.

package parallel

import (
	"fmt"

	"github.com/momentics/granularity-go/granularity"
)

// Reduce folds combine over items, starting from identity. combine must be
// associative; identity must be its identity element.
func Reduce[T any](items []T, identity T, combine func(a, b T) T) T {
	h := granularity.HolderFor(fmt.Sprintf("reduce[%T]", identity))
	return reduceRange(h, items, 0, len(items), identity, combine)
}

func reduceRange[T any](h *granularity.Holder, items []T, lo, hi int, identity T, combine func(a, b T) T) T {
	var result T
	comp := func() granularity.Complexity { return granularity.Complexity(hi - lo) }
	granularity.CstmtPaired(h, comp, comp, func() {
		n := hi - lo
		switch {
		case n <= 0:
			result = identity
		case n == 1:
			result = items[lo]
		default:
			mid := lo + n/2
			var left, right T
			granularity.Fork2(func() {
				left = reduceRange(h, items, lo, mid, identity, combine)
			}, func() {
				right = reduceRange(h, items, mid, hi, identity, combine)
			})
			result = combine(left, right)
		}
	}, func() {
		result = reduceSerial(items, lo, hi, identity, combine)
	})
	return result
}

func reduceSerial[T any](items []T, lo, hi int, identity T, combine func(a, b T) T) T {
	acc := identity
	for i := lo; i < hi; i++ {
		acc = combine(acc, items[i])
	}
	return acc
}
