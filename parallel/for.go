// File: parallel/for.go
// Author: momentics <momentics@gmail.com>
//
// Range-based parallel-for loop. Grounded on
// original_source/include/ploop.hpp's range::parallel_for / blocked_for:
// the range is halved at each controlled statement until the estimator
// says the remaining sub-range is cheap enough to run sequentially.

package parallel

import (
	"fmt"

	"github.com/momentics/granularity-go/granularity"
)

// For runs body(i) for every i in [lo, hi). complexityRange estimates the
// cost of a sub-range [l, r) so the controller can decide whether to keep
// splitting or fall back to seqBody for the whole remaining range. T is
// never touched by the loop itself -- it only distinguishes this call
// site's estimator from every other instantiation of For, mirroring the
// per-type static estimator instances of contr::parallel_for<...> in
// ploop.hpp.
func For[T any](
	lo, hi int,
	complexityRange func(lo, hi int) granularity.Complexity,
	body func(i int),
	seqBody func(lo, hi int),
) {
	var zero T
	h := granularity.HolderFor(fmt.Sprintf("parallel_for[%T]", zero))
	forRange(h, lo, hi, complexityRange, body, seqBody)
}

func forRange(
	h *granularity.Holder,
	lo, hi int,
	complexityRange func(lo, hi int) granularity.Complexity,
	body func(i int),
	seqBody func(lo, hi int),
) {
	comp := func() granularity.Complexity { return complexityRange(lo, hi) }
	granularity.CstmtPaired(h, comp, comp, func() {
		n := hi - lo
		switch {
		case n <= 0:
			return
		case n == 1:
			body(lo)
		default:
			mid := lo + n/2
			granularity.Fork2(func() {
				forRange(h, lo, mid, complexityRange, body, seqBody)
			}, func() {
				forRange(h, mid, hi, complexityRange, body, seqBody)
			})
		}
	}, func() {
		seqBody(lo, hi)
	})
}

// ForSimple runs body(i) for every i in [lo, hi), estimating cost as the
// linear range length, the counterpart of ploop.hpp's single-argument
// parallel_for(lo, hi, body) overload.
func ForSimple[T any](lo, hi int, body func(i int)) {
	For[T](lo, hi, func(l, r int) granularity.Complexity {
		return granularity.Complexity(r - l)
	}, body, func(l, r int) {
		for i := l; i < r; i++ {
			body(i)
		}
	})
}

// BlockedFor splits [lo, hi) into fixed-size blocks and runs body on each
// block under controller-decided parallelism, grounded on ploop.hpp's
// blocked_for (manual fixed-size decomposition, independent of the
// per-element estimator For uses).
func BlockedFor[T any](lo, hi, blockSize int, body func(l, r int)) {
	if blockSize <= 0 {
		blockSize = 1
	}
	n := (hi - lo + blockSize - 1) / blockSize
	var zero T
	h := granularity.HolderFor(fmt.Sprintf("blocked_for[%T]", zero))
	forRange(h, 0, n, func(l, r int) granularity.Complexity {
		return granularity.Complexity(r - l)
	}, func(b int) {
		l, r := blockBounds(lo, hi, blockSize, b, b+1)
		body(l, r)
	}, func(left, right int) {
		l, r := blockBounds(lo, hi, blockSize, left, right)
		body(l, r)
	})
}

func blockBounds(lo, hi, blockSize, left, right int) (int, int) {
	l := lo + left*blockSize
	r := lo + right*blockSize
	if r > hi {
		r = hi
	}
	if l > hi {
		l = hi
	}
	return l, r
}
