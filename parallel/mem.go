// File: parallel/mem.go
// Author: momentics <momentics@gmail.com>
//
// Grounded on original_source/include/pmem.hpp's fill/copy: bulk
// memory-transfer primitives expressed as a parallel-for over the
// destination range.

package parallel

import "github.com/momentics/granularity-go/granularity"

// Fill sets every element of items to val.
func Fill[T any](items []T, val T) {
	For[T](0, len(items), func(l, r int) granularity.Complexity {
		return granularity.Complexity(r - l)
	}, func(i int) {
		items[i] = val
	}, func(l, r int) {
		for i := l; i < r; i++ {
			items[i] = val
		}
	})
}

// Copy copies min(len(src), len(dst)) elements from src into dst.
func Copy[T any](dst, src []T) {
	n := len(src)
	if len(dst) < n {
		n = len(dst)
	}
	For[T](0, n, func(l, r int) granularity.Complexity {
		return granularity.Complexity(r - l)
	}, func(i int) {
		dst[i] = src[i]
	}, func(l, r int) {
		copy(dst[l:r], src[l:r])
	})
}
