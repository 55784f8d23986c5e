// File: parallel/filter.go
// Author: momentics <momentics@gmail.com>
//
// Grounded on original_source/test/utils/filter.hpp's filter: mark
// matching elements with an exclusive scan over a 0/1 mask, then scatter
// each matching element to its scanned position.

package parallel

import (
	"fmt"

	"github.com/momentics/granularity-go/granularity"
)

// Filter returns the elements of items for which pred returns true, in
// their original relative order.
func Filter[T any](items []T, pred func(T) bool) []T {
	n := len(items)
	mask := make([]int, n)

	var zero T
	h := granularity.HolderFor(fmt.Sprintf("filter_mark[%T]", zero))
	forRange(h, 0, n, func(l, r int) granularity.Complexity {
		return granularity.Complexity(r - l)
	}, func(i int) {
		if pred(items[i]) {
			mask[i] = 1
		}
	}, func(l, r int) {
		for i := l; i < r; i++ {
			if pred(items[i]) {
				mask[i] = 1
			}
		}
	})

	prefix := ScanExclusive(mask, 0, func(a, b int) int { return a + b })
	count := 0
	if n > 0 {
		count = prefix[n-1] + mask[n-1]
	}

	result := make([]T, count)
	h2 := granularity.HolderFor(fmt.Sprintf("filter_scatter[%T]", zero))
	forRange(h2, 0, n, func(l, r int) granularity.Complexity {
		return granularity.Complexity(r - l)
	}, func(i int) {
		if mask[i] == 1 {
			result[prefix[i]] = items[i]
		}
	}, func(l, r int) {
		for i := l; i < r; i++ {
			if mask[i] == 1 {
				result[prefix[i]] = items[i]
			}
		}
	})
	return result
}
