// File: parallel/map.go
// Author: momentics <momentics@gmail.com>
//
// Grounded on original_source/test/utils/map.hpp's map/map_serial: apply
// f to every element, writing into a freshly allocated result slice.

package parallel

import (
	"fmt"

	"github.com/momentics/granularity-go/granularity"
)

// Map returns a new slice holding f(items[i]) for every i.
func Map[In, Out any](items []In, f func(In) Out) []Out {
	result := make([]Out, len(items))
	var zeroIn In
	var zeroOut Out
	h := granularity.HolderFor(fmt.Sprintf("map[%T->%T]", zeroIn, zeroOut))
	forRange(h, 0, len(items), func(l, r int) granularity.Complexity {
		return granularity.Complexity(r - l)
	}, func(i int) {
		result[i] = f(items[i])
	}, func(l, r int) {
		for i := l; i < r; i++ {
			result[i] = f(items[i])
		}
	})
	return result
}

// MapInPlace applies f to every element of items, overwriting it.
func MapInPlace[T any](items []T, f func(T) T) {
	var zero T
	h := granularity.HolderFor(fmt.Sprintf("map_inplace[%T]", zero))
	forRange(h, 0, len(items), func(l, r int) granularity.Complexity {
		return granularity.Complexity(r - l)
	}, func(i int) {
		items[i] = f(items[i])
	}, func(l, r int) {
		for i := l; i < r; i++ {
			items[i] = f(items[i])
		}
	})
}
