// File: parallel/mergesort.go
// Author: momentics <momentics@gmail.com>
//
// Grounded on original_source/test/utils/mergesort.hpp's merge_sort /
// merge_sort_seq: split the range in half, sort each half (in parallel or
// sequentially, per the controller's decision), then merge using a
// temporary buffer.

package parallel

import (
	"fmt"

	"github.com/momentics/granularity-go/granularity"
)

// MergeSort returns a sorted copy of items; less must be a strict weak
// ordering. The controller decides, at every recursive split, whether to
// sort the two halves in parallel or fall back to a plain sequential
// merge sort for the remainder.
func MergeSort[T any](items []T, less func(a, b T) bool) []T {
	n := len(items)
	result := make([]T, n)
	copy(result, items)
	if n < 2 {
		return result
	}
	tmp := make([]T, n)
	var zero T
	h := granularity.HolderFor(fmt.Sprintf("mergesort[%T]", zero))
	mergeSortRange(h, result, 0, n, tmp, less)
	return result
}

func mergeSortRange[T any](h *granularity.Holder, a []T, lo, hi int, tmp []T, less func(a, b T) bool) {
	comp := func() granularity.Complexity { return granularity.Complexity(hi - lo) }
	granularity.CstmtPaired(h, comp, comp, func() {
		n := hi - lo
		if n <= 1 {
			return
		}
		mid := lo + n/2
		granularity.Fork2(func() {
			mergeSortRange(h, a, lo, mid, tmp, less)
		}, func() {
			mergeSortRange(h, a, mid, hi, tmp, less)
		})
		mergeInPlace(a, lo, mid, hi, tmp, less)
	}, func() {
		mergeSortSeq(a, lo, hi, tmp, less)
	})
}

// mergeSortSeq is the plain, uninstrumented sequential mergesort used both
// as CstmtPaired's sequential branch and, recursively, within itself once
// a controlled statement has committed to running sequentially --
// mirroring merge_sort_seq's separation from the controller-aware
// merge_sort in the original.
func mergeSortSeq[T any](a []T, lo, hi int, tmp []T, less func(a, b T) bool) {
	n := hi - lo
	if n <= 1 {
		return
	}
	mid := lo + n/2
	mergeSortSeq(a, lo, mid, tmp, less)
	mergeSortSeq(a, mid, hi, tmp, less)
	mergeInPlace(a, lo, mid, hi, tmp, less)
}

func mergeInPlace[T any](a []T, lo, mid, hi int, tmp []T, less func(a, b T) bool) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if less(a[j], a[i]) {
			tmp[k] = a[j]
			j++
		} else {
			tmp[k] = a[i]
			i++
		}
		k++
	}
	for i < mid {
		tmp[k] = a[i]
		i++
		k++
	}
	for j < hi {
		tmp[k] = a[j]
		j++
		k++
	}
	copy(a[lo:hi], tmp[lo:hi])
}
