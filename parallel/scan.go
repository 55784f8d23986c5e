// File: parallel/scan.go
// Author: momentics <momentics@gmail.com>
//
// Grounded on original_source/test/utils/scan.hpp's scan_exclusive /
// scan_exclusive_serial: split into fixed-size blocks, reduce each block,
// recursively scan the block sums, then re-walk each block applying its
// carry-in. The original threads an explicit tmp_array through three
// controller-guided parallel-for passes; this version does the same three
// passes but lets Go's slices stand in for the tmp_array bookkeeping.

package parallel

import (
	"fmt"

	"github.com/momentics/granularity-go/granularity"
)

const scanBlockSize = 1024

// ScanExclusive returns the exclusive prefix scan of items under combine,
// i.e. result[i] = combine(combine(...combine(identity, items[0])...),
// items[i-1]), result[0] = identity.
func ScanExclusive[T any](items []T, identity T, combine func(a, b T) T) []T {
	result := make([]T, len(items))
	scanExclusiveRange(items, 0, len(items), result, 0, identity, combine)
	return result
}

// ScanInclusive returns the inclusive prefix scan: result[i] = combine of
// items[0..i].
func ScanInclusive[T any](items []T, identity T, combine func(a, b T) T) []T {
	excl := ScanExclusive(items, identity, combine)
	result := make([]T, len(items))
	for i := range items {
		result[i] = combine(excl[i], items[i])
	}
	return result
}

func scanExclusiveRange[T any](items []T, lo, hi int, result []T, resultOffset int, identity T, combine func(a, b T) T) {
	n := hi - lo
	if n <= 0 {
		return
	}
	blocks := (n + scanBlockSize - 1) / scanBlockSize
	if blocks <= 1 {
		scanExclusiveSerial(items, lo, hi, result, resultOffset, identity, combine)
		return
	}

	blockSums := make([]T, blocks)
	h := granularity.HolderFor(fmt.Sprintf("scan_reduce_blocks[%T]", identity))
	forRange(h, 0, blocks, func(l, r int) granularity.Complexity {
		return granularity.Complexity((r - l) * scanBlockSize)
	}, func(b int) {
		bl, br := scanBlockBounds(lo, n, b, b+1)
		blockSums[b] = reduceSerial(items, bl, br, identity, combine)
	}, func(l, r int) {
		for b := l; b < r; b++ {
			bl, br := scanBlockBounds(lo, n, b, b+1)
			blockSums[b] = reduceSerial(items, bl, br, identity, combine)
		}
	})

	scanExclusiveRange(blockSums, 0, blocks, blockSums, 0, identity, combine)

	h2 := granularity.HolderFor(fmt.Sprintf("scan_apply_blocks[%T]", identity))
	forRange(h2, 0, blocks, func(l, r int) granularity.Complexity {
		return granularity.Complexity((r - l) * scanBlockSize)
	}, func(b int) {
		bl, br := scanBlockBounds(lo, n, b, b+1)
		scanExclusiveSerial(items, bl, br, result, resultOffset+b*scanBlockSize, blockSums[b], combine)
	}, func(l, r int) {
		for b := l; b < r; b++ {
			bl, br := scanBlockBounds(lo, n, b, b+1)
			scanExclusiveSerial(items, bl, br, result, resultOffset+b*scanBlockSize, blockSums[b], combine)
		}
	})
}

func scanBlockBounds(lo, n, left, right int) (int, int) {
	bl := lo + left*scanBlockSize
	br := lo + right*scanBlockSize
	if br > lo+n {
		br = lo + n
	}
	return bl, br
}

func scanExclusiveSerial[T any](items []T, lo, hi int, result []T, resultOffset int, identity T, combine func(a, b T) T) {
	current := identity
	for i := lo; i < hi; i++ {
		x := items[i] // read before writing: result may alias items (the block-sum pass scans in place)
		result[resultOffset+i-lo] = current
		current = combine(current, x)
	}
}
