package parallel

import (
	"testing"

	"github.com/momentics/granularity-go/granularity"
)

func TestForVisitsEveryIndexExactlyOnce(t *testing.T) {
	const n = 5000
	seen := make([]int32, n)
	For[int](0, n, func(l, r int) granularity.Complexity {
		return granularity.Complexity(r - l)
	}, func(i int) {
		seen[i]++
	}, func(l, r int) {
		for i := l; i < r; i++ {
			seen[i]++
		}
	})
	for i, c := range seen {
		if c != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, c)
		}
	}
}

func TestForSimpleVisitsEveryIndex(t *testing.T) {
	const n = 200
	seen := make([]bool, n)
	ForSimple[int](0, n, func(i int) { seen[i] = true })
	for i, ok := range seen {
		if !ok {
			t.Fatalf("index %d never visited", i)
		}
	}
}

func TestBlockedForCoversWholeRangeInBlocks(t *testing.T) {
	const n = 97
	const blockSize = 10
	seen := make([]int32, n)
	BlockedFor[int](0, n, blockSize, func(l, r int) {
		if r-l > blockSize {
			t.Errorf("block [%d,%d) exceeds blockSize %d", l, r, blockSize)
		}
		for i := l; i < r; i++ {
			seen[i]++
		}
	})
	for i, c := range seen {
		if c != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, c)
		}
	}
}
