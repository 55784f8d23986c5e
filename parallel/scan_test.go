package parallel

import "testing"

func TestScanExclusiveMatchesPrefixSums(t *testing.T) {
	const n = 5000
	items := make([]int, n)
	for i := range items {
		items[i] = 1
	}
	got := ScanExclusive(items, 0, func(a, b int) int { return a + b })
	if len(got) != n {
		t.Fatalf("len(ScanExclusive) = %d, want %d", len(got), n)
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("ScanExclusive result[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestScanInclusiveMatchesRunningSum(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	got := ScanInclusive(items, 0, func(a, b int) int { return a + b })
	want := []int{1, 3, 6, 10, 15}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ScanInclusive result[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestScanExclusiveEmpty(t *testing.T) {
	got := ScanExclusive([]int{}, 0, func(a, b int) int { return a + b })
	if len(got) != 0 {
		t.Fatalf("len(ScanExclusive([])) = %d, want 0", len(got))
	}
}
