package parallel

import (
	"math/rand"
	"sort"
	"testing"
)

func TestMergeSortProducesSortedOutput(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	items := make([]int, 3000)
	for i := range items {
		items[i] = r.Intn(1_000_000)
	}
	original := append([]int(nil), items...)

	got := MergeSort(items, func(a, b int) bool { return a < b })

	if !sort.IntsAreSorted(got) {
		t.Fatal("MergeSort result is not sorted")
	}
	if len(got) != len(original) {
		t.Fatalf("len(MergeSort) = %d, want %d", len(got), len(original))
	}
	for i := range items {
		if items[i] != original[i] {
			t.Fatal("MergeSort mutated its input slice")
		}
	}

	sortedCopy := append([]int(nil), original...)
	sort.Ints(sortedCopy)
	for i := range got {
		if got[i] != sortedCopy[i] {
			t.Fatalf("MergeSort result[%d] = %d, want %d", i, got[i], sortedCopy[i])
		}
	}
}

func TestMergeSortEmptyAndSingleton(t *testing.T) {
	if got := MergeSort([]int{}, func(a, b int) bool { return a < b }); len(got) != 0 {
		t.Fatalf("MergeSort([]) = %v, want empty", got)
	}
	if got := MergeSort([]int{5}, func(a, b int) bool { return a < b }); len(got) != 1 || got[0] != 5 {
		t.Fatalf("MergeSort([5]) = %v, want [5]", got)
	}
}
