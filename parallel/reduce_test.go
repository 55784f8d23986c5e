package parallel

import "testing"

func TestReduceSumsInts(t *testing.T) {
	items := make([]int, 10000)
	want := 0
	for i := range items {
		items[i] = i
		want += i
	}
	got := Reduce(items, 0, func(a, b int) int { return a + b })
	if got != want {
		t.Fatalf("Reduce sum = %d, want %d", got, want)
	}
}

func TestReduceEmptyReturnsIdentity(t *testing.T) {
	if got := Reduce([]int{}, 42, func(a, b int) int { return a + b }); got != 42 {
		t.Fatalf("Reduce([]) = %d, want identity 42", got)
	}
}

func TestReduceSingleElement(t *testing.T) {
	if got := Reduce([]int{7}, 0, func(a, b int) int { return a + b }); got != 7 {
		t.Fatalf("Reduce([7]) = %d, want 7", got)
	}
}
