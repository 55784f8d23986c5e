package parallel

import "testing"

func TestFillSetsEveryElement(t *testing.T) {
	items := make([]int, 2000)
	Fill(items, 9)
	for i, v := range items {
		if v != 9 {
			t.Fatalf("items[%d] = %d, want 9", i, v)
		}
	}
}

func TestCopyTransfersElements(t *testing.T) {
	src := make([]int, 1500)
	for i := range src {
		src[i] = i * 3
	}
	dst := make([]int, len(src))
	Copy(dst, src)
	for i := range src {
		if dst[i] != src[i] {
			t.Fatalf("dst[%d] = %d, want %d", i, dst[i], src[i])
		}
	}
}

func TestCopyTruncatesToShorterSlice(t *testing.T) {
	src := []int{1, 2, 3, 4, 5}
	dst := make([]int, 3)
	Copy(dst, src)
	want := []int{1, 2, 3}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d] = %d, want %d", i, dst[i], want[i])
		}
	}
}
