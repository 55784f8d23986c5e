package granularity

import "testing"

func TestHolderConstructsEstimatorOnce(t *testing.T) {
	h := NewHolder("test.holder.once", 0)
	e1 := h.Estimator()
	e2 := h.Estimator()
	if e1 != e2 {
		t.Fatal("Holder.Estimator() should return the same *Estimator on every call")
	}
}

func TestHolderNameIncludesSiteID(t *testing.T) {
	h := NewHolder("test.holder.name", 7)
	if got, want := h.Estimator().Name(), "test.holder.name#7"; got != want {
		t.Fatalf("estimator name = %q, want %q", got, want)
	}
}

func TestHolderForReusesByKey(t *testing.T) {
	a := HolderFor("test.holderfor.key")
	b := HolderFor("test.holderfor.key")
	if a != b {
		t.Fatal("HolderFor should return the same *Holder for the same key")
	}
	c := HolderFor("test.holderfor.other-key")
	if a == c {
		t.Fatal("HolderFor should return distinct Holders for distinct keys")
	}
}
