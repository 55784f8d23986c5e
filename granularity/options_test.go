package granularity

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewControllerAppliesKappaAndStrategy(t *testing.T) {
	NewController(WithKappa(123.0), WithStrategy(StrategyOptimistic))
	if got := currentKappa(); got != 123.0 {
		t.Fatalf("currentKappa() = %v, want 123.0", got)
	}
	if got := currentStrategy(); got != StrategyOptimistic {
		t.Fatalf("currentStrategy() = %v, want StrategyOptimistic", got)
	}
	// restore defaults so later tests in this package aren't affected.
	NewController()
}

func TestControllerShutdownWritesConstantsSidecar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.cst")
	ctl := NewController(WithWriteConstants(path))
	defer NewController() // reset globals afterward

	h := NewHolder("test.options.shutdown", 0)
	h.Estimator().Preload(9.5)

	if err := ctl.Shutdown(); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading sidecar: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("sidecar file is empty")
	}
}

func TestControllerShutdownNoopWithoutWritePath(t *testing.T) {
	ctl := NewController()
	if err := ctl.Shutdown(); err != nil {
		t.Fatalf("Shutdown with no WriteConstantsPath should be a no-op, got %v", err)
	}
}

func TestModeSequentialBaselineNeverParallelizes(t *testing.T) {
	NewController(WithMode(ModeSequentialBaseline))
	defer NewController()

	h := NewHolder("test.options.seq-baseline", 0)
	var parRan, seqRan bool
	CstmtSeq(h, func() Complexity { return 1_000_000 }, func() { parRan = true }, func() { seqRan = true })

	if parRan {
		t.Fatal("ModeSequentialBaseline should never run the parallel body")
	}
	if !seqRan {
		t.Fatal("ModeSequentialBaseline should always run the sequential body")
	}
}

func TestModeManualForcesParallelModeAndBypassesEstimator(t *testing.T) {
	NewController(WithMode(ModeManual))
	defer NewController()

	h := NewHolder("test.options.manual", 0)
	before := h.Estimator().IsUndefined()
	var modeSeen ExecutionMode
	CstmtSeq(h, func() Complexity { return ComplexityTiny }, func() { modeSeen = CurrentMode() }, func() {
		t.Fatal("ModeManual should never run the sequential body")
	})

	if modeSeen != ForceParallel {
		t.Fatalf("mode seen under ModeManual = %v, want ForceParallel", modeSeen)
	}
	if !before || !h.Estimator().IsUndefined() {
		t.Fatal("ModeManual should never report into the estimator")
	}
}

func TestModeParallelElisionAlwaysParallelizes(t *testing.T) {
	NewController(WithMode(ModeParallelElision))
	defer NewController()

	h := NewHolder("test.options.par-elision", 0)
	var parRan, seqRan bool
	CstmtSeq(h, func() Complexity { return ComplexityTiny }, func() { parRan = true }, func() { seqRan = true })

	if seqRan {
		t.Fatal("ModeParallelElision should never run the sequential body")
	}
	if !parRan {
		t.Fatal("ModeParallelElision should always run the parallel body")
	}
}
