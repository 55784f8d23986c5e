// File: granularity/options.go
// Author: momentics <momentics@gmail.com>
//
// Process-wide configuration, grounded on hioload-ws's functional-options
// style (server/options.go's ServerOption func(*Server)) and its top-level
// facade (facade/hioload.go's HioloadWS, which owns startup/shutdown of the
// subsystems it wires together).

package granularity

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/momentics/granularity-go/control"
	internalruntime "github.com/momentics/granularity-go/internal/runtime"
)

func float64BitsOf(v float64) uint64   { return math.Float64bits(v) }
func float64FromBits(b uint64) float64 { return math.Float64frombits(b) }

func defaultConstantsStore() *control.ConstantsStore { return control.Default() }

// Mode is the compile-time-switch analogue of the original's "Compile-time
// switches", applied process-wide at Controller construction instead of at
// compile time.
type Mode int32

const (
	// ModeDefault runs the full oracle-guided decision procedure.
	ModeDefault Mode = iota
	// ModeSequentialBaseline always runs the sequential body, never reports.
	ModeSequentialBaseline
	// ModeParallelElision always runs the parallel body, never reports.
	ModeParallelElision
	// ModeManual always runs the parallel body under ForceParallel, so every
	// Fork2 inside it forks, bypassing the controller (estimator,
	// prediction, and mode combination) entirely.
	ModeManual
)

// Strategy selects the nested-Unknown accounting policy.
type Strategy int32

const (
	// StrategyHonest forces every nested cstmt/fork2 call to run fully
	// sequential while an Unknown bootstrap measurement is open on the same
	// worker, so the measured elapsed is exactly the serial cost. Default.
	StrategyHonest Strategy = iota
	// StrategyOptimistic lets nested calls run in parallel during an open
	// Unknown measurement and compensates the outer's elapsed using
	// predicted-vs-actual corrections and fork2 branch-sum accounting.
	StrategyOptimistic
)

var (
	globalKappa        atomic.Uint64 // math.Float64bits(Cost)
	globalMode         atomic.Int32
	globalStrategy     atomic.Int32
	globalEstimatorLog atomic.Pointer[EstimatorLog]
)

func init() {
	setGlobalKappa(300.0)
}

func setGlobalKappa(k Cost) {
	globalKappa.Store(float64BitsOf(float64(k)))
}

// currentKappa returns the process-wide threshold used by the controlled
// statement's decision procedure.
func currentKappa() Cost {
	return Cost(float64FromBits(globalKappa.Load()))
}

func currentGlobalMode() Mode { return Mode(globalMode.Load()) }

func currentStrategy() Strategy { return Strategy(globalStrategy.Load()) }

func currentEstimatorLog() *EstimatorLog { return globalEstimatorLog.Load() }

// Config collects every process-wide knob the controller exposes (ambient
// and domain stack alike). Built by DefaultConfig and mutated by Option functions,
// mirroring hioload-ws's Server/ServerOption pair.
type Config struct {
	Kappa           Cost
	Strategy        Strategy
	Mode            Mode
	CPUFrequencyGHz float64

	ReadConstantsPath  string
	WriteConstantsPath string

	EstimatorLogging     bool
	EstimatorLogCapacity int

	ExecutorWorkers int
	NUMANode        int
}

// DefaultConfig returns the baseline configuration: kappa=300us, Honest
// strategy, full oracle-guided Mode, 2.1GHz clock calibration, no sidecar
// I/O, no logging, executor sized to runtime.NumCPU with no CPU pinning.
func DefaultConfig() Config {
	return Config{
		Kappa:                300.0,
		Strategy:             StrategyHonest,
		Mode:                 ModeDefault,
		CPUFrequencyGHz:      2.1,
		EstimatorLogCapacity: 256,
		ExecutorWorkers:      0,
		NUMANode:             -1,
	}
}

// Option mutates a Config under construction.
type Option func(*Config)

// WithKappa overrides the sequential/parallel threshold, in microseconds.
func WithKappa(k Cost) Option { return func(c *Config) { c.Kappa = k } }

// WithStrategy selects the nested-Unknown accounting policy.
func WithStrategy(s Strategy) Option { return func(c *Config) { c.Strategy = s } }

// WithMode selects the compile-time-switch analogue.
func WithMode(m Mode) Option { return func(c *Config) { c.Mode = m } }

// WithCPUFrequencyGHz calibrates the cycle-to-microsecond conversion.
func WithCPUFrequencyGHz(ghz float64) Option { return func(c *Config) { c.CPUFrequencyGHz = ghz } }

// WithReadConstants preloads estimators from a "<name> <constant>" sidecar.
// A missing file at Controller construction time is not an error.
func WithReadConstants(path string) Option {
	return func(c *Config) { c.ReadConstantsPath = path }
}

// WithWriteConstants persists every registered estimator's constant to path
// when Controller.Shutdown runs.
func WithWriteConstants(path string) Option {
	return func(c *Config) { c.WriteConstantsPath = path }
}

// WithEstimatorLogging attaches a bounded per-worker event log to every
// estimator constructed after this option takes effect.
func WithEstimatorLogging(capacity int) Option {
	return func(c *Config) {
		c.EstimatorLogging = true
		c.EstimatorLogCapacity = capacity
	}
}

// WithExecutorWorkers sizes the underlying fork2 executor's worker pool.
// n <= 0 means runtime.NumCPU().
func WithExecutorWorkers(n int) Option { return func(c *Config) { c.ExecutorWorkers = n } }

// WithCPUAffinity enables pinning of executor worker threads: with
// numaNode >= 0, worker i is pinned to CPU i; the node number itself is not
// used for placement. numaNode < 0 (the default) disables pinning.
func WithCPUAffinity(numaNode int) Option { return func(c *Config) { c.NUMANode = numaNode } }

// Controller is the top-level facade: it applies a Config to the process-
// wide globals this package and internal/runtime consult, and owns the
// constants-sidecar lifecycle. Grounded on facade/hioload.go's HioloadWS,
// which plays the same "own startup/shutdown of the wired subsystems" role
// for hioload-ws's transport/pool stack.
type Controller struct {
	cfg Config
}

// NewController builds a Controller from DefaultConfig plus opts, and
// applies it to the process-wide state consulted by Cstmt/Fork2/Predict.
// Only one Controller's settings are in effect at a time -- constructing a
// second one simply overwrites the globals, matching the single
// process-wide kappa/strategy the original describes.
func NewController(opts ...Option) *Controller {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	setGlobalKappa(cfg.Kappa)
	globalStrategy.Store(int32(cfg.Strategy))
	globalMode.Store(int32(cfg.Mode))
	SetCPUFrequencyGHz(cfg.CPUFrequencyGHz)

	if cfg.ReadConstantsPath != "" {
		defaultConstantsStore().SetLoadPath(cfg.ReadConstantsPath)
	}
	if cfg.EstimatorLogging {
		globalEstimatorLog.Store(NewEstimatorLog(cfg.EstimatorLogCapacity))
	}

	internalruntime.Configure(internalruntime.Options{
		NumWorkers: cfg.ExecutorWorkers,
		NUMANode:   cfg.NUMANode,
	})

	return &Controller{cfg: cfg}
}

// Config returns the configuration this Controller applied.
func (ctl *Controller) Config() Config { return ctl.cfg }

// EstimatorLog returns the process-wide estimator event log, or nil if
// estimator-logging was not enabled.
func (ctl *Controller) EstimatorLog() *EstimatorLog { return currentEstimatorLog() }

// Shutdown writes the learned-constants sidecar if WithWriteConstants was
// configured. Safe to call even if it wasn't, in which case it is a no-op.
func (ctl *Controller) Shutdown() error {
	if ctl.cfg.WriteConstantsPath == "" {
		return nil
	}
	if err := defaultConstantsStore().WriteFile(ctl.cfg.WriteConstantsPath); err != nil {
		return fmt.Errorf("%w: %v", ErrConstantsFileUnreadable, err)
	}
	return nil
}
