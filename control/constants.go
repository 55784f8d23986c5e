// File: control/constants.go
// Author: momentics <momentics@gmail.com>
//
// The process-wide learned-constants sidecar store. Rehomed in place from
// hioload-ws's control/config.go (ConfigStore): same RWMutex-guarded map
// plus reload-listener shape, retargeted from arbitrary JSON config values
// to a plain "<name> <constant>" text sidecar format.

package control

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// NamedConstant is anything with a stable name and a current learned
// constant. Satisfied by *granularity.Estimator without granularity
// needing to be imported here, avoiding an import cycle (granularity does
// import control, to look up and register estimators).
type NamedConstant interface {
	Name() string
	SharedConstant() float64
}

// ConstantsStore holds the preloaded constants map (read from a sidecar
// file once, lazily, on first lookup) and the set of estimators registered
// so far, whose constants WriteFile persists at shutdown.
type ConstantsStore struct {
	mu         sync.RWMutex
	preloaded  map[string]float64
	registered []NamedConstant
	listeners  []func()

	loadOnce sync.Once
	loadPath string
}

var defaultStore = NewConstantsStore()

// Default returns the process-wide constants store used by
// granularity.NewEstimator.
func Default() *ConstantsStore { return defaultStore }

// NewConstantsStore creates an empty store. Most callers want Default().
func NewConstantsStore() *ConstantsStore {
	return &ConstantsStore{preloaded: make(map[string]float64)}
}

// SetLoadPath configures the sidecar file a later Lookup will read from.
// Effective only if called before the first Lookup: the sidecar is read
// once, lazily, on first estimator construction.
func (cs *ConstantsStore) SetLoadPath(path string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.loadPath = path
}

// Lookup returns the preloaded constant for name, triggering the lazy
// sidecar load on the first call to any ConstantsStore method that needs
// it. ok is false if the sidecar was never configured, doesn't exist, or
// has no entry for name -- a missing file is never an error.
func (cs *ConstantsStore) Lookup(name string) (float64, bool) {
	cs.loadOnce.Do(cs.load)
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	v, ok := cs.preloaded[name]
	return v, ok
}

func (cs *ConstantsStore) load() {
	cs.mu.RLock()
	path := cs.loadPath
	cs.mu.RUnlock()
	if path == "" {
		return
	}
	f, err := os.Open(path)
	if err != nil {
		return // missing/unreadable sidecar is silently ignored
	}
	defer f.Close()

	cs.mu.Lock()
	defer cs.mu.Unlock()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue // malformed lines are skipped, not fatal
		}
		val, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			continue
		}
		cs.preloaded[fields[0]] = val
	}
}

// Register records e so WriteFile persists its constant at shutdown. Called
// once by granularity.NewEstimator for every estimator it constructs.
func (cs *ConstantsStore) Register(e NamedConstant) {
	cs.mu.Lock()
	cs.registered = append(cs.registered, e)
	listeners := make([]func(), len(cs.listeners))
	copy(listeners, cs.listeners)
	cs.mu.Unlock()
	for _, fn := range listeners {
		fn()
	}
}

// OnRegister adds a listener invoked (synchronously, from within Register)
// whenever a new estimator registers. Kept from hioload-ws's
// ConfigStore.OnReload hot-reload hook, rehomed to the registration event.
func (cs *ConstantsStore) OnRegister(fn func()) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.listeners = append(cs.listeners, fn)
}

// WriteFile writes one "<name> <constant>" line per registered estimator to
// path, recording each one's constant on shutdown. The file is written in
// place, not atomically: a failure part-way returns an error and may leave a
// partially written sidecar behind.
func (cs *ConstantsStore) WriteFile(path string) error {
	cs.mu.RLock()
	regs := append([]NamedConstant(nil), cs.registered...)
	cs.mu.RUnlock()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("control: writing constants sidecar %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, e := range regs {
		if _, err := fmt.Fprintf(w, "%s %v\n", e.Name(), e.SharedConstant()); err != nil {
			return fmt.Errorf("control: writing constants sidecar %s: %w", path, err)
		}
	}
	return w.Flush()
}

// Snapshot returns a copy of the currently preloaded constants, for
// diagnostics and tests.
func (cs *ConstantsStore) Snapshot() map[string]float64 {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	out := make(map[string]float64, len(cs.preloaded))
	for k, v := range cs.preloaded {
		out[k] = v
	}
	return out
}
