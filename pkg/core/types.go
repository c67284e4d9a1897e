package core

import (
	"fmt"
	"sort"
	"sync"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Engine is the contract every generation-update backend satisfies. Calls on
// one engine are serialized by the engine itself; Advance blocks until the
// new generation and its alive-coordinate list are fully materialized.
type Engine interface {
	Name() string
	Size() Size
	Reset(seed int64) error
	Load(cells []uint8) error
	Cells() []uint8
	Advance() (Points, error)
	Close() error
}

// Factory constructs an Engine from a validated Config.
type Factory func(cfg Config) (Engine, error)

var (
	registryMu sync.RWMutex
	engines    = map[string]Factory{}
)

// Register adds an engine factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	registryMu.Lock()
	engines[name] = f
	registryMu.Unlock()
}

// Engines lists the registered backend names in sorted order.
func Engines() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open validates cfg and constructs the engine registered under name.
func Open(name string, cfg Config) (Engine, error) {
	registryMu.RLock()
	f, ok := engines[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownEngine, name)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e, err := f(cfg)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	return e, nil
}
