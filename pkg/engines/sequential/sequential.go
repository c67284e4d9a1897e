// Package sequential is the single-threaded reference engine. Its output
// lists alive cells in row-major order and serves as the oracle for the
// other backends.
package sequential

import (
	"sync"

	"lifegrid/pkg/core"
	"lifegrid/pkg/rules"
)

// Name is the registry key of this engine.
const Name = "sequential"

// Engine walks the whole grid on the calling goroutine.
type Engine struct {
	mu     sync.Mutex
	cfg    core.Config
	grid   *core.Grid
	coords *core.CoordBuffer
	closed bool
}

// New returns a sequential engine seeded with cfg.Seed.
func New(cfg core.Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:    cfg,
		grid:   core.NewGrid(cfg.Rows, cfg.Cols),
		coords: core.NewCoordBuffer(cfg.Rows, cfg.Cols, cfg.CellSize),
	}
	e.grid.Seed(cfg.Seed)
	return e, nil
}

// Name returns the engine identifier.
func (e *Engine) Name() string { return Name }

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return e.cfg.Size() }

// Cells exposes the current generation. The slice is overwritten by the next
// Advance.
func (e *Engine) Cells() []uint8 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil
	}
	return e.grid.Current()
}

// Reset reseeds the grid and clears the last output.
func (e *Engine) Reset(seed int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return core.ErrClosed
	}
	e.grid.Seed(seed)
	e.coords.Reset()
	return nil
}

// Load replaces the current generation.
func (e *Engine) Load(cells []uint8) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return core.ErrClosed
	}
	return e.grid.Load(cells)
}

// Advance computes one generation.
func (e *Engine) Advance() (core.Points, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return core.Points{}, core.ErrClosed
	}
	e.coords.Reset()
	rules.StepRows(e.grid.Current(), e.grid.Next(), e.cfg.Cols, e.cfg.Rows, 0, e.cfg.Rows, e.emit)
	e.grid.Swap()
	return e.coords.Points(), nil
}

func (e *Engine) emit(x, y int) { e.coords.AppendCell(x, y) }

// Close releases the buffers.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	e.grid = nil
	e.coords = nil
	return nil
}

func init() {
	core.Register(Name, func(cfg core.Config) (core.Engine, error) {
		return New(cfg)
	})
}
