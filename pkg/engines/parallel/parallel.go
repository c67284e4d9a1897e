// Package parallel updates the grid with one goroutine per row band.
//
// Every worker writes next-generation cells straight into its own rows of the
// shared next buffer; only the variable-length alive-coordinate output needs
// coordination. Workers first collect centers into a private buffer sized for
// the band's worst case, then either reserve a span of the shared output with
// one atomic add (SharedCounter) or leave the buffer for an ordered merge
// after the join (IndexedMerge).
package parallel

import (
	"fmt"
	"sync"
	"sync/atomic"

	"lifegrid/pkg/core"
	"lifegrid/pkg/rules"

	"golang.org/x/sync/errgroup"
)

// Registry keys.
const (
	Name       = "parallel"
	AtomicName = "parallel-atomic"
)

// Discipline selects how per-band results reach the shared output.
type Discipline int

const (
	// IndexedMerge concatenates band buffers in band order after all
	// workers join. Output order is row-major, identical to the sequential
	// engine.
	IndexedMerge Discipline = iota
	// SharedCounter lets each worker reserve its span with a single
	// fetch-and-add on a shared cursor. Band order in the output depends on
	// which worker finishes first.
	SharedCounter
)

func (d Discipline) String() string {
	switch d {
	case IndexedMerge:
		return "indexed-merge"
	case SharedCounter:
		return "shared-counter"
	default:
		return fmt.Sprintf("Discipline(%d)", int(d))
	}
}

type stepFunc func(cur, nxt []uint8, cols, rows, y0, y1 int, alive func(x, y int))

// Engine is a banded parallel engine.
type Engine struct {
	mu         sync.Mutex
	cfg        core.Config
	discipline Discipline

	grid   *core.Grid
	coords *core.CoordBuffer
	bands  []band
	local  [][]float32
	cursor atomic.Int64
	step   stepFunc

	fault  error
	closed bool
}

// New returns a parallel engine using cfg.EffectiveWorkers() bands.
func New(cfg core.Config, d Discipline) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if d != IndexedMerge && d != SharedCounter {
		return nil, fmt.Errorf("%w: unknown discipline %v", core.ErrInvalidConfig, d)
	}
	bands := splitBands(cfg.Rows, cfg.EffectiveWorkers())
	local := make([][]float32, len(bands))
	for i, b := range bands {
		local[i] = make([]float32, 0, b.rows()*cfg.Cols*2)
	}
	e := &Engine{
		cfg:        cfg,
		discipline: d,
		grid:       core.NewGrid(cfg.Rows, cfg.Cols),
		coords:     core.NewCoordBuffer(cfg.Rows, cfg.Cols, cfg.CellSize),
		bands:      bands,
		local:      local,
		step:       rules.StepRows,
	}
	e.grid.Seed(cfg.Seed)
	return e, nil
}

// Name returns the registry key matching the discipline.
func (e *Engine) Name() string {
	if e.discipline == SharedCounter {
		return AtomicName
	}
	return Name
}

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return e.cfg.Size() }

// Discipline reports the merge discipline.
func (e *Engine) Discipline() Discipline { return e.discipline }

// Workers returns the number of bands processed per generation.
func (e *Engine) Workers() int { return len(e.bands) }

// Cells exposes the current generation.
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

// Advance computes one generation across all bands and blocks until every
// worker and the merge have finished. A worker panic poisons the engine.
func (e *Engine) Advance() (core.Points, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return core.Points{}, core.ErrClosed
	}
	if e.fault != nil {
		return core.Points{}, e.fault
	}

	e.coords.Reset()
	e.cursor.Store(0)
	cur, nxt := e.grid.Current(), e.grid.Next()

	var g errgroup.Group
	for i, b := range e.bands {
		g.Go(func() error { return e.runBand(i, b, cur, nxt) })
	}
	if err := g.Wait(); err != nil {
		e.fault = fmt.Errorf("%w: %w", core.ErrFaulted, err)
		return core.Points{}, e.fault
	}

	if e.discipline == SharedCounter {
		e.coords.SetLen(int(e.cursor.Load()))
	} else {
		e.mergeIndexed()
	}
	e.grid.Swap()
	return e.coords.Points(), nil
}

func (e *Engine) runBand(i int, b band, cur, nxt []uint8) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("band %d rows [%d,%d): %v", i, b.y0, b.y1, r)
		}
	}()
	local := e.local[i][:0]
	e.step(cur, nxt, e.cfg.Cols, e.cfg.Rows, b.y0, b.y1, func(x, y int) {
		cx, cy := e.coords.Center(x, y)
		local = append(local, cx, cy)
	})
	e.local[i] = local
	if e.discipline == SharedCounter {
		e.publish(local)
	}
	return nil
}

// publish reserves len(local) scalars of the shared output with one atomic
// add and copies the band's centers into the reserved span.
func (e *Engine) publish(local []float32) {
	if len(local) == 0 {
		return
	}
	end := e.cursor.Add(int64(len(local)))
	e.coords.WriteAt(int(end)-len(local), local)
}

// mergeIndexed concatenates the band buffers in band order.
func (e *Engine) mergeIndexed() {
	off := 0
	for _, local := range e.local {
		e.coords.WriteAt(off, local)
		off += len(local)
	}
	e.coords.SetLen(off)
}

// Close releases the buffers.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	e.grid = nil
	e.coords = nil
	e.local = nil
	return nil
}

func init() {
	core.Register(Name, func(cfg core.Config) (core.Engine, error) {
		return New(cfg, IndexedMerge)
	})
	core.Register(AtomicName, func(cfg core.Config) (core.Engine, error) {
		return New(cfg, SharedCounter)
	})
}
