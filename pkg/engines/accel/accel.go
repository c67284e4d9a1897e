// Package accel drives a Device that computes generations off the host.
//
// Unlike the CPU engines, the device only produces a dense next-state image.
// The engine reads the whole image back every generation and reduces it to
// the sparse alive-coordinate list on the host.
package accel

import (
	"fmt"
	"sync"

	"lifegrid/pkg/core"
)

// Engine adapts a Device to core.Engine.
type Engine struct {
	mu     sync.Mutex
	cfg    core.Config
	dev    Device
	host   *core.Grid
	coords *core.CoordBuffer

	fault  error
	closed bool
}

// New opens dev for cfg's grid and uploads the seeded first generation.
// The engine takes ownership of dev and closes it on failure.
func New(cfg core.Config, dev Device) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := dev.Open(cfg.Cols, cfg.Rows); err != nil {
		dev.Close()
		return nil, fmt.Errorf("%s: open device: %w", dev.Name(), err)
	}
	e := &Engine{
		cfg:    cfg,
		dev:    dev,
		host:   core.NewGrid(cfg.Rows, cfg.Cols),
		coords: core.NewCoordBuffer(cfg.Rows, cfg.Cols, cfg.CellSize),
	}
	e.host.Seed(cfg.Seed)
	if err := dev.Upload(e.host.Current()); err != nil {
		dev.Close()
		return nil, fmt.Errorf("%s: upload: %w", dev.Name(), err)
	}
	return e, nil
}

// Name reports the device name.
func (e *Engine) Name() string { return e.dev.Name() }

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return e.cfg.Size() }

// Cells exposes the host copy of the latest generation.
func (e *Engine) Cells() []uint8 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil
	}
	return e.host.Current()
}

// Reset reseeds the host grid and uploads it to the device.
func (e *Engine) Reset(seed int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.usable(); err != nil {
		return err
	}
	e.host.Seed(seed)
	e.coords.Reset()
	return e.upload()
}

// Load replaces the current generation on host and device.
func (e *Engine) Load(cells []uint8) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.usable(); err != nil {
		return err
	}
	if err := e.host.Load(cells); err != nil {
		return err
	}
	return e.upload()
}

// Advance dispatches one generation, reads it back and scans it for alive
// cells in row-major order.
func (e *Engine) Advance() (core.Points, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.usable(); err != nil {
		return core.Points{}, err
	}
	if err := e.dev.Dispatch(); err != nil {
		return core.Points{}, e.poison("dispatch", err)
	}
	if err := e.dev.Readback(e.host.Next()); err != nil {
		return core.Points{}, e.poison("readback", err)
	}
	e.dev.Swap()
	e.host.Swap()

	e.coords.Reset()
	cells := e.host.Current()
	for y := 0; y < e.cfg.Rows; y++ {
		row := cells[y*e.cfg.Cols : (y+1)*e.cfg.Cols]
		for x, c := range row {
			if c == core.Alive {
				e.coords.AppendCell(x, y)
			}
		}
	}
	return e.coords.Points(), nil
}

// Close releases the device.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil
	}
	e.closed = true
	e.host = nil
	e.coords = nil
	return e.dev.Close()
}

func (e *Engine) usable() error {
	if e.closed {
		return core.ErrClosed
	}
	return e.fault
}

func (e *Engine) upload() error {
	if err := e.dev.Upload(e.host.Current()); err != nil {
		return e.poison("upload", err)
	}
	return nil
}

func (e *Engine) poison(stage string, err error) error {
	e.fault = fmt.Errorf("%w: %s %s: %w", core.ErrFaulted, e.dev.Name(), stage, err)
	return e.fault
}

func init() {
	core.Register(HostName, func(cfg core.Config) (core.Engine, error) {
		return New(cfg, NewHostDevice())
	})
}
