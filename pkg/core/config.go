package core

import (
	"fmt"
	"math"
	"runtime"
	"strconv"
)

// Config holds the immutable parameters of an engine.
type Config struct {
	Rows     int
	Cols     int
	CellSize float64

	// Workers is the band count for parallel engines. Zero selects
	// runtime.NumCPU().
	Workers int

	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Rows: 200, Cols: 200, CellSize: 4, Workers: 0, Seed: 7}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Malformed values are ignored and keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["cell"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.CellSize = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// Validate reports the first field that makes the config unusable.
func (c Config) Validate() error {
	if c.Rows <= 0 {
		return fmt.Errorf("%w: rows must be positive, got %d", ErrInvalidConfig, c.Rows)
	}
	if c.Cols <= 0 {
		return fmt.Errorf("%w: cols must be positive, got %d", ErrInvalidConfig, c.Cols)
	}
	if !(c.CellSize > 0) || math.IsInf(c.CellSize, 1) {
		return fmt.Errorf("%w: cell size must be positive and finite, got %v", ErrInvalidConfig, c.CellSize)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.Rows > math.MaxInt/2/c.Cols {
		return fmt.Errorf("%w: %dx%d grid overflows the coordinate buffer", ErrInvalidConfig, c.Rows, c.Cols)
	}
	return nil
}

// EffectiveWorkers resolves the worker count, never exceeding the row count
// so that every band owns at least one row.
func (c Config) EffectiveWorkers() int {
	w := c.Workers
	if w <= 0 {
		w = runtime.NumCPU()
	}
	return max(1, min(w, c.Rows))
}

// Size returns the grid dimensions.
func (c Config) Size() Size { return Size{W: c.Cols, H: c.Rows} }
