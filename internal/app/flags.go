package app

import (
	"flag"
	"runtime"
	"strconv"

	"lifegrid/pkg/core"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Engine string
	Rows   int
	Cols   int
	Cell   float64
	// Workers of 0 means runtime.NumCPU().
	Workers int
	TPS     int
	Seed    int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := core.DefaultConfig()
	return &Config{
		Engine:  "parallel",
		Rows:    d.Rows,
		Cols:    d.Cols,
		Cell:    d.CellSize,
		Workers: d.Workers,
		TPS:     30,
		Seed:    d.Seed,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Engine, "engine", c.Engine, "engine backend (see -list)")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.Float64Var(&c.Cell, "cell", c.Cell, "rendering cell size in pixels")
	fs.IntVar(&c.Workers, "workers", c.Workers, "parallel bands (0 = "+strconv.Itoa(runtime.NumCPU())+" CPUs)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial grid")
}

// EngineConfig converts the flags into an engine configuration.
func (c *Config) EngineConfig() core.Config {
	return core.Config{
		Rows:     c.Rows,
		Cols:     c.Cols,
		CellSize: c.Cell,
		Workers:  c.Workers,
		Seed:     c.Seed,
	}
}
