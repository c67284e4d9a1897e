package core

import "fmt"

// Cell states stored in a Grid.
const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

// Grid owns the current and next generation buffers of a rows x cols
// automaton in row-major order. The buffers are identified by role; Swap
// exchanges the roles without copying.
type Grid struct {
	Rows, Cols int

	bufs [2][]uint8
	cur  int
}

// NewGrid allocates both generation buffers, all cells dead.
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		Rows: rows,
		Cols: cols,
		bufs: [2][]uint8{make([]uint8, rows*cols), make([]uint8, rows*cols)},
	}
}

// Current exposes the authoritative generation.
func (g *Grid) Current() []uint8 { return g.bufs[g.cur] }

// Next exposes the scratch buffer written during an update. It must not be
// read until Swap promotes it.
func (g *Grid) Next() []uint8 { return g.bufs[1-g.cur] }

// Swap exchanges the current and next roles in constant time.
func (g *Grid) Swap() { g.cur = 1 - g.cur }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.Cols + x }

// Seed fills the current buffer with a reproducible 0/1 pattern.
func (g *Grid) Seed(seed int64) {
	FillBinary(NewRNG(seed).Source(), g.Current())
}

// Load replaces the current generation. Any non-zero value counts as alive.
func (g *Grid) Load(cells []uint8) error {
	if len(cells) != g.Rows*g.Cols {
		return fmt.Errorf("%w: got %d cells, want %d", ErrGridSize, len(cells), g.Rows*g.Cols)
	}
	cur := g.Current()
	for i, c := range cells {
		if c != Dead {
			cur[i] = Alive
			continue
		}
		cur[i] = Dead
	}
	return nil
}

// Clear kills every cell in the current generation.
func (g *Grid) Clear() {
	clear(g.Current())
}

// Population counts the alive cells of the current generation.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.Current() {
		n += int(c)
	}
	return n
}
