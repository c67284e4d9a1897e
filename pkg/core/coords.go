package core

// Points is a read-only view of one generation's alive-cell centers.
//
// Data always spans the full rows*cols*2 capacity with unused trailing slots
// set to zero. Count is the number of populated (x, y) pairs, so callers never
// have to infer the length from the zero padding.
type Points struct {
	Data  []float32
	Count int
}

// Pairs returns the populated prefix of Data.
func (p Points) Pairs() []float32 { return p.Data[:2*p.Count] }

// At returns the i-th center.
func (p Points) At(i int) (x, y float32) { return p.Data[2*i], p.Data[2*i+1] }

// CoordBuffer is the fixed-capacity alive-coordinate list shared by all
// engines. It is allocated once and zero-filled between generations.
type CoordBuffer struct {
	data     []float32
	n        int
	cellSize float64
}

// NewCoordBuffer allocates room for every cell of a rows x cols grid.
func NewCoordBuffer(rows, cols int, cellSize float64) *CoordBuffer {
	return &CoordBuffer{data: make([]float32, rows*cols*2), cellSize: cellSize}
}

// Reset zeroes the buffer and forgets the populated length.
func (b *CoordBuffer) Reset() {
	clear(b.data)
	b.n = 0
}

// Cap returns the capacity in scalars.
func (b *CoordBuffer) Cap() int { return len(b.data) }

// Center maps grid coordinates to the pixel-space center of the cell.
func (b *CoordBuffer) Center(x, y int) (float32, float32) {
	half := b.cellSize / 2
	return float32(float64(x)*b.cellSize + half), float32(float64(y)*b.cellSize + half)
}

// AppendCell appends the center of cell (x, y). It reports false and drops
// the pair when the buffer is full.
func (b *CoordBuffer) AppendCell(x, y int) bool {
	if b.n+2 > len(b.data) {
		return false
	}
	b.data[b.n], b.data[b.n+1] = b.Center(x, y)
	b.n += 2
	return true
}

// WriteAt copies src into the buffer starting at scalar offset off. Scalars
// that would land past the capacity are dropped; the number actually written
// is returned. Only whole pairs are written.
//
// WriteAt does not touch the populated length, so disjoint spans may be
// written from several goroutines. Call SetLen once all writers are done.
func (b *CoordBuffer) WriteAt(off int, src []float32) int {
	if off < 0 || off >= len(b.data) {
		return 0
	}
	room := (len(b.data) - off) &^ 1
	n := min(len(src)&^1, room)
	return copy(b.data[off:off+n], src[:n])
}

// SetLen records the populated length in scalars, clamped to capacity.
func (b *CoordBuffer) SetLen(scalars int) {
	b.n = max(0, min(scalars, len(b.data))) &^ 1
}

// Len returns the populated length in scalars.
func (b *CoordBuffer) Len() int { return b.n }

// Points returns the view handed to callers after an advance.
func (b *CoordBuffer) Points() Points {
	return Points{Data: b.data, Count: b.n / 2}
}

// SameSet reports whether a and b hold the same populated pairs regardless
// of order.
func SameSet(a, b Points) bool {
	if a.Count != b.Count {
		return false
	}
	seen := make(map[[2]float32]int, a.Count)
	for i := 0; i < a.Count; i++ {
		x, y := a.At(i)
		seen[[2]float32{x, y}]++
	}
	for i := 0; i < b.Count; i++ {
		x, y := b.At(i)
		k := [2]float32{x, y}
		if seen[k] == 0 {
			return false
		}
		seen[k]--
	}
	return true
}
