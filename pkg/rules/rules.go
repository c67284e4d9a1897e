// Package rules implements Conway's Game of Life transition on bounded grids.
//
// Cells outside [0, cols) x [0, rows) do not exist: edge cells simply have
// fewer neighbors. Grids are row-major []uint8 slices holding 0 or 1.
package rules

import "lifegrid/pkg/core"

// NextState applies B3/S23 to one cell.
func NextState(cur uint8, neighbors int) uint8 {
	if neighbors == 3 || (cur == core.Alive && neighbors == 2) {
		return core.Alive
	}
	return core.Dead
}

// CountBounded counts alive Moore neighbors of (x, y), checking each
// neighbor against the grid bounds.
func CountBounded(cells []uint8, cols, rows, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= rows {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx < 0 || nx >= cols {
				continue
			}
			n += int(cells[ny*cols+nx])
		}
	}
	return n
}

// CountInterior sums the eight fixed neighbor offsets of (x, y) without bound
// checks. The cell must satisfy 0 < x < cols-1 and 0 < y < rows-1.
func CountInterior(cells []uint8, cols, x, y int) int {
	up := (y-1)*cols + x
	mid := y*cols + x
	down := (y+1)*cols + x
	return int(cells[up-1]) + int(cells[up]) + int(cells[up+1]) +
		int(cells[mid-1]) + int(cells[mid+1]) +
		int(cells[down-1]) + int(cells[down]) + int(cells[down+1])
}

// Interior reports whether (x, y) has all eight neighbors inside the grid.
func Interior(cols, rows, x, y int) bool {
	return x > 0 && y > 0 && x < cols-1 && y < rows-1
}

// Count picks the unrolled sum for interior cells and the bounded scan
// elsewhere.
func Count(cells []uint8, cols, rows, x, y int) int {
	if Interior(cols, rows, x, y) {
		return CountInterior(cells, cols, x, y)
	}
	return CountBounded(cells, cols, rows, x, y)
}

// StepRows writes the next state of rows [y0, y1) from cur into nxt and calls
// alive for every cell that is alive in the new generation, in row-major
// order. Only rows y0..y1-1 of nxt are written.
func StepRows(cur, nxt []uint8, cols, rows, y0, y1 int, alive func(x, y int)) {
	for y := y0; y < y1; y++ {
		inner := y > 0 && y < rows-1
		row := y * cols
		for x := 0; x < cols; x++ {
			var n int
			if inner && x > 0 && x < cols-1 {
				n = CountInterior(cur, cols, x, y)
			} else {
				n = CountBounded(cur, cols, rows, x, y)
			}
			s := NextState(cur[row+x], n)
			nxt[row+x] = s
			if s == core.Alive {
				alive(x, y)
			}
		}
	}
}
