package parallel

// band is a contiguous range of rows [y0, y1) owned by one worker.
type band struct {
	y0, y1 int
}

func (b band) rows() int { return b.y1 - b.y0 }

// splitBands divides rows into workers contiguous bands of rows/workers rows.
// The last band absorbs the remainder. workers must be in [1, rows].
func splitBands(rows, workers int) []band {
	size := rows / workers
	bands := make([]band, workers)
	for i := range bands {
		bands[i] = band{y0: i * size, y1: (i + 1) * size}
	}
	bands[workers-1].y1 = rows
	return bands
}
