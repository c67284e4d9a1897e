package parallel

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"lifegrid/pkg/core"
	"lifegrid/pkg/engines/sequential"
	"lifegrid/pkg/rules"
)

func newEngine(t *testing.T, cfg core.Config, d Discipline) *Engine {
	t.Helper()
	e, err := New(cfg, d)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { e.Close() })
	return e
}

func TestSplitBands(t *testing.T) {
	cases := []struct {
		rows, workers int
		want          []band
	}{
		{rows: 10, workers: 1, want: []band{{0, 10}}},
		{rows: 10, workers: 3, want: []band{{0, 3}, {3, 6}, {6, 10}}},
		{rows: 4, workers: 4, want: []band{{0, 1}, {1, 2}, {2, 3}, {3, 4}}},
		{rows: 7, workers: 2, want: []band{{0, 3}, {3, 7}}},
	}
	for _, tc := range cases {
		got := splitBands(tc.rows, tc.workers)
		if !slices.Equal(got, tc.want) {
			t.Errorf("splitBands(%d,%d) = %v, want %v", tc.rows, tc.workers, got, tc.want)
		}
	}
}

func TestIndexedMergeMatchesSequentialOrder(t *testing.T) {
	cfg := core.Config{Rows: 37, Cols: 23, CellSize: 2, Workers: 5, Seed: 11}
	par := newEngine(t, cfg, IndexedMerge)
	seq, err := sequential.New(cfg)
	if err != nil {
		t.Fatalf("sequential.New: %v", err)
	}
	defer seq.Close()

	for gen := 1; gen <= 25; gen++ {
		got, err := par.Advance()
		if err != nil {
			t.Fatalf("gen %d: %v", gen, err)
		}
		want, _ := seq.Advance()
		if !slices.Equal(got.Data, want.Data) || got.Count != want.Count {
			t.Fatalf("gen %d: indexed merge output differs from sequential", gen)
		}
	}
}

func TestSharedCounterMatchesSequentialSet(t *testing.T) {
	cfg := core.Config{Rows: 40, Cols: 31, CellSize: 1.5, Workers: 6, Seed: 5}
	par := newEngine(t, cfg, SharedCounter)
	seq, err := sequential.New(cfg)
	if err != nil {
		t.Fatalf("sequential.New: %v", err)
	}
	defer seq.Close()

	for gen := 1; gen <= 25; gen++ {
		got, err := par.Advance()
		if err != nil {
			t.Fatalf("gen %d: %v", gen, err)
		}
		want, _ := seq.Advance()
		if !core.SameSet(got, want) {
			t.Fatalf("gen %d: shared counter set differs from sequential", gen)
		}
		if !slices.Equal(par.Cells(), seq.Cells()) {
			t.Fatalf("gen %d: grids diverged", gen)
		}
	}
}

func TestMergeDropsOverflow(t *testing.T) {
	cfg := core.Config{Rows: 4, Cols: 4, CellSize: 1, Workers: 2}
	for _, d := range []Discipline{SharedCounter, IndexedMerge} {
		t.Run(d.String(), func(t *testing.T) {
			e := newEngine(t, cfg, d)
			full := make([]float32, e.coords.Cap())
			for i := range full {
				full[i] = 7
			}
			// Every band claims the whole buffer.
			e.coords.Reset()
			e.cursor.Store(0)
			for i := range e.local {
				e.local[i] = full
			}
			if d == SharedCounter {
				for _, local := range e.local {
					e.publish(local)
				}
				e.coords.SetLen(int(e.cursor.Load()))
			} else {
				e.mergeIndexed()
			}

			pts := e.coords.Points()
			if len(pts.Data) != 32 {
				t.Fatalf("buffer grew to %d", len(pts.Data))
			}
			if pts.Count != 16 {
				t.Fatalf("count %d, want capacity 16", pts.Count)
			}
		})
	}
}

func TestAllAliveGridStaysInBounds(t *testing.T) {
	cfg := core.Config{Rows: 3, Cols: 3, CellSize: 1, Workers: 3}
	for _, d := range []Discipline{SharedCounter, IndexedMerge} {
		t.Run(d.String(), func(t *testing.T) {
			e := newEngine(t, cfg, d)
			if err := e.Load([]uint8{1, 1, 1, 1, 1, 1, 1, 1, 1}); err != nil {
				t.Fatalf("Load: %v", err)
			}
			pts, err := e.Advance()
			if err != nil {
				t.Fatalf("Advance: %v", err)
			}
			want := core.Points{Data: []float32{0.5, 0.5, 2.5, 0.5, 0.5, 2.5, 2.5, 2.5}, Count: 4}
			if !core.SameSet(pts, want) {
				t.Fatalf("only the corners survive a full 3x3 grid, got %v", pts.Pairs())
			}
		})
	}
}

func TestWorkerPanicPoisonsEngine(t *testing.T) {
	cfg := core.Config{Rows: 8, Cols: 8, CellSize: 1, Workers: 4, Seed: 3}
	e := newEngine(t, cfg, IndexedMerge)
	e.step = func(cur, nxt []uint8, cols, rows, y0, y1 int, alive func(x, y int)) {
		if y0 == 4 {
			panic("band failure")
		}
		rules.StepRows(cur, nxt, cols, rows, y0, y1, alive)
	}
	before := slices.Clone(e.Cells())

	_, err := e.Advance()
	if !errors.Is(err, core.ErrFaulted) {
		t.Fatalf("expected ErrFaulted, got %v", err)
	}
	if !slices.Equal(before, e.Cells()) {
		t.Fatal("a faulted generation must not be swapped in")
	}
	if _, again := e.Advance(); again != err {
		t.Fatalf("engine must stay faulted, got %v", again)
	}
}

func TestConcurrentAdvanceIsSerialized(t *testing.T) {
	cfg := core.Config{Rows: 30, Cols: 30, CellSize: 1, Workers: 3, Seed: 9}
	e := newEngine(t, cfg, SharedCounter)
	seq, err := sequential.New(cfg)
	if err != nil {
		t.Fatalf("sequential.New: %v", err)
	}
	defer seq.Close()

	const callers = 8
	var wg sync.WaitGroup
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := e.Advance(); err != nil {
				t.Errorf("Advance: %v", err)
			}
		}()
	}
	wg.Wait()

	for range callers {
		seq.Advance()
	}
	if !slices.Equal(e.Cells(), seq.Cells()) {
		t.Fatal("concurrent callers must observe whole generations")
	}
}

func TestUnknownDiscipline(t *testing.T) {
	_, err := New(core.Config{Rows: 2, Cols: 2, CellSize: 1}, Discipline(9))
	if !errors.Is(err, core.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}
