package core

import (
	"errors"
	"slices"
	"testing"
)

func TestGridSwapExchangesRoles(t *testing.T) {
	g := NewGrid(2, 3)
	cur, nxt := g.Current(), g.Next()
	cur[0] = Alive
	nxt[5] = Alive

	g.Swap()
	if &g.Current()[0] != &nxt[0] || &g.Next()[0] != &cur[0] {
		t.Fatal("Swap must exchange buffer roles without copying")
	}
	if g.Current()[5] != Alive || g.Next()[0] != Alive {
		t.Fatal("buffer contents moved during Swap")
	}

	g.Swap()
	if &g.Current()[0] != &cur[0] {
		t.Fatal("two swaps must restore the original roles")
	}
}

func TestGridSeedDeterministic(t *testing.T) {
	a := NewGrid(16, 24)
	b := NewGrid(16, 24)
	a.Seed(7)
	b.Seed(7)
	if !slices.Equal(a.Current(), b.Current()) {
		t.Fatal("same seed produced different grids")
	}
	for i, c := range a.Current() {
		if c != Dead && c != Alive {
			t.Fatalf("cell %d holds %d, want 0 or 1", i, c)
		}
	}
	if pop := a.Population(); pop == 0 || pop == 16*24 {
		t.Fatalf("seeded population %d looks degenerate", pop)
	}

	b.Seed(8)
	if slices.Equal(a.Current(), b.Current()) {
		t.Fatal("different seeds should produce different grids")
	}
	if slices.ContainsFunc(a.Next(), func(c uint8) bool { return c != Dead }) {
		t.Fatal("Seed must only touch the current buffer")
	}
}

func TestGridLoad(t *testing.T) {
	g := NewGrid(2, 2)
	if err := g.Load([]uint8{0, 5, 1, 0}); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if want := []uint8{0, 1, 1, 0}; !slices.Equal(g.Current(), want) {
		t.Fatalf("Load normalized to %v, want %v", g.Current(), want)
	}
	if g.Population() != 2 {
		t.Fatalf("population %d, want 2", g.Population())
	}

	err := g.Load([]uint8{1, 1, 1})
	if !errors.Is(err, ErrGridSize) {
		t.Fatalf("expected ErrGridSize, got %v", err)
	}

	g.Clear()
	if g.Population() != 0 {
		t.Fatal("Clear must kill every cell")
	}
}

func TestGridIndex(t *testing.T) {
	g := NewGrid(3, 5)
	if got := g.Index(4, 2); got != 14 {
		t.Fatalf("Index(4,2) = %d, want 14", got)
	}
}
