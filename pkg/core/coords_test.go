package core

import (
	"slices"
	"testing"
)

func TestCoordBufferAppendCell(t *testing.T) {
	b := NewCoordBuffer(2, 3, 10)
	if b.Cap() != 12 {
		t.Fatalf("capacity %d, want rows*cols*2 = 12", b.Cap())
	}
	b.AppendCell(2, 1)
	b.AppendCell(0, 0)

	pts := b.Points()
	if pts.Count != 2 || len(pts.Data) != 12 {
		t.Fatalf("count=%d len=%d, want 2 and 12", pts.Count, len(pts.Data))
	}
	want := []float32{25, 15, 5, 5}
	if !slices.Equal(pts.Pairs(), want) {
		t.Fatalf("pairs %v, want %v", pts.Pairs(), want)
	}
	for i, v := range pts.Data[4:] {
		if v != 0 {
			t.Fatalf("trailing slot %d = %v, want 0", i+4, v)
		}
	}
	if x, y := pts.At(0); x != 25 || y != 15 {
		t.Fatalf("At(0) = (%v,%v), want (25,15)", x, y)
	}

	b.Reset()
	if b.Len() != 0 || slices.ContainsFunc(b.Points().Data, func(v float32) bool { return v != 0 }) {
		t.Fatal("Reset must zero the buffer")
	}
}

func TestCoordBufferAppendDropsWhenFull(t *testing.T) {
	b := NewCoordBuffer(1, 1, 1)
	if !b.AppendCell(0, 0) {
		t.Fatal("first append must fit")
	}
	if b.AppendCell(0, 0) {
		t.Fatal("append past capacity must be dropped")
	}
	if b.Len() != 2 {
		t.Fatalf("len %d, want 2", b.Len())
	}
}

func TestCoordBufferWriteAtClamps(t *testing.T) {
	b := NewCoordBuffer(2, 2, 1)
	src := []float32{1, 2, 3, 4, 5, 6}

	if n := b.WriteAt(4, src); n != 4 {
		t.Fatalf("wrote %d scalars, want 4 (capacity 8 from offset 4)", n)
	}
	if want := []float32{0, 0, 0, 0, 1, 2, 3, 4}; !slices.Equal(b.Points().Data, want) {
		t.Fatalf("data %v, want %v", b.Points().Data, want)
	}
	if n := b.WriteAt(8, src); n != 0 {
		t.Fatalf("write at capacity wrote %d", n)
	}
	if n := b.WriteAt(-2, src); n != 0 {
		t.Fatalf("negative offset wrote %d", n)
	}
	if n := b.WriteAt(5, src); n != 2 {
		t.Fatalf("odd room must only take whole pairs, wrote %d", n)
	}

	b.SetLen(100)
	if b.Len() != 8 {
		t.Fatalf("SetLen must clamp to capacity, got %d", b.Len())
	}
	b.SetLen(-3)
	if b.Len() != 0 {
		t.Fatalf("SetLen must clamp at zero, got %d", b.Len())
	}
}

func TestSameSet(t *testing.T) {
	a := Points{Data: []float32{1, 2, 3, 4, 0, 0}, Count: 2}
	b := Points{Data: []float32{3, 4, 1, 2, 9, 9}, Count: 2}
	if !SameSet(a, b) {
		t.Fatal("reordered pairs must compare equal")
	}
	c := Points{Data: []float32{1, 2, 1, 2}, Count: 2}
	if SameSet(a, c) {
		t.Fatal("different multisets must not compare equal")
	}
	if SameSet(a, Points{Data: a.Data, Count: 1}) {
		t.Fatal("different counts must not compare equal")
	}
}
