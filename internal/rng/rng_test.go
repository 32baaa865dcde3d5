package rng

import "testing"

func TestStreamIsReproducible(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		x, y := a.Range(1000), b.Range(1000)
		if x != y {
			t.Fatalf("draw %d: streams diverged (%d vs %d)", i, x, y)
		}
	}
}

func TestRangeBounds(t *testing.T) {
	s := New(7)
	for i := 0; i < 1000; i++ {
		v := s.Range(4)
		if v < 0 || v >= 4 {
			t.Fatalf("Range(4) = %d, want [0,4)", v)
		}
	}
	for i := 0; i < 1000; i++ {
		v := Between(s, 3, 15)
		if v < 3 || v >= 15 {
			t.Fatalf("Between(3,15) = %d", v)
		}
	}
}

func TestRangePanicsOnEmptyRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for Range(0)")
		}
	}()
	New(1).Range(0)
}
