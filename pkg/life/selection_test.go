package life

import "testing"

func TestSelectionExactness(t *testing.T) {
	s := newGrid(1, 1)
	s.cur[s.Index(0, 0)].Rect = Rect{X: 10, Y: 10, W: 20, H: 20}

	if ref, ok := s.CellAt(20, 20); !ok || ref.X != 0 || ref.Y != 0 {
		t.Fatalf("CellAt(20,20) = %+v, %v; want cell (0,0)", ref, ok)
	}
	if _, ok := s.CellAt(10, 10); ok {
		t.Fatal("boundary point (10,10) must select nothing")
	}
	if _, ok := s.CellAt(30, 20); ok {
		t.Fatal("boundary point (30,20) must select nothing")
	}
	if _, ok := s.CellAt(31, 20); ok {
		t.Fatal("point (31,20) must select nothing")
	}
}

func TestSelectionWithLayout(t *testing.T) {
	s := NewStore(10, 10)
	l := ComputeLayout(180, 200, CellSmall, 10, 10)
	l.apply(s)

	r := l.Rect(3, 4)
	ref, ok := s.CellAt(r.X+r.W/2, r.Y+r.H/2)
	if !ok || ref.X != 3 || ref.Y != 4 {
		t.Fatalf("CellAt center of (3,4) = %+v, %v", ref, ok)
	}
	// The spacing gap belongs to no cell.
	if _, ok := s.CellAt(1, 1); ok {
		t.Fatal("margin point selected a cell")
	}
}

func TestSelectionIgnoresInactiveCells(t *testing.T) {
	s := NewStore(10, 10)
	l := ComputeLayout(180, 200, CellSmall, 10, 10)
	l.apply(s)
	s.setActive(2, 2)

	r := l.Rect(5, 5)
	if _, ok := s.CellAt(r.X+1, r.Y+1); ok {
		t.Fatal("inactive cell was selected")
	}
}
