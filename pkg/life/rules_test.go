package life

import "testing"

// newGrid returns an all-dead store whose capacity equals its active size.
func newGrid(w, h int) *Store {
	s := NewStore(w, h)
	s.setActive(w, h)
	return s
}

func step(s *Store, topo Topology) {
	s.Advance(topo)
	s.Commit()
}

func liveSet(s *Store) map[[2]int]bool {
	w, h := s.Size()
	live := map[[2]int]bool{}
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			if s.Alive(x, y) {
				live[[2]int{x, y}] = true
			}
		}
	}
	return live
}

func expectLive(t *testing.T, s *Store, want map[[2]int]bool, label string) {
	t.Helper()
	w, h := s.Size()
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			if s.Alive(x, y) != want[[2]int{x, y}] {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", label, x, y, s.Alive(x, y), want[[2]int{x, y}])
			}
		}
	}
}

func TestStasis(t *testing.T) {
	for _, topo := range []Topology{Bounded, Toroidal} {
		s := newGrid(8, 6)
		step(s, topo)
		if n := s.Population(); n != 0 {
			t.Fatalf("%v: empty grid grew %d cells", topo, n)
		}
	}
}

func TestBirth(t *testing.T) {
	s := newGrid(4, 4)
	s.Set(1, 1, true)
	s.Set(2, 1, true)
	s.Set(1, 2, true)

	if n := s.CountLiveNeighbors(2, 2, Bounded); n != 3 {
		t.Fatalf("neighbors of (2,2) = %d, want 3", n)
	}
	step(s, Bounded)
	if !s.Alive(2, 2) {
		t.Fatal("dead cell with three neighbors was not born")
	}
}

func TestSurvivalBounds(t *testing.T) {
	for n := 0; n <= 8; n++ {
		want := n == 2 || n == 3
		if got := Survives(true, n); got != want {
			t.Fatalf("live cell with %d neighbors survives=%v, want %v", n, got, want)
		}
		if got := Survives(false, n); got != (n == 3) {
			t.Fatalf("dead cell with %d neighbors born=%v", n, got)
		}
	}
}

func TestSurvivalOnGrid(t *testing.T) {
	// Center cell plus k of its neighbors, for every k.
	ring := [][2]int{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	for k := 0; k <= len(ring); k++ {
		s := newGrid(3, 3)
		s.Set(1, 1, true)
		for _, p := range ring[:k] {
			s.Set(p[0], p[1], true)
		}
		step(s, Bounded)
		want := k == 2 || k == 3
		if s.Alive(1, 1) != want {
			t.Fatalf("center with %d neighbors alive=%v, want %v", k, s.Alive(1, 1), want)
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	s := newGrid(5, 5)
	s.Set(1, 2, true)
	s.Set(2, 2, true)
	s.Set(3, 2, true)
	start := liveSet(s)

	step(s, Bounded)
	expectLive(t, s, map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}, "after first step")

	step(s, Bounded)
	expectLive(t, s, start, "after second step")
}

func TestToroidalWrap(t *testing.T) {
	s := newGrid(5, 5)
	s.Set(0, 2, true)
	s.Set(4, 2, true)

	if n := s.CountLiveNeighbors(0, 2, Toroidal); n != 1 {
		t.Fatalf("toroidal neighbors of (0,2) = %d, want 1", n)
	}
	if n := s.CountLiveNeighbors(0, 2, Bounded); n != 0 {
		t.Fatalf("bounded neighbors of (0,2) = %d, want 0", n)
	}
	if n := s.CountLiveNeighbors(4, 2, Toroidal); n != 1 {
		t.Fatalf("toroidal neighbors of (4,2) = %d, want 1", n)
	}
}

func TestToroidalWrapVertical(t *testing.T) {
	s := newGrid(5, 5)
	s.Set(2, 0, true)
	s.Set(2, 4, true)
	if n := s.CountLiveNeighbors(2, 0, Toroidal); n != 1 {
		t.Fatalf("toroidal neighbors of (2,0) = %d, want 1", n)
	}
	if n := s.CountLiveNeighbors(2, 4, Bounded); n != 0 {
		t.Fatalf("bounded neighbors of (2,4) = %d, want 0", n)
	}
}

func TestToroidalSingleCellCountsItself(t *testing.T) {
	s := newGrid(1, 1)
	s.Set(0, 0, true)
	if n := s.CountLiveNeighbors(0, 0, Toroidal); n != 8 {
		t.Fatalf("1x1 toroidal neighbors = %d, want 8", n)
	}
	if n := s.CountLiveNeighbors(0, 0, Bounded); n != 0 {
		t.Fatalf("1x1 bounded neighbors = %d, want 0", n)
	}
	step(s, Toroidal)
	if s.Alive(0, 0) {
		t.Fatal("1x1 toroidal cell with 8 self-neighbors should die")
	}
}

func TestToroidalSingleRow(t *testing.T) {
	s := newGrid(3, 1)
	s.Set(0, 0, true)
	s.Set(1, 0, true)
	s.Set(2, 0, true)
	if n := s.CountLiveNeighbors(1, 0, Toroidal); n != 8 {
		t.Fatalf("3x1 toroidal neighbors = %d, want 8", n)
	}
	if n := s.CountLiveNeighbors(1, 0, Bounded); n != 2 {
		t.Fatalf("3x1 bounded neighbors = %d, want 2", n)
	}
}

func TestZeroSizeStepIsNoop(t *testing.T) {
	s := NewStore(4, 4)
	step(s, Toroidal)
	step(s, Bounded)
	if n := s.Population(); n != 0 {
		t.Fatalf("population = %d, want 0", n)
	}
}

func TestGliderWrapsOnTorus(t *testing.T) {
	s := newGrid(6, 6)
	for _, p := range [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}} {
		s.Set(p[0], p[1], true)
	}
	// A glider on a 6x6 torus returns to its start after 24 generations.
	start := liveSet(s)
	for i := 0; i < 24; i++ {
		step(s, Toroidal)
	}
	expectLive(t, s, start, "after 24 toroidal steps")
}

func TestStepLeavesCellsOutsideActiveRegion(t *testing.T) {
	s := NewStore(6, 6)
	s.setActive(6, 6)
	s.Set(5, 5, true)
	s.Set(5, 4, true)
	s.Set(4, 5, true)
	s.setActive(3, 3)
	step(s, Bounded)
	s.setActive(6, 6)
	if !s.Alive(5, 5) || !s.Alive(5, 4) || !s.Alive(4, 5) {
		t.Fatal("cells outside the active region must not change")
	}
}
