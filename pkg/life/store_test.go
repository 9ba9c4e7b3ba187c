package life

import (
	"slices"
	"testing"

	"yagol/pkg/core"
)

func aliveSnapshot(s *Store) []bool {
	out := make([]bool, len(s.cur))
	for i, c := range s.cur {
		out[i] = c.Alive
	}
	return out
}

func TestResetDeterministic(t *testing.T) {
	a := NewStore(20, 20)
	b := NewStore(20, 20)
	a.Reset(12, 9, core.NewRNG(5))
	b.Reset(12, 9, core.NewRNG(5))
	if !slices.Equal(aliveSnapshot(a), aliveSnapshot(b)) {
		t.Fatal("Reset with equal seeds produced different grids")
	}
	if a.Population() == 0 {
		t.Fatal("Reset produced an empty grid")
	}
}

func TestResetClearsOutsideActive(t *testing.T) {
	s := NewStore(10, 10)
	s.Reset(10, 10, core.NewRNG(1))
	s.ApplyPalette(PaletteBlue, core.NewRNG(1))
	s.Reset(4, 3, core.NewRNG(2))

	for x := 0; x < 10; x++ {
		for y := 0; y < 10; y++ {
			if x < 4 && y < 3 {
				continue
			}
			c := s.At(x, y)
			if c.Alive || c.Variant != VariantNone {
				t.Fatalf("cell (%d,%d) outside active region not cleared: %+v", x, y, c)
			}
		}
	}
	if w, h := s.Size(); w != 4 || h != 3 {
		t.Fatalf("active size = %dx%d, want 4x3", w, h)
	}
	if !slices.Equal(s.cur, s.nxt) {
		t.Fatal("Reset must leave both buffers identical")
	}
}

func TestResetClampsToCapacity(t *testing.T) {
	s := NewStore(5, 4)
	s.Reset(50, 40, core.NewRNG(1))
	if w, h := s.Size(); w != 5 || h != 4 {
		t.Fatalf("active size = %dx%d, want 5x4", w, h)
	}
}

func TestClearAll(t *testing.T) {
	s := NewStore(8, 8)
	s.Reset(8, 8, core.NewRNG(3))
	s.ApplyPalette(PaletteRandom, core.NewRNG(3))
	Layout{Cols: 8, Rows: 8, CellW: 4, CellH: 4}.apply(s)

	s.ClearAll()
	for i := range s.cur {
		if s.cur[i] != (Cell{}) || s.nxt[i] != (Cell{}) {
			t.Fatalf("cell %d not empty after ClearAll", i)
		}
	}
}

func TestClearAliveKeepsColorAndLayout(t *testing.T) {
	s := NewStore(6, 6)
	s.Reset(6, 6, core.NewRNG(9))
	s.ApplyPalette(PaletteYellow, core.NewRNG(9))
	Layout{Cols: 6, Rows: 6, CellW: 4, CellH: 4}.apply(s)

	s.ClearAlive()
	for x := 0; x < 6; x++ {
		for y := 0; y < 6; y++ {
			c := s.At(x, y)
			if c.Alive {
				t.Fatalf("cell (%d,%d) still alive", x, y)
			}
			if c.Variant != VariantYellow {
				t.Fatalf("cell (%d,%d) lost its variant", x, y)
			}
			if c.Rect.W != 4 {
				t.Fatalf("cell (%d,%d) lost its layout", x, y)
			}
		}
	}
	if !slices.Equal(s.cur, s.nxt) {
		t.Fatal("ClearAlive must leave both buffers identical")
	}
}

func TestToggleMirrorsIntoNext(t *testing.T) {
	s := newGrid(4, 4)
	if !s.Toggle(2, 3) {
		t.Fatal("Toggle of a dead cell should report alive")
	}
	idx := s.Index(2, 3)
	if !s.cur[idx].Alive || !s.nxt[idx].Alive {
		t.Fatal("Toggle must update both buffers")
	}
	if s.Toggle(2, 3) {
		t.Fatal("second Toggle should report dead")
	}
	if s.cur[idx].Alive || s.nxt[idx].Alive {
		t.Fatal("second Toggle must clear both buffers")
	}
}

func TestSetOutsideActiveIgnored(t *testing.T) {
	s := NewStore(4, 4)
	s.setActive(2, 2)
	s.Set(3, 3, true)
	s.Set(-1, 0, true)
	if s.cur[s.Index(3, 3)].Alive {
		t.Fatal("Set outside the active region must be ignored")
	}
}

func TestCommitPublishesNext(t *testing.T) {
	s := newGrid(3, 3)
	s.nxt[s.Index(1, 1)].Alive = true
	s.Commit()
	if !s.Alive(1, 1) {
		t.Fatal("Commit did not publish the next buffer")
	}
	if !slices.Equal(s.cur, s.nxt) {
		t.Fatal("buffers differ after Commit")
	}
}

func TestNegativeCapacity(t *testing.T) {
	s := NewStore(-1, 5)
	if cx, cy := s.Capacity(); cx != 0 || cy != 5 {
		t.Fatalf("capacity = %dx%d, want 0x5", cx, cy)
	}
	s.Reset(3, 3, core.NewRNG(1))
	if w, h := s.Size(); w != 0 || h != 3 {
		t.Fatalf("active size = %dx%d, want 0x3", w, h)
	}
}
