package app

import (
	"testing"

	"yagol/pkg/life"
)

func TestReservedPanelShrinksGrid(t *testing.T) {
	surface := NewWindowSurface(400, 200)
	e := life.New(life.DefaultConfig(), surface)
	if err := e.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if got := e.Size().W; got != 22 {
		t.Fatalf("cols = %d, want 22", got)
	}

	surface.ReserveRight(220)
	if changed, err := e.Resize(); !changed || err != nil {
		t.Fatalf("Resize = %v, %v", changed, err)
	}
	if got := e.Size().W; got != 10 {
		t.Fatalf("cols with panel = %d, want 10", got)
	}
	last := e.Layout().Rect(e.Size().W-1, 0)
	if last.X+last.W > surface.Width()-220 {
		t.Fatalf("last column ends at %d, under the panel", last.X+last.W)
	}

	surface.ReserveRight(0)
	e.Resize()
	if got := e.Size().W; got != 22 {
		t.Fatalf("cols after closing panel = %d, want 22", got)
	}

	surface.ReserveRight(1000)
	if w, _ := surface.AvailableSize(); w != 0 {
		t.Fatalf("available width = %d, want 0", w)
	}
}
