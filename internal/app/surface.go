package app

// WindowSurface reports the window size last seen by the host, minus any
// width reserved on the right for a side panel.
type WindowSurface struct {
	w, h    int
	reserve int
}

// NewWindowSurface returns a surface with the initial window size.
func NewWindowSurface(w, h int) *WindowSurface {
	return &WindowSurface{w: w, h: h}
}

// SetSize records the window size.
func (s *WindowSurface) SetSize(w, h int) { s.w, s.h = w, h }

// ReserveRight keeps px pixels on the right edge out of the grid.
func (s *WindowSurface) ReserveRight(px int) {
	if px < 0 {
		px = 0
	}
	s.reserve = px
}

// Width returns the full window width.
func (s *WindowSurface) Width() int { return s.w }

// Height returns the full window height.
func (s *WindowSurface) Height() int { return s.h }

// AvailableSize implements life.SurfaceSizer.
func (s *WindowSurface) AvailableSize() (int, int) {
	return max(s.w-s.reserve, 0), s.h
}
