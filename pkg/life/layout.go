package life

const (
	// SpacingX is the horizontal gap between cells in pixels.
	SpacingX = 2
	// SpacingY is the vertical gap between cells in pixels.
	SpacingY = 2
)

// CellSize selects the on-screen cell pitch.
type CellSize uint8

const (
	CellSmall CellSize = iota
	CellLarge
)

func (s CellSize) String() string {
	if s == CellLarge {
		return "large"
	}
	return "small"
}

// Pixels returns the cell width and height for the size.
func (s CellSize) Pixels() (int, int) {
	if s == CellLarge {
		return 32, 32
	}
	return 16, 16
}

// ReservedRows is the number of grid rows left free for the control bar at
// the bottom of the surface.
func (s CellSize) ReservedRows() int {
	if s == CellLarge {
		return 1
	}
	return 2
}

// Layout is a fixed-pitch tiling with a leading margin.
type Layout struct {
	Cols, Rows   int
	CellW, CellH int
}

// ComputeLayout fits as many cells as possible into the available surface,
// clamped to the capacity bounds.
func ComputeLayout(availW, availH int, size CellSize, capX, capY int) Layout {
	cw, ch := size.Pixels()
	l := Layout{CellW: cw, CellH: ch}
	if availW <= 0 || availH <= 0 {
		return l
	}
	l.Cols = clamp(availW/(cw+SpacingX), 0, capX)
	l.Rows = clamp(availH/(ch+SpacingY)-size.ReservedRows(), 0, capY)
	return l
}

// Rect returns the screen rectangle of the cell at (col, row).
func (l Layout) Rect(col, row int) Rect {
	return Rect{
		X: SpacingX*(col+1) + l.CellW*col,
		Y: SpacingY*(row+1) + l.CellH*row,
		W: l.CellW,
		H: l.CellH,
	}
}

// apply writes the layout rectangles into both buffers across the full
// capacity and makes the layout's dimensions the active rectangle.
func (l Layout) apply(s *Store) {
	s.setActive(l.Cols, l.Rows)
	for x := 0; x < s.capX; x++ {
		for y := 0; y < s.capY; y++ {
			idx := s.Index(x, y)
			r := l.Rect(x, y)
			s.cur[idx].Rect = r
			s.nxt[idx].Rect = r
		}
	}
}
