package life

// CellAt returns the active cell whose rectangle strictly contains the point.
func (s *Store) CellAt(px, py int) (CellRef, bool) {
	for x := 0; x < s.w; x++ {
		for y := 0; y < s.h; y++ {
			c := s.cur[s.Index(x, y)]
			if c.Rect.Contains(px, py) {
				return CellRef{X: x, Y: y, Cell: c}, true
			}
		}
	}
	return CellRef{}, false
}
