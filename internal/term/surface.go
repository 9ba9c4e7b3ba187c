package term

import "github.com/gdamore/tcell/v2"

// A terminal character stands in for a CharW x CharH pixel area, so the
// engine lays out one small cell per row and per two columns.
const (
	CharW = 9
	CharH = 18
)

// Surface reports the terminal size in engine pixels.
type Surface struct {
	screen tcell.Screen
}

// NewSurface wraps screen.
func NewSurface(screen tcell.Screen) *Surface { return &Surface{screen: screen} }

// AvailableSize implements life.SurfaceSizer.
func (s *Surface) AvailableSize() (int, int) {
	w, h := s.screen.Size()
	return w * CharW, h * CharH
}

// toChar maps a pixel position to the character containing it.
func toChar(px, py int) (int, int) {
	return px / CharW, py / CharH
}

// toPixel maps a character to the pixel at its center.
func toPixel(cx, cy int) (int, int) {
	return cx*CharW + CharW/2, cy*CharH + CharH/2
}
