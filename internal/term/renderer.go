package term

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"yagol/internal/render"
	"yagol/pkg/life"
)

const (
	aliveGlyph = '●'
	deadGlyph  = '·'
)

var background = rgb(render.BackgroundColor)

// Renderer draws engine cells as one glyph at the center of each cell
// rectangle.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer returns a renderer drawing onto screen.
func NewRenderer(screen tcell.Screen) *Renderer { return &Renderer{screen: screen} }

// DrawCell implements life.Renderer.
func (r *Renderer) DrawCell(v life.Variant, alive bool, rect life.Rect) {
	x, y := center(rect)
	style := tcell.StyleDefault.Background(background)
	if alive {
		r.screen.SetContent(x, y, aliveGlyph, nil, style.Foreground(rgb(render.VariantColor(v))))
		return
	}
	r.screen.SetContent(x, y, deadGlyph, nil, style.Foreground(rgb(render.DeadColor)))
}

// DrawHighlight implements life.Renderer by reversing the cell glyph.
func (r *Renderer) DrawHighlight(rect life.Rect) {
	x, y := center(rect)
	mainc, combc, style, _ := r.screen.GetContent(x, y)
	r.screen.SetContent(x, y, mainc, combc, style.Reverse(true))
}

func center(rect life.Rect) (int, int) {
	return toChar(rect.X+rect.W/2, rect.Y+rect.H/2)
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
