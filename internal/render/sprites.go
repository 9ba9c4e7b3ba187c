//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"yagol/pkg/life"
)

// highlightThickness is the outline width of the hover sprite in pixels.
const highlightThickness = 2

// Sprites holds one LED image per variant plus the unlit and hover images
// for a single cell pitch.
type Sprites struct {
	w, h      int
	lit       [len(variantColors)]*ebiten.Image
	dead      *ebiten.Image
	highlight *ebiten.Image
}

// NewSprites rasterizes the LED images for cells of w*h pixels.
func NewSprites(w, h int) *Sprites {
	if w <= 0 || h <= 0 {
		return &Sprites{}
	}
	s := &Sprites{w: w, h: h}
	buf := make([]byte, 4*w*h)
	for v := range variantColors {
		fillLED(buf, w, h, variantColors[v])
		s.lit[v] = ebiten.NewImage(w, h)
		s.lit[v].WritePixels(buf)
	}
	fillLED(buf, w, h, DeadColor)
	s.dead = ebiten.NewImage(w, h)
	s.dead.WritePixels(buf)

	hw, hh := w+2*life.SpacingX, h+2*life.SpacingY
	ring := make([]byte, 4*hw*hh)
	fillRing(ring, hw, hh, highlightThickness, HighlightColor)
	s.highlight = ebiten.NewImage(hw, hh)
	s.highlight.WritePixels(ring)
	return s
}

// Size returns the cell pitch the sprites were built for.
func (s *Sprites) Size() (int, int) { return s.w, s.h }

// ScreenRenderer draws engine cells onto an ebiten image. Call Begin once
// per frame before handing it to the engine.
type ScreenRenderer struct {
	dst     *ebiten.Image
	sprites *Sprites
}

// NewScreenRenderer returns a renderer with sprites for cells of w*h pixels.
func NewScreenRenderer(w, h int) *ScreenRenderer {
	return &ScreenRenderer{sprites: NewSprites(w, h)}
}

// SetSprites rebuilds the sprites when the cell pitch changed.
func (r *ScreenRenderer) SetSprites(w, h int) {
	if r.sprites != nil {
		if sw, sh := r.sprites.Size(); sw == w && sh == h {
			return
		}
	}
	r.sprites = NewSprites(w, h)
}

// Begin clears dst to the background color and targets it for drawing.
func (r *ScreenRenderer) Begin(dst *ebiten.Image) {
	r.dst = dst
	dst.Fill(BackgroundColor)
}

// DrawCell implements life.Renderer.
func (r *ScreenRenderer) DrawCell(v life.Variant, alive bool, rect life.Rect) {
	if r.dst == nil || r.sprites == nil || r.sprites.dead == nil {
		return
	}
	img := r.sprites.dead
	if alive && int(v) < len(r.sprites.lit) {
		img = r.sprites.lit[v]
	}
	r.blit(img, rect.X, rect.Y, rect.W, rect.H)
}

// DrawHighlight implements life.Renderer.
func (r *ScreenRenderer) DrawHighlight(rect life.Rect) {
	if r.dst == nil || r.sprites == nil || r.sprites.highlight == nil {
		return
	}
	r.blit(r.sprites.highlight, rect.X-life.SpacingX, rect.Y-life.SpacingY,
		rect.W+2*life.SpacingX, rect.H+2*life.SpacingY)
}

func (r *ScreenRenderer) blit(img *ebiten.Image, x, y, w, h int) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	if b.Dx() != w || b.Dy() != h {
		op.GeoM.Scale(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
	}
	op.GeoM.Translate(float64(x), float64(y))
	r.dst.DrawImage(img, op)
}
