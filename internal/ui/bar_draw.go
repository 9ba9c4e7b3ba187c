//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	buttonFill      = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonHoverFill = color.RGBA{R: 84, G: 88, B: 100, A: 255}
	buttonPressFill = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	buttonText      = color.RGBA{R: 230, G: 230, B: 240, A: 255}
)

var barPixel *ebiten.Image

// Draw paints the buttons onto screen.
func (b *Bar) Draw(screen *ebiten.Image) {
	if barPixel == nil {
		barPixel = ebiten.NewImage(1, 1)
		barPixel.Fill(color.White)
	}
	for _, btn := range b.buttons {
		fill := buttonFill
		switch btn.Action {
		case b.pressed:
			fill = buttonPressFill
		case b.hover:
			fill = buttonHoverFill
		}
		drawButton(screen, btn.Rect, btn.Label, fill)
	}
}

func drawButton(dst *ebiten.Image, rect image.Rectangle, label string, bg color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(float64(bg.R)/255.0, float64(bg.G)/255.0, float64(bg.B)/255.0, float64(bg.A)/255.0)
	dst.DrawImage(barPixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(dst, label, face, x, y, buttonText)
}
