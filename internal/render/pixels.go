package render

import (
	"image/color"
	"math"

	"yagol/pkg/life"
)

var (
	// BackgroundColor fills the surface behind the grid.
	BackgroundColor = color.RGBA{R: 18, G: 18, B: 22, A: 255}
	// DeadColor is the unlit LED tint.
	DeadColor = color.RGBA{R: 48, G: 48, B: 54, A: 255}
	// HighlightColor outlines the hovered cell.
	HighlightColor = color.RGBA{R: 235, G: 235, B: 245, A: 255}
)

var variantColors = [...]color.RGBA{
	life.VariantNone:   {R: 48, G: 48, B: 54, A: 255},
	life.VariantRed:    {R: 240, G: 52, B: 52, A: 255},
	life.VariantGreen:  {R: 60, G: 220, B: 90, A: 255},
	life.VariantBlue:   {R: 60, G: 120, B: 245, A: 255},
	life.VariantPurple: {R: 180, G: 80, B: 230, A: 255},
	life.VariantYellow: {R: 245, G: 215, B: 60, A: 255},
}

// VariantColor returns the lit color of a variant.
func VariantColor(v life.Variant) color.RGBA {
	if int(v) >= len(variantColors) {
		return DeadColor
	}
	return variantColors[v]
}

// fillLED paints a round LED of size w*h into buf as RGBA bytes. The body
// brightens toward the center and pixels outside the disc are transparent.
func fillLED(buf []byte, w, h int, c color.RGBA) {
	cx, cy := float64(w-1)/2, float64(h-1)/2
	radius := math.Min(float64(w), float64(h)) / 2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			base := (y*w + x) * 4
			d := math.Hypot(float64(x)-cx, float64(y)-cy) / radius
			if d > 1 {
				buf[base+0] = 0
				buf[base+1] = 0
				buf[base+2] = 0
				buf[base+3] = 0
				continue
			}
			glow := 1 - 0.45*d*d
			buf[base+0] = scale(c.R, glow)
			buf[base+1] = scale(c.G, glow)
			buf[base+2] = scale(c.B, glow)
			buf[base+3] = c.A
		}
	}
}

// fillRing paints a square outline of the given thickness into buf.
func fillRing(buf []byte, w, h, thickness int, c color.RGBA) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			base := (y*w + x) * 4
			edge := x < thickness || y < thickness || x >= w-thickness || y >= h-thickness
			if !edge {
				buf[base+0] = 0
				buf[base+1] = 0
				buf[base+2] = 0
				buf[base+3] = 0
				continue
			}
			buf[base+0] = c.R
			buf[base+1] = c.G
			buf[base+2] = c.B
			buf[base+3] = c.A
		}
	}
}

func scale(v uint8, f float64) uint8 {
	out := float64(v)*f + 0.5
	if out > 255 {
		return 255
	}
	return uint8(out)
}
