package render

import (
	"image/color"
	"testing"

	"yagol/pkg/life"
)

func TestVariantColorsDistinct(t *testing.T) {
	seen := map[color.RGBA]life.Variant{}
	for _, v := range life.Variants {
		c := VariantColor(v)
		if prev, ok := seen[c]; ok {
			t.Fatalf("%v and %v share color %v", prev, v, c)
		}
		seen[c] = v
	}
	if VariantColor(life.Variant(200)) != DeadColor {
		t.Fatal("unknown variant should render dead")
	}
}

func TestFillLED(t *testing.T) {
	const size = 16
	buf := make([]byte, size*size*4)
	on := VariantColor(life.VariantGreen)
	fillLED(buf, size, size, on)

	if buf[3] != 0 {
		t.Fatal("corner pixel should be transparent")
	}
	center := ((size/2)*size + size/2) * 4
	if buf[center+3] != on.A || buf[center+1] == 0 {
		t.Fatalf("center pixel = %v", buf[center:center+4])
	}
	edge := ((size/2)*size + 0) * 4
	if buf[edge+1] > buf[center+1] {
		t.Fatal("LED should be brightest at the center")
	}
}

func TestFillRing(t *testing.T) {
	const w, h = 20, 20
	buf := make([]byte, w*h*4)
	fillRing(buf, w, h, 2, HighlightColor)
	if buf[3] != HighlightColor.A {
		t.Fatal("ring corner should be opaque")
	}
	inner := ((h/2)*w + w/2) * 4
	if buf[inner+3] != 0 {
		t.Fatal("ring interior should be transparent")
	}
}
