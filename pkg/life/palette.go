package life

import "yagol/pkg/core"

// PaletteMode assigns color variants to cells.
type PaletteMode uint8

const (
	PaletteRed PaletteMode = iota
	PaletteGreen
	PaletteBlue
	PalettePurple
	PaletteYellow
	PaletteRandom
)

var paletteNames = [...]string{"red", "green", "blue", "purple", "yellow", "random"}

func (m PaletteMode) String() string {
	if int(m) < len(paletteNames) {
		return paletteNames[m]
	}
	return "unknown"
}

// Next returns the mode that follows m in the color button cycle.
func (m PaletteMode) Next() PaletteMode {
	return (m + 1) % (PaletteRandom + 1)
}

// Variant returns the fixed variant for m, or VariantNone for PaletteRandom.
func (m PaletteMode) Variant() Variant {
	if m >= PaletteRandom {
		return VariantNone
	}
	return Variants[m]
}

// ParsePalette maps a palette name to its mode.
func ParsePalette(name string) (PaletteMode, bool) {
	for i, n := range paletteNames {
		if n == name {
			return PaletteMode(i), true
		}
	}
	return PaletteRed, false
}

// ApplyPalette colors every cell of the full capacity, then mirrors the
// result into the next buffer.
func (s *Store) ApplyPalette(mode PaletteMode, rng *core.RNG) {
	fixed := mode.Variant()
	for i := range s.cur {
		if mode == PaletteRandom {
			s.cur[i].Variant = Variants[rng.IntN(len(Variants))]
			continue
		}
		s.cur[i].Variant = fixed
	}
	s.Mirror()
}
