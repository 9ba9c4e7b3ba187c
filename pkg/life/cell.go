package life

// Variant is the color tag a cell displays while alive.
type Variant uint8

const (
	// VariantNone marks a cell that has no color assigned.
	VariantNone Variant = iota
	VariantRed
	VariantGreen
	VariantBlue
	VariantPurple
	VariantYellow
)

// Variants lists the five named color variants in palette order.
var Variants = [...]Variant{VariantRed, VariantGreen, VariantBlue, VariantPurple, VariantYellow}

func (v Variant) String() string {
	switch v {
	case VariantRed:
		return "red"
	case VariantGreen:
		return "green"
	case VariantBlue:
		return "blue"
	case VariantPurple:
		return "purple"
	case VariantYellow:
		return "yellow"
	default:
		return "none"
	}
}

// Valid reports whether v is one of the five named variants.
func (v Variant) Valid() bool {
	return v >= VariantRed && v <= VariantYellow
}

// Rect is a screen-space rectangle in pixels.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point lies strictly inside r. Boundary pixels
// belong to no rectangle.
func (r Rect) Contains(px, py int) bool {
	return px > r.X && px < r.X+r.W && py > r.Y && py < r.Y+r.H
}

// Cell is a single grid entry. Rect is layout, not simulation state.
type Cell struct {
	Alive   bool
	Variant Variant
	Rect    Rect
}

// CellRef identifies a cell by grid index and carries a copy of its state.
type CellRef struct {
	X, Y int
	Cell Cell
}
