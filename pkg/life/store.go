package life

import "yagol/pkg/core"

const (
	// MaxCellsX is the default horizontal buffer capacity.
	MaxCellsX = 550
	// MaxCellsY is the default vertical buffer capacity.
	MaxCellsY = 550
)

// Store holds the current and next generation buffers. Both buffers are
// allocated once at full capacity and indexed [x][y]; only the active
// rectangle takes part in the simulation.
//
// Outside of a rule pass the two buffers are identical, including cells
// outside the active rectangle, which keep their last committed state.
type Store struct {
	capX, capY int
	w, h       int
	cur        []Cell
	nxt        []Cell
}

// NewStore allocates both buffers with the given capacity.
func NewStore(capX, capY int) *Store {
	if capX < 0 {
		capX = 0
	}
	if capY < 0 {
		capY = 0
	}
	total := capX * capY
	return &Store{capX: capX, capY: capY, cur: make([]Cell, total), nxt: make([]Cell, total)}
}

// Capacity returns the fixed buffer bounds.
func (s *Store) Capacity() (int, int) { return s.capX, s.capY }

// Size returns the active dimensions.
func (s *Store) Size() (int, int) { return s.w, s.h }

// Index returns the linear slice index for coordinates (x, y).
func (s *Store) Index(x, y int) int { return x*s.capY + y }

// InActive reports whether (x, y) lies inside the active rectangle.
func (s *Store) InActive(x, y int) bool {
	return x >= 0 && x < s.w && y >= 0 && y < s.h
}

// At returns the committed cell at (x, y).
func (s *Store) At(x, y int) Cell { return s.cur[s.Index(x, y)] }

// Alive reports the committed alive state at (x, y).
func (s *Store) Alive(x, y int) bool { return s.cur[s.Index(x, y)].Alive }

func (s *Store) setActive(w, h int) {
	s.w = clamp(w, 0, s.capX)
	s.h = clamp(h, 0, s.capY)
}

// Reset makes (width, height) the active rectangle, gives every active cell a
// 50/50 alive state and clears every other cell. Layout is cleared everywhere.
func (s *Store) Reset(width, height int, rng *core.RNG) {
	s.setActive(width, height)
	for x := 0; x < s.capX; x++ {
		for y := 0; y < s.capY; y++ {
			c := &s.cur[s.Index(x, y)]
			if x < s.w && y < s.h {
				*c = Cell{Alive: rng.Bool(), Variant: c.Variant}
				continue
			}
			*c = Cell{}
		}
	}
	s.Mirror()
}

// Commit copies the next buffer over the current generation.
func (s *Store) Commit() {
	copy(s.cur, s.nxt)
}

// Mirror copies the current buffer over the next buffer.
func (s *Store) Mirror() {
	copy(s.nxt, s.cur)
}

// ClearAll empties every cell of both buffers across the full capacity.
func (s *Store) ClearAll() {
	clear(s.cur)
	clear(s.nxt)
}

// ClearAlive kills every cell of both buffers, keeping variants and layout.
func (s *Store) ClearAlive() {
	for i := range s.cur {
		s.cur[i].Alive = false
	}
	s.Mirror()
}

// Set writes the alive state of a committed cell and mirrors it into next.
func (s *Store) Set(x, y int, alive bool) {
	if !s.InActive(x, y) {
		return
	}
	idx := s.Index(x, y)
	s.cur[idx].Alive = alive
	s.nxt[idx].Alive = alive
}

// Toggle flips the alive state of a committed cell and returns the new state.
func (s *Store) Toggle(x, y int) bool {
	if !s.InActive(x, y) {
		return false
	}
	alive := !s.Alive(x, y)
	s.Set(x, y, alive)
	return alive
}

// Population counts live cells inside the active rectangle.
func (s *Store) Population() int {
	n := 0
	for x := 0; x < s.w; x++ {
		for y := 0; y < s.h; y++ {
			if s.cur[s.Index(x, y)].Alive {
				n++
			}
		}
	}
	return n
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
