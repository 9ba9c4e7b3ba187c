package life

// Topology decides how the neighborhood behaves at the grid edges.
type Topology uint8

const (
	// Bounded edges have fewer neighbors.
	Bounded Topology = iota
	// Toroidal edges wrap around to the opposite side.
	Toroidal
)

func (t Topology) String() string {
	if t == Toroidal {
		return "toroidal"
	}
	return "bounded"
}

// Survives applies the B3/S23 rule to a cell with n live neighbors.
func Survives(alive bool, n int) bool {
	return (alive && (n == 2 || n == 3)) || (!alive && n == 3)
}

// CountLiveNeighbors counts the live cells around (x, y) in the committed
// buffer. Callers must pass coordinates inside the active rectangle.
//
// Under Toroidal the wrap is literal modulo arithmetic, so on a grid one cell
// wide or tall a cell can be its own neighbor and is counted as such.
func (s *Store) CountLiveNeighbors(x, y int, topo Topology) int {
	w, h := s.w, s.h
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if topo == Toroidal {
				nx = (nx + w) % w
				ny = (ny + h) % h
			} else if nx < 0 || nx >= w || ny < 0 || ny >= h {
				continue
			}
			if s.cur[s.Index(nx, ny)].Alive {
				n++
			}
		}
	}
	return n
}

// Advance writes the next generation of every active cell into the next
// buffer. The current buffer is only read.
func (s *Store) Advance(topo Topology) {
	for x := 0; x < s.w; x++ {
		for y := 0; y < s.h; y++ {
			idx := s.Index(x, y)
			s.nxt[idx].Alive = Survives(s.cur[idx].Alive, s.CountLiveNeighbors(x, y, topo))
		}
	}
}
