package life

import (
	"time"

	"github.com/pkg/errors"

	"yagol/pkg/core"
)

// ErrNoSurface is returned when the surface provider reports a size that
// cannot hold a grid. The engine keeps running with an empty active region.
var ErrNoSurface = errors.New("surface has no usable size")

// SurfaceSizer reports the drawable area available to the grid.
type SurfaceSizer interface {
	AvailableSize() (w, h int)
}

// PointerSource reports the pointer position in surface coordinates.
type PointerSource interface {
	PointerPosition() (x, y int)
}

// Renderer draws cells handed out by the engine.
type Renderer interface {
	DrawCell(v Variant, alive bool, r Rect)
	DrawHighlight(r Rect)
}

// SurfaceFunc adapts a function to SurfaceSizer.
type SurfaceFunc func() (int, int)

// AvailableSize calls f.
func (f SurfaceFunc) AvailableSize() (int, int) { return f() }

// FixedSurface is a SurfaceSizer with a constant size.
type FixedSurface struct{ W, H int }

// AvailableSize returns the fixed dimensions.
func (s FixedSurface) AvailableSize() (int, int) { return s.W, s.H }

// Engine owns the grid and applies configuration changes to it. It is not
// safe for concurrent use.
type Engine struct {
	cfg     Config
	store   *Store
	layout  Layout
	rng     *core.RNG
	surface SurfaceSizer

	surfW, surfH int
	generation   int
}

// New allocates an engine. Call Initialize before stepping.
func New(cfg Config, surface SurfaceSizer) *Engine {
	if cfg.Speed < MinSpeed || cfg.Speed > MaxSpeed {
		cfg.Speed = DefaultSpeed
	}
	return &Engine{
		cfg:     cfg,
		store:   NewStore(cfg.CapacityX, cfg.CapacityY),
		rng:     core.NewRNG(cfg.Seed),
		surface: surface,
	}
}

// Config returns the current configuration.
func (e *Engine) Config() Config { return e.cfg }

// Store exposes the grid buffers.
func (e *Engine) Store() *Store { return e.store }

// Layout returns the layout in effect.
func (e *Engine) Layout() Layout { return e.layout }

// Size returns the active grid dimensions.
func (e *Engine) Size() core.Size {
	w, h := e.store.Size()
	return core.Size{W: w, H: h}
}

// Generation is the number of steps committed since the last initialization.
func (e *Engine) Generation() int { return e.generation }

// Population counts the live cells in the active region.
func (e *Engine) Population() int { return e.store.Population() }

// StepDelay returns the delay the host should wait between generations.
func (e *Engine) StepDelay() time.Duration { return StepDelay(e.cfg.Speed) }

func (e *Engine) pollSurface() (int, int) {
	if e.surface == nil {
		return 0, 0
	}
	return e.surface.AvailableSize()
}

// Initialize randomizes the grid to fit the current surface and applies the
// configured palette.
func (e *Engine) Initialize() error {
	e.surfW, e.surfH = e.pollSurface()
	e.layout = ComputeLayout(e.surfW, e.surfH, e.cfg.CellSize, e.store.capX, e.store.capY)
	e.store.Reset(e.layout.Cols, e.layout.Rows, e.rng)
	e.layout.apply(e.store)
	e.store.ApplyPalette(e.cfg.Palette, e.rng)
	e.generation = 0
	if e.surfW <= 0 || e.surfH <= 0 {
		return errors.Wrapf(ErrNoSurface, "[Initialize] surface %dx%d", e.surfW, e.surfH)
	}
	return nil
}

// Resize polls the surface and recomputes the layout when its size changed.
// It reports whether the layout was recomputed.
func (e *Engine) Resize() (bool, error) {
	w, h := e.pollSurface()
	if w == e.surfW && h == e.surfH {
		return false, nil
	}
	e.surfW, e.surfH = w, h
	e.relayout()
	if w <= 0 || h <= 0 {
		return true, errors.Wrapf(ErrNoSurface, "[Resize] surface %dx%d", w, h)
	}
	return true, nil
}

func (e *Engine) relayout() {
	e.layout = ComputeLayout(e.surfW, e.surfH, e.cfg.CellSize, e.store.capX, e.store.capY)
	e.layout.apply(e.store)
}

// Step advances the grid by one generation.
func (e *Engine) Step() {
	e.store.Advance(e.cfg.Topology)
	e.store.Commit()
	e.generation++
}

// SetPalette recolors every cell.
func (e *Engine) SetPalette(mode PaletteMode) {
	if mode > PaletteRandom {
		mode = PaletteRed
	}
	e.cfg.Palette = mode
	e.store.ApplyPalette(mode, e.rng)
}

// SetTopology changes the edge rule used by the next Step.
func (e *Engine) SetTopology(t Topology) {
	e.cfg.Topology = t
}

// SetCellSize switches the cell pitch and re-initializes the grid.
func (e *Engine) SetCellSize(size CellSize) error {
	e.cfg.CellSize = size
	return e.Initialize()
}

// SetSpeed changes the speed level, clamped to [MinSpeed, MaxSpeed].
func (e *Engine) SetSpeed(speed int) {
	e.cfg.Speed = clamp(speed, MinSpeed, MaxSpeed)
}

// Randomize reseeds the generator and re-initializes the grid.
func (e *Engine) Randomize(seed int64) error {
	e.cfg.Seed = seed
	e.rng.Reseed(seed)
	return e.Initialize()
}

// ClearAliveStates kills every cell, keeping colors and layout.
func (e *Engine) ClearAliveStates() {
	e.store.ClearAlive()
	e.generation = 0
}

// ClearAll empties both buffers completely. The grid stays empty until the
// next Initialize.
func (e *Engine) ClearAll() {
	e.store.ClearAll()
	e.store.setActive(0, 0)
	e.generation = 0
}

// Set writes the alive state of the cell at grid index (x, y).
func (e *Engine) Set(x, y int, alive bool) { e.store.Set(x, y, alive) }

// Toggle flips the cell at grid index (x, y).
func (e *Engine) Toggle(x, y int) bool { return e.store.Toggle(x, y) }

// ToggleAt flips the cell under the pointer, if any.
func (e *Engine) ToggleAt(px, py int) (CellRef, bool) {
	ref, ok := e.store.CellAt(px, py)
	if !ok {
		return CellRef{}, false
	}
	ref.Cell.Alive = e.store.Toggle(ref.X, ref.Y)
	return ref, true
}

// CellAt returns the cell under the pointer.
func (e *Engine) CellAt(px, py int) (CellRef, bool) { return e.store.CellAt(px, py) }

// ForEachActiveCell calls fn for every committed cell in the active region.
func (e *Engine) ForEachActiveCell(fn func(x, y int, c Cell)) {
	s := e.store
	for x := 0; x < s.w; x++ {
		for y := 0; y < s.h; y++ {
			fn(x, y, s.cur[s.Index(x, y)])
		}
	}
}

// Draw hands every active cell to r. When highlight is set the cell under
// the pointer is highlighted as well.
func (e *Engine) Draw(r Renderer, p PointerSource, highlight bool) {
	e.ForEachActiveCell(func(_, _ int, c Cell) {
		r.DrawCell(c.Variant, c.Alive, c.Rect)
	})
	if !highlight || p == nil {
		return
	}
	if ref, ok := e.CellAt(p.PointerPosition()); ok {
		r.DrawHighlight(ref.Cell.Rect)
	}
}
