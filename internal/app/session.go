package app

import (
	"time"

	pacing "yagol/internal/core"
	"yagol/internal/stats"
	"yagol/internal/ui"
	"yagol/pkg/core"
	"yagol/pkg/life"
)

// Session holds the play state shared by the window and terminal hosts:
// whether the grid is running, the step pacer and the run statistics.
type Session struct {
	engine *life.Engine
	pacer  *pacing.FixedStep
	stats  *stats.Stats

	paused   bool
	quit     bool
	lastStep time.Time

	// Seeder supplies the seed for the Random action.
	Seeder func() int64
}

// NewSession wraps an initialized engine. The session starts paused when
// paused is set.
func NewSession(e *life.Engine, paused bool) *Session {
	return &Session{
		engine: e,
		pacer:  pacing.NewFixedStep(e.StepDelay()),
		stats:  stats.New(),
		paused: paused,
		Seeder: func() int64 { return time.Now().UnixNano() },
	}
}

// Engine returns the wrapped engine.
func (s *Session) Engine() *life.Engine { return s.engine }

// Stats returns the statistics of the current run.
func (s *Session) Stats() *stats.Stats { return s.stats }

// Paused reports whether generations are held.
func (s *Session) Paused() bool { return s.paused }

// Quit reports whether the Quit action was applied.
func (s *Session) Quit() bool { return s.quit }

// Apply executes a control bar or keyboard action.
func (s *Session) Apply(a ui.Action) error {
	e := s.engine
	cfg := e.Config()
	switch a {
	case ui.ActionPlay:
		s.paused = !s.paused
		if !s.paused {
			s.pacer.Reset()
		}
	case ui.ActionStep:
		if !s.paused {
			s.paused = true
			return nil
		}
		s.step(time.Now())
	case ui.ActionClear:
		s.paused = true
		e.ClearAliveStates()
		s.stats.Reset()
	case ui.ActionRandom:
		s.paused = true
		s.stats.Reset()
		return e.Randomize(s.Seeder())
	case ui.ActionColor:
		e.SetPalette(cfg.Palette.Next())
	case ui.ActionSpeed:
		e.SetSpeed(cfg.Speed%life.MaxSpeed + 1)
		s.pacer.SetDelay(e.StepDelay())
	case ui.ActionSize:
		s.paused = true
		s.stats.Reset()
		next := life.CellLarge
		if cfg.CellSize == life.CellLarge {
			next = life.CellSmall
		}
		return e.SetCellSize(next)
	case ui.ActionTopology:
		next := life.Toroidal
		if cfg.Topology == life.Toroidal {
			next = life.Bounded
		}
		e.SetTopology(next)
	case ui.ActionQuit:
		s.quit = true
	}
	return nil
}

// Tick follows surface size changes and advances one generation when the
// session is running and the pacer is due. It reports whether a generation
// was committed.
func (s *Session) Tick(now time.Time) (bool, error) {
	if _, err := s.engine.Resize(); err != nil {
		return false, err
	}
	s.pacer.SetDelay(s.engine.StepDelay())
	if s.paused || !s.pacer.ShouldStepAt(now) {
		return false, nil
	}
	s.step(now)
	return true, nil
}

func (s *Session) step(now time.Time) {
	var interval time.Duration
	if !s.lastStep.IsZero() {
		interval = now.Sub(s.lastStep)
	}
	s.lastStep = now
	s.engine.Step()
	s.stats.Observe(s.engine, interval)
}

// Click toggles the cell under (px, py). Cells are editable only while
// paused.
func (s *Session) Click(px, py int) bool {
	if !s.paused {
		return false
	}
	_, ok := s.engine.ToggleAt(px, py)
	return ok
}

// Highlight reports whether the hovered cell should be outlined.
func (s *Session) Highlight() bool { return s.paused }

// BarState returns the labels state for the control bar.
func (s *Session) BarState() ui.BarState {
	cfg := s.engine.Config()
	return ui.BarState{
		Playing:  !s.paused,
		Palette:  cfg.Palette.String(),
		Speed:    cfg.Speed,
		CellSize: cfg.CellSize.String(),
		Topology: cfg.Topology.String(),
	}
}

// Parameters reports the engine parameters followed by the run statistics.
func (s *Session) Parameters() core.ParameterSnapshot {
	snap := s.engine.Parameters()
	snap.Groups = append(snap.Groups, s.stats.Group())
	return snap
}

// ParameterControls lists the engine controls.
func (s *Session) ParameterControls() []core.ParameterControl {
	return s.engine.ParameterControls()
}

// SetIntParameter forwards a HUD adjustment to the engine. A cell size
// change starts a new run.
func (s *Session) SetIntParameter(key string, value int) bool {
	ok := s.engine.SetIntParameter(key, value)
	if ok && key == life.ParamSize {
		s.stats.Reset()
	}
	if ok && key == life.ParamSpeed {
		s.pacer.SetDelay(s.engine.StepDelay())
	}
	return ok
}
