package life

import (
	"strconv"

	"github.com/pkg/errors"

	"yagol/pkg/core"
)

const (
	ParamSpeed    = "speed"
	ParamPalette  = "palette"
	ParamTopology = "topology"
	ParamSize     = "size"
)

var (
	topologyOptions = []string{Bounded.String(), Toroidal.String()}
	sizeOptions     = []string{CellSmall.String(), CellLarge.String()}
)

// Parameters reports the engine state for display.
func (e *Engine) Parameters() core.ParameterSnapshot {
	size := e.Size()
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				readOnly(intParam("w", "Columns", size.W)),
				readOnly(intParam("h", "Rows", size.H)),
				readOnly(intParam("generation", "Generation", e.generation)),
				readOnly(intParam("population", "Population", e.Population())),
				readOnly(int64Param("seed", "Seed", e.cfg.Seed)),
			},
		},
		{
			Name: "Simulation",
			Params: []core.Parameter{
				intParam(ParamSpeed, "Speed", e.cfg.Speed),
				choiceParam(ParamTopology, "Edges", int(e.cfg.Topology), topologyOptions),
				choiceParam(ParamPalette, "Color", int(e.cfg.Palette), paletteNames[:]),
				choiceParam(ParamSize, "Cell size", int(e.cfg.CellSize), sizeOptions),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the parameters the HUD may adjust.
func (e *Engine) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: ParamSpeed, Label: "Speed", Type: core.ParamTypeInt, Min: MinSpeed, Max: MaxSpeed},
		{Key: ParamTopology, Label: "Edges", Type: core.ParamTypeChoice, Min: 0, Max: len(topologyOptions) - 1},
		{Key: ParamPalette, Label: "Color", Type: core.ParamTypeChoice, Min: 0, Max: len(paletteNames) - 1},
		{Key: ParamSize, Label: "Cell size", Type: core.ParamTypeChoice, Min: 0, Max: len(sizeOptions) - 1},
	}
}

// SetIntParameter applies a HUD adjustment. It reports whether the key was
// recognized and the value accepted.
func (e *Engine) SetIntParameter(key string, value int) bool {
	switch key {
	case ParamSpeed:
		if value < MinSpeed || value > MaxSpeed {
			return false
		}
		e.SetSpeed(value)
	case ParamTopology:
		if value < 0 || value >= len(topologyOptions) {
			return false
		}
		e.SetTopology(Topology(value))
	case ParamPalette:
		if value < 0 || value >= len(paletteNames) {
			return false
		}
		e.SetPalette(PaletteMode(value))
	case ParamSize:
		if value < 0 || value >= len(sizeOptions) {
			return false
		}
		// An unusable surface still leaves a valid empty grid.
		if err := e.SetCellSize(CellSize(value)); err != nil && !errors.Is(err, ErrNoSurface) {
			return false
		}
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func choiceParam(key, label string, value int, options []string) core.Parameter {
	return core.Parameter{
		Key:     key,
		Label:   label,
		Type:    core.ParamTypeChoice,
		Value:   strconv.Itoa(value),
		Options: options,
	}
}

func readOnly(p core.Parameter) core.Parameter {
	p.ReadOnly = true
	return p
}
