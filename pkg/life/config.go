package life

import (
	"strconv"
	"time"
)

// stepDelays maps speed levels 1..5 to the delay between generations.
var stepDelays = [...]time.Duration{
	200 * time.Millisecond,
	100 * time.Millisecond,
	75 * time.Millisecond,
	50 * time.Millisecond,
	25 * time.Millisecond,
}

const (
	MinSpeed     = 1
	MaxSpeed     = len(stepDelays)
	DefaultSpeed = 3
)

// StepDelay returns the inter-generation delay for a speed level. Levels out
// of range are clamped.
func StepDelay(speed int) time.Duration {
	return stepDelays[clamp(speed, MinSpeed, MaxSpeed)-1]
}

// Config controls the engine.
type Config struct {
	CapacityX int
	CapacityY int

	Seed     int64
	Topology Topology
	Palette  PaletteMode
	CellSize CellSize
	Speed    int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		CapacityX: MaxCellsX,
		CapacityY: MaxCellsY,
		Seed:      42,
		Topology:  Bounded,
		Palette:   PaletteRed,
		CellSize:  CellSmall,
		Speed:     DefaultSpeed,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unknown keys and unparsable values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["cap_x"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.CapacityX = parsed
		}
	}
	if v, ok := cfg["cap_y"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.CapacityY = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["topology"]; ok {
		switch v {
		case "bounded":
			c.Topology = Bounded
		case "toroidal", "wrap":
			c.Topology = Toroidal
		}
	}
	if v, ok := cfg["palette"]; ok {
		if mode, ok := ParsePalette(v); ok {
			c.Palette = mode
		}
	}
	if v, ok := cfg["size"]; ok {
		switch v {
		case "small":
			c.CellSize = CellSmall
		case "large":
			c.CellSize = CellLarge
		}
	}
	if v, ok := cfg["speed"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= MinSpeed && parsed <= MaxSpeed {
			c.Speed = parsed
		}
	}
	return c
}
