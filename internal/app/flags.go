package app

import (
	"flag"

	"yagol/internal/config"
	"yagol/pkg/life"
)

// Config represents the command-line parameters shared by the hosts.
type Config struct {
	ConfigPath string
	SavePath   string
	Seed       int64
	Speed      int
	Size       string
	Palette    string
	Topology   string
	Width      int
	Height     int
	Paused     bool
}

// NewConfig returns a Config populated with the default settings.
func NewConfig() *Config {
	d := config.DefaultSettings()
	return &Config{
		Seed:     d.Seed,
		Speed:    d.Speed,
		Size:     d.CellSize,
		Palette:  d.Palette,
		Topology: d.Topology,
		Width:    d.WindowWidth,
		Height:   d.WindowHeight,
		Paused:   d.Paused,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "JSON settings file")
	fs.StringVar(&c.SavePath, "save", c.SavePath, "write the resolved settings to this JSON file")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial grid")
	fs.IntVar(&c.Speed, "speed", c.Speed, "speed level 1-5")
	fs.StringVar(&c.Size, "size", c.Size, "cell size: small or large")
	fs.StringVar(&c.Palette, "palette", c.Palette, "red, green, blue, purple, yellow or random")
	fs.StringVar(&c.Topology, "topology", c.Topology, "bounded or toroidal")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start with the simulation stopped")
}

// Resolve loads the settings file, if any, and overlays the flags that were
// set explicitly on fs. The result is written to SavePath when it is set.
func (c *Config) Resolve(fs *flag.FlagSet) (config.Settings, error) {
	s, err := config.LoadOrDefault(c.ConfigPath)
	if err != nil {
		return s, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			s.Seed = c.Seed
		case "speed":
			s.Speed = c.Speed
		case "size":
			s.CellSize = c.Size
		case "palette":
			s.Palette = c.Palette
		case "topology":
			s.Topology = c.Topology
		case "width":
			s.WindowWidth = c.Width
		case "height":
			s.WindowHeight = c.Height
		case "paused":
			s.Paused = c.Paused
		}
	})
	if c.SavePath != "" {
		if err := s.Save(c.SavePath); err != nil {
			return s, err
		}
	}
	return s, nil
}

// EngineConfig converts settings to an engine configuration.
func EngineConfig(s config.Settings) life.Config {
	return life.FromMap(s.ToMap())
}
