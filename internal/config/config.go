package config

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Settings is the on-disk sandbox configuration.
type Settings struct {
	Seed     int64  `json:"seed"`
	Topology string `json:"topology"`
	Palette  string `json:"palette"`
	CellSize string `json:"cell_size"`
	Speed    int    `json:"speed"`
	Paused   bool   `json:"paused"`

	WindowWidth  int `json:"window_width"`
	WindowHeight int `json:"window_height"`
}

// DefaultSettings returns sensible defaults
func DefaultSettings() Settings {
	return Settings{
		Seed:         42,
		Topology:     "bounded",
		Palette:      "red",
		CellSize:     "small",
		Speed:        3,
		Paused:       true, // the sandbox starts stopped
		WindowWidth:  1024,
		WindowHeight: 720,
	}
}

// Load reads settings from a JSON file on top of the defaults.
func Load(filename string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(filename)
	if err != nil {
		return settings, errors.Wrapf(err, "[Load] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &settings); err != nil {
		return settings, errors.Wrapf(err, "[Load] failed to unmarshal data from file: %+v", filename)
	}

	return settings, nil
}

// LoadOrDefault behaves like Load but treats a missing file as empty.
func LoadOrDefault(filename string) (Settings, error) {
	if filename == "" {
		return DefaultSettings(), nil
	}
	settings, err := Load(filename)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return DefaultSettings(), nil
	}
	return settings, err
}

// Save writes settings as indented JSON.
func (s Settings) Save(filename string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return errors.Wrap(err, "[Save] failed to marshal settings")
	}
	if err = os.WriteFile(filename, append(data, '\n'), 0o644); err != nil {
		return errors.Wrapf(err, "[Save] failed to write file: %+v", filename)
	}
	return nil
}

// ToMap renders the engine-relevant settings in the key/value form accepted
// by life.FromMap.
func (s Settings) ToMap() map[string]string {
	return map[string]string{
		"seed":     strconv.FormatInt(s.Seed, 10),
		"topology": s.Topology,
		"palette":  s.Palette,
		"size":     s.CellSize,
		"speed":    strconv.Itoa(s.Speed),
	}
}
