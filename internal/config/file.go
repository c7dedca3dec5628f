package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// File is the optional TOML configuration file. Flags and environment
// variables override any value it sets.
type File struct {
	Catalog    string     `toml:"catalog"`
	DB         string     `toml:"db"`
	Screen     string     `toml:"screen"`
	Footer     bool       `toml:"footer"`
	Width      int        `toml:"width"`
	Height     int        `toml:"height"`
	Navigation Navigation `toml:"navigation"`
	Keys       Keys       `toml:"keys"`
}

// Navigation tunes the spatial selector. Units are terminal cells.
type Navigation struct {
	Epsilon    float64 `toml:"epsilon"`
	LaneWeight float64 `toml:"lane_weight"`
}

// Keys lists key names per navigation action, e.g. up = ["up", "k"].
type Keys struct {
	Up     []string `toml:"up"`
	Down   []string `toml:"down"`
	Left   []string `toml:"left"`
	Right  []string `toml:"right"`
	Select []string `toml:"select"`
	Back   []string `toml:"back"`
}

// DefaultFile returns the values used when no file is given.
func DefaultFile() File {
	return File{
		Screen: "apps",
		Navigation: Navigation{
			// rows are one cell tall, so the jitter tolerance is half a cell
			Epsilon:    0.5,
			LaneWeight: 2,
		},
	}
}

// LoadFile reads path over DefaultFile. Unknown keys are an error so that a
// typo in a binding does not silently keep the default.
func LoadFile(path string) (File, error) {
	cfg := DefaultFile()
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()
	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}
