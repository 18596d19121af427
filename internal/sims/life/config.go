package life

import "strconv"

// Config controls the dimensions and initial contents of a Life board.
type Config struct {
	Width  int
	Height int

	Seed int64

	// Scene selects what Reset places on the board: a scene name from
	// Scenes, "random" for a seeded soup of the given Density, "empty", or
	// the name of a library template, which is centered.
	Scene   string
	Density float64
}

// DefaultConfig returns a 280×133 board seeded with two glider guns and a
// glider.
func DefaultConfig() Config {
	return Config{
		Width:   280,
		Height:  133,
		Seed:    42,
		Scene:   SceneGuns,
		Density: 0.25,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["scene"]; ok && v != "" {
		c.Scene = v
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	return c
}
