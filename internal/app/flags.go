package app

import (
	"flag"
	"fmt"

	"changelist-life/internal/core"
	"changelist-life/internal/sims/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	Rate     int
	Seed     int64
	HUDWidth int
	Stamp    string
	Options  core.Options
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Scale: 6, TPS: 60, Rate: 200, Seed: 42, HUDWidth: 220, Stamp: "glider"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "registered simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "window ticks per second")
	fs.IntVar(&c.Rate, "rate", c.Rate, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random scenes")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "status panel width in pixels (0 hides it)")
	fs.StringVar(&c.Stamp, "stamp", c.Stamp, "template placed with the right mouse button")
	fs.Var(&c.Options, "set", "board option key=value (w, h, scene, density, seed); repeatable")
}

// NewSim builds the configured simulation from the registry, passing the -set
// options to its factory.
func (c *Config) NewSim() (*life.Life, error) {
	factory, ok := core.Sims()[c.Sim]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q", c.Sim)
	}
	sim, err := factory(c.Options.Map())
	if err != nil {
		return nil, err
	}
	l, ok := sim.(*life.Life)
	if !ok {
		return nil, fmt.Errorf("sim %q is not a Life board", c.Sim)
	}
	return l, nil
}

// CellAt converts a cursor position in screen pixels to padded board
// coordinates. ok is false outside a board of size at the given scale.
func CellAt(px, py, scale int, size core.Size) (x, y int, ok bool) {
	if scale <= 0 || px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y = px/scale+1, py/scale+1
	if x > size.W || y > size.H {
		return 0, 0, false
	}
	return x, y, true
}
