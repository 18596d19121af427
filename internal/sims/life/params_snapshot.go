package life

import "changelist-life/internal/core"

// Parameters reports the board layout and run statistics.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "Board",
				Params: []core.Parameter{
					core.IntParam("w", "Width", l.layout.W),
					core.IntParam("h", "Height", l.layout.H),
					core.IntParam("stride", "Stride", l.layout.Stride),
					core.StringParam("scene", "Scene", l.cfg.Scene),
					core.Int64Param("seed", "Seed", l.cfg.Seed),
					core.FloatParam("density", "Density", l.cfg.Density),
				},
			},
			{
				Name: "Run",
				Params: []core.Parameter{
					core.IntParam("generation", "Generation", l.generation),
					core.IntParam("population", "Population", l.Population()),
					core.IntParam("active", "Active cells", l.ActiveCount()),
				},
			},
		},
	}
}
