package life

import (
	"errors"
	"fmt"

	"changelist-life/internal/patterns"
)

const (
	// SceneGuns places two Gosper glider guns and a lone glider.
	SceneGuns = "guns"
	// SceneRandom fills the board with a seeded soup.
	SceneRandom = "random"
	// SceneEmpty leaves the board dead.
	SceneEmpty = "empty"
)

// ErrUnknownScene is reported for scene names that are neither a built-in
// scene nor a library template.
var ErrUnknownScene = errors.New("unknown scene")

// Placement puts a library template at padded grid coordinates.
type Placement struct {
	Template string
	X, Y     int
}

var scenes = map[string][]Placement{
	SceneGuns: {
		{Template: "glider-gun", X: 10, Y: 20},
		{Template: "glider-gun", X: 70, Y: 20},
		{Template: "glider", X: 200, Y: 20},
	},
}

type stamp struct {
	p    patterns.Pattern
	x, y int
}

// planScene resolves a scene name into template stamps that are known to fit
// the board.
func (l *Life) planScene(name string) ([]stamp, error) {
	switch name {
	case SceneRandom, SceneEmpty:
		return nil, nil
	}

	placements, ok := scenes[name]
	if !ok {
		p, err := patterns.Named(name)
		if err != nil {
			return nil, fmt.Errorf("scene %q: %w", name, ErrUnknownScene)
		}
		x := 1 + (l.layout.W-p.Width)/2
		y := 1 + (l.layout.H-p.Height)/2
		if err := l.checkFit(p, x, y); err != nil {
			return nil, fmt.Errorf("scene %q: %w", name, err)
		}
		return []stamp{{p: p, x: x, y: y}}, nil
	}

	out := make([]stamp, 0, len(placements))
	for _, pl := range placements {
		p, err := patterns.Named(pl.Template)
		if err != nil {
			return nil, fmt.Errorf("scene %q: %w", name, err)
		}
		if err := l.checkFit(p, pl.X, pl.Y); err != nil {
			return nil, fmt.Errorf("scene %q: %w", name, err)
		}
		out = append(out, stamp{p: p, x: pl.X, y: pl.Y})
	}
	return out, nil
}
