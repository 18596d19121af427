//go:build ebiten

package app

import (
	"log"
	"slices"
	"strconv"
	"time"

	"changelist-life/internal/core"
	"changelist-life/internal/patterns"
	"changelist-life/internal/render"
	"changelist-life/internal/sims/life"
	"changelist-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Life board to the ebiten.Game interface.
type Game struct {
	sim     *life.Life
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	palette render.Palette

	pacer *core.FixedStep
	rate  *core.RateCounter

	stamps   []string
	stampIdx int

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided board.
func New(sim *life.Life, cfg *Config) *Game {
	size := sim.Size()
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(sim, cfg.Scale),
		hud:     ui.NewHUD(sim, cfg.HUDWidth),
		palette: render.DefaultPalette(),
		pacer:   core.NewFixedStep(cfg.Rate),
		rate:    core.NewRateCounter(),
		stamps:  patterns.Names(),
		scale:   cfg.Scale,
		seed:    cfg.Seed,
	}
	if i := slices.Index(g.stamps, cfg.Stamp); i >= 0 {
		g.stampIdx = i
	}
	return g
}

// Reset reinitializes the board with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.pacer.Reset()
}

// Update handles per-frame input and advances the board.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.pacer.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sim.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) && len(g.stamps) > 0 {
		g.stampIdx = (g.stampIdx + 1) % len(g.stamps)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) && g.pacer.Rate() < core.MaxRate {
		g.pacer.SetRate(g.pacer.Rate() * 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) && g.pacer.Rate() > 1 {
		g.pacer.SetRate(g.pacer.Rate() / 2)
	}
	g.handleMouse()
	g.overlay.Update()

	steps := 0
	if !g.paused {
		steps = g.pacer.Due()
	} else if g.tickOnce {
		steps = 1
	}
	for i := 0; i < steps; i++ {
		g.sim.Step()
	}
	g.tickOnce = false
	g.rate.Add(steps)

	g.hud.Update([]core.Parameter{
		core.StringParam("rate", "Gen/s", strconv.FormatFloat(g.rate.Rate(), 'f', 0, 64)),
		core.IntParam("target", "Target gen/s", g.pacer.Rate()),
		core.StringParam("paused", "Paused", strconv.FormatBool(g.paused)),
		core.StringParam("stamp", "Stamp", g.stampName()),
	})
	return nil
}

func (g *Game) handleMouse() {
	left := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	right := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	if !left && !right {
		return
	}
	mx, my := ebiten.CursorPosition()
	x, y, ok := CellAt(mx, my, g.scale, g.sim.Size())
	if !ok {
		return
	}
	if left {
		if err := g.sim.ToggleCell(x, y); err != nil {
			log.Printf("toggle: %v", err)
		}
		return
	}
	p, err := patterns.Named(g.stampName())
	if err != nil {
		log.Printf("stamp: %v", err)
		return
	}
	if err := g.sim.LoadPattern(p, x, y); err != nil {
		log.Printf("stamp: %v", err)
	}
}

func (g *Game) stampName() string {
	if len(g.stamps) == 0 {
		return ""
	}
	return g.stamps[g.stampIdx]
}

// Draw renders the board, the active-set overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim, g.palette, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
