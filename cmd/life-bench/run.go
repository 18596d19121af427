package main

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"changelist-life/internal/oracle"
	"changelist-life/internal/patterns"
	"changelist-life/internal/render"
	"changelist-life/internal/report"
	"changelist-life/internal/sims/life"
)

// cancelEvery is how many generations run between context checks.
const cancelEvery = 64

type runConfig struct {
	board   life.Config
	pattern string
	at      *[2]int
	steps   int
	runs    int

	verify bool

	chartPath  string
	sample     int
	recordPath string
	scale      int
	fps        int
}

type runResult struct {
	run        int
	seed       int64
	steps      int
	elapsed    time.Duration
	rate       float64
	population int
	active     int
	peakActive int
}

func (r runResult) String() string {
	return fmt.Sprintf("run %2d seed=%d gens=%d elapsed=%s gen/s=%.0f population=%d active=%d peakActive=%d",
		r.run, r.seed, r.steps, r.elapsed.Round(time.Millisecond), r.rate, r.population, r.active, r.peakActive)
}

// perRun derives an output path for one of several runs: out.png becomes
// out-3.png for run 3. A single run keeps the path as given.
func perRun(path string, run, runs int) string {
	if path == "" || runs <= 1 {
		return path
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(path, ext), run, ext)
}

func runBoard(ctx context.Context, run int, seed int64, rc runConfig) (runResult, error) {
	cfg := rc.board
	cfg.Seed = seed
	l, err := life.NewWithConfig(cfg)
	if err != nil {
		return runResult{}, fmt.Errorf("run %d: %w", run, err)
	}
	l.Reset(seed)

	if rc.pattern != "" {
		p, err := patterns.Resolve(rc.pattern)
		if err != nil {
			return runResult{}, fmt.Errorf("run %d: %w", run, err)
		}
		x, y := 1+(cfg.Width-p.Width)/2, 1+(cfg.Height-p.Height)/2
		if rc.at != nil {
			x, y = rc.at[0], rc.at[1]
		}
		if err := l.LoadPattern(p, x, y); err != nil {
			return runResult{}, fmt.Errorf("run %d: %w", run, err)
		}
	}

	var checker *verifier
	if rc.verify {
		checker = newVerifier(l)
	}

	history := report.NewHistory(rc.sample)
	history.Record(report.Sample{Generation: 0, Population: l.Population(), Active: l.ActiveCount()})

	var rec *render.Recorder
	if rc.recordPath != "" {
		rec, err = render.NewRecorder(perRun(rc.recordPath, run, rc.runs), cfg.Width, cfg.Height, rc.scale, rc.fps, render.DefaultPalette())
		if err != nil {
			return runResult{}, fmt.Errorf("run %d: %w", run, err)
		}
		defer rec.Close()
		if err := rec.AddFrame(l); err != nil {
			return runResult{}, fmt.Errorf("run %d: %w", run, err)
		}
	}

	var simTime time.Duration
	for gen := 1; gen <= rc.steps; gen++ {
		if gen%cancelEvery == 0 {
			if err := ctx.Err(); err != nil {
				return runResult{}, err
			}
		}
		start := time.Now()
		l.Step()
		simTime += time.Since(start)

		if checker != nil {
			if err := checker.check(l); err != nil {
				return runResult{}, fmt.Errorf("run %d: generation %d: %w", run, gen, err)
			}
		}
		history.Record(report.Sample{Generation: gen, Population: l.Population(), Active: l.ActiveCount()})
		if rec != nil {
			if err := rec.AddFrame(l); err != nil {
				return runResult{}, fmt.Errorf("run %d: %w", run, err)
			}
		}
	}

	if rc.chartPath != "" {
		title := fmt.Sprintf("%s %dx%d seed %d", cfg.Scene, cfg.Width, cfg.Height, seed)
		if err := history.SaveChart(perRun(rc.chartPath, run, rc.runs), title); err != nil {
			return runResult{}, fmt.Errorf("run %d: %w", run, err)
		}
	}
	if rec != nil {
		if err := rec.Close(); err != nil {
			return runResult{}, fmt.Errorf("run %d: %w", run, err)
		}
	}

	res := runResult{
		run:        run,
		seed:       seed,
		steps:      rc.steps,
		elapsed:    simTime,
		population: l.Population(),
		active:     l.ActiveCount(),
	}
	if peak, ok := history.Peak(); ok {
		res.peakActive = peak.Active
	}
	if simTime > 0 {
		res.rate = float64(rc.steps) / simTime.Seconds()
	}
	return res, nil
}

// verifier advances two reference steppers alongside a board and reports the
// first generation where any of them disagree.
type verifier struct {
	w, h     int
	direct   []uint8
	fftCells []uint8
	next     []uint8
	fft      *oracle.FFT
}

func newVerifier(l *life.Life) *verifier {
	size := l.Size()
	cells := l.Cells()
	return &verifier{
		w:        size.W,
		h:        size.H,
		direct:   slices.Clone(cells),
		fftCells: slices.Clone(cells),
		next:     make([]uint8, len(cells)),
		fft:      oracle.NewFFT(size.W, size.H),
	}
}

func (v *verifier) check(l *life.Life) error {
	oracle.Direct(v.next, v.direct, v.w, v.h)
	v.direct, v.next = v.next, v.direct

	v.fft.Step(v.next, v.fftCells)
	v.fftCells, v.next = v.next, v.fftCells

	cells := l.Cells()
	if !slices.Equal(cells, v.direct) {
		return fmt.Errorf("diverged from full-scan stepper")
	}
	if !slices.Equal(cells, v.fftCells) {
		return fmt.Errorf("diverged from FFT stepper")
	}
	return nil
}
