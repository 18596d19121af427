// Package report collects per-generation statistics of a run and renders
// them as a chart.
package report

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrTooFewSamples is returned when a chart is requested for fewer than two
// recorded generations.
var ErrTooFewSamples = errors.New("need at least two samples to chart")

// Sample is the state of a board after one generation.
type Sample struct {
	Generation int
	Population int
	Active     int
}

// History keeps every n-th sample of a run.
type History struct {
	every   int
	samples []Sample
}

// NewHistory returns a History keeping one sample in every n generations.
func NewHistory(every int) *History {
	if every <= 0 {
		every = 1
	}
	return &History{every: every}
}

// Record stores the sample if its generation falls on the sampling interval.
func (h *History) Record(s Sample) {
	if s.Generation%h.every != 0 {
		return
	}
	h.samples = append(h.samples, s)
}

// Samples returns the recorded samples in order.
func (h *History) Samples() []Sample { return h.samples }

// Peak returns the sample with the largest active set.
func (h *History) Peak() (Sample, bool) {
	if len(h.samples) == 0 {
		return Sample{}, false
	}
	peak := h.samples[0]
	for _, s := range h.samples[1:] {
		if s.Active > peak.Active {
			peak = s
		}
	}
	return peak, true
}

// WriteChart renders population and active-set size against generation as PNG.
func (h *History) WriteChart(w io.Writer, title string) error {
	if len(h.samples) < 2 {
		return ErrTooFewSamples
	}
	xs := make([]float64, len(h.samples))
	pop := make([]float64, len(h.samples))
	active := make([]float64, len(h.samples))
	for i, s := range h.samples {
		xs[i] = float64(s.Generation)
		pop[i] = float64(s.Population)
		active[i] = float64(s.Active)
	}

	graph := chart.Chart{
		Title:  title,
		Width:  960,
		Height: 360,
		XAxis: chart.XAxis{
			Name:  "generation",
			Style: chart.Style{FontSize: 10.0},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:  "cells",
			Style: chart.Style{FontSize: 10.0},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "population",
				XValues: xs,
				YValues: pop,
				Style:   chart.Style{StrokeColor: drawing.Color{R: 118, G: 26, B: 188, A: 255}, StrokeWidth: 2.0},
			},
			chart.ContinuousSeries{
				Name:    "active set",
				XValues: xs,
				YValues: active,
				Style:   chart.Style{StrokeColor: chart.ColorGreen, StrokeWidth: 2.0},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph.Render(chart.PNG, w)
}

// SaveChart writes the chart to path.
func (h *History) SaveChart(path, title string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := h.WriteChart(f, title); err != nil {
		f.Close()
		return fmt.Errorf("chart %s: %w", path, err)
	}
	return f.Close()
}
