package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"changelist-life/internal/core"
	"changelist-life/internal/sims/life"

	"golang.org/x/sync/errgroup"
)

func main() {
	steps := flag.Int("steps", 1000, "generations to simulate per run")
	runs := flag.Int("runs", 1, "independent boards to simulate")
	workers := flag.Int("workers", runtime.NumCPU(), "boards simulated concurrently")
	seed := flag.Int64("seed", 1, "seed of the first run; run i uses seed+i")
	pattern := flag.String("pattern", "", "library template name or file stamped onto each board")
	at := flag.String("at", "", "padded x,y origin for -pattern (default centered)")
	verify := flag.Bool("verify", false, "check every generation against the full-scan and FFT steppers")
	chartPath := flag.String("chart", "", "write a population/active-set chart PNG")
	sample := flag.Int("sample", 1, "chart one generation in every n")
	recordPath := flag.String("record", "", "write an MJPEG AVI of the run")
	scale := flag.Int("scale", 2, "pixels per cell when recording")
	fps := flag.Int("fps", 30, "frames per second when recording")
	var opts core.Options
	flag.Var(&opts, "set", "board option key=value (w, h, scene, density, seed); repeatable")
	flag.Parse()

	rc := runConfig{
		board:      life.FromMap(opts.Map()),
		pattern:    *pattern,
		steps:      *steps,
		verify:     *verify,
		chartPath:  *chartPath,
		sample:     *sample,
		recordPath: *recordPath,
		scale:      *scale,
		fps:        *fps,
		runs:       *runs,
	}
	if *at != "" {
		x, y, err := parseOrigin(*at)
		if err != nil {
			log.Fatalf("-at: %v", err)
		}
		rc.at = &[2]int{x, y}
	}

	fmt.Printf("Simulating %d run(s) of %d generations on %dx%d (%s, %d workers)\n",
		*runs, *steps, rc.board.Width, rc.board.Height, rc.board.Scene, *workers)

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(*workers)
	results := make([]runResult, *runs)
	start := time.Now()
	for i := 0; i < *runs; i++ {
		g.Go(func() error {
			res, err := runBoard(ctx, i, *seed+int64(i), rc)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	sort.Slice(results, func(a, b int) bool { return results[a].rate > results[b].rate })
	for _, res := range results {
		fmt.Println(res)
	}
	fmt.Printf("\nTotal elapsed %s\n", time.Since(start).Round(time.Millisecond))
}

func parseOrigin(s string) (int, int, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("%q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return 0, 0, fmt.Errorf("%q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return 0, 0, fmt.Errorf("%q: %w", s, err)
	}
	return x, y, nil
}
