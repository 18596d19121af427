package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"changelist-life/internal/sims/life"
)

func smallBoard(scene string) life.Config {
	cfg := life.DefaultConfig()
	cfg.Width, cfg.Height = 48, 32
	cfg.Scene = scene
	cfg.Density = 0.3
	return cfg
}

func TestRunBoardVerifies(t *testing.T) {
	rc := runConfig{board: smallBoard(life.SceneRandom), steps: 120, verify: true, sample: 1, runs: 1}
	res, err := runBoard(context.Background(), 0, 5, rc)
	if err != nil {
		t.Fatalf("runBoard: %v", err)
	}
	if res.steps != 120 || res.peakActive < res.active {
		t.Fatalf("result = %+v", res)
	}
}

func TestRunBoardPatternAndChart(t *testing.T) {
	dir := t.TempDir()
	rc := runConfig{
		board:     smallBoard(life.SceneEmpty),
		pattern:   "glider",
		at:        &[2]int{2, 2},
		steps:     40,
		verify:    true,
		chartPath: filepath.Join(dir, "glider.png"),
		sample:    2,
		runs:      1,
	}
	res, err := runBoard(context.Background(), 0, 1, rc)
	if err != nil {
		t.Fatalf("runBoard: %v", err)
	}
	if res.population != 5 {
		t.Fatalf("glider population = %d, want 5", res.population)
	}
	if _, err := os.Stat(rc.chartPath); err != nil {
		t.Fatalf("chart not written: %v", err)
	}
}

func TestRunBoardRejectsPatternOutsideBoard(t *testing.T) {
	rc := runConfig{board: smallBoard(life.SceneEmpty), pattern: "glider-gun", at: &[2]int{40, 1}, steps: 1, runs: 1}
	if _, err := runBoard(context.Background(), 0, 1, rc); err == nil {
		t.Fatal("expected an out-of-bounds error")
	}
}

func TestRunBoardHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rc := runConfig{board: smallBoard(life.SceneRandom), steps: 500, runs: 1}
	if _, err := runBoard(ctx, 0, 1, rc); err != context.Canceled {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}

func TestPerRun(t *testing.T) {
	if got := perRun("out.png", 3, 1); got != "out.png" {
		t.Fatalf("single run path = %q", got)
	}
	if got := perRun("dir/out.png", 3, 4); got != "dir/out-3.png" {
		t.Fatalf("multi run path = %q", got)
	}
	if got := perRun("", 3, 4); got != "" {
		t.Fatalf("empty path = %q", got)
	}
}

func TestParseOrigin(t *testing.T) {
	x, y, err := parseOrigin("10, 20")
	if err != nil || x != 10 || y != 20 {
		t.Fatalf("parseOrigin = %d, %d, %v", x, y, err)
	}
	for _, bad := range []string{"10", "a,1", "1,b"} {
		if _, _, err := parseOrigin(bad); err == nil {
			t.Fatalf("parseOrigin(%q) should fail", bad)
		}
	}
}
