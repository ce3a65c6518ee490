package main

import (
	"math"
	"testing"
)

func TestExpectedFallTicks(t *testing.T) {
	sc := scenario{height: 11}
	if got := sc.expected(); got != 4 {
		t.Fatalf("expected 4 ticks for an 8 row drop, got %v", got)
	}
	sc.skip = 0.5
	if got := sc.expected(); got != 8 {
		t.Fatalf("expected 8 ticks with half the ticks skipped, got %v", got)
	}
	sc.skip = 1
	if got := sc.expected(); !math.IsInf(got, 1) {
		t.Fatalf("expected infinity when every tick is skipped, got %v", got)
	}
}

func TestRunWithoutSkipsMatchesExpectation(t *testing.T) {
	sc := scenario{height: 12, skip: 0, trials: 5, seed: 1}
	res, err := run(sc)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.stuck != 0 {
		t.Fatalf("expected every grain to land, %d stuck", res.stuck)
	}
	if res.mean != sc.expected() || res.min != res.max {
		t.Fatalf("expected every drop to take %.0f ticks, got mean %.2f min %d max %d", sc.expected(), res.mean, res.min, res.max)
	}
}

func TestRunWithSkipsMatchesExpectedMean(t *testing.T) {
	sc := scenario{height: 23, skip: 0.5, trials: 2000, seed: 1337}
	res, err := run(sc)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.stuck != 0 {
		t.Fatalf("expected every grain to land, %d stuck", res.stuck)
	}
	if diff := math.Abs(res.mean - sc.expected()); diff > 0.5 {
		t.Fatalf("expected mean near %.2f, got %.3f", sc.expected(), res.mean)
	}
	if res.min < int(math.Ceil(float64(sc.distance())/2)) {
		t.Fatalf("no grain can land faster than two rows per tick, got %d", res.min)
	}
}
