package main

import (
	"fmt"
	"math"

	"mad-sand/internal/sims/sand"
)

type scenario struct {
	height int
	skip   float64
	trials int
	seed   int64
}

func (s scenario) String() string {
	return fmt.Sprintf("height=%d skip=%.2f", s.height, s.skip)
}

// distance is the number of rows between the drop point and the floor.
func (s scenario) distance() int { return s.height - 3 }

// expected is the mean landing time of a grain that falls two rows per
// unskipped tick: the last odd row costs a full tick.
func (s scenario) expected() float64 {
	if s.skip >= 1 {
		return math.Inf(1)
	}
	return math.Ceil(float64(s.distance())/2) / (1 - s.skip)
}

type result struct {
	scenario scenario
	mean     float64
	min      int
	max      int
	stuck    int
}

// run drops one grain per trial into a bordered column and records the tick
// at which it first rests on the floor.
func run(sc scenario) (result, error) {
	res := result{scenario: sc, min: math.MaxInt}
	limit := int(sc.expected()*20) + 100
	total := 0
	landed := 0
	for trial := 0; trial < sc.trials; trial++ {
		cfg := sand.DefaultConfig()
		cfg.Width = 5
		cfg.Height = sc.height
		cfg.Seed = sc.seed + int64(trial)
		cfg.Params.PowderSkipChance = sc.skip
		w, err := sand.New(cfg)
		if err != nil {
			return result{}, err
		}
		floor := sc.height - 2
		w.SetCell(2, 1, sand.NewCell(sand.Plain(sand.KindSand), 0))

		ticks, ok := dropTicks(w, floor, limit)
		if !ok {
			res.stuck++
			continue
		}
		total += ticks
		landed++
		res.min = min(res.min, ticks)
		res.max = max(res.max, ticks)
	}
	if landed > 0 {
		res.mean = float64(total) / float64(landed)
	} else {
		res.min = 0
	}
	return res, nil
}

// dropTicks steps w until a sand cell sits on row floor.
func dropTicks(w *sand.World, floor, limit int) (int, bool) {
	width := w.Size().W
	for tick := 1; tick <= limit; tick++ {
		w.Step()
		for x := 0; x < width; x++ {
			if w.GetCell(x, floor).Kind() == sand.KindSand {
				return tick, true
			}
		}
	}
	return 0, false
}
