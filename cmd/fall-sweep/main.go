// Command fall-sweep measures how many ticks a single sand grain needs to
// reach the floor across drop heights and powder skip chances.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"
)

func main() {
	trials := flag.Int("trials", 200, "drops simulated per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", 1337, "base seed; each trial offsets it")
	flag.Parse()

	heights := []int{8, 16, 32, 64}
	skips := []float64{0, 0.05, 0.10, 0.20, 0.40}

	var scenarios []scenario
	for _, h := range heights {
		for _, p := range skips {
			scenarios = append(scenarios, scenario{height: h, skip: p, trials: *trials, seed: *seed})
		}
	}

	fmt.Printf("Sweeping %d scenarios (%d workers, %d trials each)\n", len(scenarios), *workers, *trials)

	jobs := make(chan scenario)
	results := make(chan result)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				res, err := run(sc)
				if err != nil {
					log.Printf("scenario %s: %v", sc, err)
					continue
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range scenarios {
			jobs <- sc
		}
		close(jobs)
	}()

	start := time.Now()
	var all []result
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].scenario.height != all[j].scenario.height {
			return all[i].scenario.height < all[j].scenario.height
		}
		return all[i].scenario.skip < all[j].scenario.skip
	})

	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for _, res := range all {
		fmt.Printf("%s  mean=%.2f expected=%.2f min=%d max=%d stuck=%d\n",
			res.scenario, res.mean, res.scenario.expected(), res.min, res.max, res.stuck)
	}
}
