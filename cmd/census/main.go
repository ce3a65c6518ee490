// Command census runs a headless sand scene and charts species populations
// over time as a PNG.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"mad-sand/internal/sims/sand"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	steps := flag.Int("steps", 600, "number of ticks to simulate")
	every := flag.Int("every", 10, "ticks between census samples")
	width := flag.Int("width", 160, "grid width")
	height := flag.Int("height", 120, "grid height")
	seed := flag.Int64("seed", 1337, "seed used for the deterministic run")
	params := flag.String("params", "", "YAML file of rule probabilities")
	out := flag.String("out", "census.png", "chart output path")
	frame := flag.String("frame", "", "optional PNG path for the final frame")
	var overrides kvList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	cfg := sand.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	cfg.Seed = *seed
	if *params != "" {
		if err := sand.LoadParams(*params, &cfg.Params); err != nil {
			log.Fatalf("census: %v", err)
		}
	}
	for _, kv := range overrides {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil || !cfg.Params.Set(key, v) {
			log.Printf("census: ignoring override %q", kv)
		}
	}

	world, err := sand.New(cfg)
	if err != nil {
		log.Fatalf("census: %v", err)
	}
	paintScene(world)

	samples := record(world, *steps, *every)
	last := samples[len(samples)-1]
	fmt.Printf("Simulated %d ticks, %d samples\n", last.tick, len(samples))
	for _, k := range trackedKinds(samples) {
		fmt.Printf("  %-10s %d\n", k, last.counts[k])
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("census: %v", err)
	}
	if err := renderChart(f, samples); err != nil {
		f.Close()
		log.Fatalf("census: render chart: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("census: %v", err)
	}
	log.Printf("wrote %s", *out)

	if *frame != "" {
		if err := writeFrame(*frame, world); err != nil {
			log.Fatalf("census: %v", err)
		}
		log.Printf("wrote %s", *frame)
	}
}
