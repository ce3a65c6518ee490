package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"sort"

	"mad-sand/internal/render"
	"mad-sand/internal/sims/sand"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type sample struct {
	tick   int
	counts map[sand.Kind]int
}

// record steps w and takes a census before the first tick and every `every`
// ticks after it.
func record(w *sand.World, steps, every int) []sample {
	if every <= 0 {
		every = 1
	}
	samples := []sample{{tick: 0, counts: w.Census()}}
	for tick := 1; tick <= steps; tick++ {
		w.Step()
		if tick%every == 0 || tick == steps {
			samples = append(samples, sample{tick: tick, counts: w.Census()})
		}
	}
	return samples
}

// trackedKinds lists the kinds that appear in any sample, Empty and Border
// excepted, in kind order.
func trackedKinds(samples []sample) []sand.Kind {
	seen := map[sand.Kind]bool{}
	for _, s := range samples {
		for k, n := range s.counts {
			if n > 0 && k != sand.KindEmpty && k != sand.KindBorder {
				seen[k] = true
			}
		}
	}
	kinds := make([]sand.Kind, 0, len(seen))
	for k := range seen {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

func buildSeries(samples []sample) []chart.Series {
	xs := make([]float64, len(samples))
	for i, s := range samples {
		xs[i] = float64(s.tick)
	}
	var series []chart.Series
	for _, k := range trackedKinds(samples) {
		ys := make([]float64, len(samples))
		for i, s := range samples {
			ys[i] = float64(s.counts[k])
		}
		col := sand.CellColor(sand.NewCell(sand.Plain(k), 0))
		series = append(series, chart.ContinuousSeries{
			Name:    k.String(),
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: drawing.Color{R: col.R, G: col.G, B: col.B, A: 255},
				StrokeWidth: 2.0,
			},
		})
	}
	return series
}

func renderChart(out io.Writer, samples []sample) error {
	series := buildSeries(samples)
	if len(series) == 0 {
		return fmt.Errorf("no populated species to chart")
	}
	graph := chart.Chart{
		Width:  960,
		Height: 480,
		XAxis: chart.XAxis{
			Name:  "tick",
			Style: chart.Style{FontSize: 10.0},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:  "cells",
			Style: chart.Style{FontSize: 10.0},
		},
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20}},
		Series:     series,
	}
	graph.Elements = []chart.Renderable{chart.LegendLeft(&graph)}
	return graph.Render(chart.PNG, out)
}

// writeFrame saves the world's current shaded frame as a PNG.
func writeFrame(path string, w *sand.World) error {
	size := w.Size()
	img := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	render.Fill(img.Pix, w)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
