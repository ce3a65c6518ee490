package sand

import (
	"testing"

	"mad-sand/internal/core"
)

func TestLiquidWashesAwayLevelGrowth(t *testing.T) {
	for _, liquid := range []Species{Plain(KindWater), Plain(KindLava)} {
		w := newTestWorld(t, 5, 5, &core.Sequence{Floats: []float64{0.99}, Ints: []int{1, 7}})
		place(w, 2, 3, liquid)
		place(w, 3, 3, Plain(KindGrass))
		w.Step()
		if !w.GetCell(3, 3).IsEmpty() {
			t.Fatalf("%v: expected grass beside it to be washed away, got %v", liquid, kindAt(w, 3, 3))
		}
	}
}

func TestLiquidSparesGrowthBelow(t *testing.T) {
	w := newTestWorld(t, 5, 6, &core.Sequence{Floats: []float64{0.99}, Ints: []int{1, 6}})
	place(w, 2, 3, Plain(KindWater))
	place(w, 2, 4, Plain(KindGrass))
	w.Step()
	if kindAt(w, 2, 4) != KindGrass || kindAt(w, 2, 3) != KindWater {
		t.Fatalf("expected water resting on grass, got %v on %v", kindAt(w, 2, 3), kindAt(w, 2, 4))
	}
}

func TestLiquidRidesUnderOverhang(t *testing.T) {
	w := newTestWorld(t, 7, 5, &core.Sequence{Floats: []float64{0.99}, Ints: []int{0}})
	place(w, 3, 2, Plain(KindWall))
	place(w, 3, 3, Plain(KindWater))
	w.Step()
	if kindAt(w, 5, 3) != KindWater || !w.GetCell(3, 3).IsEmpty() {
		t.Fatalf("expected water to slide two cells along the overhang, census %v", w.Census())
	}
}

func TestLiquidSpreadsSideways(t *testing.T) {
	w := newTestWorld(t, 7, 5, &core.Sequence{Floats: []float64{0.99}, Ints: []int{0}})
	place(w, 3, 3, Plain(KindWater))
	w.Step()
	if kindAt(w, 4, 3) != KindWater || !w.GetCell(3, 3).IsEmpty() {
		t.Fatalf("expected water to move one cell right, census %v", w.Census())
	}
}

func TestLiquidsMix(t *testing.T) {
	w := newTestWorld(t, 5, 5, &core.Sequence{Floats: []float64{0.05}, Ints: []int{1}})
	place(w, 1, 3, Plain(KindSaltWater))
	place(w, 2, 3, Plain(KindWater))
	w.Step()
	if kindAt(w, 1, 3) != KindWater || kindAt(w, 2, 3) != KindSaltWater {
		t.Fatalf("expected the liquids to trade places, got %v %v", kindAt(w, 1, 3), kindAt(w, 2, 3))
	}
}

func TestMudWetsSand(t *testing.T) {
	w := newTestWorld(t, 5, 5, &core.Sequence{Floats: []float64{0.1}, Ints: []int{0}})
	place(w, 2, 3, Mud(1))
	place(w, 3, 3, Plain(KindSand))
	w.Step()
	if w.GetCell(2, 3).Species != Mud(0) || w.GetCell(3, 3).Species != Mud(0) {
		t.Fatalf("expected two dry mud cells, got %+v %+v", w.GetCell(2, 3).Species, w.GetCell(3, 3).Species)
	}
}

func TestMudAbsorbsWater(t *testing.T) {
	w := newTestWorld(t, 5, 5, &core.Sequence{Floats: []float64{0.1}, Ints: []int{0}})
	place(w, 2, 3, Mud(0))
	place(w, 3, 3, Plain(KindWater))
	w.Step()
	if w.GetCell(2, 3).Species != Mud(1) || !w.GetCell(3, 3).IsEmpty() {
		t.Fatalf("expected mud(1) and no water, got %+v and %v", w.GetCell(2, 3).Species, kindAt(w, 3, 3))
	}
}

func TestMudEqualizesWetness(t *testing.T) {
	w := newTestWorld(t, 5, 5, &core.Sequence{Floats: []float64{0.1}, Ints: []int{0}})
	place(w, 2, 3, Mud(2))
	place(w, 3, 3, Mud(0))
	w.Step()
	if w.GetCell(2, 3).Species != Mud(1) || w.GetCell(3, 3).Species != Mud(1) {
		t.Fatalf("expected mud(1) twice, got %+v %+v", w.GetCell(2, 3).Species, w.GetCell(3, 3).Species)
	}
}

func TestMudEmitsWater(t *testing.T) {
	for _, tc := range []struct {
		start Species
		want  Species
	}{
		{Mud(1), Mud(0)},
		{Mud(MaxWetness), Plain(KindSoil)},
	} {
		w := newTestWorld(t, 5, 5, &core.Sequence{Floats: []float64{0.05}, Ints: []int{0}})
		place(w, 2, 3, tc.start)
		w.Step()
		if got := w.GetCell(2, 3).Species; got != tc.want {
			t.Fatalf("mud wetness %d: expected %+v, got %+v", tc.start.Wetness, tc.want, got)
		}
		if kindAt(w, 1, 3) != KindWater {
			t.Fatalf("mud wetness %d: expected emitted water at (1,3), got %v", tc.start.Wetness, kindAt(w, 1, 3))
		}
	}
}

func TestMudDriesToSoilAwayFromWater(t *testing.T) {
	w := newTestWorld(t, 5, 5, &core.Sequence{Floats: []float64{0.01}, Ints: []int{0}})
	place(w, 2, 3, Mud(1))
	w.Step()
	if kindAt(w, 2, 3) != KindSoil {
		t.Fatalf("expected soil, got %v", kindAt(w, 2, 3))
	}
}

// waterGrassPool surrounds a water grass cell at (2,2) with water on the
// sides and above, on a wall floor.
func waterGrassPool(t *testing.T, height uint8) *World {
	w := newTestWorld(t, 5, 5, &core.Sequence{Floats: []float64{0.99}, Ints: []int{2}})
	for x := 1; x <= 3; x++ {
		place(w, x, 3, Plain(KindWall))
		place(w, x, 1, Plain(KindWater))
	}
	place(w, 1, 2, Plain(KindWater))
	place(w, 3, 2, Plain(KindWater))
	place(w, 2, 2, WaterGrass(height))
	return w
}

func TestWaterGrassGrowsUnderWater(t *testing.T) {
	w := waterGrassPool(t, 0)
	w.Step()
	for _, p := range []core.Point{{X: 2, Y: 2}, {X: 1, Y: 1}, {X: 3, Y: 1}} {
		if got := w.GetCell(p.X, p.Y).Species; got != WaterGrass(1) {
			t.Fatalf("expected water grass of height 1 at %v, got %+v", p, got)
		}
	}
	if kindAt(w, 2, 1) != KindWater {
		t.Fatalf("expected water to remain at (2,1), got %v", kindAt(w, 2, 1))
	}
}

func TestWaterGrassStopsAtMaxHeight(t *testing.T) {
	w := waterGrassPool(t, MaxWaterGrassHeight)
	w.Step()
	if got := w.GetCell(2, 2).Species; got != WaterGrass(MaxWaterGrassHeight) {
		t.Fatalf("expected height to stay capped, got %+v", got)
	}
	if kindAt(w, 1, 1) != KindWater || kindAt(w, 3, 1) != KindWater {
		t.Fatal("capped water grass should not spawn copies")
	}
}

func TestWaterGrassNextToEmptyTurnsToWater(t *testing.T) {
	w := newTestWorld(t, 5, 5, always())
	place(w, 1, 3, Plain(KindWater))
	place(w, 2, 3, WaterGrass(0))
	w.Step()
	if kindAt(w, 2, 3) != KindWater {
		t.Fatalf("expected water, got %v", kindAt(w, 2, 3))
	}
}

func TestRootedGrassTipBlooms(t *testing.T) {
	w := newTestWorld(t, 5, 6, &core.Sequence{Floats: []float64{0.0005}, Ints: []int{2}})
	place(w, 2, 4, Plain(KindSoil))
	place(w, 2, 3, Plain(KindGrassTip))
	w.Step()
	if got := w.GetCell(2, 3).Species; got != Flower(FlowerYellow) {
		t.Fatalf("expected a yellow flower, got %+v", got)
	}
}

func TestUnsupportedGrassTipWithers(t *testing.T) {
	for _, tc := range []struct {
		floats []float64
		want   Kind
	}{
		{[]float64{0.05}, KindGrass},
		{[]float64{0.05, 0.6}, KindEmpty},
	} {
		w := newTestWorld(t, 5, 5, &core.Sequence{Floats: tc.floats})
		place(w, 2, 2, Plain(KindGrassTip))
		w.Step()
		if got := kindAt(w, 2, 2); got != tc.want {
			t.Fatalf("floats %v: expected %v, got %v", tc.floats, tc.want, got)
		}
	}
}

func TestFireSmotheredBySolid(t *testing.T) {
	w := newTestWorld(t, 5, 5, &core.Sequence{Floats: []float64{0.01}, Ints: []int{1}})
	place(w, 1, 2, Plain(KindWall))
	place(w, 2, 2, Plain(KindFire))
	w.Step()
	if !w.GetCell(2, 2).IsEmpty() || kindAt(w, 1, 2) != KindWall {
		t.Fatalf("expected the flame to go out beside the wall, census %v", w.Census())
	}
}

func TestFireDriftsUpward(t *testing.T) {
	w := newTestWorld(t, 5, 5, &core.Sequence{Floats: []float64{0.99}, Ints: []int{0}})
	place(w, 2, 3, Plain(KindFire))
	w.Step()
	c := w.GetCell(1, 2)
	if c.Kind() != KindFire || !w.GetCell(2, 3).IsEmpty() {
		t.Fatalf("expected fire to drift up and left, census %v", w.Census())
	}
	if want := FireHeat - FireMoveLoss + AmbientWarming; c.Heat != want {
		t.Fatalf("expected heat %d after moving, got %d", want, c.Heat)
	}
}

func TestBlockedFireDriftsSideways(t *testing.T) {
	w := newTestWorld(t, 5, 5, &core.Sequence{Floats: []float64{0.99}, Ints: []int{0}})
	for x := 1; x <= 3; x++ {
		place(w, x, 2, Plain(KindWall))
	}
	place(w, 2, 3, Plain(KindFire))
	w.Step()
	if kindAt(w, 1, 3) != KindFire || !w.GetCell(2, 3).IsEmpty() {
		t.Fatalf("expected fire to move left under the wall, census %v", w.Census())
	}
}
