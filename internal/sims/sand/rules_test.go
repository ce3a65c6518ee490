package sand

import (
	"testing"

	"mad-sand/internal/core"
)

func never() *core.Sequence  { return &core.Sequence{Floats: []float64{0.99}, Ints: []int{1}} }
func always() *core.Sequence { return &core.Sequence{Floats: []float64{0.001}, Ints: []int{1}} }

func TestHotWaterBoilsToSteam(t *testing.T) {
	w := newTestWorld(t, 5, 5, never())
	placeHot(w, 2, 2, Plain(KindWater), 150)
	w.Step()
	if kindAt(w, 2, 2) != KindSteam {
		t.Fatalf("expected steam, got %v", kindAt(w, 2, 2))
	}
}

func TestColdWaterFreezes(t *testing.T) {
	w := newTestWorld(t, 5, 5, never())
	placeHot(w, 2, 3, Plain(KindWater), -10)
	w.Step()
	if kindAt(w, 2, 3) != KindIce {
		t.Fatalf("expected ice, got %v", kindAt(w, 2, 3))
	}
}

func TestWarmIceMelts(t *testing.T) {
	w := newTestWorld(t, 5, 5, never())
	placeHot(w, 2, 3, Plain(KindIce), 5)
	w.Step()
	if kindAt(w, 2, 3) != KindWater {
		t.Fatalf("expected water, got %v", kindAt(w, 2, 3))
	}
}

func TestColdSteamCondenses(t *testing.T) {
	w := newTestWorld(t, 5, 5, never())
	placeHot(w, 2, 2, Plain(KindSteam), 20)
	w.Step()
	if kindAt(w, 2, 2) != KindWater {
		t.Fatalf("expected water, got %v", kindAt(w, 2, 2))
	}
}

func TestIsolatedWaterBoilsAtThreshold(t *testing.T) {
	for _, tc := range []struct {
		heat int32
		want Kind
	}{
		{BoilPoint - 1, KindWater},
		{BoilPoint, KindSteam},
		{BoilPoint + 2, KindSteam},
	} {
		w := newTestWorld(t, 5, 5, never())
		placeHot(w, 2, 3, Plain(KindWater), tc.heat)
		w.Step()
		if got := kindAt(w, 2, 3); got != tc.want {
			t.Fatalf("heat %d: expected %v, got %v", tc.heat, tc.want, got)
		}
	}
}

func TestIsolatedSteamCondensesBelowThreshold(t *testing.T) {
	for _, tc := range []struct {
		heat int32
		want Kind
	}{
		{CondensePoint - 1, KindWater},
		{CondensePoint, KindSteam},
	} {
		w := newTestWorld(t, 5, 5, never())
		placeHot(w, 2, 2, Plain(KindSteam), tc.heat)
		w.Step()
		if got := kindAt(w, 2, 2); got != tc.want {
			t.Fatalf("heat %d: expected %v, got %v", tc.heat, tc.want, got)
		}
	}
}

func TestSteamHoldsWhenItMissesAnOpenRise(t *testing.T) {
	w := newTestWorld(t, 5, 5, &core.Sequence{Floats: []float64{0.9}, Ints: []int{2}})
	place(w, 2, 2, Plain(KindSteam))
	w.Step()
	if kindAt(w, 2, 2) != KindSteam {
		t.Fatalf("steam with an open cell above should not diffuse, census %v", w.Census())
	}
}

func TestBlockedSteamDiffuses(t *testing.T) {
	w := newTestWorld(t, 5, 5, &core.Sequence{Floats: []float64{0.9}, Ints: []int{2}})
	for x := 1; x <= 3; x++ {
		place(w, x, 1, Plain(KindWall))
	}
	place(w, 2, 2, Plain(KindSteam))
	w.Step()
	if kindAt(w, 3, 3) != KindSteam || !w.GetCell(2, 2).IsEmpty() {
		t.Fatalf("expected steam to diffuse to (3,3), census %v", w.Census())
	}
}

func TestSteamRisesOneRowPerTick(t *testing.T) {
	w := newTestWorld(t, 5, 12, &core.Sequence{Floats: []float64{0.3}, Ints: []int{1}})
	place(w, 2, 9, Plain(KindSteam))
	y := 9
	for tick := 1; tick <= 5; tick++ {
		w.Step()
		if kindAt(w, 2, y-1) != KindSteam {
			t.Fatalf("tick %d: expected steam at (2,%d)", tick, y-1)
		}
		y--
	}
}

func TestSaltWaterBoilsLeavingSalt(t *testing.T) {
	w := newTestWorld(t, 5, 6, never())
	placeHot(w, 2, 4, Plain(KindSaltWater), 200)
	w.Step()
	if kindAt(w, 2, 4) != KindSalt || kindAt(w, 2, 3) != KindSteam {
		t.Fatalf("expected salt under steam, got %v under %v", kindAt(w, 2, 4), kindAt(w, 2, 3))
	}
}

func TestCoolLavaSolidifies(t *testing.T) {
	w := newTestWorld(t, 5, 5, never())
	placeHot(w, 2, 3, Plain(KindLava), 700)
	w.Step()
	if kindAt(w, 2, 3) != KindStone {
		t.Fatalf("expected stone, got %v", kindAt(w, 2, 3))
	}
}

func TestLavaHeatsNeighbors(t *testing.T) {
	w := newTestWorld(t, 5, 5, never())
	place(w, 1, 3, Plain(KindWall))
	place(w, 2, 3, Plain(KindLava))
	place(w, 3, 3, Plain(KindWall))
	place(w, 2, 2, Plain(KindWall))
	w.Step()
	if got := w.GetCell(2, 2).Heat; got <= AmbientHeat {
		t.Fatalf("expected the wall above lava to warm up, heat %d", got)
	}
}

func TestHotStoneMelts(t *testing.T) {
	w := newTestWorld(t, 5, 5, &core.Sequence{Floats: []float64{0.01}})
	placeHot(w, 2, 3, Plain(KindStone), 1700)
	w.Step()
	if kindAt(w, 2, 3) != KindLava {
		t.Fatalf("expected lava, got %v", kindAt(w, 2, 3))
	}
}

func TestSandAbsorbsWaterAbove(t *testing.T) {
	w := newTestWorld(t, 5, 5, always())
	place(w, 2, 3, Plain(KindSand))
	place(w, 2, 2, Plain(KindWater))
	w.Step()
	if got := w.GetCell(2, 3).Species; got != Mud(0) {
		t.Fatalf("expected dry mud, got %+v", got)
	}
}

func TestSaltDissolvesIntoWater(t *testing.T) {
	w := newTestWorld(t, 5, 5, &core.Sequence{Floats: []float64{0.02}, Ints: []int{0}})
	place(w, 1, 3, Plain(KindSalt))
	place(w, 2, 3, Plain(KindWater))
	w.Step()
	if kindAt(w, 1, 3) != KindSaltWater {
		t.Fatalf("expected salt water, got %v", kindAt(w, 1, 3))
	}
	if census := w.Census(); census[KindWater] != 0 {
		t.Fatalf("expected the water to be consumed, %d left", census[KindWater])
	}
}

func TestAcidCorrodesAndConsumesItself(t *testing.T) {
	w := newTestWorld(t, 5, 5, &core.Sequence{Floats: []float64{0.01}, Ints: []int{1}})
	place(w, 1, 3, Plain(KindStone))
	place(w, 2, 3, Plain(KindAcid))
	place(w, 3, 3, Plain(KindStone))
	place(w, 2, 2, Plain(KindStone))
	w.Step()
	if !w.GetCell(2, 2).IsEmpty() {
		t.Fatalf("expected the stone above acid to dissolve, got %v", kindAt(w, 2, 2))
	}
	if !w.GetCell(2, 3).IsEmpty() {
		t.Fatalf("expected the acid to consume itself, got %v", kindAt(w, 2, 3))
	}
	if kindAt(w, 1, 3) != KindStone || kindAt(w, 3, 3) != KindStone {
		t.Fatal("untouched stones changed")
	}
}

func TestDryHotMudBecomesSand(t *testing.T) {
	w := newTestWorld(t, 5, 5, never())
	placeHot(w, 2, 3, Mud(0), 100)
	w.Step()
	if kindAt(w, 2, 3) != KindSand {
		t.Fatalf("expected sand, got %v", kindAt(w, 2, 3))
	}
}

func TestSoilAbsorbsWater(t *testing.T) {
	w := newTestWorld(t, 5, 6, &core.Sequence{Floats: []float64{0.01}, Ints: []int{1}})
	place(w, 1, 4, Plain(KindWater))
	place(w, 2, 4, Plain(KindSoil))
	w.Step()
	if got := w.GetCell(2, 4).Species; got != Mud(0) {
		t.Fatalf("expected mud, got %+v", got)
	}
	if !w.GetCell(1, 4).IsEmpty() {
		t.Fatalf("expected the water to be absorbed, got %v", kindAt(w, 1, 4))
	}
}

func TestRootedGrassGrowsOneCell(t *testing.T) {
	w := newTestWorld(t, 5, 6, &core.Sequence{Floats: []float64{0.5}})
	place(w, 2, 4, Plain(KindSoil))
	place(w, 2, 3, Plain(KindGrass))
	w.Step()
	if kindAt(w, 2, 2) != KindGrass {
		t.Fatalf("expected new grass at (2,2), got %v", kindAt(w, 2, 2))
	}
	if !w.GetCell(2, 1).IsEmpty() {
		t.Fatal("grass grew twice in one tick")
	}
}

func TestUnrootedGrassDies(t *testing.T) {
	w := newTestWorld(t, 5, 5, &core.Sequence{Floats: []float64{0.1}})
	place(w, 2, 2, Plain(KindGrass))
	w.Step()
	if !w.GetCell(2, 2).IsEmpty() {
		t.Fatalf("expected grass to die, got %v", kindAt(w, 2, 2))
	}
}

func TestFlowerSpreadsOutOfGrass(t *testing.T) {
	w := newTestWorld(t, 7, 7, never())
	place(w, 3, 5, Plain(KindSoil))
	place(w, 3, 4, Plain(KindGrass))
	place(w, 3, 3, Flower(FlowerBlue))
	w.Step()
	for _, p := range [][2]int{{2, 2}, {4, 2}, {3, 1}} {
		if got := w.GetCell(p[0], p[1]).Species; got != Flower(FlowerBlue) {
			t.Fatalf("expected a blue flower at %v, got %+v", p, got)
		}
	}
}

func TestLonelyWaterGrassRots(t *testing.T) {
	w := newTestWorld(t, 5, 5, always())
	place(w, 2, 3, WaterGrass(0))
	w.Step()
	if got := w.GetCell(2, 3).Species; got != Mud(0) {
		t.Fatalf("expected mud, got %+v", got)
	}
}

func TestFireDiesWhenCool(t *testing.T) {
	w := newTestWorld(t, 5, 5, never())
	placeHot(w, 2, 2, Plain(KindFire), 200)
	w.Step()
	if !w.GetCell(2, 2).IsEmpty() {
		t.Fatalf("expected fire to go out, got %v", kindAt(w, 2, 2))
	}
}

func TestBlueFireCoolsToFire(t *testing.T) {
	w := newTestWorld(t, 5, 5, never())
	placeHot(w, 2, 3, Plain(KindBlueFire), 1500)
	w.Step()
	census := w.Census()
	if census[KindFire] != 1 || census[KindBlueFire] != 0 {
		t.Fatalf("expected one ordinary fire, got %v", census)
	}
}

func TestFireIsDousedFromAbove(t *testing.T) {
	w := newTestWorld(t, 5, 5, never())
	place(w, 2, 2, Plain(KindFire))
	place(w, 2, 1, Plain(KindWater))
	w.Step()
	if kindAt(w, 2, 2) == KindFire || kindAt(w, 2, 1) == KindFire {
		t.Fatal("expected the fire to be doused")
	}
}

func TestFireIgnitesGrass(t *testing.T) {
	w := newTestWorld(t, 5, 5, &core.Sequence{Floats: []float64{0.07}, Ints: []int{1}})
	place(w, 1, 3, Plain(KindSoil))
	place(w, 1, 2, Plain(KindGrass))
	place(w, 2, 2, Plain(KindFire))
	w.Step()
	if kindAt(w, 1, 2) != KindFire {
		t.Fatalf("expected the grass to catch fire, got %v", kindAt(w, 1, 2))
	}
}

func TestHotGrassIgnites(t *testing.T) {
	w := newTestWorld(t, 5, 5, never())
	placeHot(w, 2, 2, Plain(KindGrass), 900)
	w.Step()
	census := w.Census()
	if census[KindFire] != 1 || census[KindGrass] != 0 {
		t.Fatalf("expected grass to turn to fire, got %v", census)
	}
}

func TestCloneBindsAndRecyclesIdentifier(t *testing.T) {
	w := newTestWorld(t, 6, 5, never())
	place(w, 2, 2, Clone())
	place(w, 3, 2, Plain(KindWall))
	w.Step()

	if got := w.GetCell(2, 2).Species; got != BoundClone(0) {
		t.Fatalf("expected clone bound to id 0, got %+v", got)
	}
	if s, ok := w.ResolveClonedSpecies(0); !ok || s != Plain(KindWall) {
		t.Fatalf("expected id 0 to hold Wall, got %+v (ok=%v)", s, ok)
	}

	w.SetCell(2, 2, Empty)
	w.SetCell(3, 2, Empty)
	w.Step()
	if w.Registry().Live() != 0 {
		t.Fatalf("expected registry to be collected, %d live", w.Registry().Live())
	}

	place(w, 2, 2, Clone())
	place(w, 2, 3, Plain(KindStone))
	w.Step()
	if got := w.GetCell(2, 2).Species; got != BoundClone(0) {
		t.Fatalf("expected reused id 0, got %+v", got)
	}
	if s, _ := w.ResolveClonedSpecies(0); s != Plain(KindStone) {
		t.Fatalf("expected id 0 to hold Stone now, got %+v", s)
	}
}

func TestBoundCloneStampsCopies(t *testing.T) {
	w := newTestWorld(t, 6, 5, &core.Sequence{Floats: []float64{0.05}, Ints: []int{7}})
	place(w, 1, 2, Plain(KindWall))
	place(w, 2, 2, Clone())
	w.Step()
	if got := w.GetCell(2, 2).Species; got != BoundClone(0) {
		t.Fatalf("expected bound clone, got %+v", got)
	}
	w.Step()
	if kindAt(w, 3, 2) != KindWall {
		t.Fatalf("expected a stamped wall at (3,2), got %v", kindAt(w, 3, 2))
	}
}

func TestBoundCloneBindsAdjacentClone(t *testing.T) {
	w := newTestWorld(t, 6, 5, &core.Sequence{Floats: []float64{0.15}, Ints: []int{0}})
	place(w, 1, 3, Plain(KindWall))
	place(w, 2, 3, Clone())
	place(w, 3, 3, Clone())
	w.Step()
	w.Step()
	if got := w.GetCell(3, 3).Species; got != BoundClone(0) {
		t.Fatalf("expected the neighbor clone to share id 0, got %+v", got)
	}
	if w.Registry().Live() != 1 {
		t.Fatalf("expected a single registration, got %d", w.Registry().Live())
	}
}
