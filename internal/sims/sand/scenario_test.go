package sand

import "testing"

func TestSandSettlesBelowWater(t *testing.T) {
	w := newTestWorld(5, 12)
	for y := 0; y < 12; y++ {
		setRaw(w, 0, y, Wall, 0, 0)
		setRaw(w, 4, y, Wall, 0, 0)
	}
	floor(w)
	for y := 2; y <= 4; y++ {
		for x := 1; x <= 3; x++ {
			setRaw(w, x, y, Sand, 0, 12)
		}
	}
	for y := 5; y <= 7; y++ {
		for x := 1; x <= 3; x++ {
			setRaw(w, x, y, Water, 0, 12)
		}
	}

	run(w, 300)

	sand := findAll(w, Sand)
	water := findAll(w, Water)
	if len(sand) != 9 || len(water) != 9 {
		t.Fatalf("expected 9 sand and 9 water, got %d and %d", len(sand), len(water))
	}
	minSand := w.h
	for _, p := range sand {
		minSand = min(minSand, p[1])
	}
	maxWater := 0
	for _, p := range water {
		maxWater = max(maxWater, p[1])
	}
	if minSand < maxWater {
		t.Fatalf("sand (min row %d) should sit below water (max row %d)", minSand, maxWater)
	}
}

func TestOilFloatsOnWater(t *testing.T) {
	w := newTestWorld(5, 12)
	for y := 0; y < 12; y++ {
		setRaw(w, 0, y, Wall, 0, 0)
		setRaw(w, 4, y, Wall, 0, 0)
	}
	floor(w)
	for y := 7; y <= 9; y++ {
		for x := 1; x <= 3; x++ {
			setRaw(w, x, y, Oil, 0, 12)
		}
	}
	for y := 4; y <= 6; y++ {
		for x := 1; x <= 3; x++ {
			setRaw(w, x, y, Water, 0, 12)
		}
	}

	run(w, 400)

	maxOil := 0
	for _, p := range findAll(w, Oil) {
		maxOil = max(maxOil, p[1])
	}
	minWater := w.h
	for _, p := range findAll(w, Water) {
		minWater = min(minWater, p[1])
	}
	if minWater < maxOil {
		t.Fatalf("water (min row %d) should settle below oil (max row %d)", minWater, maxOil)
	}
}

func TestSandFormsPile(t *testing.T) {
	w := newTestWorld(11, 15)
	floor(w)
	for y := 0; y < 10; y++ {
		setRaw(w, 5, y, Sand, 0, 12)
	}

	run(w, 200)

	columns := map[int]bool{}
	for _, p := range findAll(w, Sand) {
		columns[p[0]] = true
	}
	if len(columns) < 2 {
		t.Fatalf("sand should spread into a pile, used %d columns", len(columns))
	}
}

func TestWaterLevelsInContainer(t *testing.T) {
	w := newTestWorld(9, 8)
	for y := 0; y < 8; y++ {
		setRaw(w, 0, y, Wall, 0, 0)
		setRaw(w, 8, y, Wall, 0, 0)
	}
	floor(w)
	for y := 0; y < 7; y++ {
		setRaw(w, 4, y, Water, 0, 12)
	}

	run(w, 300)

	water := findAll(w, Water)
	if len(water) != 7 {
		t.Fatalf("water count = %d, want 7", len(water))
	}
	lo, hi := w.h, 0
	for _, p := range water {
		lo = min(lo, p[1])
		hi = max(hi, p[1])
	}
	if hi-lo > 1 {
		t.Fatalf("water should settle into at most two rows, spans %d..%d", lo, hi)
	}
}

func TestMassConservedInSealedBox(t *testing.T) {
	w := newTestWorld(9, 12)
	sealBox(w)
	for x := 1; x <= 7; x++ {
		setRaw(w, x, 5, Sand, 0, 12)
		setRaw(w, x, 6, Water, 0, 12)
		setRaw(w, x, 2, Stone, 0, 12)
	}
	before := w.Counts()

	run(w, 200)

	after := w.Counts()
	for _, s := range []Species{Sand, Water, Stone, Wall} {
		if before[s] != after[s] {
			t.Fatalf("%v count changed: %d -> %d", s, before[s], after[s])
		}
	}
}

func TestEverythingSettles(t *testing.T) {
	w := newTestWorld(9, 15)
	for y := 0; y < 15; y++ {
		setRaw(w, 0, y, Wall, 0, 0)
		setRaw(w, 8, y, Wall, 0, 0)
	}
	floor(w)
	setRaw(w, 2, 1, Sand, 0, 12)
	setRaw(w, 4, 1, Stone, 0, 12)
	setRaw(w, 6, 1, Water, 0, 12)
	setRaw(w, 3, 2, Oil, 0, 12)

	run(w, 200)

	for y := 1; y < 7; y++ {
		for x := 1; x <= 7; x++ {
			if s := speciesAt(w, x, y); s != Empty {
				t.Fatalf("found %v at (%d,%d); everything should have settled", s, x, y)
			}
		}
	}
}

func TestFireWithoutFuelBurnsOut(t *testing.T) {
	w := newTestWorld(5, 5)
	setRaw(w, 2, 2, Fire, 3, w.Params().FirePlaceTemp)
	run(w, 50)
	if n := countOf(w, Fire); n != 0 {
		t.Fatalf("fire with 3 fuel should be gone, %d fire cells left", n)
	}
}

func TestCombustionEndsWithinFuelBound(t *testing.T) {
	for _, fuel := range []uint8{2, 10, 40} {
		w := newTestWorld(5, 5)
		setRaw(w, 2, 2, Fire, fuel, 150)
		gone := -1
		for tick := 1; tick <= int(fuel)+1; tick++ {
			w.Tick()
			if countOf(w, Fire) == 0 {
				gone = tick
				break
			}
		}
		if gone < 0 {
			t.Fatalf("fire with fuel %d still burning after %d ticks", fuel, int(fuel)+1)
		}
	}
}

func TestWoodBurnsLongerThanOil(t *testing.T) {
	p := DefaultParams()
	burnTime := func(fuel uint8) int {
		w := newTestWorld(3, 3)
		setRaw(w, 1, 1, Fire, fuel, p.FirePlaceTemp)
		for tick := 1; tick <= 500; tick++ {
			w.Tick()
			if countOf(w, Fire) == 0 {
				return tick
			}
		}
		return 500
	}
	oil := burnTime(uint8((int(p.FuelOilMin) + int(p.FuelOilMax)) / 2))
	wood := burnTime(uint8((int(p.FuelWoodMin) + int(p.FuelWoodMax)) / 2))
	if wood <= oil {
		t.Fatalf("wood should burn longer than oil: %d vs %d ticks", wood, oil)
	}
}

func TestContainedOilFireBurnsOut(t *testing.T) {
	w := newTestWorld(7, 7)
	sealBox(w)
	for y := 1; y <= 5; y++ {
		for x := 1; x <= 5; x++ {
			setRaw(w, x, y, Oil, 0, 12)
		}
	}
	initialOil := countOf(w, Oil)
	setRaw(w, 3, 3, Fire, w.Params().FuelPlaced, w.Params().FirePlaceTemp)

	run(w, 2000)

	if n := countOf(w, Fire); n != 0 {
		t.Fatalf("all fire should have burned out, %d left", n)
	}
	if n := countOf(w, Oil); n >= initialOil-1 {
		t.Fatalf("fire should consume oil: %d -> %d", initialOil, n)
	}
}

func TestLavaHeatIgnitesOilThroughWall(t *testing.T) {
	w := newTestWorld(9, 6)
	sealBox(w)
	for y := 0; y < 6; y++ {
		setRaw(w, 4, y, Wall, 0, 0)
	}
	for y := 1; y <= 4; y++ {
		for x := 1; x <= 3; x++ {
			setRaw(w, x, y, Lava, 0, w.Params().LavaPlaceTemp)
		}
		for x := 5; x <= 7; x++ {
			setRaw(w, x, y, Oil, 0, 12)
		}
	}

	ignited := false
	for i := 0; i < 2000 && !ignited; i++ {
		w.Tick()
		ignited = countOf(w, Fire) > 0
	}
	if !ignited {
		t.Fatal("heat should conduct through the divider and ignite the oil")
	}
}

func TestLavaMeetsWater(t *testing.T) {
	w := newTestWorld(7, 6)
	floor(w)
	setRaw(w, 4, 4, Water, 0, 12)
	setRaw(w, 5, 4, Water, 0, 12)
	setRaw(w, 2, 4, Lava, 0, w.Params().LavaPlaceTemp)

	run(w, 300)

	if countOf(w, Water) >= 2 && countOf(w, Steam) == 0 && countOf(w, Stone) == 0 {
		t.Fatal("lava meeting water should boil water or cool into stone")
	}
}

func TestIceSurvivesBriefly(t *testing.T) {
	w := newTestWorld(3, 3)
	setRaw(w, 1, 1, Ice, 0, w.Params().IcePlaceTemp)
	run(w, 20)
	if speciesAt(w, 1, 1) != Ice {
		t.Fatal("placed ice should last at least 20 ticks")
	}
}

func TestIceEventuallyMelts(t *testing.T) {
	w := newTestWorld(3, 3)
	setRaw(w, 1, 1, Ice, 0, w.Params().IcePlaceTemp)
	run(w, 200)
	if speciesAt(w, 1, 1) == Ice {
		t.Fatal("isolated ice should melt at ambient")
	}
}

func TestIceBlockIntactEarly(t *testing.T) {
	w := newTestWorld(12, 12)
	floor(w)
	for y := 2; y <= 9; y++ {
		for x := 2; x <= 9; x++ {
			setRaw(w, x, y, Ice, 0, w.Params().IcePlaceTemp)
		}
	}
	run(w, 12)
	if n := countOf(w, Ice); n != 64 {
		t.Fatalf("8x8 ice block should be intact after 12 ticks, %d/64 left", n)
	}
}

func TestIceMeltsFasterInWarmWater(t *testing.T) {
	p := DefaultParams()
	inAir := 500
	{
		w := newTestWorld(3, 3)
		setRaw(w, 1, 1, Ice, 0, p.IcePlaceTemp)
		for tick := 1; tick <= 500; tick++ {
			w.Tick()
			if speciesAt(w, 1, 1) != Ice {
				inAir = tick
				break
			}
		}
	}
	inWater := 500
	{
		w := newTestWorld(5, 5)
		setRaw(w, 2, 2, Ice, 0, p.IcePlaceTemp)
		for y := 1; y <= 3; y++ {
			for x := 1; x <= 3; x++ {
				if x != 2 || y != 2 {
					setRaw(w, x, y, Water, 0, p.Boil-1)
				}
			}
		}
		for tick := 1; tick <= 500; tick++ {
			w.Tick()
			if countOf(w, Ice) == 0 {
				inWater = tick
				break
			}
		}
	}
	if inWater >= inAir {
		t.Fatalf("ice should melt faster in warm water: water=%d air=%d", inWater, inAir)
	}
}

func TestHeatSourceMeltsIce(t *testing.T) {
	w := newTestWorld(7, 5)
	floor(w)
	for x := 1; x <= 5; x++ {
		setRaw(w, x, 3, Ice, 0, 2)
	}
	setRaw(w, 1, 3, Stone, 0, 80)
	before := countOf(w, Ice)
	run(w, 300)
	if after := countOf(w, Ice); after >= before {
		t.Fatalf("ice near a heat source should melt: %d -> %d", before, after)
	}
}

func TestTemperatureReachesEquilibrium(t *testing.T) {
	w := newTestWorld(5, 3)
	floor(w)
	setRaw(w, 1, 1, Stone, 0, 200)
	setRaw(w, 3, 1, Stone, 0, 2)

	run(w, 3000)

	ambient := int(w.Params().Ambient)
	for _, x := range []int{1, 3} {
		got := int(tempAt(w, x, 1))
		if got < ambient-6 || got > ambient+6 {
			t.Fatalf("stone at x=%d ended at %d, want within 6 of ambient %d", x, got, ambient)
		}
	}
}

func TestAcidDissolvesStone(t *testing.T) {
	w := newTestWorld(5, 8)
	floor(w)
	for x := 1; x <= 3; x++ {
		setRaw(w, x, 5, Stone, 0, 12)
		setRaw(w, x, 4, Acid, 0, 12)
	}
	before := countOf(w, Stone)
	run(w, 300)
	if after := countOf(w, Stone); after >= before {
		t.Fatalf("acid should dissolve stone: %d -> %d", before, after)
	}
}

func TestSmokeDissipates(t *testing.T) {
	w := newTestWorld(5, 10)
	for x := 1; x <= 3; x++ {
		setRaw(w, x, 8, Smoke, 0, w.Params().Ambient+10)
	}
	gone := false
	for i := 0; i < 500 && !gone; i++ {
		w.Tick()
		gone = countOf(w, Smoke) == 0
	}
	if !gone {
		t.Fatal("smoke should dissipate")
	}
}

func TestSteamCollectsAtCeiling(t *testing.T) {
	w := newTestWorld(7, 10)
	sealBox(w)
	for x := 1; x <= 5; x++ {
		setRaw(w, x, 7, Steam, 0, w.Params().Boil+5)
	}

	run(w, 200)

	steam := findAll(w, Steam)
	if len(steam) == 0 {
		return
	}
	sum := 0
	for _, p := range steam {
		sum += p[1]
	}
	if avg := float64(sum) / float64(len(steam)); avg >= 5 {
		t.Fatalf("steam should rise toward the ceiling, average row %.1f", avg)
	}
}

func TestPlantGrowsInPond(t *testing.T) {
	w := newTestWorld(7, 7)
	floor(w)
	for y := 3; y <= 5; y++ {
		for x := 1; x <= 5; x++ {
			setRaw(w, x, y, Water, 0, 12)
		}
	}
	setRaw(w, 3, 5, Plant, 0, 12)
	run(w, 500)
	if n := countOf(w, Plant); n <= 1 {
		t.Fatalf("plant should grow into adjacent water, %d plant cells", n)
	}
}
