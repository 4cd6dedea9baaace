package sand

import "testing"

func TestPhaseTransitions(t *testing.T) {
	p := DefaultParams()
	cases := []struct {
		name string
		from Species
		temp uint8
		want Species
	}{
		{"water boils", Water, p.Boil, Steam},
		{"water freezes", Water, p.Freeze - 1, Ice},
		{"water stays liquid", Water, p.Ambient, Water},
		{"steam condenses", Steam, p.Boil - p.SteamMargin - 1, Water},
		{"steam holds inside band", Steam, p.Boil - p.SteamMargin, Steam},
		{"ice melts", Ice, p.Freeze + p.IceMargin, Water},
		{"ice holds at freeze", Ice, p.Freeze, Ice},
		{"stone melts", Stone, p.StoneMelt, Lava},
		{"lava solidifies", Lava, p.StoneMelt - p.LavaMargin - 1, Stone},
		{"lava holds inside band", Lava, p.StoneMelt - p.LavaMargin, Lava},
		{"oil ignites", Oil, p.OilIgnite, Fire},
		{"plant ignites", Plant, p.PlantIgnite, Fire},
		{"wood ignites", Wood, p.WoodIgnite, Fire},
		{"wood below ignition", Wood, p.WoodIgnite - 1, Wood},
		{"sand is inert", Sand, 255, Sand},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(5, 5)
			setRaw(w, 2, 2, tc.from, 0, tc.temp)
			w.applyPhaseTransitions()
			if got := speciesAt(w, 2, 2); got != tc.want {
				t.Fatalf("%v at %d became %v, want %v", tc.from, tc.temp, got, tc.want)
			}
		})
	}
}

func TestIgnitionSetsFuelAndFloorsTemperature(t *testing.T) {
	w := newTestWorld(3, 3)
	p := w.Params()
	setRaw(w, 1, 1, Wood, 0, p.WoodIgnite)
	w.applyPhaseTransitions()

	c, _ := w.Cell(1, 1)
	if c.Species != Fire {
		t.Fatalf("wood should ignite, got %v", c.Species)
	}
	if c.Fuel() < p.FuelWoodMin || c.Fuel() >= p.FuelWoodMax {
		t.Fatalf("wood fuel %d outside [%d, %d)", c.Fuel(), p.FuelWoodMin, p.FuelWoodMax)
	}
	if c.Temperature() != p.IgnitionFloor() {
		t.Fatalf("ignition should floor temperature to %d, got %d", p.IgnitionFloor(), c.Temperature())
	}
}

func TestTransitionKeepsTemperatureAndClock(t *testing.T) {
	w := newTestWorld(3, 3)
	w.grid.put(w.grid.Index(1, 1), Cell{Species: Water, RA: 99, RB: 40, Clock: 1})
	w.applyPhaseTransitions()

	c, _ := w.Cell(1, 1)
	if c.Species != Steam {
		t.Fatalf("water at 40 should boil, got %v", c.Species)
	}
	if c.RB != 40 || c.Clock != 1 {
		t.Fatalf("transition changed temperature or clock: %+v", c)
	}
	if c.Variant() >= variantRange {
		t.Fatalf("variant %d outside [0, %d)", c.Variant(), variantRange)
	}
}

func TestWaterAtHysteresisEdgeNeverBoils(t *testing.T) {
	w := newTestWorld(3, 3)
	p := w.Params()
	edge := p.Boil - p.SteamMargin
	for i := 0; i < 500; i++ {
		setRaw(w, 1, 1, Water, 0, edge)
		w.applyPhaseTransitions()
		if speciesAt(w, 1, 1) != Water {
			t.Fatalf("water at %d converted to %v on pass %d", edge, speciesAt(w, 1, 1), i)
		}
	}
	setRaw(w, 1, 1, Water, 0, p.Boil)
	w.applyPhaseTransitions()
	if speciesAt(w, 1, 1) != Steam {
		t.Fatal("water at boil point should convert in one pass")
	}
}

func TestSteamRoundTrip(t *testing.T) {
	w := newTestWorld(5, 8)
	p := w.Params()
	setRaw(w, 2, 6, Water, 0, p.Boil+5)
	w.applyPhaseTransitions()
	if speciesAt(w, 2, 6) != Steam {
		t.Fatal("water should boil")
	}
	w.grid.setTemp(w.grid.Index(2, 6), p.Boil-10)
	w.applyPhaseTransitions()
	if speciesAt(w, 2, 6) != Water {
		t.Fatal("steam should condense")
	}
}
