package sand

// applyPhaseTransitions converts cells whose temperature crossed a threshold.
// Melting and solidifying use separate thresholds so a cell sitting at the
// boundary does not flicker between phases.
func (w *World) applyPhaseTransitions() {
	g := w.grid
	p := &w.cfg.Params
	for i, n := 0, len(g.cells); i < n; i += CellStride {
		t := g.temp(i)
		switch g.species(i) {
		case Water:
			if t >= p.Boil {
				w.transmute(i, Steam)
			} else if t < p.Freeze {
				w.transmute(i, Ice)
			}
		case Ice:
			if t >= p.MeltPoint() {
				w.transmute(i, Water)
			}
		case Steam:
			if t < p.CondensePoint() {
				w.transmute(i, Water)
			}
		case Stone:
			if t >= p.StoneMelt {
				w.transmute(i, Lava)
			}
		case Lava:
			if t < p.SolidifyPoint() {
				w.transmute(i, Stone)
			}
		case Oil:
			if t >= p.OilIgnite {
				w.ignite(i, p.FuelOilMin, p.FuelOilMax)
			}
		case Plant:
			if t >= p.PlantIgnite {
				w.ignite(i, p.FuelPlantMin, p.FuelPlantMax)
			}
		case Wood:
			if t >= p.WoodIgnite {
				w.ignite(i, p.FuelWoodMin, p.FuelWoodMax)
			}
		}
	}
}

// transmute changes the species in place with a fresh variant. Temperature
// and clock are kept.
func (w *World) transmute(i int, s Species) {
	w.grid.setSpecies(i, s)
	w.grid.setVariant(i, w.newVariant())
}

// ignite turns a fuel cell into fire with a fuel budget drawn from
// [minFuel, maxFuel) and lifts its temperature to the ignition floor.
func (w *World) ignite(i int, minFuel, maxFuel uint8) {
	g := w.grid
	g.setSpecies(i, Fire)
	g.setFuel(i, w.rng.Range(minFuel, maxFuel))
	if floor := w.cfg.Params.IgnitionFloor(); g.temp(i) < floor {
		g.setTemp(i, floor)
	}
}

func (w *World) newVariant() uint8 { return w.rng.Uint8n(variantRange) }
