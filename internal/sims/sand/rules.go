package sand

const (
	fireHeatGain   = 3
	fireMaxTemp    = 230
	fireRadiate    = 2
	lavaRadiate    = 1
	smokeBand      = 2
	recolourChance = 0.3
)

// update runs the behaviour of the cell at (x, y). Ice, wall, wood and empty
// cells are passive here; their changes come from the heat and phase passes.
func (w *World) update(x, y int, s Species) {
	switch s {
	case Sand:
		w.fall(x, y, sandFallsInto)
	case Stone:
		w.fall(x, y, stoneFallsInto)
	case Water:
		w.flow(x, y, waterDisplaces, waterSpread)
	case Oil:
		w.flow(x, y, oilDisplaces, oilSpread)
	case Fire:
		w.updateFire(x, y)
	case Plant:
		w.updatePlant(x, y)
	case Steam:
		w.updateSteam(x, y)
	case Lava:
		w.updateLava(x, y)
	case Smoke:
		w.updateSmoke(x, y)
	case Acid:
		w.updateAcid(x, y)
	}
}

func (w *World) updateFire(x, y int) {
	g := w.grid
	p := &w.cfg.Params
	i := g.Index(x, y)
	fuel := g.fuel(i)
	t := g.temp(i)

	if fuel <= 1 {
		if w.rng.Chance(p.SmokeChance) {
			g.setSpecies(i, Smoke)
			g.setVariant(i, w.newVariant())
		} else {
			g.vacate(i)
		}
		return
	}
	g.setFuel(i, fuel-1)

	if t < p.FireSustain {
		g.setSpecies(i, Smoke)
		g.setVariant(i, w.newVariant())
		return
	}

	g.setTemp(i, uint8(min(int32(t)+fireHeatGain, fireMaxTemp)))
	w.radiate(x, y, fireRadiate)
	w.rise(x, y, fireRisesInto, fireDrift)
}

// updatePlant occasionally grows into one neighbouring water cell, mostly
// upward.
func (w *World) updatePlant(x, y int) {
	if !w.rng.Chance(w.cfg.Params.PlantGrowthChance) {
		return
	}
	var dx, dy int
	switch r := w.rng.Float64(); {
	case r < 0.50:
		dx, dy = w.growthColumn(), -1
	case r < 0.85:
		dx, dy = w.side(), 0
	default:
		dx, dy = w.growthColumn(), 1
	}
	gx, gy := x+dx, y+dy
	g := w.grid
	if !g.InBounds(gx, gy) {
		return
	}
	i := g.Index(gx, gy)
	if g.species(i) != Water {
		return
	}
	g.put(i, Cell{Species: Plant, RA: w.newVariant(), RB: w.cfg.Params.Ambient, Clock: w.clock})
}

// growthColumn picks -1 half of the time, else 0 or +1 evenly.
func (w *World) growthColumn() int {
	if w.rng.Bool() {
		return -1
	}
	if w.rng.Float64() < 0.5 {
		return 0
	}
	return 1
}

func (w *World) recolour(x, y int) {
	if w.rng.Chance(recolourChance) {
		w.grid.setVariant(w.grid.Index(x, y), w.newVariant())
	}
}

func (w *World) updateSteam(x, y int) {
	w.recolour(x, y)
	w.rise(x, y, steamRisesInto, steamDrift)
}

func (w *World) updateLava(x, y int) {
	w.recolour(x, y)
	w.radiate(x, y, lavaRadiate)
	w.flow(x, y, lavaDisplaces, lavaSpread)
}

func (w *World) updateSmoke(x, y int) {
	i := w.grid.Index(x, y)
	if w.grid.temp(i) <= satAdd(w.cfg.Params.Ambient, smokeBand) {
		w.grid.vacate(i)
		return
	}
	w.recolour(x, y)
	w.rise(x, y, smokeRisesInto, smokeDrift)
}

// updateAcid dissolves at most one neighbour per tick and may be consumed by
// the reaction. Acid that reacted does not flow in the same tick.
func (w *World) updateAcid(x, y int) {
	g := w.grid
	p := &w.cfg.Params
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !g.InBounds(nx, ny) {
				continue
			}
			ni := g.Index(nx, ny)
			if !acidDissolves.Has(g.species(ni)) || !w.rng.Chance(p.AcidDissolveChance) {
				continue
			}
			g.put(ni, Cell{Species: Empty, Clock: w.clock})
			if w.rng.Chance(p.AcidConsumeChance) {
				g.put(g.Index(x, y), Cell{Species: Empty, Clock: w.clock})
			}
			return
		}
	}
	w.flow(x, y, acidDisplaces, acidSpread)
}
