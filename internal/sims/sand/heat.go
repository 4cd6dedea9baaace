package sand

// conductivityTable is indexed by species id. Species past the end of the
// table use defaultConductivity.
var conductivityTable = [...]uint8{5, 38, 64, 26, 13, 102, 20, 8, 90, 51, 77, 5, 51, 20}

const defaultConductivity = 5

// conductionDivisor scales the conductivity product so one exchange moves a
// small fraction of the temperature gap.
const conductionDivisor = 512

// ambientDriftMask gives each non-inert cell a 1-in-8 chance per tick of
// drifting one unit toward ambient.
const ambientDriftMask = 7

// heatNeighbors covers every unordered neighbour pair exactly once in a
// row-major sweep.
var heatNeighbors = [4][2]int{{1, 0}, {0, 1}, {-1, 1}, {1, 1}}

// Conductivity returns the heat conductivity of a species.
func Conductivity(s Species) uint8 {
	if int(s) < len(conductivityTable) {
		return conductivityTable[s]
	}
	return defaultConductivity
}

// diffuseHeat runs one sweep of pairwise conduction followed by ambient
// drift. Each cell's running temperature is written back once after its four
// exchanges.
func (w *World) diffuseHeat() {
	g := w.grid
	ambient := w.cfg.Params.Ambient
	for y := 0; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			ia := g.Index(x, y)
			sa := g.species(ia)
			condA := int32(Conductivity(sa))
			running := int32(g.temp(ia))

			for _, off := range heatNeighbors {
				nx, ny := x+off[0], y+off[1]
				if !g.InBounds(nx, ny) {
					continue
				}
				ib := g.Index(nx, ny)
				tb := int32(g.temp(ib))
				minCond := min(condA, int32(Conductivity(g.species(ib))))
				delta := (running - tb) * minCond / conductionDivisor
				if delta != 0 {
					running = clampTemp(running - delta)
					g.setTemp(ib, uint8(clampTemp(tb+delta)))
				}
			}
			g.setTemp(ia, uint8(running))

			if sa == Empty || sa == Wall {
				continue
			}
			if w.rng.Uint32()&ambientDriftMask != 0 {
				continue
			}
			t := g.temp(ia)
			switch {
			case t > ambient:
				g.setTemp(ia, t-1)
			case t < ambient:
				g.setTemp(ia, t+1)
			}
		}
	}
}
