package sand

// Per-mover capability sets.
var (
	sandFallsInto  = setOf(Empty, Water, Oil, Acid)
	stoneFallsInto = setOf(Empty, Water, Oil, Sand, Acid)

	waterDisplaces = setOf(Empty, Oil)
	oilDisplaces   = setOf(Empty)
	lavaDisplaces  = setOf(Empty, Water, Oil, Sand)
	acidDisplaces  = setOf(Empty, Oil)

	fireRisesInto  = setOf(Empty, Smoke)
	steamRisesInto = setOf(Empty)
	smokeRisesInto = setOf(Empty)

	acidDissolves = setOf(Sand, Stone, Plant, Wood, Ice)
)

// Lateral spread distances and drift probabilities (out of 256).
const (
	waterSpread = 2
	oilSpread   = 1
	lavaSpread  = 1
	acidSpread  = 2

	fireDrift  = 77
	steamDrift = 128
	smokeDrift = 153
)

// tryMove swaps the mover at (x, y) with (nx, ny) when the target is inside
// the grid and its species is in allowed. The moved record is stamped with the
// current clock.
func (w *World) tryMove(x, y, nx, ny int, allowed SpeciesSet) bool {
	g := w.grid
	if !g.InBounds(nx, ny) {
		return false
	}
	dst := g.Index(nx, ny)
	if !allowed.Has(g.species(dst)) {
		return false
	}
	g.Swap(g.Index(x, y), dst)
	g.stamp(dst, w.clock)
	return true
}

// sides returns the two horizontal directions in random order.
func (w *World) sides() (int, int) {
	if w.rng.Bool() {
		return -1, 1
	}
	return 1, -1
}

// side returns one random horizontal direction.
func (w *World) side() int {
	if w.rng.Bool() {
		return -1
	}
	return 1
}

// fall moves the cell straight down, or else diagonally down. The diagonal
// order is only drawn when the straight move fails.
func (w *World) fall(x, y int, into SpeciesSet) bool {
	if w.tryMove(x, y, x, y+1, into) {
		return true
	}
	if y+1 >= w.h {
		return false
	}
	a, b := w.sides()
	return w.tryMove(x, y, x+a, y+1, into) || w.tryMove(x, y, x+b, y+1, into)
}

// flow is fall followed by a lateral spread of up to spread cells in one
// random direction. The spread stops at the first cell the liquid cannot
// displace and lands on the farthest reachable cell.
func (w *World) flow(x, y int, displaces SpeciesSet, spread int) bool {
	if w.fall(x, y, displaces) {
		return true
	}
	dir := w.side()
	target := x
	for step := 1; step <= spread; step++ {
		nx := x + dir*step
		if !w.grid.InBounds(nx, y) || !displaces.Has(w.grid.speciesAt(nx, y)) {
			break
		}
		target = nx
	}
	if target == x {
		return false
	}
	return w.tryMove(x, y, target, y, displaces)
}

// rise moves a gas up, then diagonally up, then with probability drift/256
// one step sideways.
func (w *World) rise(x, y int, into SpeciesSet, drift uint32) bool {
	if y > 0 {
		if w.tryMove(x, y, x, y-1, into) {
			return true
		}
		a, b := w.sides()
		if w.tryMove(x, y, x+a, y-1, into) || w.tryMove(x, y, x+b, y-1, into) {
			return true
		}
	}
	if w.rng.Uint32()&0xFF < drift {
		return w.tryMove(x, y, x+w.side(), y, into)
	}
	return false
}

// radiate adds amount to the temperature of all eight neighbours.
func (w *World) radiate(x, y int, amount int32) {
	g := w.grid
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !g.InBounds(nx, ny) {
				continue
			}
			i := g.Index(nx, ny)
			g.setTemp(i, addTemp(g.temp(i), amount))
		}
	}
}
