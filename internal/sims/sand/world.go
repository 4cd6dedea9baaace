package sand

import (
	"sand-ca/internal/core"
	pcore "sand-ca/pkg/core"
)

// World is a falling-sand grid. It owns its cell buffer and random source;
// it is not safe for concurrent use.
type World struct {
	cfg Config

	w, h int

	grid  grid
	clock uint8
	ticks uint64

	rng *pcore.RNG
}

// New returns a world of the given size using default parameters.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a world configured from cfg. Dimensions below 1 are
// raised to 1. The grid starts empty; call Reset to apply the configured
// scene.
func NewWithConfig(cfg Config) *World {
	if cfg.Width < 1 {
		cfg.Width = 1
	}
	if cfg.Height < 1 {
		cfg.Height = 1
	}
	cfg.Params.normalize()
	return &World{
		cfg:  cfg,
		w:    cfg.Width,
		h:    cfg.Height,
		grid: newGrid(cfg.Width, cfg.Height),
		rng:  pcore.NewRNG(cfg.Seed),
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Width returns the grid width in cells.
func (w *World) Width() int { return w.w }

// Height returns the grid height in cells.
func (w *World) Height() int { return w.h }

// Ticks returns the number of ticks run since the last Reset.
func (w *World) Ticks() uint64 { return w.ticks }

// Params returns the active tunables.
func (w *World) Params() Params { return w.cfg.Params }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Buffer exposes the raw cell records: CellStride bytes per cell in row-major
// order, laid out as species, variant or fuel, temperature, clock. The slice
// is stable for the life of the world. Callers must treat it as read-only.
func (w *World) Buffer() []uint8 { return w.grid.cells }

// Cells is an alias of Buffer that satisfies core.Sim.
func (w *World) Cells() []uint8 { return w.grid.cells }

// CellStride reports the record size of Buffer.
func (w *World) CellStride() int { return CellStride }

// Cell decodes the record at (x, y).
func (w *World) Cell(x, y int) (Cell, bool) {
	if !w.grid.InBounds(x, y) {
		return Cell{}, false
	}
	return w.grid.cell(w.grid.Index(x, y)), true
}

// Counts tallies the cells of every species.
func (w *World) Counts() [SpeciesCount]int {
	var out [SpeciesCount]int
	for i, n := 0, len(w.grid.cells); i < n; i += CellStride {
		if s := w.grid.species(i); s.Valid() {
			out[s]++
		}
	}
	return out
}

// Tick advances the world by one generation: heat diffusion, phase
// transitions, then a bottom-to-top movement scan. Each row picks its scan
// direction at random. A cell already stamped with the current parity moved
// this tick and is skipped.
func (w *World) Tick() {
	w.clock ^= 1
	w.diffuseHeat()
	w.applyPhaseTransitions()

	g := w.grid
	for y := w.h - 1; y >= 0; y-- {
		leftToRight := w.rng.Bool()
		for step := 0; step < w.w; step++ {
			x := step
			if !leftToRight {
				x = w.w - 1 - step
			}
			i := g.Index(x, y)
			if g.clock(i) == w.clock {
				continue
			}
			s := g.species(i)
			g.stamp(i, w.clock)
			w.update(x, y, s)
		}
	}
	w.ticks++
}

// Step runs one tick.
func (w *World) Step() { w.Tick() }

// SetCell places a species at (x, y) with its default auxiliary bytes.
// Out-of-bounds coordinates and undefined species are ignored.
func (w *World) SetCell(x, y int, s Species) bool {
	if !w.grid.InBounds(x, y) || !s.Valid() {
		return false
	}
	p := &w.cfg.Params
	c := Cell{Species: s, Clock: w.clock}
	switch s {
	case Empty, Wall:
	case Fire:
		c.RA, c.RB = p.FuelPlaced, p.FirePlaceTemp
	case Lava:
		c.RA, c.RB = w.newVariant(), p.LavaPlaceTemp
	case Steam:
		c.RA, c.RB = w.newVariant(), p.SteamPlaceTemp()
	case Ice:
		c.RA, c.RB = w.newVariant(), p.IcePlaceTemp
	default:
		c.RA, c.RB = w.newVariant(), p.Ambient
	}
	w.grid.put(w.grid.Index(x, y), c)
	return true
}

// Paint fills a disc of the given radius centred on (x, y). Radius 0 paints
// a single cell. It returns the number of cells written.
func (w *World) Paint(x, y, radius int, kind uint8) int {
	s := Species(kind)
	if !s.Valid() {
		return 0
	}
	if radius < 0 {
		radius = 0
	}
	n := 0
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			if w.SetCell(x+dx, y+dy, s) {
				n++
			}
		}
	}
	return n
}

// Clear zeroes every cell. The parity bit and random state are kept.
func (w *World) Clear() {
	w.grid.Clear()
}

// Reset clears the grid, reseeds the random source and builds the configured
// scene. A zero seed reuses the configured seed.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng.Seed(effective)
	w.clock = 0
	w.ticks = 0
	w.Clear()
	if build, ok := scenes[w.cfg.Scene]; ok {
		build(w)
	}
}

// LoadScene switches to the named scene and resets with the configured seed.
func (w *World) LoadScene(name string) bool {
	if _, ok := scenes[name]; !ok {
		return false
	}
	w.cfg.Scene = name
	w.Reset(0)
	return true
}

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		w := NewWithConfig(FromMap(cfg))
		w.Reset(0)
		return w
	})
}
