package sand

// RunResult captures telemetry from a deterministic headless run used by the
// sweep tool.
type RunResult struct {
	Scene string
	Seed  int64
	// Ticks is the number of ticks simulated.
	Ticks int
	// Initial and Final hold the census before the first and after the last
	// tick.
	Initial [SpeciesCount]int
	Final   [SpeciesCount]int
	// FirePeak is the largest fire population seen at the end of any tick.
	FirePeak int
	// BurnOutTick is the first tick after which no fire remained, or -1 if
	// fire never appeared or never went out.
	BurnOutTick int
	// MeltTick is the first tick after which no ice remained, or -1 if the
	// scene had no ice or some survived.
	MeltTick int
	// SettleTick is the last tick on which any cell changed species.
	SettleTick int
}

// Run builds cfg's scene, advances it ticks times and records telemetry.
func Run(cfg Config, ticks int) RunResult {
	world := NewWithConfig(cfg)
	world.Reset(0)

	res := RunResult{
		Scene:       world.cfg.Scene,
		Seed:        world.cfg.Seed,
		Initial:     world.Counts(),
		BurnOutTick: -1,
		MeltTick:    -1,
	}
	hadFire := res.Initial[Fire] > 0
	hadIce := res.Initial[Ice] > 0

	prev := make([]Species, world.w*world.h)
	world.snapshotSpecies(prev)
	for t := 1; t <= ticks; t++ {
		world.Tick()
		res.Ticks = t
		if world.snapshotSpecies(prev) {
			res.SettleTick = t
		}
		counts := world.Counts()
		if counts[Fire] > 0 {
			hadFire = true
			res.FirePeak = max(res.FirePeak, counts[Fire])
			res.BurnOutTick = -1
		} else if hadFire && res.BurnOutTick < 0 {
			res.BurnOutTick = t
		}
		if hadIce && counts[Ice] == 0 && res.MeltTick < 0 {
			res.MeltTick = t
		}
	}
	res.Final = world.Counts()
	return res
}

// snapshotSpecies copies every cell's species into dst and reports whether
// any entry changed.
func (w *World) snapshotSpecies(dst []Species) bool {
	changed := false
	for i := range dst {
		s := w.grid.species(i * CellStride)
		if dst[i] != s {
			dst[i] = s
			changed = true
		}
	}
	return changed
}
