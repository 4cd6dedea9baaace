package sand

func newTestWorld(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Seed = 42
	return NewWithConfig(cfg)
}

// setRaw writes a record directly, bypassing SetCell defaults.
func setRaw(w *World, x, y int, s Species, ra, temp uint8) {
	w.grid.put(w.grid.Index(x, y), Cell{Species: s, RA: ra, RB: temp})
}

func speciesAt(w *World, x, y int) Species {
	return w.grid.speciesAt(x, y)
}

func tempAt(w *World, x, y int) uint8 {
	return w.grid.temp(w.grid.Index(x, y))
}

func findAll(w *World, s Species) [][2]int {
	var out [][2]int
	for y := 0; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			if speciesAt(w, x, y) == s {
				out = append(out, [2]int{x, y})
			}
		}
	}
	return out
}

func countOf(w *World, s Species) int {
	return w.Counts()[s]
}

func sealBox(w *World) {
	for x := 0; x < w.w; x++ {
		setRaw(w, x, 0, Wall, 0, 0)
		setRaw(w, x, w.h-1, Wall, 0, 0)
	}
	for y := 0; y < w.h; y++ {
		setRaw(w, 0, y, Wall, 0, 0)
		setRaw(w, w.w-1, y, Wall, 0, 0)
	}
}

func floor(w *World) {
	for x := 0; x < w.w; x++ {
		setRaw(w, x, w.h-1, Wall, 0, 0)
	}
}

func run(w *World, ticks int) {
	for i := 0; i < ticks; i++ {
		w.Tick()
	}
}
