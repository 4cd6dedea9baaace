package sand

import "sort"

// Scene names accepted by Config.Scene.
const (
	SceneEmpty     = "empty"
	SceneBox       = "box"
	SceneHourglass = "hourglass"
	SceneForge     = "forge"
	ScenePond      = "pond"
	SceneCampfire  = "campfire"
)

var scenes = map[string]func(w *World){
	SceneEmpty:     func(*World) {},
	SceneBox:       buildBox,
	SceneHourglass: buildHourglass,
	SceneForge:     buildForge,
	ScenePond:      buildPond,
	SceneCampfire:  buildCampfire,
}

// SceneNames lists the known scenes in sorted order.
func SceneNames() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// place writes a cell with an explicit temperature. Out-of-bounds writes are
// dropped.
func (w *World) place(x, y int, s Species, temp uint8) {
	if !w.grid.InBounds(x, y) {
		return
	}
	ra := uint8(0)
	switch s {
	case Empty, Wall:
	case Fire:
		ra = w.cfg.Params.FuelPlaced
	default:
		ra = w.newVariant()
	}
	w.grid.put(w.grid.Index(x, y), Cell{Species: s, RA: ra, RB: temp, Clock: w.clock})
}

func (w *World) fillRect(x0, y0, x1, y1 int, s Species, temp uint8) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			w.place(x, y, s, temp)
		}
	}
}

// buildBox seals the border with wall.
func buildBox(w *World) {
	last := w.w - 1
	bottom := w.h - 1
	w.fillRect(0, 0, last, 0, Wall, 0)
	w.fillRect(0, bottom, last, bottom, Wall, 0)
	w.fillRect(0, 0, 0, bottom, Wall, 0)
	w.fillRect(last, 0, last, bottom, Wall, 0)
}

// buildHourglass stacks sand over water inside a sealed box so the two have
// to trade places.
func buildHourglass(w *World) {
	buildBox(w)
	ambient := w.cfg.Params.Ambient
	mid := w.h / 2
	r := w.rng.Source()
	for y := 1; y < w.h-1; y++ {
		for x := 1; x < w.w-1; x++ {
			switch {
			case y < mid/2:
			case y < mid:
				if r.Float64() < 0.9 {
					w.place(x, y, Sand, ambient)
				}
			default:
				w.place(x, y, Water, ambient)
			}
		}
	}
}

// buildForge puts a lava pool beside an oil pool behind a wall divider.
// Heat conducts through the divider until the oil ignites.
func buildForge(w *World) {
	buildBox(w)
	p := &w.cfg.Params
	div := w.w / 2
	top := w.h - 1 - max(w.h/3, 1)
	w.fillRect(div, top-2, div, w.h-2, Wall, 0)
	w.fillRect(1, top, div-1, w.h-2, Lava, p.LavaPlaceTemp)
	w.fillRect(div+1, top, w.w-2, w.h-2, Oil, p.Ambient)
}

// buildPond floats an ice sheet on a pool with a plant seed on the bed.
func buildPond(w *World) {
	buildBox(w)
	p := &w.cfg.Params
	surface := w.h - 1 - max(w.h/3, 1)
	w.fillRect(1, surface, w.w-2, w.h-2, Water, p.Ambient)
	r := w.rng.Source()
	floeW := max(w.w/4, 1)
	floeX := 1 + r.IntN(max(w.w-2-floeW, 1))
	w.fillRect(floeX, surface, floeX+floeW-1, surface, Ice, p.IcePlaceTemp)
	w.place(w.w/2, w.h-2, Plant, p.Ambient)
}

// buildCampfire stacks wood on the floor with a fire cell on top.
func buildCampfire(w *World) {
	buildBox(w)
	p := &w.cfg.Params
	cx := w.w / 2
	half := max(w.w/16, 1)
	stack := max(w.h/16, 1)
	floor := w.h - 2
	w.fillRect(cx-half, floor-stack+1, cx+half, floor, Wood, p.Ambient)
	w.place(cx, floor-stack, Fire, p.FirePlaceTemp)
}
