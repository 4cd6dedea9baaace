package sand

import "sand-ca/internal/core"

// CellStride is the size in bytes of one cell record.
const CellStride = 4

// Byte offsets inside a cell record.
const (
	offSpecies = 0
	offRA      = 1
	offRB      = 2
	offClock   = 3
)

// variantRange bounds the visual variation byte.
const variantRange = 30

// Cell is a decoded copy of one grid record. RA holds the visual variant for
// most species and the remaining fuel for fire; RB is the temperature.
type Cell struct {
	Species Species
	RA      uint8
	RB      uint8
	Clock   uint8
}

// Temperature returns the discretised temperature (one unit is about 6 °C).
func (c Cell) Temperature() uint8 { return c.RB }

// Fuel returns the remaining burn ticks of a fire cell, or 0 otherwise.
func (c Cell) Fuel() uint8 {
	if c.Species != Fire {
		return 0
	}
	return c.RA
}

// Variant returns the visual variation seed, or 0 for fire.
func (c Cell) Variant() uint8 {
	if c.Species == Fire {
		return 0
	}
	return c.RA
}

// grid layers typed accessors over a strided ByteGrid. Indexes are byte
// offsets of a record, as returned by Index.
type grid struct {
	*core.ByteGrid
	cells []uint8
}

func newGrid(w, h int) grid {
	bg := core.NewByteGrid(w, h, CellStride)
	return grid{ByteGrid: bg, cells: bg.Cells()}
}

func (g grid) species(i int) Species { return Species(g.cells[i+offSpecies]) }

func (g grid) speciesAt(x, y int) Species { return g.species(g.Index(x, y)) }

func (g grid) setSpecies(i int, s Species) { g.cells[i+offSpecies] = uint8(s) }

func (g grid) variant(i int) uint8 { return g.cells[i+offRA] }

func (g grid) setVariant(i int, v uint8) { g.cells[i+offRA] = v }

func (g grid) fuel(i int) uint8 { return g.cells[i+offRA] }

func (g grid) setFuel(i int, f uint8) { g.cells[i+offRA] = f }

func (g grid) temp(i int) uint8 { return g.cells[i+offRB] }

func (g grid) setTemp(i int, t uint8) { g.cells[i+offRB] = t }

func (g grid) clock(i int) uint8 { return g.cells[i+offClock] }

func (g grid) stamp(i int, clock uint8) { g.cells[i+offClock] = clock }

func (g grid) cell(i int) Cell {
	return Cell{
		Species: Species(g.cells[i+offSpecies]),
		RA:      g.cells[i+offRA],
		RB:      g.cells[i+offRB],
		Clock:   g.cells[i+offClock],
	}
}

func (g grid) put(i int, c Cell) {
	g.cells[i+offSpecies] = uint8(c.Species)
	g.cells[i+offRA] = c.RA
	g.cells[i+offRB] = c.RB
	g.cells[i+offClock] = c.Clock
}

// vacate turns the record into empty space, keeping its clock.
func (g grid) vacate(i int) {
	g.cells[i+offSpecies] = uint8(Empty)
	g.cells[i+offRA] = 0
	g.cells[i+offRB] = 0
}

func clampTemp(v int32) int32 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func addTemp(t uint8, amount int32) uint8 {
	return uint8(clampTemp(int32(t) + amount))
}
