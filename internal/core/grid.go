package core

// ByteGrid stores a 2D grid of fixed-size byte records in row-major order.
// Every record is Stride bytes; the backing slice never changes size.
type ByteGrid struct {
	W, H   int
	Stride int
	data   []uint8
}

// NewByteGrid allocates a zeroed grid with the given dimensions and record
// size. Non-positive values are raised to 1.
func NewByteGrid(w, h, stride int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if stride <= 0 {
		stride = 1
	}
	return &ByteGrid{W: w, H: h, Stride: stride, data: make([]uint8, w*h*stride)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Len returns the number of records.
func (g *ByteGrid) Len() int { return g.W * g.H }

// Index returns the byte offset of the record at (x, y).
func (g *ByteGrid) Index(x, y int) int { return (y*g.W + x) * g.Stride }

// InBounds reports whether (x, y) addresses a record.
func (g *ByteGrid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// Record returns the record starting at byte offset i.
func (g *ByteGrid) Record(i int) []uint8 { return g.data[i : i+g.Stride : i+g.Stride] }

// Swap exchanges the full records at byte offsets a and b.
func (g *ByteGrid) Swap(a, b int) {
	for k := 0; k < g.Stride; k++ {
		g.data[a+k], g.data[b+k] = g.data[b+k], g.data[a+k]
	}
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
