//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"sand-ca/internal/core"
	"sand-ca/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional visuals on top of the base simulation: a
// temperature map toggled with H and the brush outline under the cursor.
type Overlay struct {
	sim      core.Sim
	scale    int
	heat     render.Shader
	showHeat bool

	heatImg *ebiten.Image
	heatBuf []byte
	pixel   *ebiten.Image

	brushX, brushY, brushR int
	showBrush              bool
}

// NewOverlay constructs an overlay. heat may be nil, which disables the
// temperature map.
func NewOverlay(sim core.Sim, scale int, heat render.Shader) *Overlay {
	o := &Overlay{sim: sim, scale: max(scale, 1), heat: heat}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles layers from the keyboard.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHeat = !o.showHeat
	}
}

// HeatVisible reports whether the temperature map is shown.
func (o *Overlay) HeatVisible() bool { return o.showHeat }

// SetBrush positions the brush outline in grid coordinates.
func (o *Overlay) SetBrush(x, y, radius int, visible bool) {
	o.brushX, o.brushY, o.brushR = x, y, radius
	o.showBrush = visible
}

// Draw renders the enabled layers onto the screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	if o.showHeat && o.heat != nil {
		o.drawHeat(screen, size)
	}
	if o.showBrush {
		o.drawBrush(screen)
	}
}

func (o *Overlay) drawHeat(screen *ebiten.Image, size core.Size) {
	total := size.W * size.H
	if o.heatImg == nil || o.heatImg.Bounds().Dx() != size.W || o.heatImg.Bounds().Dy() != size.H {
		o.heatImg = ebiten.NewImage(size.W, size.H)
	}
	if len(o.heatBuf) != 4*total {
		o.heatBuf = make([]byte, 4*total)
	}
	render.FillRecords(o.heatBuf, o.sim.Cells(), o.sim.CellStride(), o.heat)
	o.heatImg.WritePixels(o.heatBuf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	op.ColorScale.ScaleAlpha(heatAlpha)
	screen.DrawImage(o.heatImg, op)
}

// drawBrush traces the brush disc as a polygon in screen space.
func (o *Overlay) drawBrush(screen *ebiten.Image) {
	scale := float64(o.scale)
	cx := (float64(o.brushX) + 0.5) * scale
	cy := (float64(o.brushY) + 0.5) * scale
	r := (float64(o.brushR) + 0.5) * scale
	col := color.RGBA{R: 230, G: 230, B: 230, A: 200}
	if o.brushR == 0 {
		o.drawPoint(screen, cx, cy, scale, col)
		return
	}
	segments := max(12, int(r/2))
	step := 2 * math.Pi / float64(segments)
	for i := 0; i < segments; i++ {
		a0 := float64(i) * step
		a1 := a0 + step
		o.drawLine(screen, cx+r*math.Cos(a0), cy+r*math.Sin(a0), cx+r*math.Cos(a1), cy+r*math.Sin(a1), 1, col)
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

const heatAlpha = 0.85
