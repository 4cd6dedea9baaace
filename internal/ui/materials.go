//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// MaterialBar draws a strip of swatches below the simulation view. Clicking a
// swatch or pressing its number key selects it.
type MaterialBar struct {
	items    []Material
	selected int
	width    int
	offsetY  int
	strip    *ebiten.Image
	pixel    *ebiten.Image
	hint     string
}

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5,
	ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9, ebiten.KeyDigit0,
}

// NewMaterialBar constructs a bar of the given pixel width. The first item is
// selected initially.
func NewMaterialBar(items []Material, width int) *MaterialBar {
	b := &MaterialBar{items: items, width: max(width, 1)}
	b.pixel = ebiten.NewImage(1, 1)
	b.pixel.Fill(color.White)
	return b
}

// Selected returns the current material; ok is false when the bar is empty.
func (b *MaterialBar) Selected() (Material, bool) {
	if b == nil || len(b.items) == 0 {
		return Material{}, false
	}
	return b.items[b.selected], true
}

// SetHint sets the status text drawn beneath the swatches.
func (b *MaterialBar) SetHint(hint string) {
	if b != nil {
		b.hint = hint
	}
}

// Update handles number keys and clicks on the strip at offsetY.
func (b *MaterialBar) Update(offsetY int) {
	if b == nil || len(b.items) == 0 {
		return
	}
	b.offsetY = offsetY
	for i, key := range digitKeys {
		if i < len(b.items) && inpututil.IsKeyJustPressed(key) {
			b.selected = i
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) && len(b.items) > len(digitKeys) {
		b.selected = (b.selected + 1) % len(b.items)
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	for i := range b.items {
		if pointInRect(mx, my-b.offsetY, b.swatchRect(i)) {
			b.selected = i
			return
		}
	}
}

// Contains reports whether the screen point lies on the strip.
func (b *MaterialBar) Contains(x, y int) bool {
	return b != nil && y >= b.offsetY && y < b.offsetY+BarHeight && x >= 0 && x < b.width
}

// Draw paints the strip at (0, offsetY).
func (b *MaterialBar) Draw(screen *ebiten.Image, offsetY int) {
	if b == nil {
		return
	}
	if b.strip == nil || b.strip.Bounds().Dx() != b.width {
		b.strip = ebiten.NewImage(b.width, BarHeight)
	}
	b.strip.Fill(color.RGBA{R: 12, G: 12, B: 16, A: 255})
	face := basicfont.Face7x13
	for i, item := range b.items {
		rect := b.swatchRect(i)
		if i == b.selected {
			fillRect(b.strip, b.pixel, rect.Inset(-2), color.RGBA{R: 240, G: 240, B: 250, A: 255})
		}
		fillRect(b.strip, b.pixel, rect, item.Swatch)
	}
	if item, ok := b.Selected(); ok {
		label := item.Name
		if b.hint != "" {
			label += "  " + b.hint
		}
		text.Draw(b.strip, label, face, swatchGap, BarHeight-4, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(offsetY))
	screen.DrawImage(b.strip, op)
}

func (b *MaterialBar) swatchRect(i int) image.Rectangle {
	x := swatchGap + i*(swatchSize+swatchGap)
	return image.Rect(x, swatchGap, x+swatchSize, swatchGap+swatchSize)
}

const (
	swatchSize = 18
	swatchGap  = 4
)
