//go:build !ebiten

package ui

// MaterialBar is a no-op placeholder for headless builds.
type MaterialBar struct{}

func NewMaterialBar([]Material, int) *MaterialBar { return nil }
func (b *MaterialBar) Selected() (Material, bool) { return Material{}, false }
func (b *MaterialBar) SetHint(string)             {}
func (b *MaterialBar) Update(int)                 {}
func (b *MaterialBar) Contains(int, int) bool     { return false }
func (b *MaterialBar) Draw(any, int)              {}
