package ui

import "image/color"

// Material is one selectable brush entry.
type Material struct {
	Name   string
	Kind   uint8
	Swatch color.RGBA
}

// BarHeight is the vertical space reserved for the material strip.
const BarHeight = 40
