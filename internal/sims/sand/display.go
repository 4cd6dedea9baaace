package sand

import "image/color"

var basePalette = [SpeciesCount]color.NRGBA{
	Empty: {R: 12, G: 12, B: 16, A: 255},
	Sand:  {R: 220, G: 190, B: 120, A: 255},
	Water: {R: 40, G: 100, B: 220, A: 255},
	Oil:   {R: 70, G: 50, B: 30, A: 255},
	Wall:  {R: 110, G: 110, B: 118, A: 255},
	Fire:  {R: 255, G: 110, B: 30, A: 255},
	Plant: {R: 50, G: 170, B: 60, A: 255},
	Steam: {R: 200, G: 210, B: 225, A: 255},
	Lava:  {R: 230, G: 70, B: 20, A: 255},
	Stone: {R: 140, G: 135, B: 130, A: 255},
	Ice:   {R: 170, G: 220, B: 250, A: 255},
	Smoke: {R: 80, G: 80, B: 85, A: 255},
	Acid:  {R: 140, G: 240, B: 60, A: 255},
	Wood:  {R: 120, G: 80, B: 40, A: 255},
}

var (
	hotTint  = color.NRGBA{R: 255, G: 240, B: 170, A: 255}
	coldTint = color.NRGBA{R: 30, G: 60, B: 200, A: 255}
	warmTint = color.NRGBA{R: 230, G: 40, B: 20, A: 255}
	unknown  = color.NRGBA{R: 255, G: 0, B: 255, A: 255}
)

// Shade returns the display colour of one cell record (at least CellStride
// bytes). The variant byte varies brightness slightly; fire and lava glow
// brighter as they heat up.
func Shade(rec []uint8) color.RGBA {
	s := Species(rec[offSpecies])
	if !s.Valid() {
		return toRGBA(unknown)
	}
	base := basePalette[s]
	switch s {
	case Empty:
		return toRGBA(base)
	case Fire:
		return toRGBA(blendColors(base, hotTint, float64(rec[offRB])/255*0.8))
	case Lava:
		return toRGBA(blendColors(base, hotTint, float64(rec[offRB])/255*0.5))
	}
	return toRGBA(vary(base, rec[offRA]))
}

// Swatch returns the undecorated palette colour of a species, used for
// material pickers.
func Swatch(s Species) color.RGBA {
	if !s.Valid() {
		return toRGBA(unknown)
	}
	return toRGBA(basePalette[s])
}

// HeatShade maps a record's temperature onto a blue-black-red ramp centred
// on ambient.
func HeatShade(rec []uint8, ambient uint8) color.RGBA {
	t := rec[offRB]
	black := color.NRGBA{A: 255}
	switch {
	case t > ambient:
		span := float64(255 - ambient)
		return toRGBA(blendColors(black, warmTint, float64(t-ambient)/span))
	case t < ambient:
		return toRGBA(blendColors(black, coldTint, float64(ambient-t)/float64(ambient)))
	}
	return toRGBA(black)
}

// vary darkens the colour by up to variantRange/255 using the variant byte.
func vary(c color.NRGBA, v uint8) color.NRGBA {
	v %= variantRange
	d := func(ch uint8) uint8 {
		if ch < v {
			return 0
		}
		return ch - v
	}
	return color.NRGBA{R: d(c.R), G: d(c.G), B: d(c.B), A: c.A}
}

func toRGBA(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func blendColors(base, overlay color.NRGBA, overlayWeight float64) color.NRGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	br, bg, bb, ba := float64(base.R), float64(base.G), float64(base.B), float64(base.A)
	or, og, ob, oa := float64(overlay.R), float64(overlay.G), float64(overlay.B), float64(overlay.A)
	w := overlayWeight
	inv := 1 - w
	return color.NRGBA{
		R: uint8(br*inv + or*w + 0.5),
		G: uint8(bg*inv + og*w + 0.5),
		B: uint8(bb*inv + ob*w + 0.5),
		A: uint8(ba*inv + oa*w + 0.5),
	}
}
