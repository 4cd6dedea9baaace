package app

import (
	"sand-ca/internal/logging"
	"sand-ca/internal/render"
	"sand-ca/internal/ui"
)

// Options configures a Game.
type Options struct {
	Scale     int
	Seed      int64
	Scene     string
	Brush     int
	HUDWidth  int
	Shade     render.Shader
	HeatShade render.Shader
	Materials []ui.Material
	Publisher logging.Publisher
}

const DefaultHUDWidth = 240

func (o Options) withDefaults() Options {
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.Brush < 0 {
		o.Brush = 0
	}
	if o.HUDWidth == 0 {
		o.HUDWidth = DefaultHUDWidth
	}
	if o.HUDWidth < 0 {
		o.HUDWidth = 0
	}
	if o.Publisher == nil {
		o.Publisher = logging.NopPublisher()
	}
	return o
}
