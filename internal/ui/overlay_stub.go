//go:build !ebiten

package ui

import (
	"sand-ca/internal/core"
	"sand-ca/internal/render"
)

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(core.Sim, int, render.Shader) *Overlay { return &Overlay{} }

func (o *Overlay) Update()                      {}
func (o *Overlay) HeatVisible() bool            { return false }
func (o *Overlay) SetBrush(int, int, int, bool) {}
func (o *Overlay) Draw(any)                     {}
