//go:build ebiten

package app

import (
	"context"
	"fmt"
	"time"

	"sand-ca/internal/core"
	"sand-ca/internal/logging"
	"sand-ca/internal/logging/simulation"
	"sand-ca/internal/render"
	"sand-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type clearer interface {
	Clear()
}

type ticker interface {
	Ticks() uint64
}

// Game adapts a core simulation to the ebiten.Game interface and lets the
// mouse paint materials into it.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	bar     *ui.MaterialBar
	shade   render.Shader
	pub     logging.Publisher
	scene   string

	scale    int
	paused   bool
	tickOnce bool
	seed     int64

	brush    int
	lastX    int
	lastY    int
	stroking bool
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, opts Options) *Game {
	opts = opts.withDefaults()
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(sim, opts.Scale, opts.HeatShade),
		hud:     ui.NewHUD(sim, opts.HUDWidth),
		bar:     ui.NewMaterialBar(opts.Materials, size.W*opts.Scale+opts.HUDWidth),
		shade:   opts.Shade,
		pub:     opts.Publisher,
		scene:   opts.Scene,
		scale:   opts.Scale,
		seed:    opts.Seed,
		brush:   opts.Brush,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	size := g.sim.Size()
	simulation.SceneLoaded(context.Background(), g.pub, 0, "gui", simulation.SceneLoadedPayload{
		Scene: g.scene, Seed: seed, Width: size.W, Height: size.H,
	})
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if c, ok := g.sim.(clearer); ok {
			c.Clear()
		}
	}

	size := g.sim.Size()
	viewW, viewH := size.W*g.scale, size.H*g.scale
	g.overlay.Update()
	g.hud.Update(viewW)
	g.bar.Update(viewH)
	g.handleBrush(viewW, viewH)

	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	g.bar.SetHint(g.status())
	return nil
}

func (g *Game) handleBrush(viewW, viewH int) {
	mx, my := ebiten.CursorPosition()
	inView := mx >= 0 && my >= 0 && mx < viewW && my < viewH
	if inView {
		if _, wy := ebiten.Wheel(); wy > 0 {
			g.brush = min(g.brush+1, maxBrush)
		} else if wy < 0 {
			g.brush = max(g.brush-1, 0)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.brush = min(g.brush+1, maxBrush)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.brush = max(g.brush-1, 0)
	}

	gx, gy := mx/g.scale, my/g.scale
	g.overlay.SetBrush(gx, gy, g.brush, inView)

	painter, ok := g.sim.(core.Painter)
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !ok || !inView || (!left && !right) {
		g.stroking = false
		return
	}
	var kind uint8
	if left {
		m, ok := g.bar.Selected()
		if !ok {
			return
		}
		kind = m.Kind
	}
	if !g.stroking {
		g.lastX, g.lastY = gx, gy
		g.stroking = true
	}
	strokeLine(painter, g.lastX, g.lastY, gx, gy, g.brush, kind)
	g.lastX, g.lastY = gx, gy
}

func (g *Game) status() string {
	state := "running"
	if g.paused {
		state = "paused"
	}
	tick := uint64(0)
	if t, ok := g.sim.(ticker); ok {
		tick = t.Ticks()
	}
	heat := ""
	if g.overlay.HeatVisible() {
		heat = " heat"
	}
	return fmt.Sprintf("r=%d %s tick=%d%s", g.brush, state, tick, heat)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.sim.CellStride(), g.shade, g.scale)
	g.overlay.Draw(screen)
	size := g.sim.Size()
	g.hud.Draw(screen, size.W*g.scale, g.scale)
	g.bar.Draw(screen, size.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H*g.scale + ui.BarHeight
}

const maxBrush = 32
