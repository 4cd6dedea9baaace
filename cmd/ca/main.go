//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"image/color"
	"log"
	"os"
	"time"

	"sand-ca/internal/app"
	"sand-ca/internal/core"
	"sand-ca/internal/logging"
	"sand-ca/internal/logging/sinks"
	"sand-ca/internal/sims/sand"
	"sand-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	seed := cfg.EffectiveSeed()
	sim := factory(cfg.ToMap(seed))

	router := logging.NewRouter(nil, logging.DefaultConfig(), []logging.NamedSink{
		{Name: "console", Sink: sinks.NewConsoleSink(os.Stderr, logging.ConsoleConfig{})},
	})
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		router.Close(ctx)
	}()

	opts := app.Options{
		Scale:     cfg.Scale,
		Seed:      seed,
		Brush:     2,
		Publisher: router,
	}
	if world, ok := sim.(*sand.World); ok {
		ambient := world.Params().Ambient
		opts.Scene = world.Config().Scene
		opts.Shade = sand.Shade
		opts.HeatShade = func(rec []uint8) color.RGBA { return sand.HeatShade(rec, ambient) }
		opts.Materials = materials()
	}

	game := app.New(sim, opts)
	size := sim.Size()

	ebiten.SetWindowTitle("sand-ca: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+app.DefaultHUDWidth, size.H*cfg.Scale+ui.BarHeight)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

// materials lists every paintable species; the right mouse button erases.
func materials() []ui.Material {
	var out []ui.Material
	for _, s := range sand.AllSpecies() {
		if s == sand.Empty {
			continue
		}
		out = append(out, ui.Material{Name: s.String(), Kind: uint8(s), Swatch: sand.Swatch(s)})
	}
	return out
}
