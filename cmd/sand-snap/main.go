package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"

	"sand-ca/internal/app"
	"sand-ca/internal/render"
	"sand-ca/internal/sims/sand"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	ticks := flag.Int("ticks", 120, "ticks to simulate before the snapshot")
	out := flag.String("out", "snapshot.png", "output PNG path")
	heat := flag.Bool("heat", false, "render the temperature map instead of materials")
	flag.Parse()

	seed := cfg.EffectiveSeed()
	world := sand.NewWithConfig(sand.FromMap(cfg.ToMap(seed)))
	world.Reset(0)
	for i := 0; i < *ticks; i++ {
		world.Tick()
	}

	shade := render.Shader(sand.Shade)
	if *heat {
		ambient := world.Params().Ambient
		shade = func(rec []uint8) color.RGBA { return sand.HeatShade(rec, ambient) }
	}
	img := render.ImageFromRecords(world.Width(), world.Height(), world.Buffer(), sand.CellStride, shade)
	img = render.Upscale(img, cfg.Scale)

	if err := writePNG(*out, img); err != nil {
		log.Fatalf("write snapshot: %v", err)
	}

	fmt.Printf("scene=%s seed=%d ticks=%d -> %s\n", world.Config().Scene, seed, world.Ticks(), *out)
	counts := world.Counts()
	for _, s := range sand.AllSpecies() {
		if counts[s] > 0 && s != sand.Empty {
			fmt.Printf("  %-6s %d\n", s, counts[s])
		}
	}
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
