package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"sand-ca/internal/app"
	"sand-ca/internal/logging"
	"sand-ca/internal/logging/simulation"
	"sand-ca/internal/logging/sinks"
	"sand-ca/internal/sims/sand"
	"sand-ca/internal/stream"
)

func main() {
	cfg := app.NewConfig()
	cfg.TPS = 30
	cfg.Bind(flag.CommandLine)
	addr := flag.String("addr", ":8080", "listen address")
	logSinks := flag.String("log-sinks", "console", "comma-separated log sinks (console, json)")
	logJSON := flag.String("log-json", "", "file for the json sink (stdout when empty)")
	logLevel := flag.String("log-level", "info", "minimum log severity (debug, info, warn, error)")
	flag.Parse()

	logCfg := logging.DefaultConfig()
	logCfg.EnabledSinks = strings.Split(*logSinks, ",")
	logCfg.JSON.FilePath = *logJSON
	logCfg.Fields = map[string]any{"host": "sand-serve"}
	level, ok := logging.ParseSeverity(*logLevel)
	if !ok {
		log.Fatalf("unknown log level %q", *logLevel)
	}
	logCfg.MinimumSeverity = level

	named, closeSinks, err := sinks.FromConfig(logCfg, os.Stdout)
	if err != nil {
		log.Fatalf("configure logging: %v", err)
	}
	router := logging.NewRouter(nil, logCfg, named)

	seed := cfg.EffectiveSeed()
	world := sand.NewWithConfig(sand.FromMap(cfg.ToMap(seed)))
	world.Reset(0)
	simulation.SceneLoaded(context.Background(), router, 0, "", simulation.SceneLoadedPayload{
		Scene:  world.Config().Scene,
		Seed:   seed,
		Width:  world.Width(),
		Height: world.Height(),
	})

	hubCfg := stream.DefaultHubConfig()
	hubCfg.TPS = cfg.TPS
	hubCfg.Publisher = router
	hub := stream.NewHub(world, hubCfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              *addr,
		Handler:           stream.NewHTTPHandler(hub, stream.HandlerConfig{Publisher: router}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go hub.Run(ctx)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		hub.Close()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("sand-serve listening on %s (%dx%d, scene %s, seed %d)", *addr, world.Width(), world.Height(), world.Config().Scene, seed)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server failed: %v", err)
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := router.Close(closeCtx); err != nil {
		log.Printf("close logging: %v", err)
	}
	if err := closeSinks(); err != nil {
		log.Printf("close log file: %v", err)
	}
}
