package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/banshee-data/orbit.report/internal/api"
	"github.com/banshee-data/orbit.report/internal/config"
	"github.com/banshee-data/orbit.report/internal/fsutil"
	"github.com/banshee-data/orbit.report/internal/playback"
	"github.com/banshee-data/orbit.report/internal/timeutil"
	"github.com/banshee-data/orbit.report/internal/version"
)

// devDataPath is the bundled elliptical orbit served with -dev.
const devDataPath = "fixtures/orbit.json"

var (
	devMode    = flag.Bool("dev", false, "Serve the bundled fixture orbit instead of -data")
	listen     = flag.String("listen", ":8080", "Listen address")
	dataPath   = flag.String("data", "", "Snapshot JSON file (overrides data_path)")
	configPath = flag.String("config", "", "Orbit config JSON (default "+config.DefaultConfigPath+" if present)")
	unitsFlag  = flag.String("units", "", "Display units for /api/stats (overrides display_units)")
)

func main() {
	flag.Parse()

	if *listen == "" {
		log.Fatal("Listen address is required")
	}

	fsys := fsutil.OSFileSystem{}
	cfg, err := config.LoadOrDefault(fsys, *configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	data := *dataPath
	if *devMode {
		data = devDataPath
	}
	if err := cfg.ApplyOverrides(data, *unitsFlag); err != nil {
		log.Fatalf("invalid flags: %v", err)
	}

	player := playback.NewPlayer(timeutil.RealClock{}, playback.Options{
		Rate:          cfg.GetPlaybackRate(),
		LookAhead:     cfg.GetTrajectoryLookAhead(),
		VelocityScale: cfg.GetVelocityScale(),
	})
	srv := api.NewServer(player, fsys, cfg)

	// start empty rather than refuse to serve; /api/reload can recover
	if sum, err := srv.Reload(); err != nil {
		log.Printf("failed to load snapshot data, starting empty: %v", err)
	} else {
		log.Printf("loaded series %s: %d frames, eccentricity %.3f", sum.SeriesID, sum.Frames, sum.Eccentricity)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mux := srv.ServeMux()
	srv.AttachAdminRoutes(mux)

	server := &http.Server{
		Addr:    *listen,
		Handler: api.LoggingMiddleware(mux),
	}

	go func() {
		log.Printf("orbit-server %s listening on %s", version.String(), *listen)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
		if err := server.Close(); err != nil {
			log.Printf("HTTP server force close error: %v", err)
		}
	}

	log.Printf("Graceful shutdown complete")
}
