package api

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/banshee-data/orbit.report/internal/analytics"
	"github.com/banshee-data/orbit.report/internal/config"
	"github.com/banshee-data/orbit.report/internal/fsutil"
	"github.com/banshee-data/orbit.report/internal/playback"
	"github.com/banshee-data/orbit.report/internal/snapshot"
)

// ANSI escape codes for request logging
const colorCyan = "\033[36m"
const colorReset = "\033[0m"
const colorYellow = "\033[33m"
const colorBoldGreen = "\033[1;32m"
const colorBoldRed = "\033[1;31m"

// Server exposes the player's tick state, analytics and charts over HTTP.
type Server struct {
	player *playback.Player
	fsys   fsutil.FileSystem
	cfg    *config.OrbitConfig

	// serialises reloads; readers go through the player and never block
	reloadMu sync.Mutex
}

func NewServer(player *playback.Player, fsys fsutil.FileSystem, cfg *config.OrbitConfig) *Server {
	if cfg == nil {
		cfg = config.DefaultOrbitConfig()
	}
	return &Server{
		player: player,
		fsys:   fsys,
		cfg:    cfg,
	}
}

// Reload reads the configured data file and hands the new series to the
// player. On error the current series is left in place.
func (s *Server) Reload() (analytics.Summary, error) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	path := s.cfg.GetDataPath()
	series, err := snapshot.Load(s.fsys, path, s.cfg.Binding())
	if err != nil {
		return analytics.Summary{}, fmt.Errorf("reload %s: %w", path, err)
	}
	return s.player.Load(series), nil
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *loggingResponseWriter) Flush() {
	if flusher, ok := lrw.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

func statusCodeColor(statusCode int) string {
	code := strconv.Itoa(statusCode)
	switch {
	case statusCode >= 200 && statusCode < 300:
		return colorBoldGreen + code + colorReset
	case statusCode >= 300 && statusCode < 400:
		return colorYellow + code + colorReset
	case statusCode >= 400:
		return colorBoldRed + code + colorReset
	default:
		return code
	}
}

// LoggingMiddleware logs status, method, URI and duration of each request.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lrw := &loggingResponseWriter{w, http.StatusOK}
		next.ServeHTTP(lrw, r)
		log.Printf(
			"[api] [%s] %s %s%s%s %vms",
			statusCodeColor(lrw.statusCode), r.Method,
			colorCyan, r.RequestURI, colorReset,
			float64(time.Since(start).Nanoseconds())/1e6,
		)
	})
}

func (s *Server) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/state", s.showState)
	mux.HandleFunc("/api/stats", s.showStats)
	mux.HandleFunc("/api/series", s.showSeries)
	mux.HandleFunc("/api/reload", s.reload)
	mux.HandleFunc("/api/trajectory", s.showTrajectory)
	mux.HandleFunc("/api/config", s.showConfig)
	mux.HandleFunc("/charts/orbit", s.orbitChart)
	mux.HandleFunc("/charts/orbit.png", s.orbitPNG)
	return mux
}
