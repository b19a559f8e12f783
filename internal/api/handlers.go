package api

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/orbit.report/internal/analytics"
	"github.com/banshee-data/orbit.report/internal/chart"
	"github.com/banshee-data/orbit.report/internal/config"
	"github.com/banshee-data/orbit.report/internal/httputil"
	"github.com/banshee-data/orbit.report/internal/snapshot"
	"github.com/banshee-data/orbit.report/internal/units"
	"github.com/banshee-data/orbit.report/internal/version"
)

const noSeriesMsg = "no series loaded"

// pngSize is the edge length of /charts/orbit.png.
const pngSize = 8 * vg.Inch

type velocityResponse struct {
	Average     float64 `json:"average"`
	Max         float64 `json:"max"`
	Min         float64 `json:"min"`
	AverageText string  `json:"average_text"`
	MaxText     string  `json:"max_text"`
	MinText     string  `json:"min_text"`
	Samples     int     `json:"samples"`
	Skipped     int     `json:"skipped"`
}

type statsResponse struct {
	SeriesID         string            `json:"series_id"`
	Frames           int               `json:"frames"`
	Eccentricity     float64           `json:"eccentricity"`
	EccentricityText string            `json:"eccentricity_text"`
	Units            string            `json:"units"`
	UnitLabel        string            `json:"unit_label"`
	Velocity         *velocityResponse `json:"velocity"` // null when there are too few frames
}

type seriesResponse struct {
	ID       string        `json:"id"`
	Frames   int           `json:"frames"`
	LoadedAt time.Time     `json:"loaded_at"`
	Span     snapshot.Span `json:"span"`
}

type configResponse struct {
	Config  *config.OrbitConfig `json:"config"`
	Version version.Info        `json:"version"`
}

func newStatsResponse(sum analytics.Summary, unit string, precision int) statsResponse {
	resp := statsResponse{
		SeriesID:         sum.SeriesID,
		Frames:           sum.Frames,
		Eccentricity:     sum.Eccentricity,
		EccentricityText: units.Format(sum.Eccentricity, precision),
		Units:            unit,
		UnitLabel:        units.Label(unit),
	}
	if sum.VelocityOK {
		v := &velocityResponse{
			Average: units.ConvertSpeed(sum.Velocity.Average, unit),
			Max:     units.ConvertSpeed(sum.Velocity.Max, unit),
			Min:     units.ConvertSpeed(sum.Velocity.Min, unit),
			Samples: sum.Velocity.Samples,
			Skipped: sum.Velocity.Skipped,
		}
		v.AverageText = units.Format(v.Average, precision)
		v.MaxText = units.Format(v.Max, precision)
		v.MinText = units.Format(v.Min, precision)
		resp.Velocity = v
	}
	return resp
}

func (s *Server) showState(w http.ResponseWriter, r *http.Request) {
	if !httputil.RequireMethod(w, r, http.MethodGet) {
		return
	}
	state, ok := s.player.Tick()
	if !ok {
		httputil.NoContent(w)
		return
	}
	httputil.WriteJSONOK(w, state)
}

func (s *Server) showStats(w http.ResponseWriter, r *http.Request) {
	if !httputil.RequireMethod(w, r, http.MethodGet) {
		return
	}

	unit := s.cfg.GetDisplayUnits()
	if u := r.URL.Query().Get("units"); u != "" {
		if !units.IsValid(u) {
			httputil.BadRequest(w, "invalid 'units' parameter, must be one of: "+units.GetValidUnitsString())
			return
		}
		unit = u
	}

	sum, ok := s.player.Summary()
	if !ok {
		httputil.ServiceUnavailable(w, noSeriesMsg)
		return
	}
	httputil.WriteJSONOK(w, newStatsResponse(sum, unit, s.cfg.GetDisplayPrecision()))
}

func (s *Server) showSeries(w http.ResponseWriter, r *http.Request) {
	if !httputil.RequireMethod(w, r, http.MethodGet) {
		return
	}
	series := s.player.Series()
	if series == nil {
		httputil.ServiceUnavailable(w, noSeriesMsg)
		return
	}
	httputil.WriteJSONOK(w, seriesResponse{
		ID:       series.ID(),
		Frames:   series.Len(),
		LoadedAt: series.LoadedAt(),
		Span:     series.Span(),
	})
}

func (s *Server) reload(w http.ResponseWriter, r *http.Request) {
	if !httputil.RequireMethod(w, r, http.MethodPost) {
		return
	}
	sum, err := s.Reload()
	if err != nil {
		log.Printf("[api] reload failed, keeping current series: %v", err)
		httputil.InternalServerError(w, err.Error())
		return
	}
	httputil.WriteJSONOK(w, newStatsResponse(sum, s.cfg.GetDisplayUnits(), s.cfg.GetDisplayPrecision()))
}

func (s *Server) showTrajectory(w http.ResponseWriter, r *http.Request) {
	if !httputil.RequireMethod(w, r, http.MethodGet) {
		return
	}
	index, err := strconv.Atoi(r.URL.Query().Get("index"))
	if err != nil {
		httputil.BadRequest(w, "invalid 'index' parameter")
		return
	}
	if s.player.Series() == nil {
		httputil.ServiceUnavailable(w, noSeriesMsg)
		return
	}
	httputil.WriteJSONOK(w, s.player.Trajectory(index))
}

func (s *Server) showConfig(w http.ResponseWriter, r *http.Request) {
	if !httputil.RequireMethod(w, r, http.MethodGet) {
		return
	}
	httputil.WriteJSONOK(w, configResponse{Config: s.cfg, Version: version.Current()})
}

func (s *Server) orbitChart(w http.ResponseWriter, r *http.Request) {
	if !httputil.RequireMethod(w, r, http.MethodGet) {
		return
	}
	series := s.player.Series()
	if series.Empty() {
		httputil.ServiceUnavailable(w, noSeriesMsg)
		return
	}

	var trajectory []snapshot.Position
	if state, ok := s.player.Tick(); ok {
		trajectory = state.Trajectory
	}

	var buf bytes.Buffer
	if err := chart.RenderHTML(&buf, series, trajectory); err != nil {
		httputil.InternalServerError(w, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := io.Copy(w, &buf); err != nil {
		log.Printf("[api] failed to write orbit chart: %v", err)
	}
}

func (s *Server) orbitPNG(w http.ResponseWriter, r *http.Request) {
	if !httputil.RequireMethod(w, r, http.MethodGet) {
		return
	}
	series := s.player.Series()
	if series.Empty() {
		httputil.ServiceUnavailable(w, noSeriesMsg)
		return
	}

	var buf bytes.Buffer
	if err := chart.WritePNG(&buf, series, pngSize); err != nil {
		httputil.InternalServerError(w, err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if _, err := io.Copy(w, &buf); err != nil {
		log.Printf("[api] failed to write orbit png: %v", err)
	}
}
