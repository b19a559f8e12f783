// Package chart renders a snapshot series as an x/y plot of both bodies'
// paths: interactive HTML via go-echarts and static PNG via gonum/plot.
package chart

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/orbit.report/internal/snapshot"
)

// maxHTMLPoints bounds the points per series sent to the browser.
const maxHTMLPoints = 5000

// RenderHTML writes a standalone HTML scatter of the planet and satellite
// paths. When trajectory is non-empty it is drawn as a third series.
func RenderHTML(w io.Writer, s *snapshot.Series, trajectory []snapshot.Position) error {
	stride := 1
	if n := s.Len(); n > maxHTMLPoints {
		stride = (n + maxHTMLPoints - 1) / maxHTMLPoints
	}

	planet, sat := s.Track(snapshot.Planet), s.Track(snapshot.Satellite)

	// symmetric axes keep the orbit's shape undistorted on a square chart
	pad := 1.05 * math.Max(maxAbsXY(planet), math.Max(maxAbsXY(sat), maxAbsXY(trajectory)))
	if pad == 0 {
		pad = 1.0
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Orbit", Theme: "dark", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: "Orbit", Subtitle: fmt.Sprintf("series=%s frames=%d stride=%d", s.ID(), s.Len(), stride)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Min: -pad, Max: pad, Name: "X", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Min: -pad, Max: pad, Name: "Y", NameLocation: "middle", NameGap: 30}),
	)

	scatter.AddSeries(string(snapshot.Planet), scatterData(planet, stride),
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 4}))
	scatter.AddSeries(string(snapshot.Satellite), scatterData(sat, stride),
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 3}))
	if len(trajectory) > 0 {
		scatter.AddSeries("Trajectory", scatterData(trajectory, 1),
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}))
	}

	if err := scatter.Render(w); err != nil {
		return fmt.Errorf("render orbit chart: %w", err)
	}
	return nil
}

func scatterData(ps []snapshot.Position, stride int) []opts.ScatterData {
	data := make([]opts.ScatterData, 0, len(ps)/stride+1)
	for i := 0; i < len(ps); i += stride {
		data = append(data, opts.ScatterData{Value: []interface{}{ps[i].X, ps[i].Y}})
	}
	return data
}

// maxAbsXY returns the largest |x| or |y| over finite points.
func maxAbsXY(ps []snapshot.Position) float64 {
	m := 0.0
	for _, p := range ps {
		if !p.IsFinite() {
			continue
		}
		m = math.Max(m, math.Max(math.Abs(p.X), math.Abs(p.Y)))
	}
	return m
}
