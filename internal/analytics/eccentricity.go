// Package analytics derives whole-series orbital statistics from a snapshot
// series. Every function is pure; results never contain NaN.
package analytics

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/banshee-data/orbit.report/internal/monitoring"
	"github.com/banshee-data/orbit.report/internal/snapshot"
)

// Distances returns the Planet-Satellite separation for every frame.
func Distances(s *snapshot.Series) []float64 {
	d := make([]float64, s.Len())
	for i := range d {
		f := s.Frame(i)
		d[i] = f.Planet.DistanceTo(f.Satellite)
	}
	return d
}

// Eccentricity estimates orbital eccentricity from the largest (apoapsis
// proxy, ra) and smallest (periapsis proxy, rp) separations in the series as
// (ra - rp) / (ra + rp).
//
// The estimate is only as good as the sampling and assumes the series covers
// at least one full orbit; that is not checked. An empty series yields 0. A
// non-finite separation, or a series where every separation is zero, also
// yields 0 and is reported through monitoring.Warnf.
func Eccentricity(s *snapshot.Series) float64 {
	if s.Len() == 0 {
		return 0
	}

	d := Distances(s)
	for i, v := range d {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			monitoring.Warnf("eccentricity: separation at frame %d is %v, reporting 0", i, v)
			return 0
		}
	}

	ra := floats.Max(d)
	rp := floats.Min(d)
	if ra+rp == 0 {
		monitoring.Warnf("eccentricity: all %d separations are zero, reporting 0", len(d))
		return 0
	}
	return (ra - rp) / (ra + rp)
}
