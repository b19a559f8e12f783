package analytics

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/banshee-data/orbit.report/internal/monitoring"
	"github.com/banshee-data/orbit.report/internal/snapshot"
)

// VelocityStats summarises the satellite's per-step speed, in km/s when the
// default scale is used.
type VelocityStats struct {
	Average float64 `json:"average"`
	Max     float64 `json:"max"`
	Min     float64 `json:"min"`
	Samples int     `json:"samples"` // finite steps aggregated
	Skipped int     `json:"skipped"` // non-finite steps left out
}

// Velocity computes speed statistics from consecutive satellite positions.
// Each step's displacement length is multiplied by scale (for example
// units.SimStepToKMPS). Non-finite steps are skipped rather than counted as
// zero. Average divides by the number of steps, len-1, whether or not any
// were skipped.
//
// ok is false when the series has fewer than two frames or no finite step.
func Velocity(s *snapshot.Series, scale float64) (stats VelocityStats, ok bool) {
	n := s.Len()
	if n <= 1 {
		return VelocityStats{}, false
	}

	speeds := make([]float64, 0, n-1)
	for i := 1; i < n; i++ {
		v := s.Satellite(i).Sub(s.Satellite(i-1)).Norm() * scale
		if math.IsNaN(v) || math.IsInf(v, 0) {
			monitoring.Warnf("velocity: step %d->%d is %v, skipping", i-1, i, v)
			stats.Skipped++
			continue
		}
		speeds = append(speeds, v)
	}

	if len(speeds) == 0 {
		monitoring.Warnf("velocity: no finite steps in %d frames", n)
		return stats, false
	}

	stats.Average = floats.Sum(speeds) / float64(n-1)
	stats.Max = floats.Max(speeds)
	stats.Min = floats.Min(speeds)
	stats.Samples = len(speeds)
	return stats, true
}
