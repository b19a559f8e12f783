package analytics

import "github.com/banshee-data/orbit.report/internal/snapshot"

// Summary holds the analytics for one series. It is computed once per
// loaded series, never per tick.
type Summary struct {
	SeriesID     string        `json:"series_id"`
	Frames       int           `json:"frames"`
	Eccentricity float64       `json:"eccentricity"`
	Velocity     VelocityStats `json:"velocity"`
	VelocityOK   bool          `json:"velocity_ok"`
}

// Summarize computes every analytic for s. velocityScale is passed to Velocity.
func Summarize(s *snapshot.Series, velocityScale float64) Summary {
	v, ok := Velocity(s, velocityScale)
	return Summary{
		SeriesID:     s.ID(),
		Frames:       s.Len(),
		Eccentricity: Eccentricity(s),
		Velocity:     v,
		VelocityOK:   ok,
	}
}
