package playback

import "github.com/banshee-data/orbit.report/internal/snapshot"

// Lerp returns a + (b - a) * factor, computed independently per axis.
// It returns a exactly at factor 0. factor is not clamped.
func Lerp(a, b snapshot.Position, factor float64) snapshot.Position {
	return snapshot.Position{
		X: lerp(a.X, b.X, factor),
		Y: lerp(a.Y, b.Y, factor),
		Z: lerp(a.Z, b.Z, factor),
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// InterpolateFrame interpolates both bodies between frames a and b.
func InterpolateFrame(a, b snapshot.Frame, factor float64) snapshot.Frame {
	return snapshot.Frame{
		Planet:    Lerp(a.Planet, b.Planet, factor),
		Satellite: Lerp(a.Satellite, b.Satellite, factor),
	}
}
