// Package snapshot holds the in-memory model of one loaded simulation run:
// an ordered, immutable sequence of Planet/Satellite position frames.
package snapshot

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// AgentID names a tracked body.
type AgentID string

// The two bodies every frame carries.
const (
	Planet    AgentID = "Planet"
	Satellite AgentID = "Satellite"
)

// Position is a point in simulation distance units. Z is 0 for planar runs.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Add returns p + q.
func (p Position) Add(q Position) Position {
	return Position{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Sub returns p - q.
func (p Position) Sub(q Position) Position {
	return Position{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Scale returns p scaled by s.
func (p Position) Scale(s float64) Position {
	return Position{X: p.X * s, Y: p.Y * s, Z: p.Z * s}
}

// Norm returns the Euclidean length of p.
func (p Position) Norm() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Position) DistanceTo(q Position) float64 {
	return q.Sub(p).Norm()
}

// IsFinite reports whether every component is neither NaN nor infinite.
func (p Position) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y) && isFinite(p.Z)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Frame is one discrete time sample of both bodies.
type Frame struct {
	Planet    Position `json:"planet"`
	Satellite Position `json:"satellite"`
}

// Position returns the position of the given agent. Unknown agents yield
// the zero position.
func (f Frame) Position(agent AgentID) Position {
	switch agent {
	case Planet:
		return f.Planet
	case Satellite:
		return f.Satellite
	default:
		return Position{}
	}
}

// Span is the raw simulation time range covered by the input entries.
type Span struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Series is an immutable, ordered sequence of frames for one loaded run.
// Loading new data produces a new Series with a new ID; there is no way to
// mutate one in place. A nil *Series behaves as an empty series.
type Series struct {
	id       string
	loadedAt time.Time
	span     Span
	frames   []Frame
}

// NewSeries builds a Series from a copy of frames.
func NewSeries(frames []Frame) *Series {
	fs := make([]Frame, len(frames))
	copy(fs, frames)
	return &Series{
		id:       uuid.NewString(),
		loadedAt: time.Now(),
		frames:   fs,
	}
}

// ID identifies this series; it changes on every load.
func (s *Series) ID() string {
	if s == nil {
		return ""
	}
	return s.id
}

// LoadedAt is when the series was constructed.
func (s *Series) LoadedAt() time.Time {
	if s == nil {
		return time.Time{}
	}
	return s.loadedAt
}

// Span returns the raw time range of the source entries.
func (s *Series) Span() Span {
	if s == nil {
		return Span{}
	}
	return s.span
}

// Len returns the number of frames.
func (s *Series) Len() int {
	if s == nil {
		return 0
	}
	return len(s.frames)
}

// Empty reports whether the series has no frames.
func (s *Series) Empty() bool {
	return s.Len() == 0
}

// Frame returns frame i. It panics if i is out of range.
func (s *Series) Frame(i int) Frame {
	return s.frames[i]
}

// Planet returns the planet position at frame i.
func (s *Series) Planet(i int) Position {
	return s.frames[i].Planet
}

// Satellite returns the satellite position at frame i.
func (s *Series) Satellite(i int) Position {
	return s.frames[i].Satellite
}

// Frames returns a copy of all frames.
func (s *Series) Frames() []Frame {
	if s == nil {
		return nil
	}
	out := make([]Frame, len(s.frames))
	copy(out, s.frames)
	return out
}

// Track returns the positions of one agent across all frames, in order.
func (s *Series) Track(agent AgentID) []Position {
	out := make([]Position, s.Len())
	for i := range out {
		out[i] = s.frames[i].Position(agent)
	}
	return out
}
