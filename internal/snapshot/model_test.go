package snapshot

import (
	"math"
	"testing"
)

func TestPositionArithmetic(t *testing.T) {
	a := Position{X: 1, Y: 2, Z: 3}
	b := Position{X: 4, Y: 6, Z: 3}

	if got := b.Sub(a); got != (Position{X: 3, Y: 4, Z: 0}) {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.Add(b); got != (Position{X: 5, Y: 8, Z: 6}) {
		t.Errorf("Add = %+v", got)
	}
	if got := a.Scale(2); got != (Position{X: 2, Y: 4, Z: 6}) {
		t.Errorf("Scale = %+v", got)
	}
	if got := a.DistanceTo(b); got != 5 {
		t.Errorf("DistanceTo = %v, want 5", got)
	}
	if got := (Position{X: 3, Y: 4}).Norm(); got != 5 {
		t.Errorf("Norm = %v, want 5", got)
	}
}

func TestPositionIsFinite(t *testing.T) {
	tests := []struct {
		name string
		p    Position
		want bool
	}{
		{"origin", Position{}, true},
		{"regular", Position{X: 1, Y: -2, Z: 0.5}, true},
		{"NaN x", Position{X: math.NaN()}, false},
		{"+Inf y", Position{Y: math.Inf(1)}, false},
		{"-Inf z", Position{Z: math.Inf(-1)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.IsFinite(); got != tt.want {
				t.Errorf("IsFinite() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewSeriesCopiesInput(t *testing.T) {
	frames := []Frame{
		{Planet: Position{X: 1}, Satellite: Position{Y: 1}},
		{Planet: Position{X: 2}, Satellite: Position{Y: 2}},
	}
	s := NewSeries(frames)
	frames[0].Planet.X = 99

	if s.Planet(0).X != 1 {
		t.Errorf("series aliased caller's slice: Planet(0).X = %v", s.Planet(0).X)
	}

	out := s.Frames()
	out[1].Satellite.Y = 99
	if s.Satellite(1).Y != 2 {
		t.Errorf("Frames() exposed internal storage: Satellite(1).Y = %v", s.Satellite(1).Y)
	}
}

func TestSeriesIdentity(t *testing.T) {
	a := NewSeries(nil)
	b := NewSeries(nil)
	if a.ID() == "" || a.ID() == b.ID() {
		t.Errorf("expected distinct non-empty IDs, got %q and %q", a.ID(), b.ID())
	}
	if a.LoadedAt().IsZero() {
		t.Error("LoadedAt not set")
	}
}

func TestNilSeries(t *testing.T) {
	var s *Series
	if s.Len() != 0 || !s.Empty() || s.ID() != "" || s.Frames() != nil {
		t.Error("nil series should behave as empty")
	}
	if len(s.Track(Satellite)) != 0 {
		t.Error("nil series track should be empty")
	}
}

func TestTrack(t *testing.T) {
	s := NewSeries([]Frame{
		{Planet: Position{X: 1}, Satellite: Position{X: 10}},
		{Planet: Position{X: 2}, Satellite: Position{X: 20}},
	})

	sat := s.Track(Satellite)
	if len(sat) != 2 || sat[0].X != 10 || sat[1].X != 20 {
		t.Errorf("Track(Satellite) = %+v", sat)
	}
	planet := s.Track(Planet)
	if planet[1].X != 2 {
		t.Errorf("Track(Planet) = %+v", planet)
	}
	if got := s.Track("Moon"); got[0] != (Position{}) {
		t.Errorf("unknown agent should read as origin, got %+v", got[0])
	}
}
