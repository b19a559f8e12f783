// Package playback turns a snapshot series into a looping animation: which
// two frames the current instant falls between, the interpolated body
// positions, and the trajectory ahead of the satellite.
package playback

import (
	"math"

	"github.com/banshee-data/orbit.report/internal/timeutil"
)

// Sample locates a playback instant between two adjacent frames.
type Sample struct {
	Current int     `json:"current"`
	Next    int     `json:"next"`
	Factor  float64 `json:"factor"` // in [0, 1)
}

// SampleAt maps a playback clock value, in frames, onto a series of length
// frames. Playback loops with period length: the clock is reduced modulo
// length into [0, length), Current is its integer part, Next wraps to 0 after
// the last frame and Factor is the fractional part.
//
// ok is false when length is 0; there is nothing to show and the caller
// should skip the tick.
func SampleAt(clock float64, length int) (s Sample, ok bool) {
	if length <= 0 {
		return Sample{}, false
	}

	l := float64(length)
	t := math.Mod(clock, l)
	if t < 0 {
		t += l
	}
	// t + l can round up to exactly l for tiny negative t.
	if t >= l {
		t = 0
	}

	current := int(math.Floor(t))
	return Sample{
		Current: current,
		Next:    (current + 1) % length,
		Factor:  t - float64(current),
	}, true
}

// Sampler derives the playback clock from a Clock. One frame is shown per
// 1/Rate seconds of clock time; the clock's absolute Unix time is used
// directly, so every sampler sharing a clock shows the same frame.
type Sampler struct {
	Clock timeutil.Clock
	Rate  float64 // frames per second; <= 0 means 1
}

// NewSampler returns a Sampler reading clock at rate frames per second.
func NewSampler(clock timeutil.Clock, rate float64) *Sampler {
	return &Sampler{Clock: clock, Rate: rate}
}

// Sample returns the current Sample for a series of length frames.
func (s *Sampler) Sample(length int) (Sample, bool) {
	return SampleAt(s.clockFrames(), length)
}

func (s *Sampler) clockFrames() float64 {
	rate := s.Rate
	if rate <= 0 {
		rate = 1
	}
	return timeutil.UnixSeconds(s.Clock.Now()) * rate
}
