package playback

import (
	"log"
	"sync/atomic"

	"github.com/banshee-data/orbit.report/internal/analytics"
	"github.com/banshee-data/orbit.report/internal/snapshot"
	"github.com/banshee-data/orbit.report/internal/timeutil"
	"github.com/banshee-data/orbit.report/internal/units"
)

// Options configures a Player.
type Options struct {
	Rate          float64 // frames per second of clock time
	LookAhead     int     // trajectory wrap length
	VelocityScale float64 // passed to analytics.Velocity
}

// DefaultOptions returns one frame per second, a 10 point look-ahead and the
// km/s velocity scale.
func DefaultOptions() Options {
	return Options{
		Rate:          1,
		LookAhead:     LookAhead,
		VelocityScale: units.SimStepToKMPS,
	}
}

// State is everything a renderer needs for one tick.
type State struct {
	SeriesID   string              `json:"series_id"`
	Sample     Sample              `json:"sample"`
	Planet     snapshot.Position   `json:"planet"`
	Satellite  snapshot.Position   `json:"satellite"`
	Trajectory []snapshot.Position `json:"trajectory"`
}

// dataset pairs a series with the analytics computed from it so readers
// never see one without the other.
type dataset struct {
	series  *snapshot.Series
	summary analytics.Summary
}

// Player drives tick-by-tick playback of the most recently loaded series.
// Load swaps the whole dataset at once; the last Load wins. Tick and the
// accessors are safe to call from any goroutine.
type Player struct {
	sampler   *Sampler
	lookAhead int
	scale     float64
	current   atomic.Pointer[dataset]
}

// NewPlayer creates a Player with no data loaded.
func NewPlayer(clock timeutil.Clock, opts Options) *Player {
	d := DefaultOptions()
	if opts.Rate <= 0 {
		opts.Rate = d.Rate
	}
	if opts.LookAhead <= 0 {
		opts.LookAhead = d.LookAhead
	}
	if opts.VelocityScale <= 0 {
		opts.VelocityScale = d.VelocityScale
	}
	return &Player{
		sampler:   NewSampler(clock, opts.Rate),
		lookAhead: opts.LookAhead,
		scale:     opts.VelocityScale,
	}
}

// Load replaces the current series and recomputes its analytics. It returns
// the new summary.
func (p *Player) Load(s *snapshot.Series) analytics.Summary {
	ds := &dataset{
		series:  s,
		summary: analytics.Summarize(s, p.scale),
	}
	prev := p.current.Swap(ds)
	if prev != nil {
		log.Printf("[playback] replaced series %s (%d frames) with %s (%d frames)",
			prev.series.ID(), prev.series.Len(), s.ID(), s.Len())
	} else {
		log.Printf("[playback] loaded series %s (%d frames)", s.ID(), s.Len())
	}
	return ds.summary
}

// Series returns the current series, or nil before the first Load.
func (p *Player) Series() *snapshot.Series {
	ds := p.current.Load()
	if ds == nil {
		return nil
	}
	return ds.series
}

// Summary returns the analytics of the current series. ok is false before
// the first Load.
func (p *Player) Summary() (analytics.Summary, bool) {
	ds := p.current.Load()
	if ds == nil {
		return analytics.Summary{}, false
	}
	return ds.summary, true
}

// Tick samples the clock and returns the interpolated positions and the
// trajectory window. ok is false when no non-empty series is loaded; the
// caller should draw nothing for this tick.
func (p *Player) Tick() (State, bool) {
	ds := p.current.Load()
	if ds == nil {
		return State{}, false
	}
	s := ds.series

	sample, ok := p.sampler.Sample(s.Len())
	if !ok {
		return State{}, false
	}

	f := InterpolateFrame(s.Frame(sample.Current), s.Frame(sample.Next), sample.Factor)
	return State{
		SeriesID:   s.ID(),
		Sample:     sample,
		Planet:     f.Planet,
		Satellite:  f.Satellite,
		Trajectory: TrajectoryWindowN(s, sample.Current, p.lookAhead),
	}, true
}

// Trajectory returns the trajectory window of the current series at frame
// index, using the configured look-ahead.
func (p *Player) Trajectory(index int) []snapshot.Position {
	return TrajectoryWindowN(p.Series(), index, p.lookAhead)
}
