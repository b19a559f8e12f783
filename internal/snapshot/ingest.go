package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math"

	"github.com/banshee-data/orbit.report/internal/fsutil"
)

// MaxFileSize caps the snapshot file size accepted by Load.
const MaxFileSize = 64 * 1024 * 1024

var (
	// ErrMalformedEntry is returned when the document is not a list of
	// [t0, t1, {agentId: state}] entries.
	ErrMalformedEntry = errors.New("malformed snapshot entry")

	// ErrMissingAgent is returned when a bound agent key never appears in a
	// non-empty document.
	ErrMissingAgent = errors.New("agent missing from snapshot data")
)

// Binding maps the input's agent identifiers onto the Planet and Satellite
// roles. Roles are always resolved by key, never by the order keys appear in.
type Binding struct {
	PlanetKey    string
	SatelliteKey string
}

// DefaultBinding binds the "Planet" and "Satellite" keys.
func DefaultBinding() Binding {
	return Binding{PlanetKey: string(Planet), SatelliteKey: string(Satellite)}
}

func (b Binding) withDefaults() Binding {
	d := DefaultBinding()
	if b.PlanetKey == "" {
		b.PlanetKey = d.PlanetKey
	}
	if b.SatelliteKey == "" {
		b.SatelliteKey = d.SatelliteKey
	}
	return b
}

// Load reads and parses a snapshot file from fsys.
func Load(fsys fsutil.FileSystem, path string, bind Binding) (*Series, error) {
	data, err := fsutil.ReadFileLimited(fsys, path, MaxFileSize)
	if err != nil {
		return nil, err
	}
	s, err := ParseBytes(data, bind)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	log.Printf("[snapshot] loaded %s: %d frames, span %.3f..%.3f, id=%s",
		path, s.Len(), s.span.Start, s.span.End, s.id)
	return s, nil
}

// Parse decodes a snapshot document from r. See ParseBytes.
func Parse(r io.Reader, bind Binding) (*Series, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read snapshot data: %w", err)
	}
	return ParseBytes(data, bind)
}

// ParseBytes flattens a JSON list of [t0, t1, {agentId: {x, y, z?}}] entries
// into a Series. Each entry contributes the bound agents it contains to their
// per-agent position lists; frame i pairs the i-th planet position with the
// i-th satellite position. When one list is shorter, the missing body is at
// the origin for the trailing frames. Missing or non-numeric coordinates read
// as 0 and keys other than the two bound ones are ignored.
//
// An empty list yields an empty Series.
func ParseBytes(data []byte, bind Binding) (*Series, error) {
	bind = bind.withDefaults()

	var entries []json.RawMessage
	if err := json.Unmarshal(bytes.TrimSpace(data), &entries); err != nil {
		return nil, fmt.Errorf("%w: document is not a list: %v", ErrMalformedEntry, err)
	}
	if entries == nil {
		return nil, fmt.Errorf("%w: document is null", ErrMalformedEntry)
	}
	if len(entries) == 0 {
		return NewSeries(nil), nil
	}

	var (
		planets    []Position
		satellites []Position
		span       = Span{Start: math.Inf(1), End: math.Inf(-1)}
	)

	for i, raw := range entries {
		var parts []json.RawMessage
		if err := json.Unmarshal(raw, &parts); err != nil || len(parts) < 3 {
			return nil, fmt.Errorf("%w: entry %d is not [t0, t1, frame]", ErrMalformedEntry, i)
		}

		var agents map[string]json.RawMessage
		if err := json.Unmarshal(parts[2], &agents); err != nil {
			return nil, fmt.Errorf("%w: entry %d frame is not an object", ErrMalformedEntry, i)
		}

		// non-numeric timestamps do not contribute to the span
		if t0, ok := numberOK(parts[0]); ok {
			span.Start = math.Min(span.Start, t0)
		}
		if t1, ok := numberOK(parts[1]); ok {
			span.End = math.Max(span.End, t1)
		}

		if state, ok := agents[bind.PlanetKey]; ok {
			planets = append(planets, decodePosition(state))
		}
		if state, ok := agents[bind.SatelliteKey]; ok {
			satellites = append(satellites, decodePosition(state))
		}
	}

	if len(planets) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingAgent, bind.PlanetKey)
	}
	if len(satellites) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingAgent, bind.SatelliteKey)
	}

	n := max(len(planets), len(satellites))
	frames := make([]Frame, n)
	for i := range frames {
		if i < len(planets) {
			frames[i].Planet = planets[i]
		}
		if i < len(satellites) {
			frames[i].Satellite = satellites[i]
		}
	}

	if math.IsInf(span.Start, 1) {
		span.Start = 0
	}
	if math.IsInf(span.End, -1) {
		span.End = span.Start
	}

	s := NewSeries(frames)
	s.span = span
	return s, nil
}

// decodePosition reads x, y and z from an agent state object. Anything that
// is not a JSON number reads as 0, including a state that is not an object.
func decodePosition(raw json.RawMessage) Position {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Position{}
	}
	return Position{
		X: number(fields["x"]),
		Y: number(fields["y"]),
		Z: number(fields["z"]),
	}
}

func number(raw json.RawMessage) float64 {
	v, _ := numberOK(raw)
	return v
}

// numberOK decodes a JSON number. null, strings and other values are not
// numbers.
func numberOK(raw json.RawMessage) (float64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, false
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, false
	}
	return v, true
}
