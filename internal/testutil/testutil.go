// Package testutil provides shared test helpers and orbit fixtures.
package testutil

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/banshee-data/orbit.report/internal/snapshot"
)

// AssertStatusCode checks that the response status code matches expected.
func AssertStatusCode(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("status code = %d, want %d", got, want)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// DecodeJSON decodes the recorder body into v, failing the test on error.
func DecodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
}

// Serve runs a request through h and returns the recorder.
func Serve(h http.Handler, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

// CircularSeries returns n frames of a satellite on a circle of the given
// radius around a planet fixed at the origin.
func CircularSeries(n int, radius float64) *snapshot.Series {
	frames := make([]snapshot.Frame, n)
	for i := range frames {
		frames[i].Satellite = circlePoint(i, n, radius)
	}
	return snapshot.NewSeries(frames)
}

// SimulatorJSON encodes n steps in the simulator's output layout: the first
// entry carries both bodies, later entries carry one body each.
func SimulatorJSON(n int, radius float64) []byte {
	type entry [3]interface{}
	var entries []entry
	for i := 0; i < n; i++ {
		t0, t1 := float64(i), float64(i+1)
		planet := map[string]float64{"x": 0, "y": 0, "z": 0}
		sat := circlePoint(i, n, radius)
		satJSON := map[string]float64{"x": sat.X, "y": sat.Y, "z": sat.Z}
		if i == 0 {
			entries = append(entries, entry{t0, t1, map[string]interface{}{
				string(snapshot.Planet):    planet,
				string(snapshot.Satellite): satJSON,
			}})
			continue
		}
		entries = append(entries,
			entry{t0, t1, map[string]interface{}{string(snapshot.Planet): planet}},
			entry{t0, t1, map[string]interface{}{string(snapshot.Satellite): satJSON}},
		)
	}
	data, err := json.Marshal(entries)
	if err != nil {
		panic(err)
	}
	return data
}

func circlePoint(i, n int, radius float64) snapshot.Position {
	theta := 2 * math.Pi * float64(i) / float64(n)
	return snapshot.Position{X: radius * math.Cos(theta), Y: radius * math.Sin(theta)}
}
