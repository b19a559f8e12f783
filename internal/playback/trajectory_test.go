package playback

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/banshee-data/orbit.report/internal/snapshot"
)

// numberedSeries puts the satellite at X=i in frame i so windows read as
// frame indices.
func numberedSeries(n int) *snapshot.Series {
	frames := make([]snapshot.Frame, n)
	for i := range frames {
		frames[i].Satellite = snapshot.Position{X: float64(i)}
	}
	return snapshot.NewSeries(frames)
}

func indices(ps []snapshot.Position) []int {
	out := make([]int, len(ps))
	for i, p := range ps {
		out[i] = int(p.X)
	}
	return out
}

func seq(from, to int) []int {
	out := []int{}
	for i := from; i < to; i++ {
		out = append(out, i)
	}
	return out
}

func TestTrajectoryWindow(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		current int
		want    []int
	}{
		{"far from end", 20, 3, seq(3, 20)},
		{"exactly ten remaining", 20, 10, seq(10, 20)},
		{"wraps near end", 20, 15, append(seq(15, 20), seq(0, 5)...)},
		{"last frame", 20, 19, append([]int{19}, seq(0, 9)...)},
		{"short series overlaps", 4, 1, append(seq(1, 4), seq(0, 4)...)},
		{"single frame", 1, 0, []int{0, 0}},
		{"ten frames from start", 10, 0, seq(0, 10)},
		{"ten frames from middle", 10, 5, append(seq(5, 10), seq(0, 5)...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := indices(TrajectoryWindow(numberedSeries(tt.length), tt.current))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("window mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTrajectoryWindow_LengthNearEnd(t *testing.T) {
	const length = 30
	s := numberedSeries(length)
	for current := length - LookAhead; current < length; current++ {
		if got := len(TrajectoryWindow(s, current)); got != LookAhead {
			t.Errorf("len(window at %d) = %d, want %d", current, got, LookAhead)
		}
	}
}

func TestTrajectoryWindow_Empty(t *testing.T) {
	tests := []struct {
		name    string
		series  *snapshot.Series
		current int
	}{
		{"nil series", nil, 0},
		{"empty series", snapshot.NewSeries(nil), 0},
		{"negative index", numberedSeries(5), -1},
		{"index past end", numberedSeries(5), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TrajectoryWindow(tt.series, tt.current)
			if got == nil || len(got) != 0 {
				t.Errorf("window = %v, want empty non-nil slice", got)
			}
		})
	}
}

func TestTrajectoryWindowN_CustomLookAhead(t *testing.T) {
	got := indices(TrajectoryWindowN(numberedSeries(8), 6, 4))
	want := []int{6, 7, 0, 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("window mismatch (-want +got):\n%s", diff)
	}
}
