package playback

import "github.com/banshee-data/orbit.report/internal/snapshot"

// LookAhead is the number of points the trajectory window keeps ahead of the
// satellite when it nears the end of the series.
const LookAhead = 10

// TrajectoryWindow returns the satellite path from frame current to the end
// of the series, wrapped onto the start of the series while current is
// within the last LookAhead frames. See TrajectoryWindowN.
func TrajectoryWindow(s *snapshot.Series, current int) []snapshot.Position {
	return TrajectoryWindowN(s, current, LookAhead)
}

// TrajectoryWindowN returns satellite positions s[current:] followed, when
// fewer than lookAhead frames remain, by the first lookAhead-(len-current)
// positions of the series. The wrapped part is capped at the series length,
// so for series no longer than lookAhead it can repeat points already in the
// window.
//
// An empty series or an out-of-range current yields an empty window.
func TrajectoryWindowN(s *snapshot.Series, current, lookAhead int) []snapshot.Position {
	n := s.Len()
	if n == 0 || current < 0 || current >= n {
		return []snapshot.Position{}
	}

	remaining := n - current
	wrap := 0
	if remaining < lookAhead {
		wrap = min(lookAhead-remaining, n)
	}

	window := make([]snapshot.Position, 0, remaining+wrap)
	for i := current; i < n; i++ {
		window = append(window, s.Satellite(i))
	}
	for i := 0; i < wrap; i++ {
		window = append(window, s.Satellite(i))
	}
	return window
}
