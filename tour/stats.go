package tour

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/tourplot/tsplib"
)

// Stats describes a resolved tour relative to its coordinate map.
type Stats struct {
	// Points is the number of tour entries (= path vertices).
	Points int

	// Distinct is the number of different nodes visited.
	Distinct int

	// Revisits counts entries naming an already visited node, not counting
	// the final entry of a closed tour.
	Revisits int

	// Missing counts coordinate nodes the tour never visits.
	Missing int

	// Closed reports whether the tour ends on the node it started from.
	Closed bool

	// Coverage is Distinct / len(coords), in [0,1]; 0 for an empty map.
	Coverage float64

	// Length is the path length under Metric.
	Length float64
	Metric Metric

	// Crossings is the number of self-intersecting edge pairs.
	Crossings int

	// Bound is the bounding box of the path; zero for an empty path.
	Bound orb.Bound
}

// Hamiltonian reports whether the tour is a closed cycle visiting every node
// of the map exactly once.
func (s Stats) Hamiltonian() bool {
	return s.Closed && s.Revisits == 0 && s.Missing == 0 && s.Points > 1
}

// String renders a one-line summary.
func (s Stats) String() string {
	return fmt.Sprintf("points=%d distinct=%d closed=%t revisits=%d missing=%d length=%g (%s) crossings=%d",
		s.Points, s.Distinct, s.Closed, s.Revisits, s.Missing, s.Length, s.Metric, s.Crossings)
}

// Summarize computes Stats for the tour ids, their resolved path and the
// coordinate map they were resolved against.
//
// ids and path are expected to come from tsplib.ReadTour and tsplib.Resolve;
// signs are ignored again here so raw ids give the same answer.
//
// Complexity: O(n log n) dominated by Crossings.
func Summarize(ids []int, path orb.LineString, coords tsplib.CoordinateMap, m Metric) Stats {
	st := Stats{
		Points: len(ids),
		Metric: m,
	}
	if len(ids) == 0 {
		st.Missing = len(coords)
		return st
	}

	var (
		seen = make(map[int]struct{}, len(ids))
		last = len(ids) - 1
		id   int
	)
	st.Closed = len(ids) > 1 && abs(ids[0]) == abs(ids[last])

	for i, raw := range ids {
		id = abs(raw)
		if _, ok := seen[id]; ok {
			if !(st.Closed && i == last) {
				st.Revisits++
			}
			continue
		}
		seen[id] = struct{}{}
	}
	st.Distinct = len(seen)

	for key := range coords {
		if key != float64(int(key)) {
			st.Missing++
			continue
		}
		if _, ok := seen[int(key)]; !ok {
			st.Missing++
		}
	}
	if len(coords) > 0 {
		st.Coverage = float64(len(coords)-st.Missing) / float64(len(coords))
	}

	if len(path) > 0 {
		st.Bound = path.Bound()
	}
	st.Length = Length(path, m)
	st.Crossings = Crossings(path)
	return st
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
