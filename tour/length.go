package tour

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// roundScale stabilizes summed lengths at 1e-9 so equal tours print equal
// lengths across platforms.
const roundScale = 1e9

// Length sums the distances of consecutive points of path under m.
//
// The path is measured as given: a closed tour repeats its first point at the
// end, an open one does not get an implicit closing edge.
// Paths with fewer than two points have length 0.
//
// Complexity: O(n).
func Length(path orb.LineString, m Metric) float64 {
	if len(path) < 2 {
		return 0
	}
	if m == Planar {
		return round1e9(planar.Length(path))
	}

	var (
		sum float64
		i   int
	)
	for i = 1; i < len(path); i++ {
		sum += m.Distance(path[i-1], path[i])
	}
	return round1e9(sum)
}

func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
