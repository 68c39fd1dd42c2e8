package tour_test

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/tourplot/tour"
)

func TestCrossings(t *testing.T) {
	cases := []struct {
		name string
		path orb.LineString
		want int
	}{
		{"empty", nil, 0},
		{"triangle", orb.LineString{{0, 0}, {1, 0}, {0, 1}, {0, 0}}, 0},
		{"square", orb.LineString{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}, 0},
		{"bow tie", orb.LineString{{0, 0}, {1, 1}, {1, 0}, {0, 1}, {0, 0}}, 1},
		{"axis-aligned cross", orb.LineString{{0, 1}, {2, 1}, {2, 0}, {1, 0}, {1, 2}}, 1},
		{"collinear touch", orb.LineString{{0, 0}, {2, 0}, {2, 1}, {1, 1}, {1, 0}}, 1},
		{"non-finite edge skipped", orb.LineString{{0, 0}, {1, 1}, {1, 0}, {0, 1}, {0, 0}, {math.NaN(), 0}, {math.Inf(1), 5}}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tour.Crossings(tc.path))
		})
	}
}

// TestCrossings_Star counts the five crossings of a pentagram.
func TestCrossings_Star(t *testing.T) {
	var ring [5]orb.Point
	for i := range ring {
		th := 2 * math.Pi * float64(i) / 5
		ring[i] = orb.Point{math.Cos(th), math.Sin(th)}
	}
	star := orb.LineString{ring[0], ring[2], ring[4], ring[1], ring[3], ring[0]}
	assert.Equal(t, 5, tour.Crossings(star))
}
