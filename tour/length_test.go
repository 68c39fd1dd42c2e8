package tour_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/tourplot/tour"
)

// att5 holds the first five att48 cities keyed by id.
var att5 = map[int]orb.Point{
	1: {6734, 1453},
	2: {2233, 10},
	3: {5530, 1424},
	4: {401, 841},
	5: {3082, 1644},
}

func pathOf(pts map[int]orb.Point, ids ...int) orb.LineString {
	ls := make(orb.LineString, 0, len(ids))
	for _, id := range ids {
		ls = append(ls, pts[id])
	}
	return ls
}

// TestLength_Att sums ATT distances over a closed tour.
func TestLength_Att(t *testing.T) {
	assert.Equal(t, 4196.0, tour.Length(pathOf(att5, 1, 3, 2, 4, 5, 1), tour.Att))
	assert.Equal(t, 4177.0, tour.Length(pathOf(att5, 1, 3, 5, 4, 2, 1), tour.Att))
}

// TestLength_Planar measures a unit square loop exactly.
func TestLength_Planar(t *testing.T) {
	sq := orb.LineString{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}
	assert.Equal(t, 4.0, tour.Length(sq, tour.Planar))

	// No implicit closing edge.
	assert.Equal(t, 3.0, tour.Length(sq[:4], tour.Planar))
}

// TestLength_Degenerate returns 0 below two points.
func TestLength_Degenerate(t *testing.T) {
	assert.Zero(t, tour.Length(nil, tour.Euc2D))
	assert.Zero(t, tour.Length(orb.LineString{{3, 4}}, tour.Euc2D))
}
