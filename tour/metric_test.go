package tour_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/tourplot/tour"
)

// TestParseMetric maps TSPLIB names and falls back to Planar.
func TestParseMetric(t *testing.T) {
	cases := map[string]tour.Metric{
		"EUC_2D":   tour.Euc2D,
		" euc_2d ": tour.Euc2D,
		"CEIL_2D":  tour.Ceil2D,
		"MAN_2D":   tour.Man2D,
		"MAX_2D":   tour.Max2D,
		"ATT":      tour.Att,
		"GEO":      tour.Geo,
		"EXPLICIT": tour.Planar,
		"":         tour.Planar,
	}
	for in, want := range cases {
		assert.Equal(t, want, tour.ParseMetric(in), "ParseMetric(%q)", in)
	}
	assert.Equal(t, "ATT", tour.Att.String())
	assert.Equal(t, "PLANAR", tour.Metric(99).String())
}

// TestMetric_Distance checks each metric on one att48 edge (nodes 1 and 2).
func TestMetric_Distance(t *testing.T) {
	a := orb.Point{6734, 1453}
	b := orb.Point{2233, 10}

	assert.InDelta(t, 4726.653149957166, tour.Planar.Distance(a, b), 1e-9)
	assert.Equal(t, 4727.0, tour.Euc2D.Distance(a, b))
	assert.Equal(t, 4727.0, tour.Ceil2D.Distance(a, b))
	assert.Equal(t, 5944.0, tour.Man2D.Distance(a, b))
	assert.Equal(t, 4501.0, tour.Max2D.Distance(a, b))
	assert.Equal(t, 1495.0, tour.Att.Distance(a, b))
}

// TestMetric_Rounding separates nearest from ceiling.
func TestMetric_Rounding(t *testing.T) {
	a := orb.Point{0, 0}
	b := orb.Point{1, 1} // sqrt(2) ≈ 1.414

	assert.Equal(t, 1.0, tour.Euc2D.Distance(a, b))
	assert.Equal(t, 2.0, tour.Ceil2D.Distance(a, b))
	assert.Equal(t, 0.0, tour.Euc2D.Distance(a, a))
}

// TestMetric_Geo reproduces burma14 matrix entries d(1,2)=153 and d(1,3)=510.
func TestMetric_Geo(t *testing.T) {
	n1 := orb.Point{16.47, 96.10}
	n2 := orb.Point{16.47, 94.44}
	n3 := orb.Point{20.09, 92.54}

	assert.Equal(t, 153.0, tour.Geo.Distance(n1, n2))
	assert.Equal(t, 510.0, tour.Geo.Distance(n1, n3))
}
