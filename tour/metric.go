// SPDX-License-Identifier: MIT
// Package: tourplot/tour
//
// metric.go - TSPLIB EDGE_WEIGHT_TYPE distance functions.
//
// Contract:
//   - Integer metrics round the way TSPLIB does (nint = trunc(x+0.5)).
//   - Unknown or missing types fall back to exact planar distance.

package tour

import (
	"math"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Metric selects the distance function used to measure an edge.
type Metric int

const (
	// Planar is the exact floating-point Euclidean distance.
	// It is used when the instance names no metric or an unknown one.
	Planar Metric = iota

	// Euc2D is the TSPLIB EUC_2D distance: Euclidean rounded to nearest.
	Euc2D

	// Ceil2D is the TSPLIB CEIL_2D distance: Euclidean rounded up.
	Ceil2D

	// Man2D is the TSPLIB MAN_2D distance: Manhattan rounded to nearest.
	Man2D

	// Max2D is the TSPLIB MAX_2D distance: the larger rounded axis delta.
	Max2D

	// Att is the TSPLIB ATT pseudo-Euclidean distance (att48, att532).
	Att

	// Geo is the TSPLIB GEO distance: x is latitude, y longitude, both in
	// DDD.MM degrees; the result is in whole kilometres.
	Geo
)

// earthRadius is the idealized sphere radius TSPLIB uses for GEO, in km.
const earthRadius = 6378.388

var metricNames = map[Metric]string{
	Planar: "PLANAR",
	Euc2D:  "EUC_2D",
	Ceil2D: "CEIL_2D",
	Man2D:  "MAN_2D",
	Max2D:  "MAX_2D",
	Att:    "ATT",
	Geo:    "GEO",
}

// ParseMetric maps a TSPLIB EDGE_WEIGHT_TYPE value to a Metric.
// Matching is case-insensitive; unknown values yield Planar.
func ParseMetric(edgeWeightType string) Metric {
	name := strings.ToUpper(strings.TrimSpace(edgeWeightType))
	for m, s := range metricNames {
		if s == name {
			return m
		}
	}
	return Planar
}

// String returns the TSPLIB name of the metric.
func (m Metric) String() string {
	if s, ok := metricNames[m]; ok {
		return s
	}
	return "PLANAR"
}

// Distance returns the distance between a and b under m.
func (m Metric) Distance(a, b orb.Point) float64 {
	var (
		dx = a[0] - b[0]
		dy = a[1] - b[1]
	)
	switch m {
	case Euc2D:
		return nint(math.Sqrt(dx*dx + dy*dy))
	case Ceil2D:
		return math.Ceil(math.Sqrt(dx*dx + dy*dy))
	case Man2D:
		return nint(math.Abs(dx) + math.Abs(dy))
	case Max2D:
		return math.Max(nint(math.Abs(dx)), nint(math.Abs(dy)))
	case Att:
		r := math.Sqrt((dx*dx + dy*dy) / 10.0)
		t := nint(r)
		if t < r {
			return t + 1
		}
		return t
	case Geo:
		return geoDistance(a, b)
	default:
		return planar.Distance(a, b)
	}
}

// nint is the TSPLIB "nearest integer": (int)(x + 0.5).
func nint(x float64) float64 {
	return math.Trunc(x + 0.5)
}

// geoRadians converts a DDD.MM coordinate to radians.
func geoRadians(x float64) float64 {
	deg := math.Trunc(x)
	minutes := x - deg
	return math.Pi * (deg + 5.0*minutes/3.0) / 180.0
}

func geoDistance(a, b orb.Point) float64 {
	var (
		latA = geoRadians(a[0])
		lonA = geoRadians(a[1])
		latB = geoRadians(b[0])
		lonB = geoRadians(b[1])

		q1 = math.Cos(lonA - lonB)
		q2 = math.Cos(latA - latB)
		q3 = math.Cos(latA + latB)
	)
	return math.Trunc(earthRadius*math.Acos(0.5*((1.0+q1)*q2-(1.0-q1)*q3)) + 1.0)
}
