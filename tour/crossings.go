// SPDX-License-Identifier: MIT
// Package: tourplot/tour
//
// crossings.go - self-intersection count of a tour, R-tree assisted.

package tour

import (
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// Tree fan-out for the segment index; same shape as the no-fly-zone index.
const (
	treeMinChildren = 25
	treeMaxChildren = 50
)

// boxPad widens degenerate (horizontal/vertical) segment boxes, which the
// R-tree rejects with zero extent.
const boxPad = 1e-9

// segment is one tour edge path[Index] → path[Index+1], stored in the R-tree.
type segment struct {
	Index int
	P1    orb.Point
	P2    orb.Point
	box   rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (s *segment) Bounds() rtreego.Rect { return s.box }

// Crossings counts the pairs of tour edges that intersect away from a shared
// endpoint. Consecutive edges always share a point and are never counted; so
// are the first and last edge of a closed tour.
//
// Edges with a NaN or infinite endpoint have no extent to index; they are
// skipped and never counted. tsplib rejects such coordinates on input.
//
// Candidate pairs come from an R-tree over the edge bounding boxes; each
// candidate is then checked exactly.
//
// Complexity: O(n log n) for typical tours, O(n²) worst case.
func Crossings(path orb.LineString) int {
	if len(path) < 4 {
		return 0
	}

	var (
		segs  = make([]*segment, 0, len(path)-1)
		tree  = rtreego.NewTree(2, treeMinChildren, treeMaxChildren)
		count int
	)
	for i := 0; i+1 < len(path); i++ {
		s := &segment{Index: i, P1: path[i], P2: path[i+1]}
		if !finite(s.P1) || !finite(s.P2) {
			continue
		}
		box, err := segmentBox(s.P1, s.P2)
		if err != nil {
			continue
		}
		s.box = box
		segs = append(segs, s)
		tree.Insert(s)
	}

	for _, s := range segs {
		for _, hit := range tree.SearchIntersect(s.box) {
			o := hit.(*segment)
			if o.Index <= s.Index+1 {
				continue
			}
			if segmentsIntersect(s.P1, s.P2, o.P1, o.P2) {
				count++
			}
		}
	}
	return count
}

func finite(p orb.Point) bool {
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func segmentBox(a, b orb.Point) (rtreego.Rect, error) {
	var (
		minX = math.Min(a[0], b[0])
		minY = math.Min(a[1], b[1])
		w    = math.Abs(a[0]-b[0]) + boxPad
		h    = math.Abs(a[1]-b[1]) + boxPad
	)
	return rtreego.NewRect(rtreego.Point{minX - boxPad/2, minY - boxPad/2}, []float64{w, h})
}

// segmentsIntersect reports whether p1p2 and p3p4 intersect. Segments that
// share an endpoint are not considered intersecting.
func segmentsIntersect(p1, p2, p3, p4 orb.Point) bool {
	if p1 == p3 || p1 == p4 || p2 == p3 || p2 == p4 {
		return false
	}

	var (
		d1 = direction(p3, p4, p1)
		d2 = direction(p3, p4, p2)
		d3 = direction(p1, p2, p3)
		d4 = direction(p1, p2, p4)
	)
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	// Collinear touching.
	switch {
	case d1 == 0 && onSegment(p3, p4, p1):
		return true
	case d2 == 0 && onSegment(p3, p4, p2):
		return true
	case d3 == 0 && onSegment(p1, p2, p3):
		return true
	case d4 == 0 && onSegment(p1, p2, p4):
		return true
	}
	return false
}

// direction is the cross product (p3-p1)×(p2-p1); its sign gives orientation.
func direction(p1, p2, p3 orb.Point) float64 {
	return (p3[0]-p1[0])*(p2[1]-p1[1]) - (p2[0]-p1[0])*(p3[1]-p1[1])
}

// onSegment reports whether q lies within the bounding box of pr.
func onSegment(p, r, q orb.Point) bool {
	return q[0] <= math.Max(p[0], r[0]) && q[0] >= math.Min(p[0], r[0]) &&
		q[1] <= math.Max(p[1], r[1]) && q[1] >= math.Min(p[1], r[1])
}
