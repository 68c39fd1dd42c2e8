// Package tour measures a resolved tour path.
//
// It answers the questions one asks when looking at a tour plot:
//
//   - How long is it?  Length, under the TSPLIB metric of the instance
//     (EUC_2D, CEIL_2D, MAN_2D, MAX_2D, ATT, GEO) or plain planar distance.
//   - Is it a proper tour?  Stats.Closed, Stats.Revisits, Stats.Missing and
//     Stats.Hamiltonian compare the visiting order with the coordinate map.
//   - Does it cross itself?  Crossings counts intersecting edge pairs; an
//     optimal Euclidean tour has none.
//
// Nothing here builds or improves a tour; the numbers are reported as is.
//
// Usage:
//
//	path, _ := tsplib.Resolve(t.IDs, inst.Coords)
//	st := tour.Summarize(t.IDs, path, inst.Coords, tour.ParseMetric(inst.Header.EdgeWeightType))
//	fmt.Println(st.Length, st.Crossings)
package tour
