// Package tsplib reads the two line-oriented TSPLIB files a tour plot is
// made from: the instance coordinates (.tsp) and the solver's tour (.tour).
//
// Both formats share one layout:
//
//	NAME : att48
//	TYPE : TSP
//	DIMENSION : 48
//	EDGE_WEIGHT_TYPE : ATT
//	NODE_COORD_SECTION        <- start sentinel (TOUR_SECTION for tours)
//	1 6734 1453
//	2 2233 10
//	...
//	EOF                       <- end sentinel
//
// Lines before the start sentinel are header lines ("KEY : VALUE"); they are
// captured in Header and never rejected. Lines between the sentinels are data
// lines. Everything after the end sentinel is ignored.
//
// The section is found by a small two-state machine (see Scanner):
//
//	SeekingStart ──start marker──▶ ReadingData ──end marker──▶ Done
//
// Reaching end of input while still seeking the start marker is an error
// (ErrMissingSentinel) unless the reader is Permissive. Reaching end of input
// while reading data is accepted: many TSPLIB files omit the trailing EOF.
//
// Usage:
//
//	inst, err := tsplib.ReadCoordinates(coordsFile)
//	t, err := tsplib.ReadTour(tourFile)
//	path, err := tsplib.Resolve(t.IDs, inst.Coords)
//
// All failures are sentinel errors (ErrMalformedInput, ErrDuplicateID,
// ErrMissingSentinel, ErrKeyNotFound) wrapped with the offending line, so
// errors.Is works on every returned error.
package tsplib
