package tsplib

import (
	"io"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// Resolve maps each tour identifier to its coordinate, in tour order.
//
// The returned line string has exactly len(ids) points; repeated identifiers
// produce repeated points. Identifiers are made non-negative first, so ids
// coming straight from a file and ids from ReadTour resolve alike.
// An identifier missing from coords aborts with ErrKeyNotFound; no point is
// ever substituted.
//
// Complexity: O(K) time and space for K identifiers.
func Resolve(ids []int, coords CoordinateMap) (orb.LineString, error) {
	path := make(orb.LineString, 0, len(ids))

	var (
		i  int
		id int
		p  Point
		ok bool
	)
	for i, id = range ids {
		if id < 0 {
			id = -id
		}
		if p, ok = coords.Lookup(id); !ok {
			return nil, errors.Wrapf(ErrKeyNotFound, "node %d at tour position %d", id, i)
		}
		path = append(path, orb.Point{p.X, p.Y})
	}
	return path, nil
}

// ReadTourPath reads a tour from r and resolves it against coords in one step.
func ReadTourPath(r io.Reader, coords CoordinateMap, opts ...Option) (*Tour, orb.LineString, error) {
	t, err := ReadTour(r, opts...)
	if err != nil {
		return nil, nil, err
	}
	path, err := Resolve(t.IDs, coords)
	if err != nil {
		cfg := newReadConfig(opts)
		return nil, nil, errors.WithMessage(err, cfg.source)
	}
	return t, path, nil
}
