package tsplib

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ReadCoordinates parses a coordinate file: header lines, then
// NODE_COORD_SECTION, then "<id> <x> <y>" lines up to EOF.
//
// Contract:
//   - every data line has exactly three finite numeric tokens, else
//     ErrMalformedInput (blank lines included, unless Permissive);
//   - identifiers are unique, else ErrDuplicateID;
//   - no start marker: ErrMissingSentinel, or an empty map when Permissive.
//
// The result holds exactly one entry per data line.
//
// Complexity: O(L) time for L input lines, O(N) space for N points.
func ReadCoordinates(r io.Reader, opts ...Option) (*Instance, error) {
	var (
		sc   = NewScanner(r, CoordSection, EndOfFile, opts...)
		inst = &Instance{Coords: make(CoordinateMap)}
		p    Point
		err  error
	)

	for sc.Next() {
		if p, err = parseCoordLine(sc); err != nil {
			return nil, err
		}
		if _, dup := inst.Coords[p.ID]; dup {
			return nil, errors.Wrapf(ErrDuplicateID, "%s:%d: node %g", sc.cfg.source, sc.Line(), p.ID)
		}
		inst.Coords[p.ID] = p
		inst.Order = append(inst.Order, p.ID)
	}
	if err = sc.Err(); err != nil {
		return nil, err
	}

	inst.Header = sc.Header()
	return inst, nil
}

// parseCoordLine decodes the scanner's current "<id> <x> <y>" line.
func parseCoordLine(sc *Scanner) (Point, error) {
	fields := strings.Fields(sc.Text())
	if len(fields) != 3 {
		return Point{}, sc.malformed("want 3 tokens (id x y), got %d", len(fields))
	}

	var (
		vals [3]float64
		err  error
	)
	for i, f := range fields {
		if vals[i], err = strconv.ParseFloat(f, 64); err != nil {
			return Point{}, sc.malformed("token %d %q is not a number", i+1, f)
		}
		if math.IsNaN(vals[i]) || math.IsInf(vals[i], 0) {
			return Point{}, sc.malformed("token %d %q is not finite", i+1, f)
		}
	}
	return Point{ID: vals[0], X: vals[1], Y: vals[2]}, nil
}
