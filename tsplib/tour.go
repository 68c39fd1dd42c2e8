package tsplib

import (
	"io"
	"strconv"
	"strings"
)

// ReadTour parses a tour file: header lines, then TOUR_SECTION, then one
// signed integer per line up to EOF.
//
// The sign of each identifier is discarded. Solvers terminate the sequence
// with "-1", which therefore reads as node 1 and closes the loop back to the
// usual start node.
//
// Contract:
//   - every data line is a single integer token, else ErrMalformedInput;
//   - no start marker: ErrMissingSentinel, or an empty tour when Permissive.
//
// Complexity: O(L) time, O(K) space for K tour entries.
func ReadTour(r io.Reader, opts ...Option) (*Tour, error) {
	var (
		sc = NewScanner(r, TourSection, EndOfFile, opts...)
		t  = &Tour{}
	)

	for sc.Next() {
		id, err := parseTourLine(sc)
		if err != nil {
			return nil, err
		}
		t.IDs = append(t.IDs, id)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	t.Header = sc.Header()
	return t, nil
}

// parseTourLine decodes the scanner's current line as |id|.
func parseTourLine(sc *Scanner) (int, error) {
	fields := strings.Fields(sc.Text())
	if len(fields) != 1 {
		return 0, sc.malformed("want 1 token (node id), got %d", len(fields))
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, sc.malformed("%q is not an integer", fields[0])
	}
	if id < 0 {
		id = -id
	}
	return id, nil
}
