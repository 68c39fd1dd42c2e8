// SPDX-License-Identifier: MIT
// Package: tourplot/tsplib
//
// errors.go - sentinel errors for the TSPLIB readers.
//
// Error policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Readers attach "<source>:<line>" and the offending text when wrapping.
//   - ErrDuplicateID also matches ErrMalformedInput.

package tsplib

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput indicates a data line that does not have the expected
	// token count or contains a non-numeric token.
	ErrMalformedInput = errors.New("tsplib: malformed data line")

	// ErrDuplicateID indicates a coordinate identifier seen twice in one file.
	// It is reported as a malformed input as well.
	ErrDuplicateID = fmt.Errorf("%w: duplicate node identifier", ErrMalformedInput)

	// ErrMissingSentinel indicates the start-of-section marker was never found.
	ErrMissingSentinel = errors.New("tsplib: section start marker not found")

	// ErrKeyNotFound indicates a tour identifier absent from the coordinate map.
	ErrKeyNotFound = errors.New("tsplib: tour references unknown node")
)
