// SPDX-License-Identifier: MIT
// Package: tourplot/tsplib
//
// scanner.go - the sentinel-bounded section scanner shared by both loaders.
//
// State machine:
//   SeekingStart --start marker--> ReadingData --end marker--> Done
//   SeekingStart --end of input--> Done (+ErrMissingSentinel unless Permissive)
//   ReadingData  --end of input--> Done

package tsplib

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// maxLineSize bounds a single input line; coordinate lines are far shorter.
const maxLineSize = 1 << 20

// State is the position of a Scanner relative to its section.
type State int

const (
	// SeekingStart: the start marker has not been seen; lines are header lines.
	SeekingStart State = iota

	// ReadingData: lines are data lines until the end marker.
	ReadingData

	// Done: the end marker or end of input was reached.
	Done
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case SeekingStart:
		return "SeekingStart"
	case ReadingData:
		return "ReadingData"
	case Done:
		return "Done"
	default:
		return "State(?)"
	}
}

// Scanner walks a line-oriented source and yields the data lines of one
// sentinel-delimited section.
//
// Every line is right-trimmed before it is compared with a marker, so
// "EOF\r\n" and "EOF  " both end the section. A blank line inside the
// section is a data line like any other, and the loaders reject it as
// malformed; Permissive skips it instead.
//
// Typical loop:
//
//	sc := NewScanner(r, CoordSection, EndOfFile)
//	for sc.Next() {
//		use(sc.Line(), sc.Text())
//	}
//	if err := sc.Err(); err != nil { ... }
type Scanner struct {
	in    *bufio.Scanner
	start string
	end   string
	cfg   readConfig

	state  State
	line   int
	text   string
	header Header
	err    error
}

// NewScanner returns a Scanner for the section opened by start and closed by end.
func NewScanner(r io.Reader, start, end string, opts ...Option) *Scanner {
	in := bufio.NewScanner(r)
	in.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	return &Scanner{
		in:    in,
		start: start,
		end:   end,
		cfg:   newReadConfig(opts),
		state: SeekingStart,
	}
}

// Next advances to the next data line. It returns false once the section is
// over or an error occurred; Err tells the two apart.
func (s *Scanner) Next() bool {
	var line string
	for s.state != Done && s.in.Scan() {
		s.line++
		line = strings.TrimRightFunc(s.in.Text(), unicode.IsSpace)

		switch s.state {
		case SeekingStart:
			if line == s.start {
				s.state = ReadingData
				continue
			}
			parseHeaderLine(&s.header, line)

		case ReadingData:
			if line == s.end {
				s.state = Done
				s.text = ""
				return false
			}
			if line == "" && s.cfg.permissive {
				continue
			}
			s.text = line
			return true
		}
	}

	if s.state == Done {
		return false
	}
	s.finish()
	return false
}

// finish handles end of input (or a read failure) before the end marker.
func (s *Scanner) finish() {
	defer func() {
		s.state = Done
		s.text = ""
	}()

	if err := s.in.Err(); err != nil {
		s.err = errors.Wrapf(err, "%s:%d: read", s.cfg.source, s.line+1)
		return
	}
	if s.state == SeekingStart && !s.cfg.permissive {
		s.err = errors.Wrapf(ErrMissingSentinel, "%s: %q", s.cfg.source, s.start)
	}
}

// Text returns the current data line, right-trimmed.
func (s *Scanner) Text() string { return s.text }

// Line returns the 1-based number of the current line.
func (s *Scanner) Line() int { return s.line }

// State returns the scanner state.
func (s *Scanner) State() State { return s.state }

// Header returns the header lines seen before the start marker.
func (s *Scanner) Header() Header { return s.header }

// Err returns the first error met by Next, if any.
func (s *Scanner) Err() error { return s.err }

// malformed wraps ErrMalformedInput with the current position.
func (s *Scanner) malformed(format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformedInput, "%s:%d: %q: "+format,
		append([]interface{}{s.cfg.source, s.line, s.text}, args...)...)
}
