// SPDX-License-Identifier: MIT
// Package: tourplot/tsplib
//
// header.go - "KEY : VALUE" decoding of the lines before a section marker.

package tsplib

import (
	"strconv"
	"strings"
)

// parseHeaderLine decodes one "KEY : VALUE" line into h.
// Lines without a colon are not header lines and are ignored.
func parseHeaderLine(h *Header, line string) {
	idx := strings.IndexByte(line, ':')
	if idx <= 0 {
		return
	}

	var (
		key   = strings.ToUpper(strings.TrimSpace(line[:idx]))
		value = strings.TrimSpace(line[idx+1:])
		err   error
	)
	if key == "" {
		return
	}

	switch key {
	case "NAME":
		h.Name = value
	case "TYPE":
		h.Type = value
	case "COMMENT":
		// Several COMMENT lines are common; keep them all.
		if h.Comment != "" {
			h.Comment += "\n"
		}
		h.Comment += value
	case "EDGE_WEIGHT_TYPE":
		h.EdgeWeightType = strings.ToUpper(value)
	case "DIMENSION":
		if h.Dimension, err = strconv.Atoi(value); err != nil {
			h.Dimension = 0
			h.setExtra(key, value)
		}
	case "OBJECTIVE":
		if h.Objective, err = strconv.ParseFloat(value, 64); err != nil {
			h.Objective = 0
			h.setExtra(key, value)
		}
	case "TIME":
		if h.Time, err = strconv.ParseFloat(value, 64); err != nil {
			h.Time = 0
			h.setExtra(key, value)
		}
	default:
		h.setExtra(key, value)
	}
}

func (h *Header) setExtra(key, value string) {
	if h.Extra == nil {
		h.Extra = make(map[string]string)
	}
	h.Extra[key] = value
}
