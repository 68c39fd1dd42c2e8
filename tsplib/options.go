// SPDX-License-Identifier: MIT
// Package: tourplot/tsplib
//
// options.go - functional options for the readers.

package tsplib

// Option customizes a reader. Options are applied in order.
type Option func(*readConfig)

type readConfig struct {
	// permissive turns a missing start marker into an empty section and
	// skips blank lines inside the section.
	permissive bool

	// source names the input in diagnostics ("<source>:<line>: ...").
	source string
}

func newReadConfig(opts []Option) readConfig {
	cfg := readConfig{source: "<input>"}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Permissive makes a missing start marker yield an empty section instead of
// ErrMissingSentinel, and skips blank lines between the markers instead of
// reporting them as ErrMalformedInput.
func Permissive() Option {
	return func(c *readConfig) { c.permissive = true }
}

// WithSource names the input in error messages. Empty names are ignored.
func WithSource(name string) Option {
	return func(c *readConfig) {
		if name != "" {
			c.source = name
		}
	}
}
