// SPDX-License-Identifier: MIT
// Package: tourplot/render
//
// options.go - figure options and colour parsing.
//
// Policy:
//   - Option constructors panic on meaningless values; Render never panics.
//   - Defaults: 10 in, 300 DPI, 1.5 pt, 5% margin, "#1f77b4" on white.

package render

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Default figure parameters.
const (
	DefaultFigureSize = 10.0 // inches
	DefaultDPI        = 300.0
	DefaultLineWidth  = 1.5 // points
	DefaultMargin     = 0.05
	DefaultColor      = "#1f77b4"
	DefaultBackground = "#ffffff"

	// MaxPixels bounds the image side; 20000² RGBA is 1.6 GB.
	MaxPixels = 20000
)

// Option customizes a Render call. Option constructors validate their
// argument and panic on meaningless values; Render itself never panics.
type Option func(*config)

type config struct {
	figureSize  float64
	dpi         float64
	lineWidth   float64
	margin      float64
	stroke      color.Color
	background  color.Color
	axis        bool
	equalAspect bool
}

func newConfig(opts []Option) config {
	cfg := config{
		figureSize: DefaultFigureSize,
		dpi:        DefaultDPI,
		lineWidth:  DefaultLineWidth,
		margin:     DefaultMargin,
		stroke:     mustHex(DefaultColor),
		background: mustHex(DefaultBackground),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// side is the side of the square image in pixels, unbounded.
func (c config) side() float64 {
	return math.Round(c.figureSize * c.dpi)
}

// points converts typographic points to pixels at the configured DPI.
func (c config) points(pt float64) float64 {
	return pt * c.dpi / 72.0
}

// WithFigureSize sets the side of the square figure in inches.
// Panics unless inches > 0.
func WithFigureSize(inches float64) Option {
	if !(inches > 0) || math.IsInf(inches, 0) {
		panic(fmt.Sprintf("render: WithFigureSize(%v)", inches))
	}
	return func(c *config) { c.figureSize = inches }
}

// WithDPI sets the output resolution. Panics unless dpi > 0.
func WithDPI(dpi float64) Option {
	if !(dpi > 0) || math.IsInf(dpi, 0) {
		panic(fmt.Sprintf("render: WithDPI(%v)", dpi))
	}
	return func(c *config) { c.dpi = dpi }
}

// WithLineWidth sets the stroke width in points. Panics unless pt > 0.
func WithLineWidth(pt float64) Option {
	if !(pt > 0) || math.IsInf(pt, 0) {
		panic(fmt.Sprintf("render: WithLineWidth(%v)", pt))
	}
	return func(c *config) { c.lineWidth = pt }
}

// WithMargin sets the data margin as a fraction of the data span on each
// side. Panics unless 0 <= fraction < 0.5.
func WithMargin(fraction float64) Option {
	if !(fraction >= 0 && fraction < 0.5) {
		panic(fmt.Sprintf("render: WithMargin(%v)", fraction))
	}
	return func(c *config) { c.margin = fraction }
}

// WithColor sets the stroke colour as "#rgb" or "#rrggbb" (the '#' is
// optional). Panics on anything else.
func WithColor(hex string) Option {
	col := mustHex(hex)
	return func(c *config) { c.stroke = col }
}

// WithBackground sets the background colour; same syntax as WithColor.
func WithBackground(hex string) Option {
	col := mustHex(hex)
	return func(c *config) { c.background = col }
}

// WithAxis draws the frame of the plotting area when on.
func WithAxis(on bool) Option {
	return func(c *config) { c.axis = on }
}

// WithEqualAspect keeps one data unit the same length on both axes.
func WithEqualAspect(on bool) Option {
	return func(c *config) { c.equalAspect = on }
}

// ParseHex decodes "#rgb", "#rrggbb" or "#rrggbbaa" (leading '#' optional).
func ParseHex(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]}) + "ff"
	case 6:
		h += "ff"
	case 8:
	default:
		return color.NRGBA{}, fmt.Errorf("render: bad colour %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("render: bad colour %q", s)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func mustHex(s string) color.NRGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err.Error())
	}
	return c
}
