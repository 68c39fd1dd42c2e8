// SPDX-License-Identifier: MIT
// Package: tourplot/render
//
// render.go - data-to-pixel transform and polyline drawing.

package render

import (
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

var (
	// ErrNothingToPlot is returned for an empty path; no image is produced.
	ErrNothingToPlot = errors.New("render: nothing to plot")

	// ErrFigureTooLarge is returned when figure size × DPI exceeds MaxPixels.
	ErrFigureTooLarge = errors.New("render: figure too large")
)

// Plotting area as fractions of the figure, measured from the bottom-left
// corner.
const (
	frameLeft   = 0.125
	frameRight  = 0.9
	frameBottom = 0.11
	frameTop    = 0.88
)

// frameWidth is the axis frame stroke, in points.
const frameWidth = 0.8

// Figure is a rendered tour.
type Figure struct {
	dc *gg.Context

	// Size is the side of the square image in pixels.
	Size int
}

// Image returns the rendered raster.
func (f *Figure) Image() image.Image { return f.dc.Image() }

// EncodePNG writes the figure to w as PNG.
func (f *Figure) EncodePNG(w io.Writer) error { return f.dc.EncodePNG(w) }

// Render draws path as one connected polyline, in order.
//
// Contract:
//   - an empty path yields ErrNothingToPlot;
//   - an image side above MaxPixels yields ErrFigureTooLarge;
//   - a single point is drawn as a dot of the line width;
//   - a path with zero extent on an axis is centred on that axis.
//
// Complexity: O(n) path operations plus rasterization of the figure.
func Render(path orb.LineString, opts ...Option) (*Figure, error) {
	if len(path) == 0 {
		return nil, ErrNothingToPlot
	}

	cfg := newConfig(opts)
	side := cfg.side()
	if side > MaxPixels {
		return nil, errors.Wrapf(ErrFigureTooLarge, "%.0f px", side)
	}
	size := int(side)
	if size < 1 {
		size = 1
	}

	dc := gg.NewContext(size, size)
	dc.SetColor(cfg.background)
	dc.Clear()

	fr := newFrame(float64(size))
	tf := fitTransform(path.Bound(), fr, cfg.margin, cfg.equalAspect)

	if cfg.axis {
		dc.SetHexColor(frameColor(cfg))
		dc.SetLineWidth(cfg.points(frameWidth))
		dc.DrawRectangle(fr.x0, fr.y0, fr.x1-fr.x0, fr.y1-fr.y0)
		dc.Stroke()
	}

	dc.SetColor(cfg.stroke)
	dc.SetLineWidth(cfg.points(cfg.lineWidth))
	dc.SetLineCapRound()
	dc.SetLineJoinRound()

	x, y := tf.apply(path[0])
	dc.MoveTo(x, y)
	if len(path) == 1 {
		dc.LineTo(x, y)
	}
	for _, p := range path[1:] {
		x, y = tf.apply(p)
		dc.LineTo(x, y)
	}
	dc.Stroke()

	return &Figure{dc: dc, Size: size}, nil
}

// frame is the plotting area in image pixels (y grows downwards).
type frame struct {
	x0, y0, x1, y1 float64
}

func newFrame(size float64) frame {
	return frame{
		x0: frameLeft * size,
		x1: frameRight * size,
		y0: (1 - frameTop) * size,
		y1: (1 - frameBottom) * size,
	}
}

// transform maps data coordinates to image pixels.
type transform struct {
	sx, sy float64 // pixels per data unit
	ox, oy float64 // data origin of the mapping
	px, py float64 // pixel anchor: left edge, bottom edge
}

func (t transform) apply(p orb.Point) (float64, float64) {
	return t.px + (p[0]-t.ox)*t.sx, t.py - (p[1]-t.oy)*t.sy
}

// fitTransform maps the bound, widened by margin, onto the frame.
func fitTransform(b orb.Bound, fr frame, margin float64, equal bool) transform {
	var (
		minX, maxX = padRange(b.Min[0], b.Max[0], margin)
		minY, maxY = padRange(b.Min[1], b.Max[1], margin)
		w          = fr.x1 - fr.x0
		h          = fr.y1 - fr.y0
		t          = transform{ox: minX, oy: minY, px: fr.x0, py: fr.y1}
	)
	t.sx = w / (maxX - minX)
	t.sy = h / (maxY - minY)

	if equal {
		s := math.Min(t.sx, t.sy)
		// Centre the data inside the frame along the slack axis.
		t.px += (w - s*(maxX-minX)) / 2
		t.py -= (h - s*(maxY-minY)) / 2
		t.sx, t.sy = s, s
	}
	return t
}

// padRange widens [lo,hi] by margin of its span on each side.
// A zero span is widened to one unit so a flat path sits in the middle.
func padRange(lo, hi, margin float64) (float64, float64) {
	span := hi - lo
	if span == 0 {
		return lo - 0.5, hi + 0.5
	}
	return lo - margin*span, hi + margin*span
}

// frameColor is the frame colour: black, unless the background is dark.
func frameColor(cfg config) string {
	r, g, b, _ := cfg.background.RGBA()
	if (r+g+b)/3 < 0x8000 {
		return "#ffffff"
	}
	return "#000000"
}
