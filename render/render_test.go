package render_test

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourplot/render"
)

// small renders at 2in × 50dpi = 100×100 px so pixel positions are easy to
// derive: the frame spans x∈[12.5,90], y∈[12,89].
var small = []render.Option{render.WithFigureSize(2), render.WithDPI(50)}

var unitSquare = orb.LineString{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}

// inked reports whether any pixel within r of (x,y) differs from white.
func inked(img image.Image, x, y, r int) bool {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			cr, cg, cb, _ := img.At(x+dx, y+dy).RGBA()
			if cr != 0xffff || cg != 0xffff || cb != 0xffff {
				return true
			}
		}
	}
	return false
}

// TestRender_Empty pins the "nothing to plot" condition.
func TestRender_Empty(t *testing.T) {
	fig, err := render.Render(nil, small...)
	assert.ErrorIs(t, err, render.ErrNothingToPlot)
	assert.Nil(t, fig)

	_, err = render.Render(orb.LineString{}, small...)
	assert.ErrorIs(t, err, render.ErrNothingToPlot)
}

// TestRender_Size checks figure size × DPI.
func TestRender_Size(t *testing.T) {
	fig, err := render.Render(unitSquare, render.WithFigureSize(1.5), render.WithDPI(40))
	require.NoError(t, err)
	assert.Equal(t, 60, fig.Size)
	assert.Equal(t, image.Rect(0, 0, 60, 60), fig.Image().Bounds())
}

// TestRender_TooLarge refuses an image side above MaxPixels before allocating it.
func TestRender_TooLarge(t *testing.T) {
	fig, err := render.Render(unitSquare, render.WithFigureSize(1e6), render.WithDPI(300))
	require.ErrorIs(t, err, render.ErrFigureTooLarge)
	assert.Nil(t, fig)

	_, err = render.Render(unitSquare, render.WithFigureSize(1e300), render.WithDPI(1e300))
	assert.ErrorIs(t, err, render.ErrFigureTooLarge, "product overflows to +Inf")
}

// TestRender_Polyline finds ink on the square's edges and none elsewhere.
func TestRender_Polyline(t *testing.T) {
	fig, err := render.Render(unitSquare, small...)
	require.NoError(t, err)
	img := fig.Image()

	assert.True(t, inked(img, 51, 85, 1), "bottom edge at y≈85.5")
	assert.True(t, inked(img, 16, 50, 1), "left edge at x≈16")
	assert.True(t, inked(img, 51, 15, 1), "top edge at y≈15.5")
	assert.False(t, inked(img, 50, 50, 3), "square interior is empty")
	assert.False(t, inked(img, 2, 2, 2), "outside the frame is empty")
	assert.False(t, inked(img, 12, 50, 0), "axis hidden by default")
}

// TestRender_Axis draws the frame of the plotting area.
func TestRender_Axis(t *testing.T) {
	fig, err := render.Render(unitSquare, append(small, render.WithAxis(true))...)
	require.NoError(t, err)
	assert.True(t, inked(fig.Image(), 12, 50, 0))
}

// TestRender_EqualAspect shrinks the flat axis instead of stretching it.
func TestRender_EqualAspect(t *testing.T) {
	wide := orb.LineString{{0, 0}, {10, 0}, {10, 1}, {0, 1}, {0, 0}}

	stretched, err := render.Render(wide, small...)
	require.NoError(t, err)
	assert.True(t, inked(stretched.Image(), 50, 15, 1), "top edge fills the frame")

	equal, err := render.Render(wide, append(small, render.WithEqualAspect(true))...)
	require.NoError(t, err)
	assert.False(t, inked(equal.Image(), 50, 15, 1))
	assert.True(t, inked(equal.Image(), 50, 54, 1), "bottom edge near the middle")
	assert.True(t, inked(equal.Image(), 50, 47, 1), "top edge near the middle")
}

// TestRender_Degenerate handles a single point and a flat line.
func TestRender_Degenerate(t *testing.T) {
	_, err := render.Render(orb.LineString{{3, 3}}, small...)
	assert.NoError(t, err)

	fig, err := render.Render(orb.LineString{{0, 2}, {4, 2}}, small...)
	require.NoError(t, err)
	assert.True(t, inked(fig.Image(), 50, 50, 1), "flat line is centred vertically")
}

// TestRender_Colors applies stroke and background colours.
func TestRender_Colors(t *testing.T) {
	fig, err := render.Render(unitSquare,
		append(small, render.WithColor("#f00"), render.WithBackground("000000"), render.WithLineWidth(6))...)
	require.NoError(t, err)

	r, g, b, _ := fig.Image().At(2, 2).RGBA()
	assert.Equal(t, [3]uint32{0, 0, 0}, [3]uint32{r, g, b}, "background")

	r, g, b, _ = fig.Image().At(51, 85).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0, 0}, [3]uint32{r, g, b}, "stroke")
}

// TestFigure_EncodePNG round-trips through the PNG decoder.
func TestFigure_EncodePNG(t *testing.T) {
	fig, err := render.Render(unitSquare, small...)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, fig.EncodePNG(&buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 100, 100), img.Bounds())
}
