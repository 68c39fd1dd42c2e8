package render_test

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourplot/render"
)

// TestOptions_PanicOnNonsense verifies constructors fail fast.
func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { render.WithFigureSize(0) })
	assert.Panics(t, func() { render.WithFigureSize(math.Inf(1)) })
	assert.Panics(t, func() { render.WithDPI(-1) })
	assert.Panics(t, func() { render.WithDPI(math.NaN()) })
	assert.Panics(t, func() { render.WithLineWidth(0) })
	assert.Panics(t, func() { render.WithMargin(0.5) })
	assert.Panics(t, func() { render.WithMargin(-0.1) })
	assert.Panics(t, func() { render.WithColor("blue") })
	assert.Panics(t, func() { render.WithBackground("#12345") })

	assert.NotPanics(t, func() { render.WithMargin(0) })
}

func TestParseHex(t *testing.T) {
	cases := map[string]color.NRGBA{
		"#1f77b4":   {R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
		"1F77B4":    {R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
		"#fff":      {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		"#00000080": {A: 0x80},
	}
	for in, want := range cases {
		got, err := render.ParseHex(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "#12", "#ggg", "#1234567"} {
		_, err := render.ParseHex(bad)
		assert.Error(t, err, bad)
	}
}
