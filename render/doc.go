// Package render draws a tour path as a single polyline on a square raster
// figure and encodes it as PNG.
//
// The defaults reproduce the reference plots of the tool chain:
//
//   - a 10×10 inch figure at 300 DPI (3000×3000 px);
//   - the plotting area inset from the figure edges, axis hidden;
//   - a 1.5 pt line in "#1f77b4" on white, x and y scaled independently;
//   - 5% data margin on each side.
//
// Everything is adjustable through functional options:
//
//	fig, err := render.Render(path, render.WithDPI(150), render.WithEqualAspect(true))
//	if err != nil { ... }           // ErrNothingToPlot for an empty path
//	err = fig.EncodePNG(w)
//
// There are no markers, legends or per-edge colours: one path, one stroke.
package render
