// Package tourplot draws Travelling Salesman tours as raster images.
//
// A run reads two TSPLIB-style text files, resolves the tour through the
// coordinates and writes one PNG:
//
//	data/<name>.tsp   ──▶ tsplib.ReadCoordinates ─┐
//	                                              ├─▶ tsplib.Resolve ─▶ render.Render ─▶ plot/<name>.png
//	tour/<name>.tour  ──▶ tsplib.ReadTour ────────┘
//
// Subpackages:
//
//	tsplib/    sentinel-bounded section scanner, coordinate and tour loaders
//	tour/      TSPLIB metrics, tour length, crossings, summary statistics
//	render/    square polyline figure (10 in × 300 DPI by default), PNG output
//	storage/   URL-addressed inputs and outputs (local paths, mem://, cloud)
//	export/    GeoJSON interchange
//	config/    run parameters, YAML files, classic path layout
//	pipeline/  the load → resolve → render → write sequence
//	cmd/tourplot  command-line front end
//
// A tour file as written by a solver:
//
//	NAME : att48.tour
//	TYPE : TOUR
//	DIMENSION : 48
//	TOUR_SECTION
//	1
//	8
//	...
//	-1
//	EOF
//
// Signs are discarded, so the trailing -1 closes the loop on node 1.
//
//	go install github.com/katalvlaran/tourplot/cmd/tourplot@latest
package tourplot
