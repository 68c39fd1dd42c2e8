package tsplib

// Section markers of the TSPLIB formats read by this package.
const (
	// CoordSection opens the node coordinate block of a .tsp file.
	CoordSection = "NODE_COORD_SECTION"

	// TourSection opens the node sequence block of a .tour file.
	TourSection = "TOUR_SECTION"

	// EndOfFile closes any section.
	EndOfFile = "EOF"
)

// Point is a city of the instance: its identifier and planar coordinate.
// Points are created once by ReadCoordinates and never mutated.
type Point struct {
	ID float64
	X  float64
	Y  float64
}

// CoordinateMap maps a node identifier to its Point.
//
// Identifiers are parsed as floating point, so a fractional identifier in a
// coordinate file is kept as is; tours reference integral identifiers only.
type CoordinateMap map[float64]Point

// Lookup returns the point registered under the integral identifier id.
func (m CoordinateMap) Lookup(id int) (Point, bool) {
	p, ok := m[float64(id)]
	return p, ok
}

// Header holds the "KEY : VALUE" lines found before a section marker.
//
// Known keys are decoded into typed fields; all other keys are kept in Extra
// verbatim. A value that fails to decode leaves the typed field zero and is
// kept in Extra under its key.
type Header struct {
	Name           string
	Type           string
	Comment        string
	Dimension      int
	EdgeWeightType string

	// Objective and Time are written by the solver into .tour files.
	Objective float64
	Time      float64

	Extra map[string]string
}

// Instance is a parsed coordinate file.
type Instance struct {
	Header Header

	// Coords holds exactly one entry per data line.
	Coords CoordinateMap

	// Order lists identifiers in file order.
	Order []float64
}

// Len returns the number of parsed points.
func (in *Instance) Len() int { return len(in.Coords) }

// Tour is a parsed tour file.
type Tour struct {
	Header Header

	// IDs is the visiting order with signs already discarded.
	// Repeats are kept; the solver closes the loop by repeating the first node.
	IDs []int
}

// Len returns the number of tour entries.
func (t *Tour) Len() int { return len(t.IDs) }
