// Package export writes a resolved tour in interchange formats.
package export

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/tourplot/tour"
)

// GeoJSON encodes path as a FeatureCollection holding one LineString
// feature. Properties carry the run name and the tour statistics, so the
// file can be inspected without the plot.
//
// Coordinates are written as read; TSPLIB planar coordinates are not
// longitude/latitude and most map viewers will not place them sensibly.
func GeoJSON(name string, path orb.LineString, st tour.Stats) ([]byte, error) {
	f := geojson.NewFeature(path)
	f.Properties["name"] = name
	f.Properties["points"] = st.Points
	f.Properties["distinct"] = st.Distinct
	f.Properties["closed"] = st.Closed
	f.Properties["metric"] = st.Metric.String()
	f.Properties["length"] = st.Length
	f.Properties["crossings"] = st.Crossings

	fc := geojson.NewFeatureCollection()
	fc.Append(f)
	return fc.MarshalJSON()
}
