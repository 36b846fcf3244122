package posterwire

import (
	"github.com/jamesrr39/goutil/errorsx"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/ianho7/maptoposter-online/poster"
	"github.com/ianho7/maptoposter-online/projection"
)

// RoadsFromGeoJSON extracts roads from a GeoJSON FeatureCollection.
// LineString features are taken whole; for MultiLineString only the first
// line is taken. Other geometry kinds are skipped per feature. Coordinates
// are geographic and get projected. Malformed JSON is fatal.
func RoadsFromGeoJSON(b []byte) ([]poster.Road, errorsx.Error) {
	fc, err := geojson.UnmarshalFeatureCollection(b)
	if err != nil {
		return nil, errorsx.Wrap(err)
	}

	roads := make([]poster.Road, 0, len(fc.Features))
	for _, feature := range fc.Features {
		roadType := poster.RoadTypeFromHighway(highwayValue(feature.Properties))

		var line orb.LineString
		switch geom := feature.Geometry.(type) {
		case orb.LineString:
			line = geom
		case orb.MultiLineString:
			if len(geom) == 0 {
				continue
			}
			line = geom[0]
		default:
			continue
		}

		roads = append(roads, poster.Road{
			Coords: projectLineString(line),
			Type:   roadType,
		})
	}

	return roads, nil
}

// PolygonsFromGeoJSON extracts polygon features (water or parks) from a
// GeoJSON FeatureCollection. Polygon features are taken whole; each member
// of a MultiPolygon becomes its own feature. Other geometry kinds are
// skipped. Coordinates are geographic and get projected.
func PolygonsFromGeoJSON(b []byte) ([]poster.PolyFeature, errorsx.Error) {
	fc, err := geojson.UnmarshalFeatureCollection(b)
	if err != nil {
		return nil, errorsx.Wrap(err)
	}

	polys := make([]poster.PolyFeature, 0, len(fc.Features))
	for _, feature := range fc.Features {
		switch geom := feature.Geometry.(type) {
		case orb.Polygon:
			if poly, ok := polyFromRings(geom); ok {
				polys = append(polys, poly)
			}
		case orb.MultiPolygon:
			for _, rings := range geom {
				if poly, ok := polyFromRings(rings); ok {
					polys = append(polys, poly)
				}
			}
		default:
			continue
		}
	}

	return polys, nil
}

func polyFromRings(rings orb.Polygon) (poster.PolyFeature, bool) {
	if len(rings) == 0 {
		return poster.PolyFeature{}, false
	}

	poly := poster.PolyFeature{
		Exterior: projectRing(rings[0]),
	}
	for _, ring := range rings[1:] {
		poly.Interiors = append(poly.Interiors, projectRing(ring))
	}
	return poly, true
}

// highwayValue pulls the OSM highway property, which upstream sources emit
// either as a string or as an array of strings.
func highwayValue(props geojson.Properties) string {
	switch v := props["highway"].(type) {
	case string:
		return v
	case []interface{}:
		if len(v) > 0 {
			if s, ok := v[0].(string); ok {
				return s
			}
		}
	}
	return "unclassified"
}

func projectLineString(line orb.LineString) []poster.Point {
	coords := make([]poster.Point, len(line))
	for i, pt := range line {
		coords[i] = poster.Point{X: pt[0], Y: pt[1]}
	}
	projection.ProjectPointsInPlace(coords)
	return coords
}

func projectRing(ring orb.Ring) []poster.Point {
	coords := make([]poster.Point, len(ring))
	for i, pt := range ring {
		coords[i] = poster.Point{X: pt[0], Y: pt[1]}
	}
	projection.ProjectPointsInPlace(coords)
	return coords
}
