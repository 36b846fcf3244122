// Package posterwire implements the packed binary geometry format used to
// hand pre-fetched map features to the render engine, plus GeoJSON feature
// extraction for the textual input path.
//
// The wire format is a flat sequence of 64-bit floats, with counts and
// discriminants truncated to integers:
//
//	roads:    [roadCount, {type, pointCount, x1,y1, ..}, ...]
//	polygons: [polyCount, {extCount, ringCount, ext.., {ringPointCount, pts..}..}, ...]
//	pois:     [count, x1,y1, ...]
//
// Decoding is truncation tolerant: a buffer too short to complete the
// declared count of the current record ends the decode silently, keeping
// the features fully parsed so far. This mirrors the historical behaviour
// of upstream producers that split buffers into independently decodable
// shards; it also means short reads from a corrupt producer are absorbed
// rather than reported.
package posterwire

import (
	"github.com/ianho7/maptoposter-online/poster"
	"github.com/ianho7/maptoposter-online/projection"
)

// DecodeRoads decodes a packed road buffer. With needsProjection set, the
// coordinates are geographic degrees and pass through the Mercator
// projection before storage; otherwise they are stored as-is.
func DecodeRoads(data []float64, needsProjection bool) []poster.Road {
	if len(data) == 0 {
		return nil
	}

	roadCount := clampCount(int(data[0]))
	roads := make([]poster.Road, 0, min(roadCount, (len(data)-1)/2))
	offset := 1

	for i := 0; i < roadCount; i++ {
		if offset+2 > len(data) {
			break
		}
		typeVal := int(data[offset])
		pointCount := int(data[offset+1])
		offset += 2

		if pointCount < 0 || offset+pointCount*2 > len(data) {
			break
		}
		coords := make([]poster.Point, pointCount)
		for j := 0; j < pointCount; j++ {
			coords[j] = poster.Point{X: data[offset], Y: data[offset+1]}
			offset += 2
		}
		if needsProjection {
			projection.ProjectPointsInPlace(coords)
		}

		roads = append(roads, poster.Road{
			Coords: coords,
			Type:   poster.RoadTypeFromWire(typeVal),
		})
	}

	return roads
}

// EncodeRoads packs roads into the wire format. It is the structural
// inverse of DecodeRoads.
func EncodeRoads(roads []poster.Road) []float64 {
	size := 1
	for _, road := range roads {
		size += 2 + len(road.Coords)*2
	}

	data := make([]float64, 0, size)
	data = append(data, float64(len(roads)))
	for _, road := range roads {
		data = append(data, float64(road.Type), float64(len(road.Coords)))
		for _, c := range road.Coords {
			data = append(data, c.X, c.Y)
		}
	}

	return data
}

// DecodePolygons decodes a packed polygon buffer (water and parks share the
// schema).
func DecodePolygons(data []float64, needsProjection bool) []poster.PolyFeature {
	if len(data) == 0 {
		return nil
	}

	polyCount := clampCount(int(data[0]))
	polys := make([]poster.PolyFeature, 0, min(polyCount, (len(data)-1)/2))
	offset := 1

	for i := 0; i < polyCount; i++ {
		if offset+2 > len(data) {
			break
		}
		exteriorCount := int(data[offset])
		interiorRingCount := int(data[offset+1])
		offset += 2

		if exteriorCount < 0 || offset+exteriorCount*2 > len(data) {
			break
		}
		exterior := make([]poster.Point, exteriorCount)
		for j := 0; j < exteriorCount; j++ {
			exterior[j] = poster.Point{X: data[offset], Y: data[offset+1]}
			offset += 2
		}

		interiors := make([][]poster.Point, 0, interiorRingCount)
		for j := 0; j < interiorRingCount; j++ {
			if offset+1 > len(data) {
				break
			}
			ringPointCount := int(data[offset])
			offset++

			if ringPointCount < 0 || offset+ringPointCount*2 > len(data) {
				break
			}
			ring := make([]poster.Point, ringPointCount)
			for k := 0; k < ringPointCount; k++ {
				ring[k] = poster.Point{X: data[offset], Y: data[offset+1]}
				offset += 2
			}
			if needsProjection {
				projection.ProjectPointsInPlace(ring)
			}
			interiors = append(interiors, ring)
		}

		if needsProjection {
			projection.ProjectPointsInPlace(exterior)
		}

		polys = append(polys, poster.PolyFeature{
			Exterior:  exterior,
			Interiors: interiors,
		})
	}

	return polys
}

// EncodePolygons packs polygon features into the wire format. It is the
// structural inverse of DecodePolygons.
func EncodePolygons(polys []poster.PolyFeature) []float64 {
	size := 1
	for _, poly := range polys {
		size += 2 + len(poly.Exterior)*2
		for _, ring := range poly.Interiors {
			size += 1 + len(ring)*2
		}
	}

	data := make([]float64, 0, size)
	data = append(data, float64(len(polys)))
	for _, poly := range polys {
		data = append(data, float64(len(poly.Exterior)), float64(len(poly.Interiors)))
		for _, c := range poly.Exterior {
			data = append(data, c.X, c.Y)
		}
		for _, ring := range poly.Interiors {
			data = append(data, float64(len(ring)))
			for _, c := range ring {
				data = append(data, c.X, c.Y)
			}
		}
	}

	return data
}

// DecodePOIs decodes a packed POI buffer [count, x1,y1, ...].
func DecodePOIs(data []float64, needsProjection bool) []poster.POI {
	if len(data) == 0 {
		return nil
	}

	count := clampCount(int(data[0]))
	pois := make([]poster.POI, 0, min(count, (len(data)-1)/2))
	offset := 1

	for i := 0; i < count; i++ {
		if offset+2 > len(data) {
			break
		}
		x, y := data[offset], data[offset+1]
		offset += 2

		if needsProjection {
			x, y = projection.ProjectPoint(x, y)
		}
		pois = append(pois, poster.POI{X: x, Y: y})
	}

	return pois
}

// clampCount floors a decoded count at zero. Corrupt producers can emit
// negative or NaN count floats; those decode as zero records, they never
// error and never index backwards.
func clampCount(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// EncodePOIs packs POIs into the wire format.
func EncodePOIs(pois []poster.POI) []float64 {
	data := make([]float64, 0, 1+len(pois)*2)
	data = append(data, float64(len(pois)))
	for _, poi := range pois {
		data = append(data, poi.X, poi.Y)
	}
	return data
}
