package posterwire

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ianho7/maptoposter-online/poster"
	"github.com/ianho7/maptoposter-online/projection"
)

func Test_DecodeRoads(t *testing.T) {
	data := []float64{
		2,
		0, 2, 10, 20, 30, 40,
		4, 3, 1, 2, 3, 4, 5, 6,
	}

	roads := DecodeRoads(data, false)
	require.Len(t, roads, 2)

	assert.Equal(t, poster.RoadTypeMotorway, roads[0].Type)
	assert.Equal(t, []poster.Point{{X: 10, Y: 20}, {X: 30, Y: 40}}, roads[0].Coords)

	assert.Equal(t, poster.RoadTypeResidential, roads[1].Type)
	assert.Len(t, roads[1].Coords, 3)
}

func Test_DecodeRoads_OutOfRangeType(t *testing.T) {
	data := []float64{1, 9, 1, 5, 6}

	roads := DecodeRoads(data, false)
	require.Len(t, roads, 1)
	assert.Equal(t, poster.RoadTypeDefault, roads[0].Type)
}

func Test_DecodeRoads_Truncated(t *testing.T) {
	// the second road declares 10 points but only 4 pairs follow
	data := []float64{
		2,
		1, 2, 10, 20, 30, 40,
		0, 10, 1, 2, 3, 4, 5, 6, 7, 8,
	}

	roads := DecodeRoads(data, false)
	require.Len(t, roads, 1)
	assert.Equal(t, poster.RoadTypePrimary, roads[0].Type)
}

func Test_DecodeRoads_CorruptCount(t *testing.T) {
	// negative and NaN counts decode as zero records
	assert.Empty(t, DecodeRoads([]float64{-1}, false))
	assert.Empty(t, DecodeRoads([]float64{math.NaN()}, false))

	// an absurd count cannot allocate beyond what the buffer could hold
	assert.Empty(t, DecodeRoads([]float64{1e18}, false))
}

func Test_DecodeRoads_Empty(t *testing.T) {
	assert.Empty(t, DecodeRoads(nil, false))
	assert.Empty(t, DecodeRoads([]float64{0}, false))

	// count announced but no records at all
	assert.Empty(t, DecodeRoads([]float64{5}, false))
}

func Test_DecodeRoads_Projection(t *testing.T) {
	data := []float64{1, 0, 1, 2.3522, 48.8566}

	roads := DecodeRoads(data, true)
	require.Len(t, roads, 1)
	require.Len(t, roads[0].Coords, 1)

	wantX, wantY := projection.ProjectPoint(2.3522, 48.8566)
	assert.InDelta(t, wantX, roads[0].Coords[0].X, 1e-9)
	assert.InDelta(t, wantY, roads[0].Coords[0].Y, 1e-9)
}

func Test_EncodeRoads_RoundTrip(t *testing.T) {
	roads := []poster.Road{
		{Type: poster.RoadTypeMotorway, Coords: []poster.Point{{X: 1, Y: 2}, {X: 3, Y: 4}}},
		{Type: poster.RoadTypeDefault, Coords: []poster.Point{{X: -5, Y: 6.5}, {X: 7, Y: 8}, {X: 9, Y: 10}}},
	}

	decoded := DecodeRoads(EncodeRoads(roads), false)
	assert.Equal(t, roads, decoded)
}

func Test_DecodePolygons(t *testing.T) {
	data := []float64{
		1,
		4, 1,
		0, 0, 10, 0, 10, 10, 0, 10,
		3, 2, 2, 4, 4, 2, 4,
	}

	polys := DecodePolygons(data, false)
	require.Len(t, polys, 1)
	assert.Len(t, polys[0].Exterior, 4)
	require.Len(t, polys[0].Interiors, 1)
	assert.Equal(t, []poster.Point{{X: 2, Y: 2}, {X: 4, Y: 4}, {X: 2, Y: 4}}, polys[0].Interiors[0])
}

func Test_DecodePolygons_TruncatedInterior(t *testing.T) {
	// interior ring declares 5 points but the buffer ends after 1 pair
	data := []float64{
		1,
		3, 1,
		0, 0, 10, 0, 5, 10,
		5, 1, 2,
	}

	polys := DecodePolygons(data, false)
	require.Len(t, polys, 1)
	assert.Len(t, polys[0].Exterior, 3)
	assert.Empty(t, polys[0].Interiors)
}

func Test_DecodePolygons_TruncatedExterior(t *testing.T) {
	data := []float64{2, 100, 0, 1, 2}

	assert.Empty(t, DecodePolygons(data, false))
}

func Test_DecodePolygons_CorruptCount(t *testing.T) {
	assert.Empty(t, DecodePolygons([]float64{-1}, false))
	assert.Empty(t, DecodePolygons([]float64{math.NaN()}, false))
	assert.Empty(t, DecodePolygons([]float64{1e18}, false))
}

func Test_EncodePolygons_RoundTrip(t *testing.T) {
	polys := []poster.PolyFeature{
		{
			Exterior: []poster.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}},
			Interiors: [][]poster.Point{
				{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}},
			},
		},
		{
			Exterior: []poster.Point{{X: -1, Y: -1}, {X: -2, Y: -3}, {X: 0, Y: -4}},
		},
	}

	decoded := DecodePolygons(EncodePolygons(polys), false)
	require.Len(t, decoded, 2)
	assert.Equal(t, polys[0].Exterior, decoded[0].Exterior)
	assert.Equal(t, polys[0].Interiors, decoded[0].Interiors)
	assert.Equal(t, polys[1].Exterior, decoded[1].Exterior)
	assert.Empty(t, decoded[1].Interiors)
}

func Test_DecodePOIs(t *testing.T) {
	data := []float64{2, 100, 200, 300, 400}

	pois := DecodePOIs(data, false)
	assert.Equal(t, []poster.POI{{X: 100, Y: 200}, {X: 300, Y: 400}}, pois)
}

func Test_DecodePOIs_Truncated(t *testing.T) {
	data := []float64{3, 100, 200, 300}

	pois := DecodePOIs(data, false)
	assert.Equal(t, []poster.POI{{X: 100, Y: 200}}, pois)
}

func Test_DecodePOIs_CorruptCount(t *testing.T) {
	assert.Empty(t, DecodePOIs([]float64{-3}, false))
	assert.Empty(t, DecodePOIs([]float64{math.NaN()}, false))
	assert.Empty(t, DecodePOIs([]float64{1e18}, false))
}

func Test_DecodePOIs_Projection(t *testing.T) {
	pois := DecodePOIs([]float64{1, 2.3522, 48.8566}, true)
	require.Len(t, pois, 1)

	wantX, wantY := projection.ProjectPoint(2.3522, 48.8566)
	assert.InDelta(t, wantX, pois[0].X, 1e-9)
	assert.InDelta(t, wantY, pois[0].Y, 1e-9)
}

func Test_EncodePOIs_RoundTrip(t *testing.T) {
	pois := []poster.POI{{X: 1.5, Y: -2.5}, {X: 0, Y: 0}}

	assert.Equal(t, pois, DecodePOIs(EncodePOIs(pois), false))
}
