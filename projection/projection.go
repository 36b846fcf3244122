// Package projection converts geographic WGS84 coordinates into planar
// spherical-Mercator metres (EPSG:3857) and derives the poster's viewing
// window.
package projection

import (
	"math"

	"github.com/ianho7/maptoposter-online/poster"
)

// EarthRadius is the spherical Earth radius used by the Mercator
// projection, in metres.
const EarthRadius = 6378137.0

const degToRad = math.Pi / 180.0

// ProjectPoint projects (lon, lat) degrees into Mercator metres. It is
// total: latitudes approaching the poles blow up asymptotically rather than
// erroring.
func ProjectPoint(lon, lat float64) (x, y float64) {
	lonRad := lon * degToRad
	latRad := lat * degToRad

	x = lonRad * EarthRadius
	y = math.Asinh(math.Tan(latRad)) * EarthRadius

	return x, y
}

// UnprojectPoint is the inverse of ProjectPoint.
func UnprojectPoint(x, y float64) (lon, lat float64) {
	lon = x / EarthRadius / degToRad
	lat = math.Atan(math.Sinh(y/EarthRadius)) / degToRad

	return lon, lat
}

// ProjectPoints projects a batch of (lon, lat) points into a new slice.
func ProjectPoints(coords []poster.Point) []poster.Point {
	projected := make([]poster.Point, len(coords))
	for i, c := range coords {
		x, y := ProjectPoint(c.X, c.Y)
		projected[i] = poster.Point{X: x, Y: y}
	}
	return projected
}

// ProjectPointsInPlace projects a batch of (lon, lat) points, overwriting
// the input.
func ProjectPointsInPlace(coords []poster.Point) {
	for i, c := range coords {
		x, y := ProjectPoint(c.X, c.Y)
		coords[i] = poster.Point{X: x, Y: y}
	}
}

// CalculateBounds builds the projected viewing window: a square of
// half-extent radius metres around the centre, with the shorter axis
// stretched (never shrunk) to the canvas aspect ratio. Every output size
// therefore shows the same central geographic area, with extra area on the
// longer axis.
func CalculateBounds(centerLat, centerLon, radius float64, width, height int) poster.BoundingBox {
	centerX, centerY := ProjectPoint(centerLon, centerLat)

	aspect := float64(width) / float64(height)

	halfX := radius
	halfY := radius
	if aspect > 1 {
		// landscape canvas: keep the vertical extent, widen
		halfX = radius * aspect
	} else {
		// portrait canvas: keep the horizontal extent, heighten
		halfY = radius / aspect
	}

	return poster.BoundingBox{
		MinX: centerX - halfX,
		MaxX: centerX + halfX,
		MinY: centerY - halfY,
		MaxY: centerY + halfY,
	}
}

// CompensatedRadius widens the fetch radius for non-square canvases so the
// stretched axis of the viewing window is still covered by data.
func CompensatedRadius(radius float64, width, height int) float64 {
	maxDim := float64(width)
	minDim := float64(height)
	if maxDim < minDim {
		maxDim, minDim = minDim, maxDim
	}
	return radius * (maxDim / minDim) / 4
}
