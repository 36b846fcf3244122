// Package posterrenderer turns decoded map features into a styled poster
// image: vector paths for water, parks and roads, manual gradient and glyph
// compositing, and scale-aware text layout.
package posterrenderer

import (
	"github.com/golang/freetype/truetype"
	"github.com/jamesrr39/goutil/errorsx"
	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"

	"github.com/ianho7/maptoposter-online/poster"
)

// PosterRenderer owns the pixel buffer of a single render pass. It is
// constructed once per image, driven through the draw calls in layer order
// and consumed exactly once by EncodePNG.
type PosterRenderer struct {
	pixmap       *Pixmap
	theme        poster.Theme
	bounds       poster.BoundingBox
	width        int
	height       int
	xFactor      float64
	yFactor      float64
	textPosition poster.TextPosition
	font         *truetype.Font
	defaults     poster.RenderDefaults
	sink         Sink
	consumed     bool
}

func NewPosterRenderer(
	width, height int,
	theme poster.Theme,
	bounds poster.BoundingBox,
	textPosition poster.TextPosition,
	font *truetype.Font,
	defaults poster.RenderDefaults,
	sink Sink,
) (*PosterRenderer, errorsx.Error) {
	if bounds.Width() <= 0 || bounds.Height() <= 0 {
		return nil, errorsx.Errorf("degenerate bounds: width %f, height %f", bounds.Width(), bounds.Height())
	}

	pixmap, err := NewPixmap(width, height)
	if err != nil {
		return nil, err
	}

	if sink == nil {
		sink = NoopSink{}
	}

	return &PosterRenderer{
		pixmap:       pixmap,
		theme:        theme,
		bounds:       bounds,
		width:        width,
		height:       height,
		xFactor:      float64(width) / bounds.Width(),
		yFactor:      float64(height) / bounds.Height(),
		textPosition: textPosition,
		font:         font,
		defaults:     defaults,
		sink:         sink,
	}, nil
}

func (r *PosterRenderer) Theme() *poster.Theme {
	return &r.theme
}

// worldToScreen maps projected metres onto pixels. Y is flipped: projected
// Y grows northward, pixel Y grows downward.
func (r *PosterRenderer) worldToScreen(x, y float64) (float64, float64) {
	sx := (x - r.bounds.MinX) * r.xFactor
	sy := float64(r.height) - (y-r.bounds.MinY)*r.yFactor
	return sx, sy
}

// DrawBackground fills the whole buffer with the theme background.
func (r *PosterRenderer) DrawBackground() {
	r.pixmap.Fill(poster.ParseHexColor(r.theme.Background))
}

// DrawWater fills water features.
func (r *PosterRenderer) DrawWater(features []poster.PolyFeature) {
	r.drawPolyFeatures(features, r.theme.Water)
}

// DrawParks fills park features.
func (r *PosterRenderer) DrawParks(features []poster.PolyFeature) {
	r.drawPolyFeatures(features, r.theme.Parks)
}

// drawPolyFeatures adds every feature's exterior and interior rings to one
// path and fills it once with the even-odd rule, so holes subtract
// regardless of ring winding.
func (r *PosterRenderer) drawPolyFeatures(features []poster.PolyFeature, hexColor string) {
	if len(features) == 0 {
		return
	}

	path := &draw2d.Path{}
	found := false
	for i := range features {
		if r.addPolyToPath(path, &features[i]) {
			found = true
		}
	}
	if !found {
		return
	}

	gc := draw2dimg.NewGraphicContext(r.pixmap.RGBA())
	gc.SetFillRule(draw2d.FillRuleEvenOdd)
	gc.SetFillColor(poster.ParseHexColor(hexColor))
	gc.Fill(path)
}

// addPolyToPath appends the feature's rings as closed subpaths. Rings with
// fewer than three points are skipped.
func (r *PosterRenderer) addPolyToPath(path *draw2d.Path, poly *poster.PolyFeature) bool {
	if len(poly.Exterior) < 3 {
		return false
	}

	r.addRingToPath(path, poly.Exterior)
	for _, ring := range poly.Interiors {
		if len(ring) < 3 {
			continue
		}
		r.addRingToPath(path, ring)
	}

	return true
}

func (r *PosterRenderer) addRingToPath(path *draw2d.Path, ring []poster.Point) {
	sx, sy := r.worldToScreen(ring[0].X, ring[0].Y)
	path.MoveTo(sx, sy)
	for _, c := range ring[1:] {
		sx, sy = r.worldToScreen(c.X, c.Y)
		path.LineTo(sx, sy)
	}
	path.Close()
}

// DrawRoads strokes roads grouped by class: a single pass over the input
// distributes the polylines into at most six paths, then each path is
// stroked once with its class color and scaled width. Roads with fewer than
// two points are skipped.
func (r *PosterRenderer) DrawRoads(roads []poster.Road, widthScale float64) {
	var paths [poster.NumRoadTypes]*draw2d.Path
	var found [poster.NumRoadTypes]bool
	for i := range paths {
		paths[i] = &draw2d.Path{}
	}

	for i := range roads {
		road := &roads[i]
		if len(road.Coords) < 2 {
			continue
		}

		t := poster.RoadTypeFromWire(int(road.Type))
		path := paths[t]
		sx, sy := r.worldToScreen(road.Coords[0].X, road.Coords[0].Y)
		path.MoveTo(sx, sy)
		for _, c := range road.Coords[1:] {
			sx, sy = r.worldToScreen(c.X, c.Y)
			path.LineTo(sx, sy)
		}
		found[t] = true
	}

	r.strokeRoadPaths(paths, found, widthScale)
}

// DrawRoadsWire is the binary direct-draw variant of DrawRoads: a single
// pass over an already-projected packed buffer, with the same
// truncation-tolerant bounds checking as the codec. Shards are drawn in
// caller-supplied order.
func (r *PosterRenderer) DrawRoadsWire(data []float64, widthScale float64) {
	if len(data) == 0 {
		return
	}

	var paths [poster.NumRoadTypes]*draw2d.Path
	var found [poster.NumRoadTypes]bool
	for i := range paths {
		paths[i] = &draw2d.Path{}
	}

	roadCount := int(data[0])
	offset := 1

	for i := 0; i < roadCount; i++ {
		if offset+2 > len(data) {
			break
		}
		t := poster.RoadTypeFromWire(int(data[offset]))
		pointCount := clampWireCount(int(data[offset+1]))
		offset += 2

		if pointCount >= 2 && pointCount*2 <= len(data)-offset {
			path := paths[t]
			sx, sy := r.worldToScreen(data[offset], data[offset+1])
			path.MoveTo(sx, sy)
			for j := 1; j < pointCount; j++ {
				sx, sy = r.worldToScreen(data[offset+j*2], data[offset+j*2+1])
				path.LineTo(sx, sy)
			}
			found[t] = true
		}
		offset += pointCount * 2
	}

	r.strokeRoadPaths(paths, found, widthScale)
}

func (r *PosterRenderer) strokeRoadPaths(paths [poster.NumRoadTypes]*draw2d.Path, found [poster.NumRoadTypes]bool, widthScale float64) {
	gc := draw2dimg.NewGraphicContext(r.pixmap.RGBA())

	for t := 0; t < poster.NumRoadTypes; t++ {
		if !found[t] {
			continue
		}

		roadType := poster.RoadType(t)
		gc.SetStrokeColor(poster.ParseHexColor(r.theme.RoadColor(roadType)))
		gc.SetLineWidth(roadType.ScaledWidth(widthScale))
		gc.Stroke(paths[t])
	}
}

// DrawPolygonsWire is the binary direct-draw variant of the polygon fill:
// one pass over an already-projected packed buffer, all rings into a single
// even-odd path.
func (r *PosterRenderer) DrawPolygonsWire(data []float64, hexColor string) {
	if len(data) == 0 {
		return
	}

	path := &draw2d.Path{}
	found := false

	polyCount := int(data[0])
	offset := 1

	for i := 0; i < polyCount; i++ {
		if offset+2 > len(data) {
			break
		}
		exteriorCount := clampWireCount(int(data[offset]))
		interiorRingCount := int(data[offset+1])
		offset += 2

		if exteriorCount >= 3 && exteriorCount*2 <= len(data)-offset {
			r.addWireRingToPath(path, data[offset:offset+exteriorCount*2])
			found = true
		}
		offset += exteriorCount * 2
		if offset > len(data) {
			break
		}

		for j := 0; j < interiorRingCount; j++ {
			if offset+1 > len(data) {
				break
			}
			ringPointCount := clampWireCount(int(data[offset]))
			offset++

			if ringPointCount >= 3 && ringPointCount*2 <= len(data)-offset {
				r.addWireRingToPath(path, data[offset:offset+ringPointCount*2])
			}
			offset += ringPointCount * 2
			if offset > len(data) {
				break
			}
		}
	}

	if !found {
		return
	}

	gc := draw2dimg.NewGraphicContext(r.pixmap.RGBA())
	gc.SetFillRule(draw2d.FillRuleEvenOdd)
	gc.SetFillColor(poster.ParseHexColor(hexColor))
	gc.Fill(path)
}

func (r *PosterRenderer) addWireRingToPath(path *draw2d.Path, flat []float64) {
	sx, sy := r.worldToScreen(flat[0], flat[1])
	path.MoveTo(sx, sy)
	for i := 2; i < len(flat); i += 2 {
		sx, sy = r.worldToScreen(flat[i], flat[i+1])
		path.LineTo(sx, sy)
	}
	path.Close()
}

// DrawPOIs draws point-of-interest markers as small filled circles in the
// text color.
func (r *PosterRenderer) DrawPOIs(pois []poster.POI, widthScale float64) {
	if len(pois) == 0 {
		return
	}

	radius := 3.0 * widthScale
	if radius < 1.5 {
		radius = 1.5
	}

	gc := draw2dimg.NewGraphicContext(r.pixmap.RGBA())
	gc.SetFillColor(poster.ParseHexColor(r.theme.Text))

	for _, poi := range pois {
		sx, sy := r.worldToScreen(poi.X, poi.Y)
		draw2dkit.Circle(gc, sx, sy, radius)
		gc.Fill()
	}
}

// DrawPOIsWire draws markers from an already-projected packed buffer
// [count, x1,y1, ...].
func (r *PosterRenderer) DrawPOIsWire(data []float64, widthScale float64) {
	if len(data) == 0 {
		return
	}

	count := clampWireCount(int(data[0]))
	pois := make([]poster.POI, 0, min(count, (len(data)-1)/2))
	offset := 1
	for i := 0; i < count; i++ {
		if offset+2 > len(data) {
			break
		}
		pois = append(pois, poster.POI{X: data[offset], Y: data[offset+1]})
		offset += 2
	}

	r.DrawPOIs(pois, widthScale)
}

// clampWireCount floors a decoded wire count at zero, the same policy as
// the codec: negative or NaN count floats from a corrupt producer mean zero
// records, never a backwards walk over the buffer.
func clampWireCount(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// EncodePNG encodes the buffer and consumes the renderer.
func (r *PosterRenderer) EncodePNG() ([]byte, errorsx.Error) {
	if r.consumed {
		return nil, errorsx.Errorf("renderer already consumed")
	}
	r.consumed = true

	return r.pixmap.EncodePNG()
}
