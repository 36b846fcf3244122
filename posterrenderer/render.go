package posterrenderer

import (
	"encoding/json"
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/jamesrr39/goutil/errorsx"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/ianho7/maptoposter-online/poster"
	"github.com/ianho7/maptoposter-online/posterwire"
	"github.com/ianho7/maptoposter-online/projection"
)

// Engine binds the render pipeline to a font, the reference-resolution
// defaults and a diagnostic sink, and exposes the three render entry
// modes. For identical data all modes produce identical images.
type Engine struct {
	font     *truetype.Font
	defaults poster.RenderDefaults
	sink     Sink
}

func NewEngine(font *truetype.Font, defaults poster.RenderDefaults, sink Sink) *Engine {
	if sink == nil {
		sink = NoopSink{}
	}
	return &Engine{
		font:     font,
		defaults: defaults,
		sink:     sink,
	}
}

// jsonRenderRequest is the flat JSON entry mode: configuration plus
// GeoJSON payload strings for the geometry.
type jsonRenderRequest struct {
	Center         poster.Center       `json:"center"`
	Radius         float64             `json:"radius"`
	Roads          string              `json:"roads"`
	Water          string              `json:"water"`
	Parks          string              `json:"parks"`
	POIs           []float64           `json:"pois,omitempty"`
	Theme          poster.Theme        `json:"theme"`
	Width          int                 `json:"width"`
	Height         int                 `json:"height"`
	DisplayCity    string              `json:"display_city"`
	DisplayCountry string              `json:"display_country"`
	TextPosition   poster.TextPosition `json:"text_position,omitempty"`

	SelectedSizeHeight float64 `json:"selected_size_height,omitempty"`
	FrontendScale      float64 `json:"frontend_scale,omitempty"`
}

// RenderMapJSON renders from a JSON request carrying embedded GeoJSON
// payload strings. Malformed request or payload JSON aborts before any
// drawing.
func (e *Engine) RenderMapJSON(requestJSON []byte) (*poster.RenderResult, errorsx.Error) {
	var jsonReq jsonRenderRequest
	err := json.Unmarshal(requestJSON, &jsonReq)
	if err != nil {
		return nil, errorsx.Wrap(err, "reason", "parsing render request JSON")
	}

	roads, water, parks, wireErr := e.parseGeoJSONPayloads(&jsonReq)
	if wireErr != nil {
		return nil, wireErr
	}

	req := &poster.RenderRequest{
		Center:             jsonReq.Center,
		Radius:             jsonReq.Radius,
		Roads:              roads,
		Water:              water,
		Parks:              parks,
		POIs:               posterwire.DecodePOIs(jsonReq.POIs, true),
		Theme:              jsonReq.Theme,
		Width:              jsonReq.Width,
		Height:             jsonReq.Height,
		DisplayCity:        jsonReq.DisplayCity,
		DisplayCountry:     jsonReq.DisplayCountry,
		TextPosition:       jsonReq.TextPosition,
		NeedsProjection:    false, // GeoJSON extraction already projected
		SelectedSizeHeight: jsonReq.SelectedSizeHeight,
		FrontendScale:      jsonReq.FrontendScale,
	}

	return e.RenderMap(req)
}

// parseGeoJSONPayloads extracts the typed features from the embedded
// payload strings under one span, ended on error returns too.
func (e *Engine) parseGeoJSONPayloads(jsonReq *jsonRenderRequest) ([]poster.Road, []poster.PolyFeature, []poster.PolyFeature, errorsx.Error) {
	endSpan := e.sink.Begin("render: parse geojson payloads")
	defer endSpan()

	roads, err := posterwire.RoadsFromGeoJSON([]byte(jsonReq.Roads))
	if err != nil {
		return nil, nil, nil, err
	}
	water, err := posterwire.PolygonsFromGeoJSON([]byte(jsonReq.Water))
	if err != nil {
		return nil, nil, nil, err
	}
	parks, err := posterwire.PolygonsFromGeoJSON([]byte(jsonReq.Parks))
	if err != nil {
		return nil, nil, nil, err
	}

	return roads, water, parks, nil
}

// RenderMapMsgpack renders from the msgpack serialization of the
// structured request.
func (e *Engine) RenderMapMsgpack(requestBin []byte) (*poster.RenderResult, errorsx.Error) {
	endSpan := e.sink.Begin("render: msgpack parse")
	var req poster.RenderRequest
	err := msgpack.Unmarshal(requestBin, &req)
	endSpan()
	if err != nil {
		return nil, errorsx.Wrap(err, "reason", "parsing msgpack render request")
	}

	return e.RenderMap(&req)
}

// RenderMap renders a structured request through the fixed layer order:
// background, water, parks, roads, POIs, gradients, text.
func (e *Engine) RenderMap(req *poster.RenderRequest) (*poster.RenderResult, errorsx.Error) {
	req.ApplyDefaults(e.defaults)

	e.sink.Log(fmt.Sprintf("render: %dx%d, %d roads, %d water, %d parks, %d pois",
		req.Width, req.Height, len(req.Roads), len(req.Water), len(req.Parks), len(req.POIs)))

	if req.NeedsProjection {
		endSpan := e.sink.Begin("render: projection pass")
		for i := range req.Roads {
			projection.ProjectPointsInPlace(req.Roads[i].Coords)
		}
		projectPolysInPlace(req.Water)
		projectPolysInPlace(req.Parks)
		for i, poi := range req.POIs {
			x, y := projection.ProjectPoint(poi.X, poi.Y)
			req.POIs[i] = poster.POI{X: x, Y: y}
		}
		endSpan()
	}

	bounds := projection.CalculateBounds(req.Center.Lat, req.Center.Lon, req.Radius, req.Width, req.Height)

	renderer, err := NewPosterRenderer(req.Width, req.Height, req.Theme, bounds, req.TextPosition, e.font, e.defaults, e.sink)
	if err != nil {
		return nil, err
	}

	widthScale := poster.RoadWidthScale(req.SelectedSizeHeight, req.FrontendScale, e.defaults)

	endSpan := e.sink.Begin("render: draw layers")
	renderer.DrawBackground()
	renderer.DrawWater(req.Water)
	renderer.DrawParks(req.Parks)
	renderer.DrawRoads(req.Roads, widthScale)
	renderer.DrawPOIs(req.POIs, widthScale)
	renderer.DrawGradients()
	endSpan()

	err = renderer.DrawText(req.DisplayCity, req.DisplayCountry, req.Center.Lat, req.Center.Lon)
	if err != nil {
		return nil, err
	}

	endSpan = e.sink.Begin("render: encode png")
	pngData, err := renderer.EncodePNG()
	endSpan()
	if err != nil {
		return nil, err
	}

	return &poster.RenderResult{
		Width:  req.Width,
		Height: req.Height,
		Data:   pngData,
	}, nil
}

// RenderMapBinary is the performance path: already-projected packed
// geometry buffers plus a small configuration JSON, with no intermediate
// structured decode. Road shards are drawn sequentially in caller order;
// ordering only affects draw order among roads of the same class.
func (e *Engine) RenderMapBinary(roadShards [][]float64, waterBin, parksBin []float64, configJSON []byte) (*poster.RenderResult, errorsx.Error) {
	var cfg poster.RenderConfig
	err := json.Unmarshal(configJSON, &cfg)
	if err != nil {
		return nil, errorsx.Wrap(err, "reason", "parsing render config JSON")
	}
	cfg.ApplyDefaults(e.defaults)

	e.sink.Log(fmt.Sprintf("render_binary: %dx%d, %d road shards", cfg.Width, cfg.Height, len(roadShards)))

	bounds := projection.CalculateBounds(cfg.Center.Lat, cfg.Center.Lon, cfg.Radius, cfg.Width, cfg.Height)

	renderer, rendErr := NewPosterRenderer(cfg.Width, cfg.Height, cfg.Theme, bounds, cfg.TextPosition, e.font, e.defaults, e.sink)
	if rendErr != nil {
		return nil, rendErr
	}

	widthScale := poster.RoadWidthScale(cfg.SelectedSizeHeight, cfg.FrontendScale, e.defaults)

	endSpan := e.sink.Begin("render_binary: draw layers")
	renderer.DrawBackground()
	renderer.DrawPolygonsWire(waterBin, renderer.Theme().Water)
	renderer.DrawPolygonsWire(parksBin, renderer.Theme().Parks)
	for _, shard := range roadShards {
		renderer.DrawRoadsWire(shard, widthScale)
	}
	// POI coordinates in the config are geographic
	renderer.DrawPOIs(posterwire.DecodePOIs(cfg.POIs, true), widthScale)
	renderer.DrawGradients()
	endSpan()

	rendErr = renderer.DrawText(cfg.DisplayCity, cfg.DisplayCountry, cfg.Center.Lat, cfg.Center.Lon)
	if rendErr != nil {
		return nil, rendErr
	}

	endSpan = e.sink.Begin("render_binary: encode png")
	pngData, rendErr := renderer.EncodePNG()
	endSpan()
	if rendErr != nil {
		return nil, rendErr
	}

	return &poster.RenderResult{
		Width:  cfg.Width,
		Height: cfg.Height,
		Data:   pngData,
	}, nil
}

func projectPolysInPlace(polys []poster.PolyFeature) {
	for i := range polys {
		projection.ProjectPointsInPlace(polys[i].Exterior)
		for _, ring := range polys[i].Interiors {
			projection.ProjectPointsInPlace(ring)
		}
	}
}
