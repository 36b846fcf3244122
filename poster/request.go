package poster

// TextPosition selects the vertical anchor of the text block.
type TextPosition string

const (
	TextPositionTop    TextPosition = "top"
	TextPositionCenter TextPosition = "center"
	TextPositionBottom TextPosition = "bottom"
)

// AnchorRatio is the vertical anchor as a fraction of the image height.
// Unknown values anchor like TextPositionTop.
func (tp TextPosition) AnchorRatio() float64 {
	switch tp {
	case TextPositionCenter:
		return 0.50
	case TextPositionBottom:
		return 0.88
	default:
		return 0.10
	}
}

// RenderRequest is the fully structured render input: geometry already
// decoded into typed features, plus canvas, theme and label configuration.
type RenderRequest struct {
	Center Center  `json:"center" msgpack:"center"`
	Radius float64 `json:"radius" msgpack:"radius"`

	Roads []Road        `json:"roads" msgpack:"roads"`
	Water []PolyFeature `json:"water" msgpack:"water"`
	Parks []PolyFeature `json:"parks" msgpack:"parks"`
	POIs  []POI         `json:"pois,omitempty" msgpack:"pois,omitempty"`

	Theme Theme `json:"theme" msgpack:"theme"`

	Width  int `json:"width" msgpack:"width"`
	Height int `json:"height" msgpack:"height"`

	DisplayCity    string       `json:"display_city" msgpack:"display_city"`
	DisplayCountry string       `json:"display_country" msgpack:"display_country"`
	TextPosition   TextPosition `json:"text_position,omitempty" msgpack:"text_position,omitempty"`

	// NeedsProjection marks the geometry as geographic degrees still to be
	// projected. Pre-projected input must not be projected a second time.
	NeedsProjection bool `json:"needs_projection,omitempty" msgpack:"needs_projection,omitempty"`

	// SelectedSizeHeight is the native height of the selected output size
	// (before any frontend multiplier), e.g. 3508 for A4 portrait.
	SelectedSizeHeight float64 `json:"selected_size_height,omitempty" msgpack:"selected_size_height,omitempty"`
	FrontendScale      float64 `json:"frontend_scale,omitempty" msgpack:"frontend_scale,omitempty"`
}

// ApplyDefaults fills the zero-valued scaling fields.
func (req *RenderRequest) ApplyDefaults(defaults RenderDefaults) {
	if req.SelectedSizeHeight == 0 {
		req.SelectedSizeHeight = defaults.DefaultSelectedSizeHeight
	}
	if req.FrontendScale == 0 {
		req.FrontendScale = defaults.DefaultFrontendScale
	}
}

// RenderConfig is the small JSON configuration accompanying the raw binary
// buffer entry mode. Geometry travels separately as packed f64 buffers.
type RenderConfig struct {
	Center Center  `json:"center"`
	Radius float64 `json:"radius"`
	Theme  Theme   `json:"theme"`

	Width  int `json:"width"`
	Height int `json:"height"`

	DisplayCity    string       `json:"display_city"`
	DisplayCountry string       `json:"display_country"`
	TextPosition   TextPosition `json:"text_position,omitempty"`

	SelectedSizeHeight float64 `json:"selected_size_height,omitempty"`
	FrontendScale      float64 `json:"frontend_scale,omitempty"`

	// POIs is an optional packed buffer [count, x1,y1, ...] holding
	// geographic coordinates, projected before drawing.
	POIs []float64 `json:"pois,omitempty"`
}

func (cfg *RenderConfig) ApplyDefaults(defaults RenderDefaults) {
	if cfg.SelectedSizeHeight == 0 {
		cfg.SelectedSizeHeight = defaults.DefaultSelectedSizeHeight
	}
	if cfg.FrontendScale == 0 {
		cfg.FrontendScale = defaults.DefaultFrontendScale
	}
}

// RenderResult carries the encoded PNG of a successful render.
type RenderResult struct {
	Width  int
	Height int
	Data   []byte
}
