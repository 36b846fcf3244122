package poster

// Point is a coordinate pair. Before projection it holds (lon, lat) degrees,
// after projection it holds spherical-Mercator metres.
type Point struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
}

// BoundingBox is the projected (metric) viewing window of a render.
type BoundingBox struct {
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

func (b BoundingBox) Width() float64 {
	return b.MaxX - b.MinX
}

func (b BoundingBox) Height() float64 {
	return b.MaxY - b.MinY
}

// RoadType classifies a road into one of six visual classes. The integer
// values are part of the wire format and used as lookup table indexes, so
// they must never be reordered.
type RoadType int

const (
	RoadTypeMotorway    RoadType = 0
	RoadTypePrimary     RoadType = 1
	RoadTypeSecondary   RoadType = 2
	RoadTypeTertiary    RoadType = 3
	RoadTypeResidential RoadType = 4
	RoadTypeDefault     RoadType = 5

	NumRoadTypes = 6
)

var roadTypeBaseWidths = [NumRoadTypes]float64{
	RoadTypeMotorway:    1.2,
	RoadTypePrimary:     1.0,
	RoadTypeSecondary:   0.8,
	RoadTypeTertiary:    0.6,
	RoadTypeResidential: 0.4,
	RoadTypeDefault:     0.4,
}

var roadTypeNames = [NumRoadTypes]string{
	RoadTypeMotorway:    "motorway",
	RoadTypePrimary:     "primary",
	RoadTypeSecondary:   "secondary",
	RoadTypeTertiary:    "tertiary",
	RoadTypeResidential: "residential",
	RoadTypeDefault:     "default",
}

// RoadTypeFromWire normalizes a wire-format discriminant. Anything outside
// the known range becomes RoadTypeDefault.
func RoadTypeFromWire(v int) RoadType {
	if v < 0 || v >= NumRoadTypes {
		return RoadTypeDefault
	}
	return RoadType(v)
}

// RoadTypeFromHighway maps an OSM highway tag value onto a road class.
func RoadTypeFromHighway(highway string) RoadType {
	switch highway {
	case "motorway", "motorway_link":
		return RoadTypeMotorway
	case "trunk", "trunk_link", "primary", "primary_link":
		return RoadTypePrimary
	case "secondary", "secondary_link":
		return RoadTypeSecondary
	case "tertiary", "tertiary_link":
		return RoadTypeTertiary
	case "residential", "living_street", "unclassified":
		return RoadTypeResidential
	default:
		return RoadTypeDefault
	}
}

func (rt RoadType) String() string {
	if rt < 0 || rt >= NumRoadTypes {
		return "default"
	}
	return roadTypeNames[rt]
}

// BaseWidth is the stroke width of the class at scale factor 1.0.
func (rt RoadType) BaseWidth() float64 {
	if rt < 0 || rt >= NumRoadTypes {
		rt = RoadTypeDefault
	}
	return roadTypeBaseWidths[rt]
}

// ScaledWidth is the stroke width at the given resolution scale factor.
func (rt RoadType) ScaledWidth(scale float64) float64 {
	return rt.BaseWidth() * scale
}

// Road is an ordered polyline of projected coordinates. It needs at least
// two coordinates to be stroked.
type Road struct {
	Coords []Point  `json:"coords" msgpack:"coords"`
	Type   RoadType `json:"road_type" msgpack:"road_type"`
}

// PolyFeature is a polygon with an exterior ring and zero or more interior
// rings (holes). Rings with fewer than three points are not drawable.
type PolyFeature struct {
	Exterior  []Point   `json:"exterior" msgpack:"exterior"`
	Interiors [][]Point `json:"interiors" msgpack:"interiors"`
}

// POI is a single point of interest marker.
type POI struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
}

// Center is the geographic centre of the poster.
type Center struct {
	Lat float64 `json:"lat" msgpack:"lat"`
	Lon float64 `json:"lon" msgpack:"lon"`
}
