package poster

import (
	"image/color"
	"strconv"
)

// Theme maps the semantic layers of a poster onto hex color strings. It is
// supplied by the caller and immutable for the duration of a render.
type Theme struct {
	Background      string `json:"bg" msgpack:"bg"`
	Text            string `json:"text" msgpack:"text"`
	GradientColor   string `json:"gradient_color" msgpack:"gradient_color"`
	Water           string `json:"water" msgpack:"water"`
	Parks           string `json:"parks" msgpack:"parks"`
	RoadMotorway    string `json:"road_motorway" msgpack:"road_motorway"`
	RoadPrimary     string `json:"road_primary" msgpack:"road_primary"`
	RoadSecondary   string `json:"road_secondary" msgpack:"road_secondary"`
	RoadTertiary    string `json:"road_tertiary" msgpack:"road_tertiary"`
	RoadResidential string `json:"road_residential" msgpack:"road_residential"`
	RoadDefault     string `json:"road_default" msgpack:"road_default"`
}

// RoadColor returns the hex color for a road class, via a table indexed by
// the wire discriminant.
func (t *Theme) RoadColor(rt RoadType) string {
	roadColors := [NumRoadTypes]string{
		RoadTypeMotorway:    t.RoadMotorway,
		RoadTypePrimary:     t.RoadPrimary,
		RoadTypeSecondary:   t.RoadSecondary,
		RoadTypeTertiary:    t.RoadTertiary,
		RoadTypeResidential: t.RoadResidential,
		RoadTypeDefault:     t.RoadDefault,
	}
	if rt < 0 || rt >= NumRoadTypes {
		rt = RoadTypeDefault
	}
	return roadColors[rt]
}

// ParseHexColor parses a "#RRGGBB" string into an opaque color. Malformed
// input yields opaque black rather than an error, so a bad theme field can
// never abort a render.
func ParseHexColor(hex string) color.RGBA {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}

	if len(hex) != 6 {
		return color.RGBA{A: 0xff}
	}

	r, errR := strconv.ParseUint(hex[0:2], 16, 8)
	g, errG := strconv.ParseUint(hex[2:4], 16, 8)
	b, errB := strconv.ParseUint(hex[4:6], 16, 8)
	if errR != nil || errG != nil || errB != nil {
		return color.RGBA{A: 0xff}
	}

	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}
}
