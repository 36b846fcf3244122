package poster

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParseHexColor(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}, ParseHexColor("#ff0000"))
	assert.Equal(t, color.RGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 0xff}, ParseHexColor("1a2b3c"))
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, ParseHexColor("#FFFFFF"))

	// malformed inputs fall back to opaque black
	assert.Equal(t, color.RGBA{A: 0xff}, ParseHexColor(""))
	assert.Equal(t, color.RGBA{A: 0xff}, ParseHexColor("#fff"))
	assert.Equal(t, color.RGBA{A: 0xff}, ParseHexColor("#zzzzzz"))
	assert.Equal(t, color.RGBA{A: 0xff}, ParseHexColor("#ff00004f"))
}

func Test_Theme_RoadColor(t *testing.T) {
	theme := Theme{
		RoadMotorway:    "#111111",
		RoadPrimary:     "#222222",
		RoadSecondary:   "#333333",
		RoadTertiary:    "#444444",
		RoadResidential: "#555555",
		RoadDefault:     "#666666",
	}

	assert.Equal(t, "#111111", theme.RoadColor(RoadTypeMotorway))
	assert.Equal(t, "#444444", theme.RoadColor(RoadTypeTertiary))
	assert.Equal(t, "#666666", theme.RoadColor(RoadTypeDefault))
	assert.Equal(t, "#666666", theme.RoadColor(RoadType(42)))
}
