package poster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_RoadTypeFromWire(t *testing.T) {
	assert.Equal(t, RoadTypeMotorway, RoadTypeFromWire(0))
	assert.Equal(t, RoadTypePrimary, RoadTypeFromWire(1))
	assert.Equal(t, RoadTypeSecondary, RoadTypeFromWire(2))
	assert.Equal(t, RoadTypeTertiary, RoadTypeFromWire(3))
	assert.Equal(t, RoadTypeResidential, RoadTypeFromWire(4))
	assert.Equal(t, RoadTypeDefault, RoadTypeFromWire(5))

	// out-of-range discriminants normalize to the default class
	assert.Equal(t, RoadTypeDefault, RoadTypeFromWire(6))
	assert.Equal(t, RoadTypeDefault, RoadTypeFromWire(-1))
	assert.Equal(t, RoadTypeDefault, RoadTypeFromWire(255))
}

func Test_RoadTypeFromHighway(t *testing.T) {
	tests := []struct {
		highway string
		want    RoadType
	}{
		{"motorway", RoadTypeMotorway},
		{"motorway_link", RoadTypeMotorway},
		{"trunk", RoadTypePrimary},
		{"primary", RoadTypePrimary},
		{"secondary_link", RoadTypeSecondary},
		{"tertiary", RoadTypeTertiary},
		{"residential", RoadTypeResidential},
		{"living_street", RoadTypeResidential},
		{"unclassified", RoadTypeResidential},
		{"footway", RoadTypeDefault},
		{"", RoadTypeDefault},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, RoadTypeFromHighway(test.highway), test.highway)
	}
}

func Test_RoadType_Widths(t *testing.T) {
	assert.InDelta(t, 1.2, RoadTypeMotorway.ScaledWidth(1.0), 1e-9)
	assert.InDelta(t, 1.0, RoadTypePrimary.ScaledWidth(1.0), 1e-9)
	assert.InDelta(t, 0.8, RoadTypeSecondary.ScaledWidth(1.0), 1e-9)
	assert.InDelta(t, 0.6, RoadTypeTertiary.ScaledWidth(1.0), 1e-9)
	assert.InDelta(t, 0.4, RoadTypeResidential.ScaledWidth(1.0), 1e-9)
	assert.InDelta(t, 0.4, RoadTypeDefault.ScaledWidth(1.0), 1e-9)

	assert.InDelta(t, 2.4, RoadTypeMotorway.ScaledWidth(2.0), 1e-9)
}

func Test_RoadType_LegacyWidth(t *testing.T) {
	defaults := DefaultRenderDefaults()

	assert.InDelta(t, 9.6, RoadTypeMotorway.LegacyWidth(defaults), 1e-9)
	assert.InDelta(t, 8.0, RoadTypePrimary.LegacyWidth(defaults), 1e-9)
	assert.InDelta(t, 3.2, RoadTypeResidential.LegacyWidth(defaults), 1e-9)
}

func Test_BoundingBox(t *testing.T) {
	b := BoundingBox{MinX: -10, MaxX: 30, MinY: 5, MaxY: 15}
	assert.InDelta(t, 40, b.Width(), 1e-9)
	assert.InDelta(t, 10, b.Height(), 1e-9)
}

func Test_TextPosition_AnchorRatio(t *testing.T) {
	assert.InDelta(t, 0.10, TextPositionTop.AnchorRatio(), 1e-9)
	assert.InDelta(t, 0.50, TextPositionCenter.AnchorRatio(), 1e-9)
	assert.InDelta(t, 0.88, TextPositionBottom.AnchorRatio(), 1e-9)

	// absent or unknown positions anchor at the top
	assert.InDelta(t, 0.10, TextPosition("").AnchorRatio(), 1e-9)
	assert.InDelta(t, 0.10, TextPosition("sideways").AnchorRatio(), 1e-9)
}
