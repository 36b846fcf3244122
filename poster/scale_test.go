package poster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_RoadWidthScale(t *testing.T) {
	defaults := DefaultRenderDefaults()

	// at the reference height the scale is exactly 1
	assert.InDelta(t, 1.0, RoadWidthScale(4800, 8.0, defaults), 1e-9)

	// the frontend scale never takes part in the formula
	assert.InDelta(t, 1.0, RoadWidthScale(4800, 1.0, defaults), 1e-9)
	assert.InDelta(t, 1.0, RoadWidthScale(4800, 100.0, defaults), 1e-9)

	assert.InDelta(t, 0.5, RoadWidthScale(2400, 8.0, defaults), 1e-9)
	assert.InDelta(t, 2.0, RoadWidthScale(9600, 8.0, defaults), 1e-9)

	a4 := RoadWidthScale(defaults.DefaultSelectedSizeHeight, defaults.DefaultFrontendScale, defaults)
	assert.InDelta(t, 3508.0/4800.0, a4, 1e-9)
}

func Test_RoadWidthScale_AlternateReference(t *testing.T) {
	defaults := DefaultRenderDefaults()
	defaults.ReferenceHeightPx = 1000

	assert.InDelta(t, 2.0, RoadWidthScale(2000, 8.0, defaults), 1e-9)
}

func Test_RenderRequest_ApplyDefaults(t *testing.T) {
	defaults := DefaultRenderDefaults()

	req := RenderRequest{}
	req.ApplyDefaults(defaults)
	assert.InDelta(t, 3508, req.SelectedSizeHeight, 1e-9)
	assert.InDelta(t, 8.0, req.FrontendScale, 1e-9)

	req = RenderRequest{SelectedSizeHeight: 2480, FrontendScale: 4}
	req.ApplyDefaults(defaults)
	assert.InDelta(t, 2480, req.SelectedSizeHeight, 1e-9)
	assert.InDelta(t, 4, req.FrontendScale, 1e-9)
}
