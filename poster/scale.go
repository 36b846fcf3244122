package poster

// RenderDefaults carries the reference-resolution constants the scale
// calculations are anchored on. They are injected at construction time so
// alternate reference resolutions can be exercised in tests.
type RenderDefaults struct {
	// ReferenceHeightPx is the output height at which the road base widths
	// are correct unscaled (a 12"x16" print at 300 DPI).
	ReferenceHeightPx float64
	// LegacyResolutionScale is the fixed multiplier applied when no
	// selected output size is supplied, emulating the historical 8x
	// high-resolution output assumption.
	LegacyResolutionScale float64
	// DefaultSelectedSizeHeight is the fallback output height (A4 portrait
	// at 300 DPI).
	DefaultSelectedSizeHeight float64
	DefaultFrontendScale      float64
}

func DefaultRenderDefaults() RenderDefaults {
	return RenderDefaults{
		ReferenceHeightPx:         4800,
		LegacyResolutionScale:     8.0,
		DefaultSelectedSizeHeight: 3508,
		DefaultFrontendScale:      8.0,
	}
}

// RoadWidthScale derives the stroke-width scale factor for the selected
// output height.
//
// frontendScale is accepted for interface stability but does not take part
// in the formula: selectedHeight already includes any frontend multiplier.
func RoadWidthScale(selectedHeight, frontendScale float64, defaults RenderDefaults) float64 {
	_ = frontendScale
	return selectedHeight / defaults.ReferenceHeightPx
}

// LegacyWidth is the stroke width used when no output size information is
// available at all.
func (rt RoadType) LegacyWidth(defaults RenderDefaults) float64 {
	return rt.BaseWidth() * defaults.LegacyResolutionScale
}
