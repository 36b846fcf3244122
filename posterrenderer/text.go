package posterrenderer

import (
	"image"
	"image/color"
	"strings"

	"github.com/golang/freetype/truetype"
	"github.com/jamesrr39/goutil/errorsx"
	"github.com/llgcode/draw2d/draw2dimg"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/ianho7/maptoposter-online/poster"
)

const (
	// referenceCanvasSize is the logical canvas edge the text base sizes
	// are designed against.
	referenceCanvasSize = 1200.0

	cityBaseSize         = 80.0
	countryBaseSize      = 28.0
	coordinatesBaseSize  = 18.0
	attributionBaseSize  = 10.0
	cityCondenseRunes    = 10
	attributionText      = "© OpenStreetMap contributors"
	decorationLineOffset = 0.03
)

// textScale derives the label scale factor. Taking the minimum of both
// axes keeps text from oversizing on wide, short canvases.
func (r *PosterRenderer) textScale() float64 {
	wScale := float64(r.width) / referenceCanvasSize
	hScale := float64(r.height) / referenceCanvasSize * 1.1
	if wScale < hScale {
		return wScale
	}
	return hScale
}

// DrawText lays out and composites the poster labels: city name, country,
// centre coordinates, a decoration rule and the attribution line. Glyph
// shaping and coverage come from the font; placement is solved from
// measured extents.
func (r *PosterRenderer) DrawText(city, country string, lat, lon float64) errorsx.Error {
	if r.font == nil {
		return errorsx.Errorf("no font loaded")
	}

	textColor := poster.ParseHexColor(r.theme.Text)
	scale := r.textScale()
	baseY := r.textPosition.AnchorRatio()

	formattedCity := poster.FormatCityName(city)
	citySize := poster.FitFontSize(formattedCity, cityBaseSize*scale, cityCondenseRunes)
	r.drawTextCentered(formattedCity, baseY+0.05, citySize, textColor)

	r.drawTextCentered(strings.ToUpper(country), baseY, countryBaseSize*scale, textColor)

	r.drawTextCentered(poster.FormatCoordinates(lat, lon), baseY-0.04, coordinatesBaseSize*scale, textColor)

	r.drawDecorationLine(textColor, scale, baseY+decorationLineOffset)

	r.drawTextBottomRight(attributionText, attributionBaseSize*scale, textColor)

	return nil
}

// rasterizeText shapes a string into a single-channel coverage bitmap at
// the given size, returning the bitmap, its advance width and the baseline
// offset from the bitmap top.
func (r *PosterRenderer) rasterizeText(text string, size float64) (*image.Alpha, int, int) {
	face := truetype.NewFace(r.font, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()

	drawer := &font.Drawer{Face: face}
	width := drawer.MeasureString(text).Ceil()
	if width <= 0 {
		return nil, 0, 0
	}

	coverage := image.NewAlpha(image.Rect(0, 0, width+1, ascent+descent))
	drawer.Dst = coverage
	drawer.Src = image.NewUniform(color.Alpha{A: 0xff})
	drawer.Dot = fixed.P(0, ascent)
	drawer.DrawString(text)

	return coverage, width, ascent
}

// drawTextCentered blends a text block horizontally centred with its
// baseline at height*yRatio.
func (r *PosterRenderer) drawTextCentered(text string, yRatio, size float64, c color.RGBA) {
	coverage, width, ascent := r.rasterizeText(text, size)
	if coverage == nil {
		return
	}

	x := (r.width - width) / 2
	y := int(float64(r.height)*yRatio) - ascent

	r.blendGlyphImage(coverage, x, y, c)
}

// drawTextBottomRight blends a text block against the bottom-right corner
// with a scale-aware margin.
func (r *PosterRenderer) drawTextBottomRight(text string, size float64, c color.RGBA) {
	coverage, width, ascent := r.rasterizeText(text, size)
	if coverage == nil {
		return
	}

	margin := int(20 * r.textScale())
	x := r.width - width - margin
	y := r.height - margin - ascent

	r.blendGlyphImage(coverage, x, y, c)
}

// drawDecorationLine strokes the horizontal rule between country name and
// city name, spanning the central 20% of the width.
func (r *PosterRenderer) drawDecorationLine(c color.RGBA, scale, yRatio float64) {
	y := float64(r.height) * yRatio
	x1 := float64(r.width) * 0.4
	x2 := float64(r.width) * 0.6

	gc := draw2dimg.NewGraphicContext(r.pixmap.RGBA())
	gc.SetStrokeColor(c)
	gc.SetLineWidth(1 * scale)
	gc.MoveTo(x1, y)
	gc.LineTo(x2, y)
	gc.Stroke()
}
