package posterrenderer

import (
	"image"
	"image/color"

	"github.com/ianho7/maptoposter-online/poster"
)

// The gradient bands and glyphs are composited by hand, directly on the
// premultiplied buffer, instead of going through the vector rasterizer:
// the per-row source color of a gradient and the coverage-weighted SrcOver
// of a glyph must blend against already-drawn pixels exactly once.

const gradientBandRatio = 0.25

// DrawGradients blends the theme gradient color over the top and bottom
// quarter of the image.
func (r *PosterRenderer) DrawGradients() {
	baseColor := poster.ParseHexColor(r.theme.GradientColor)

	r.drawGradientBand(int(float64(r.height)*(1-gradientBandRatio)), r.height, false, baseColor)
	r.drawGradientBand(0, int(float64(r.height)*gradientBandRatio), true, baseColor)
}

// drawGradientBand runs a scanline loop over rows [yStart, yEnd). The
// interpolation factor t is linear in y; fadeUp selects whether full
// strength is at the top edge (top band) or the bottom edge (bottom band).
func (r *PosterRenderer) drawGradientBand(yStart, yEnd int, fadeUp bool, baseColor color.RGBA) {
	if yStart >= yEnd {
		return
	}

	baseR := float64(baseColor.R) / 255
	baseG := float64(baseColor.G) / 255
	baseB := float64(baseColor.B) / 255
	baseA := float64(baseColor.A) / 255

	span := float64(yEnd - yStart)

	for y := yStart; y < yEnd; y++ {
		var t float64
		if fadeUp {
			t = float64(yEnd-y) / span
		} else {
			t = float64(y-yStart) / span
		}

		alpha := t * baseA
		if alpha <= 0 {
			continue
		}

		// premultiplied per-row source color, as 0-255 integers
		srcR := uint32(baseR*alpha*255 + 0.5)
		srcG := uint32(baseG*alpha*255 + 0.5)
		srcB := uint32(baseB*alpha*255 + 0.5)
		srcA := uint8(alpha*255 + 0.5)
		invA := 1 - alpha

		row := r.pixmap.row(y)
		for x := 0; x < len(row); x += 4 {
			dstA := row[x+3]
			if dstA == 0 {
				row[x] = uint8(srcR)
				row[x+1] = uint8(srcG)
				row[x+2] = uint8(srcB)
				row[x+3] = srcA
				continue
			}

			// SrcOver: out = src + dst*(1-srcAlpha)
			outR := srcR + uint32(float64(row[x])*invA+0.5)
			outG := srcG + uint32(float64(row[x+1])*invA+0.5)
			outB := srcB + uint32(float64(row[x+2])*invA+0.5)
			outA := (alpha + float64(dstA)/255*invA) * 255

			row[x] = uint8(min32(outR, 255))
			row[x+1] = uint8(min32(outG, 255))
			row[x+2] = uint8(min32(outB, 255))
			row[x+3] = uint8(outA + 0.5)
		}
	}
}

// blendGlyphImage composites a single-channel coverage bitmap at (x0, y0)
// using the text color, converting the un-premultiplied color to
// premultiplied per covered pixel and clipping to the buffer.
func (r *PosterRenderer) blendGlyphImage(coverage *image.Alpha, x0, y0 int, c color.RGBA) {
	covBounds := coverage.Bounds()

	colR := float64(c.R) / 255
	colG := float64(c.G) / 255
	colB := float64(c.B) / 255
	colA := float64(c.A) / 255

	for dy := covBounds.Min.Y; dy < covBounds.Max.Y; dy++ {
		py := y0 + dy - covBounds.Min.Y
		if py < 0 || py >= r.height {
			continue
		}
		row := r.pixmap.row(py)

		for dx := covBounds.Min.X; dx < covBounds.Max.X; dx++ {
			cov := coverage.AlphaAt(dx, dy).A
			if cov == 0 {
				continue
			}

			px := x0 + dx - covBounds.Min.X
			if px < 0 || px >= r.width {
				continue
			}

			srcA := float64(cov) / 255 * colA

			i := px * 4
			dstR := float64(row[i]) / 255
			dstG := float64(row[i+1]) / 255
			dstB := float64(row[i+2]) / 255
			dstA := float64(row[i+3]) / 255

			invA := 1 - srcA
			outR := colR*srcA + dstR*invA
			outG := colG*srcA + dstG*invA
			outB := colB*srcA + dstB*invA
			outA := srcA + dstA*invA

			row[i] = uint8(outR*255 + 0.5)
			row[i+1] = uint8(outG*255 + 0.5)
			row[i+2] = uint8(outB*255 + 0.5)
			row[i+3] = uint8(outA*255 + 0.5)
		}
	}
}

func min32(v, max uint32) uint32 {
	if v > max {
		return max
	}
	return v
}
