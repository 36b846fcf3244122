package posterrenderer

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/jamesrr39/goutil/errorsx"
)

// Pixmap is the premultiplied-alpha RGBA pixel buffer a render session
// draws into. image.RGBA already stores premultiplied color, so the manual
// compositor can work on Pix directly while draw2d strokes and fills
// through the same image.
type Pixmap struct {
	img    *image.RGBA
	width  int
	height int
}

func NewPixmap(width, height int) (*Pixmap, errorsx.Error) {
	if width <= 0 || height <= 0 {
		return nil, errorsx.Errorf("invalid pixmap size: %dx%d", width, height)
	}

	return &Pixmap{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		width:  width,
		height: height,
	}, nil
}

func (p *Pixmap) Width() int {
	return p.width
}

func (p *Pixmap) Height() int {
	return p.height
}

// RGBA exposes the underlying image for the vector rasterizer.
func (p *Pixmap) RGBA() *image.RGBA {
	return p.img
}

// Fill overwrites every pixel with c.
func (p *Pixmap) Fill(c color.Color) {
	draw.Draw(p.img, p.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// row returns the raw premultiplied RGBA bytes of scanline y.
func (p *Pixmap) row(y int) []byte {
	start := p.img.PixOffset(0, y)
	return p.img.Pix[start : start+p.width*4]
}

// EncodePNG encodes the buffer.
func (p *Pixmap) EncodePNG() ([]byte, errorsx.Error) {
	buf := bytes.NewBuffer(nil)
	err := png.Encode(buf, p.img)
	if err != nil {
		return nil, errorsx.Wrap(err)
	}
	return buf.Bytes(), nil
}
