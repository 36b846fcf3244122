package fonts

import (
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/jamesrr39/goutil/errorsx"
	"golang.org/x/image/font/gofont/goregular"
)

var defaultFont *truetype.Font

func init() {
	font, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		panic(err)
	}

	defaultFont = font
}

// DefaultFont is the embedded fallback face used when the caller supplies
// no font of their own.
func DefaultFont() *truetype.Font {
	return defaultFont
}

// LoadFontFile parses a TTF font from disk. A failure here is fatal for
// any render that was going to use the font.
func LoadFontFile(path string) (*truetype.Font, errorsx.Error) {
	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, errorsx.Wrap(err)
	}

	font, err := freetype.ParseFont(fontBytes)
	if err != nil {
		return nil, errorsx.Wrap(err)
	}

	return font, nil
}
