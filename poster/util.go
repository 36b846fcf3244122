package poster

import (
	"fmt"
	"strings"
	"unicode"
)

// IsLatinScript reports whether the text is predominantly Latin-script.
// Texts without alphabetic characters count as Latin.
func IsLatinScript(text string) bool {
	var latinCount, totalAlpha int
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		totalAlpha++
		if r < 0x250 {
			latinCount++
		}
	}

	if totalAlpha == 0 {
		return true
	}

	return float64(latinCount)/float64(totalAlpha) > 0.8
}

// FormatCityName prepares a city name for the headline: Latin-script names
// are uppercased with double-space letter spacing, other scripts are left
// untouched.
func FormatCityName(city string) string {
	if !IsLatinScript(city) {
		return city
	}

	upper := strings.ToUpper(city)
	letters := make([]string, 0, len(upper))
	for _, r := range upper {
		letters = append(letters, string(r))
	}
	return strings.Join(letters, "  ")
}

// FormatCoordinates renders the centre as a degree string, e.g.
// "48.8566° N / 2.3522° E".
func FormatCoordinates(lat, lon float64) string {
	latDir := "N"
	if lat < 0 {
		latDir = "S"
		lat = -lat
	}
	lonDir := "E"
	if lon < 0 {
		lonDir = "W"
		lon = -lon
	}

	return fmt.Sprintf("%.4f° %s / %.4f° %s", lat, latDir, lon, lonDir)
}

// FitFontSize condenses a base font size for texts longer than threshold
// runes, with a floor of 10.
func FitFontSize(text string, baseSize float64, threshold int) float64 {
	runeCount := len([]rune(text))
	if runeCount <= threshold {
		return baseSize
	}

	size := baseSize * float64(threshold) / float64(runeCount)
	if size < 10 {
		return 10
	}
	return size
}
