package poster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_IsLatinScript(t *testing.T) {
	assert.True(t, IsLatinScript("Paris"))
	assert.True(t, IsLatinScript("São Paulo"))
	assert.True(t, IsLatinScript("1234 - !"))
	assert.True(t, IsLatinScript(""))

	assert.False(t, IsLatinScript("東京"))
	assert.False(t, IsLatinScript("Москва"))
	assert.False(t, IsLatinScript("القاهرة"))
}

func Test_FormatCityName(t *testing.T) {
	assert.Equal(t, "P  A  R  I  S", FormatCityName("Paris"))
	assert.Equal(t, "O  S  L  O", FormatCityName("oslo"))

	// non-Latin names pass through untouched
	assert.Equal(t, "東京", FormatCityName("東京"))
	assert.Equal(t, "Москва", FormatCityName("Москва"))
}

func Test_FormatCoordinates(t *testing.T) {
	assert.Equal(t, "48.8566° N / 2.3522° E", FormatCoordinates(48.8566, 2.3522))
	assert.Equal(t, "33.8688° S / 151.2093° E", FormatCoordinates(-33.8688, 151.2093))
	assert.Equal(t, "40.7128° N / 74.0060° W", FormatCoordinates(40.7128, -74.006))
	assert.Equal(t, "0.0000° N / 0.0000° E", FormatCoordinates(0, 0))
}

func Test_FitFontSize(t *testing.T) {
	// short texts keep the base size
	assert.InDelta(t, 80, FitFontSize("Paris", 80, 10), 1e-9)
	assert.InDelta(t, 80, FitFontSize("Copenhagen", 80, 10), 1e-9)

	// longer texts shrink proportionally
	assert.InDelta(t, 80*10.0/14.0, FitFontSize("Rio de Janeiro", 80, 10), 1e-9)

	// rune count, not byte count
	assert.InDelta(t, 80, FitFontSize("Zürich", 80, 10), 1e-9)

	// floor of 10
	long := "A very long city name that keeps going on"
	assert.InDelta(t, 10, FitFontSize(long, 80, 10), 1e-9)
}
