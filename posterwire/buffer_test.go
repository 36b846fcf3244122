package posterwire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Float64sFromBytes_RoundTrip(t *testing.T) {
	data := []float64{0, 1.5, -2.25, 6378137, 48.8566}

	decoded, err := Float64sFromBytes(BytesFromFloat64s(data))
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func Test_Float64sFromBytes_BadLength(t *testing.T) {
	_, err := Float64sFromBytes(make([]byte, 13))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a multiple of 8")
}

func Test_Float64sFromBytes_Empty(t *testing.T) {
	decoded, err := Float64sFromBytes(nil)
	require.NoError(t, err)
	assert.Empty(t, decoded)
}
