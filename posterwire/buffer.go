package posterwire

import (
	"encoding/binary"
	"math"

	"github.com/jamesrr39/goutil/errorsx"
)

// Float64sFromBytes reinterprets a little-endian byte buffer as a packed
// f64 buffer, for shards arriving over files or HTTP bodies.
func Float64sFromBytes(b []byte) ([]float64, errorsx.Error) {
	if len(b)%8 != 0 {
		return nil, errorsx.Errorf("buffer length %d is not a multiple of 8", len(b))
	}

	data := make([]float64, len(b)/8)
	for i := range data {
		data[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[i*8:]))
	}
	return data, nil
}

// BytesFromFloat64s is the inverse of Float64sFromBytes.
func BytesFromFloat64s(data []float64) []byte {
	b := make([]byte, len(data)*8)
	for i, v := range data {
		binary.LittleEndian.PutUint64(b[i*8:], math.Float64bits(v))
	}
	return b
}
