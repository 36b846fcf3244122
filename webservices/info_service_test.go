package webservices

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jamesrr39/goutil/logpkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ianho7/maptoposter-online/poster"
)

func Test_InfoService(t *testing.T) {
	logger := logpkg.NewLogger(io.Discard, logpkg.LogLevelError)
	service := NewInfoService(logger, poster.DefaultRenderDefaults())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	service.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var info infoType
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, []string{"json", "structured", "binary"}, info.RenderModes)
	assert.InDelta(t, 4800, info.ReferenceHeightPx, 1e-9)
	assert.InDelta(t, 3508, info.DefaultHeightPx, 1e-9)
	assert.Equal(t, maxRequestBodyBytes, info.MaxBodyBytes)
}
