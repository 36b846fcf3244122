package webservices

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"
	"github.com/jamesrr39/goutil/logpkg"

	"github.com/ianho7/maptoposter-online/poster"
)

// InfoService reports the service capabilities: the render entry modes and
// the reference-resolution defaults in effect, so a frontend can size its
// requests without hardcoding them.
type InfoService struct {
	logger   *logpkg.Logger
	defaults poster.RenderDefaults
	chi.Router
}

func NewInfoService(logger *logpkg.Logger, defaults poster.RenderDefaults) *InfoService {
	ws := &InfoService{logger, defaults, chi.NewRouter()}
	ws.Get("/", ws.handleGet)

	return ws
}

type infoType struct {
	RenderModes       []string `json:"renderModes"`
	ReferenceHeightPx float64  `json:"referenceHeightPx"`
	DefaultHeightPx   float64  `json:"defaultHeightPx"`
	MaxBodyBytes      int      `json:"maxBodyBytes"`
}

func (ws *InfoService) handleGet(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, infoType{
		RenderModes:       []string{"json", "structured", "binary"},
		ReferenceHeightPx: ws.defaults.ReferenceHeightPx,
		DefaultHeightPx:   ws.defaults.DefaultSelectedSizeHeight,
		MaxBodyBytes:      maxRequestBodyBytes,
	})
}
