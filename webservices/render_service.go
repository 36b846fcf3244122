package webservices

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"
	"github.com/jamesrr39/goutil/errorsx"
	"github.com/jamesrr39/goutil/logpkg"
	"github.com/jamesrr39/semaphore"
	"github.com/pkg/profile"

	"github.com/ianho7/maptoposter-online/posterrenderer"
	"github.com/ianho7/maptoposter-online/posterwire"
)

const (
	maxRequestBodyBytes   = 256 * 1024 * 1024
	maxConcurrentRenders  = 4
	multipartMemoryBudget = 32 * 1024 * 1024
)

// RenderService exposes the render entry modes over HTTP. Success responses
// are the PNG bytes; failures are a JSON envelope {success, error}.
type RenderService struct {
	logger        *logpkg.Logger
	engine        *posterrenderer.Engine
	sema          *semaphore.Semaphore
	shouldProfile bool
	maxBodyBytes  int64
	chi.Router
}

func NewRenderService(logger *logpkg.Logger, engine *posterrenderer.Engine, shouldProfile bool) *RenderService {
	rs := &RenderService{logger, engine, semaphore.NewSemaphore(maxConcurrentRenders), shouldProfile, maxRequestBodyBytes, chi.NewRouter()}

	rs.Post("/", rs.handleRenderJSON)
	rs.Post("/structured", rs.handleRenderStructured)
	rs.Post("/binary", rs.handleRenderBinary)

	return rs
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (rs *RenderService) respondError(w http.ResponseWriter, r *http.Request, err errorsx.Error, statusCode int) {
	rs.logger.Error("render request failed: %q\n%s", err.Error(), err.Stack())

	render.Status(r, statusCode)
	render.JSON(w, r, errorResponse{Success: false, Error: err.Error()})
}

func (rs *RenderService) writePNG(w http.ResponseWriter, r *http.Request, data []byte) {
	w.Header().Set("Content-Type", "image/png")
	_, err := w.Write(data)
	if err != nil {
		// broken pipe (request cancelled); nothing useful left to do
		rs.logger.Warn("failed writing png response: %q", err)
	}
}

// handleRenderJSON serves the JSON entry mode: configuration with embedded
// GeoJSON payload strings.
func (rs *RenderService) handleRenderJSON(w http.ResponseWriter, r *http.Request) {
	if rs.shouldProfile {
		defer profile.Start().Stop()
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, rs.maxBodyBytes))
	if err != nil {
		rs.respondError(w, r, errorsx.Wrap(err), http.StatusBadRequest)
		return
	}

	rs.sema.Add()
	defer rs.sema.Done()

	result, renderErr := rs.engine.RenderMapJSON(body)
	if renderErr != nil {
		rs.respondError(w, r, renderErr, http.StatusBadRequest)
		return
	}

	rs.writePNG(w, r, result.Data)
}

// handleRenderStructured serves the msgpack serialization of the
// structured request.
func (rs *RenderService) handleRenderStructured(w http.ResponseWriter, r *http.Request) {
	if rs.shouldProfile {
		defer profile.Start().Stop()
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, rs.maxBodyBytes))
	if err != nil {
		rs.respondError(w, r, errorsx.Wrap(err), http.StatusBadRequest)
		return
	}

	rs.sema.Add()
	defer rs.sema.Done()

	result, renderErr := rs.engine.RenderMapMsgpack(body)
	if renderErr != nil {
		rs.respondError(w, r, renderErr, http.StatusBadRequest)
		return
	}

	rs.writePNG(w, r, result.Data)
}

// handleRenderBinary serves the performance path: a multipart form with a
// "config" JSON part, any number of "roads" shard parts and optional
// "water"/"parks" parts, each a little-endian f64 buffer.
func (rs *RenderService) handleRenderBinary(w http.ResponseWriter, r *http.Request) {
	if rs.shouldProfile {
		defer profile.Start().Stop()
	}

	r.Body = http.MaxBytesReader(w, r.Body, rs.maxBodyBytes)

	err := r.ParseMultipartForm(multipartMemoryBudget)
	if err != nil {
		rs.respondError(w, r, errorsx.Wrap(err), http.StatusBadRequest)
		return
	}

	configValues := r.MultipartForm.Value["config"]
	if len(configValues) != 1 {
		rs.respondError(w, r, errorsx.Errorf("expected exactly one config part, got %d", len(configValues)), http.StatusBadRequest)
		return
	}

	var roadShards [][]float64
	for _, fileHeader := range r.MultipartForm.File["roads"] {
		shard, readErr := readFloat64Part(fileHeader)
		if readErr != nil {
			rs.respondError(w, r, readErr, http.StatusBadRequest)
			return
		}
		roadShards = append(roadShards, shard)
	}

	waterBin, readErr := readOptionalFloat64Part(r, "water")
	if readErr != nil {
		rs.respondError(w, r, readErr, http.StatusBadRequest)
		return
	}
	parksBin, readErr := readOptionalFloat64Part(r, "parks")
	if readErr != nil {
		rs.respondError(w, r, readErr, http.StatusBadRequest)
		return
	}

	rs.sema.Add()
	defer rs.sema.Done()

	result, renderErr := rs.engine.RenderMapBinary(roadShards, waterBin, parksBin, []byte(configValues[0]))
	if renderErr != nil {
		rs.respondError(w, r, renderErr, http.StatusBadRequest)
		return
	}

	rs.writePNG(w, r, result.Data)
}

func readOptionalFloat64Part(r *http.Request, name string) ([]float64, errorsx.Error) {
	fileHeaders := r.MultipartForm.File[name]
	if len(fileHeaders) == 0 {
		return nil, nil
	}
	return readFloat64Part(fileHeaders[0])
}

func readFloat64Part(fileHeader *multipart.FileHeader) ([]float64, errorsx.Error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, errorsx.Wrap(err)
	}
	defer file.Close()

	b, err := io.ReadAll(file)
	if err != nil {
		return nil, errorsx.Wrap(err)
	}

	return posterwire.Float64sFromBytes(b)
}
