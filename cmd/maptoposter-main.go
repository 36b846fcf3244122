package main

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/golang/freetype/truetype"
	tracing "github.com/jamesrr39/go-tracing"
	"github.com/jamesrr39/goutil/errorsx"
	"github.com/jamesrr39/goutil/logpkg"
	"github.com/pkg/profile"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/ianho7/maptoposter-online/fonts"
	"github.com/ianho7/maptoposter-online/poster"
	"github.com/ianho7/maptoposter-online/posterrenderer"
	"github.com/ianho7/maptoposter-online/posterwire"
	"github.com/ianho7/maptoposter-online/webservices"
)

func main() {
	setupRender()
	setupServe()

	kingpin.Parse()
}

func newLogger(verbose bool) *logpkg.Logger {
	logLevel := logpkg.LogLevelInfo
	if verbose {
		logLevel = logpkg.LogLevelDebug
	}
	return logpkg.NewLogger(os.Stderr, logLevel)
}

func loadFont(fontPath string) (*truetype.Font, errorsx.Error) {
	if fontPath == "" {
		return fonts.DefaultFont(), nil
	}
	return fonts.LoadFontFile(fontPath)
}

func setupRender() {
	cmd := kingpin.Command("render", "render a poster to a PNG file")
	configPath := cmd.Flag("config", "render configuration JSON file").Required().String()
	outPath := cmd.Flag("out", "output PNG file").Required().String()
	fontPath := cmd.Flag("font", "TTF font file (default: embedded font)").String()
	roadShardPaths := cmd.Flag("roads", "packed road buffer file (repeatable, little-endian f64)").Strings()
	waterPath := cmd.Flag("water", "packed water polygon buffer file").String()
	parksPath := cmd.Flag("parks", "packed parks polygon buffer file").String()
	roadsGeoJSONPath := cmd.Flag("roads-geojson", "roads GeoJSON FeatureCollection file").String()
	waterGeoJSONPath := cmd.Flag("water-geojson", "water GeoJSON FeatureCollection file").String()
	parksGeoJSONPath := cmd.Flag("parks-geojson", "parks GeoJSON FeatureCollection file").String()
	verbose := cmd.Flag("verbose", "verbose logging").Short('v').Bool()

	cmd.Action(func(ctx *kingpin.ParseContext) error {
		logger := newLogger(*verbose)

		font, err := loadFont(*fontPath)
		if err != nil {
			return errorsx.ErrWithStack(err)
		}

		engine := posterrenderer.NewEngine(font, poster.DefaultRenderDefaults(), posterrenderer.LoggerSink{Logger: logger})

		configJSON, readErr := os.ReadFile(*configPath)
		if readErr != nil {
			return errorsx.ErrWithStack(errorsx.Wrap(readErr))
		}

		useGeoJSON := *roadsGeoJSONPath != "" || *waterGeoJSONPath != "" || *parksGeoJSONPath != ""

		var result *poster.RenderResult
		if useGeoJSON {
			result, err = renderFromGeoJSON(engine, configJSON, *roadsGeoJSONPath, *waterGeoJSONPath, *parksGeoJSONPath)
		} else {
			result, err = renderFromBinaryFiles(engine, configJSON, *roadShardPaths, *waterPath, *parksPath)
		}
		if err != nil {
			return errorsx.ErrWithStack(err)
		}

		writeErr := os.WriteFile(*outPath, result.Data, 0644)
		if writeErr != nil {
			return errorsx.ErrWithStack(errorsx.Wrap(writeErr))
		}

		logger.Info("wrote %dx%d poster to %s", result.Width, result.Height, *outPath)
		return nil
	})
}

func renderFromGeoJSON(engine *posterrenderer.Engine, configJSON []byte, roadsPath, waterPath, parksPath string) (*poster.RenderResult, errorsx.Error) {
	roads, err := featuresFromGeoJSONFile(roadsPath, posterwire.RoadsFromGeoJSON)
	if err != nil {
		return nil, err
	}
	water, err := featuresFromGeoJSONFile(waterPath, posterwire.PolygonsFromGeoJSON)
	if err != nil {
		return nil, err
	}
	parks, err := featuresFromGeoJSONFile(parksPath, posterwire.PolygonsFromGeoJSON)
	if err != nil {
		return nil, err
	}

	var cfg poster.RenderConfig
	jsonErr := jsonUnmarshal(configJSON, &cfg)
	if jsonErr != nil {
		return nil, jsonErr
	}

	req := &poster.RenderRequest{
		Center:             cfg.Center,
		Radius:             cfg.Radius,
		Roads:              roads,
		Water:              water,
		Parks:              parks,
		POIs:               posterwire.DecodePOIs(cfg.POIs, true),
		Theme:              cfg.Theme,
		Width:              cfg.Width,
		Height:             cfg.Height,
		DisplayCity:        cfg.DisplayCity,
		DisplayCountry:     cfg.DisplayCountry,
		TextPosition:       cfg.TextPosition,
		SelectedSizeHeight: cfg.SelectedSizeHeight,
		FrontendScale:      cfg.FrontendScale,
	}

	return engine.RenderMap(req)
}

func featuresFromGeoJSONFile[T any](path string, parse func([]byte) ([]T, errorsx.Error)) ([]T, errorsx.Error) {
	if path == "" {
		return nil, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errorsx.Wrap(err)
	}

	return parse(b)
}

func renderFromBinaryFiles(engine *posterrenderer.Engine, configJSON []byte, roadShardPaths []string, waterPath, parksPath string) (*poster.RenderResult, errorsx.Error) {
	var roadShards [][]float64
	for _, path := range roadShardPaths {
		shard, err := float64BufferFromFile(path)
		if err != nil {
			return nil, err
		}
		roadShards = append(roadShards, shard)
	}

	var waterBin, parksBin []float64
	var err errorsx.Error
	if waterPath != "" {
		waterBin, err = float64BufferFromFile(waterPath)
		if err != nil {
			return nil, err
		}
	}
	if parksPath != "" {
		parksBin, err = float64BufferFromFile(parksPath)
		if err != nil {
			return nil, err
		}
	}

	return engine.RenderMapBinary(roadShards, waterBin, parksBin, configJSON)
}

func float64BufferFromFile(path string) ([]float64, errorsx.Error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errorsx.Wrap(err)
	}
	return posterwire.Float64sFromBytes(b)
}

func setupServe() {
	cmd := kingpin.Command("serve", "start the render HTTP service")
	addr := cmd.Flag("addr", "address to listen on").Default("localhost:9000").String()
	fontPath := cmd.Flag("font", "TTF font file (default: embedded font)").String()
	shouldProfile := cmd.Flag("profile", "profile render requests").Bool()
	traceFilePath := cmd.Flag("trace-file", "write traces to this file").String()
	verbose := cmd.Flag("verbose", "verbose logging").Short('v').Bool()

	cmd.Action(func(ctx *kingpin.ParseContext) error {
		logger := newLogger(*verbose)

		if *shouldProfile {
			defer profile.Start().Stop()
		}

		font, err := loadFont(*fontPath)
		if err != nil {
			return errorsx.ErrWithStack(err)
		}

		engine := posterrenderer.NewEngine(font, poster.DefaultRenderDefaults(), posterrenderer.LoggerSink{Logger: logger})

		router := chi.NewRouter()
		router.Use(middleware.Recoverer)

		if *traceFilePath != "" {
			traceFile, fileErr := os.Create(*traceFilePath)
			if fileErr != nil {
				return errorsx.ErrWithStack(errorsx.Wrap(fileErr))
			}
			defer traceFile.Close()

			tracer := tracing.NewTracer(traceFile)
			router.Use(tracing.Middleware(tracer))
		}

		router.Mount("/api/render", webservices.NewRenderService(logger, engine, *shouldProfile))
		router.Mount("/api/info", webservices.NewInfoService(logger, poster.DefaultRenderDefaults()))

		logger.Info("listening on %s", *addr)
		serveErr := http.ListenAndServe(*addr, router)
		if serveErr != nil {
			return errorsx.ErrWithStack(errorsx.Wrap(serveErr))
		}

		return nil
	})
}

func jsonUnmarshal(b []byte, v interface{}) errorsx.Error {
	err := json.Unmarshal(b, v)
	if err != nil {
		return errorsx.Wrap(err)
	}
	return nil
}
