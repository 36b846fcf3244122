package posterrenderer

import (
	"context"

	tracing "github.com/jamesrr39/go-tracing"
	"github.com/jamesrr39/goutil/logpkg"
)

// Sink receives diagnostic messages and timing spans from the render
// pipeline. The core never depends on a sink being present: NoopSink is a
// valid implementation.
type Sink interface {
	Log(msg string)
	// Begin opens a named timing span and returns the closure ending it.
	Begin(span string) func()
}

// NoopSink discards all diagnostics.
type NoopSink struct{}

func (NoopSink) Log(msg string) {}

func (NoopSink) Begin(span string) func() {
	return func() {}
}

// LoggerSink forwards diagnostics to a logpkg logger at debug level.
type LoggerSink struct {
	Logger *logpkg.Logger
}

func (s LoggerSink) Log(msg string) {
	s.Logger.Debug("%s", msg)
}

func (s LoggerSink) Begin(span string) func() {
	s.Logger.Debug("start: %s", span)
	return func() {
		s.Logger.Debug("end: %s", span)
	}
}

// TracingSink records spans with go-tracing. The context must carry a
// trace and tracer, as installed by the tracing HTTP middleware.
type TracingSink struct {
	Ctx context.Context
}

func (s TracingSink) Log(msg string) {}

func (s TracingSink) Begin(span string) func() {
	sp := tracing.StartSpan(s.Ctx, span)
	return func() {
		sp.End(s.Ctx)
	}
}
