package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/dummit/internal/core/ports"
)

// TimingProcessor implements sdktrace.SpanProcessor by logging each finished
// span with its duration.
type TimingProcessor struct {
	logger ports.Logger
}

// NewTimingProcessor returns a TimingProcessor writing to logger.
func NewTimingProcessor(logger ports.Logger) *TimingProcessor {
	return &TimingProcessor{logger: logger}
}

// OnStart does nothing.
func (p *TimingProcessor) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name and how long it took.
func (p *TimingProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	if p.logger == nil {
		return
	}

	elapsed := s.EndTime().Sub(s.StartTime()).Round(time.Microsecond)
	if s.Status().Code == codes.Error {
		p.logger.Warn(fmt.Sprintf("%s failed after %s", s.Name(), elapsed))
		return
	}
	p.logger.Info(fmt.Sprintf("%s took %s", s.Name(), elapsed))
}

// ForceFlush does nothing.
func (p *TimingProcessor) ForceFlush(context.Context) error {
	return nil
}

// Shutdown does nothing.
func (p *TimingProcessor) Shutdown(context.Context) error {
	return nil
}

// Install makes the global tracer provider log span timings to logger.
// The returned function flushes and shuts the provider down.
func Install(logger ports.Logger) func(context.Context) error {
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(NewTimingProcessor(logger)))
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}
