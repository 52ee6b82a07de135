// Package telemetry provides OpenTelemetry tracing for map loading and
// generation.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "civ"
	serviceVersion = "0.1.0"
)

// Enabled reports whether an OTLP endpoint has been configured. Without one
// the global no-op provider is left in place.
func Enabled() bool {
	return os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" ||
		os.Getenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT") != ""
}

// Setup installs a global tracer provider exporting over OTLP HTTP. The
// exporter reads the standard OTEL_* environment variables.
//
// Returns a shutdown function that should be called on application exit.
func Setup(ctx context.Context) (shutdown func(context.Context) error, err error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("host.name", hostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Run calls fn with tracing installed when Enabled reports an endpoint, and
// flushes the exporter after fn returns, whether or not fn failed. A failed
// setup runs fn untraced and is reported through warn.
func Run(ctx context.Context, warn func(error), fn func(context.Context) error) error {
	if !Enabled() {
		return fn(ctx)
	}
	return run(ctx, Setup, warn, fn)
}

func run(ctx context.Context, setup func(context.Context) (func(context.Context) error, error),
	warn func(error), fn func(context.Context) error) error {
	shutdown, err := setup(ctx)
	if err != nil {
		if warn != nil {
			warn(err)
		}
		return fn(ctx)
	}

	err = fn(ctx)
	if serr := shutdown(ctx); serr != nil {
		err = errors.Join(err, fmt.Errorf("telemetry shutdown: %w", serr))
	}
	return err
}

// Tracer returns a named tracer for the given component.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer("civ/" + name)
}

// NoopTracer returns a tracer that records nothing.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer("civ/noop")
}

func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return h
}
