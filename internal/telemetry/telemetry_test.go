package telemetry

import (
	"context"
	"errors"
	"testing"
)

func TestEnabledFollowsEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "")
	if Enabled() {
		t.Error("Expected telemetry to be disabled without an endpoint")
	}

	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318")
	if !Enabled() {
		t.Error("Expected telemetry to be enabled with an endpoint")
	}
}

func TestTracerWithoutSetup(t *testing.T) {
	_, span := Tracer("test").Start(context.Background(), "noop")
	defer span.End()
	if span.SpanContext().IsValid() {
		t.Error("Expected no recording span before Setup")
	}
}

func TestNoopTracer(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "noop")
	span.End()
	if span.IsRecording() {
		t.Error("Expected noop span not to record")
	}
}

type fakeExporter struct {
	shutdowns int
	setupErr  error
	flushErr  error
}

func (f *fakeExporter) setup(context.Context) (func(context.Context) error, error) {
	if f.setupErr != nil {
		return nil, f.setupErr
	}
	return func(context.Context) error {
		f.shutdowns++
		return f.flushErr
	}, nil
}

func TestRunShutsDownAfterFailure(t *testing.T) {
	exp := &fakeExporter{}
	gameErr := errors.New("map missing")

	err := run(context.Background(), exp.setup, nil, func(context.Context) error { return gameErr })

	if !errors.Is(err, gameErr) {
		t.Errorf("Expected the game error, got %v", err)
	}
	if exp.shutdowns != 1 {
		t.Errorf("Expected 1 shutdown, got %d", exp.shutdowns)
	}
}

func TestRunReportsShutdownError(t *testing.T) {
	exp := &fakeExporter{flushErr: errors.New("collector down")}

	err := run(context.Background(), exp.setup, nil, func(context.Context) error { return nil })

	if err == nil || !errors.Is(err, exp.flushErr) {
		t.Errorf("Expected shutdown error, got %v", err)
	}
}

func TestRunWithoutTracingWhenSetupFails(t *testing.T) {
	exp := &fakeExporter{setupErr: errors.New("bad endpoint")}
	var warned error
	called := false

	err := run(context.Background(), exp.setup, func(err error) { warned = err }, func(context.Context) error {
		called = true
		return nil
	})

	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if !called {
		t.Error("Expected fn to run without tracing")
	}
	if !errors.Is(warned, exp.setupErr) {
		t.Errorf("Expected setup error to be reported, got %v", warned)
	}
}

func TestRunDisabledCallsFn(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "")

	called := false
	if err := Run(context.Background(), nil, func(context.Context) error {
		called = true
		return nil
	}); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if !called {
		t.Error("Expected fn to be called")
	}
}
