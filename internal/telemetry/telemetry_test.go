package telemetry

import (
	"context"
	"testing"
)

func TestEnabledFollowsEnvironment(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "")
	if Enabled() {
		t.Error("expected telemetry disabled without endpoint")
	}
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318")
	if !Enabled() {
		t.Error("expected telemetry enabled with endpoint")
	}
}

func TestTracersStartSpans(t *testing.T) {
	_, span := Tracer("test").Start(context.Background(), "op")
	span.End()
	_, span = NoopTracer().Start(context.Background(), "op")
	if span.SpanContext().IsValid() {
		t.Error("noop tracer produced a valid span context")
	}
	span.End()
}
