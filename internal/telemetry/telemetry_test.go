package telemetry

import (
	"context"
	"errors"
	"testing"
)

func TestSetupWithoutEndpoint(t *testing.T) {
	t.Setenv(EndpointEnv, "")

	shutdown, err := Setup(context.Background())
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("Setup() err = %v, want ErrNotConfigured", err)
	}
	if shutdown != nil {
		t.Error("Setup() should not return a shutdown func when disabled")
	}
}

func TestTracersAreUsableWithoutSetup(t *testing.T) {
	ctx := context.Background()

	_, span := Tracer("test").Start(ctx, "test.span")
	span.End()

	_, span = NoopTracer().Start(ctx, "noop.span")
	if span.SpanContext().IsValid() {
		t.Error("noop tracer should produce invalid span contexts")
	}
	span.End()
}
