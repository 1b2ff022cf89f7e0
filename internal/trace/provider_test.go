package trace

import (
	"context"
	"testing"
)

func TestNewProvider_DisabledWithoutEndpoint(t *testing.T) {
	p, err := NewProvider(context.Background(), "", "")
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	if p.Enabled() {
		t.Error("expected provider without endpoint to be disabled")
	}
	if p.Tracer() == nil {
		t.Fatal("expected a no-op tracer, got nil")
	}
	_, span := p.Tracer().Start(context.Background(), "noop")
	if span.SpanContext().IsValid() {
		t.Error("expected no-op span to have an invalid span context")
	}
	span.End()
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown on disabled provider: %v", err)
	}
}

func TestNewProvider_EnabledWithEndpoint(t *testing.T) {
	for _, endpoint := range []string{"http://localhost:4318", "localhost:4318"} {
		t.Run(endpoint, func(t *testing.T) {
			p, err := NewProvider(context.Background(), endpoint, "tripplanner-test")
			if err != nil {
				t.Fatalf("NewProvider(%q): %v", endpoint, err)
			}
			if !p.Enabled() {
				t.Errorf("expected provider with endpoint %q to be enabled", endpoint)
			}
			_, span := p.Tracer().Start(context.Background(), "probe")
			if !span.SpanContext().IsValid() {
				t.Error("expected SDK span to have a valid span context")
			}
			span.End()
			// Nothing listens on the endpoint; a bounded context keeps shutdown quick.
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_ = p.Shutdown(ctx)
		})
	}
}

func TestShutdown_NilProvider(t *testing.T) {
	var p *Provider
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown on nil provider: %v", err)
	}
	if p.Enabled() {
		t.Error("nil provider should not be enabled")
	}
}
