package shared

import (
	"context"
	"testing"
)

func TestTraceID(t *testing.T) {
	t.Run("set and get", func(t *testing.T) {
		ctx := SetTraceID(context.Background())
		traceID := GetTraceID(ctx)

		if traceID == "" {
			t.Fatal("Expected a non-empty trace ID")
		}
		if len(traceID) != TraceIDLength*2 {
			t.Errorf("Expected %d hex characters, got %d", TraceIDLength*2, len(traceID))
		}
	})

	t.Run("absent trace ID is empty", func(t *testing.T) {
		if got := GetTraceID(context.Background()); got != "" {
			t.Errorf("Expected empty string, got %q", got)
		}
	})

	t.Run("trace IDs are unique per request", func(t *testing.T) {
		first := GetTraceID(SetTraceID(context.Background()))
		second := GetTraceID(SetTraceID(context.Background()))
		if first == second {
			t.Error("Expected distinct trace IDs")
		}
	})
}

func TestGenerateFallbackTraceID(t *testing.T) {
	id := generateFallbackTraceID()
	if len(id) != TraceIDLength*2 {
		t.Errorf("Expected %d hex characters, got %d", TraceIDLength*2, len(id))
	}
}
