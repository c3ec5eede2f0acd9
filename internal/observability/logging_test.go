package observability

import (
	"context"
	"testing"
)

func TestGenerationIDRoundTrip(t *testing.T) {
	id := NewGenerationID()
	if id == "" {
		t.Fatal("generation id must not be empty")
	}
	ctx := WithGenerationID(context.Background(), id)
	if got := GetContext(ctx).GenerationID; got != id {
		t.Fatalf("GenerationID = %q, want %q", got, id)
	}
}

func TestWithStagePreservesGenerationID(t *testing.T) {
	ctx := WithGenerationID(context.Background(), "gen-1")
	ctx = WithStage(ctx, "generate")
	lc := GetContext(ctx)
	if lc.GenerationID != "gen-1" || lc.Stage != "generate" {
		t.Fatalf("unexpected context %+v", lc)
	}
}

func TestEmptyContext(t *testing.T) {
	lc := GetContext(context.Background())
	if lc.GenerationID != "" || lc.Stage != "" {
		t.Fatalf("expected zero context, got %+v", lc)
	}
}
