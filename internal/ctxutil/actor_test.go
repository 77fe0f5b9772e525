package ctxutil

import (
	"context"
	"testing"
)

func TestActorFromContext(t *testing.T) {
	ctx := context.Background()
	if got := ActorFromContext(ctx); got != "" {
		t.Errorf("ActorFromContext(empty) = %q, want empty", got)
	}

	ctx = WithActorID(ctx, "custodian-a")
	if got := ActorFromContext(ctx); got != "custodian-a" {
		t.Errorf("ActorFromContext = %q, want %q", got, "custodian-a")
	}
}

func TestTenantFromContext(t *testing.T) {
	ctx := WithTenant(context.Background(), "acme")
	if got := TenantFromContext(ctx); got != "acme" {
		t.Errorf("TenantFromContext = %q, want %q", got, "acme")
	}
	if got := ActorFromContext(ctx); got != "" {
		t.Errorf("tenant leaked into actor: %q", got)
	}
}
