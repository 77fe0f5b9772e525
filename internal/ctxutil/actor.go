// Package ctxutil carries caller identity through context.Context.
// It has no internal dependencies so every layer can import it.
package ctxutil

import "context"

type actorKey struct{}

type tenantKey struct{}

// WithActorID returns a context that records who is driving the operation
// (a ceremony participant, an operator, or "ledgerwatch" for the poller).
func WithActorID(ctx context.Context, actorID string) context.Context {
	return context.WithValue(ctx, actorKey{}, actorID)
}

// ActorFromContext returns the actor ID, or "" if none was set.
func ActorFromContext(ctx context.Context) string {
	id, _ := ctx.Value(actorKey{}).(string)
	return id
}

// WithTenant returns a context tagged with the tenant the call belongs to.
func WithTenant(ctx context.Context, tenant string) context.Context {
	return context.WithValue(ctx, tenantKey{}, tenant)
}

// TenantFromContext returns the tenant, or "" if none was set.
func TenantFromContext(ctx context.Context) string {
	t, _ := ctx.Value(tenantKey{}).(string)
	return t
}
