// Package cli provides CLI commands for the ledgerwatch application.
package cli

import (
	"context"
	"os"
	"strings"

	"github.com/example/ledgerwatch/internal/ctxutil"
	"github.com/example/ledgerwatch/internal/wire"
)

// Identity for the current CLI invocation, set once by SetIdentity.
var (
	globalActorID string
	globalTenant  string
)

// SetIdentity stores the actor and tenant for this invocation. An empty actor
// falls back to $LEDGERWATCH_ACTOR, then $USER.
func SetIdentity(actorID, tenant string) {
	if actorID == "" {
		actorID = os.Getenv("LEDGERWATCH_ACTOR")
	}
	if actorID == "" {
		actorID = os.Getenv("USER")
	}
	globalActorID = actorID
	globalTenant = tenant
}

// NewContext creates a context.Background() with the current actor and tenant embedded.
// CLI commands should use this instead of context.Background() directly.
func NewContext() context.Context {
	ctx := context.Background()
	if globalActorID != "" {
		ctx = ctxutil.WithActorID(ctx, globalActorID)
	}
	if globalTenant != "" {
		ctx = ctxutil.WithTenant(ctx, globalTenant)
	}
	return ctx
}

// currentTenant resolves the services for the selected tenant.
func currentTenant() (*wire.Tenant, error) {
	reg, err := wire.Default()
	if err != nil {
		return nil, err
	}
	return reg.Tenant(globalTenant)
}

// splitList parses a comma-separated flag value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
