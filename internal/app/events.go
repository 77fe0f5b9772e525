package app

import (
	"context"

	"github.com/example/ledgerwatch/internal/ctxutil"
	"github.com/example/ledgerwatch/internal/ports/secondary"
)

// pendingEvent is an audit entry collected inside a critical section and
// written once the lock is released.
type pendingEvent struct {
	entityType string
	entityID   string
	action     string
	detail     string
}

// eventRecorder writes audit entries. A nil log disables audit logging.
type eventRecorder struct {
	log secondary.EventLog
}

func (r eventRecorder) write(ctx context.Context, events ...pendingEvent) {
	if r.log == nil {
		return
	}
	actorID := ctxutil.ActorFromContext(ctx)
	tenant := ctxutil.TenantFromContext(ctx)
	for _, e := range events {
		_ = r.log.Append(ctx, &secondary.EventRecord{
			Tenant:     tenant,
			ActorID:    actorID,
			EntityType: e.entityType,
			EntityID:   e.entityID,
			Action:     e.action,
			Detail:     e.detail,
		})
	}
}
