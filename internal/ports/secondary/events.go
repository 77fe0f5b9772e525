package secondary

import (
	"context"
	"time"
)

// EventLog defines the secondary port for the audit trail of alert and approval
// transitions. Entries are immutable - no Update operations.
type EventLog interface {
	// Append records an event.
	Append(ctx context.Context, event *EventRecord) error

	// List retrieves events matching the given filters, newest first.
	List(ctx context.Context, filters EventFilters) ([]*EventRecord, error)
}

// EventRecord represents an audit event as stored in persistence.
type EventRecord struct {
	ID         int64
	Tenant     string
	ActorID    string // Empty string means null
	EntityType string // 'alert' or 'approval'
	EntityID   string
	Action     string // e.g. 'raise', 'acknowledge', 'sign', 'approve', 'reject', 'expire'
	Detail     string // Empty string means null
	CreatedAt  string
}

// EventFilters contains filter options for querying events.
type EventFilters struct {
	Tenant     string
	EntityType string
	EntityID   string
	Limit      int
}

// Clock defines the secondary port for reading the current time.
type Clock interface {
	Now() time.Time
}
