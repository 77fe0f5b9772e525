package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/ledgerwatch/internal/ports/secondary"
)

// EventLog implements secondary.EventLog with SQLite. Events without a tenant
// are stamped with the tenant the log was opened for.
type EventLog struct {
	db     *sql.DB
	tenant string
}

// NewEventLog creates a new SQLite event log scoped to tenant.
func NewEventLog(db *sql.DB, tenant string) *EventLog {
	return &EventLog{db: db, tenant: tenant}
}

// Append persists a new event.
func (l *EventLog) Append(ctx context.Context, event *secondary.EventRecord) error {
	tenant := event.Tenant
	if tenant == "" {
		tenant = l.tenant
	}

	var actorID, detail sql.NullString
	if event.ActorID != "" {
		actorID = sql.NullString{String: event.ActorID, Valid: true}
	}
	if event.Detail != "" {
		detail = sql.NullString{String: event.Detail, Valid: true}
	}

	result, err := l.db.ExecContext(ctx,
		`INSERT INTO events (tenant, actor_id, entity_type, entity_id, action, detail) VALUES (?, ?, ?, ?, ?, ?)`,
		tenant,
		actorID,
		event.EntityType,
		event.EntityID,
		event.Action,
		detail,
	)
	if err != nil {
		return fmt.Errorf("failed to append event: %w", err)
	}

	if id, err := result.LastInsertId(); err == nil {
		event.ID = id
	}
	event.Tenant = tenant

	return nil
}

// List retrieves events matching the given filters, newest first.
// An empty Tenant filter means the log's own tenant.
func (l *EventLog) List(ctx context.Context, filters secondary.EventFilters) ([]*secondary.EventRecord, error) {
	tenant := filters.Tenant
	if tenant == "" {
		tenant = l.tenant
	}

	query := `SELECT id, tenant, actor_id, entity_type, entity_id, action, detail, created_at FROM events WHERE tenant = ?`
	args := []any{tenant}

	if filters.EntityType != "" {
		query += " AND entity_type = ?"
		args = append(args, filters.EntityType)
	}

	if filters.EntityID != "" {
		query += " AND entity_id = ?"
		args = append(args, filters.EntityID)
	}

	query += " ORDER BY id DESC"

	if filters.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filters.Limit)
	}

	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []*secondary.EventRecord
	for rows.Next() {
		var (
			actorID   sql.NullString
			detail    sql.NullString
			createdAt time.Time
		)
		record := &secondary.EventRecord{}
		if err := rows.Scan(&record.ID, &record.Tenant, &actorID, &record.EntityType, &record.EntityID, &record.Action, &detail, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		record.ActorID = actorID.String
		record.Detail = detail.String
		record.CreatedAt = createdAt.Format(time.RFC3339)
		events = append(events, record)
	}

	return events, rows.Err()
}

var _ secondary.EventLog = (*EventLog)(nil)
