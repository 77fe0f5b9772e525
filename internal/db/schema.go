package db

import (
	"database/sql"
	"fmt"
)

// SchemaVersion is recorded in schema_version once SchemaSQL has been applied.
const SchemaVersion = 1

// SchemaSQL is the complete schema.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. Tests load it via
// GetSchemaSQL() instead of hardcoding CREATE TABLE statements, so a repository
// referencing a missing column fails immediately with "no such column".
const SchemaSQL = `
-- Ledgers (catalog read by the sqlite status oracle; written by external agents)
CREATE TABLE IF NOT EXISTS ledgers (
	id TEXT PRIMARY KEY,
	name TEXT,
	status TEXT NOT NULL CHECK(status IN ('healthy', 'warning', 'error')) DEFAULT 'healthy',
	message TEXT,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Events (audit trail of alert and approval transitions; append-only)
CREATE TABLE IF NOT EXISTS events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	tenant TEXT NOT NULL DEFAULT 'default',
	actor_id TEXT,
	entity_type TEXT NOT NULL CHECK(entity_type IN ('alert', 'approval')),
	entity_id TEXT NOT NULL,
	action TEXT NOT NULL,
	detail TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_events_tenant ON events(tenant);
CREATE INDEX IF NOT EXISTS idx_events_entity ON events(entity_type, entity_id);

CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER PRIMARY KEY,
	applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// InitSchema applies SchemaSQL and records SchemaVersion. Safe to call repeatedly.
func InitSchema(database *sql.DB) error {
	if _, err := database.Exec(SchemaSQL); err != nil {
		return err
	}
	if _, err := database.Exec("INSERT OR IGNORE INTO schema_version (version) VALUES (?)", SchemaVersion); err != nil {
		return fmt.Errorf("failed to record schema version: %w", err)
	}
	return nil
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
func GetSchemaSQL() string {
	return SchemaSQL
}
