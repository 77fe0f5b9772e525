// Package sqlite contains SQLite implementations of the secondary ports.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/ledgerwatch/internal/ports/secondary"
)

// ErrLedgerNotFound is returned by GetStatus for an unknown ledger id.
var ErrLedgerNotFound = errors.New("ledger not found")

// LedgerStatusOracle implements secondary.LedgerStatusOracle over the ledgers table.
type LedgerStatusOracle struct {
	db *sql.DB
}

// NewLedgerStatusOracle creates a new SQLite-backed ledger status oracle.
func NewLedgerStatusOracle(db *sql.DB) *LedgerStatusOracle {
	return &LedgerStatusOracle{db: db}
}

// GetStatus reads the last-reported status of a ledger.
func (o *LedgerStatusOracle) GetStatus(ctx context.Context, ledgerID string) (*secondary.LedgerStatusRecord, error) {
	var message sql.NullString
	record := &secondary.LedgerStatusRecord{}

	err := o.db.QueryRowContext(ctx,
		"SELECT id, status, message FROM ledgers WHERE id = ?",
		ledgerID,
	).Scan(&record.LedgerID, &record.Status, &message)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", ErrLedgerNotFound, ledgerID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger status: %w", err)
	}

	record.Message = message.String
	return record, nil
}

// ListLedgers returns every catalogued ledger id in ascending order.
func (o *LedgerStatusOracle) ListLedgers(ctx context.Context) ([]string, error) {
	rows, err := o.db.QueryContext(ctx, "SELECT id FROM ledgers ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list ledgers: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan ledger: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// UpsertStatus records a ledger's status, as an external integrity agent would.
func (o *LedgerStatusOracle) UpsertStatus(ctx context.Context, record *secondary.LedgerStatusRecord) error {
	var message sql.NullString
	if record.Message != "" {
		message = sql.NullString{String: record.Message, Valid: true}
	}

	_, err := o.db.ExecContext(ctx,
		`INSERT INTO ledgers (id, status, message) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET status = excluded.status, message = excluded.message, updated_at = CURRENT_TIMESTAMP`,
		record.LedgerID,
		record.Status,
		message,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert ledger status: %w", err)
	}

	return nil
}

var _ secondary.LedgerStatusOracle = (*LedgerStatusOracle)(nil)
