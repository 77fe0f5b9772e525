// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// LedgerStatusOracle defines the secondary port for per-ledger status queries.
// Ledgers are owned externally; implementations only report on them.
type LedgerStatusOracle interface {
	// GetStatus returns the current status snapshot for a ledger.
	GetStatus(ctx context.Context, ledgerID string) (*LedgerStatusRecord, error)

	// ListLedgers returns the ids of every ledger the oracle knows about.
	ListLedgers(ctx context.Context) ([]string, error)
}

// LedgerStatusRecord represents a ledger status as reported by the oracle.
type LedgerStatusRecord struct {
	LedgerID string
	Status   string // 'healthy', 'warning', 'error'
	Message  string // Empty string means null
}
