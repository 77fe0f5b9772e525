package db

import (
	"database/sql"
	"fmt"
)

// DemoLedger is one row of the demo fixture.
type DemoLedger struct {
	ID      string
	Name    string
	Status  string
	Message string
}

// DemoLedgers is a small mixed-health fixture used by `ledgerwatch seed`.
var DemoLedgers = []DemoLedger{
	{"LEDGER-001", "payments", "healthy", ""},
	{"LEDGER-002", "custody", "healthy", ""},
	{"LEDGER-003", "settlement", "warning", "anchor publication 2 epochs behind"},
	{"LEDGER-004", "audit-trail", "error", "hash chain break at index 88412"},
}

// SeedDemoLedgers inserts DemoLedgers into the ledger catalog.
// Existing rows with the same IDs are replaced.
func SeedDemoLedgers(database *sql.DB) error {
	for _, l := range DemoLedgers {
		var message sql.NullString
		if l.Message != "" {
			message = sql.NullString{String: l.Message, Valid: true}
		}
		if _, err := database.Exec(
			"INSERT OR REPLACE INTO ledgers (id, name, status, message) VALUES (?, ?, ?, ?)",
			l.ID, l.Name, l.Status, message,
		); err != nil {
			return fmt.Errorf("seed ledgers: %w", err)
		}
	}
	return nil
}
