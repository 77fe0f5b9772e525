// Package sqlite_test contains integration tests for the SQLite adapters.
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// Use setupTestDB() and the seed* helpers instead of CREATE TABLE statements.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/ledgerwatch/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	testDB.SetMaxOpenConns(1)

	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedLedger inserts a ledger row with the given status.
func seedLedger(t *testing.T, db *sql.DB, id, status, message string) {
	t.Helper()
	var msg sql.NullString
	if message != "" {
		msg = sql.NullString{String: message, Valid: true}
	}
	_, err := db.Exec("INSERT INTO ledgers (id, name, status, message) VALUES (?, ?, ?, ?)", id, id, status, msg)
	if err != nil {
		t.Fatalf("failed to seed ledger: %v", err)
	}
}
