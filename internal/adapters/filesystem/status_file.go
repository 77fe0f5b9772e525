// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/example/ledgerwatch/internal/ports/secondary"
)

// ErrLedgerNotFound is returned when the snapshot has no entry for a ledger.
var ErrLedgerNotFound = errors.New("ledger not found in status file")

// StatusSnapshot is the on-disk layout of a status file:
//
//	ledgers:
//	  - id: LEDGER-001
//	    status: healthy
//	  - id: LEDGER-002
//	    status: error
//	    message: hash chain break at index 88412
type StatusSnapshot struct {
	Ledgers []StatusEntry `yaml:"ledgers"`
}

// StatusEntry is one ledger in a StatusSnapshot.
type StatusEntry struct {
	ID      string `yaml:"id"`
	Status  string `yaml:"status"`
	Message string `yaml:"message,omitempty"`
}

// StatusFileOracle implements secondary.LedgerStatusOracle over a YAML file
// written by an external integrity agent. The file is re-read on every call.
type StatusFileOracle struct {
	path string
}

// NewStatusFileOracle creates an oracle reading the snapshot at path.
func NewStatusFileOracle(path string) *StatusFileOracle {
	return &StatusFileOracle{path: path}
}

// GetStatus returns the snapshot entry for ledgerID.
func (o *StatusFileOracle) GetStatus(ctx context.Context, ledgerID string) (*secondary.LedgerStatusRecord, error) {
	snap, err := o.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range snap.Ledgers {
		if e.ID == ledgerID {
			return &secondary.LedgerStatusRecord{LedgerID: e.ID, Status: e.Status, Message: e.Message}, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrLedgerNotFound, ledgerID)
}

// ListLedgers returns every ledger id in the snapshot in ascending order.
func (o *StatusFileOracle) ListLedgers(ctx context.Context) ([]string, error) {
	snap, err := o.load(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(snap.Ledgers))
	for _, e := range snap.Ledgers {
		ids = append(ids, e.ID)
	}
	sort.Strings(ids)
	return ids, nil
}

func (o *StatusFileOracle) load(ctx context.Context) (*StatusSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(o.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read status file: %w", err)
	}
	var snap StatusSnapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse status file %s: %w", o.path, err)
	}
	return &snap, nil
}

// WriteSnapshot replaces the file at path with snap.
func WriteSnapshot(path string, snap *StatusSnapshot) error {
	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal status file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create status directory: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write status file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace status file: %w", err)
	}
	return nil
}

var _ secondary.LedgerStatusOracle = (*StatusFileOracle)(nil)
