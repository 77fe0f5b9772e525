// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the outside world drives the application.
package primary

import (
	"context"
	"sort"
	"time"
)

// Ledger status values.
const (
	LedgerStatusHealthy = "healthy"
	LedgerStatusWarning = "warning"
	LedgerStatusError   = "error"
)

// Verification outcome values.
const (
	VerificationValid   = "valid"
	VerificationInvalid = "invalid"
	VerificationPending = "pending"
)

// Alert level values.
const (
	AlertLevelInfo     = "info"
	AlertLevelWarning  = "warning"
	AlertLevelCritical = "critical"
)

// VerificationHistory defines the primary port for the bounded verification log.
type VerificationHistory interface {
	// Record appends a verification, evicting the oldest entry once the cap is exceeded.
	// Returns the stored value (with generated ID/timestamp if they were empty).
	Record(v Verification) Verification

	// Summary computes counts and the integrity score over the current window.
	Summary() VerificationSummary

	// Recent returns up to n most recently recorded verifications, most recent last.
	Recent(n int) []Verification

	// Len returns the number of verifications currently held.
	Len() int
}

// AlertRegistry defines the primary port for alert lifecycle.
type AlertRegistry interface {
	// Raise stores a new unacknowledged alert. Never fails.
	Raise(ctx context.Context, level, ledgerID, message string) Alert

	// Acknowledge flips an alert to acknowledged.
	// Returns false if the alert is missing or already acknowledged.
	Acknowledge(ctx context.Context, alertID string) bool

	// Active returns unacknowledged alerts in insertion order.
	Active() []Alert

	// All returns every alert in insertion order.
	All() []Alert
}

// IntegrityMonitor defines the primary port for aggregated ledger health.
type IntegrityMonitor interface {
	// CheckLedger queries the status oracle for one ledger.
	// Oracle faults are returned wrapped in health.ErrDependencyUnavailable.
	CheckLedger(ctx context.Context, ledgerID string) (LedgerStatus, error)

	// CheckAll queries every ledger and folds the answers into one report.
	// A failing ledger is listed in Unavailable and never aborts the call.
	CheckAll(ctx context.Context, ledgerIDs []string) *IntegrityReport

	// CheckAllKnown lists ledgers from the oracle and runs CheckAll over them.
	CheckAllKnown(ctx context.Context) (*IntegrityReport, error)

	// RecordVerification stores a verification; invalid outcomes raise a critical alert.
	RecordVerification(ctx context.Context, v Verification) Verification

	// Score returns the current integrity score (0..100).
	Score() int

	// Alerts returns the registry the monitor raises alerts into.
	Alerts() AlertRegistry
}

// LedgerStatus is a read-only snapshot produced by the status oracle.
type LedgerStatus struct {
	LedgerID string
	Status   string // healthy, warning, error
	Message  string
}

// Verification is a single recorded integrity check outcome.
type Verification struct {
	ID        string
	Type      string
	TargetID  string
	Status    string // valid, invalid, pending
	Timestamp time.Time
}

// VerificationSummary is derived from the current history window.
type VerificationSummary struct {
	TotalCount     int
	ValidCount     int
	InvalidCount   int
	IntegrityScore int
}

// Alert is a timestamped observation of degraded status.
type Alert struct {
	ID           string
	Level        string // info, warning, critical
	LedgerID     string
	Message      string
	Timestamp    time.Time
	Acknowledged bool
}

// IntegrityReport is the ephemeral aggregate returned by a check cycle.
type IntegrityReport struct {
	Timestamp           time.Time
	OverallStatus       string
	LedgerStatuses      map[string]LedgerStatus
	Unavailable         map[string]string // ledgerID -> failure reason
	RecentVerifications []Verification
	Summary             VerificationSummary
	ActiveAlerts        []Alert
}

// LedgerIDs returns the checked ledger ids (available and unavailable) in sorted order.
func (r *IntegrityReport) LedgerIDs() []string {
	ids := make([]string, 0, len(r.LedgerStatuses)+len(r.Unavailable))
	for id := range r.LedgerStatuses {
		ids = append(ids, id)
	}
	for id := range r.Unavailable {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
