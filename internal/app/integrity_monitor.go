package app

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/example/ledgerwatch/internal/core/health"
	"github.com/example/ledgerwatch/internal/ports/primary"
	"github.com/example/ledgerwatch/internal/ports/secondary"
)

// DefaultRecentWindow is the number of verifications bundled into a report.
const DefaultRecentWindow = 100

// MonitorOptions tunes how the monitor calls the status oracle.
type MonitorOptions struct {
	RecentWindow  int           // verifications included in a report; 0 uses DefaultRecentWindow
	OracleTimeout time.Duration // per-ledger deadline; 0 leaves deadlines to the oracle
	MaxConcurrent int           // parallel oracle calls in CheckAll; 0 means one per ledger
}

// IntegrityMonitorImpl implements primary.IntegrityMonitor.
// It holds no state of its own beyond the history and registry it drives.
type IntegrityMonitorImpl struct {
	oracle  secondary.LedgerStatusOracle
	history primary.VerificationHistory
	alerts  primary.AlertRegistry
	clock   secondary.Clock
	logger  *slog.Logger
	opts    MonitorOptions
}

// NewIntegrityMonitor creates a new IntegrityMonitor with injected dependencies.
func NewIntegrityMonitor(
	oracle secondary.LedgerStatusOracle,
	history primary.VerificationHistory,
	alerts primary.AlertRegistry,
	clock secondary.Clock,
	logger *slog.Logger,
	opts MonitorOptions,
) *IntegrityMonitorImpl {
	if opts.RecentWindow <= 0 {
		opts.RecentWindow = DefaultRecentWindow
	}
	return &IntegrityMonitorImpl{
		oracle:  oracle,
		history: history,
		alerts:  alerts,
		clock:   clockOrDefault(clock),
		logger:  loggerOrDiscard(logger),
		opts:    opts,
	}
}

// CheckLedger queries the oracle for one ledger.
func (m *IntegrityMonitorImpl) CheckLedger(ctx context.Context, ledgerID string) (primary.LedgerStatus, error) {
	if m.opts.OracleTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.opts.OracleTimeout)
		defer cancel()
	}

	record, err := m.oracle.GetStatus(ctx, ledgerID)
	if err != nil {
		return primary.LedgerStatus{}, fmt.Errorf("%w: ledger %s: %w", health.ErrDependencyUnavailable, ledgerID, err)
	}
	if record == nil {
		return primary.LedgerStatus{}, fmt.Errorf("%w: ledger %s: empty status", health.ErrDependencyUnavailable, ledgerID)
	}

	status := primary.LedgerStatus{
		LedgerID: record.LedgerID,
		Status:   record.Status,
		Message:  record.Message,
	}
	if status.LedgerID == "" {
		status.LedgerID = ledgerID
	}
	return status, nil
}

// checkOutcome is the result of one fanned-out oracle call.
type checkOutcome struct {
	status primary.LedgerStatus
	err    error
}

// CheckAll queries every ledger concurrently and folds the answers in sorted id order.
func (m *IntegrityMonitorImpl) CheckAll(ctx context.Context, ledgerIDs []string) *primary.IntegrityReport {
	ids := sortedUnique(ledgerIDs)
	outcomes := make([]checkOutcome, len(ids))

	var g errgroup.Group
	if m.opts.MaxConcurrent > 0 {
		g.SetLimit(m.opts.MaxConcurrent)
	}
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			status, err := m.CheckLedger(ctx, id)
			outcomes[i] = checkOutcome{status: status, err: err}
			return nil
		})
	}
	_ = g.Wait()

	report := &primary.IntegrityReport{
		OverallStatus:  primary.LedgerStatusHealthy,
		LedgerStatuses: make(map[string]primary.LedgerStatus, len(ids)),
		Unavailable:    make(map[string]string),
	}

	for i, id := range ids {
		out := outcomes[i]
		if out.err != nil {
			m.logger.Warn("ledger status unavailable", "ledger_id", id, "err", out.err)
			report.Unavailable[id] = out.err.Error()
			report.OverallStatus = health.Worse(report.OverallStatus, health.StatusWarning)
			m.alerts.Raise(ctx, primary.AlertLevelWarning, id, fmt.Sprintf("ledger status unavailable: %v", out.err))
			continue
		}

		report.LedgerStatuses[id] = out.status
		report.OverallStatus = health.Worse(report.OverallStatus, health.Normalize(out.status.Status))
		if level := health.AlertLevelFor(out.status.Status); level != "" {
			m.alerts.Raise(ctx, level, id, degradedMessage(out.status))
		}
	}

	report.Timestamp = m.clock.Now()
	report.RecentVerifications = m.history.Recent(m.opts.RecentWindow)
	report.Summary = m.history.Summary()
	report.ActiveAlerts = m.alerts.Active()

	m.logger.Debug("check cycle complete",
		"ledgers", len(ids),
		"unavailable", len(report.Unavailable),
		"overall", report.OverallStatus,
	)
	return report
}

// CheckAllKnown lists ledgers from the oracle and checks each one.
func (m *IntegrityMonitorImpl) CheckAllKnown(ctx context.Context) (*primary.IntegrityReport, error) {
	ids, err := m.oracle.ListLedgers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list ledgers: %w", health.ErrDependencyUnavailable, err)
	}
	return m.CheckAll(ctx, ids), nil
}

// RecordVerification stores a verification. Invalid outcomes raise a critical alert
// keyed by the verification target.
func (m *IntegrityMonitorImpl) RecordVerification(ctx context.Context, v primary.Verification) primary.Verification {
	stored := m.history.Record(v)
	if stored.Status == primary.VerificationInvalid {
		m.alerts.Raise(ctx, primary.AlertLevelCritical, stored.TargetID,
			fmt.Sprintf("%s verification %s failed", verificationType(stored), stored.ID))
	}
	return stored
}

// Score returns the current integrity score.
func (m *IntegrityMonitorImpl) Score() int {
	return m.history.Summary().IntegrityScore
}

// Alerts returns the registry the monitor raises alerts into.
func (m *IntegrityMonitorImpl) Alerts() primary.AlertRegistry {
	return m.alerts
}

// Helper functions

func sortedUnique(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func degradedMessage(s primary.LedgerStatus) string {
	if s.Message != "" {
		return s.Message
	}
	return fmt.Sprintf("ledger %s reported %s", s.LedgerID, s.Status)
}

func verificationType(v primary.Verification) string {
	if v.Type == "" {
		return "integrity"
	}
	return v.Type
}

// Ensure IntegrityMonitorImpl implements the interface
var _ primary.IntegrityMonitor = (*IntegrityMonitorImpl)(nil)
