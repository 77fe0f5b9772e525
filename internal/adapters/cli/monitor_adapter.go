// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/example/ledgerwatch/internal/ports/primary"
)

// MonitorAdapter renders IntegrityMonitor output for the terminal.
type MonitorAdapter struct {
	monitor primary.IntegrityMonitor
	out     io.Writer
}

// NewMonitorAdapter creates a new MonitorAdapter with the given monitor.
func NewMonitorAdapter(monitor primary.IntegrityMonitor, out io.Writer) *MonitorAdapter {
	return &MonitorAdapter{
		monitor: monitor,
		out:     out,
	}
}

// Check runs one check cycle and prints the report. With no ids every known
// ledger is checked.
func (a *MonitorAdapter) Check(ctx context.Context, ledgerIDs []string) (*primary.IntegrityReport, error) {
	var report *primary.IntegrityReport
	if len(ledgerIDs) == 0 {
		var err error
		report, err = a.monitor.CheckAllKnown(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check ledgers: %w", err)
		}
	} else {
		report = a.monitor.CheckAll(ctx, ledgerIDs)
	}

	a.PrintReport(report)
	return report, nil
}

// PrintReport writes a report summary, one line per ledger, and active alerts.
func (a *MonitorAdapter) PrintReport(report *primary.IntegrityReport) {
	fmt.Fprintf(a.out, "\nIntegrity report %s\n", report.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(a.out, "Overall: %s   Score: %d (%d/%d valid)\n",
		statusLabel(report.OverallStatus),
		report.Summary.IntegrityScore,
		report.Summary.ValidCount,
		report.Summary.TotalCount,
	)

	ids := report.LedgerIDs()
	if len(ids) == 0 {
		fmt.Fprintln(a.out, "No ledgers checked")
	} else {
		fmt.Fprintf(a.out, "\n%-20s %-12s %s\n", "LEDGER", "STATUS", "MESSAGE")
		fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")
		for _, id := range ids {
			if reason, ok := report.Unavailable[id]; ok {
				fmt.Fprintf(a.out, "%-20s %-12s %s\n", id, color.New(color.FgYellow).Sprint("UNAVAILABLE"), reason)
				continue
			}
			s := report.LedgerStatuses[id]
			fmt.Fprintf(a.out, "%-20s %-12s %s\n", id, statusLabel(s.Status), s.Message)
		}
	}

	a.printAlerts(report.ActiveAlerts)
	fmt.Fprintln(a.out)
}

// Alerts prints active alerts, or every alert including acknowledged ones.
func (a *MonitorAdapter) Alerts(all bool) {
	alerts := a.monitor.Alerts().Active()
	if all {
		alerts = a.monitor.Alerts().All()
	}
	if len(alerts) == 0 {
		fmt.Fprintln(a.out, "No alerts")
		return
	}
	a.printAlerts(alerts)
}

// Acknowledge marks an alert acknowledged.
func (a *MonitorAdapter) Acknowledge(ctx context.Context, alertID string) error {
	if !a.monitor.Alerts().Acknowledge(ctx, alertID) {
		return fmt.Errorf("alert %s not found or already acknowledged", alertID)
	}
	fmt.Fprintf(a.out, "✓ Alert %s acknowledged\n", alertID)
	return nil
}

// Verify records one verification outcome and prints the resulting score.
func (a *MonitorAdapter) Verify(ctx context.Context, targetID, verificationType, status string) primary.Verification {
	v := a.monitor.RecordVerification(ctx, primary.Verification{
		Type:     verificationType,
		TargetID: targetID,
		Status:   status,
	})
	fmt.Fprintf(a.out, "✓ Recorded %s verification %s for %s: %s\n", v.Type, v.ID, v.TargetID, v.Status)
	fmt.Fprintf(a.out, "Integrity score: %d\n", a.monitor.Score())
	return v
}

func (a *MonitorAdapter) printAlerts(alerts []primary.Alert) {
	if len(alerts) == 0 {
		return
	}
	fmt.Fprintf(a.out, "\nAlerts (%d):\n", len(alerts))
	for _, al := range alerts {
		ack := ""
		if al.Acknowledged {
			ack = " (acknowledged)"
		}
		fmt.Fprintf(a.out, "  %s %s [%s] %s%s\n", al.ID, levelLabel(al.Level), al.LedgerID, al.Message, ack)
	}
}

func statusLabel(status string) string {
	switch status {
	case primary.LedgerStatusHealthy:
		return color.New(color.FgGreen).Sprint("healthy")
	case primary.LedgerStatusWarning:
		return color.New(color.FgYellow).Sprint("warning")
	case primary.LedgerStatusError:
		return color.New(color.FgRed).Sprint("error")
	}
	return status
}

func levelLabel(level string) string {
	switch level {
	case primary.AlertLevelCritical:
		return color.New(color.FgRed, color.Bold).Sprint("CRITICAL")
	case primary.AlertLevelWarning:
		return color.New(color.FgYellow).Sprint("WARNING")
	}
	return color.New(color.FgCyan).Sprint("INFO")
}
