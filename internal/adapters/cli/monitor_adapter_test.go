package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/example/ledgerwatch/internal/ports/primary"
)

// mockAlertRegistry implements primary.AlertRegistry for testing
type mockAlertRegistry struct {
	alerts []primary.Alert
}

func (m *mockAlertRegistry) Raise(ctx context.Context, level, ledgerID, message string) primary.Alert {
	a := primary.Alert{ID: "ALERT-X", Level: level, LedgerID: ledgerID, Message: message}
	m.alerts = append(m.alerts, a)
	return a
}

func (m *mockAlertRegistry) Acknowledge(ctx context.Context, alertID string) bool {
	for i := range m.alerts {
		if m.alerts[i].ID == alertID && !m.alerts[i].Acknowledged {
			m.alerts[i].Acknowledged = true
			return true
		}
	}
	return false
}

func (m *mockAlertRegistry) Active() []primary.Alert {
	var out []primary.Alert
	for _, a := range m.alerts {
		if !a.Acknowledged {
			out = append(out, a)
		}
	}
	return out
}

func (m *mockAlertRegistry) All() []primary.Alert {
	return append([]primary.Alert(nil), m.alerts...)
}

// mockMonitor implements primary.IntegrityMonitor for testing
type mockMonitor struct {
	report      *primary.IntegrityReport
	knownErr    error
	registry    *mockAlertRegistry
	lastIDs     []string
	lastVerify  primary.Verification
	knownCalled bool
}

func (m *mockMonitor) CheckLedger(ctx context.Context, ledgerID string) (primary.LedgerStatus, error) {
	return m.report.LedgerStatuses[ledgerID], nil
}

func (m *mockMonitor) CheckAll(ctx context.Context, ledgerIDs []string) *primary.IntegrityReport {
	m.lastIDs = ledgerIDs
	return m.report
}

func (m *mockMonitor) CheckAllKnown(ctx context.Context) (*primary.IntegrityReport, error) {
	m.knownCalled = true
	if m.knownErr != nil {
		return nil, m.knownErr
	}
	return m.report, nil
}

func (m *mockMonitor) RecordVerification(ctx context.Context, v primary.Verification) primary.Verification {
	v.ID = "V-1"
	m.lastVerify = v
	return v
}

func (m *mockMonitor) Score() int { return 75 }

func (m *mockMonitor) Alerts() primary.AlertRegistry { return m.registry }

func sampleReport() *primary.IntegrityReport {
	return &primary.IntegrityReport{
		Timestamp:     time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		OverallStatus: primary.LedgerStatusError,
		LedgerStatuses: map[string]primary.LedgerStatus{
			"L1": {LedgerID: "L1", Status: primary.LedgerStatusHealthy},
			"L2": {LedgerID: "L2", Status: primary.LedgerStatusError, Message: "hash chain break"},
		},
		Unavailable: map[string]string{"L3": "dependency unavailable: ledger L3: timeout"},
		Summary:     primary.VerificationSummary{TotalCount: 4, ValidCount: 3, InvalidCount: 1, IntegrityScore: 75},
		ActiveAlerts: []primary.Alert{
			{ID: "ALERT-0001", Level: primary.AlertLevelCritical, LedgerID: "L2", Message: "hash chain break"},
		},
	}
}

func newTestMonitorAdapter() (*MonitorAdapter, *mockMonitor, *bytes.Buffer) {
	mon := &mockMonitor{report: sampleReport(), registry: &mockAlertRegistry{}}
	out := &bytes.Buffer{}
	return NewMonitorAdapter(mon, out), mon, out
}

func TestMonitorAdapter_Check(t *testing.T) {
	t.Run("explicit ids use CheckAll", func(t *testing.T) {
		adapter, mon, out := newTestMonitorAdapter()

		report, err := adapter.Check(context.Background(), []string{"L1", "L2", "L3"})
		if err != nil {
			t.Fatalf("Check failed: %v", err)
		}
		if report.OverallStatus != primary.LedgerStatusError {
			t.Errorf("OverallStatus = %q", report.OverallStatus)
		}
		if mon.knownCalled || len(mon.lastIDs) != 3 {
			t.Errorf("expected CheckAll with 3 ids, got known=%v ids=%v", mon.knownCalled, mon.lastIDs)
		}

		output := out.String()
		for _, want := range []string{"Overall:", "Score: 75 (3/4 valid)", "hash chain break", "UNAVAILABLE", "ALERT-0001"} {
			if !strings.Contains(output, want) {
				t.Errorf("output missing %q:\n%s", want, output)
			}
		}
		if strings.Index(output, "L1") > strings.Index(output, "L3") {
			t.Error("ledgers should print in sorted order")
		}
	})

	t.Run("no ids use CheckAllKnown", func(t *testing.T) {
		adapter, mon, _ := newTestMonitorAdapter()

		if _, err := adapter.Check(context.Background(), nil); err != nil {
			t.Fatalf("Check failed: %v", err)
		}
		if !mon.knownCalled {
			t.Error("expected CheckAllKnown")
		}
	})

	t.Run("listing failure", func(t *testing.T) {
		adapter, mon, _ := newTestMonitorAdapter()
		mon.knownErr = errors.New("oracle down")

		_, err := adapter.Check(context.Background(), nil)
		if err == nil || !strings.Contains(err.Error(), "oracle down") {
			t.Errorf("err = %v, want wrapped oracle error", err)
		}
	})

	t.Run("empty report", func(t *testing.T) {
		adapter, mon, out := newTestMonitorAdapter()
		mon.report = &primary.IntegrityReport{OverallStatus: primary.LedgerStatusHealthy}

		if _, err := adapter.Check(context.Background(), []string{"L9"}); err != nil {
			t.Fatalf("Check failed: %v", err)
		}
		if !strings.Contains(out.String(), "No ledgers checked") {
			t.Errorf("output = %q", out.String())
		}
	})
}

func TestMonitorAdapter_Alerts(t *testing.T) {
	adapter, mon, out := newTestMonitorAdapter()
	mon.registry.alerts = []primary.Alert{
		{ID: "ALERT-0001", Level: primary.AlertLevelWarning, LedgerID: "L1", Message: "lagging"},
		{ID: "ALERT-0002", Level: primary.AlertLevelCritical, LedgerID: "L2", Message: "broken", Acknowledged: true},
	}

	adapter.Alerts(false)
	if strings.Contains(out.String(), "ALERT-0002") {
		t.Error("acknowledged alert shown without --all")
	}

	out.Reset()
	adapter.Alerts(true)
	if !strings.Contains(out.String(), "ALERT-0002") || !strings.Contains(out.String(), "(acknowledged)") {
		t.Errorf("expected acknowledged alert with --all:\n%s", out.String())
	}
}

func TestMonitorAdapter_Acknowledge(t *testing.T) {
	adapter, mon, out := newTestMonitorAdapter()
	mon.registry.alerts = []primary.Alert{{ID: "ALERT-0001", Level: primary.AlertLevelWarning}}

	if err := adapter.Acknowledge(context.Background(), "ALERT-0001"); err != nil {
		t.Fatalf("Acknowledge failed: %v", err)
	}
	if !strings.Contains(out.String(), "✓ Alert ALERT-0001 acknowledged") {
		t.Errorf("output = %q", out.String())
	}
	if err := adapter.Acknowledge(context.Background(), "ALERT-0001"); err == nil {
		t.Error("expected error on second acknowledge")
	}
}

func TestMonitorAdapter_Verify(t *testing.T) {
	adapter, mon, out := newTestMonitorAdapter()

	v := adapter.Verify(context.Background(), "L1", "anchor", primary.VerificationValid)
	if v.ID != "V-1" {
		t.Errorf("ID = %q", v.ID)
	}
	if mon.lastVerify.TargetID != "L1" || mon.lastVerify.Type != "anchor" {
		t.Errorf("forwarded %+v", mon.lastVerify)
	}
	if !strings.Contains(out.String(), "Integrity score: 75") {
		t.Errorf("output = %q", out.String())
	}
}
