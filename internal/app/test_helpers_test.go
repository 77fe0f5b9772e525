package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/example/ledgerwatch/internal/ports/secondary"
)

// ============================================================================
// Fake Clock
// ============================================================================

// fakeClock implements secondary.Clock with a manually advanced time.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

var _ secondary.Clock = (*fakeClock)(nil)

// ============================================================================
// Mock Oracle
// ============================================================================

// mockOracle implements secondary.LedgerStatusOracle for testing.
type mockOracle struct {
	mu       sync.Mutex
	statuses map[string]*secondary.LedgerStatusRecord
	errs     map[string]error
	delays   map[string]time.Duration
	listErr  error
	calls    map[string]int
}

func newMockOracle() *mockOracle {
	return &mockOracle{
		statuses: make(map[string]*secondary.LedgerStatusRecord),
		errs:     make(map[string]error),
		delays:   make(map[string]time.Duration),
		calls:    make(map[string]int),
	}
}

func (m *mockOracle) set(ledgerID, status, message string) {
	m.statuses[ledgerID] = &secondary.LedgerStatusRecord{LedgerID: ledgerID, Status: status, Message: message}
}

func (m *mockOracle) GetStatus(ctx context.Context, ledgerID string) (*secondary.LedgerStatusRecord, error) {
	m.mu.Lock()
	m.calls[ledgerID]++
	delay := m.delays[ledgerID]
	err := m.errs[ledgerID]
	rec, ok := m.statuses[ledgerID]
	m.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("unknown ledger")
	}
	copied := *rec
	return &copied, nil
}

func (m *mockOracle) ListLedgers(ctx context.Context) ([]string, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	ids := make([]string, 0, len(m.statuses)+len(m.errs))
	for id := range m.statuses {
		ids = append(ids, id)
	}
	for id := range m.errs {
		if _, ok := m.statuses[id]; !ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (m *mockOracle) callCount(ledgerID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[ledgerID]
}

var _ secondary.LedgerStatusOracle = (*mockOracle)(nil)

// ============================================================================
// Mock Event Log
// ============================================================================

// mockEventLog implements secondary.EventLog for testing.
type mockEventLog struct {
	mu        sync.Mutex
	events    []*secondary.EventRecord
	appendErr error
}

func newMockEventLog() *mockEventLog {
	return &mockEventLog{}
}

func (m *mockEventLog) Append(ctx context.Context, event *secondary.EventRecord) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

func (m *mockEventLog) List(ctx context.Context, filters secondary.EventFilters) ([]*secondary.EventRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*secondary.EventRecord
	for _, e := range m.events {
		if filters.EntityType != "" && e.EntityType != filters.EntityType {
			continue
		}
		if filters.EntityID != "" && e.EntityID != filters.EntityID {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (m *mockEventLog) actions(entityID string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, e := range m.events {
		if e.EntityID == entityID {
			out = append(out, e.Action)
		}
	}
	return out
}

var _ secondary.EventLog = (*mockEventLog)(nil)
