package app

import (
	"context"
	"sync"

	"github.com/example/ledgerwatch/internal/core/alert"
	"github.com/example/ledgerwatch/internal/ports/primary"
	"github.com/example/ledgerwatch/internal/ports/secondary"
)

// AlertRegistryImpl implements primary.AlertRegistry.
// Alerts are never deleted; acknowledgement is the only mutation.
type AlertRegistryImpl struct {
	mu     sync.Mutex
	alerts []primary.Alert
	index  map[string]int // alert ID -> position in alerts
	clock  secondary.Clock
	events eventRecorder
}

// NewAlertRegistry creates an empty alert registry.
// events is optional - if nil, no audit logging is performed.
func NewAlertRegistry(clock secondary.Clock, events secondary.EventLog) *AlertRegistryImpl {
	return &AlertRegistryImpl{
		index:  make(map[string]int),
		clock:  clockOrDefault(clock),
		events: eventRecorder{log: events},
	}
}

// Raise stores a new unacknowledged alert.
func (r *AlertRegistryImpl) Raise(ctx context.Context, level, ledgerID, message string) primary.Alert {
	if !alert.IsKnownLevel(level) {
		level = primary.AlertLevelWarning
	}

	r.mu.Lock()
	a := primary.Alert{
		ID:        alert.GenerateAlertID(len(r.alerts)),
		Level:     level,
		LedgerID:  ledgerID,
		Message:   message,
		Timestamp: r.clock.Now(),
	}
	r.index[a.ID] = len(r.alerts)
	r.alerts = append(r.alerts, a)
	r.mu.Unlock()

	r.events.write(ctx, pendingEvent{
		entityType: "alert",
		entityID:   a.ID,
		action:     "raise",
		detail:     level + " " + ledgerID + ": " + message,
	})
	return a
}

// Acknowledge flips an alert to acknowledged. Returns false if missing or already acknowledged.
func (r *AlertRegistryImpl) Acknowledge(ctx context.Context, alertID string) bool {
	r.mu.Lock()
	pos, exists := r.index[alertID]
	guard := alert.AcknowledgeContext{AlertID: alertID, Exists: exists}
	if exists {
		guard.Acknowledged = r.alerts[pos].Acknowledged
	}
	if !alert.CanAcknowledge(guard) {
		r.mu.Unlock()
		return false
	}
	r.alerts[pos].Acknowledged = true
	r.mu.Unlock()

	r.events.write(ctx, pendingEvent{entityType: "alert", entityID: alertID, action: "acknowledge"})
	return true
}

// Active returns unacknowledged alerts in insertion order.
func (r *AlertRegistryImpl) Active() []primary.Alert {
	r.mu.Lock()
	defer r.mu.Unlock()

	active := make([]primary.Alert, 0, len(r.alerts))
	for _, a := range r.alerts {
		if !a.Acknowledged {
			active = append(active, a)
		}
	}
	return active
}

// All returns every alert in insertion order.
func (r *AlertRegistryImpl) All() []primary.Alert {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]primary.Alert, len(r.alerts))
	copy(all, r.alerts)
	return all
}

// Ensure AlertRegistryImpl implements the interface
var _ primary.AlertRegistry = (*AlertRegistryImpl)(nil)
