package app

import (
	"context"
	"errors"
	"testing"

	"github.com/example/ledgerwatch/internal/ctxutil"
	"github.com/example/ledgerwatch/internal/ports/primary"
)

func TestAlertRegistry_Raise(t *testing.T) {
	clock := newFakeClock()
	r := NewAlertRegistry(clock, nil)
	ctx := context.Background()

	first := r.Raise(ctx, primary.AlertLevelWarning, "LEDGER-A", "lagging")
	second := r.Raise(ctx, primary.AlertLevelCritical, "LEDGER-B", "broken chain")

	if first.ID == second.ID {
		t.Fatalf("alerts share ID %s", first.ID)
	}
	if first.ID != "ALERT-0001" || second.ID != "ALERT-0002" {
		t.Errorf("IDs = %s, %s", first.ID, second.ID)
	}
	if first.Acknowledged {
		t.Error("new alert should be unacknowledged")
	}
	if !first.Timestamp.Equal(clock.Now()) {
		t.Errorf("Timestamp = %v, want %v", first.Timestamp, clock.Now())
	}
}

func TestAlertRegistry_UnknownLevelFallsBackToWarning(t *testing.T) {
	r := NewAlertRegistry(newFakeClock(), nil)
	a := r.Raise(context.Background(), "catastrophic", "LEDGER-A", "?")
	if a.Level != primary.AlertLevelWarning {
		t.Errorf("Level = %q, want %q", a.Level, primary.AlertLevelWarning)
	}
}

func TestAlertRegistry_Acknowledge(t *testing.T) {
	r := NewAlertRegistry(newFakeClock(), nil)
	ctx := context.Background()
	a := r.Raise(ctx, primary.AlertLevelWarning, "LEDGER-A", "lagging")

	t.Run("first acknowledge succeeds", func(t *testing.T) {
		if !r.Acknowledge(ctx, a.ID) {
			t.Error("Acknowledge() = false, want true")
		}
	})

	t.Run("second acknowledge reports false", func(t *testing.T) {
		if r.Acknowledge(ctx, a.ID) {
			t.Error("Acknowledge() = true, want false")
		}
	})

	t.Run("missing alert reports false", func(t *testing.T) {
		if r.Acknowledge(ctx, "ALERT-9999") {
			t.Error("Acknowledge(missing) = true, want false")
		}
	})
}

func TestAlertRegistry_ActiveExcludesAcknowledged(t *testing.T) {
	r := NewAlertRegistry(newFakeClock(), nil)
	ctx := context.Background()
	a1 := r.Raise(ctx, primary.AlertLevelWarning, "LEDGER-A", "one")
	a2 := r.Raise(ctx, primary.AlertLevelWarning, "LEDGER-B", "two")
	a3 := r.Raise(ctx, primary.AlertLevelCritical, "LEDGER-C", "three")

	r.Acknowledge(ctx, a2.ID)

	active := r.Active()
	if len(active) != 2 {
		t.Fatalf("Active() returned %d, want 2", len(active))
	}
	if active[0].ID != a1.ID || active[1].ID != a3.ID {
		t.Errorf("Active() order = %s, %s", active[0].ID, active[1].ID)
	}
	for _, a := range active {
		if a.Acknowledged {
			t.Errorf("Active() includes acknowledged alert %s", a.ID)
		}
	}

	all := r.All()
	if len(all) != 3 || !all[1].Acknowledged {
		t.Errorf("All() = %+v", all)
	}
}

func TestAlertRegistry_ResultsAreCopies(t *testing.T) {
	r := NewAlertRegistry(newFakeClock(), nil)
	ctx := context.Background()
	r.Raise(ctx, primary.AlertLevelWarning, "LEDGER-A", "lagging")

	active := r.Active()
	active[0].Acknowledged = true
	if len(r.Active()) != 1 {
		t.Error("mutating Active() result changed registry")
	}
}

func TestAlertRegistry_WritesEvents(t *testing.T) {
	events := newMockEventLog()
	r := NewAlertRegistry(newFakeClock(), events)
	ctx := ctxutil.WithActorID(context.Background(), "operator")

	a := r.Raise(ctx, primary.AlertLevelCritical, "LEDGER-A", "broken chain")
	r.Acknowledge(ctx, a.ID)
	r.Acknowledge(ctx, a.ID)

	got := events.actions(a.ID)
	if len(got) != 2 || got[0] != "raise" || got[1] != "acknowledge" {
		t.Errorf("actions = %v, want [raise acknowledge]", got)
	}
	if events.events[0].ActorID != "operator" {
		t.Errorf("ActorID = %q, want %q", events.events[0].ActorID, "operator")
	}
}

func TestAlertRegistry_EventLogFailureIsIgnored(t *testing.T) {
	events := newMockEventLog()
	events.appendErr = errors.New("disk full")
	r := NewAlertRegistry(newFakeClock(), events)
	ctx := context.Background()

	a := r.Raise(ctx, primary.AlertLevelWarning, "LEDGER-A", "lagging")
	if !r.Acknowledge(ctx, a.ID) {
		t.Error("Acknowledge() should succeed even when the event log fails")
	}
}
