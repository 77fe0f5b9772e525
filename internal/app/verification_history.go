package app

import (
	"sync"

	"github.com/google/uuid"

	"github.com/example/ledgerwatch/internal/core/verification"
	"github.com/example/ledgerwatch/internal/ports/primary"
	"github.com/example/ledgerwatch/internal/ports/secondary"
)

// DefaultHistoryCap is the number of verifications kept before the oldest is evicted.
const DefaultHistoryCap = 1000

// VerificationHistoryImpl implements primary.VerificationHistory as a fixed-size ring.
type VerificationHistoryImpl struct {
	mu      sync.Mutex
	entries []primary.Verification
	start   int // index of the oldest entry
	count   int
	clock   secondary.Clock
}

// NewVerificationHistory creates a history holding at most capacity entries.
// A non-positive capacity uses DefaultHistoryCap.
func NewVerificationHistory(capacity int, clock secondary.Clock) *VerificationHistoryImpl {
	if capacity <= 0 {
		capacity = DefaultHistoryCap
	}
	return &VerificationHistoryImpl{
		entries: make([]primary.Verification, capacity),
		clock:   clockOrDefault(clock),
	}
}

// Record appends v, evicting the oldest entry when full.
func (h *VerificationHistoryImpl) Record(v primary.Verification) primary.Verification {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	if v.Timestamp.IsZero() {
		v.Timestamp = h.clock.Now()
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	capacity := len(h.entries)
	if h.count < capacity {
		h.entries[(h.start+h.count)%capacity] = v
		h.count++
		return v
	}

	// Full: overwrite the oldest slot and advance the window.
	h.entries[h.start] = v
	h.start = (h.start + 1) % capacity
	return v
}

// Summary computes counts and the integrity score over the current window.
func (h *VerificationHistoryImpl) Summary() primary.VerificationSummary {
	h.mu.Lock()
	var tally verification.Tally
	for i := 0; i < h.count; i++ {
		tally.Add(h.at(i).Status)
	}
	h.mu.Unlock()

	return primary.VerificationSummary{
		TotalCount:     tally.Total,
		ValidCount:     tally.Valid,
		InvalidCount:   tally.Invalid,
		IntegrityScore: verification.Score(tally),
	}
}

// Recent returns up to n most recent verifications, most recent last.
func (h *VerificationHistoryImpl) Recent(n int) []primary.Verification {
	h.mu.Lock()
	defer h.mu.Unlock()

	if n <= 0 {
		return []primary.Verification{}
	}
	if n > h.count {
		n = h.count
	}
	out := make([]primary.Verification, 0, n)
	for i := h.count - n; i < h.count; i++ {
		out = append(out, h.at(i))
	}
	return out
}

// Len returns the number of verifications currently held.
func (h *VerificationHistoryImpl) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.count
}

// at returns the i-th oldest entry. Caller must hold mu.
func (h *VerificationHistoryImpl) at(i int) primary.Verification {
	return h.entries[(h.start+i)%len(h.entries)]
}

// Ensure VerificationHistoryImpl implements the interface
var _ primary.VerificationHistory = (*VerificationHistoryImpl)(nil)
