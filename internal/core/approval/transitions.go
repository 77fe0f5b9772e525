// Package approval contains the pure business logic for quorum-gated approval requests.
// This is part of the Functional Core - no I/O, only pure functions.
package approval

import (
	"fmt"
	"strings"
	"time"
)

// Request status values.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
	StatusExpired  = "expired"
)

// InitialStatus returns the status of a newly created request.
func InitialStatus() string {
	return StatusPending
}

// IsTerminal reports whether status is final. Terminal requests never change again.
func IsTerminal(status string) bool {
	return status != StatusPending
}

// IsOverdue reports whether a request with the given deadline is past due at now.
// A request is still live at exactly its deadline.
func IsOverdue(now, expiresAt time.Time) bool {
	return now.After(expiresAt)
}

// StatusAfterSignature returns the status once collected signatures are counted.
// Reaching the threshold approves the request.
func StatusAfterSignature(collected, required int) string {
	if collected >= required {
		return StatusApproved
	}
	return StatusPending
}

// NormalizeParticipants returns participants as an ordered set:
// whitespace trimmed, empty ids dropped, first occurrence kept.
func NormalizeParticipants(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// GenerateRequestID generates a request ID from the current max number.
// The format is APPR-XXXX where XXXX is a zero-padded 4-digit number.
func GenerateRequestID(currentMax int) string {
	return fmt.Sprintf("APPR-%04d", currentMax+1)
}
