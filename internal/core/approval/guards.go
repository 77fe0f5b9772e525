package approval

import (
	"fmt"
	"strings"
	"time"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
	Kind    error // failure kind, matched with errors.Is
	// Expire is set when the request must transition to expired as a side effect.
	Expire bool
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	if r.Kind == nil {
		return fmt.Errorf("%s", r.Reason)
	}
	return fmt.Errorf("%w: %s", r.Kind, r.Reason)
}

// CreateContext provides context for request creation guards.
type CreateContext struct {
	Operation        string
	ParticipantCount int // after NormalizeParticipants
	Threshold        int
	TTL              time.Duration
}

// SubmitContext provides context for signature submission guards.
type SubmitContext struct {
	RequestID     string
	Exists        bool
	Status        string
	Now           time.Time
	ExpiresAt     time.Time
	ParticipantID string
	IsParticipant bool
	AlreadySigned bool
}

// RejectContext provides context for rejection guards.
type RejectContext struct {
	RequestID     string
	Exists        bool
	Status        string
	Now           time.Time
	ExpiresAt     time.Time
	ParticipantID string
	IsParticipant bool
}

// CanCreate evaluates whether an approval request can be created.
// Rules:
// - Operation must not be empty
// - Threshold must be within [1, participant count]
// - TTL must be positive
func CanCreate(ctx CreateContext) GuardResult {
	if strings.TrimSpace(ctx.Operation) == "" {
		return GuardResult{
			Reason: "operation cannot be empty",
			Kind:   ErrInvalidOperation,
		}
	}

	if ctx.Threshold < 1 || ctx.Threshold > ctx.ParticipantCount {
		return GuardResult{
			Reason: fmt.Sprintf("threshold %d must be between 1 and %d participants", ctx.Threshold, ctx.ParticipantCount),
			Kind:   ErrInvalidThreshold,
		}
	}

	if ctx.TTL <= 0 {
		return GuardResult{
			Reason: fmt.Sprintf("ttl must be positive (got %s)", ctx.TTL),
			Kind:   ErrInvalidTTL,
		}
	}

	return GuardResult{Allowed: true}
}

// CanSubmit evaluates whether a participant's signature can be counted.
// Rules (checked in order):
// - Request must exist
// - Request must still be pending
// - Request must not be past its deadline (expires it as a side effect)
// - Participant must be registered on the request
// - Participant must not have signed already
func CanSubmit(ctx SubmitContext) GuardResult {
	if !ctx.Exists {
		return GuardResult{
			Reason: fmt.Sprintf("approval request %s not found", ctx.RequestID),
			Kind:   ErrNotFound,
		}
	}

	if IsTerminal(ctx.Status) {
		return GuardResult{
			Reason: fmt.Sprintf("approval request %s is %s", ctx.RequestID, ctx.Status),
			Kind:   ErrAlreadyFinalized,
		}
	}

	if IsOverdue(ctx.Now, ctx.ExpiresAt) {
		return GuardResult{
			Reason: fmt.Sprintf("approval request %s expired at %s", ctx.RequestID, ctx.ExpiresAt.Format(time.RFC3339)),
			Kind:   ErrExpired,
			Expire: true,
		}
	}

	if !ctx.IsParticipant {
		return GuardResult{
			Reason: fmt.Sprintf("%s is not a participant of %s", ctx.ParticipantID, ctx.RequestID),
			Kind:   ErrNotAParticipant,
		}
	}

	if ctx.AlreadySigned {
		return GuardResult{
			Reason: fmt.Sprintf("%s already signed %s", ctx.ParticipantID, ctx.RequestID),
			Kind:   ErrAlreadySigned,
		}
	}

	return GuardResult{Allowed: true}
}

// CanReject evaluates whether a participant can force a request to rejected.
// Rules (checked in order):
// - Request must exist
// - Request must still be pending
// - Request must not be past its deadline (expires it as a side effect)
// - Rejecting party must be a registered participant
func CanReject(ctx RejectContext) GuardResult {
	if !ctx.Exists {
		return GuardResult{
			Reason: fmt.Sprintf("approval request %s not found", ctx.RequestID),
			Kind:   ErrNotFound,
		}
	}

	if IsTerminal(ctx.Status) {
		return GuardResult{
			Reason: fmt.Sprintf("approval request %s is %s", ctx.RequestID, ctx.Status),
			Kind:   ErrAlreadyFinalized,
		}
	}

	if IsOverdue(ctx.Now, ctx.ExpiresAt) {
		return GuardResult{
			Reason: fmt.Sprintf("approval request %s expired at %s", ctx.RequestID, ctx.ExpiresAt.Format(time.RFC3339)),
			Kind:   ErrExpired,
			Expire: true,
		}
	}

	if !ctx.IsParticipant {
		return GuardResult{
			Reason: fmt.Sprintf("%s is not a participant of %s", ctx.ParticipantID, ctx.RequestID),
			Kind:   ErrNotAParticipant,
		}
	}

	return GuardResult{Allowed: true}
}

// ShouldSweep reports whether a sweep at now transitions a request to expired.
func ShouldSweep(status string, expiresAt, now time.Time) bool {
	return status == StatusPending && expiresAt.Before(now)
}
