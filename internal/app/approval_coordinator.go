package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/example/ledgerwatch/internal/core/approval"
	"github.com/example/ledgerwatch/internal/ports/primary"
	"github.com/example/ledgerwatch/internal/ports/secondary"
)

// approvalEntry is the coordinator-owned state of one request.
type approvalEntry struct {
	req          primary.ApprovalRequest
	participants map[string]bool
	signed       map[string]bool
}

func (e *approvalEntry) snapshot() *primary.ApprovalRequest {
	out := e.req
	out.Participants = append([]string(nil), e.req.Participants...)
	out.Signers = append([]string(nil), e.req.Signers...)
	return &out
}

// ApprovalCoordinatorImpl implements primary.ApprovalCoordinator.
// A single mutex guards the request table so every check-and-transition is atomic.
type ApprovalCoordinatorImpl struct {
	mu       sync.Mutex
	requests map[string]*approvalEntry
	order    []string // request IDs in creation order
	clock    secondary.Clock
	logger   *slog.Logger
	events   eventRecorder
}

// NewApprovalCoordinator creates an empty coordinator.
// events is optional - if nil, no audit logging is performed.
func NewApprovalCoordinator(clock secondary.Clock, events secondary.EventLog, logger *slog.Logger) *ApprovalCoordinatorImpl {
	return &ApprovalCoordinatorImpl{
		requests: make(map[string]*approvalEntry),
		clock:    clockOrDefault(clock),
		logger:   loggerOrDiscard(logger),
		events:   eventRecorder{log: events},
	}
}

// Create opens a pending approval request.
func (c *ApprovalCoordinatorImpl) Create(ctx context.Context, req primary.CreateApprovalRequest) (*primary.ApprovalRequest, error) {
	participants := approval.NormalizeParticipants(req.Participants)

	guard := approval.CanCreate(approval.CreateContext{
		Operation:        req.Operation,
		ParticipantCount: len(participants),
		Threshold:        req.Threshold,
		TTL:              req.TTL,
	})
	if err := guard.Error(); err != nil {
		return nil, err
	}

	now := c.clock.Now()
	entry := &approvalEntry{
		req: primary.ApprovalRequest{
			Operation:          req.Operation,
			RequiredSignatures: req.Threshold,
			Participants:       participants,
			Signers:            []string{},
			Status:             approval.InitialStatus(),
			CreatedAt:          now,
			ExpiresAt:          now.Add(req.TTL),
		},
		participants: make(map[string]bool, len(participants)),
		signed:       make(map[string]bool, len(participants)),
	}
	for _, p := range participants {
		entry.participants[p] = true
	}

	c.mu.Lock()
	entry.req.ID = approval.GenerateRequestID(len(c.order))
	c.requests[entry.req.ID] = entry
	c.order = append(c.order, entry.req.ID)
	created := entry.snapshot()
	c.mu.Unlock()

	c.logger.Info("approval request created",
		"request_id", created.ID,
		"operation", created.Operation,
		"threshold", created.RequiredSignatures,
		"participants", len(created.Participants),
		"expires_at", created.ExpiresAt,
	)
	c.events.write(ctx, pendingEvent{
		entityType: "approval",
		entityID:   created.ID,
		action:     "create",
		detail:     fmt.Sprintf("%s %d-of-%d", created.Operation, created.RequiredSignatures, len(created.Participants)),
	})
	return created, nil
}

// Submit counts a signature from participantID. Reaching the threshold approves
// the request inside the same critical section.
func (c *ApprovalCoordinatorImpl) Submit(ctx context.Context, requestID, participantID string) (*primary.ApprovalRequest, error) {
	now := c.clock.Now()

	c.mu.Lock()
	entry, exists := c.requests[requestID]
	guardCtx := approval.SubmitContext{
		RequestID:     requestID,
		Exists:        exists,
		Now:           now,
		ParticipantID: participantID,
	}
	if exists {
		guardCtx.Status = entry.req.Status
		guardCtx.ExpiresAt = entry.req.ExpiresAt
		guardCtx.IsParticipant = entry.participants[participantID]
		guardCtx.AlreadySigned = entry.signed[participantID]
	}

	guard := approval.CanSubmit(guardCtx)
	if !guard.Allowed {
		var pending []pendingEvent
		if guard.Expire {
			entry.req.Status = approval.StatusExpired
			pending = append(pending, pendingEvent{entityType: "approval", entityID: requestID, action: "expire"})
		}
		c.mu.Unlock()
		c.events.write(ctx, pending...)
		return nil, guard.Error()
	}

	entry.signed[participantID] = true
	entry.req.Signers = append(entry.req.Signers, participantID)
	entry.req.CollectedSignatures++
	entry.req.Status = approval.StatusAfterSignature(entry.req.CollectedSignatures, entry.req.RequiredSignatures)
	updated := entry.snapshot()
	c.mu.Unlock()

	pending := []pendingEvent{{
		entityType: "approval",
		entityID:   requestID,
		action:     "sign",
		detail:     fmt.Sprintf("%s (%d/%d)", participantID, updated.CollectedSignatures, updated.RequiredSignatures),
	}}
	if updated.Status == approval.StatusApproved {
		c.logger.Info("approval request approved", "request_id", requestID, "signers", updated.Signers)
		pending = append(pending, pendingEvent{entityType: "approval", entityID: requestID, action: "approve"})
	}
	c.events.write(ctx, pending...)
	return updated, nil
}

// Reject forces a pending request to rejected.
func (c *ApprovalCoordinatorImpl) Reject(ctx context.Context, requestID, participantID, reason string) (*primary.ApprovalRequest, error) {
	now := c.clock.Now()

	c.mu.Lock()
	entry, exists := c.requests[requestID]
	guardCtx := approval.RejectContext{
		RequestID:     requestID,
		Exists:        exists,
		Now:           now,
		ParticipantID: participantID,
	}
	if exists {
		guardCtx.Status = entry.req.Status
		guardCtx.ExpiresAt = entry.req.ExpiresAt
		guardCtx.IsParticipant = entry.participants[participantID]
	}

	guard := approval.CanReject(guardCtx)
	if !guard.Allowed {
		var pending []pendingEvent
		if guard.Expire {
			entry.req.Status = approval.StatusExpired
			pending = append(pending, pendingEvent{entityType: "approval", entityID: requestID, action: "expire"})
		}
		c.mu.Unlock()
		c.events.write(ctx, pending...)
		return nil, guard.Error()
	}

	entry.req.Status = approval.StatusRejected
	entry.req.RejectedBy = participantID
	entry.req.RejectReason = reason
	updated := entry.snapshot()
	c.mu.Unlock()

	c.logger.Info("approval request rejected", "request_id", requestID, "rejected_by", participantID, "reason", reason)
	c.events.write(ctx, pendingEvent{entityType: "approval", entityID: requestID, action: "reject", detail: participantID + ": " + reason})
	return updated, nil
}

// SweepExpired expires every pending request whose deadline is before now.
func (c *ApprovalCoordinatorImpl) SweepExpired(ctx context.Context, now time.Time) int {
	c.mu.Lock()
	var pending []pendingEvent
	for _, id := range c.order {
		entry := c.requests[id]
		if !approval.ShouldSweep(entry.req.Status, entry.req.ExpiresAt, now) {
			continue
		}
		entry.req.Status = approval.StatusExpired
		pending = append(pending, pendingEvent{entityType: "approval", entityID: id, action: "expire", detail: "sweep"})
	}
	c.mu.Unlock()

	if len(pending) > 0 {
		c.logger.Info("expired stale approval requests", "count", len(pending))
	}
	c.events.write(ctx, pending...)
	return len(pending)
}

// Get retrieves a request by ID.
func (c *ApprovalCoordinatorImpl) Get(ctx context.Context, requestID string) (*primary.ApprovalRequest, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.requests[requestID]
	if !ok {
		return nil, fmt.Errorf("%w: approval request %s not found", approval.ErrNotFound, requestID)
	}
	return entry.snapshot(), nil
}

// List returns requests in creation order, optionally filtered by status.
func (c *ApprovalCoordinatorImpl) List(ctx context.Context, filters primary.ApprovalFilters) []*primary.ApprovalRequest {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]*primary.ApprovalRequest, 0, len(c.order))
	for _, id := range c.order {
		entry := c.requests[id]
		if filters.Status != "" && entry.req.Status != filters.Status {
			continue
		}
		out = append(out, entry.snapshot())
	}
	return out
}

// Ensure ApprovalCoordinatorImpl implements the interface
var _ primary.ApprovalCoordinator = (*ApprovalCoordinatorImpl)(nil)
