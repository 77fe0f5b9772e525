package primary

import (
	"context"
	"time"
)

// Approval request status values.
const (
	ApprovalStatusPending  = "pending"
	ApprovalStatusApproved = "approved"
	ApprovalStatusRejected = "rejected"
	ApprovalStatusExpired  = "expired"
)

// ApprovalCoordinator defines the primary port for quorum-gated approvals.
// Failures match the kinds in core/approval with errors.Is.
type ApprovalCoordinator interface {
	// Create opens a pending request requiring threshold distinct participant signatures.
	Create(ctx context.Context, req CreateApprovalRequest) (*ApprovalRequest, error)

	// Submit counts a signature that the caller has already verified.
	Submit(ctx context.Context, requestID, participantID string) (*ApprovalRequest, error)

	// Reject forces a pending request to rejected.
	Reject(ctx context.Context, requestID, participantID, reason string) (*ApprovalRequest, error)

	// SweepExpired expires every pending request whose deadline is before now.
	// Returns the number of requests transitioned by this call.
	SweepExpired(ctx context.Context, now time.Time) int

	// Get retrieves a request by ID.
	Get(ctx context.Context, requestID string) (*ApprovalRequest, error)

	// List returns requests in creation order, optionally filtered by status.
	List(ctx context.Context, filters ApprovalFilters) []*ApprovalRequest
}

// CreateApprovalRequest contains parameters for opening an approval request.
type CreateApprovalRequest struct {
	Operation    string
	Participants []string
	Threshold    int
	TTL          time.Duration
}

// ApprovalRequest is an approval request at the port boundary.
type ApprovalRequest struct {
	ID                  string
	Operation           string
	RequiredSignatures  int
	CollectedSignatures int
	Participants        []string // ordered set
	Signers             []string // in signing order
	Status              string
	RejectedBy          string
	RejectReason        string
	CreatedAt           time.Time
	ExpiresAt           time.Time
}

// ApprovalFilters contains filter options for listing approval requests.
type ApprovalFilters struct {
	Status string
}
