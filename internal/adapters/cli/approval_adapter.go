package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/example/ledgerwatch/internal/ports/primary"
)

// ApprovalAdapter translates ceremony commands into ApprovalCoordinator calls.
type ApprovalAdapter struct {
	coordinator primary.ApprovalCoordinator
	out         io.Writer
}

// NewApprovalAdapter creates a new ApprovalAdapter with the given coordinator.
func NewApprovalAdapter(coordinator primary.ApprovalCoordinator, out io.Writer) *ApprovalAdapter {
	return &ApprovalAdapter{
		coordinator: coordinator,
		out:         out,
	}
}

// CeremonyRequest describes one approval ceremony run from the command line.
// Signers have already had their signatures verified out of band.
type CeremonyRequest struct {
	Operation    string
	Participants []string
	Threshold    int
	TTL          time.Duration
	Signers      []string
	RejectBy     string
	RejectReason string
}

// Ceremony opens a request, submits each signer in order, and optionally
// rejects at the end. Individual submit failures are printed, not returned.
func (a *ApprovalAdapter) Ceremony(ctx context.Context, req CeremonyRequest) (*primary.ApprovalRequest, error) {
	created, err := a.coordinator.Create(ctx, primary.CreateApprovalRequest{
		Operation:    req.Operation,
		Participants: req.Participants,
		Threshold:    req.Threshold,
		TTL:          req.TTL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create approval request: %w", err)
	}
	fmt.Fprintf(a.out, "✓ Created approval request %s for %q (%d of %d, expires %s)\n",
		created.ID, created.Operation, created.RequiredSignatures, len(created.Participants),
		created.ExpiresAt.Format(time.RFC3339))

	current := created
	for _, signer := range req.Signers {
		updated, err := a.coordinator.Submit(ctx, created.ID, signer)
		if err != nil {
			fmt.Fprintf(a.out, "  %s %s: %v\n", color.New(color.FgRed).Sprint("✗"), signer, err)
			continue
		}
		current = updated
		fmt.Fprintf(a.out, "  %s %s signed (%d/%d)\n", color.New(color.FgGreen).Sprint("✓"),
			signer, updated.CollectedSignatures, updated.RequiredSignatures)
	}

	if req.RejectBy != "" {
		updated, err := a.coordinator.Reject(ctx, created.ID, req.RejectBy, req.RejectReason)
		if err != nil {
			fmt.Fprintf(a.out, "  %s reject by %s: %v\n", color.New(color.FgRed).Sprint("✗"), req.RejectBy, err)
		} else {
			current = updated
		}
	}

	if latest, err := a.coordinator.Get(ctx, created.ID); err == nil {
		current = latest
	}
	a.Show(current)
	return current, nil
}

// Show prints one approval request.
func (a *ApprovalAdapter) Show(req *primary.ApprovalRequest) {
	fmt.Fprintf(a.out, "\nApproval:  %s\n", req.ID)
	fmt.Fprintf(a.out, "Operation: %s\n", req.Operation)
	fmt.Fprintf(a.out, "Status:    %s\n", approvalStatusLabel(req.Status))
	fmt.Fprintf(a.out, "Signed:    %d/%d", req.CollectedSignatures, req.RequiredSignatures)
	if len(req.Signers) > 0 {
		fmt.Fprintf(a.out, " (%s)", strings.Join(req.Signers, ", "))
	}
	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "Participants: %s\n", strings.Join(req.Participants, ", "))
	if req.Status == primary.ApprovalStatusRejected {
		fmt.Fprintf(a.out, "Rejected by %s: %s\n", req.RejectedBy, req.RejectReason)
	}
	fmt.Fprintln(a.out)
}

// List prints approval requests, optionally filtered by status.
func (a *ApprovalAdapter) List(ctx context.Context, status string) {
	requests := a.coordinator.List(ctx, primary.ApprovalFilters{Status: status})
	if len(requests) == 0 {
		fmt.Fprintln(a.out, "No approval requests found")
		return
	}

	fmt.Fprintf(a.out, "\n%-12s %-10s %-8s %s\n", "ID", "STATUS", "SIGNED", "OPERATION")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")
	for _, r := range requests {
		fmt.Fprintf(a.out, "%-12s %-10s %-8s %s\n", r.ID, r.Status,
			fmt.Sprintf("%d/%d", r.CollectedSignatures, r.RequiredSignatures), r.Operation)
	}
	fmt.Fprintln(a.out)
}

func approvalStatusLabel(status string) string {
	switch status {
	case primary.ApprovalStatusApproved:
		return color.New(color.FgGreen).Sprint(status)
	case primary.ApprovalStatusRejected:
		return color.New(color.FgRed).Sprint(status)
	case primary.ApprovalStatusExpired:
		return color.New(color.FgYellow).Sprint(status)
	}
	return status
}
