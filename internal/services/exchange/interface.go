package exchange

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/jdramirez/giftmatch/internal/services/exchange Service

// Service defines the interface for gift-exchange operations
type Service interface {
	// AvailableNames returns roster names that have not requested a draw yet
	AvailableNames(ctx context.Context) (*AvailableNamesOutput, error)

	// PartnerCandidates returns the names still legally drawable as a
	// partner for the given requester
	PartnerCandidates(ctx context.Context, input *PartnerCandidatesInput) (*PartnerCandidatesOutput, error)

	// GetOrCreateAssignment returns the requester's existing assignment,
	// or draws a partner and records a new one
	GetOrCreateAssignment(ctx context.Context, input *GetOrCreateAssignmentInput) (*GetOrCreateAssignmentOutput, error)

	// ListAssignments returns the full assignment history
	ListAssignments(ctx context.Context) (*ListAssignmentsOutput, error)

	// UpdateAssignment overwrites the partner of an existing assignment
	UpdateAssignment(ctx context.Context, input *UpdateAssignmentInput) (*UpdateAssignmentOutput, error)

	// DeleteAssignment removes an assignment by requester name
	DeleteAssignment(ctx context.Context, input *DeleteAssignmentInput) (*DeleteAssignmentOutput, error)
}
