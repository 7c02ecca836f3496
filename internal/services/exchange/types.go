package exchange

import (
	"github.com/jdramirez/giftmatch/internal/common/clock"
	"github.com/jdramirez/giftmatch/internal/models"
	"github.com/jdramirez/giftmatch/internal/repositories/assignment"
	"github.com/jdramirez/giftmatch/internal/repositories/roster"
	"github.com/jdramirez/giftmatch/internal/roulette"
)

// Config holds configuration for the exchange service
type Config struct {
	// Repository dependencies
	RosterRepo     roster.Repository
	AssignmentRepo assignment.Repository

	// Service dependencies
	Picker roulette.Picker
	Clock  clock.Clock
}

// AvailableNamesOutput contains the roster names with no assignment yet
type AvailableNamesOutput struct {
	Names []string
}

// PartnerCandidatesInput contains parameters for computing the legal
// partner pool
type PartnerCandidatesInput struct {
	// Name is the requesting participant
	Name string
}

// PartnerCandidatesOutput contains the legal partner pool for a new draw
type PartnerCandidatesOutput struct {
	Candidates []string
}

// GetOrCreateAssignmentInput contains parameters for requesting a draw
type GetOrCreateAssignmentInput struct {
	// Name is the requesting participant
	Name string
}

// GetOrCreateAssignmentOutput contains the result of a draw request
type GetOrCreateAssignmentOutput struct {
	// Assignment is the requester's record, existing or newly drawn
	Assignment *models.Assignment

	// Created indicates a new assignment was drawn and persisted
	Created bool

	// Candidates is the partner pool as computed for this request,
	// used by the result view
	Candidates []string
}

// ListAssignmentsOutput contains the full assignment history
type ListAssignmentsOutput struct {
	Assignments []*models.Assignment
}

// UpdateAssignmentInput contains parameters for an administrative
// partner override
type UpdateAssignmentInput struct {
	// Name is the requester whose assignment is edited
	Name string

	// Partner is the replacement partner value; not validated against
	// the roster, the caller is trusted
	Partner string
}

// UpdateAssignmentOutput contains the edited assignment
type UpdateAssignmentOutput struct {
	Assignment *models.Assignment
}

// DeleteAssignmentInput contains parameters for removing an assignment
type DeleteAssignmentInput struct {
	// Name is the requester whose assignment is removed
	Name string
}

// DeleteAssignmentOutput contains the result of a removal
type DeleteAssignmentOutput struct {
	// Name is the requester whose assignment was removed
	Name string
}
