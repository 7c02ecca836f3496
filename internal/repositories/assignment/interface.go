package assignment

import (
	"context"

	"github.com/jdramirez/giftmatch/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/jdramirez/giftmatch/internal/repositories/assignment Repository

// Repository defines the interface for assignment history persistence.
// The history is a single collection read and rewritten as a whole; the
// store creates an empty collection on first read if none exists.
type Repository interface {
	// GetAssignments retrieves the full history in insertion order
	GetAssignments(ctx context.Context) ([]*models.Assignment, error)

	// SaveAssignments persists the full history, replacing what was stored
	SaveAssignments(ctx context.Context, input *SaveAssignmentsInput) error
}
