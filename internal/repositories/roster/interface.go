package roster

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/jdramirez/giftmatch/internal/repositories/roster Repository

// Repository defines the interface for loading the participant roster
type Repository interface {
	// GetRoster returns the ordered set of participant names for the event
	GetRoster(ctx context.Context) ([]string, error)
}
