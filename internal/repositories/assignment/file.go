package assignment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jdramirez/giftmatch/internal/models"
)

// storePayload is the on-disk shape of the history file
type storePayload struct {
	Assignments []*models.Assignment `json:"assignments"`
}

// Config holds configuration for the file assignment repository
type Config struct {
	// Path to the assignments JSON file
	Path string
}

// fileRepository implements the Repository interface backed by a JSON
// file of the form {"assignments": [...]}
type fileRepository struct {
	path string
}

// NewFile creates a new file-backed assignment repository
func NewFile(cfg *Config) (*fileRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Path == "" {
		return nil, errors.New("assignments path cannot be empty")
	}

	return &fileRepository{
		path: cfg.Path,
	}, nil
}

// GetAssignments reads the full history, creating an empty store first
// if the file does not exist yet
func (r *fileRepository) GetAssignments(ctx context.Context) ([]*models.Assignment, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read assignments: %w", err)
		}

		if err := r.SaveAssignments(ctx, &SaveAssignmentsInput{
			Assignments: []*models.Assignment{},
		}); err != nil {
			return nil, err
		}
		return []*models.Assignment{}, nil
	}

	var payload storePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal assignments: %w", err)
	}

	if payload.Assignments == nil {
		return []*models.Assignment{}, nil
	}

	return payload.Assignments, nil
}

// SaveAssignments writes the full history back to the file
func (r *fileRepository) SaveAssignments(_ context.Context, input *SaveAssignmentsInput) error {
	if input == nil || input.Assignments == nil {
		return errors.New("input and assignments cannot be nil")
	}

	data, err := json.MarshalIndent(storePayload{Assignments: input.Assignments}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal assignments: %w", err)
	}

	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write assignments: %w", err)
	}

	return nil
}
