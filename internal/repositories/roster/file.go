package roster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Config holds configuration for the file roster repository
type Config struct {
	// Path to the roster JSON file
	Path string
}

// fileRepository implements the Repository interface backed by a JSON
// file of the form {"names": ["Ana", "Beto", ...]}
type fileRepository struct {
	path string
}

// NewFile creates a new file-backed roster repository
func NewFile(cfg *Config) (*fileRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Path == "" {
		return nil, errors.New("roster path cannot be empty")
	}

	return &fileRepository{
		path: cfg.Path,
	}, nil
}

// GetRoster reads the roster file and returns the names in file order
func (r *fileRepository) GetRoster(_ context.Context) ([]string, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	var payload struct {
		Names []string `json:"names"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	// A file without the names field is an empty roster, not a fault
	if payload.Names == nil {
		return []string{}, nil
	}

	return payload.Names, nil
}
