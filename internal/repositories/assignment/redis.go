package assignment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jdramirez/giftmatch/internal/models"
)

// assignmentsKey holds the full history as one JSON document, keeping
// the same whole-collection read/write semantics as the file store
const assignmentsKey = "giftmatch:assignments"

// RedisConfig holds configuration for the Redis assignment repository
type RedisConfig struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed assignment repository
func NewRedis(cfg *RedisConfig) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// GetAssignments retrieves the full history, initializing an empty
// store if the key does not exist yet
func (r *redisRepository) GetAssignments(ctx context.Context) ([]*models.Assignment, error) {
	data, err := r.client.Get(ctx, assignmentsKey).Result()
	if err != nil {
		if err != redis.Nil {
			return nil, fmt.Errorf("failed to get assignments: %w", err)
		}

		if err := r.SaveAssignments(ctx, &SaveAssignmentsInput{
			Assignments: []*models.Assignment{},
		}); err != nil {
			return nil, err
		}
		return []*models.Assignment{}, nil
	}

	var payload storePayload
	if err := json.Unmarshal([]byte(data), &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal assignments: %w", err)
	}

	if payload.Assignments == nil {
		return []*models.Assignment{}, nil
	}

	return payload.Assignments, nil
}

// SaveAssignments stores the full history under a single key
func (r *redisRepository) SaveAssignments(ctx context.Context, input *SaveAssignmentsInput) error {
	if input == nil || input.Assignments == nil {
		return errors.New("input and assignments cannot be nil")
	}

	data, err := json.Marshal(storePayload{Assignments: input.Assignments})
	if err != nil {
		return fmt.Errorf("failed to marshal assignments: %w", err)
	}

	if err := r.client.Set(ctx, assignmentsKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save assignments: %w", err)
	}

	return nil
}
