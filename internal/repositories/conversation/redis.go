package conversation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/xxreen/MAID-BOT-24H/internal/models"
)

const (
	// Key prefix for Redis
	recordKeyPrefix = "conversation:"
)

// ErrRecordNotFound is returned when a user has no conversation record yet
var ErrRecordNotFound = errors.New("conversation record not found")

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed conversation repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
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

// GetRecord retrieves a user's conversation record from Redis
func (r *redisRepository) GetRecord(ctx context.Context, input *GetRecordInput) (*models.ConversationRecord, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	recordKey := fmt.Sprintf("%s%s", recordKeyPrefix, input.UserID)
	recordJSON, err := r.client.Get(ctx, recordKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get conversation record: %w", err)
	}

	var record models.ConversationRecord
	if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal conversation record: %w", err)
	}

	return &record, nil
}

// SaveRecord persists a user's conversation record to Redis
func (r *redisRepository) SaveRecord(ctx context.Context, input *SaveRecordInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	record := input.Record
	if record.UserID == "" {
		return errors.New("record user ID cannot be empty")
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal conversation record: %w", err)
	}

	recordKey := fmt.Sprintf("%s%s", recordKeyPrefix, record.UserID)
	if err := r.client.Set(ctx, recordKey, recordJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save conversation record: %w", err)
	}

	return nil
}
