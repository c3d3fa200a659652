package memberstats

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/xxreen/MAID-BOT-24H/internal/models"
)

const (
	// Key prefix for Redis
	statsKeyPrefix = "member_stats:"
)

// redisRepository implements the Repository interface using Redis hashes
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed member stats repository
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

// IncrementStat adds delta to one of a user's counters
func (r *redisRepository) IncrementStat(ctx context.Context, input *IncrementStatInput) (*IncrementStatOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	if input.Stat == "" {
		return nil, errors.New("stat cannot be empty")
	}

	delta := input.Delta
	if delta == 0 {
		delta = 1
	}

	statsKey := fmt.Sprintf("%s%s", statsKeyPrefix, input.UserID)
	newValue, err := r.client.HIncrBy(ctx, statsKey, string(input.Stat), delta).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to increment %s: %w", input.Stat, err)
	}

	return &IncrementStatOutput{
		NewValue: newValue,
	}, nil
}

// GetStats retrieves all counters for a user
func (r *redisRepository) GetStats(ctx context.Context, input *GetStatsInput) (*models.MemberStats, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	statsKey := fmt.Sprintf("%s%s", statsKeyPrefix, input.UserID)
	fields, err := r.client.HGetAll(ctx, statsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	stats := &models.MemberStats{
		UserID: input.UserID,
	}
	stats.QuestionsAsked = parseCount(fields[string(StatQuestionsAsked)])
	stats.QuizCorrect = parseCount(fields[string(StatQuizCorrect)])
	stats.ShiritoriWins = parseCount(fields[string(StatShiritoriWins)])

	return stats, nil
}

// parseCount reads a counter field, treating missing or junk values as zero
func parseCount(raw string) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
