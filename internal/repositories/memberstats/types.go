package memberstats

import (
	"github.com/redis/go-redis/v9"
)

// Stat names the counters tracked per user
type Stat string

const (
	// StatQuestionsAsked counts accepted conversational turns
	StatQuestionsAsked Stat = "questions_asked"

	// StatQuizCorrect counts correct quiz answers
	StatQuizCorrect Stat = "quiz_correct"

	// StatShiritoriWins counts shiritori games won
	StatShiritoriWins Stat = "shiritori_wins"
)

// Config holds configuration for the Redis member stats repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// IncrementStatInput contains parameters for incrementing a counter
type IncrementStatInput struct {
	// UserID is the Discord user ID the counter belongs to
	UserID string

	// Stat is the counter to increment
	Stat Stat

	// Delta is the amount to add; defaults to 1 when zero
	Delta int64
}

// IncrementStatOutput contains the result of incrementing a counter
type IncrementStatOutput struct {
	// NewValue is the counter value after the increment
	NewValue int64
}

// GetStatsInput contains parameters for retrieving a user's counters
type GetStatsInput struct {
	// UserID is the Discord user ID the counters belong to
	UserID string
}
