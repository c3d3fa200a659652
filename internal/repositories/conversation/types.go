package conversation

import (
	"github.com/redis/go-redis/v9"

	"github.com/xxreen/MAID-BOT-24H/internal/models"
)

// Config holds configuration for the Redis conversation repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// GetRecordInput contains parameters for retrieving a conversation record
type GetRecordInput struct {
	// UserID is the Discord user ID the record belongs to
	UserID string
}

// SaveRecordInput contains parameters for saving a conversation record
type SaveRecordInput struct {
	// Record is the conversation record to persist
	Record *models.ConversationRecord
}
