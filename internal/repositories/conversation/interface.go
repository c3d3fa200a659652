package conversation

import (
	"context"

	"github.com/xxreen/MAID-BOT-24H/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/xxreen/MAID-BOT-24H/internal/repositories/conversation Repository

// Repository defines the interface for conversation record storage
type Repository interface {
	// GetRecord retrieves a user's conversation record
	GetRecord(ctx context.Context, input *GetRecordInput) (*models.ConversationRecord, error)

	// SaveRecord persists a user's conversation record
	SaveRecord(ctx context.Context, input *SaveRecordInput) error
}
