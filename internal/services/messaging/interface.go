package messaging

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/xxreen/MAID-BOT-24H/internal/services/messaging Service

// Service is the interface for the messaging service
type Service interface {
	// GetQuizStartMessage returns the broadcast for a freshly started round
	GetQuizStartMessage(ctx context.Context, input *GetQuizStartMessageInput) (*GetQuizStartMessageOutput, error)

	// GetQuizResultMessage returns the channel announcement for an answer
	GetQuizResultMessage(ctx context.Context, input *GetQuizResultMessageInput) (*GetQuizResultMessageOutput, error)

	// GetRoundClosedMessage returns the round-closing announcement
	GetRoundClosedMessage(ctx context.Context, input *GetRoundClosedMessageInput) (*GetRoundClosedMessageOutput, error)

	// GetCooldownMessage returns the "please wait" message for rate-limited users
	GetCooldownMessage(ctx context.Context, input *GetCooldownMessageInput) (*GetCooldownMessageOutput, error)

	// GetFallbackMessage returns the fixed reply used when generation fails
	GetFallbackMessage(ctx context.Context, input *GetFallbackMessageInput) (*GetFallbackMessageOutput, error)

	// GetFortuneMessage draws a lucky item for the day
	GetFortuneMessage(ctx context.Context, input *GetFortuneMessageInput) (*GetFortuneMessageOutput, error)
}
