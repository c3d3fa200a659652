package chat

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/xxreen/MAID-BOT-24H/internal/services/chat Service

// Service defines the interface for the conversational engine
type Service interface {
	// Respond records the user's turn, builds a persona prompt and
	// produces a reply via the generation service
	Respond(ctx context.Context, input *RespondInput) (*RespondOutput, error)

	// SetMode selects the persona mode for a user's future replies
	SetMode(ctx context.Context, input *SetModeInput) (*SetModeOutput, error)

	// GetMode returns the persona mode currently selected for a user
	GetMode(ctx context.Context, input *GetModeInput) (*GetModeOutput, error)
}
