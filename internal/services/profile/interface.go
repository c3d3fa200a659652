package profile

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/xxreen/MAID-BOT-24H/internal/services/profile Service

// Service defines the interface for member profiles and titles
type Service interface {
	// GetTitles returns the titles a user has earned
	GetTitles(ctx context.Context, input *GetTitlesInput) (*GetTitlesOutput, error)
}
