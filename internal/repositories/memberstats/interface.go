package memberstats

import (
	"context"

	"github.com/xxreen/MAID-BOT-24H/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/xxreen/MAID-BOT-24H/internal/repositories/memberstats Repository

// Repository defines the interface for per-user lifetime counters
type Repository interface {
	// IncrementStat adds delta to one of a user's counters
	IncrementStat(ctx context.Context, input *IncrementStatInput) (*IncrementStatOutput, error)

	// GetStats retrieves all counters for a user; zero values when
	// the user has never been counted
	GetStats(ctx context.Context, input *GetStatsInput) (*models.MemberStats, error)
}
