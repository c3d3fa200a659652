package profile

import (
	statsRepo "github.com/xxreen/MAID-BOT-24H/internal/repositories/memberstats"
)

// Config holds configuration for the profile service
type Config struct {
	// OwnerID always carries the owner title
	OwnerID string

	// Repository dependencies
	StatsRepo statsRepo.Repository
}

// GetTitlesInput contains parameters for looking up titles
type GetTitlesInput struct {
	// UserID is the Discord user ID to look up
	UserID string
}

// GetTitlesOutput contains a user's earned titles
type GetTitlesOutput struct {
	// Titles lists the earned titles; contains "none" when empty
	Titles []string
}
