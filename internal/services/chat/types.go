package chat

import (
	"time"

	"github.com/xxreen/MAID-BOT-24H/internal/common/clock"
	"github.com/xxreen/MAID-BOT-24H/internal/llm"
	"github.com/xxreen/MAID-BOT-24H/internal/personas"
	conversationRepo "github.com/xxreen/MAID-BOT-24H/internal/repositories/conversation"
	statsRepo "github.com/xxreen/MAID-BOT-24H/internal/repositories/memberstats"
	"github.com/xxreen/MAID-BOT-24H/internal/services/messaging"
)

// Config holds configuration for the chat service
type Config struct {
	// Cooldown is the minimum interval between accepted turns per user
	Cooldown time.Duration

	// HistoryLimit caps the per-user history; oldest entries are evicted
	HistoryLimit int

	// OwnerID is the distinguished owner identity; the owner always
	// gets the deferential persona regardless of mode
	OwnerID string

	// Repository dependencies
	ConversationRepo conversationRepo.Repository
	StatsRepo        statsRepo.Repository

	// Service dependencies
	LLMClient llm.Client
	Messaging messaging.Service
	Clock     clock.Clock
}

// RespondInput contains parameters for a conversational turn
type RespondInput struct {
	// UserID is the Discord user ID of the sender
	UserID string

	// DisplayName is the sender's display name, recorded in history
	DisplayName string

	// Message is the free-text message from the user
	Message string
}

// RespondOutput contains the result of a conversational turn
type RespondOutput struct {
	// Reply is the text to deliver back to the user
	Reply string

	// Fallback indicates the generation service failed and Reply is
	// the fixed fallback string
	Fallback bool
}

// SetModeInput contains parameters for selecting a persona mode
type SetModeInput struct {
	// UserID is the Discord user ID the mode applies to
	UserID string

	// Mode is the persona mode key to select
	Mode personas.Mode
}

// SetModeOutput contains the result of selecting a persona mode
type SetModeOutput struct {
	// Mode is the mode now in effect
	Mode personas.Mode
}

// GetModeInput contains parameters for reading a user's persona mode
type GetModeInput struct {
	// UserID is the Discord user ID to look up
	UserID string
}

// GetModeOutput contains a user's persona mode
type GetModeOutput struct {
	// Mode is the mode in effect for the user
	Mode personas.Mode
}
