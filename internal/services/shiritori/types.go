package shiritori

import (
	"github.com/xxreen/MAID-BOT-24H/internal/common/clock"
	"github.com/xxreen/MAID-BOT-24H/internal/random"
	statsRepo "github.com/xxreen/MAID-BOT-24H/internal/repositories/memberstats"
)

// Outcome describes how a played turn ended
type Outcome string

const (
	// OutcomeContinue means the game goes on with the bot's word played
	OutcomeContinue Outcome = "continue"

	// OutcomePlayerWon means the bot could not continue the chain
	OutcomePlayerWon Outcome = "player_won"

	// OutcomePlayerLost means the player's word ended in ん
	OutcomePlayerLost Outcome = "player_lost"
)

// Config holds configuration for the shiritori service
type Config struct {
	// Repository dependencies
	StatsRepo statsRepo.Repository

	// Service dependencies
	Picker random.Picker
	Clock  clock.Clock
}

// StartInput contains parameters for starting a game
type StartInput struct {
	// ChannelID is where the game is played
	ChannelID string

	// UserID is the user taking the first turn
	UserID string
}

// StartOutput contains the result of starting a game
type StartOutput struct{}

// PlayInput contains parameters for one player turn
type PlayInput struct {
	// UserID is the user playing the word
	UserID string

	// Word is the submitted word
	Word string
}

// PlayOutput contains the result of a played turn
type PlayOutput struct {
	// Outcome describes how the turn ended
	Outcome Outcome

	// BotWord is the bot's follow-up word when the game continues
	BotWord string
}

// StopInput contains parameters for stopping the game
type StopInput struct{}

// StopOutput contains the result of stopping the game
type StopOutput struct{}

// StatusInput contains parameters for a status check
type StatusInput struct{}

// StatusOutput reports the state of the active game
type StatusOutput struct {
	// Active indicates a game is live
	Active bool

	// ChannelID is the active game's channel, empty when idle
	ChannelID string

	// TurnUserID is the user whose word is expected next
	TurnUserID string
}
