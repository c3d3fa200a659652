package quiz

import (
	"github.com/xxreen/MAID-BOT-24H/internal/catalog"
	"github.com/xxreen/MAID-BOT-24H/internal/common/clock"
	"github.com/xxreen/MAID-BOT-24H/internal/common/uuid"
	"github.com/xxreen/MAID-BOT-24H/internal/notify"
	"github.com/xxreen/MAID-BOT-24H/internal/random"
	statsRepo "github.com/xxreen/MAID-BOT-24H/internal/repositories/memberstats"
	"github.com/xxreen/MAID-BOT-24H/internal/services/messaging"
)

// Config holds configuration for the quiz service
type Config struct {
	// AnswerCap closes the round after this many distinct users answer
	AnswerCap int

	// Catalog is the read-only question bank
	Catalog *catalog.Catalog

	// Repository dependencies
	StatsRepo statsRepo.Repository

	// Service dependencies
	Notifier      notify.Notifier
	Messaging     messaging.Service
	Picker        random.Picker
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// StartInput contains parameters for starting a round
type StartInput struct {
	// Genre selects the catalog genre
	Genre string

	// Difficulty selects the catalog difficulty
	Difficulty string

	// ChannelID is where the question is broadcast and results go
	ChannelID string

	// AskerID is the user starting the round
	AskerID string

	// AskerName is the asker's display name
	AskerName string
}

// StartOutput contains the result of starting a round
type StartOutput struct {
	// RoundID is the unique identifier of the new round
	RoundID string

	// Question is the prompt text broadcast to the channel
	Question string
}

// SubmitAnswerInput contains parameters for answering the active round
type SubmitAnswerInput struct {
	// UserID is the answering user
	UserID string

	// UserName is the answering user's display name
	UserName string

	// Text is the submitted answer
	Text string
}

// SubmitAnswerOutput contains the result of an answer
type SubmitAnswerOutput struct {
	// Correct indicates the answer matched the canonical answer
	Correct bool

	// CanonicalAnswer is the stored correct answer
	CanonicalAnswer string

	// RoundClosed indicates this answer closed the round
	RoundClosed bool

	// AnswerCount is how many users have answered so far this round
	AnswerCount int
}

// HintInput contains parameters for requesting the hint
type HintInput struct{}

// HintOutput contains the active round's hint
type HintOutput struct {
	// Hint is the nudge attached to the active question
	Hint string
}

// ForceStopInput contains parameters for abandoning the round
type ForceStopInput struct {
	// RequestedBy is the user who stopped the round
	RequestedBy string
}

// ForceStopOutput contains the result of abandoning the round
type ForceStopOutput struct {
	// CanonicalAnswer is the abandoned round's answer
	CanonicalAnswer string
}

// StatusInput contains parameters for a status check
type StatusInput struct {
	// UserID, when set, is checked against the answered set
	UserID string
}

// StatusOutput reports the state of the active round
type StatusOutput struct {
	// Active indicates a round is live
	Active bool

	// ChannelID is the active round's origin channel, empty when idle
	ChannelID string

	// AnswerCount is how many users have answered so far
	AnswerCount int

	// UserAnswered indicates the given user already answered
	UserAnswered bool
}
