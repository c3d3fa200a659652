package messaging

import (
	"github.com/xxreen/MAID-BOT-24H/internal/random"
)

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// Picker selects among message variants
	Picker random.Picker
}

// GetQuizStartMessageInput contains parameters for the round broadcast
type GetQuizStartMessageInput struct {
	// AskerName is the display name of whoever started the round
	AskerName string

	// Question is the prompt text
	Question string
}

// GetQuizStartMessageOutput contains the round broadcast
type GetQuizStartMessageOutput struct {
	// Message is the generated message
	Message string
}

// GetQuizResultMessageInput contains parameters for an answer announcement
type GetQuizResultMessageInput struct {
	// UserName is the display name of the answering user
	UserName string

	// Correct indicates whether the answer matched
	Correct bool

	// CanonicalAnswer is shown when the answer was wrong
	CanonicalAnswer string
}

// GetQuizResultMessageOutput contains an answer announcement
type GetQuizResultMessageOutput struct {
	// Announcement goes to the round's channel
	Announcement string

	// Acknowledgment goes directly to the answering user
	Acknowledgment string
}

// GetRoundClosedMessageInput contains parameters for the closing announcement
type GetRoundClosedMessageInput struct {
	// CanonicalAnswer is revealed when the round closes
	CanonicalAnswer string

	// AnswerCount is how many users answered
	AnswerCount int

	// Forced indicates the round was stopped administratively
	Forced bool
}

// GetRoundClosedMessageOutput contains the closing announcement
type GetRoundClosedMessageOutput struct {
	// Message is the generated message
	Message string
}

// GetCooldownMessageInput contains parameters for the rate-limit message
type GetCooldownMessageInput struct {
	// UserName is the display name of the rate-limited user
	UserName string
}

// GetCooldownMessageOutput contains the rate-limit message
type GetCooldownMessageOutput struct {
	// Message is the generated message
	Message string
}

// GetFallbackMessageInput contains parameters for the generation fallback
type GetFallbackMessageInput struct{}

// GetFallbackMessageOutput contains the generation fallback reply
type GetFallbackMessageOutput struct {
	// Message is the fixed fallback reply
	Message string
}

// GetFortuneMessageInput contains parameters for the fortune draw
type GetFortuneMessageInput struct {
	// UserName is the display name of the asking user
	UserName string
}

// GetFortuneMessageOutput contains the fortune message
type GetFortuneMessageOutput struct {
	// Item is the lucky item drawn
	Item string

	// Message is the generated message
	Message string
}
