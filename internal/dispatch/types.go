package dispatch

import (
	"github.com/xxreen/MAID-BOT-24H/internal/notify"
	"github.com/xxreen/MAID-BOT-24H/internal/services/chat"
	"github.com/xxreen/MAID-BOT-24H/internal/services/messaging"
	"github.com/xxreen/MAID-BOT-24H/internal/services/profile"
	"github.com/xxreen/MAID-BOT-24H/internal/services/quiz"
	"github.com/xxreen/MAID-BOT-24H/internal/services/shiritori"
)

// Config holds configuration for the dispatcher
type Config struct {
	// AllowedChannelID restricts free-text handling to one channel;
	// empty means every channel is handled. Direct messages are always
	// handled regardless.
	AllowedChannelID string

	// Service dependencies
	Chat      chat.Service
	Quiz      quiz.Service
	Shiritori shiritori.Service
	Profile   profile.Service
	Messaging messaging.Service
	Notifier  notify.Notifier
}

// Event is one inbound free-text message
type Event struct {
	// SenderID is the Discord user ID of the author
	SenderID string

	// SenderName is the author's display name
	SenderName string

	// Text is the message content
	Text string

	// ChannelID is where the message was posted
	ChannelID string

	// IsDirectMessage indicates the message arrived in a DM channel
	IsDirectMessage bool
}

// AskRequest is one conversational turn arriving via the slash command
type AskRequest struct {
	// UserID is the asking user
	UserID string

	// UserName is the asking user's display name
	UserName string

	// Text is the question
	Text string
}

// AnswerRequest submits a quiz answer via the slash command
type AnswerRequest struct {
	// UserID is the answering user
	UserID string

	// UserName is the answering user's display name
	UserName string

	// Text is the submitted answer
	Text string
}

// QuizStartRequest asks for a new quiz round
type QuizStartRequest struct {
	// Genre selects the catalog genre
	Genre string

	// Difficulty selects the catalog difficulty
	Difficulty string

	// ChannelID is where the question is broadcast
	ChannelID string

	// UserID is the requesting user
	UserID string

	// UserName is the requesting user's display name
	UserName string
}

// ModeChangeRequest asks to change a user's persona mode
type ModeChangeRequest struct {
	// UserID is the user the mode applies to
	UserID string

	// Mode is the persona mode key
	Mode string
}
