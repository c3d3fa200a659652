package chat

// ChatError is a custom error type for conversation-related errors
type ChatError string

// Error implements the error interface
func (e ChatError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrRateLimited  ChatError = "please wait before asking again"
	ErrInvalidMode  ChatError = "unknown persona mode"
	ErrEmptyMessage ChatError = "message is empty"
	ErrNilConfig    ChatError = "config cannot be nil"
	ErrNilRepo      ChatError = "conversation repository cannot be nil"
	ErrNilStatsRepo ChatError = "member stats repository cannot be nil"
	ErrNilLLMClient ChatError = "llm client cannot be nil"
	ErrNilMessaging ChatError = "messaging service cannot be nil"
	ErrNilClock     ChatError = "clock cannot be nil"
)
