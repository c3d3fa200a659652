package quiz

// QuizError is a custom error type for quiz-related errors
type QuizError string

// Error implements the error interface
func (e QuizError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidSelection QuizError = "no questions for that genre and difficulty"
	ErrSessionBusy      QuizError = "a quiz round is already active"
	ErrAlreadyAnswered  QuizError = "you already answered this round"
	ErrNoActiveRound    QuizError = "no quiz round is active"
	ErrNilConfig        QuizError = "config cannot be nil"
	ErrNilCatalog       QuizError = "catalog cannot be nil"
	ErrNilStatsRepo     QuizError = "member stats repository cannot be nil"
	ErrNilNotifier      QuizError = "notifier cannot be nil"
	ErrNilMessaging     QuizError = "messaging service cannot be nil"
	ErrNilPicker        QuizError = "picker cannot be nil"
	ErrNilClock         QuizError = "clock cannot be nil"
	ErrNilUUIDGenerator QuizError = "UUID generator cannot be nil"
)
