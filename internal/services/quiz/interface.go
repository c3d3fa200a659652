package quiz

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/xxreen/MAID-BOT-24H/internal/services/quiz Service

// Service defines the interface for the quiz session manager.
// At most one round is live at any time, process-wide.
type Service interface {
	// Start begins a new round from the catalog bucket for the given
	// genre and difficulty
	Start(ctx context.Context, input *StartInput) (*StartOutput, error)

	// SubmitAnswer records one user's answer in the active round
	SubmitAnswer(ctx context.Context, input *SubmitAnswerInput) (*SubmitAnswerOutput, error)

	// Hint returns the active round's hint
	Hint(ctx context.Context, input *HintInput) (*HintOutput, error)

	// ForceStop abandons the active round immediately
	ForceStop(ctx context.Context, input *ForceStopInput) (*ForceStopOutput, error)

	// Status reports whether a round is active and whether the given
	// user has already answered it
	Status(ctx context.Context, input *StatusInput) (*StatusOutput, error)
}
