package shiritori

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/xxreen/MAID-BOT-24H/internal/services/shiritori Service

// Service defines the interface for the shiritori word-chain game.
// At most one game is live at any time, process-wide.
type Service interface {
	// Start begins a new game with the given user taking the first turn
	Start(ctx context.Context, input *StartInput) (*StartOutput, error)

	// Play submits the turn user's next word
	Play(ctx context.Context, input *PlayInput) (*PlayOutput, error)

	// Stop ends the active game without a winner
	Stop(ctx context.Context, input *StopInput) (*StopOutput, error)

	// Status reports whether a game is active and whose turn it is
	Status(ctx context.Context, input *StatusInput) (*StatusOutput, error)
}
