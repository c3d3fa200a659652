// Package llm defines the boundary to the remote generative-language
// service. The core only ever sends a prompt and reads back text.
package llm

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_llm.go github.com/xxreen/MAID-BOT-24H/internal/llm Client

// Client generates a reply for a fully built prompt
type Client interface {
	// Generate sends the prompt and returns the generated text.
	// A single attempt; callers substitute a fallback on error.
	Generate(ctx context.Context, prompt string) (string, error)
}
