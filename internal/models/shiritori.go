package models

import (
	"time"
)

// ShiritoriGame represents a single active word-chain game
type ShiritoriGame struct {
	// ChannelID is the Discord channel the game is being played in
	ChannelID string

	// TurnUserID is the user whose word is expected next
	TurnUserID string

	// LastWord is the most recent accepted word, empty at the start
	LastWord string

	// StartedAt is when the game was started
	StartedAt time.Time
}
