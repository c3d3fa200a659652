package models

import (
	"time"
)

// QuizQuestion is one entry in the quiz catalog
type QuizQuestion struct {
	// Question is the prompt text shown to the channel
	Question string

	// Answer is the canonical correct answer
	Answer string

	// Hint is an optional nudge shown on request
	Hint string
}

// QuizRound represents a single active trivia round
type QuizRound struct {
	// ID is the unique identifier for this round
	ID string

	// Genre is the catalog genre the question was drawn from
	Genre string

	// Difficulty is the catalog difficulty the question was drawn from
	Difficulty string

	// Question is the question being asked
	Question QuizQuestion

	// ChannelID is the Discord channel the question was broadcast to
	ChannelID string

	// AskerID is the user who started the round
	AskerID string

	// AnsweredUsers contains the IDs of users who have already answered
	AnsweredUsers map[string]bool

	// StartedAt is when the round was started
	StartedAt time.Time
}

// HasAnswered reports whether the user has already submitted an answer
// in this round.
func (r *QuizRound) HasAnswered(userID string) bool {
	return r.AnsweredUsers[userID]
}

// RecordAnswer marks the user as having answered in this round.
func (r *QuizRound) RecordAnswer(userID string) {
	if r.AnsweredUsers == nil {
		r.AnsweredUsers = make(map[string]bool)
	}
	r.AnsweredUsers[userID] = true
}
