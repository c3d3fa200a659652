package models

// MemberStats holds the lifetime counters tracked per user
type MemberStats struct {
	// UserID is the Discord user ID the stats belong to
	UserID string

	// QuestionsAsked is how many conversational turns the user has had
	QuestionsAsked int

	// QuizCorrect is how many quiz answers the user has gotten right
	QuizCorrect int

	// ShiritoriWins is how many shiritori games the user has won
	ShiritoriWins int
}
