package models

import (
	"time"
)

// HistoryEntry is a single recorded utterance in a conversation
type HistoryEntry struct {
	// Speaker is the display name of whoever said it
	Speaker string

	// Text is what was said
	Text string
}

// ConversationRecord holds the short-term memory for one user
type ConversationRecord struct {
	// UserID is the Discord user ID the record belongs to
	UserID string

	// History contains the most recent utterances, oldest first
	History []HistoryEntry

	// LastReplyAt is when the user last received an accepted reply
	LastReplyAt time.Time

	// Mode is the persona mode selected for this user
	Mode string
}

// Append adds an entry to the history and evicts the oldest entries
// beyond max, keeping insertion order.
func (r *ConversationRecord) Append(entry HistoryEntry, max int) {
	r.History = append(r.History, entry)
	if max > 0 && len(r.History) > max {
		r.History = r.History[len(r.History)-max:]
	}
}
