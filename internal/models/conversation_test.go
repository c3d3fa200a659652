package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendKeepsOrder(t *testing.T) {
	r := &ConversationRecord{UserID: "test-user-id"}

	r.Append(HistoryEntry{Speaker: "alice", Text: "first"}, 10)
	r.Append(HistoryEntry{Speaker: "alice", Text: "second"}, 10)

	assert.Equal(t, []HistoryEntry{
		{Speaker: "alice", Text: "first"},
		{Speaker: "alice", Text: "second"},
	}, r.History)
}

func TestAppendEvictsOldest(t *testing.T) {
	r := &ConversationRecord{UserID: "test-user-id"}

	for i := 0; i < 15; i++ {
		r.Append(HistoryEntry{Speaker: "alice", Text: fmt.Sprintf("line %d", i)}, 10)
		assert.LessOrEqual(t, len(r.History), 10)
	}

	assert.Len(t, r.History, 10)
	assert.Equal(t, "line 5", r.History[0].Text)
	assert.Equal(t, "line 14", r.History[9].Text)
}

func TestAppendUnbounded(t *testing.T) {
	r := &ConversationRecord{UserID: "test-user-id"}

	for i := 0; i < 15; i++ {
		r.Append(HistoryEntry{Speaker: "alice", Text: "line"}, 0)
	}

	assert.Len(t, r.History, 15)
}

func TestQuizRoundRecordAnswer(t *testing.T) {
	r := &QuizRound{ID: "round-id"}

	assert.False(t, r.HasAnswered("test-user-id"))

	r.RecordAnswer("test-user-id")
	assert.True(t, r.HasAnswered("test-user-id"))
	assert.False(t, r.HasAnswered("other-user-id"))
}
