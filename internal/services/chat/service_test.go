package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/xxreen/MAID-BOT-24H/internal/common/clock/mocks"
	llmMocks "github.com/xxreen/MAID-BOT-24H/internal/llm/mocks"
	"github.com/xxreen/MAID-BOT-24H/internal/models"
	"github.com/xxreen/MAID-BOT-24H/internal/personas"
	"github.com/xxreen/MAID-BOT-24H/internal/random"
	conversationRepo "github.com/xxreen/MAID-BOT-24H/internal/repositories/conversation"
	convMocks "github.com/xxreen/MAID-BOT-24H/internal/repositories/conversation/mocks"
	statsRepo "github.com/xxreen/MAID-BOT-24H/internal/repositories/memberstats"
	statsMocks "github.com/xxreen/MAID-BOT-24H/internal/repositories/memberstats/mocks"
	"github.com/xxreen/MAID-BOT-24H/internal/services/messaging"
)

type ChatServiceTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockRepo  *convMocks.MockRepository
	mockStats *statsMocks.MockRepository
	mockLLM   *llmMocks.MockClient
	mockClock *clockMocks.MockClock
	svc       Service
	ctx       context.Context

	testTime   time.Time
	testUserID string
	ownerID    string
}

func (s *ChatServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = convMocks.NewMockRepository(s.mockCtrl)
	s.mockStats = statsMocks.NewMockRepository(s.mockCtrl)
	s.mockLLM = llmMocks.NewMockClient(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)

	msgSvc, err := messaging.NewService(&messaging.ServiceConfig{
		Picker: random.New(&random.Config{Seed: 1}),
	})
	s.Require().NoError(err)

	s.testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.testUserID = "test-user-id"
	s.ownerID = "owner-user-id"

	svc, err := NewService(&Config{
		Cooldown:         5 * time.Second,
		HistoryLimit:     10,
		OwnerID:          s.ownerID,
		ConversationRepo: s.mockRepo,
		StatsRepo:        s.mockStats,
		LLMClient:        s.mockLLM,
		Messaging:        msgSvc,
		Clock:            s.mockClock,
	})
	s.Require().NoError(err)
	s.svc = svc

	s.ctx = context.Background()
}

func (s *ChatServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestChatServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ChatServiceTestSuite))
}

func (s *ChatServiceTestSuite) expectStatsIncrement() {
	s.mockStats.EXPECT().
		IncrementStat(gomock.Any(), &statsRepo.IncrementStatInput{
			UserID: s.testUserID,
			Stat:   statsRepo.StatQuestionsAsked,
		}).
		Return(&statsRepo.IncrementStatOutput{NewValue: 1}, nil)
}

func (s *ChatServiceTestSuite) TestRespondFirstContact() {
	s.mockRepo.EXPECT().
		GetRecord(gomock.Any(), &conversationRepo.GetRecordInput{UserID: s.testUserID}).
		Return(nil, conversationRepo.ErrRecordNotFound)
	s.mockClock.EXPECT().Now().Return(s.testTime)

	var saved *models.ConversationRecord
	s.mockRepo.EXPECT().
		SaveRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *conversationRepo.SaveRecordInput) error {
			saved = input.Record
			return nil
		})
	s.expectStatsIncrement()
	s.mockLLM.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		Return("Welcome back.", nil)

	out, err := s.svc.Respond(s.ctx, &RespondInput{
		UserID:      s.testUserID,
		DisplayName: "Alice",
		Message:     "  hello there  ",
	})
	s.Require().NoError(err)
	s.Equal("Welcome back.", out.Reply)
	s.False(out.Fallback)

	s.Require().NotNil(saved)
	s.Require().Len(saved.History, 1)
	s.Equal("Alice", saved.History[0].Speaker)
	s.Equal("hello there", saved.History[0].Text)
	s.True(saved.LastReplyAt.Equal(s.testTime))
}

func (s *ChatServiceTestSuite) TestRespondRateLimitedLeavesStateUntouched() {
	record := &models.ConversationRecord{
		UserID:      s.testUserID,
		History:     []models.HistoryEntry{{Speaker: "Alice", Text: "earlier"}},
		LastReplyAt: s.testTime,
	}

	s.mockRepo.EXPECT().
		GetRecord(gomock.Any(), gomock.Any()).
		Return(record, nil)
	// 1s short of the cooldown window
	s.mockClock.EXPECT().Now().Return(s.testTime.Add(4 * time.Second))

	// No SaveRecord, no Generate: the controller fails the test on any
	// unexpected call.
	_, err := s.svc.Respond(s.ctx, &RespondInput{
		UserID:      s.testUserID,
		DisplayName: "Alice",
		Message:     "again",
	})
	s.Require().ErrorIs(err, ErrRateLimited)
	s.Len(record.History, 1)
}

func (s *ChatServiceTestSuite) TestRespondAtExactCooldownBoundary() {
	record := &models.ConversationRecord{
		UserID:      s.testUserID,
		LastReplyAt: s.testTime,
	}

	s.mockRepo.EXPECT().GetRecord(gomock.Any(), gomock.Any()).Return(record, nil)
	s.mockClock.EXPECT().Now().Return(s.testTime.Add(5 * time.Second))
	s.mockRepo.EXPECT().SaveRecord(gomock.Any(), gomock.Any()).Return(nil)
	s.expectStatsIncrement()
	s.mockLLM.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("fine", nil)

	out, err := s.svc.Respond(s.ctx, &RespondInput{
		UserID:      s.testUserID,
		DisplayName: "Alice",
		Message:     "again",
	})
	s.Require().NoError(err)
	s.Equal("fine", out.Reply)
}

func (s *ChatServiceTestSuite) TestRespondEvictsOldestBeyondLimit() {
	record := &models.ConversationRecord{
		UserID: s.testUserID,
	}
	for i := 0; i < 10; i++ {
		record.History = append(record.History, models.HistoryEntry{
			Speaker: "Alice",
			Text:    string(rune('a' + i)),
		})
	}

	s.mockRepo.EXPECT().GetRecord(gomock.Any(), gomock.Any()).Return(record, nil)
	s.mockClock.EXPECT().Now().Return(s.testTime)

	var saved *models.ConversationRecord
	s.mockRepo.EXPECT().
		SaveRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *conversationRepo.SaveRecordInput) error {
			saved = input.Record
			return nil
		})
	s.expectStatsIncrement()
	s.mockLLM.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("ok", nil)

	_, err := s.svc.Respond(s.ctx, &RespondInput{
		UserID:      s.testUserID,
		DisplayName: "Alice",
		Message:     "newest",
	})
	s.Require().NoError(err)

	s.Require().Len(saved.History, 10)
	s.Equal("b", saved.History[0].Text)
	s.Equal("newest", saved.History[9].Text)
}

func (s *ChatServiceTestSuite) TestRespondFallbackOnGenerationFailure() {
	s.mockRepo.EXPECT().
		GetRecord(gomock.Any(), gomock.Any()).
		Return(nil, conversationRepo.ErrRecordNotFound)
	s.mockClock.EXPECT().Now().Return(s.testTime)

	var saved *models.ConversationRecord
	s.mockRepo.EXPECT().
		SaveRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *conversationRepo.SaveRecordInput) error {
			saved = input.Record
			return nil
		})
	s.expectStatsIncrement()
	s.mockLLM.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		Return("", errors.New("service unavailable"))

	out, err := s.svc.Respond(s.ctx, &RespondInput{
		UserID:      s.testUserID,
		DisplayName: "Alice",
		Message:     "are you there",
	})
	s.Require().NoError(err)
	s.True(out.Fallback)
	s.Equal(messaging.FallbackReply, out.Reply)

	// The user's own utterance was committed before the call failed
	s.Require().Len(saved.History, 1)
	s.Equal("are you there", saved.History[0].Text)
}

func (s *ChatServiceTestSuite) TestRespondEmptyMessage() {
	_, err := s.svc.Respond(s.ctx, &RespondInput{
		UserID:      s.testUserID,
		DisplayName: "Alice",
		Message:     "   ",
	})
	s.Require().ErrorIs(err, ErrEmptyMessage)
}

func (s *ChatServiceTestSuite) TestOwnerAlwaysGetsOwnerPersona() {
	record := &models.ConversationRecord{
		UserID: s.ownerID,
		Mode:   string(personas.ModeTaunting),
	}

	s.mockRepo.EXPECT().GetRecord(gomock.Any(), gomock.Any()).Return(record, nil)
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.mockRepo.EXPECT().SaveRecord(gomock.Any(), gomock.Any()).Return(nil)
	s.mockStats.EXPECT().IncrementStat(gomock.Any(), gomock.Any()).Return(&statsRepo.IncrementStatOutput{}, nil)

	var prompt string
	s.mockLLM.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p string) (string, error) {
			prompt = p
			return "Of course, master.", nil
		})

	_, err := s.svc.Respond(s.ctx, &RespondInput{
		UserID:      s.ownerID,
		DisplayName: "Master",
		Message:     "tea, please",
	})
	s.Require().NoError(err)
	s.True(strings.HasPrefix(prompt, personas.OwnerPreamble))
	s.Contains(prompt, "Master: tea, please")
	s.True(strings.HasSuffix(prompt, "Maid:"))
}

func (s *ChatServiceTestSuite) TestSetModeRejectsUnknownKey() {
	_, err := s.svc.SetMode(s.ctx, &SetModeInput{
		UserID: s.testUserID,
		Mode:   "belligerent",
	})
	s.Require().ErrorIs(err, ErrInvalidMode)
}

func (s *ChatServiceTestSuite) TestSetModePersists() {
	s.mockRepo.EXPECT().
		GetRecord(gomock.Any(), gomock.Any()).
		Return(nil, conversationRepo.ErrRecordNotFound)

	var saved *models.ConversationRecord
	s.mockRepo.EXPECT().
		SaveRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *conversationRepo.SaveRecordInput) error {
			saved = input.Record
			return nil
		})

	out, err := s.svc.SetMode(s.ctx, &SetModeInput{
		UserID: s.testUserID,
		Mode:   personas.ModeReverent,
	})
	s.Require().NoError(err)
	s.Equal(personas.ModeReverent, out.Mode)
	s.Equal(string(personas.ModeReverent), saved.Mode)
}

func (s *ChatServiceTestSuite) TestGetModeDefaultsWhenUnknownUser() {
	s.mockRepo.EXPECT().
		GetRecord(gomock.Any(), gomock.Any()).
		Return(nil, conversationRepo.ErrRecordNotFound)

	out, err := s.svc.GetMode(s.ctx, &GetModeInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.Equal(personas.ModeDefault, out.Mode)
}

// TestConcurrentTurnsSameUserAcceptOnce runs concurrent turns from one
// user against a real record store: the record update is a critical
// section, so exactly one turn may pass the cooldown gate and the
// stored history keeps exactly that turn.
func (s *ChatServiceTestSuite) TestConcurrentTurnsSameUserAcceptOnce() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	repo, err := conversationRepo.NewRedis(&conversationRepo.Config{
		RedisClient: client,
	})
	s.Require().NoError(err)

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockStats.EXPECT().
		IncrementStat(gomock.Any(), gomock.Any()).
		Return(&statsRepo.IncrementStatOutput{}, nil).
		AnyTimes()
	s.mockLLM.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		Return("noted", nil).
		AnyTimes()

	msgSvc, err := messaging.NewService(&messaging.ServiceConfig{
		Picker: random.New(&random.Config{Seed: 1}),
	})
	s.Require().NoError(err)

	svc, err := NewService(&Config{
		Cooldown:         5 * time.Second,
		HistoryLimit:     10,
		ConversationRepo: repo,
		StatsRepo:        s.mockStats,
		LLMClient:        s.mockLLM,
		Messaging:        msgSvc,
		Clock:            s.mockClock,
	})
	s.Require().NoError(err)

	const racers = 8
	var wg sync.WaitGroup
	errs := make([]error, racers)

	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Respond(s.ctx, &RespondInput{
				UserID:      s.testUserID,
				DisplayName: "Alice",
				Message:     fmt.Sprintf("turn %d", i),
			})
		}(i)
	}
	wg.Wait()

	accepted := 0
	for _, err := range errs {
		if err == nil {
			accepted++
		} else {
			s.ErrorIs(err, ErrRateLimited)
		}
	}
	s.Equal(1, accepted)

	// The accepted turn is the only one stored; no lost update
	record, err := repo.GetRecord(s.ctx, &conversationRepo.GetRecordInput{
		UserID: s.testUserID,
	})
	s.Require().NoError(err)
	s.Len(record.History, 1)
	s.True(record.LastReplyAt.Equal(s.testTime))
}
