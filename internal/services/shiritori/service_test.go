package shiritori

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/xxreen/MAID-BOT-24H/internal/common/clock/mocks"
	randomMocks "github.com/xxreen/MAID-BOT-24H/internal/random/mocks"
	statsRepo "github.com/xxreen/MAID-BOT-24H/internal/repositories/memberstats"
	statsMocks "github.com/xxreen/MAID-BOT-24H/internal/repositories/memberstats/mocks"
)

type ShiritoriServiceTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockStats  *statsMocks.MockRepository
	mockPicker *randomMocks.MockPicker
	mockClock  *clockMocks.MockClock
	svc        *service
	ctx        context.Context

	testTime time.Time
}

func (s *ShiritoriServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStats = statsMocks.NewMockRepository(s.mockCtrl)
	s.mockPicker = randomMocks.NewMockPicker(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)

	svc, err := NewService(&Config{
		StatsRepo: s.mockStats,
		Picker:    s.mockPicker,
		Clock:     s.mockClock,
	})
	s.Require().NoError(err)
	s.svc = svc

	s.ctx = context.Background()
	s.testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func (s *ShiritoriServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestShiritoriServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShiritoriServiceTestSuite))
}

func (s *ShiritoriServiceTestSuite) startGame() {
	s.mockClock.EXPECT().Now().Return(s.testTime)
	_, err := s.svc.Start(s.ctx, &StartInput{
		ChannelID: "test-channel-id",
		UserID:    "player-id",
	})
	s.Require().NoError(err)
}

func (s *ShiritoriServiceTestSuite) TestStartWhileActive() {
	s.startGame()

	_, err := s.svc.Start(s.ctx, &StartInput{
		ChannelID: "test-channel-id",
		UserID:    "other-player",
	})
	s.Require().ErrorIs(err, ErrGameInProgress)
}

func (s *ShiritoriServiceTestSuite) TestPlayContinuesChain() {
	s.startGame()
	s.mockPicker.EXPECT().Intn(2).Return(0)

	// りんご ends in ご, bot picks ごりら
	out, err := s.svc.Play(s.ctx, &PlayInput{
		UserID: "player-id",
		Word:   "りんご",
	})
	s.Require().NoError(err)
	s.Equal(OutcomeContinue, out.Outcome)
	s.Equal("ごりら", out.BotWord)

	// Next player word must now chain from ごりら
	_, err = s.svc.Play(s.ctx, &PlayInput{
		UserID: "player-id",
		Word:   "すいか",
	})
	s.Require().ErrorIs(err, ErrChainBroken)
}

func (s *ShiritoriServiceTestSuite) TestPlayerLosesOnFinalRune() {
	s.startGame()

	out, err := s.svc.Play(s.ctx, &PlayInput{
		UserID: "player-id",
		Word:   "みかん",
	})
	s.Require().NoError(err)
	s.Equal(OutcomePlayerLost, out.Outcome)

	// Game is over
	_, err = s.svc.Play(s.ctx, &PlayInput{
		UserID: "player-id",
		Word:   "りんご",
	})
	s.Require().ErrorIs(err, ErrNoActiveGame)
}

func (s *ShiritoriServiceTestSuite) TestPlayerWinsWhenBotEndsOnFinalRune() {
	s.startGame()
	// Bot picks ごはん, which ends in ん
	s.mockPicker.EXPECT().Intn(2).Return(1)
	s.mockStats.EXPECT().
		IncrementStat(gomock.Any(), &statsRepo.IncrementStatInput{
			UserID: "player-id",
			Stat:   statsRepo.StatShiritoriWins,
		}).
		Return(&statsRepo.IncrementStatOutput{NewValue: 1}, nil)

	out, err := s.svc.Play(s.ctx, &PlayInput{
		UserID: "player-id",
		Word:   "りんご",
	})
	s.Require().NoError(err)
	s.Equal(OutcomePlayerWon, out.Outcome)
	s.Equal("ごはん", out.BotWord)
}

func (s *ShiritoriServiceTestSuite) TestPlayerWinsWhenBotHasNoWord() {
	s.startGame()
	s.mockStats.EXPECT().
		IncrementStat(gomock.Any(), gomock.Any()).
		Return(&statsRepo.IncrementStatOutput{NewValue: 1}, nil)

	// わに ends in に, which the bot has no word for
	out, err := s.svc.Play(s.ctx, &PlayInput{
		UserID: "player-id",
		Word:   "わに",
	})
	s.Require().NoError(err)
	s.Equal(OutcomePlayerWon, out.Outcome)
	s.Empty(out.BotWord)
}

func (s *ShiritoriServiceTestSuite) TestPlayValidation() {
	s.startGame()

	_, err := s.svc.Play(s.ctx, &PlayInput{
		UserID: "someone-else",
		Word:   "りんご",
	})
	s.Require().ErrorIs(err, ErrNotYourTurn)

	_, err = s.svc.Play(s.ctx, &PlayInput{
		UserID: "player-id",
		Word:   "り",
	})
	s.Require().ErrorIs(err, ErrInvalidWord)
}

func (s *ShiritoriServiceTestSuite) TestStop() {
	_, err := s.svc.Stop(s.ctx, &StopInput{})
	s.Require().ErrorIs(err, ErrNoActiveGame)

	s.startGame()

	_, err = s.svc.Stop(s.ctx, &StopInput{})
	s.Require().NoError(err)

	status, err := s.svc.Status(s.ctx, &StatusInput{})
	s.Require().NoError(err)
	s.False(status.Active)
}
