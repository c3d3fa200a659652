package dispatch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	notifyMocks "github.com/xxreen/MAID-BOT-24H/internal/notify/mocks"
	"github.com/xxreen/MAID-BOT-24H/internal/services/chat"
	chatMocks "github.com/xxreen/MAID-BOT-24H/internal/services/chat/mocks"
	"github.com/xxreen/MAID-BOT-24H/internal/services/messaging"
	messagingMocks "github.com/xxreen/MAID-BOT-24H/internal/services/messaging/mocks"
	"github.com/xxreen/MAID-BOT-24H/internal/services/profile"
	profileMocks "github.com/xxreen/MAID-BOT-24H/internal/services/profile/mocks"
	"github.com/xxreen/MAID-BOT-24H/internal/services/quiz"
	quizMocks "github.com/xxreen/MAID-BOT-24H/internal/services/quiz/mocks"
	"github.com/xxreen/MAID-BOT-24H/internal/services/shiritori"
	shiritoriMocks "github.com/xxreen/MAID-BOT-24H/internal/services/shiritori/mocks"
)

type DispatcherTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockChat      *chatMocks.MockService
	mockQuiz      *quizMocks.MockService
	mockShiritori *shiritoriMocks.MockService
	mockProfile   *profileMocks.MockService
	mockMessaging *messagingMocks.MockService
	mockNotifier  *notifyMocks.MockNotifier
	dispatcher    *Dispatcher
	ctx           context.Context
}

func (s *DispatcherTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockChat = chatMocks.NewMockService(s.mockCtrl)
	s.mockQuiz = quizMocks.NewMockService(s.mockCtrl)
	s.mockShiritori = shiritoriMocks.NewMockService(s.mockCtrl)
	s.mockProfile = profileMocks.NewMockService(s.mockCtrl)
	s.mockMessaging = messagingMocks.NewMockService(s.mockCtrl)
	s.mockNotifier = notifyMocks.NewMockNotifier(s.mockCtrl)

	d, err := New(&Config{
		AllowedChannelID: "allowed-channel-id",
		Chat:             s.mockChat,
		Quiz:             s.mockQuiz,
		Shiritori:        s.mockShiritori,
		Profile:          s.mockProfile,
		Messaging:        s.mockMessaging,
		Notifier:         s.mockNotifier,
	})
	s.Require().NoError(err)
	s.dispatcher = d

	s.ctx = context.Background()
}

func (s *DispatcherTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDispatcherTestSuite(t *testing.T) {
	suite.Run(t, new(DispatcherTestSuite))
}

// quizIdle makes the quiz report no active round
func (s *DispatcherTestSuite) quizIdle() {
	s.mockQuiz.EXPECT().
		Status(gomock.Any(), gomock.Any()).
		Return(&quiz.StatusOutput{}, nil)
}

// shiritoriIdle makes the shiritori game report inactive
func (s *DispatcherTestSuite) shiritoriIdle() {
	s.mockShiritori.EXPECT().
		Status(gomock.Any(), gomock.Any()).
		Return(&shiritori.StatusOutput{}, nil)
}

func (s *DispatcherTestSuite) TestIgnoresEmptyText() {
	s.dispatcher.OnMessage(s.ctx, &Event{
		SenderID:  "test-user-id",
		Text:      "   ",
		ChannelID: "allowed-channel-id",
	})
}

func (s *DispatcherTestSuite) TestIgnoresOtherChannels() {
	s.dispatcher.OnMessage(s.ctx, &Event{
		SenderID:  "test-user-id",
		Text:      "hello",
		ChannelID: "some-other-channel-id",
	})
}

func (s *DispatcherTestSuite) TestQuizClaimsAnswer() {
	s.mockQuiz.EXPECT().
		Status(gomock.Any(), &quiz.StatusInput{UserID: "test-user-id"}).
		Return(&quiz.StatusOutput{
			Active:    true,
			ChannelID: "allowed-channel-id",
		}, nil)

	s.mockQuiz.EXPECT().
		SubmitAnswer(gomock.Any(), &quiz.SubmitAnswerInput{
			UserID:   "test-user-id",
			UserName: "Alice",
			Text:     "Tokyo",
		}).
		Return(&quiz.SubmitAnswerOutput{Correct: true}, nil)

	s.dispatcher.OnMessage(s.ctx, &Event{
		SenderID:   "test-user-id",
		SenderName: "Alice",
		Text:       "  Tokyo  ",
		ChannelID:  "allowed-channel-id",
	})
}

func (s *DispatcherTestSuite) TestQuizSkipsAnsweredUser() {
	s.mockQuiz.EXPECT().
		Status(gomock.Any(), gomock.Any()).
		Return(&quiz.StatusOutput{
			Active:       true,
			ChannelID:    "allowed-channel-id",
			UserAnswered: true,
		}, nil)
	s.shiritoriIdle()

	s.mockChat.EXPECT().
		Respond(gomock.Any(), gomock.Any()).
		Return(&chat.RespondOutput{Reply: "as I said already"}, nil)
	s.mockNotifier.EXPECT().
		Send(gomock.Any(), "allowed-channel-id", "as I said already").
		Return(nil)

	s.dispatcher.OnMessage(s.ctx, &Event{
		SenderID:   "test-user-id",
		SenderName: "Alice",
		Text:       "Tokyo again",
		ChannelID:  "allowed-channel-id",
	})
}

func (s *DispatcherTestSuite) TestDirectMessageAlwaysConverses() {
	// No quiz or shiritori status checks expected for DMs
	s.mockChat.EXPECT().
		Respond(gomock.Any(), &chat.RespondInput{
			UserID:      "test-user-id",
			DisplayName: "Alice",
			Message:     "hello",
		}).
		Return(&chat.RespondOutput{Reply: "good day"}, nil)
	s.mockNotifier.EXPECT().
		Send(gomock.Any(), "dm-channel-id", "good day").
		Return(nil)

	s.dispatcher.OnMessage(s.ctx, &Event{
		SenderID:        "test-user-id",
		SenderName:      "Alice",
		Text:            "hello",
		ChannelID:       "dm-channel-id",
		IsDirectMessage: true,
	})
}

func (s *DispatcherTestSuite) TestShiritoriClaimsTurn() {
	s.quizIdle()
	s.mockShiritori.EXPECT().
		Status(gomock.Any(), gomock.Any()).
		Return(&shiritori.StatusOutput{
			Active:     true,
			ChannelID:  "allowed-channel-id",
			TurnUserID: "test-user-id",
		}, nil)

	s.mockShiritori.EXPECT().
		Play(gomock.Any(), &shiritori.PlayInput{
			UserID: "test-user-id",
			Word:   "りんご",
		}).
		Return(&shiritori.PlayOutput{
			Outcome: shiritori.OutcomeContinue,
			BotWord: "ごりら",
		}, nil)

	s.mockNotifier.EXPECT().
		Send(gomock.Any(), "allowed-channel-id", "ごりら! Your turn.").
		Return(nil)

	s.dispatcher.OnMessage(s.ctx, &Event{
		SenderID:   "test-user-id",
		SenderName: "Alice",
		Text:       "りんご",
		ChannelID:  "allowed-channel-id",
	})
}

func (s *DispatcherTestSuite) TestShiritoriIgnoresOffTurnUser() {
	s.quizIdle()
	s.mockShiritori.EXPECT().
		Status(gomock.Any(), gomock.Any()).
		Return(&shiritori.StatusOutput{
			Active:     true,
			ChannelID:  "allowed-channel-id",
			TurnUserID: "other-user-id",
		}, nil)

	s.mockChat.EXPECT().
		Respond(gomock.Any(), gomock.Any()).
		Return(&chat.RespondOutput{Reply: "patience"}, nil)
	s.mockNotifier.EXPECT().
		Send(gomock.Any(), "allowed-channel-id", "patience").
		Return(nil)

	s.dispatcher.OnMessage(s.ctx, &Event{
		SenderID:   "test-user-id",
		SenderName: "Alice",
		Text:       "りんご",
		ChannelID:  "allowed-channel-id",
	})
}

func (s *DispatcherTestSuite) TestShiritoriPlayerLoses() {
	s.quizIdle()
	s.mockShiritori.EXPECT().
		Status(gomock.Any(), gomock.Any()).
		Return(&shiritori.StatusOutput{
			Active:     true,
			ChannelID:  "allowed-channel-id",
			TurnUserID: "test-user-id",
		}, nil)

	s.mockShiritori.EXPECT().
		Play(gomock.Any(), gomock.Any()).
		Return(&shiritori.PlayOutput{Outcome: shiritori.OutcomePlayerLost}, nil)

	s.mockNotifier.EXPECT().
		Send(gomock.Any(), "allowed-channel-id", shiritoriPlayerLostReply).
		Return(nil)

	s.dispatcher.OnMessage(s.ctx, &Event{
		SenderID:  "test-user-id",
		Text:      "みかん",
		ChannelID: "allowed-channel-id",
	})
}

func (s *DispatcherTestSuite) TestConversationRateLimited() {
	s.quizIdle()
	s.shiritoriIdle()

	s.mockChat.EXPECT().
		Respond(gomock.Any(), gomock.Any()).
		Return(nil, chat.ErrRateLimited)

	s.mockMessaging.EXPECT().
		GetCooldownMessage(gomock.Any(), &messaging.GetCooldownMessageInput{UserName: "Alice"}).
		Return(&messaging.GetCooldownMessageOutput{Message: "slow down, Alice"}, nil)

	s.mockNotifier.EXPECT().
		Send(gomock.Any(), "allowed-channel-id", "slow down, Alice").
		Return(nil)

	s.dispatcher.OnMessage(s.ctx, &Event{
		SenderID:   "test-user-id",
		SenderName: "Alice",
		Text:       "another question",
		ChannelID:  "allowed-channel-id",
	})
}

func (s *DispatcherTestSuite) TestAskRequest() {
	s.mockChat.EXPECT().
		Respond(gomock.Any(), &chat.RespondInput{
			UserID:      "test-user-id",
			DisplayName: "Alice",
			Message:     "what day is it",
		}).
		Return(&chat.RespondOutput{Reply: "check a calendar"}, nil)

	reply := s.dispatcher.OnAskRequest(s.ctx, &AskRequest{
		UserID:   "test-user-id",
		UserName: "Alice",
		Text:     "what day is it",
	})
	s.Equal("check a calendar", reply)
}

func (s *DispatcherTestSuite) TestAskRequestRateLimited() {
	s.mockChat.EXPECT().
		Respond(gomock.Any(), gomock.Any()).
		Return(nil, chat.ErrRateLimited)

	s.mockMessaging.EXPECT().
		GetCooldownMessage(gomock.Any(), gomock.Any()).
		Return(&messaging.GetCooldownMessageOutput{Message: "slow down, Alice"}, nil)

	reply := s.dispatcher.OnAskRequest(s.ctx, &AskRequest{
		UserID:   "test-user-id",
		UserName: "Alice",
		Text:     "again",
	})
	s.Equal("slow down, Alice", reply)
}

func (s *DispatcherTestSuite) TestAnswerRequestCorrect() {
	s.mockQuiz.EXPECT().
		SubmitAnswer(gomock.Any(), &quiz.SubmitAnswerInput{
			UserID:   "test-user-id",
			UserName: "Alice",
			Text:     "Tokyo",
		}).
		Return(&quiz.SubmitAnswerOutput{Correct: true}, nil)

	reply := s.dispatcher.OnAnswerRequest(s.ctx, &AnswerRequest{
		UserID:   "test-user-id",
		UserName: "Alice",
		Text:     "Tokyo",
	})
	s.Contains(reply, "Correct")
}

func (s *DispatcherTestSuite) TestAnswerRequestAlreadyAnswered() {
	s.mockQuiz.EXPECT().
		SubmitAnswer(gomock.Any(), gomock.Any()).
		Return(nil, quiz.ErrAlreadyAnswered)

	reply := s.dispatcher.OnAnswerRequest(s.ctx, &AnswerRequest{
		UserID:   "test-user-id",
		UserName: "Alice",
		Text:     "Tokyo",
	})
	s.Equal(quiz.ErrAlreadyAnswered.Error(), reply)
}

func (s *DispatcherTestSuite) TestQuizStartRequestBusy() {
	s.mockQuiz.EXPECT().
		Start(gomock.Any(), gomock.Any()).
		Return(nil, quiz.ErrSessionBusy)

	reply := s.dispatcher.OnQuizStartRequest(s.ctx, &QuizStartRequest{
		Genre:      "anime",
		Difficulty: "easy",
		ChannelID:  "allowed-channel-id",
		UserID:     "test-user-id",
	})
	s.Equal(quiz.ErrSessionBusy.Error(), reply)
}

func (s *DispatcherTestSuite) TestModeChangeRequest() {
	s.mockChat.EXPECT().
		SetMode(gomock.Any(), &chat.SetModeInput{
			UserID: "test-user-id",
			Mode:   "taunting",
		}).
		Return(&chat.SetModeOutput{Mode: "taunting"}, nil)

	reply := s.dispatcher.OnModeChangeRequest(s.ctx, &ModeChangeRequest{
		UserID: "test-user-id",
		Mode:   "taunting",
	})
	s.Contains(reply, "taunting")
}

func (s *DispatcherTestSuite) TestModeChangeRequestInvalid() {
	s.mockChat.EXPECT().
		SetMode(gomock.Any(), gomock.Any()).
		Return(nil, chat.ErrInvalidMode)

	reply := s.dispatcher.OnModeChangeRequest(s.ctx, &ModeChangeRequest{
		UserID: "test-user-id",
		Mode:   "sleepy",
	})
	s.Equal(chat.ErrInvalidMode.Error(), reply)
}

func (s *DispatcherTestSuite) TestHintRequest() {
	s.mockQuiz.EXPECT().
		Hint(gomock.Any(), gomock.Any()).
		Return(&quiz.HintOutput{Hint: "it is the capital"}, nil)

	reply := s.dispatcher.OnHintRequest(s.ctx)
	s.Contains(reply, "it is the capital")
}

func (s *DispatcherTestSuite) TestHintRequestNoRound() {
	s.mockQuiz.EXPECT().
		Hint(gomock.Any(), gomock.Any()).
		Return(nil, quiz.ErrNoActiveRound)

	reply := s.dispatcher.OnHintRequest(s.ctx)
	s.Equal(quiz.ErrNoActiveRound.Error(), reply)
}

func (s *DispatcherTestSuite) TestQuizStopRequest() {
	s.mockQuiz.EXPECT().
		ForceStop(gomock.Any(), &quiz.ForceStopInput{RequestedBy: "test-user-id"}).
		Return(&quiz.ForceStopOutput{CanonicalAnswer: "Tokyo"}, nil)

	reply := s.dispatcher.OnQuizStopRequest(s.ctx, "test-user-id")
	s.Contains(reply, "Tokyo")
}

func (s *DispatcherTestSuite) TestTitleRequest() {
	s.mockProfile.EXPECT().
		GetTitles(gomock.Any(), &profile.GetTitlesInput{UserID: "test-user-id"}).
		Return(&profile.GetTitlesOutput{Titles: []string{"Anime Scholar", "Shiritori Master"}}, nil)

	reply := s.dispatcher.OnTitleRequest(s.ctx, "test-user-id")
	s.Contains(reply, "Anime Scholar, Shiritori Master")
}

func (s *DispatcherTestSuite) TestFortuneRequest() {
	s.mockMessaging.EXPECT().
		GetFortuneMessage(gomock.Any(), &messaging.GetFortuneMessageInput{UserName: "Alice"}).
		Return(&messaging.GetFortuneMessageOutput{
			Item:    "a red umbrella",
			Message: "Today's lucky item for Alice: a red umbrella",
		}, nil)

	reply := s.dispatcher.OnFortuneRequest(s.ctx, "Alice")
	s.Contains(reply, "a red umbrella")
}

func (s *DispatcherTestSuite) TestShiritoriStartRequest() {
	s.mockShiritori.EXPECT().
		Start(gomock.Any(), &shiritori.StartInput{
			ChannelID: "allowed-channel-id",
			UserID:    "test-user-id",
		}).
		Return(&shiritori.StartOutput{}, nil)

	reply := s.dispatcher.OnShiritoriStartRequest(s.ctx, "allowed-channel-id", "test-user-id")
	s.Equal(shiritoriStartReply, reply)
}

func (s *DispatcherTestSuite) TestShiritoriStartRequestBusy() {
	s.mockShiritori.EXPECT().
		Start(gomock.Any(), gomock.Any()).
		Return(nil, shiritori.ErrGameInProgress)

	reply := s.dispatcher.OnShiritoriStartRequest(s.ctx, "allowed-channel-id", "test-user-id")
	s.Equal(shiritori.ErrGameInProgress.Error(), reply)
}

func (s *DispatcherTestSuite) TestShiritoriStopRequest() {
	s.mockShiritori.EXPECT().
		Stop(gomock.Any(), gomock.Any()).
		Return(&shiritori.StopOutput{}, nil)

	reply := s.dispatcher.OnShiritoriStopRequest(s.ctx)
	s.Equal(shiritoriStopReply, reply)
}
