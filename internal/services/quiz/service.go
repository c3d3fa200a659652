package quiz

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xxreen/MAID-BOT-24H/internal/catalog"
	"github.com/xxreen/MAID-BOT-24H/internal/common/clock"
	"github.com/xxreen/MAID-BOT-24H/internal/common/uuid"
	"github.com/xxreen/MAID-BOT-24H/internal/models"
	"github.com/xxreen/MAID-BOT-24H/internal/notify"
	"github.com/xxreen/MAID-BOT-24H/internal/random"
	statsRepo "github.com/xxreen/MAID-BOT-24H/internal/repositories/memberstats"
	"github.com/xxreen/MAID-BOT-24H/internal/services/messaging"
)

const defaultAnswerCap = 10

// service implements the Service interface. The single active round
// lives behind mu; every read-modify-write of it happens under the
// lock, and all I/O (notifications, stat writes) happens after the
// lock is released.
type service struct {
	config    *Config
	catalog   *catalog.Catalog
	stats     statsRepo.Repository
	notifier  notify.Notifier
	messaging messaging.Service
	picker    random.Picker
	clock     clock.Clock
	uuid      uuid.UUID
	logger    zerolog.Logger

	mu    sync.Mutex
	round *models.QuizRound
}

// NewService creates a new quiz service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Catalog == nil {
		return nil, ErrNilCatalog
	}

	if cfg.StatsRepo == nil {
		return nil, ErrNilStatsRepo
	}

	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}

	if cfg.Messaging == nil {
		return nil, ErrNilMessaging
	}

	if cfg.Picker == nil {
		return nil, ErrNilPicker
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	if cfg.AnswerCap <= 0 {
		cfg.AnswerCap = defaultAnswerCap
	}

	return &service{
		config:    cfg,
		catalog:   cfg.Catalog,
		stats:     cfg.StatsRepo,
		notifier:  cfg.Notifier,
		messaging: cfg.Messaging,
		picker:    cfg.Picker,
		clock:     cfg.Clock,
		uuid:      cfg.UUIDGenerator,
		logger:    log.With().Str("component", "quiz").Logger(),
	}, nil
}

// Start begins a new round from the catalog bucket for the given genre
// and difficulty
func (s *service) Start(ctx context.Context, input *StartInput) (*StartOutput, error) {
	if input == nil || input.ChannelID == "" || input.AskerID == "" {
		return nil, errors.New("input, channel ID and asker ID cannot be empty")
	}

	if err := s.catalog.Validate(input.Genre, input.Difficulty); err != nil {
		return nil, ErrInvalidSelection
	}

	s.mu.Lock()
	if s.round != nil {
		s.mu.Unlock()
		return nil, ErrSessionBusy
	}

	question, err := s.catalog.Pick(input.Genre, input.Difficulty, s.picker)
	if err != nil {
		s.mu.Unlock()
		return nil, ErrInvalidSelection
	}

	round := &models.QuizRound{
		ID:            s.uuid.NewUUID(),
		Genre:         input.Genre,
		Difficulty:    input.Difficulty,
		Question:      question,
		ChannelID:     input.ChannelID,
		AskerID:       input.AskerID,
		AnsweredUsers: make(map[string]bool),
		StartedAt:     s.clock.Now(),
	}
	s.round = round
	s.mu.Unlock()

	startMsg, err := s.messaging.GetQuizStartMessage(ctx, &messaging.GetQuizStartMessageInput{
		AskerName: input.AskerName,
		Question:  question.Question,
	})
	if err != nil {
		return nil, err
	}

	if err := s.notifier.Send(ctx, input.ChannelID, startMsg.Message); err != nil {
		// Delivery failures never roll back the round
		s.logger.Error().Err(err).Str("channel_id", input.ChannelID).Msg("failed to broadcast question")
	}

	return &StartOutput{
		RoundID:  round.ID,
		Question: question.Question,
	}, nil
}

// SubmitAnswer records one user's answer in the active round. The
// membership check, insert and possible transition back to idle are a
// single critical section; two users racing on the same round can
// never both be recorded as the same attempt, and a racing Start sees
// either the live round or none.
func (s *service) SubmitAnswer(ctx context.Context, input *SubmitAnswerInput) (*SubmitAnswerOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	s.mu.Lock()
	round := s.round
	if round == nil {
		s.mu.Unlock()
		return nil, ErrNoActiveRound
	}

	if round.HasAnswered(input.UserID) {
		s.mu.Unlock()
		return nil, ErrAlreadyAnswered
	}

	correct := answersMatch(input.Text, round.Question.Answer)
	round.RecordAnswer(input.UserID)
	answerCount := len(round.AnsweredUsers)

	closed := answerCount >= s.config.AnswerCap
	if closed {
		s.round = nil
	}

	channelID := round.ChannelID
	canonical := round.Question.Answer
	s.mu.Unlock()

	result, err := s.messaging.GetQuizResultMessage(ctx, &messaging.GetQuizResultMessageInput{
		UserName:        input.UserName,
		Correct:         correct,
		CanonicalAnswer: canonical,
	})
	if err != nil {
		return nil, err
	}

	if err := s.notifier.Send(ctx, channelID, result.Announcement); err != nil {
		s.logger.Error().Err(err).Str("channel_id", channelID).Msg("failed to announce result")
	}

	if err := s.notifier.SendDirect(ctx, input.UserID, result.Acknowledgment); err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("failed to acknowledge answer")
	}

	if correct {
		if _, err := s.stats.IncrementStat(ctx, &statsRepo.IncrementStatInput{
			UserID: input.UserID,
			Stat:   statsRepo.StatQuizCorrect,
		}); err != nil {
			s.logger.Warn().Err(err).Str("user_id", input.UserID).Msg("failed to count correct answer")
		}
	}

	if closed {
		closeMsg, err := s.messaging.GetRoundClosedMessage(ctx, &messaging.GetRoundClosedMessageInput{
			CanonicalAnswer: canonical,
			AnswerCount:     answerCount,
		})
		if err != nil {
			return nil, err
		}

		if err := s.notifier.Send(ctx, channelID, closeMsg.Message); err != nil {
			s.logger.Error().Err(err).Str("channel_id", channelID).Msg("failed to announce round close")
		}
	}

	return &SubmitAnswerOutput{
		Correct:         correct,
		CanonicalAnswer: canonical,
		RoundClosed:     closed,
		AnswerCount:     answerCount,
	}, nil
}

// Hint returns the active round's hint
func (s *service) Hint(ctx context.Context, input *HintInput) (*HintOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.round == nil {
		return nil, ErrNoActiveRound
	}

	return &HintOutput{
		Hint: s.round.Question.Hint,
	}, nil
}

// ForceStop abandons the active round immediately, discarding its state
func (s *service) ForceStop(ctx context.Context, input *ForceStopInput) (*ForceStopOutput, error) {
	s.mu.Lock()
	round := s.round
	if round == nil {
		s.mu.Unlock()
		return nil, ErrNoActiveRound
	}
	s.round = nil
	s.mu.Unlock()

	closeMsg, err := s.messaging.GetRoundClosedMessage(ctx, &messaging.GetRoundClosedMessageInput{
		CanonicalAnswer: round.Question.Answer,
		AnswerCount:     len(round.AnsweredUsers),
		Forced:          true,
	})
	if err != nil {
		return nil, err
	}

	if err := s.notifier.Send(ctx, round.ChannelID, closeMsg.Message); err != nil {
		s.logger.Error().Err(err).Str("channel_id", round.ChannelID).Msg("failed to announce forced stop")
	}

	return &ForceStopOutput{
		CanonicalAnswer: round.Question.Answer,
	}, nil
}

// Status reports whether a round is active and whether the given user
// has already answered it
func (s *service) Status(ctx context.Context, input *StatusInput) (*StatusOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.round == nil {
		return &StatusOutput{}, nil
	}

	out := &StatusOutput{
		Active:      true,
		ChannelID:   s.round.ChannelID,
		AnswerCount: len(s.round.AnsweredUsers),
	}
	if input != nil && input.UserID != "" {
		out.UserAnswered = s.round.HasAnswered(input.UserID)
	}

	return out, nil
}

// answersMatch compares a submitted answer against the canonical one,
// ignoring surrounding whitespace and letter case
func answersMatch(submitted, canonical string) bool {
	return strings.EqualFold(strings.TrimSpace(submitted), strings.TrimSpace(canonical))
}
