package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xxreen/MAID-BOT-24H/internal/common/clock"
	"github.com/xxreen/MAID-BOT-24H/internal/llm"
	"github.com/xxreen/MAID-BOT-24H/internal/models"
	"github.com/xxreen/MAID-BOT-24H/internal/personas"
	conversationRepo "github.com/xxreen/MAID-BOT-24H/internal/repositories/conversation"
	statsRepo "github.com/xxreen/MAID-BOT-24H/internal/repositories/memberstats"
	"github.com/xxreen/MAID-BOT-24H/internal/services/messaging"
)

const (
	defaultCooldown     = 5 * time.Second
	defaultHistoryLimit = 10
)

// service implements the Service interface. Conversation records are
// updated with a get-modify-save sequence against Redis; mu serializes
// those sequences so two events from the same user cannot both pass the
// cooldown gate or overwrite each other's appended turn. Generation
// calls happen outside the lock.
type service struct {
	config    *Config
	repo      conversationRepo.Repository
	stats     statsRepo.Repository
	llmClient llm.Client
	messaging messaging.Service
	clock     clock.Clock
	logger    zerolog.Logger

	mu sync.Mutex
}

// NewService creates a new chat service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.ConversationRepo == nil {
		return nil, ErrNilRepo
	}

	if cfg.StatsRepo == nil {
		return nil, ErrNilStatsRepo
	}

	if cfg.LLMClient == nil {
		return nil, ErrNilLLMClient
	}

	if cfg.Messaging == nil {
		return nil, ErrNilMessaging
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.Cooldown <= 0 {
		cfg.Cooldown = defaultCooldown
	}

	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = defaultHistoryLimit
	}

	return &service{
		config:    cfg,
		repo:      cfg.ConversationRepo,
		stats:     cfg.StatsRepo,
		llmClient: cfg.LLMClient,
		messaging: cfg.Messaging,
		clock:     cfg.Clock,
		logger:    log.With().Str("component", "chat").Logger(),
	}, nil
}

// Respond records the user's turn, builds a persona prompt and produces
// a reply via the generation service. The cooldown gate runs before any
// state is touched; a rate-limited request mutates nothing.
func (s *service) Respond(ctx context.Context, input *RespondInput) (*RespondOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	s.mu.Lock()
	record, err := s.getOrCreateRecord(ctx, input.UserID)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}

	now := s.clock.Now()
	if !record.LastReplyAt.IsZero() && now.Sub(record.LastReplyAt) < s.config.Cooldown {
		s.mu.Unlock()
		return nil, ErrRateLimited
	}

	// The user's own utterance is committed before the generation call,
	// so a later failure still leaves it in context.
	record.Append(models.HistoryEntry{
		Speaker: input.DisplayName,
		Text:    message,
	}, s.config.HistoryLimit)
	record.LastReplyAt = now

	if err := s.repo.SaveRecord(ctx, &conversationRepo.SaveRecordInput{
		Record: record,
	}); err != nil {
		s.mu.Unlock()
		return nil, err
	}

	prompt := s.buildPrompt(record, input.UserID)
	s.mu.Unlock()

	if _, err := s.stats.IncrementStat(ctx, &statsRepo.IncrementStatInput{
		UserID: input.UserID,
		Stat:   statsRepo.StatQuestionsAsked,
	}); err != nil {
		// Counters are best-effort
		s.logger.Warn().Err(err).Str("user_id", input.UserID).Msg("failed to count question")
	}

	reply, err := s.llmClient.Generate(ctx, prompt)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("generation failed, using fallback")

		fallback, msgErr := s.messaging.GetFallbackMessage(ctx, &messaging.GetFallbackMessageInput{})
		if msgErr != nil {
			return nil, msgErr
		}

		return &RespondOutput{
			Reply:    fallback.Message,
			Fallback: true,
		}, nil
	}

	return &RespondOutput{
		Reply: strings.TrimSpace(reply),
	}, nil
}

// SetMode selects the persona mode for a user's future replies
func (s *service) SetMode(ctx context.Context, input *SetModeInput) (*SetModeOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	if !personas.Valid(input.Mode) {
		return nil, ErrInvalidMode
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.getOrCreateRecord(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	record.Mode = string(input.Mode)
	if err := s.repo.SaveRecord(ctx, &conversationRepo.SaveRecordInput{
		Record: record,
	}); err != nil {
		return nil, err
	}

	return &SetModeOutput{
		Mode: input.Mode,
	}, nil
}

// GetMode returns the persona mode currently selected for a user
func (s *service) GetMode(ctx context.Context, input *GetModeInput) (*GetModeOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	record, err := s.repo.GetRecord(ctx, &conversationRepo.GetRecordInput{
		UserID: input.UserID,
	})
	if err != nil {
		if errors.Is(err, conversationRepo.ErrRecordNotFound) {
			return &GetModeOutput{Mode: personas.ModeDefault}, nil
		}
		return nil, err
	}

	mode := personas.Mode(record.Mode)
	if !personas.Valid(mode) {
		mode = personas.ModeDefault
	}

	return &GetModeOutput{Mode: mode}, nil
}

// getOrCreateRecord fetches the user's record, creating an empty one
// lazily on first contact.
func (s *service) getOrCreateRecord(ctx context.Context, userID string) (*models.ConversationRecord, error) {
	record, err := s.repo.GetRecord(ctx, &conversationRepo.GetRecordInput{
		UserID: userID,
	})
	if err == nil {
		return record, nil
	}

	if !errors.Is(err, conversationRepo.ErrRecordNotFound) {
		return nil, err
	}

	return &models.ConversationRecord{
		UserID: userID,
		Mode:   string(personas.ModeDefault),
	}, nil
}

// buildPrompt concatenates the persona preamble, the recorded history
// and the final cue for the assistant's turn.
func (s *service) buildPrompt(record *models.ConversationRecord, userID string) string {
	var b strings.Builder

	if s.config.OwnerID != "" && userID == s.config.OwnerID {
		b.WriteString(personas.OwnerPreamble)
	} else {
		b.WriteString(personas.Preamble(personas.Mode(record.Mode)))
	}

	b.WriteString("\n\nConversation so far:\n")
	for _, entry := range record.History {
		b.WriteString(entry.Speaker)
		b.WriteString(": ")
		b.WriteString(entry.Text)
		b.WriteString("\n")
	}
	b.WriteString("Maid:")

	return b.String()
}
