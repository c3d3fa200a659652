package shiritori

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xxreen/MAID-BOT-24H/internal/common/clock"
	"github.com/xxreen/MAID-BOT-24H/internal/models"
	"github.com/xxreen/MAID-BOT-24H/internal/random"
	statsRepo "github.com/xxreen/MAID-BOT-24H/internal/repositories/memberstats"
)

// losingRune ends the chain: a word finishing in ん loses
const losingRune = 'ん'

// vocabulary is the bot's word list, keyed by the rune a word must
// start with. When no entry matches the bot forfeits the game.
var vocabulary = map[rune][]string{
	'り': {"りんご", "りす"},
	'ご': {"ごりら", "ごはん"},
	'す': {"すいか", "すずめ"},
	'か': {"からす", "かめ"},
	'し': {"しりとり", "しか"},
	'め': {"めだか", "めろん"},
	'ら': {"らくだ", "らっぱ"},
	'だ': {"だるま"},
	'ぱ': {"ぱせり"},
	'ま': {"まくら"},
	'く': {"くじら"},
	'た': {"たぬき"},
	'き': {"きつね"},
	'ね': {"ねこやなぎ"},
	'ぎ': {"ぎたあ"},
	'あ': {"あひる"},
	'る': {"るすばん"},
}

// service implements the Service interface. The single active game
// lives behind mu; turn validation and the word-chain update are one
// critical section.
type service struct {
	stats  statsRepo.Repository
	picker random.Picker
	clock  clock.Clock
	logger zerolog.Logger

	mu   sync.Mutex
	game *models.ShiritoriGame
}

// NewService creates a new shiritori service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.StatsRepo == nil {
		return nil, ErrNilStatsRepo
	}

	if cfg.Picker == nil {
		return nil, ErrNilPicker
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		stats:  cfg.StatsRepo,
		picker: cfg.Picker,
		clock:  cfg.Clock,
		logger: log.With().Str("component", "shiritori").Logger(),
	}, nil
}

// Start begins a new game with the given user taking the first turn
func (s *service) Start(ctx context.Context, input *StartInput) (*StartOutput, error) {
	if input == nil || input.ChannelID == "" || input.UserID == "" {
		return nil, errors.New("input, channel ID and user ID cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.game != nil {
		return nil, ErrGameInProgress
	}

	s.game = &models.ShiritoriGame{
		ChannelID:  input.ChannelID,
		TurnUserID: input.UserID,
		StartedAt:  s.clock.Now(),
	}

	return &StartOutput{}, nil
}

// Play submits the turn user's next word
func (s *service) Play(ctx context.Context, input *PlayInput) (*PlayOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	word := []rune(strings.TrimSpace(input.Word))

	s.mu.Lock()
	game := s.game
	if game == nil {
		s.mu.Unlock()
		return nil, ErrNoActiveGame
	}

	if game.TurnUserID != input.UserID {
		s.mu.Unlock()
		return nil, ErrNotYourTurn
	}

	if len(word) < 2 {
		s.mu.Unlock()
		return nil, ErrInvalidWord
	}

	if game.LastWord != "" {
		last := []rune(game.LastWord)
		if word[0] != last[len(last)-1] {
			s.mu.Unlock()
			return nil, ErrChainBroken
		}
	}

	if word[len(word)-1] == losingRune {
		// The player ended on ん; game over
		s.game = nil
		s.mu.Unlock()
		return &PlayOutput{Outcome: OutcomePlayerLost}, nil
	}

	botWord, ok := s.pickBotWord(word[len(word)-1])
	if !ok || []rune(botWord)[len([]rune(botWord))-1] == losingRune {
		// The bot cannot continue, or its own word ends on ん
		s.game = nil
		s.mu.Unlock()

		s.recordWin(ctx, input.UserID)

		return &PlayOutput{
			Outcome: OutcomePlayerWon,
			BotWord: botWord,
		}, nil
	}

	game.LastWord = botWord
	s.mu.Unlock()

	return &PlayOutput{
		Outcome: OutcomeContinue,
		BotWord: botWord,
	}, nil
}

// Stop ends the active game without a winner
func (s *service) Stop(ctx context.Context, input *StopInput) (*StopOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.game == nil {
		return nil, ErrNoActiveGame
	}

	s.game = nil
	return &StopOutput{}, nil
}

// Status reports whether a game is active and whose turn it is
func (s *service) Status(ctx context.Context, input *StatusInput) (*StatusOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.game == nil {
		return &StatusOutput{}, nil
	}

	return &StatusOutput{
		Active:     true,
		ChannelID:  s.game.ChannelID,
		TurnUserID: s.game.TurnUserID,
	}, nil
}

// pickBotWord selects a word starting with the required rune
func (s *service) pickBotWord(start rune) (string, bool) {
	words := vocabulary[start]
	if len(words) == 0 {
		return "", false
	}
	return words[s.picker.Intn(len(words))], true
}

// recordWin counts a shiritori win, best-effort
func (s *service) recordWin(ctx context.Context, userID string) {
	if _, err := s.stats.IncrementStat(ctx, &statsRepo.IncrementStatInput{
		UserID: userID,
		Stat:   statsRepo.StatShiritoriWins,
	}); err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("failed to count shiritori win")
	}
}
