package profile

import (
	"context"
	"errors"

	statsRepo "github.com/xxreen/MAID-BOT-24H/internal/repositories/memberstats"
)

// Title thresholds, matching the achievement rules of the bot
const (
	// TitleOwner is carried by the owner unconditionally
	TitleOwner = "Genius"

	// TitleAnimeScholar requires this many correct quiz answers
	TitleAnimeScholar       = "Anime Scholar"
	animeScholarQuizCorrect = 10

	// TitleDemandingMaster requires this many questions asked
	TitleDemandingMaster     = "Demanding Master"
	demandingMasterQuestions = 100

	// TitleShiritoriMaster requires this many shiritori wins
	TitleShiritoriMaster = "Shiritori Master"
	shiritoriMasterWins  = 5

	// TitleNone is shown when no title has been earned
	TitleNone = "none"
)

// service implements the Service interface
type service struct {
	config *Config
	stats  statsRepo.Repository
}

// NewService creates a new profile service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.StatsRepo == nil {
		return nil, errors.New("member stats repository cannot be nil")
	}

	return &service{
		config: cfg,
		stats:  cfg.StatsRepo,
	}, nil
}

// GetTitles returns the titles a user has earned
func (s *service) GetTitles(ctx context.Context, input *GetTitlesInput) (*GetTitlesOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	stats, err := s.stats.GetStats(ctx, &statsRepo.GetStatsInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, err
	}

	var titles []string
	if s.config.OwnerID != "" && input.UserID == s.config.OwnerID {
		titles = append(titles, TitleOwner)
	}
	if stats.QuizCorrect >= animeScholarQuizCorrect {
		titles = append(titles, TitleAnimeScholar)
	}
	if stats.QuestionsAsked >= demandingMasterQuestions {
		titles = append(titles, TitleDemandingMaster)
	}
	if stats.ShiritoriWins >= shiritoriMasterWins {
		titles = append(titles, TitleShiritoriMaster)
	}

	if len(titles) == 0 {
		titles = []string{TitleNone}
	}

	return &GetTitlesOutput{
		Titles: titles,
	}, nil
}
