package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xxreen/MAID-BOT-24H/internal/catalog"
	"github.com/xxreen/MAID-BOT-24H/internal/common/clock"
	"github.com/xxreen/MAID-BOT-24H/internal/common/uuid"
	"github.com/xxreen/MAID-BOT-24H/internal/config"
	"github.com/xxreen/MAID-BOT-24H/internal/dispatch"
	"github.com/xxreen/MAID-BOT-24H/internal/handlers/discord"
	"github.com/xxreen/MAID-BOT-24H/internal/keepalive"
	"github.com/xxreen/MAID-BOT-24H/internal/llm/gemini"
	notifyDiscord "github.com/xxreen/MAID-BOT-24H/internal/notify/discord"
	"github.com/xxreen/MAID-BOT-24H/internal/random"
	conversationRepo "github.com/xxreen/MAID-BOT-24H/internal/repositories/conversation"
	statsRepo "github.com/xxreen/MAID-BOT-24H/internal/repositories/memberstats"
	"github.com/xxreen/MAID-BOT-24H/internal/services/chat"
	"github.com/xxreen/MAID-BOT-24H/internal/services/messaging"
	"github.com/xxreen/MAID-BOT-24H/internal/services/profile"
	"github.com/xxreen/MAID-BOT-24H/internal/services/quiz"
	"github.com/xxreen/MAID-BOT-24H/internal/services/shiritori"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Redis holds conversation records and member stat counters
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}

	conversations, err := conversationRepo.NewRedis(&conversationRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create conversation repository")
	}

	stats, err := statsRepo.NewRedis(&statsRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create member stats repository")
	}

	llmClient, err := gemini.New(ctx, &gemini.Config{
		APIKey: cfg.GeminiAPIKey,
		Model:  cfg.GeminiModel,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create Gemini client")
	}

	// One session serves both the bot and outbound notifications
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create Discord session")
	}

	notifier, err := notifyDiscord.New(&notifyDiscord.Config{
		Session: session,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create notifier")
	}

	picker := random.New(&random.Config{})
	systemClock := &clock.DefaultClock{}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{
		Picker: picker,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create messaging service")
	}

	chatSvc, err := chat.NewService(&chat.Config{
		Cooldown:         cfg.Cooldown,
		HistoryLimit:     cfg.HistoryLimit,
		OwnerID:          cfg.OwnerID,
		ConversationRepo: conversations,
		StatsRepo:        stats,
		LLMClient:        llmClient,
		Messaging:        messagingSvc,
		Clock:            systemClock,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create chat service")
	}

	quizSvc, err := quiz.NewService(&quiz.Config{
		AnswerCap:     cfg.AnswerCap,
		Catalog:       catalog.New(),
		StatsRepo:     stats,
		Notifier:      notifier,
		Messaging:     messagingSvc,
		Picker:        picker,
		Clock:         systemClock,
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create quiz service")
	}

	shiritoriSvc, err := shiritori.NewService(&shiritori.Config{
		StatsRepo: stats,
		Picker:    picker,
		Clock:     systemClock,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create shiritori service")
	}

	profileSvc, err := profile.NewService(&profile.Config{
		OwnerID:   cfg.OwnerID,
		StatsRepo: stats,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create profile service")
	}

	dispatcher, err := dispatch.New(&dispatch.Config{
		AllowedChannelID: cfg.AllowedChannelID,
		Chat:             chatSvc,
		Quiz:             quizSvc,
		Shiritori:        shiritoriSvc,
		Profile:          profileSvc,
		Messaging:        messagingSvc,
		Notifier:         notifier,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create dispatcher")
	}

	bot, err := discord.New(&discord.Config{
		Session:       session,
		Token:         cfg.DiscordToken,
		ApplicationID: cfg.ApplicationID,
		GuildID:       cfg.GuildID,
		Dispatcher:    dispatcher,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create Discord bot")
	}

	go keepalive.New(cfg.KeepAliveAddr).Run()

	if err := bot.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start Discord bot")
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		log.Error().Err(err).Msg("error stopping bot")
	}

	log.Info().Msg("bot has been shut down")
}
