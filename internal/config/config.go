package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all process configuration, loaded from the environment
type Config struct {
	// Discord bot token
	DiscordToken string `envconfig:"DISCORD_TOKEN" required:"true"`

	// Application ID for the bot
	ApplicationID string `envconfig:"APPLICATION_ID"`

	// Optional guild ID for development (server-specific commands)
	GuildID string `envconfig:"GUILD_ID"`

	// Gemini API key for the generation service
	GeminiAPIKey string `envconfig:"GEMINI_API_KEY" required:"true"`

	// Gemini model used for replies
	GeminiModel string `envconfig:"GEMINI_MODEL" default:"gemini-2.0-flash"`

	// Redis connection
	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`

	// OwnerID is the distinguished owner user; always gets the gentle persona
	OwnerID string `envconfig:"OWNER_ID"`

	// AllowedChannelID restricts free-text handling to one channel when set
	AllowedChannelID string `envconfig:"ALLOWED_CHANNEL_ID"`

	// Cooldown between accepted conversational turns per user
	Cooldown time.Duration `envconfig:"COOLDOWN" default:"5s"`

	// HistoryLimit caps the per-user conversation history
	HistoryLimit int `envconfig:"HISTORY_LIMIT" default:"10"`

	// AnswerCap closes a quiz round after this many distinct answers
	AnswerCap int `envconfig:"ANSWER_CAP" default:"10"`

	// KeepAliveAddr is the listen address for the liveness endpoint
	KeepAliveAddr string `envconfig:"KEEP_ALIVE_ADDR" default:":8080"`
}

// Load reads configuration from the environment. A .env file is loaded
// first when present, matching local development setups.
func Load() (*Config, error) {
	// Missing .env is fine in production
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
