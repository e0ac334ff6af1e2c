package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken   string
	DiscordGuildID string

	// Vision model configuration
	VisionAPIKey  string
	VisionBaseURL string
	VisionModel   string

	// Statistics providers
	BallDontLieAPIKey string
	LiveScoreAPIKey   string
	LiveScoreSecret   string

	// Ledger configuration
	LedgerFile string

	// Observability
	MetricsAddr string

	// Provider call timeout
	ProviderTimeout time.Duration

	// Environment
	Environment string // "development" or "production"
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		// Discord
		DiscordToken:   os.Getenv("DISCORD_TOKEN"),
		DiscordGuildID: os.Getenv("DISCORD_GUILD_ID"),

		// Vision model
		VisionAPIKey:  os.Getenv("VISION_API_KEY"),
		VisionBaseURL: os.Getenv("VISION_BASE_URL"),
		VisionModel:   os.Getenv("VISION_MODEL"),

		// Providers
		BallDontLieAPIKey: os.Getenv("BALLDONTLIE_API_KEY"),
		LiveScoreAPIKey:   os.Getenv("LIVESCORE_API_KEY"),
		LiveScoreSecret:   os.Getenv("LIVESCORE_SECRET"),

		// Ledger with default
		LedgerFile: "bets_database.json",

		// Observability
		MetricsAddr: os.Getenv("METRICS_ADDR"),

		// Provider settings with defaults
		ProviderTimeout: 10 * time.Second,

		// Environment
		Environment: os.Getenv("ENVIRONMENT"),
	}

	// Override defaults if environment variables are set
	if file := os.Getenv("LEDGER_FILE"); file != "" {
		config.LedgerFile = file
	}
	if timeout := os.Getenv("PROVIDER_TIMEOUT_SECONDS"); timeout != "" {
		if parsed, err := strconv.Atoi(timeout); err == nil && parsed > 0 {
			config.ProviderTimeout = time.Duration(parsed) * time.Second
		}
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
		if config.VisionAPIKey == "" {
			return nil, fmt.Errorf("VISION_API_KEY is required")
		}
	}

	return config, nil
}
