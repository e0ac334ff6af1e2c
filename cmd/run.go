package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"betcheck/bot"
	"betcheck/config"
	"betcheck/events"
	"betcheck/metrics"
	"betcheck/models"
	"betcheck/providers/balldontlie"
	"betcheck/providers/livescore"
	"betcheck/repository"
	"betcheck/service"
	"betcheck/vision"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Println("Starting betcheck bot...")

	// Load configuration
	cfg := config.Get()

	// Initialize event bus and metrics
	log.Println("Initializing event bus...")
	eventBus := events.NewBus()
	botMetrics := metrics.NewBotMetrics()
	botMetrics.BindTo(eventBus)

	if cfg.MetricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(botMetrics.Registry(), promhttp.HandlerOpts{}))
			log.Printf("Serving metrics on %s", cfg.MetricsAddr)
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				log.Printf("Metrics server stopped: %v", err)
			}
		}()
	}

	// Initialize ledger store
	log.Println("Initializing ledger store...")
	store := repository.NewFileStore(cfg.LedgerFile)

	// Initialize provider gateways
	log.Println("Initializing provider gateways...")
	nbaGateway := balldontlie.NewGateway(balldontlie.NewClient(cfg.BallDontLieAPIKey))
	footballGateway := livescore.NewGateway(livescore.NewClient(cfg.LiveScoreAPIKey, cfg.LiveScoreSecret))
	gateways := map[models.SportFamily]service.ProviderGateway{
		models.FamilyBasketball: nbaGateway,
		models.FamilyFootball:   footballGateway,
	}

	// Initialize vision client
	visionClient := vision.NewClient(vision.Config{
		BaseURL: cfg.VisionBaseURL,
		Model:   cfg.VisionModel,
		APIKey:  cfg.VisionAPIKey,
	})

	// Initialize services
	log.Println("Initializing services...")
	extractionService := service.NewExtractionService(visionClient, eventBus)
	resolverService := service.NewResolverService(gateways, eventBus)
	ledgerService := service.NewLedgerService(store, eventBus)
	statsService := service.NewStatsService(ledgerService)
	log.Println("Services initialized successfully")

	// Initialize Discord bot
	log.Println("Initializing Discord bot...")
	discordBot, err := bot.New(bot.Config{
		Token:   cfg.DiscordToken,
		GuildID: cfg.DiscordGuildID,
	}, extractionService, resolverService, ledgerService, statsService)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Println("Discord bot initialized successfully")

	// Wait for context cancellation
	log.Printf("Bot is running in %s mode...", cfg.Environment)
	<-ctx.Done()

	// Cleanup resources
	log.Println("Shutting down bot...")
	if err := discordBot.Close(); err != nil {
		log.Printf("Error closing Discord connection: %v", err)
	}
	log.Println("Shutdown complete")
	return nil
}
