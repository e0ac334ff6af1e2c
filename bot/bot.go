package bot

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"betcheck/service"
)

// Config holds bot configuration
type Config struct {
	Token   string
	GuildID string
}

type Bot struct {
	config    Config
	session   *discordgo.Session
	extractor service.SlipExtractor
	resolver  service.ResolverService
	ledger    service.LedgerService
	stats     service.StatsService
}

func New(config Config, extractor service.SlipExtractor, resolver service.ResolverService, ledger service.LedgerService, stats service.StatsService) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages | discordgo.IntentMessageContent

	bot := &Bot{
		config:    config,
		session:   dg,
		extractor: extractor,
		resolver:  resolver,
		ledger:    ledger,
		stats:     stats,
	}

	// Register slash command handlers
	dg.AddHandler(bot.handleCommands)

	// Register the slip image handler
	dg.AddHandler(bot.handleMessage)

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// Register slash commands with Discord
	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	return bot, nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "start":
		b.respond(s, i, "👋 Ciao! Inviami lo screenshot di una schedina e verifico se hai vinto.\nUsa /help per i dettagli e /stats per le statistiche.")
	case "help":
		b.respond(s, i, helpText())
	case "stats":
		b.handleStatsCommand(s, i)
	case "reset":
		b.handleResetCommand(s, i)
	}
}

func helpText() string {
	return "📖 **Come funziona**\n\n" +
		"Invia lo screenshot di una schedina e il bot:\n" +
		"1. Legge sport, partita, tipo di scommessa e importi\n" +
		"2. Cerca il risultato reale (NBA e Calcio)\n" +
		"3. Ti dice se la scommessa è vinta, persa o ancora da verificare\n\n" +
		"Comandi: /stats per il riepilogo, /reset per azzerare il registro."
}

// respond replies to an interaction with a plain text message
func (b *Bot) respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
	if err != nil {
		log.Errorf("Error responding to interaction: %v", err)
	}
}

func (b *Bot) respondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("❌ %s", message),
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Errorf("Error sending error response: %v", err)
	}
}

func (b *Bot) handleStatsCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	summary, err := b.stats.Summary(context.Background())
	if err != nil {
		log.Errorf("Error building stats summary: %v", err)
		b.respondWithError(s, i, "Impossibile leggere le statistiche. Riprova.")
		return
	}
	b.respond(s, i, FormatSummary(summary))
}

func (b *Bot) handleResetCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	result, err := b.ledger.Reset(context.Background())
	if err != nil {
		log.Errorf("Error resetting ledger: %v", err)
		b.respondWithError(s, i, "Impossibile azzerare il registro. Riprova.")
		return
	}
	b.respond(s, i, FormatReset(result))
}
