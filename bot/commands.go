package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// registerCommands registers all slash commands with Discord
func (b *Bot) registerCommands() error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "start",
			Description: "Introduce the bot and how to use it",
		},
		{
			Name:        "help",
			Description: "Show what the bot can analyze",
		},
		{
			Name:        "stats",
			Description: "Show betting statistics per sport",
		},
		{
			Name:        "reset",
			Description: "Archive the current ledger and start fresh",
		},
	}

	for _, cmd := range commands {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd)
		if err != nil {
			return fmt.Errorf("cannot create command %s: %w", cmd.Name, err)
		}
	}
	return nil
}
