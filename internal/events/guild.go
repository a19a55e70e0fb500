package events

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/mandatum-dev/mandatum-go/pkg/database"
	"github.com/mandatum-dev/mandatum-go/pkg/discord"
	"github.com/mandatum-dev/mandatum-go/pkg/logger"
)

// RegisterGuildEvents registers guild event handlers
func RegisterGuildEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(onGuildCreate)
	client.Session.AddHandler(onGuildDelete)
}

// onGuildCreate fires when the bot joins a guild or a guild becomes
// available. A config is provisioned on first sight.
func onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	if _, err := database.EnsureGuildConfig(g.ID, g.Name); err != nil {
		logger.Warn(fmt.Sprintf("Could not provision config for guild %s: %v", g.ID, err), "Guild")
		return
	}

	if err := syncer.Reconcile(g.ID); err != nil {
		logger.Warn(fmt.Sprintf("Stat recount failed for guild %s: %v", g.ID, err), "Guild")
	}
}

func onGuildDelete(s *discordgo.Session, g *discordgo.GuildDelete) {
	if g.Unavailable {
		logger.Warn(fmt.Sprintf("Guild %s became unavailable", g.ID), "Guild")
		return
	}
	logger.Info(fmt.Sprintf("Removed from guild %s", g.ID), "Guild")
}
