package events

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/mandatum-dev/mandatum-go/pkg/discord"
	"github.com/mandatum-dev/mandatum-go/pkg/logger"
)

// RegisterMemberEvents registers member event handlers
func RegisterMemberEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(onGuildMemberAdd)
	client.Session.AddHandler(onGuildMemberRemove)
}

func onGuildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	if m.User == nil {
		return
	}
	if err := syncer.Bump(m.GuildID, m.User.Bot, 1); err != nil {
		logger.Warn(fmt.Sprintf("Stat bump failed for guild %s: %v", m.GuildID, err), "Member")
	}
}

func onGuildMemberRemove(s *discordgo.Session, m *discordgo.GuildMemberRemove) {
	if m.User == nil {
		return
	}
	if err := syncer.Bump(m.GuildID, m.User.Bot, -1); err != nil {
		logger.Warn(fmt.Sprintf("Stat bump failed for guild %s: %v", m.GuildID, err), "Member")
	}
}
