package moderation

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/mandatum-dev/mandatum-go/pkg/database"
	"github.com/mandatum-dev/mandatum-go/pkg/discord"
	"github.com/mandatum-dev/mandatum-go/pkg/logger"
	"github.com/mandatum-dev/mandatum-go/pkg/mqtt"
)

// Engine watches message content in the moderated guilds and warns on
// banned terms, at most once per channel per cooldown window.
type Engine struct {
	client *discord.ExtendedClient
	words  *Wordlist
	clock  *Clock
}

// NewEngine creates a moderation engine
func NewEngine(client *discord.ExtendedClient, words *Wordlist) *Engine {
	return &Engine{
		client: client,
		words:  words,
		clock:  NewClock(),
	}
}

// HandleMessage scans one inbound message. Registered as a MessageCreate
// handler alongside the command dispatcher.
func (e *Engine) HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	cfg := e.client.GetConfig()

	// Bots, DMs and unmoderated guilds are out of scope
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}
	if !cfg.IsModeratedGuild(m.GuildID) {
		return
	}

	// Channels under the exempt category are never scanned
	if cfg.ExemptCategoryID != "" {
		if channel, err := s.State.Channel(m.ChannelID); err == nil && channel.ParentID == cfg.ExemptCategoryID {
			return
		}
	}

	guildCfg, _, err := database.LoadGuildConfig(m.GuildID)
	if err != nil {
		logger.Warn(fmt.Sprintf("Could not read config for guild %s: %v", m.GuildID, err), "Moderation")
		return
	}

	// Moderation is subject to the same permission gate as commands
	if e.client.EvaluateMessage(m, nil, guildCfg) != discord.Allowed {
		return
	}

	term, matched := e.words.FirstMatch(m.Content)
	if !matched {
		return
	}

	now := time.Now()
	cooldown := guildCfg.CooldownFor(m.ChannelID)
	if !e.clock.TryAcquire(m.ChannelID, cooldown, now) {
		return
	}

	reply, err := s.ChannelMessageSend(m.ChannelID,
		fmt.Sprintf("Watch your language %s.", m.Author.Mention()))
	if err != nil {
		logger.Warn(fmt.Sprintf("Could not send warning in channel %s: %v", m.ChannelID, err), "Moderation")
		return
	}

	// The trigger and the warning are both trashed
	discord.ScheduleDelete(s, discord.TrashDelay, m.ChannelID, m.ID, reply.ID)

	logger.Info(fmt.Sprintf("Set channel %s warning cooldown at %d", m.ChannelID, now.Unix()), "Moderation")

	if mc := mqtt.Get(); mc != nil {
		mc.PublishAsync("mandatum/moderation/warnings", map[string]interface{}{
			"guildId":   m.GuildID,
			"channelId": m.ChannelID,
			"userId":    m.Author.ID,
			"term":      term,
			"timestamp": now.Unix(),
		})
	}
}
