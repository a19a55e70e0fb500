// Package discord provides the prefix command dispatcher.
package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/mandatum-dev/mandatum-go/pkg/database"
	"github.com/mandatum-dev/mandatum-go/pkg/logger"
)

// ParseCommand splits a prefixed message into its command token and
// arguments. ok is false when the message is not a command invocation.
func ParseCommand(content, prefix string) (token string, args []string, ok bool) {
	if prefix == "" || !strings.HasPrefix(content, prefix) {
		return "", nil, false
	}

	fields := strings.Fields(strings.TrimPrefix(content, prefix))
	if len(fields) == 0 {
		return "", nil, false
	}

	return fields[0], fields[1:], true
}

// DispatchMessage routes an inbound message to its command handler.
// Registered as a MessageCreate handler on the session.
func (c *ExtendedClient) DispatchMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	// DMs and other bots never trigger commands
	if m.GuildID == "" || m.Author == nil || m.Author.Bot {
		return
	}

	token, args, ok := ParseCommand(m.Content, c.GetConfig().Prefix)
	if !ok {
		return
	}

	// Unknown tokens are expected and frequent; not an error, never logged
	cmd, found := c.Commands.Get(token)
	if !found {
		return
	}

	guildCfg, _, err := database.LoadGuildConfig(m.GuildID)
	if err != nil {
		logger.Warn(fmt.Sprintf("Could not read config for guild %s: %v", m.GuildID, err), "Dispatcher")
		return
	}

	switch c.EvaluateMessage(m, cmd, guildCfg) {
	case DeniedSilent:
		return
	case DeniedWithNotice:
		c.NoPermission(m)
		return
	}

	ctx := &CommandContext{
		Session: s,
		Message: m,
		Client:  c,
		Args:    args,
	}

	c.invoke(cmd, ctx)
}

// invoke runs a handler, isolating its failures from the event loop
func (c *ExtendedClient) invoke(cmd *Command, ctx *CommandContext) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn(fmt.Sprintf("Command %s panicked: %v", cmd.Name, r), "Dispatcher")
		}
	}()

	if err := cmd.Execute(ctx); err != nil {
		logger.Warn(fmt.Sprintf("Command %s failed: %v", cmd.Name, err), "Dispatcher")
	}
}

// NoPermission delivers the standard denial notice and trashes it shortly after
func (c *ExtendedClient) NoPermission(m *discordgo.MessageCreate) {
	reply, err := c.Session.ChannelMessageSend(m.ChannelID,
		fmt.Sprintf("%s, you don't have permission to use that command.", m.Author.Mention()))
	if err != nil {
		logger.Warn(fmt.Sprintf("Could not send permission notice: %v", err), "Dispatcher")
		return
	}

	ScheduleDelete(c.Session, TrashDelay, m.ChannelID, m.ID, reply.ID)
}
