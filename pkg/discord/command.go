// Package discord provides command types and structures.
package discord

import (
	"github.com/bwmarrin/discordgo"
)

// CommandContext provides context for command execution
type CommandContext struct {
	Session *discordgo.Session
	Message *discordgo.MessageCreate
	Client  *ExtendedClient
	// Args holds the whitespace-split tokens after the command name
	Args []string
}

// Command represents a prefix command
type Command struct {
	Name                string
	Description         string
	Category            string
	RequiredPermissions int64
	OwnerOnly           bool
	Execute             CommandRunFunc
}

// CommandRunFunc is the function type for command execution
type CommandRunFunc func(ctx *CommandContext) error

// NewCommand creates a new Command with required fields
func NewCommand(name, description, category string, run CommandRunFunc) *Command {
	return &Command{
		Name:        name,
		Description: description,
		Category:    category,
		Execute:     run,
	}
}

// WithUserPermissions sets the permission bits required to run the command
func (c *Command) WithUserPermissions(perms int64) *Command {
	c.RequiredPermissions = perms
	return c
}

// AsOwnerOnly restricts the command to the bot owner
func (c *Command) AsOwnerOnly() *Command {
	c.OwnerOnly = true
	return c
}

// Reply sends a plain message to the channel the command came from
func (ctx *CommandContext) Reply(content string) (*discordgo.Message, error) {
	return ctx.Session.ChannelMessageSend(ctx.Message.ChannelID, content)
}

// ReplyEmbed sends an embed to the channel the command came from
func (ctx *CommandContext) ReplyEmbed(embed *discordgo.MessageEmbed) (*discordgo.Message, error) {
	return ctx.Session.ChannelMessageSendEmbed(ctx.Message.ChannelID, embed)
}

// Author returns the user who sent the command
func (ctx *CommandContext) Author() *discordgo.User {
	return ctx.Message.Author
}

// Guild returns the guild the command was sent in
func (ctx *CommandContext) Guild() *discordgo.Guild {
	if ctx.Message.GuildID == "" {
		return nil
	}
	guild, _ := ctx.Session.State.Guild(ctx.Message.GuildID)
	return guild
}

// Channel returns the channel the command was sent in
func (ctx *CommandContext) Channel() *discordgo.Channel {
	channel, _ := ctx.Session.State.Channel(ctx.Message.ChannelID)
	return channel
}
