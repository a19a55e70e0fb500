package commands

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/mandatum-dev/mandatum-go/pkg/database"
	"github.com/mandatum-dev/mandatum-go/pkg/discord"
)

// createAboutCommand creates the about command
func createAboutCommand() *discord.Command {
	return discord.NewCommand(
		"about",
		"Shows information about the bot",
		"info",
		aboutHandler,
	)
}

func aboutHandler(ctx *discord.CommandContext) error {
	user := ctx.Session.State.User

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("About %s", user.Username),
		Description: "An automated guild caretaker. It keeps member counters in sync, " +
			"moderates language, and announces the passing of every hour.",
		Color: 0xFFFFFF,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Guilds", Value: fmt.Sprintf("%d", ctx.Client.GuildCount()), Inline: true},
			{Name: "Prefix", Value: ctx.Client.GetConfig().Prefix, Inline: true},
		},
		Thumbnail: &discordgo.MessageEmbedThumbnail{URL: user.AvatarURL("")},
	}

	_, err := ctx.ReplyEmbed(embed)
	return err
}

// createUptimeCommand creates the uptime command
func createUptimeCommand() *discord.Command {
	return discord.NewCommand(
		"uptime",
		"Shows how long the bot has been running",
		"info",
		uptimeHandler,
	)
}

func uptimeHandler(ctx *discord.CommandContext) error {
	uptime := time.Since(ctx.Client.StartTime).Round(time.Second)
	_, err := ctx.Reply(fmt.Sprintf("Online for %s.", formatDuration(uptime)))
	return err
}

func formatDuration(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}
	return fmt.Sprintf("%dm %ds", minutes, seconds)
}

// createPingCommand creates the ping command
func createPingCommand() *discord.Command {
	return discord.NewCommand(
		"ping",
		"Checks the bot's latency",
		"info",
		pingHandler,
	)
}

func pingHandler(ctx *discord.CommandContext) error {
	latency := ctx.Client.Session.HeartbeatLatency().Milliseconds()
	_, err := ctx.Reply(fmt.Sprintf("Pong! Latency: %dms", latency))
	return err
}

// createStatusCommand creates the status command
func createStatusCommand() *discord.Command {
	return discord.NewCommand(
		"status",
		"Shows the bot and database status",
		"info",
		statusHandler,
	)
}

func statusHandler(ctx *discord.CommandContext) error {
	dbStatus, _ := database.Get().GetStatus()

	embed := &discordgo.MessageEmbed{
		Title: "Status",
		Color: 0xFFFFFF,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Database", Value: dbStatus, Inline: true},
			{Name: "Guilds", Value: fmt.Sprintf("%d", ctx.Client.GuildCount()), Inline: true},
			{Name: "Latency", Value: fmt.Sprintf("%dms", ctx.Session.HeartbeatLatency().Milliseconds()), Inline: true},
			{Name: "Uptime", Value: formatDuration(time.Since(ctx.Client.StartTime).Round(time.Second)), Inline: true},
		},
	}

	_, err := ctx.ReplyEmbed(embed)
	return err
}
