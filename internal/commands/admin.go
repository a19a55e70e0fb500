package commands

import (
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
	"github.com/mandatum-dev/mandatum-go/pkg/database"
	"github.com/mandatum-dev/mandatum-go/pkg/discord"
	"github.com/mandatum-dev/mandatum-go/pkg/models"
)

// createCooldownCommand creates the cooldown command.
// It sets the warning cooldown for the channel it is run in.
func createCooldownCommand() *discord.Command {
	return discord.NewCommand(
		"cooldown",
		"Sets the warning cooldown for this channel, in seconds",
		"admin",
		cooldownHandler,
	).WithUserPermissions(discordgo.PermissionAdministrator)
}

func cooldownHandler(ctx *discord.CommandContext) error {
	if len(ctx.Args) == 0 {
		cfg, found, err := database.LoadGuildConfig(ctx.Message.GuildID)
		if err != nil {
			return fmt.Errorf("failed to load guild config: %w", err)
		}
		seconds := models.DefaultCooldownSeconds
		if found {
			seconds = int(cfg.CooldownFor(ctx.Message.ChannelID).Seconds())
		}
		_, err = ctx.Reply(fmt.Sprintf("The warning cooldown for this channel is %d seconds.", seconds))
		return err
	}

	seconds, err := strconv.Atoi(ctx.Args[0])
	if err != nil || seconds < 0 {
		_, err = ctx.Reply("Usage: cooldown <seconds>")
		return err
	}

	if err := database.SetChannelCooldown(ctx.Message.GuildID, ctx.Message.ChannelID, seconds); err != nil {
		return fmt.Errorf("failed to set channel cooldown: %w", err)
	}

	_, err = ctx.Reply(fmt.Sprintf("Warning cooldown for this channel set to %d seconds.", seconds))
	return err
}
