// Package commands provides the prefix command registry for the bot.
package commands

import (
	"fmt"

	"github.com/mandatum-dev/mandatum-go/pkg/discord"
	"github.com/mandatum-dev/mandatum-go/pkg/logger"
)

// RegisterAll registers all commands with the Discord client
func RegisterAll(client *discord.ExtendedClient) {
	register(client,
		createAboutCommand(),
		createUptimeCommand(),
		createPingCommand(),
		createStatusCommand(),
		createCooldownCommand(),
		createEvalCommand(),
	)

	logger.Info(fmt.Sprintf("Registered %d commands", client.Commands.Size()), "Commands")
}

func register(client *discord.ExtendedClient, cmds ...*discord.Command) {
	for _, cmd := range cmds {
		client.Commands.Set(cmd.Name, cmd)
	}
}
