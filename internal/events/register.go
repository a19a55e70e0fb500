// Package events wires the gateway event handlers for the bot.
package events

import (
	"github.com/mandatum-dev/mandatum-go/internal/moderation"
	"github.com/mandatum-dev/mandatum-go/internal/scheduler"
	"github.com/mandatum-dev/mandatum-go/internal/stats"
	"github.com/mandatum-dev/mandatum-go/pkg/database"
	"github.com/mandatum-dev/mandatum-go/pkg/discord"
	"github.com/mandatum-dev/mandatum-go/pkg/logger"
	"github.com/mandatum-dev/mandatum-go/pkg/mqtt"
)

var (
	syncer *stats.Synchronizer
	engine *moderation.Engine
	clock  *scheduler.Scheduler
)

// RegisterAll registers all events with the Discord client
func RegisterAll(client *discord.ExtendedClient, words *moderation.Wordlist) {
	logger.System("Registering bot events...", "Events")

	syncer = stats.New(
		&stats.SessionGateway{Session: client.Session},
		database.LoadGuildConfig,
	)
	syncer.Notify = func(guildID, channelID, newName string) {
		if mc := mqtt.Get(); mc != nil {
			mc.PublishAsync("mandatum/stats/renames", map[string]interface{}{
				"guildId":   guildID,
				"channelId": channelID,
				"name":      newName,
			})
		}
	}

	engine = moderation.NewEngine(client, words)
	clock = scheduler.New(scheduler.NewBroadcastJob(client.Session))

	RegisterReadyEvent(client)
	RegisterGuildEvents(client)
	RegisterMemberEvents(client)
	RegisterMessageEvents(client)
	RegisterConnectionEvents(client)

	logger.Success("All events registered", "Events")
}

// Shutdown stops the background work owned by the event layer.
func Shutdown() {
	if clock != nil {
		clock.Stop()
	}
}
