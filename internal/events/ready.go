// Package events provides event handlers for the bot
package events

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/mandatum-dev/mandatum-go/pkg/config"
	"github.com/mandatum-dev/mandatum-go/pkg/database"
	"github.com/mandatum-dev/mandatum-go/pkg/discord"
	"github.com/mandatum-dev/mandatum-go/pkg/errors"
	"github.com/mandatum-dev/mandatum-go/pkg/logger"
)

var startClockOnce sync.Once

// RegisterReadyEvent registers the ready event handler
func RegisterReadyEvent(client *discord.ExtendedClient) {
	client.Session.AddHandler(onReady)
}

// onReady is called when the bot successfully connects to Discord
func onReady(s *discordgo.Session, r *discordgo.Ready) {
	logger.Success(fmt.Sprintf("Bot connected: %s#%s", r.User.Username, r.User.Discriminator), "Ready")
	logger.Info(fmt.Sprintf("Serving %d guilds", len(r.Guilds)), "Ready")

	cfg := config.Get()

	presence := fmt.Sprintf("the world burn (%s)", cfg.Prefix)
	if err := s.UpdateWatchStatus(0, presence); err != nil {
		logger.Error(fmt.Sprintf("Error setting presence: %v", err), "Ready")
	}

	// Provision configs and recount the stat channels for every guild the
	// bot woke up in. Runs off the gateway goroutine so a slow Mongo or a
	// big member list cannot stall event handling.
	go func() {
		defer errors.RecoverMiddleware()()

		for _, g := range r.Guilds {
			if _, err := database.EnsureGuildConfig(g.ID, g.Name); err != nil {
				logger.Warn(fmt.Sprintf("Could not provision config for guild %s: %v", g.ID, err), "Ready")
				continue
			}
			if err := syncer.Reconcile(g.ID); err != nil {
				logger.Warn(fmt.Sprintf("Stat recount failed for guild %s: %v", g.ID, err), "Ready")
			}
		}

		logger.Info("Startup provisioning pass complete", "Ready")
	}()

	// The hourly clock survives gateway reconnects, so only start it once.
	startClockOnce.Do(clock.Start)
}
