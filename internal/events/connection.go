package events

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/mandatum-dev/mandatum-go/pkg/discord"
	"github.com/mandatum-dev/mandatum-go/pkg/logger"
	"github.com/mandatum-dev/mandatum-go/pkg/mqtt"
)

// RegisterConnectionEvents registers gateway connection health handlers
func RegisterConnectionEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(onConnect)
	client.Session.AddHandler(onDisconnect)
	client.Session.AddHandler(onResumed)
	client.Session.AddHandler(onRateLimit)
}

func onConnect(s *discordgo.Session, e *discordgo.Connect) {
	logger.Info("Gateway connection established", "Connection")
	publishStatus("connected")
}

func onDisconnect(s *discordgo.Session, e *discordgo.Disconnect) {
	logger.Warn("Gateway connection lost, reconnecting...", "Connection")
	publishStatus("disconnected")
}

func onResumed(s *discordgo.Session, e *discordgo.Resumed) {
	logger.Success("Gateway session resumed", "Connection")
	publishStatus("resumed")
}

func onRateLimit(s *discordgo.Session, e *discordgo.RateLimit) {
	logger.Warn(fmt.Sprintf("Rate limited on %s, retry after %s", e.URL, e.RetryAfter), "Connection")
}

func publishStatus(status string) {
	if mc := mqtt.Get(); mc != nil {
		mc.PublishStatus(status)
	}
}
