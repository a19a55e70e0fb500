package events

import (
	"github.com/mandatum-dev/mandatum-go/pkg/discord"
)

// RegisterMessageEvents registers message event handlers.
// Command dispatch is wired by the client itself; the moderation filter
// rides the same event as a second handler.
func RegisterMessageEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(engine.HandleMessage)
}
