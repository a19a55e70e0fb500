package scheduler

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/mandatum-dev/mandatum-go/pkg/config"
	"github.com/mandatum-dev/mandatum-go/pkg/logger"
)

// NewBroadcastJob builds the hourly "clock strikes" broadcast. Resolution
// and send failures are logged and abandoned; the next tick is unaffected.
func NewBroadcastJob(session *discordgo.Session) Job {
	return func(now time.Time) {
		cfg := config.Get()
		if cfg.BroadcastGuildID == "" || cfg.BroadcastChannelID == "" {
			return
		}

		if _, err := session.Guild(cfg.BroadcastGuildID); err != nil {
			logger.Warn(fmt.Sprintf("Could not resolve broadcast guild %s: %v", cfg.BroadcastGuildID, err), "Scheduler")
			return
		}

		embed := &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("Clock strikes %s!", now.Format("3")),
			Color:       0xFFFFFF,
			Description: now.Format("It is currently 3:04:05 PM MST on January 2, 2006"),
		}

		if _, err := session.ChannelMessageSendEmbed(cfg.BroadcastChannelID, embed); err != nil {
			logger.Warn(fmt.Sprintf("Could not send hourly broadcast: %v", err), "Scheduler")
		}
	}
}
