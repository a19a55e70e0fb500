package discord

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/mandatum-dev/mandatum-go/pkg/logger"
)

// TrashDelay is how long trashed messages linger before deletion
const TrashDelay = 10 * time.Second

// ScheduleDelete deletes messages after a delay. It is a one-shot delayed
// action; deletion failures are logged and not retried.
func ScheduleDelete(s *discordgo.Session, delay time.Duration, channelID string, messageIDs ...string) {
	time.AfterFunc(delay, func() {
		for _, id := range messageIDs {
			if err := s.ChannelMessageDelete(channelID, id); err != nil {
				logger.Warn(fmt.Sprintf("Could not delete message %s: %v", id, err), "Trash")
			}
		}
	})
}
