package stats

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// SessionGateway adapts a live discordgo session to the Gateway interface
type SessionGateway struct {
	Session *discordgo.Session
}

// CountMembers fetches the full member list and partitions it by the bot flag
func (g *SessionGateway) CountMembers(guildID string) (humans, bots int, err error) {
	after := ""
	for {
		members, err := g.Session.GuildMembers(guildID, after, 1000)
		if err != nil {
			return 0, 0, err
		}
		if len(members) == 0 {
			break
		}

		for _, member := range members {
			if member.User == nil {
				continue
			}
			if member.User.Bot {
				bots++
			} else {
				humans++
			}
		}

		after = members[len(members)-1].User.ID
		if len(members) < 1000 {
			break
		}
	}

	return humans, bots, nil
}

// ChannelName resolves a channel's current display name, preferring state
func (g *SessionGateway) ChannelName(guildID, channelID string) (string, error) {
	if channel, err := g.Session.State.Channel(channelID); err == nil {
		return channel.Name, nil
	}

	channel, err := g.Session.Channel(channelID)
	if err != nil {
		return "", fmt.Errorf("channel %s not found: %w", channelID, err)
	}
	return channel.Name, nil
}

// RenameChannel sets a channel's display name
func (g *SessionGateway) RenameChannel(channelID, name string) error {
	_, err := g.Session.ChannelEdit(channelID, &discordgo.ChannelEdit{Name: name})
	return err
}
