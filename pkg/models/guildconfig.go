// Package models contains the document types stored in the database.
package models

import "time"

// DefaultCooldownSeconds is the moderation warning cooldown applied to
// channels without an explicit override.
const DefaultCooldownSeconds = 30

// StatsChannels identifies the channels whose names display live member
// counts, in the form "<label> <integer>"
type StatsChannels struct {
	Members string `bson:"members,omitempty" json:"members,omitempty"`
	Bots    string `bson:"bots,omitempty" json:"bots,omitempty"`
}

// ModerationSettings holds per-guild moderation configuration
type ModerationSettings struct {
	// Cooldowns maps channel ID to warning cooldown in seconds
	Cooldowns map[string]int `bson:"cooldowns,omitempty" json:"cooldowns,omitempty"`
}

// GuildSettings holds per-guild behavioral settings
type GuildSettings struct {
	Moderation ModerationSettings `bson:"moderation" json:"moderation"`
	// DisabledChannels lists channels where commands are silently ignored
	DisabledChannels []string `bson:"disabledChannels,omitempty" json:"disabledChannels,omitempty"`
}

// GuildConfig is the per-guild configuration document, keyed by guild ID
type GuildConfig struct {
	GuildID  string         `bson:"guildId" json:"id"`
	Name     string         `bson:"name" json:"name"`
	Stats    *StatsChannels `bson:"stats,omitempty" json:"stats,omitempty"`
	Settings GuildSettings  `bson:"settings" json:"settings"`
}

// NewGuildConfigFromTemplate seeds a config for a newly observed guild.
// The template deliberately carries no stats section; stats channels are
// opted into per guild afterwards.
func NewGuildConfigFromTemplate(guildID, name string) *GuildConfig {
	return &GuildConfig{
		GuildID: guildID,
		Name:    name,
		Settings: GuildSettings{
			Moderation: ModerationSettings{},
		},
	}
}

// CooldownFor returns the moderation cooldown for a channel, falling back
// to the default when no override is configured.
func (c *GuildConfig) CooldownFor(channelID string) time.Duration {
	if c != nil && c.Settings.Moderation.Cooldowns != nil {
		if secs, ok := c.Settings.Moderation.Cooldowns[channelID]; ok && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return DefaultCooldownSeconds * time.Second
}

// IsChannelDisabled reports whether commands are silently ignored in a channel
func (c *GuildConfig) IsChannelDisabled(channelID string) bool {
	if c == nil {
		return false
	}
	for _, id := range c.Settings.DisabledChannels {
		if id == channelID {
			return true
		}
	}
	return false
}
