// Package database provides the guild configuration store.
package database

import (
	"fmt"

	"github.com/mandatum-dev/mandatum-go/pkg/logger"
	"github.com/mandatum-dev/mandatum-go/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
)

// GlobalGuildConfigDM is the shared DataManager for guild config documents
var GlobalGuildConfigDM *DataManager[models.GuildConfig]

// InitGlobalDataManagers initializes shared DataManager instances
func InitGlobalDataManagers(db *Database) {
	GlobalGuildConfigDM = NewDataManager[models.GuildConfig]("guild_configs", db)
}

// LoadGuildConfig fetches the config document for a guild. The found flag
// distinguishes a guild that has not been provisioned yet from a storage
// error; callers that tolerate absence branch on it instead of the error.
func LoadGuildConfig(guildID string) (*models.GuildConfig, bool, error) {
	if GlobalGuildConfigDM == nil {
		return nil, false, fmt.Errorf("guild config data manager not initialized")
	}
	return GlobalGuildConfigDM.Get(bson.M{"guildId": guildID})
}

// EnsureGuildConfig returns the config for a guild, creating it from the
// template exactly once if the guild has never been seen before.
func EnsureGuildConfig(guildID, name string) (*models.GuildConfig, error) {
	if GlobalGuildConfigDM == nil {
		return nil, fmt.Errorf("guild config data manager not initialized")
	}

	cfg, created, err := GlobalGuildConfigDM.SetOnInsert(
		bson.M{"guildId": guildID},
		models.NewGuildConfigFromTemplate(guildID, name),
	)
	if err != nil {
		return nil, err
	}

	if created {
		logger.Info(fmt.Sprintf("Wrote new config for guild %s (%s)", name, guildID), "ConfigStore")
	} else {
		logger.Debug(fmt.Sprintf("Found config for guild %s (%s)", name, guildID), "ConfigStore")
	}

	return cfg, nil
}

// PatchGuildConfig applies a partial update to a guild's config document
func PatchGuildConfig(guildID string, fields bson.M) error {
	if GlobalGuildConfigDM == nil {
		return fmt.Errorf("guild config data manager not initialized")
	}
	_, err := GlobalGuildConfigDM.Set(bson.M{"guildId": guildID}, fields)
	return err
}

// SetChannelCooldown overrides the moderation warning cooldown for a channel
func SetChannelCooldown(guildID, channelID string, seconds int) error {
	field := fmt.Sprintf("settings.moderation.cooldowns.%s", channelID)
	return PatchGuildConfig(guildID, bson.M{field: seconds})
}
