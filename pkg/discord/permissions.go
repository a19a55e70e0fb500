// Package discord provides the permission filter consulted before commands
// and moderation actions run.
package discord

import (
	"github.com/bwmarrin/discordgo"
	"github.com/mandatum-dev/mandatum-go/pkg/models"
)

// Decision is the outcome of a permission evaluation
type Decision int

const (
	// Allowed lets the action proceed
	Allowed Decision = iota
	// DeniedSilent blocks the action with no feedback to the user
	DeniedSilent
	// DeniedWithNotice blocks the action and tells the user why
	DeniedWithNotice
)

// String returns the string representation of a Decision
func (d Decision) String() string {
	switch d {
	case Allowed:
		return "Allowed"
	case DeniedSilent:
		return "DeniedSilent"
	case DeniedWithNotice:
		return "DeniedWithNotice"
	default:
		return "Unknown"
	}
}

// PermissionRequest carries everything a permission decision depends on
type PermissionRequest struct {
	AuthorID            string
	OwnerID             string
	MemberPermissions   int64
	RequiredPermissions int64
	OwnerOnly           bool
	// ChannelDisabled is true when the guild config silences the channel
	ChannelDisabled bool
}

// Evaluate is the permission filter. It is a pure decision function; side
// effects (notices, logging) belong to the caller.
func Evaluate(req PermissionRequest) Decision {
	// Silenced channels swallow everything, including the denial notice
	if req.ChannelDisabled {
		return DeniedSilent
	}

	// The owner is always allowed
	if req.OwnerID != "" && req.AuthorID == req.OwnerID {
		return Allowed
	}

	if req.OwnerOnly {
		return DeniedWithNotice
	}

	if req.RequiredPermissions != 0 &&
		req.MemberPermissions&req.RequiredPermissions != req.RequiredPermissions {
		return DeniedWithNotice
	}

	return Allowed
}

// EvaluateMessage builds a PermissionRequest from a live message and runs the
// filter. guildCfg may be nil for guilds that have not been provisioned yet.
func (c *ExtendedClient) EvaluateMessage(m *discordgo.MessageCreate, cmd *Command, guildCfg *models.GuildConfig) Decision {
	req := PermissionRequest{
		AuthorID:        m.Author.ID,
		OwnerID:         c.GetConfig().OwnerID,
		ChannelDisabled: guildCfg.IsChannelDisabled(m.ChannelID),
	}

	if cmd != nil {
		req.RequiredPermissions = cmd.RequiredPermissions
		req.OwnerOnly = cmd.OwnerOnly
	}

	if req.RequiredPermissions != 0 {
		perms, err := c.Session.State.MessagePermissions(m.Message)
		if err == nil {
			req.MemberPermissions = perms
		}
	}

	return Evaluate(req)
}
