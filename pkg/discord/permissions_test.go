package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestEvaluateOwnerAlwaysAllowed(t *testing.T) {
	decision := Evaluate(PermissionRequest{
		AuthorID:            "owner-id",
		OwnerID:             "owner-id",
		OwnerOnly:           true,
		RequiredPermissions: discordgo.PermissionAdministrator,
	})

	if decision != Allowed {
		t.Errorf("Evaluate() = %v, want %v", decision, Allowed)
	}
}

func TestEvaluateDisabledChannelIsSilent(t *testing.T) {
	// A silenced channel swallows even the owner's commands without notice
	decision := Evaluate(PermissionRequest{
		AuthorID:        "owner-id",
		OwnerID:         "owner-id",
		ChannelDisabled: true,
	})

	if decision != DeniedSilent {
		t.Errorf("Evaluate() = %v, want %v", decision, DeniedSilent)
	}
}

func TestEvaluateMissingPermissionGetsNotice(t *testing.T) {
	decision := Evaluate(PermissionRequest{
		AuthorID:            "user-id",
		OwnerID:             "owner-id",
		MemberPermissions:   discordgo.PermissionSendMessages,
		RequiredPermissions: discordgo.PermissionAdministrator,
	})

	if decision != DeniedWithNotice {
		t.Errorf("Evaluate() = %v, want %v", decision, DeniedWithNotice)
	}
}

func TestEvaluateOwnerOnlyDeniesOthers(t *testing.T) {
	decision := Evaluate(PermissionRequest{
		AuthorID:  "user-id",
		OwnerID:   "owner-id",
		OwnerOnly: true,
	})

	if decision != DeniedWithNotice {
		t.Errorf("Evaluate() = %v, want %v", decision, DeniedWithNotice)
	}
}

func TestEvaluateUnrestrictedCommand(t *testing.T) {
	decision := Evaluate(PermissionRequest{
		AuthorID: "user-id",
		OwnerID:  "owner-id",
	})

	if decision != Allowed {
		t.Errorf("Evaluate() = %v, want %v", decision, Allowed)
	}
}

func TestDecisionString(t *testing.T) {
	tests := []struct {
		decision Decision
		expected string
	}{
		{Allowed, "Allowed"},
		{DeniedSilent, "DeniedSilent"},
		{DeniedWithNotice, "DeniedWithNotice"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.decision.String(); got != tt.expected {
				t.Errorf("Decision.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}
