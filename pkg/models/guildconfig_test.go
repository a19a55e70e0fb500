package models

import (
	"testing"
	"time"
)

func TestNewGuildConfigFromTemplate(t *testing.T) {
	cfg := NewGuildConfigFromTemplate("123", "Test Guild")

	if cfg.GuildID != "123" {
		t.Errorf("GuildID = %v, want %v", cfg.GuildID, "123")
	}

	if cfg.Name != "Test Guild" {
		t.Errorf("Name = %v, want %v", cfg.Name, "Test Guild")
	}

	// A fresh config must not carry a stats section
	if cfg.Stats != nil {
		t.Error("template config should have no stats section")
	}
}

func TestCooldownFor(t *testing.T) {
	cfg := &GuildConfig{
		Settings: GuildSettings{
			Moderation: ModerationSettings{
				Cooldowns: map[string]int{"chan-a": 60},
			},
		},
	}

	if got := cfg.CooldownFor("chan-a"); got != 60*time.Second {
		t.Errorf("CooldownFor(chan-a) = %v, want %v", got, 60*time.Second)
	}

	// Unconfigured channel falls back to the default
	if got := cfg.CooldownFor("chan-b"); got != DefaultCooldownSeconds*time.Second {
		t.Errorf("CooldownFor(chan-b) = %v, want %v", got, DefaultCooldownSeconds*time.Second)
	}

	// A nil config also falls back to the default
	var nilCfg *GuildConfig
	if got := nilCfg.CooldownFor("chan-a"); got != DefaultCooldownSeconds*time.Second {
		t.Errorf("nil CooldownFor = %v, want %v", got, DefaultCooldownSeconds*time.Second)
	}
}

func TestIsChannelDisabled(t *testing.T) {
	cfg := &GuildConfig{
		Settings: GuildSettings{DisabledChannels: []string{"off-1", "off-2"}},
	}

	if !cfg.IsChannelDisabled("off-1") {
		t.Error("IsChannelDisabled(off-1) = false, want true")
	}

	if cfg.IsChannelDisabled("on-1") {
		t.Error("IsChannelDisabled(on-1) = true, want false")
	}
}
