package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	// Set up test environment variables
	os.Setenv("botToken", "test-token")
	os.Setenv("commandPrefix", "!")
	os.Setenv("moderatedGuilds", "111, 222,333")
	os.Setenv("PORT", "3001")
	os.Setenv("enviroment", "test")
	defer func() {
		os.Unsetenv("botToken")
		os.Unsetenv("commandPrefix")
		os.Unsetenv("moderatedGuilds")
		os.Unsetenv("PORT")
		os.Unsetenv("enviroment")
	}()

	// Reset global config
	resetForTesting()

	config, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if config.BotToken != "test-token" {
		t.Errorf("BotToken = %v, want %v", config.BotToken, "test-token")
	}

	if config.Prefix != "!" {
		t.Errorf("Prefix = %v, want %v", config.Prefix, "!")
	}

	if len(config.ModeratedGuildIDs) != 3 {
		t.Fatalf("ModeratedGuildIDs length = %v, want %v", len(config.ModeratedGuildIDs), 3)
	}

	if config.ModeratedGuildIDs[1] != "222" {
		t.Errorf("ModeratedGuildIDs[1] = %v, want %v", config.ModeratedGuildIDs[1], "222")
	}

	if config.Port != "3001" {
		t.Errorf("Port = %v, want %v", config.Port, "3001")
	}

	if config.Environment != "test" {
		t.Errorf("Environment = %v, want %v", config.Environment, "test")
	}
}

func TestGetEnv(t *testing.T) {
	os.Setenv("TEST_VAR", "test-value")
	defer os.Unsetenv("TEST_VAR")

	if got := getEnv("TEST_VAR", "default"); got != "test-value" {
		t.Errorf("getEnv() = %v, want %v", got, "test-value")
	}

	if got := getEnv("NON_EXISTENT_VAR", "default"); got != "default" {
		t.Errorf("getEnv() = %v, want %v", got, "default")
	}
}

func TestIsModeratedGuild(t *testing.T) {
	c := &Config{ModeratedGuildIDs: []string{"111", "222"}}

	if !c.IsModeratedGuild("111") {
		t.Error("IsModeratedGuild(111) = false, want true")
	}

	if c.IsModeratedGuild("999") {
		t.Error("IsModeratedGuild(999) = true, want false")
	}
}

func TestDefaultPrefix(t *testing.T) {
	os.Unsetenv("commandPrefix")
	resetForTesting()

	config := Get()
	if config.Prefix != ">" {
		t.Errorf("default Prefix = %v, want %v", config.Prefix, ">")
	}
}
