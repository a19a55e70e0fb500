package discord

import (
	"reflect"
	"testing"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		content string
		prefix  string
		token   string
		args    []string
		ok      bool
	}{
		{"simple command", ">ping", ">", "ping", []string{}, true},
		{"command with args", ">cooldown 60 extra", ">", "cooldown", []string{"60", "extra"}, true},
		{"extra whitespace", ">  uptime   now ", ">", "uptime", []string{"now"}, true},
		{"no prefix", "hello there", ">", "", nil, false},
		{"prefix only", ">", ">", "", nil, false},
		{"prefix and spaces", ">   ", ">", "", nil, false},
		{"different prefix", "!ping", ">", "", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, args, ok := ParseCommand(tt.content, tt.prefix)

			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if token != tt.token {
				t.Errorf("token = %v, want %v", token, tt.token)
			}
			if len(args) != len(tt.args) {
				t.Fatalf("args = %v, want %v", args, tt.args)
			}
			if len(args) > 0 && !reflect.DeepEqual(args, tt.args) {
				t.Errorf("args = %v, want %v", args, tt.args)
			}
		})
	}
}

func TestUnknownTokenIsNotFound(t *testing.T) {
	cc := NewCommandCollection()
	cc.Set("ping", NewCommand("ping", "Check latency", "info", func(ctx *CommandContext) error {
		return nil
	}))

	// Lookup misses are reported through the found flag, never an error
	if _, found := cc.Get("doesnotexist"); found {
		t.Error("Get(doesnotexist) found = true, want false")
	}

	if cmd, found := cc.Get("ping"); !found || cmd.Name != "ping" {
		t.Errorf("Get(ping) = %v, %v; want ping command, true", cmd, found)
	}
}

func TestCommandBuilder(t *testing.T) {
	cmd := NewCommand("eval", "Evaluate Go code", "admin", func(ctx *CommandContext) error {
		return nil
	}).AsOwnerOnly()

	if !cmd.OwnerOnly {
		t.Error("OwnerOnly should be true after AsOwnerOnly()")
	}

	cmd = NewCommand("cooldown", "Set the warning cooldown", "admin", func(ctx *CommandContext) error {
		return nil
	}).WithUserPermissions(8)

	if cmd.RequiredPermissions != 8 {
		t.Errorf("RequiredPermissions = %v, want %v", cmd.RequiredPermissions, 8)
	}
}
