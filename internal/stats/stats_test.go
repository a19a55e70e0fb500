package stats

import (
	"errors"
	"sync"
	"testing"

	"github.com/mandatum-dev/mandatum-go/pkg/models"
)

// fakeGateway implements Gateway against in-memory channel names
type fakeGateway struct {
	mu       sync.Mutex
	humans   int
	bots     int
	names    map[string]string
	renames  []string
	countErr error
}

func (g *fakeGateway) CountMembers(guildID string) (int, int, error) {
	if g.countErr != nil {
		return 0, 0, g.countErr
	}
	return g.humans, g.bots, nil
}

func (g *fakeGateway) ChannelName(guildID, channelID string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	name, ok := g.names[channelID]
	if !ok {
		return "", errors.New("channel not found")
	}
	return name, nil
}

func (g *fakeGateway) RenameChannel(channelID, name string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.names[channelID] = name
	g.renames = append(g.renames, channelID+"="+name)
	return nil
}

func loaderFor(cfg *models.GuildConfig) ConfigLoader {
	return func(guildID string) (*models.GuildConfig, bool, error) {
		if cfg == nil {
			return nil, false, nil
		}
		return cfg, true, nil
	}
}

func statsConfig() *models.GuildConfig {
	return &models.GuildConfig{
		GuildID: "guild",
		Name:    "Test Guild",
		Stats: &models.StatsChannels{
			Members: "chan-members",
			Bots:    "chan-bots",
		},
	}
}

func TestParseCounter(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		label   string
		count   int
		wantErr bool
	}{
		{"simple", "Members 10", "Members", 10, false},
		{"splits on first space", "Members 10 11", "", 0, true},
		{"non-integer suffix", "Members ten", "", 0, true},
		{"no suffix", "Members", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, count, err := parseCounter(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if label != tt.label || count != tt.count {
				t.Errorf("parseCounter(%q) = %q, %d; want %q, %d", tt.input, label, count, tt.label, tt.count)
			}
		})
	}
}

func TestReconcileUpdatesBothCounters(t *testing.T) {
	gw := &fakeGateway{
		humans: 12,
		bots:   3,
		names: map[string]string{
			"chan-members": "Members 10",
			"chan-bots":    "Bots 2",
		},
	}

	sy := New(gw, loaderFor(statsConfig()))
	if err := sy.Reconcile("guild"); err != nil {
		t.Fatalf("Reconcile() error: %v", err)
	}

	if got := gw.names["chan-members"]; got != "Members 12" {
		t.Errorf("members channel = %q, want %q", got, "Members 12")
	}
	if got := gw.names["chan-bots"]; got != "Bots 3" {
		t.Errorf("bots channel = %q, want %q", got, "Bots 3")
	}
}

func TestReconcileIsIdempotent(t *testing.T) {
	gw := &fakeGateway{
		humans: 10,
		bots:   2,
		names: map[string]string{
			"chan-members": "Members 10",
			"chan-bots":    "Bots 2",
		},
	}

	sy := New(gw, loaderFor(statsConfig()))
	if err := sy.Reconcile("guild"); err != nil {
		t.Fatalf("Reconcile() error: %v", err)
	}

	// Counts already match: no rename may be issued
	if len(gw.renames) != 0 {
		t.Errorf("renames = %v, want none", gw.renames)
	}
}

func TestReconcileSkipsGuildWithoutStats(t *testing.T) {
	gw := &fakeGateway{countErr: errors.New("must not be called")}

	noStats := &models.GuildConfig{GuildID: "guild", Name: "Test Guild"}
	sy := New(gw, loaderFor(noStats))

	// No stats section: a no-op, not an error
	if err := sy.Reconcile("guild"); err != nil {
		t.Fatalf("Reconcile() error: %v", err)
	}

	// Unprovisioned guild: also a no-op
	sy = New(gw, loaderFor(nil))
	if err := sy.Reconcile("guild"); err != nil {
		t.Fatalf("Reconcile() error: %v", err)
	}
}

func TestBumpIncrementsInSequence(t *testing.T) {
	gw := &fakeGateway{
		names: map[string]string{
			"chan-members": "Members 10",
			"chan-bots":    "Bots 2",
		},
	}

	sy := New(gw, loaderFor(statsConfig()))

	// Two human joins in sequence
	if err := sy.Bump("guild", false, +1); err != nil {
		t.Fatalf("Bump() error: %v", err)
	}
	if got := gw.names["chan-members"]; got != "Members 11" {
		t.Errorf("after first join = %q, want %q", got, "Members 11")
	}

	if err := sy.Bump("guild", false, +1); err != nil {
		t.Fatalf("Bump() error: %v", err)
	}
	if got := gw.names["chan-members"]; got != "Members 12" {
		t.Errorf("after second join = %q, want %q", got, "Members 12")
	}

	// A bot leave touches only the bots counter
	if err := sy.Bump("guild", true, -1); err != nil {
		t.Fatalf("Bump() error: %v", err)
	}
	if got := gw.names["chan-bots"]; got != "Bots 1" {
		t.Errorf("after bot leave = %q, want %q", got, "Bots 1")
	}
}

func TestBumpMalformedCounterAborts(t *testing.T) {
	gw := &fakeGateway{
		names: map[string]string{
			"chan-members": "Members ten",
			"chan-bots":    "Bots 2",
		},
	}

	sy := New(gw, loaderFor(statsConfig()))

	if err := sy.Bump("guild", false, +1); err == nil {
		t.Fatal("Bump() with malformed counter should return an error")
	}

	// The malformed name must be left untouched
	if got := gw.names["chan-members"]; got != "Members ten" {
		t.Errorf("channel name = %q, want unchanged", got)
	}
}

func TestNotifyFiresOnRename(t *testing.T) {
	gw := &fakeGateway{
		names: map[string]string{
			"chan-members": "Members 10",
			"chan-bots":    "Bots 2",
		},
	}

	sy := New(gw, loaderFor(statsConfig()))

	var mu sync.Mutex
	var notified []string
	sy.Notify = func(guildID, channelID, newName string) {
		mu.Lock()
		notified = append(notified, newName)
		mu.Unlock()
	}

	if err := sy.Bump("guild", false, +1); err != nil {
		t.Fatalf("Bump() error: %v", err)
	}

	if len(notified) != 1 || notified[0] != "Members 11" {
		t.Errorf("notified = %v, want [Members 11]", notified)
	}
}
