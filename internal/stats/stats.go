// Package stats keeps the designated counter channels in sync with live
// guild membership. Counter channels encode their value in the channel name
// as "<label> <integer>".
package stats

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/mandatum-dev/mandatum-go/pkg/logger"
	"github.com/mandatum-dev/mandatum-go/pkg/models"
)

// Gateway is the slice of the Discord API the synchronizer needs
type Gateway interface {
	// CountMembers returns the live number of human and bot members
	CountMembers(guildID string) (humans, bots int, err error)
	// ChannelName returns the current display name of a channel
	ChannelName(guildID, channelID string) (string, error)
	// RenameChannel sets a channel's display name
	RenameChannel(channelID, name string) error
}

// ConfigLoader fetches the config document for a guild. The found flag is
// false for guilds that have not been provisioned yet.
type ConfigLoader func(guildID string) (*models.GuildConfig, bool, error)

// Synchronizer reconciles counter channels against live membership
type Synchronizer struct {
	gw   Gateway
	load ConfigLoader
	// Notify, when set, is called after each successful rename
	Notify func(guildID, channelID, newName string)
}

// New creates a Synchronizer
func New(gw Gateway, load ConfigLoader) *Synchronizer {
	return &Synchronizer{gw: gw, load: load}
}

// parseCounter splits a counter channel name into its label and value.
// The split happens on the first space; a non-integer suffix is an error.
func parseCounter(name string) (label string, count int, err error) {
	label, suffix, found := strings.Cut(name, " ")
	if !found {
		return "", 0, fmt.Errorf("channel name %q has no counter suffix", name)
	}

	count, err = strconv.Atoi(suffix)
	if err != nil {
		return "", 0, fmt.Errorf("channel name %q has a non-integer suffix", name)
	}

	return label, count, nil
}

// formatCounter builds a counter channel name from its label and value
func formatCounter(label string, count int) string {
	return fmt.Sprintf("%s %d", label, count)
}

// Reconcile performs a full recount for one guild. Guilds with no config
// document or no stats section are skipped, not failed.
func (sy *Synchronizer) Reconcile(guildID string) error {
	cfg, found, err := sy.load(guildID)
	if err != nil {
		return fmt.Errorf("loading config for guild %s: %w", guildID, err)
	}
	if !found || cfg.Stats == nil {
		logger.Debug(fmt.Sprintf("No stats for guild [%s], ignoring", guildID), "Stats")
		return nil
	}

	humans, bots, err := sy.gw.CountMembers(guildID)
	if err != nil {
		return fmt.Errorf("fetching members for guild %s: %w", guildID, err)
	}

	// The two counters are independent; rename them concurrently
	var wg sync.WaitGroup
	for _, target := range []struct {
		channelID string
		count     int
	}{
		{cfg.Stats.Members, humans},
		{cfg.Stats.Bots, bots},
	} {
		if target.channelID == "" {
			continue
		}
		wg.Add(1)
		go func(channelID string, count int) {
			defer wg.Done()
			if err := sy.setCounter(guildID, channelID, count); err != nil {
				logger.Warn(err.Error(), "Stats")
			}
		}(target.channelID, target.count)
	}
	wg.Wait()

	return nil
}

// Bump applies a ±1 adjustment for a single member join or leave
func (sy *Synchronizer) Bump(guildID string, isBot bool, delta int) error {
	cfg, found, err := sy.load(guildID)
	if err != nil {
		return fmt.Errorf("loading config for guild %s: %w", guildID, err)
	}
	if !found || cfg.Stats == nil {
		logger.Debug(fmt.Sprintf("No stats for guild [%s], ignoring", guildID), "Stats")
		return nil
	}

	channelID := cfg.Stats.Members
	if isBot {
		channelID = cfg.Stats.Bots
	}
	if channelID == "" {
		return nil
	}

	name, err := sy.gw.ChannelName(guildID, channelID)
	if err != nil {
		return fmt.Errorf("resolving channel %s: %w", channelID, err)
	}

	label, count, err := parseCounter(name)
	if err != nil {
		// Malformed counter: abandon this attempt, never crash
		return err
	}

	return sy.rename(guildID, channelID, formatCounter(label, count+delta))
}

// setCounter rewrites one counter channel to an absolute value, renaming
// only when the displayed value actually changes
func (sy *Synchronizer) setCounter(guildID, channelID string, count int) error {
	name, err := sy.gw.ChannelName(guildID, channelID)
	if err != nil {
		return fmt.Errorf("resolving channel %s: %w", channelID, err)
	}

	label, current, err := parseCounter(name)
	if err != nil {
		return err
	}

	if current == count {
		return nil
	}

	return sy.rename(guildID, channelID, formatCounter(label, count))
}

func (sy *Synchronizer) rename(guildID, channelID, newName string) error {
	if err := sy.gw.RenameChannel(channelID, newName); err != nil {
		return fmt.Errorf("renaming channel %s: %w", channelID, err)
	}

	if sy.Notify != nil {
		sy.Notify(guildID, channelID, newName)
	}
	return nil
}
