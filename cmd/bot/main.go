// Package main is the entry point for the Mandatum bot.
// It initializes all systems and starts the Discord client.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/mandatum-dev/mandatum-go/internal/commands"
	"github.com/mandatum-dev/mandatum-go/internal/events"
	"github.com/mandatum-dev/mandatum-go/internal/moderation"
	"github.com/mandatum-dev/mandatum-go/pkg/config"
	"github.com/mandatum-dev/mandatum-go/pkg/database"
	"github.com/mandatum-dev/mandatum-go/pkg/discord"
	"github.com/mandatum-dev/mandatum-go/pkg/errors"
	"github.com/mandatum-dev/mandatum-go/pkg/logger"
	"github.com/mandatum-dev/mandatum-go/pkg/mqtt"
	"github.com/mandatum-dev/mandatum-go/pkg/web"
)

// minGoMinor is the oldest Go minor release the bot supports.
const minGoMinor = 22

func main() {
	if err := checkRuntimeVersion(); err != nil {
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.Init(cfg.ErrorWebhook, cfg.LogsWebhook)
	defer log.Close()

	logger.System("Starting Mandatum...", "Main")

	// Initialize error handler
	var discordClient *discord.ExtendedClient
	errors.Init(cfg.ErrorWebhook, func() {
		if discordClient != nil {
			if err := discordClient.Stop(); err != nil {
				return
			}
		}
	})

	// Initialize database
	db, err := database.Init(cfg.MongoDBURL, cfg.DBName)
	if err != nil {
		logger.Error(fmt.Sprintf("Error connecting to database: %v", err), "Main")
		// Continue without database, it will attempt to reconnect
	}
	defer func() {
		if db != nil {
			if err := db.Disconnect(); err != nil {
				return
			}
		}
	}()

	if db != nil {
		database.InitGlobalDataManagers(db)
	}

	// Load the moderation wordlist and keep it fresh
	words, err := moderation.NewWordlist(cfg.WordlistPath)
	if err != nil {
		logger.Warn(fmt.Sprintf("Could not load wordlist from %s: %v", cfg.WordlistPath, err), "Main")
	}
	words.StartAutoRefresh(5 * time.Minute)
	defer words.StopAutoRefresh()

	// Initialize MQTT
	mqttClientID := "mandatum"
	if !cfg.IsProd() {
		mqttClientID = "mandatum_canary"
	}

	mqttClient := mqtt.Init(
		cfg.MQTTHost,
		cfg.MQTTPort,
		cfg.MQTTUser,
		cfg.MQTTPassword,
		mqttClientID,
	)
	defer mqttClient.Destroy()

	// Initialize web server
	webServer := web.Init()
	web.SetupAPIRoutes(webServer)
	webServer.StartAsync(cfg.Port)

	// Initialize Discord client
	discordClient, err = discord.Init(cfg.BotToken)
	if err != nil {
		logger.Fatal(fmt.Sprintf("Error creating Discord client: %v", err), "Main")
		os.Exit(1)
	}

	commands.RegisterAll(discordClient)
	events.RegisterAll(discordClient, words)
	defer events.Shutdown()

	// Start the bot
	if err := discordClient.Start(); err != nil {
		logger.Fatal(fmt.Sprintf("Error starting Discord client: %v", err), "Main")
		os.Exit(1)
	}
	defer func() {
		if err := discordClient.Stop(); err != nil {
			return
		}
	}()

	logger.Success("Mandatum started!", "Main")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.System("Shutting down Mandatum...", "Main")
}

// checkRuntimeVersion refuses to run on Go releases older than minGoMinor.
func checkRuntimeVersion() error {
	version := runtime.Version()

	trimmed := strings.TrimPrefix(version, "go")
	parts := strings.Split(trimmed, ".")
	if len(parts) < 2 {
		// Development and gccgo builds report odd strings, let them through.
		return nil
	}

	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil
	}

	if minor < minGoMinor {
		return fmt.Errorf("Go 1.%d or higher is required, running %s", minGoMinor, version)
	}
	return nil
}
