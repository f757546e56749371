package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"discordbuttons/pkg/buttons"
	"discordbuttons/pkg/logger"
	"discordbuttons/pkg/server"
)

const shutdownTimeout = 5 * time.Second

func runCmd() {
	runBot(nil)
}

func demoCmd() {
	args := os.Args[2:]
	if len(args) == 0 {
		fmt.Println("Usage: discordbuttons demo <channel-id>")
		os.Exit(1)
	}
	channelID := args[0]

	runBot(func(ctx context.Context, client *buttons.Client) error {
		return sendDemoMessage(ctx, client, channelID)
	})
}

// runBot connects to Discord, runs afterStart if given, and blocks until
// SIGINT or SIGTERM. A gateway that cannot be opened is fatal.
func runBot(afterStart func(ctx context.Context, client *buttons.Client) error) {
	cfg, err := loadValidConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	client, err := buttons.NewClient(cfg.Discord, nil)
	if err != nil {
		fmt.Printf("Error creating Discord client: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := client.Start(ctx); err != nil {
		logger.FatalCF("buttons", "Fatal connection error", map[string]interface{}{
			logger.FieldError: err.Error(),
		})
	}
	fmt.Println("✓ Connected to Discord")

	var health *server.Server
	if cfg.Gateway.Enabled {
		health = server.NewServer(cfg.GatewayAddr(), client)
		if err := health.Start(); err != nil {
			fmt.Printf("Error starting health server: %v\n", err)
		} else {
			fmt.Printf("✓ Health server listening on %s\n", health.Addr())
		}
	}

	if afterStart != nil {
		if err := afterStart(ctx, client); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}

	fmt.Println("Press Ctrl+C to stop.")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	fmt.Println("\nShutting down...")
	cancel()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stopCancel()
	if health != nil {
		if err := health.Stop(stopCtx); err != nil {
			logger.WarnCF("server", "Health server shutdown failed", map[string]interface{}{
				logger.FieldError: err.Error(),
			})
		}
	}
	if err := client.Stop(stopCtx); err != nil {
		logger.WarnCF("buttons", "Gateway close failed", map[string]interface{}{
			logger.FieldError: err.Error(),
		})
	}
	fmt.Println("✓ Stopped")
}
