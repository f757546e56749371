package main

import (
	"fmt"
	"os"

	"discordbuttons/pkg/config"
)

func statusCmd() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		return
	}

	configPath := getConfigPath()

	fmt.Println("discordbuttons Status")
	fmt.Println()

	if _, err := os.Stat(configPath); err == nil {
		fmt.Println("Config:", configPath, "✓")
	} else {
		fmt.Println("Config:", configPath, "(not found, using defaults and environment)")
	}

	fmt.Printf("Bot Token: %s\n", setOrMissing(cfg.Discord.BotToken))
	fmt.Printf("Application ID: %s\n", valueOrMissing(cfg.Discord.ApplicationID))
	fmt.Printf("Health Server: %v", cfg.Gateway.Enabled)
	if cfg.Gateway.Enabled {
		fmt.Printf(" (%s)", cfg.GatewayAddr())
	}
	fmt.Println()
	fmt.Printf("Logging: %v\n", cfg.Logging.Enabled)
	if cfg.Logging.Enabled {
		fmt.Printf("Log File: %s\n", cfg.LogFilePath())
		fmt.Printf("Log Max Size: %d MB\n", cfg.Logging.MaxSizeMB)
		fmt.Printf("Log Retention: %d days\n", cfg.Logging.RetentionDays)
	}

	if errs := config.Validate(cfg); len(errs) > 0 {
		fmt.Println()
		fmt.Println("Problems:")
		for _, e := range errs {
			fmt.Printf("  ✗ %v\n", e)
		}
	}
}

func setOrMissing(v string) string {
	if v == "" {
		return "not set"
	}
	return "✓"
}

func valueOrMissing(v string) string {
	if v == "" {
		return "not set"
	}
	return v
}
