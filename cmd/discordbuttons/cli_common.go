package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"discordbuttons/pkg/config"
	"discordbuttons/pkg/logger"
)

func normalizeCLIArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}

	normalized := []string{args[0]}
	for i := 1; i < len(args); i++ {
		arg := args[i]
		if arg == "--debug" || arg == "-d" {
			continue
		}
		if arg == "--config" {
			if i+1 < len(args) {
				i++
			}
			continue
		}
		if strings.HasPrefix(arg, "--config=") {
			continue
		}
		normalized = append(normalized, arg)
	}
	return normalized
}

func detectConfigPathFromArgs(args []string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--config" && i+1 < len(args) {
			return strings.TrimSpace(args[i+1])
		}
		if strings.HasPrefix(arg, "--config=") {
			return strings.TrimSpace(strings.TrimPrefix(arg, "--config="))
		}
	}
	return ""
}

func printHelp() {
	fmt.Printf("discordbuttons v%s - Discord action rows with callback routing\n\n", version)
	fmt.Println("Usage: discordbuttons <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  run                 Connect to Discord and dispatch component interactions")
	fmt.Println("  demo <channel-id>   Connect and post a sample message with buttons and a select menu")
	fmt.Println("  status              Show configuration status")
	fmt.Println("  config              Get, set or check config values")
	fmt.Println("  version             Show version information")
	fmt.Println()
	fmt.Println("Global options:")
	fmt.Println("  --config <path>         Use custom config file")
	fmt.Println("  --debug, -d             Enable debug logging")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  DISCORD_BOT_TOKEN (or BOT_TOKEN)            Bot token")
	fmt.Println("  DISCORD_APPLICATION_ID (or APPLICATION_ID)  Application id")
	fmt.Println("  A .env file in the working directory is loaded when present.")
}

func getConfigPath() string {
	if strings.TrimSpace(globalConfigPathOverride) != "" {
		return globalConfigPathOverride
	}
	if fromEnv := strings.TrimSpace(os.Getenv("DISCORDBUTTONS_CONFIG")); fromEnv != "" {
		return fromEnv
	}
	return filepath.Join(config.GetConfigDir(), "config.json")
}

func loadConfig() (*config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}
	cfg, err := config.LoadConfig(getConfigPath())
	if err != nil {
		return nil, err
	}
	configureLogging(cfg)
	return cfg, nil
}

// loadValidConfig is loadConfig plus Validate, joining every problem into one error.
func loadValidConfig() (*config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if errs := config.Validate(cfg); len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}

func configureLogging(cfg *config.Config) {
	if !config.IsDebugMode() {
		if level, ok := logger.ParseLevel(cfg.Logging.Level); ok {
			logger.SetLevel(level)
		}
	}

	if !cfg.Logging.Enabled {
		logger.DisableFileLogging()
		return
	}

	logFile := cfg.LogFilePath()
	if err := logger.EnableFileLoggingWithRotation(logFile, cfg.Logging.MaxSizeMB, cfg.Logging.RetentionDays); err != nil {
		fmt.Printf("Warning: failed to enable file logging: %v\n", err)
	}
}
