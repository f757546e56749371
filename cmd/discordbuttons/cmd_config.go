package main

import (
	"fmt"
	"os"
	"strings"

	"discordbuttons/pkg/config"
	"discordbuttons/pkg/configops"
)

func configCmd() {
	if len(os.Args) < 3 {
		configHelp()
		return
	}

	switch os.Args[2] {
	case "set":
		configSetCmd()
	case "get":
		configGetCmd()
	case "check":
		configCheckCmd()
	default:
		fmt.Printf("Unknown config command: %s\n", os.Args[2])
		configHelp()
	}
}

func configHelp() {
	fmt.Println("\nConfig commands:")
	fmt.Println("  set <path> <value>     Set a config value")
	fmt.Println("  get <path>             Print a config value")
	fmt.Println("  check                  Validate the config, environment included")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  discordbuttons config set discord.token <token>")
	fmt.Println("  discordbuttons config set discord.app_id 123456789012345678")
	fmt.Println("  discordbuttons config set gateway.enable true")
	fmt.Println("  discordbuttons config get logging.level")
}

func configSetCmd() {
	if len(os.Args) < 5 {
		fmt.Println("Usage: discordbuttons config set <path> <value>")
		return
	}

	path := configops.NormalizePath(os.Args[3])
	raw := strings.Join(os.Args[4:], " ")

	value, backupPath, err := configops.Apply(getConfigPath(), path, raw)
	if err != nil {
		fmt.Printf("Error setting %s: %v\n", path, err)
		return
	}
	fmt.Printf("✓ Updated %s = %s\n", path, configops.Display(path, value))
	if backupPath != "" {
		fmt.Printf("  previous config saved to %s\n", backupPath)
	}
}

func configGetCmd() {
	if len(os.Args) < 4 {
		fmt.Println("Usage: discordbuttons config get <path>")
		return
	}

	cfgMap, err := configops.LoadAsMap(getConfigPath())
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		return
	}

	path := configops.NormalizePath(os.Args[3])
	value, ok := configops.GetValue(cfgMap, path)
	if !ok {
		fmt.Printf("Path not found: %s\n", path)
		return
	}
	fmt.Println(configops.Display(path, value))
}

func configCheckCmd() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Printf("Config load failed: %v\n", err)
		return
	}
	validationErrors := config.Validate(cfg)
	if len(validationErrors) == 0 {
		fmt.Println("✓ Config validation passed")
		return
	}

	fmt.Println("✗ Config validation failed:")
	for _, ve := range validationErrors {
		fmt.Printf("  - %v\n", ve)
	}
}
