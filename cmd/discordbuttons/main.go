// discordbuttons - action row components with callback routing for Discord bots
// License: MIT

package main

import (
	"fmt"
	"os"

	"discordbuttons/pkg/config"
	"discordbuttons/pkg/logger"
)

const version = "0.1.0"

var globalConfigPathOverride string

func main() {
	globalConfigPathOverride = detectConfigPathFromArgs(os.Args)

	for _, arg := range os.Args {
		if arg == "--debug" || arg == "-d" {
			config.SetDebugMode(true)
			logger.SetLevel(logger.DEBUG)
			break
		}
	}

	os.Args = normalizeCLIArgs(os.Args)

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "run":
		runCmd()
	case "demo":
		demoCmd()
	case "status":
		statusCmd()
	case "config":
		configCmd()
	case "version", "--version", "-v":
		fmt.Printf("discordbuttons v%s\n", version)
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printHelp()
		os.Exit(1)
	}
}
