package config

import (
	"fmt"
	"strings"

	"discordbuttons/pkg/logger"
)

// Validate returns configuration problems found in cfg.
// It does not mutate cfg.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{fmt.Errorf("config is nil")}
	}

	var errs []error

	if strings.TrimSpace(cfg.Discord.BotToken) == "" {
		errs = append(errs, fmt.Errorf("discord.bot_token is required (DISCORD_BOT_TOKEN or BOT_TOKEN)"))
	}
	if strings.TrimSpace(cfg.Discord.ApplicationID) == "" {
		errs = append(errs, fmt.Errorf("discord.application_id is required (DISCORD_APPLICATION_ID or APPLICATION_ID)"))
	}

	if cfg.Gateway.Enabled {
		if cfg.Gateway.Port <= 0 || cfg.Gateway.Port > 65535 {
			errs = append(errs, fmt.Errorf("gateway.port must be in 1..65535"))
		}
	}

	if cfg.Logging.Level != "" {
		if _, ok := logger.ParseLevel(cfg.Logging.Level); !ok {
			errs = append(errs, fmt.Errorf("logging.level must be one of: debug, info, warn, error, fatal"))
		}
	}
	if cfg.Logging.Enabled {
		if cfg.Logging.Dir == "" {
			errs = append(errs, fmt.Errorf("logging.dir is required when logging.enabled=true"))
		}
		if cfg.Logging.Filename == "" {
			errs = append(errs, fmt.Errorf("logging.filename is required when logging.enabled=true"))
		}
		if cfg.Logging.MaxSizeMB <= 0 {
			errs = append(errs, fmt.Errorf("logging.max_size_mb must be > 0"))
		}
		if cfg.Logging.RetentionDays <= 0 {
			errs = append(errs, fmt.Errorf("logging.retention_days must be > 0"))
		}
	}

	return errs
}
