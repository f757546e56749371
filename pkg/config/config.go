package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Discord DiscordConfig `json:"discord"`
	Gateway GatewayConfig `json:"gateway"`
	Logging LoggingConfig `json:"logging"`
}

type DiscordConfig struct {
	BotToken      string `json:"bot_token" env:"DISCORD_BOT_TOKEN"`
	ApplicationID string `json:"application_id" env:"DISCORD_APPLICATION_ID"`
}

// GatewayConfig controls the local health listener, not the Discord gateway.
type GatewayConfig struct {
	Enabled bool   `json:"enabled" env:"DISCORDBUTTONS_GATEWAY_ENABLED"`
	Host    string `json:"host" env:"DISCORDBUTTONS_GATEWAY_HOST"`
	Port    int    `json:"port" env:"DISCORDBUTTONS_GATEWAY_PORT"`
}

type LoggingConfig struct {
	Enabled       bool   `json:"enabled" env:"DISCORDBUTTONS_LOGGING_ENABLED"`
	Level         string `json:"level" env:"DISCORDBUTTONS_LOGGING_LEVEL"`
	Dir           string `json:"dir" env:"DISCORDBUTTONS_LOGGING_DIR"`
	Filename      string `json:"filename" env:"DISCORDBUTTONS_LOGGING_FILENAME"`
	MaxSizeMB     int    `json:"max_size_mb" env:"DISCORDBUTTONS_LOGGING_MAX_SIZE_MB"`
	RetentionDays int    `json:"retention_days" env:"DISCORDBUTTONS_LOGGING_RETENTION_DAYS"`
}

// Unprefixed names accepted for the two Discord credentials.
const (
	legacyBotTokenEnv      = "BOT_TOKEN"
	legacyApplicationIDEnv = "APPLICATION_ID"
)

var (
	isDebug bool
	muDebug sync.RWMutex
)

func SetDebugMode(debug bool) {
	muDebug.Lock()
	defer muDebug.Unlock()
	isDebug = debug
}

func IsDebugMode() bool {
	muDebug.RLock()
	defer muDebug.RUnlock()
	return isDebug
}

func GetConfigDir() string {
	if IsDebugMode() {
		return ".discordbuttons"
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".discordbuttons")
}

func DefaultConfig() *Config {
	configDir := GetConfigDir()
	return &Config{
		Gateway: GatewayConfig{
			Enabled: false,
			Host:    "127.0.0.1",
			Port:    18791,
		},
		Logging: LoggingConfig{
			Enabled:       false,
			Level:         "info",
			Dir:           filepath.Join(configDir, "logs"),
			Filename:      "discordbuttons.log",
			MaxSizeMB:     20,
			RetentionDays: 3,
		},
	}
}

// LoadDotEnv loads KEY=VALUE pairs from the given files (".env" when none are
// given) without overriding variables already present in the environment.
// Missing files are not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// LoadConfig reads the JSON file at path on top of DefaultConfig and then
// overlays environment variables. A missing file leaves the defaults in place.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := unmarshalConfigStrict(data, cfg); err != nil {
			return nil, err
		}
	case os.IsNotExist(err):
	default:
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	applyLegacyEnv(cfg)

	return cfg, nil
}

func applyLegacyEnv(cfg *Config) {
	if cfg.Discord.BotToken == "" {
		cfg.Discord.BotToken = strings.TrimSpace(os.Getenv(legacyBotTokenEnv))
	}
	if cfg.Discord.ApplicationID == "" {
		cfg.Discord.ApplicationID = strings.TrimSpace(os.Getenv(legacyApplicationIDEnv))
	}
}

// DecodeConfig strictly decodes a config file body over the defaults without
// applying environment overrides.
func DecodeConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := unmarshalConfigStrict(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func unmarshalConfigStrict(data []byte, cfg *Config) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return err
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); err != io.EOF {
		if err == nil {
			return fmt.Errorf("invalid config: trailing JSON content")
		}
		return err
	}
	return nil
}

func SaveConfig(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

func (c *Config) LogFilePath() string {
	dir := expandHome(c.Logging.Dir)
	filename := c.Logging.Filename
	if filename == "" {
		filename = "discordbuttons.log"
	}
	return filepath.Join(dir, filename)
}

func (c *Config) GatewayAddr() string {
	return fmt.Sprintf("%s:%d", c.Gateway.Host, c.Gateway.Port)
}

func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, _ := os.UserHomeDir()
	if len(path) > 1 && path[1] == '/' {
		return home + path[1:]
	}
	return home
}
