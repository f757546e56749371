package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigRejectsUnknownField(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), "config.json")
	content := `{
  "discord": {
    "bot_token": "token",
    "unknown_field": 1
  }
}`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := LoadConfig(cfgPath)
	if err == nil {
		t.Fatalf("expected unknown field error")
	}
	if !strings.Contains(strings.ToLower(err.Error()), "unknown field") {
		t.Fatalf("expected unknown field error, got: %v", err)
	}
}

func TestLoadConfigRejectsTrailingJSONContent(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), "config.json")
	content := `{"discord":{"bot_token":"token"}}{"extra":true}`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := LoadConfig(cfgPath)
	if err == nil {
		t.Fatalf("expected trailing json content error")
	}
	if !strings.Contains(err.Error(), "trailing JSON content") {
		t.Fatalf("expected trailing JSON content error, got: %v", err)
	}
}

func TestLoadConfigReadsFileValues(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), "config.json")
	content := `{
  "discord": {"bot_token": "file-token", "application_id": "42"},
  "gateway": {"enabled": true, "port": 9000}
}`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Discord.BotToken != "file-token" || cfg.Discord.ApplicationID != "42" {
		t.Fatalf("discord config mismatch: %+v", cfg.Discord)
	}
	if !cfg.Gateway.Enabled || cfg.Gateway.Port != 9000 {
		t.Fatalf("gateway config mismatch: %+v", cfg.Gateway)
	}
	if cfg.Gateway.Host != "127.0.0.1" {
		t.Fatalf("default gateway host lost: %q", cfg.Gateway.Host)
	}
}

func TestLoadConfigMissingFileUsesEnvironment(t *testing.T) {
	t.Setenv("DISCORD_BOT_TOKEN", "env-token")
	t.Setenv("DISCORD_APPLICATION_ID", "app-1")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Discord.BotToken != "env-token" {
		t.Fatalf("bot token mismatch: %q", cfg.Discord.BotToken)
	}
	if cfg.Discord.ApplicationID != "app-1" {
		t.Fatalf("application id mismatch: %q", cfg.Discord.ApplicationID)
	}
}

func TestLoadConfigAcceptsUnprefixedCredentials(t *testing.T) {
	t.Setenv("DISCORD_BOT_TOKEN", "")
	t.Setenv("DISCORD_APPLICATION_ID", "")
	t.Setenv("BOT_TOKEN", "plain-token")
	t.Setenv("APPLICATION_ID", "plain-app")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Discord.BotToken != "plain-token" || cfg.Discord.ApplicationID != "plain-app" {
		t.Fatalf("credentials mismatch: %+v", cfg.Discord)
	}
}

func TestLoadConfigEnvironmentOverridesFile(t *testing.T) {
	t.Setenv("DISCORD_BOT_TOKEN", "env-token")

	cfgPath := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(cfgPath, []byte(`{"discord":{"bot_token":"file-token"}}`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Discord.BotToken != "env-token" {
		t.Fatalf("expected environment to win, got %q", cfg.Discord.BotToken)
	}
}

func TestLoadDotEnvDoesNotOverrideEnvironment(t *testing.T) {
	t.Setenv("DISCORD_BOT_TOKEN", "already-set")
	t.Setenv("DISCORD_APPLICATION_ID", "")
	os.Unsetenv("DISCORD_APPLICATION_ID")

	envPath := filepath.Join(t.TempDir(), ".env")
	content := "DISCORD_BOT_TOKEN=from-dotenv\nDISCORD_APPLICATION_ID=dotenv-app\n"
	if err := os.WriteFile(envPath, []byte(content), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	if err := LoadDotEnv(envPath); err != nil {
		t.Fatalf("load .env: %v", err)
	}
	if got := os.Getenv("DISCORD_BOT_TOKEN"); got != "already-set" {
		t.Fatalf("existing variable overridden: %q", got)
	}
	if got := os.Getenv("DISCORD_APPLICATION_ID"); got != "dotenv-app" {
		t.Fatalf("dotenv variable not loaded: %q", got)
	}
}

func TestLoadDotEnvIgnoresMissingFile(t *testing.T) {
	t.Parallel()

	if err := LoadDotEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Fatalf("expected missing .env to be ignored, got %v", err)
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg := DefaultConfig()
	cfg.Discord.ApplicationID = "saved-app"
	if err := SaveConfig(cfgPath, cfg); err != nil {
		t.Fatalf("save config: %v", err)
	}

	data, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read saved config: %v", err)
	}
	if !strings.Contains(string(data), `"application_id": "saved-app"`) {
		t.Fatalf("saved config missing application id: %s", data)
	}
}
