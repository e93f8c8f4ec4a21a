package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	sharederrors "github.com/aboutmisha/flight-deals-bot/internal/shared/errors"
)

func TestLoad_MissingAviasalesToken(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("AVIASALES_TOKEN", "")

	_, err := Load()
	if !errors.Is(err, sharederrors.ErrMissingAviasalesToken) {
		t.Fatalf("err = %v, want ErrMissingAviasalesToken", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("AVIASALES_TOKEN", "tok")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.AviasalesAPIURL != "https://api.travelpayouts.com/aviasales/v3/prices_for_dates" {
		t.Errorf("AviasalesAPIURL = %q", cfg.AviasalesAPIURL)
	}
	if cfg.TelegramAPIURL != "https://api.telegram.org" {
		t.Errorf("TelegramAPIURL = %q", cfg.TelegramAPIURL)
	}
	if cfg.StoragePath != "./data" {
		t.Errorf("StoragePath = %q", cfg.StoragePath)
	}
	if cfg.AppEnv != AppEnvProduction {
		t.Errorf("AppEnv = %v, want production", cfg.AppEnv)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("AVIASALES_TOKEN", "tok")
	t.Setenv("TELEGRAM_BOT_TOKEN", "bot-token")
	t.Setenv("ADMIN_CHAT_ID", "12345")
	t.Setenv("APP_ENV", "local")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.TelegramBotToken != "bot-token" {
		t.Errorf("TelegramBotToken = %q", cfg.TelegramBotToken)
	}
	if cfg.AdminChatID != "12345" {
		t.Errorf("AdminChatID = %q", cfg.AdminChatID)
	}
	if cfg.AppEnv != AppEnvLocal {
		t.Errorf("AppEnv = %v, want local", cfg.AppEnv)
	}
}

func TestLoad_LegacyChatIDAlias(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("AVIASALES_TOKEN", "tok")
	t.Setenv("ADMIN_CHAT_ID", "")
	t.Setenv("TELEGRAM_CHAT_ID", "777")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.AdminChatID != "777" {
		t.Errorf("AdminChatID = %q, want legacy telegram_chat_id value", cfg.AdminChatID)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte("aviasales_token: file-token\nadmin_chat_id: 42\nfeed_path: ./deals.xml\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.AviasalesToken != "file-token" {
		t.Errorf("AviasalesToken = %q", cfg.AviasalesToken)
	}
	// Numeric ids from config files are normalized to strings.
	if cfg.AdminChatID != "42" {
		t.Errorf("AdminChatID = %q, want \"42\"", cfg.AdminChatID)
	}
	if cfg.FeedPath != "./deals.xml" {
		t.Errorf("FeedPath = %q", cfg.FeedPath)
	}
}

func TestLoad_InvalidAppEnvFallsBack(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("AVIASALES_TOKEN", "tok")
	t.Setenv("APP_ENV", "staging")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.AppEnv != AppEnvProduction {
		t.Errorf("AppEnv = %v, want fallback to production", cfg.AppEnv)
	}
}
