package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/aboutmisha/flight-deals-bot/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

type Config struct {
	AviasalesToken   string `koanf:"aviasales_token"`
	AviasalesAPIURL  string `koanf:"aviasales_api_url"`
	TelegramBotToken string `koanf:"telegram_bot_token"`
	TelegramAPIURL   string `koanf:"telegram_api_url"`
	AdminChatID      string `koanf:"admin_chat_id"`
	GistID           string `koanf:"gist_id"`
	GHToken          string `koanf:"gh_token"`
	StoragePath      string `koanf:"storage_path"`
	FeedPath         string `koanf:"feed_path"`
	HTTPPort         string `koanf:"http_port"`
	AppEnv           AppEnv `koanf:"app_env"`
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try to load config file from various formats
	configFiles := []string{
		"config.yaml",
		"config.yml",
		"config.json",
		"config.toml",
	}

	// Use lo.Find to find the first existing config file
	configFile, found := lo.Find(configFiles, func(file string) bool {
		_, err := os.Stat(file)
		return err == nil
	})

	if found {
		var parser koanf.Parser
		ext := filepath.Ext(configFile)

		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		case ".toml":
			parser = toml.Parser()
		default:
			return nil, oops.Errorf("unsupported config file extension: %s", ext)
		}

		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, oops.With("config_file", configFile).Wrap(err)
		}
	}

	// Load environment variables (they override config file values)
	if err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil); err != nil {
		return nil, oops.With("context", "loading environment variables").Wrap(err)
	}

	// Set defaults
	if !k.Exists("aviasales_api_url") {
		k.Set("aviasales_api_url", "https://api.travelpayouts.com/aviasales/v3/prices_for_dates")
	}
	if !k.Exists("telegram_api_url") {
		k.Set("telegram_api_url", "https://api.telegram.org")
	}
	if !k.Exists("storage_path") {
		k.Set("storage_path", "./data")
	}
	if !k.Exists("app_env") {
		k.Set("app_env", "production")
	}
	if !k.Exists("http_port") {
		k.Set("http_port", "8080")
	}

	// Unmarshal into struct
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.With("context", "unmarshaling config").Wrap(err)
	}

	// Chat ids may arrive as numbers from a JSON config file
	cfg.AdminChatID = strings.TrimSpace(k.String("admin_chat_id"))

	// Legacy: treat telegram_chat_id as admin_chat_id
	if cfg.AdminChatID == "" {
		cfg.AdminChatID = strings.TrimSpace(k.String("telegram_chat_id"))
	}

	// Parse AppEnv from string if needed
	if appEnvStr := k.String("app_env"); appEnvStr != "" {
		if env, err := ParseAppEnv(appEnvStr); err == nil {
			cfg.AppEnv = env
		} else {
			cfg.AppEnv = AppEnvProduction
		}
	} else {
		cfg.AppEnv = AppEnvProduction
	}

	// Validate required fields
	if cfg.AviasalesToken == "" {
		return nil, errors.ErrMissingAviasalesToken
	}

	return &cfg, nil
}
