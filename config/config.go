package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Bot specifics
	Telegram TelegramConfig
	Corpus   CorpusConfig

	// External services
	Gemini    GeminiConfig
	Translate TranslateConfig
	Speech    SpeechConfig
	Wiki      WikiConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
}

type CorpusConfig struct {
	// Path to the plain-text corpus loaded at boot; empty skips the boot load.
	Path string
	// Similarity acceptance threshold for retrieval.
	Threshold float64
}

type GeminiConfig struct {
	APIKey string
}

type TranslateConfig struct {
	APIKey string
}

type SpeechConfig struct {
	APIKey string
}

type WikiConfig struct {
	// Wikipedia language edition used for /wiki lookups.
	Language string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Telegram
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}
	if tgWebhook := viper.GetString("telegram_webhook_url"); tgWebhook != "" {
		cfg.Telegram.WebhookURL = tgWebhook
	}

	// Corpus
	cfg.Corpus.Path = viper.GetString("corpus.path")
	cfg.Corpus.Threshold = viper.GetFloat64("corpus.threshold")

	// External services
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}
	cfg.Translate.APIKey = viper.GetString("translate.api_key")
	if translateKey := viper.GetString("translate_api_key"); translateKey != "" {
		cfg.Translate.APIKey = translateKey
	}
	cfg.Speech.APIKey = viper.GetString("speech.api_key")
	if speechKey := viper.GetString("speech_api_key"); speechKey != "" {
		cfg.Speech.APIKey = speechKey
	}
	cfg.Wiki.Language = viper.GetString("wiki.language")

	return cfg, nil
}

// RequireTelegram validates the fields only the webhook server needs. The
// local console runs without them.
func (c *Config) RequireTelegram() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram bot token is required - set telegram.bot_token or TELEGRAM_BOT_TOKEN")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("corpus.path", "data/corpus.txt")
	viper.SetDefault("corpus.threshold", 0.1)
	viper.SetDefault("wiki.language", "pt")
}
