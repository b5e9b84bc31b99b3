package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/3moscas/tgbot/config"
	tgDelivery "github.com/3moscas/tgbot/internal/chat/delivery/telegram"
	"github.com/3moscas/tgbot/internal/chat/usecase"
	"github.com/3moscas/tgbot/internal/httpserver"
	"github.com/3moscas/tgbot/internal/nlp/corpus"
	"github.com/3moscas/tgbot/internal/nlp/language"
	"github.com/3moscas/tgbot/internal/nlp/sentiment"
	"github.com/3moscas/tgbot/pkg/gemini"
	"github.com/3moscas/tgbot/pkg/log"
	"github.com/3moscas/tgbot/pkg/speech"
	"github.com/3moscas/tgbot/pkg/telegram"
	"github.com/3moscas/tgbot/pkg/translate"
	"github.com/3moscas/tgbot/pkg/wiki"
)

func main() {
	// 1. Configuration
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}
	if err := cfg.RequireTelegram(); err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting tgbot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. NLP core
	detector := language.NewDetector()

	var translator sentiment.Translator
	if cfg.Translate.APIKey != "" {
		translateClient, trErr := translate.NewClient(ctx, cfg.Translate.APIKey)
		if trErr != nil {
			logger.Warnf(ctx, "Translate client not available, sentiment runs without pivot: %v", trErr)
		} else {
			translator = translateClient
		}
	} else {
		logger.Warn(ctx, "TRANSLATE_API_KEY missing, sentiment runs without pivot")
	}
	analyzer := sentiment.NewAnalyzer(logger, translator)

	// Boot corpus, optional: /wiki can load one later
	var index *corpus.Index
	if cfg.Corpus.Path != "" {
		raw, readErr := os.ReadFile(cfg.Corpus.Path)
		if readErr != nil {
			logger.Warnf(ctx, "Could not read corpus file %q: %v", cfg.Corpus.Path, readErr)
		} else {
			index, err = corpus.Build(string(raw), detector)
			if err != nil {
				logger.Warnf(ctx, "Could not build boot corpus: %v", err)
				index = nil
			} else {
				logger.Infof(ctx, "Boot corpus loaded: %d sentences", index.Len())
			}
		}
	}

	// 4. Collaborator clients
	telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
	speechClient := speech.NewClient(cfg.Speech.APIKey)
	wikiClient := wiki.NewClient(cfg.Wiki.Language)

	// 5. Chat domain
	chatUC := usecase.New(
		logger,
		detector,
		analyzer,
		geminiClient,
		speechClient,
		telegramBot,
		wikiClient,
		cfg.Corpus.Threshold,
		index,
	)

	telegramHandler := tgDelivery.New(logger, chatUC, telegramBot)

	// Register webhook: auto-detect ngrok or fallback to manual config
	webhookURL := cfg.Telegram.WebhookURL
	if webhookURL == "" {
		ngrokURL, ngrokErr := detectNgrokURL(ctx, "http://ngrok:4040")
		if ngrokErr != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
		} else {
			webhookURL = ngrokURL + "/webhook/telegram"
			logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
		}
	}
	if webhookURL != "" {
		if whErr := telegramBot.SetWebhook(webhookURL); whErr != nil {
			logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
		} else {
			logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
		}
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
