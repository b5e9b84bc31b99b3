package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/3moscas/tgbot/config"
	"github.com/3moscas/tgbot/internal/chat/usecase"
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

// Local console for talking to the bot without Telegram. Shares the whole
// chat pipeline with cmd/api; only the transport differs.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// Quiet logger so the TUI stays clean.
	logger := log.Init(log.ZapConfig{
		Level:    "warn",
		Mode:     cfg.Logger.Mode,
		Encoding: "json",
	})

	ctx := context.Background()
	detector := language.NewDetector()

	var translator sentiment.Translator
	if cfg.Translate.APIKey != "" {
		if translateClient, trErr := translate.NewClient(ctx, cfg.Translate.APIKey); trErr == nil {
			translator = translateClient
		}
	}
	analyzer := sentiment.NewAnalyzer(logger, translator)

	var index *corpus.Index
	if cfg.Corpus.Path != "" {
		if raw, readErr := os.ReadFile(cfg.Corpus.Path); readErr == nil {
			index, _ = corpus.Build(string(raw), detector)
		}
	}

	uc := usecase.New(
		logger,
		detector,
		analyzer,
		gemini.NewClient(cfg.Gemini.APIKey),
		speech.NewClient(cfg.Speech.APIKey),
		telegram.NewBot(cfg.Telegram.BotToken),
		wiki.NewClient(cfg.Wiki.Language),
		cfg.Corpus.Threshold,
		index,
	)

	if _, err := tea.NewProgram(newReplModel(uc), tea.WithAltScreen()).Run(); err != nil {
		fmt.Println("Console failed: ", err)
		os.Exit(1)
	}
}
