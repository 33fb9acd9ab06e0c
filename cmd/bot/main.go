package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"study-buddy/internal/api"
	"study-buddy/internal/assistant"
	"study-buddy/internal/config"
	"study-buddy/internal/guard"
	"study-buddy/internal/intent"
	"study-buddy/internal/llm"
	"study-buddy/internal/scheduler"
	"study-buddy/internal/storage"
	"study-buddy/internal/telegram"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()
	if !cfg.IsModelAvailable(cfg.DefaultModel) {
		log.Fatalf("default model %q is not in AVAILABLE_MODELS", cfg.DefaultModel)
	}

	factory := llm.NewFactory(cfg)

	// A missing key leaves the client nil: the gateway then answers every
	// generation request with a service-unavailable error instead of
	// attempting network I/O.
	var textClient llm.Client
	if c, err := factory.CreateClient(string(cfg.Provider)); err != nil {
		log.Printf("text provider not available: %v", err)
	} else {
		textClient = c
	}

	var imageClient llm.ImageClient
	if cfg.OpenAIAPIKey != "" {
		imageClient = factory.NewOpenAI()
	} else {
		log.Printf("image provider not available: openai api key is not set")
	}

	gateway := llm.NewService(textClient, imageClient, readSystemPrompt(cfg.SystemPromptPath), nil)

	asst := assistant.New(
		guard.New(cfg.MaxInputLength, cfg.DisallowedKeywords),
		intent.New(cfg.ImageIntentPhrases),
		gateway,
	)

	var rec storage.Recorder
	if cfg.LogFilePath != "" {
		fr, err := storage.NewFileRecorder(cfg.LogFilePath)
		if err != nil {
			log.Printf("failed to init file recorder: %v", err)
		} else {
			rec = fr
		}
	}

	bot, err := telegram.New(
		cfg.TelegramBotToken,
		asst,
		rec,
		cfg.AvailableModels,
		cfg.DefaultModel,
		cfg.MaxHistory,
		cfg.AdminUserID,
	)
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}
	gateway.SetNotifier(bot)

	sched := scheduler.New()
	sched.SetReportFunction(bot.SendDailyReport)
	if err := sched.Start(); err != nil {
		log.Printf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	if cfg.StatsAddr != "" && rec != nil {
		srv := api.NewServer(cfg.StatsAddr, rec)
		srv.Start()
		defer func() { _ = srv.Shutdown() }()
	}

	bot.Start(context.Background())
}

func readSystemPrompt(path string) string {
	if path == "" {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("system prompt file not found or unreadable at %s: %v", path, err)
		return ""
	}
	return string(data)
}
