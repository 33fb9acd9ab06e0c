package config

import (
	"log"

	"github.com/caarlos0/env/v6"
)

type LLMProvider string

const (
	ProviderOpenAI LLMProvider = "openai"
	ProviderYandex LLMProvider = "yandex"
)

type Config struct {
	// LLM settings
	Provider         LLMProvider `env:"LLM_PROVIDER" envDefault:"openai"`
	OpenAIAPIKey     string      `env:"OPENAI_API_KEY"`
	OpenAIOrgID      string      `env:"OPENAI_ORG_ID"`
	OpenAIBaseURL    string      `env:"OPENAI_BASE_URL"`
	YandexOAuthToken string      `env:"YANDEX_OAUTH_TOKEN"`
	YandexFolderID   string      `env:"YANDEX_FOLDER_ID"`

	// Models
	AvailableModels []string `env:"AVAILABLE_MODELS" envSeparator:"," envDefault:"gpt-3.5-turbo,gpt-4,gpt-4-turbo-preview"`
	DefaultModel    string   `env:"DEFAULT_MODEL" envDefault:"gpt-3.5-turbo"`
	ImageModel      string   `env:"IMAGE_MODEL" envDefault:"dall-e-3"`

	// Generation limits
	MaxTokens      int     `env:"MAX_TOKENS" envDefault:"1000"`
	Temperature    float64 `env:"TEMPERATURE" envDefault:"0.7"`
	MaxHistory     int     `env:"MAX_HISTORY" envDefault:"50"`
	MaxInputLength int     `env:"MAX_INPUT_LENGTH" envDefault:"2000"`

	// Image generation
	ImageSize        string `env:"IMAGE_SIZE" envDefault:"1024x1024"`
	ImageQuality     string `env:"IMAGE_QUALITY" envDefault:"standard"`
	ImagesPerRequest int    `env:"IMAGES_PER_REQUEST" envDefault:"1"`

	// Heuristics; empty lists fall back to the package defaults
	ImageIntentPhrases []string `env:"IMAGE_INTENT_PHRASES" envSeparator:","`
	DisallowedKeywords []string `env:"DISALLOWED_KEYWORDS" envSeparator:","`

	// Prompts
	SystemPromptPath string `env:"SYSTEM_PROMPT_PATH" envDefault:"prompts/system_prompt.txt"`

	// Telegram
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN,required"`
	AdminUserID      int64  `env:"ADMIN_USER"`

	// Storage
	LogFilePath string `env:"LOG_FILE_PATH" envDefault:"logs/turns.jsonl"`

	// Optional HTTP inspection endpoint, e.g. ":8090". Empty disables it.
	StatsAddr string `env:"STATS_ADDR"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}

func (c *Config) IsModelAvailable(model string) bool {
	for _, m := range c.AvailableModels {
		if m == model {
			return true
		}
	}
	return false
}
