package llm

import (
	"fmt"
	"strings"

	"study-buddy/internal/config"
)

// Factory creates text clients with consistent logic.
type Factory struct {
	cfg *config.Config
}

func NewFactory(cfg *config.Config) *Factory {
	return &Factory{cfg: cfg}
}

func (f *Factory) CreateClient(provider string) (Client, error) {
	switch strings.ToLower(provider) {
	case string(config.ProviderOpenAI):
		if f.cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("openai api key is not set")
		}
		return f.NewOpenAI(), nil
	case string(config.ProviderYandex):
		return NewYandex(f.cfg.YandexOAuthToken, f.cfg.YandexFolderID)
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", provider)
	}
}

// NewOpenAI builds the OpenAI client from the configuration. It backs both
// text generation (when provider=openai) and all image generation.
func (f *Factory) NewOpenAI() *OpenAIClient {
	return NewOpenAI(OpenAIOptions{
		APIKey:           f.cfg.OpenAIAPIKey,
		OrgID:            f.cfg.OpenAIOrgID,
		BaseURL:          f.cfg.OpenAIBaseURL,
		MaxTokens:        f.cfg.MaxTokens,
		Temperature:      f.cfg.Temperature,
		ImageModel:       f.cfg.ImageModel,
		ImageSize:        f.cfg.ImageSize,
		ImageQuality:     f.cfg.ImageQuality,
		ImagesPerRequest: f.cfg.ImagesPerRequest,
	})
}
