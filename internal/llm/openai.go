package llm

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

type OpenAIClient struct {
	client      *openai.Client
	maxTokens   int
	temperature float32

	imageModel  string
	imageSize   string
	imageQual   string
	imagesPerRq int
}

type OpenAIOptions struct {
	APIKey           string
	OrgID            string
	BaseURL          string
	MaxTokens        int
	Temperature      float64
	ImageModel       string
	ImageSize        string
	ImageQuality     string
	ImagesPerRequest int
}

func NewOpenAI(opts OpenAIOptions) *OpenAIClient {
	config := openai.DefaultConfig(opts.APIKey)
	if opts.OrgID != "" {
		config.OrgID = opts.OrgID
	}
	if opts.BaseURL != "" {
		config.BaseURL = opts.BaseURL
	}
	return &OpenAIClient{
		client:      openai.NewClientWithConfig(config),
		maxTokens:   opts.MaxTokens,
		temperature: float32(opts.Temperature),
		imageModel:  opts.ImageModel,
		imageSize:   opts.ImageSize,
		imageQual:   opts.ImageQuality,
		imagesPerRq: opts.ImagesPerRequest,
	}
}

func (c *OpenAIClient) Generate(ctx context.Context, messages []Message, model string) (string, error) {
	var oaMsgs []openai.ChatCompletionMessage
	for _, m := range messages {
		oaMsgs = append(oaMsgs, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Messages:    oaMsgs,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIClient) CreateImage(ctx context.Context, prompt string) (string, error) {
	n := c.imagesPerRq
	if n <= 0 {
		n = 1
	}
	resp, err := c.client.CreateImage(ctx, openai.ImageRequest{
		Model:          c.imageModel,
		Prompt:         prompt,
		Size:           c.imageSize,
		Quality:        c.imageQual,
		N:              n,
		ResponseFormat: openai.CreateImageResponseFormatURL,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create image: %w", err)
	}
	if len(resp.Data) == 0 {
		return "", fmt.Errorf("image generation returned no data")
	}
	return resp.Data[0].URL, nil
}
