package llm

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// Notifier receives the classified detail of a provider failure. The caller
// only ever sees the generic error response; the notice is a side channel
// (shown once in the chat, or just logged).
type Notifier interface {
	Notify(category Category, notice string)
}

// Service is the provider gateway. It normalizes every outcome, success or
// failure, into a Response; errors never propagate past this boundary.
// A nil text or image client means that path was never established and
// short-circuits to an error response without any network I/O.
type Service struct {
	text         Client
	image        ImageClient
	systemPrompt string
	notifier     Notifier
}

func NewService(text Client, image ImageClient, systemPrompt string, notifier Notifier) *Service {
	return &Service{
		text:         text,
		image:        image,
		systemPrompt: systemPrompt,
		notifier:     notifier,
	}
}

// IsAvailable reports whether the text generation path is established.
func (s *Service) IsAvailable() bool { return s.text != nil }

// SetNotifier installs the side-channel for classified failure notices.
// The bot is constructed after the gateway, so it registers itself here.
func (s *Service) SetNotifier(n Notifier) { s.notifier = n }

// GenerateTextResponse prepends the system prompt to the conversation
// context and asks the text provider for a completion.
func (s *Service) GenerateTextResponse(ctx context.Context, convo []Message, model string) Response {
	if s.text == nil {
		return s.unavailable(model)
	}

	messages := make([]Message, 0, len(convo)+1)
	if s.systemPrompt != "" {
		messages = append(messages, Message{Role: RoleSystem, Content: s.systemPrompt})
	}
	messages = append(messages, convo...)

	content, err := s.text.Generate(ctx, messages, model)
	if err != nil {
		return s.failure(err, model)
	}

	return Response{
		Kind:    KindText,
		Text:    strings.TrimSpace(content),
		Model:   model,
		Success: true,
	}
}

// GenerateImageResponse cleans the raw prompt and asks the image provider
// for a single image.
func (s *Service) GenerateImageResponse(ctx context.Context, rawPrompt string) Response {
	if s.image == nil {
		return s.unavailable("")
	}

	cleaned := CleanImagePrompt(rawPrompt)
	url, err := s.image.CreateImage(ctx, cleaned)
	if err != nil {
		return s.failure(err, "")
	}

	return Response{
		Kind:    KindImage,
		URL:     url,
		Prompt:  cleaned,
		Text:    fmt.Sprintf("I've created an image based on your request: '%s'", cleaned),
		Success: true,
	}
}

func (s *Service) unavailable(model string) Response {
	return Response{
		Kind:    KindError,
		Text:    unavailableErrorText,
		Model:   model,
		Success: false,
	}
}

func (s *Service) failure(err error, model string) Response {
	category, notice := ClassifyError(err)
	log.Printf("provider call failed [%s]: %v", category, err)
	if s.notifier != nil {
		s.notifier.Notify(category, notice)
	}
	return Response{
		Kind:    KindError,
		Text:    genericErrorText,
		Model:   model,
		Success: false,
	}
}
