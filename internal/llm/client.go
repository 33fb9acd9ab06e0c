package llm

import "context"

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single (role, content) pair submitted to a text provider.
type Message struct {
	Role    string
	Content string
}

// Kind tags the normalized shape of a provider response.
type Kind string

const (
	KindText  Kind = "text"
	KindImage Kind = "image"
	KindError Kind = "error"
)

// Response is the uniform shape every provider call is normalized into,
// success or failure. URL and Prompt are set only for image responses.
type Response struct {
	Kind    Kind
	Text    string
	URL     string
	Prompt  string
	Model   string
	Success bool
}

// Client generates a chat completion for the given conversation context.
type Client interface {
	Generate(ctx context.Context, messages []Message, model string) (string, error)
}

// ImageClient generates a single image and returns its URL.
type ImageClient interface {
	CreateImage(ctx context.Context, prompt string) (string, error)
}
