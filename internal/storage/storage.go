package storage

import "time"

// Event records one completed turn for observability. It is not
// conversation state: the in-memory store alone feeds the provider context.
// Events are expected to be appended in chronological order.
type Event struct {
	Timestamp         time.Time `json:"timestamp"`
	ChatID            int64     `json:"chat_id"`
	UserMessage       string    `json:"user_message"`
	ResponseKind      string    `json:"response_kind"`
	AssistantResponse string    `json:"assistant_response"`
	ImageURL          string    `json:"image_url,omitempty"`
	Model             string    `json:"model,omitempty"`
}

// Recorder abstracts persistence of turn events.
// Implementations must be safe for concurrent use.
type Recorder interface {
	AppendTurn(event Event) error
	LoadTurns() ([]Event, error)
}
