package history

import (
	"sync"

	"study-buddy/internal/llm"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Content is the message payload. Exactly three variants exist: Text, Image
// and Error. Consumers switch on the concrete type.
type Content interface {
	isContent()
	// DisplayText is the human-readable body of the message.
	DisplayText() string
}

type Text struct {
	Body string
}

type Image struct {
	URL     string
	Prompt  string
	Caption string
}

type Error struct {
	Notice string
}

func (Text) isContent()  {}
func (Image) isContent() {}
func (Error) isContent() {}

func (t Text) DisplayText() string  { return t.Body }
func (i Image) DisplayText() string { return i.Caption }
func (e Error) DisplayText() string { return e.Notice }

// Message is immutable once stored.
type Message struct {
	Role    Role
	Content Content
}

// Statistics is a read-only snapshot of the conversation.
// ConversationCount is the running number of appends this session,
// unaffected by trimming; TotalMessages is what is currently stored.
type Statistics struct {
	TotalMessages     int
	UserMessages      int
	AssistantMessages int
	ConversationCount int
	Model             string
	LastResponseKind  llm.Kind
}

// Store owns one bounded conversation. When an append pushes the sequence
// past maxHistory, the first two messages are kept (they anchor the initial
// context) along with the most recent maxHistory-2; middle history is
// dropped silently.
type Store struct {
	mu         sync.RWMutex
	messages   []Message
	count      int
	model      string
	lastKind   llm.Kind
	maxHistory int
}

func NewStore(maxHistory int, model string) *Store {
	return &Store{maxHistory: maxHistory, model: model}
}

func (s *Store) AppendUser(text string) {
	s.append(Message{Role: RoleUser, Content: Text{Body: text}})
}

func (s *Store) AppendAssistant(content Content) {
	s.append(Message{Role: RoleAssistant, Content: content})
}

func (s *Store) append(msg Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
	s.count++
	if msg.Role == RoleAssistant {
		s.lastKind = contentKind(msg.Content)
	}
	if s.maxHistory > 2 && len(s.messages) > s.maxHistory {
		trimmed := make([]Message, 0, s.maxHistory)
		trimmed = append(trimmed, s.messages[:2]...)
		trimmed = append(trimmed, s.messages[len(s.messages)-(s.maxHistory-2):]...)
		s.messages = trimmed
	}
}

// Clear resets the sequence and counters. The model selection survives.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
	s.count = 0
	s.lastKind = ""
}

// Messages returns a copy of the stored sequence for rendering.
func (s *Store) Messages() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// APIContext produces the conversation context for the text provider.
// Image and error messages are excluded: they do not aid future completions
// and may exceed provider input expectations.
func (s *Store) APIContext() []llm.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []llm.Message
	for _, m := range s.messages {
		switch c := m.Content.(type) {
		case Text:
			out = append(out, llm.Message{Role: string(m.Role), Content: c.Body})
		case Image, Error:
			// skipped
		}
	}
	return out
}

func (s *Store) Statistics() Statistics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := Statistics{
		TotalMessages:     len(s.messages),
		ConversationCount: s.count,
		Model:             s.model,
		LastResponseKind:  s.lastKind,
	}
	for _, m := range s.messages {
		switch m.Role {
		case RoleUser:
			st.UserMessages++
		case RoleAssistant:
			st.AssistantMessages++
		}
	}
	return st
}

func (s *Store) Model() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.model
}

func (s *Store) SetModel(model string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.model = model
}

// FromResponse converts a normalized provider response into message content.
func FromResponse(resp llm.Response) Content {
	switch resp.Kind {
	case llm.KindText:
		return Text{Body: resp.Text}
	case llm.KindImage:
		return Image{URL: resp.URL, Prompt: resp.Prompt, Caption: resp.Text}
	default:
		return Error{Notice: resp.Text}
	}
}

func contentKind(c Content) llm.Kind {
	switch c.(type) {
	case Text:
		return llm.KindText
	case Image:
		return llm.KindImage
	default:
		return llm.KindError
	}
}
