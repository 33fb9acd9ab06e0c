package telegram

import (
	"context"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"study-buddy/internal/assistant"
	"study-buddy/internal/guard"
	"study-buddy/internal/history"
	"study-buddy/internal/intent"
	"study-buddy/internal/llm"
)

type fakeSender struct {
	sent   []string
	photos []string
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	switch m := c.(type) {
	case tgbotapi.MessageConfig:
		f.sent = append(f.sent, m.Text)
	case tgbotapi.PhotoConfig:
		f.photos = append(f.photos, m.Caption)
	}
	return tgbotapi.Message{}, nil
}

type fakeTextClient struct{ content string }

func (f fakeTextClient) Generate(ctx context.Context, messages []llm.Message, model string) (string, error) {
	return f.content, nil
}

type fakeImageClient struct{ url string }

func (f fakeImageClient) CreateImage(ctx context.Context, prompt string) (string, error) {
	return f.url, nil
}

func newTestBot(fs *fakeSender, text llm.Client, image llm.ImageClient) *Bot {
	asst := assistant.New(
		guard.New(2000, nil),
		intent.New(nil),
		llm.NewService(text, image, "persona", nil),
	)
	return &Bot{
		s:               fs,
		assistant:       asst,
		availableModels: []string{"gpt-3.5-turbo", "gpt-4"},
		defaultModel:    "gpt-3.5-turbo",
		maxHistory:      50,
		sessions:        make(map[int64]*history.Store),
	}
}

func commandMessage(chatID int64, text string) *tgbotapi.Message {
	cmdLen := len(text)
	if i := strings.Index(text, " "); i > 0 {
		cmdLen = i
	}
	return &tgbotapi.Message{
		Chat:     &tgbotapi.Chat{ID: chatID},
		Text:     text,
		Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: cmdLen}},
	}
}

func TestTextMessageFlow(t *testing.T) {
	fs := &fakeSender{}
	b := newTestBot(fs, fakeTextClient{content: "a² + b² = c²"}, fakeImageClient{})

	msg := &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 100}, Text: "What is the Pythagorean theorem?"}
	b.handleIncomingMessage(context.Background(), msg)

	if len(fs.sent) != 1 || fs.sent[0] != "a² + b² = c²" {
		t.Fatalf("unexpected replies: %+v", fs.sent)
	}

	st := b.session(100).Statistics()
	if st.TotalMessages != 2 {
		t.Fatalf("turn not stored: %+v", st)
	}
}

func TestImageMessageSendsPhoto(t *testing.T) {
	fs := &fakeSender{}
	b := newTestBot(fs, fakeTextClient{}, fakeImageClient{url: "http://x/castle.png"})

	msg := &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 100}, Text: "Draw a picture of a castle"}
	b.handleIncomingMessage(context.Background(), msg)

	if len(fs.photos) != 1 {
		t.Fatalf("expected 1 photo, got %d (texts: %+v)", len(fs.photos), fs.sent)
	}
	if !strings.Contains(fs.photos[0], "'a castle'") {
		t.Fatalf("unexpected caption: %q", fs.photos[0])
	}
}

func TestRejectedInputRepliesWithReason(t *testing.T) {
	fs := &fakeSender{}
	b := newTestBot(fs, fakeTextClient{content: "unused"}, fakeImageClient{})

	msg := &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 100}, Text: "   "}
	b.handleIncomingMessage(context.Background(), msg)

	if len(fs.sent) != 1 || !strings.Contains(fs.sent[0], "message") {
		t.Fatalf("validation reason not sent: %+v", fs.sent)
	}
	if b.session(100).Statistics().TotalMessages != 0 {
		t.Fatalf("rejected input must not be stored")
	}
}

func TestClearCommandKeepsModel(t *testing.T) {
	fs := &fakeSender{}
	b := newTestBot(fs, fakeTextClient{content: "hi"}, fakeImageClient{})

	b.session(100).SetModel("gpt-4")
	b.handleIncomingMessage(context.Background(), &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 100}, Text: "hello"})
	b.handleCommand(commandMessage(100, "/clear"))

	st := b.session(100).Statistics()
	if st.TotalMessages != 0 {
		t.Fatalf("clear did not reset conversation: %+v", st)
	}
	if st.Model != "gpt-4" {
		t.Fatalf("clear must keep the model selection: %q", st.Model)
	}
}

func TestStatsCommand(t *testing.T) {
	fs := &fakeSender{}
	b := newTestBot(fs, fakeTextClient{content: "hi"}, fakeImageClient{})

	b.handleIncomingMessage(context.Background(), &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 100}, Text: "hello"})
	b.handleCommand(commandMessage(100, "/stats"))

	last := fs.sent[len(fs.sent)-1]
	if !strings.Contains(last, "Total messages: 2") || !strings.Contains(last, "gpt-3.5-turbo") {
		t.Fatalf("unexpected stats reply: %q", last)
	}
}

func TestModelCallback(t *testing.T) {
	fs := &fakeSender{}
	b := newTestBot(fs, fakeTextClient{}, fakeImageClient{})

	cb := &tgbotapi.CallbackQuery{
		Data:    modelCmdPrefix + "gpt-4",
		Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 100}},
	}
	b.handleCallback(cb)

	if b.session(100).Model() != "gpt-4" {
		t.Fatalf("model not switched: %q", b.session(100).Model())
	}

	cb.Data = modelCmdPrefix + "not-a-model"
	b.handleCallback(cb)
	if b.session(100).Model() != "gpt-4" {
		t.Fatalf("unavailable model must not be selected")
	}
	if !strings.Contains(fs.sent[len(fs.sent)-1], "not available") {
		t.Fatalf("missing rejection reply: %+v", fs.sent)
	}
}

func TestSubjectsCommand(t *testing.T) {
	fs := &fakeSender{}
	b := newTestBot(fs, fakeTextClient{}, fakeImageClient{})

	b.handleCommand(commandMessage(100, "/subjects"))
	if len(fs.sent) != 1 || !strings.Contains(fs.sent[0], "Mathematics") {
		t.Fatalf("unexpected subjects reply: %+v", fs.sent)
	}
}
