package telegram

import (
	"context"
	"log"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"study-buddy/internal/assistant"
	"study-buddy/internal/history"
	"study-buddy/internal/llm"
	"study-buddy/internal/storage"
)

const (
	clearCmd       = "clear_ctx"
	modelCmdPrefix = "model:"
)

type Bot struct {
	api       *tgbotapi.BotAPI
	s         sender
	assistant *assistant.Assistant
	recorder  storage.Recorder

	availableModels []string
	defaultModel    string
	maxHistory      int
	adminUserID     int64

	mu       sync.Mutex
	sessions map[int64]*history.Store
}

func New(
	botToken string,
	asst *assistant.Assistant,
	recorder storage.Recorder,
	availableModels []string,
	defaultModel string,
	maxHistory int,
	adminUserID int64,
) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:             api,
		s:               botAPISender{api: api},
		assistant:       asst,
		recorder:        recorder,
		availableModels: availableModels,
		defaultModel:    defaultModel,
		maxHistory:      maxHistory,
		adminUserID:     adminUserID,
		sessions:        make(map[int64]*history.Store),
	}, nil
}

func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.Message != nil {
			if update.Message.IsCommand() {
				b.handleCommand(update.Message)
			} else {
				b.handleIncomingMessage(ctx, update.Message)
			}
			continue
		}
		if update.CallbackQuery != nil {
			b.handleCallback(update.CallbackQuery)
			continue
		}
	}
}

// session returns the conversation store owned by the chat, creating it on
// first contact. One store per chat; turns within a chat are sequential.
func (b *Bot) session(chatID int64) *history.Store {
	b.mu.Lock()
	defer b.mu.Unlock()
	st, ok := b.sessions[chatID]
	if !ok {
		st = history.NewStore(b.maxHistory, b.defaultModel)
		b.sessions[chatID] = st
	}
	return st
}

// Notify surfaces the classified detail of a provider failure to the admin
// chat. The user in the failing chat only sees the generic error message.
func (b *Bot) Notify(category llm.Category, notice string) {
	if b.adminUserID == 0 {
		return
	}
	b.sendMessage(b.adminUserID, "provider error ["+string(category)+"]: "+notice)
}

// SendDailyReport delivers today's usage summary to the admin chat.
func (b *Bot) SendDailyReport(ctx context.Context) error {
	if b.recorder == nil || b.adminUserID == 0 {
		return nil
	}
	events, err := b.recorder.LoadTurns()
	if err != nil {
		return err
	}
	stats := analyzeToday(events)
	b.sendMessage(b.adminUserID, stats)
	return nil
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.s.Send(msg); err != nil {
		log.Printf("failed to send message: %v", err)
	}
}

func (b *Bot) recordTurn(chatID int64, input string, resp llm.Response) {
	if b.recorder == nil {
		return
	}
	ev := storage.Event{
		Timestamp:         time.Now().UTC(),
		ChatID:            chatID,
		UserMessage:       input,
		ResponseKind:      string(resp.Kind),
		AssistantResponse: resp.Text,
		ImageURL:          resp.URL,
		Model:             resp.Model,
	}
	if err := b.recorder.AppendTurn(ev); err != nil {
		log.Printf("failed to record turn: %v", err)
	}
}
