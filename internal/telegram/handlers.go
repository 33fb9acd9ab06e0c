package telegram

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"study-buddy/internal/analytics"
	"study-buddy/internal/guard"
	"study-buddy/internal/llm"
	"study-buddy/internal/storage"
	"study-buddy/internal/topics"
)

const welcomeText = `Hi! I'm your Study Buddy, an educational assistant.

Ask me about Math, Science, History, English and more. I can also create
images: try "Draw a picture of the water cycle".

Commands:
/subjects - what I can help with
/examples - questions to try
/model - choose the AI model
/clear - start a fresh conversation
/stats - conversation statistics`

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	switch msg.Command() {
	case "start", "help":
		b.sendMessage(chatID, welcomeText)
	case "subjects":
		b.sendMessage(chatID, "I can help with:\n- "+strings.Join(topics.Subjects, "\n- "))
	case "examples":
		text := "Try asking:\n- " + strings.Join(topics.TextExamples, "\n- ") +
			"\n\nOr request an image:\n- " + strings.Join(topics.ImageExamples, "\n- ")
		b.sendMessage(chatID, text)
	case "model":
		b.sendModelKeyboard(chatID)
	case "clear":
		b.session(chatID).Clear()
		b.sendMessage(chatID, "Conversation cleared. Let's start fresh!")
	case "stats":
		b.sendMessage(chatID, b.formatStats(chatID))
	default:
		b.sendMessage(chatID, "Unknown command. Try /help.")
	}
}

func (b *Bot) handleIncomingMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	log.Printf("incoming message from chat %d: %q", chatID, msg.Text)

	store := b.session(chatID)
	resp, err := b.assistant.HandleTurn(ctx, store, msg.Text)
	if err != nil {
		var verr *guard.ValidationError
		if errors.As(err, &verr) {
			b.sendMessage(chatID, verr.Reason)
			return
		}
		log.Printf("turn failed: %v", err)
		b.sendMessage(chatID, "Something went wrong. Please try again.")
		return
	}

	b.recordTurn(chatID, msg.Text, resp)

	switch resp.Kind {
	case llm.KindImage:
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(resp.URL))
		photo.Caption = resp.Text
		if _, err := b.s.Send(photo); err != nil {
			log.Printf("failed to send photo: %v", err)
			b.sendMessage(chatID, resp.Text+"\n"+resp.URL)
		}
	case llm.KindText, llm.KindError:
		b.sendReply(chatID, resp.Text)
	}
}

func (b *Bot) handleCallback(cb *tgbotapi.CallbackQuery) {
	chatID := cb.Message.Chat.ID
	switch {
	case cb.Data == clearCmd:
		b.session(chatID).Clear()
		b.sendMessage(chatID, "Conversation cleared.")
	case strings.HasPrefix(cb.Data, modelCmdPrefix):
		model := strings.TrimPrefix(cb.Data, modelCmdPrefix)
		if !b.isModelAvailable(model) {
			b.sendMessage(chatID, "That model is not available.")
			return
		}
		b.session(chatID).SetModel(model)
		b.sendMessage(chatID, "Model switched to "+model)
	}
}

// sendReply attaches the clear-conversation button to normal replies.
func (b *Bot) sendReply(chatID int64, text string) {
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Clear conversation", clearCmd),
		),
	)
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := b.s.Send(msg); err != nil {
		log.Printf("failed to send message: %v", err)
	}
}

func (b *Bot) sendModelKeyboard(chatID int64) {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, m := range b.availableModels {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(m, modelCmdPrefix+m),
		))
	}
	msg := tgbotapi.NewMessage(chatID, "Choose a model:")
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	if _, err := b.s.Send(msg); err != nil {
		log.Printf("failed to send model keyboard: %v", err)
	}
}

func (b *Bot) formatStats(chatID int64) string {
	st := b.session(chatID).Statistics()
	return fmt.Sprintf(
		"Conversation statistics:\n- Total messages: %d\n- Your messages: %d\n- My replies: %d\n- Current model: %s",
		st.TotalMessages, st.UserMessages, st.AssistantMessages, st.Model,
	)
}

func (b *Bot) isModelAvailable(model string) bool {
	for _, m := range b.availableModels {
		if m == model {
			return true
		}
	}
	return false
}

func analyzeToday(events []storage.Event) string {
	return analytics.AnalyzeDailyLogs(events, time.Now().UTC()).Summary()
}
