// Package bot wires the Telegram frontend to the voice pipeline: it
// dispatches incoming updates, answers commands and shields the dispatch
// loop from faults in individual updates.
package bot

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"codeberg.org/snonux/vocabot/internal/billing"
	"codeberg.org/snonux/vocabot/internal/enrich"
	"codeberg.org/snonux/vocabot/internal/transcribe"
)

// apologyMessage is shown for any fault the central interceptor catches.
const apologyMessage = "⚠️ An error occurred. Please try again."

// Bot handles Telegram updates. It owns the voice pipeline and an explicit
// ledger handle shared across all chats.
type Bot struct {
	api      *tgbotapi.BotAPI
	ledger   *billing.Ledger
	pipeline *Pipeline
	errLog   *log.Logger
}

// New creates a bot around an authorized Telegram API client. sttModel and
// the enricher's model name the ledger entries each pipeline run records.
func New(api *tgbotapi.BotAPI, ledger *billing.Ledger, stt transcribe.Transcriber, dict enrich.Provider, sttModel, dictModel string) *Bot {
	b := &Bot{
		api:    api,
		ledger: ledger,
		errLog: log.New(os.Stderr, "", log.LstdFlags),
	}
	b.pipeline = NewPipeline(&telegramDownloader{api: api}, stt, dict, ledger, b, sttModel, dictModel)
	return b
}

// Run consumes updates until the update channel closes. Each update is
// handled on its own goroutine so one user's pipeline run never blocks
// another user's commands; within a run the steps stay strictly
// sequential, and the ledger serializes its own mutations.
func (b *Bot) Run() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := b.api.GetUpdatesChan(u)
	fmt.Printf("Bot started as @%s\n", b.api.Self.UserName)

	for update := range updates {
		go b.handleUpdate(update)
	}

	return nil
}

// handleUpdate routes one update. The deferred interceptor keeps a fault
// in a single update from killing the dispatch loop.
func (b *Bot) handleUpdate(update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			b.reportFault(update, r)
		}
	}()

	msg := update.Message
	if msg == nil {
		return
	}

	switch {
	case msg.IsCommand():
		b.handleCommand(msg)
	case msg.Voice != nil:
		b.pipeline.HandleVoice(context.Background(), msg.Chat.ID, msg.Voice.FileID, msg.Voice.Duration)
	}
}

// reportFault logs full diagnostics to the operational log and sends a
// generic apology to whichever chat triggered the fault.
func (b *Bot) reportFault(update tgbotapi.Update, fault interface{}) {
	b.errLog.Printf("error in update handling: %T: %v\n%s", fault, fault, debug.Stack())

	var chatID int64
	switch {
	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil:
		chatID = update.CallbackQuery.Message.Chat.ID
	case update.Message != nil:
		chatID = update.Message.Chat.ID
	default:
		return
	}

	if err := b.SendText(chatID, apologyMessage); err != nil {
		b.errLog.Printf("sending apology: %v", err)
	}
}

// SendText sends a plain-text message to a chat.
func (b *Bot) SendText(chatID int64, text string) error {
	_, err := b.api.Send(tgbotapi.NewMessage(chatID, text))
	if err != nil {
		return fmt.Errorf("sending message: %w", err)
	}
	return nil
}

// SendHTML sends an HTML-formatted message to a chat.
func (b *Bot) SendHTML(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	_, err := b.api.Send(msg)
	if err != nil {
		return fmt.Errorf("sending message: %w", err)
	}
	return nil
}
