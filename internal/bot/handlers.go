package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"codeberg.org/snonux/vocabot/internal/billing"
)

// greetingMessage answers /start. Stateless by design.
const greetingMessage = "Hi! Send me a voice message, and I'll try to recognize and analyze it."

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	reply, ok := commandResponse(msg.Command(), b.ledger)
	if !ok {
		return
	}
	if err := b.SendText(msg.Chat.ID, reply); err != nil {
		b.errLog.Printf("answering /%s: %v", msg.Command(), err)
	}
}

// commandResponse maps a command name to its reply text. /balance reads
// the ledger without mutating it; unknown commands are ignored.
func commandResponse(command string, ledger *billing.Ledger) (string, bool) {
	switch command {
	case "start":
		return greetingMessage, true
	case "balance":
		return ledger.Summarize(), true
	default:
		return "", false
	}
}
