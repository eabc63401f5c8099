package bot

import (
	"context"
	"fmt"
	"os"

	"codeberg.org/snonux/vocabot/internal/billing"
	"codeberg.org/snonux/vocabot/internal/enrich"
	"codeberg.org/snonux/vocabot/internal/transcribe"
	"codeberg.org/snonux/vocabot/internal/vocab"
)

// downloadFailedMessage is the generic text shown on transport faults;
// transcription faults deliberately surface the raw error instead.
const downloadFailedMessage = "Could not download the voice message. Please try again."

// Downloader fetches a platform file reference into a local temporary
// file. A failed download may still return the path of a partial file so
// the caller can clean it up.
type Downloader interface {
	Download(ctx context.Context, fileID string) (string, error)
}

// Messenger is the outbound half of the bot frontend.
type Messenger interface {
	SendText(chatID int64, text string) error
	SendHTML(chatID int64, text string) error
}

// Pipeline processes one voice message end to end: download, transcribe,
// extract, enrich, report, bill, clean up. Runs for distinct messages are
// independent and may execute concurrently; the ledger is the only shared
// state.
type Pipeline struct {
	files     Downloader
	stt       transcribe.Transcriber
	dict      enrich.Provider
	ledger    *billing.Ledger
	out       Messenger
	sttModel  string
	dictModel string
}

// NewPipeline assembles a voice pipeline from its collaborators.
func NewPipeline(files Downloader, stt transcribe.Transcriber, dict enrich.Provider, ledger *billing.Ledger, out Messenger, sttModel, dictModel string) *Pipeline {
	return &Pipeline{
		files:     files,
		stt:       stt,
		dict:      dict,
		ledger:    ledger,
		out:       out,
		sttModel:  sttModel,
		dictModel: dictModel,
	}
}

// HandleVoice runs the pipeline for a single incoming voice message.
// durationSec comes from the message metadata, not from the transcription
// response. A failure before billing leaves the ledger untouched; the
// temporary audio file is removed on every exit path.
func (p *Pipeline) HandleVoice(ctx context.Context, chatID int64, fileID string, durationSec int) {
	audioPath, err := p.files.Download(ctx, fileID)
	if audioPath != "" {
		// Cleanup is best effort and must never mask the run's outcome.
		defer func() {
			_ = os.Remove(audioPath)
		}()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: voice download failed: %v\n", err)
		p.send(chatID, downloadFailedMessage)
		return
	}

	text, err := p.stt.Transcribe(ctx, audioPath)
	if err != nil {
		// The one place raw error detail reaches the user.
		p.send(chatID, fmt.Sprintf("Error in recognition: %v", err))
		return
	}
	p.send(chatID, fmt.Sprintf("Recognized text: %s", text))

	words := vocab.Extract(text)

	var entries []enrich.Entry
	var promptTokens, completionTokens, totalTokens int
	for _, word := range words {
		entry, usage, err := p.dict.Enrich(ctx, word, text)
		if err != nil {
			// One word's failure never aborts the batch.
			fmt.Fprintf(os.Stderr, "Warning: enrichment failed for %q: %v\n", word, err)
			continue
		}
		entries = append(entries, entry)
		promptTokens += usage.PromptTokens
		completionTokens += usage.CompletionTokens
		totalTokens += usage.TotalTokens
	}

	for _, e := range entries {
		p.sendHTML(chatID, fmt.Sprintf(
			"────────────────────\n<b>%s</b> → <i>%s</i>\n<i>definition: %s</i>",
			e.Word, e.Translation, e.Definition))
	}

	sttEntry := p.ledger.Record(p.sttModel, billing.TranscriptionCost(durationSec), 0,
		fmt.Sprintf("voice duration: %d seconds", durationSec))
	p.send(chatID, fmt.Sprintf("Added billing for Whisper: raw %.4f$, UZS %.2f",
		sttEntry.RawCost, sttEntry.DisplayCost))

	dictEntry := p.ledger.Record(p.dictModel, billing.CompletionCost(promptTokens, completionTokens),
		totalTokens, "per voice analysis")
	p.send(chatID, fmt.Sprintf("Total tokens used for analysis: %d\nAdded billing for GPT: raw %.4f$, UZS %.2f",
		totalTokens, dictEntry.RawCost, dictEntry.DisplayCost))
}

func (p *Pipeline) send(chatID int64, text string) {
	if err := p.out.SendText(chatID, text); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
}

func (p *Pipeline) sendHTML(chatID int64, text string) {
	if err := p.out.SendHTML(chatID, text); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
}
