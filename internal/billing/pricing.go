package billing

// Fixed OpenAI prices. The chat prices are for gpt-4.1-mini without
// prompt caching.
const (
	// WhisperPricePerMinute is the USD price per minute of transcribed audio
	WhisperPricePerMinute = 0.006

	// PromptPricePerMTok is the USD price per million prompt tokens
	PromptPricePerMTok = 0.40

	// CompletionPricePerMTok is the USD price per million completion tokens
	CompletionPricePerMTok = 1.60
)

// TranscriptionCost returns the USD cost of transcribing a clip of the
// given duration in seconds.
func TranscriptionCost(durationSec int) float64 {
	return float64(durationSec) / 60.0 * WhisperPricePerMinute
}

// CompletionCost returns the USD cost of chat-completion usage aggregated
// over a whole pipeline run. Billing is per aggregate, not per word: the
// caller sums token counters across all calls first and invokes this once.
func CompletionCost(promptTokens, completionTokens int) float64 {
	return float64(promptTokens)*PromptPricePerMTok/1_000_000 +
		float64(completionTokens)*CompletionPricePerMTok/1_000_000
}
