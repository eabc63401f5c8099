package cli

import "codeberg.org/snonux/vocabot/internal/billing"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile  string
	Language string
	Debug    bool

	// Enrichment flags
	EnrichProvider string
	OpenAIModel    string
	GeminiModel    string

	// Transcription flags
	TranscribeModel string

	// Billing flags
	ExchangeRate float64
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Language:        "en",
		EnrichProvider:  "openai",
		OpenAIModel:     "gpt-4.1-mini",
		GeminiModel:     "gemini-2.0-flash",
		TranscribeModel: "whisper-1",
		ExchangeRate:    billing.DefaultExchangeRate,
	}
}
