package enrich

import (
	"context"
	"fmt"
)

// NotFound is substituted for a translation or definition the model did
// not supply.
const NotFound = "Not found"

// Entry is one enriched vocabulary word.
type Entry struct {
	Word        string // lowercase surface form
	Translation string
	Definition  string
}

// Usage carries the token counts of one enrichment call so the caller can
// aggregate them for billing. Providers never write to the ledger
// themselves.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Provider defines the interface for word enrichment backends
type Provider interface {
	// Enrich asks the model for a translation and definition of word as
	// used in fullText. A malformed model response is reported as an
	// error; the caller decides whether to drop the word.
	Enrich(ctx context.Context, word, fullText string) (Entry, Usage, error)

	// Name returns the provider name
	Name() string

	// Model returns the model identifier used for billing entries
	Model() string
}

// Config holds common configuration for enrichment providers
type Config struct {
	Provider string // Provider name: "openai" or "gemini"

	// OpenAI-specific settings
	OpenAIKey   string
	OpenAIModel string

	// Gemini-specific settings
	GeminiKey   string
	GeminiModel string
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Provider:    "openai",
		OpenAIModel: "gpt-4.1-mini",
		GeminiModel: "gemini-2.0-flash",
	}
}

// NewProvider creates the appropriate enrichment provider based on
// configuration
func NewProvider(ctx context.Context, config *Config) (Provider, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case "openai":
		return NewOpenAIProvider(config.OpenAIKey, config.OpenAIModel)

	case "gemini":
		return NewGeminiProvider(ctx, config.GeminiKey, config.GeminiModel)

	default:
		return nil, fmt.Errorf("unknown enrichment provider: %s", config.Provider)
	}
}

// systemPrompt instructs the model to answer with a bare JSON object so
// the response parses into an Entry.
const systemPrompt = "You are a translator and dictionary. For the given English word " +
	"in the context of the full text, provide: translate (to Uzbek, considering context), " +
	"definition (in Uzbek, considering context). " +
	`Respond only in JSON: {"translate":"...","definition":"..."}`

// userPrompt renders the per-word request sharing the full transcript as
// context.
func userPrompt(word, fullText string) string {
	return fmt.Sprintf("Word: %s\nFull text context: %s", word, fullText)
}
