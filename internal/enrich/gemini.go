package enrich

import (
	"context"
	"fmt"

	"github.com/sony/gobreaker"
	"google.golang.org/genai"
)

// GeminiProvider implements Provider using the Gemini API
type GeminiProvider struct {
	model   string
	client  *genai.Client
	breaker *gobreaker.CircuitBreaker
}

// NewGeminiProvider creates a new Gemini enrichment provider
func NewGeminiProvider(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	if model == "" {
		model = DefaultConfig().GeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}

	return &GeminiProvider{
		model:   model,
		client:  client,
		breaker: newBreaker("gemini-chat"),
	}, nil
}

// Enrich requests a translation and definition for word in the context of
// fullText. The JSON response MIME type nudges Gemini towards the bare
// object the parser expects.
func (p *GeminiProvider) Enrich(ctx context.Context, word, fullText string) (Entry, Usage, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		ResponseMIMEType:  "application/json",
	}

	v, err := p.breaker.Execute(func() (interface{}, error) {
		return p.client.Models.GenerateContent(ctx, p.model, genai.Text(userPrompt(word, fullText)), config)
	})
	if err != nil {
		return Entry{}, Usage{}, fmt.Errorf("Gemini API error: %w", err)
	}
	resp := v.(*genai.GenerateContentResponse)

	content := resp.Text()
	if content == "" {
		return Entry{}, Usage{}, fmt.Errorf("no response from Gemini")
	}

	entry, ok := parseEntry(word, content)
	if !ok {
		return Entry{}, Usage{}, fmt.Errorf("malformed JSON response for word %q", word)
	}

	// Usage metadata may be absent; a missing block simply bills as zero.
	var usage Usage
	if um := resp.UsageMetadata; um != nil {
		usage = Usage{
			PromptTokens:     int(um.PromptTokenCount),
			CompletionTokens: int(um.CandidatesTokenCount),
			TotalTokens:      int(um.TotalTokenCount),
		}
	}

	return entry, usage, nil
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// Model returns the model identifier used for billing entries
func (p *GeminiProvider) Model() string {
	return p.model
}
