package enrich

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
)

// OpenAIProvider implements Provider using OpenAI chat completions
type OpenAIProvider struct {
	model   string
	client  *openai.Client
	breaker *gobreaker.CircuitBreaker
}

// NewOpenAIProvider creates a new OpenAI enrichment provider
func NewOpenAIProvider(apiKey, model string) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if model == "" {
		model = DefaultConfig().OpenAIModel
	}

	return &OpenAIProvider{
		model:   model,
		client:  openai.NewClient(apiKey),
		breaker: newBreaker("openai-chat"),
	}, nil
}

// Enrich requests a translation and definition for word in the context of
// fullText and returns the parsed entry together with the call's token
// usage.
func (p *OpenAIProvider) Enrich(ctx context.Context, word, fullText string) (Entry, Usage, error) {
	req := openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userPrompt(word, fullText),
			},
		},
		Temperature: 0.3,
	}

	v, err := p.breaker.Execute(func() (interface{}, error) {
		return p.client.CreateChatCompletion(ctx, req)
	})
	if err != nil {
		return Entry{}, Usage{}, fmt.Errorf("OpenAI API error: %w", err)
	}
	resp := v.(openai.ChatCompletionResponse)

	if len(resp.Choices) == 0 {
		return Entry{}, Usage{}, fmt.Errorf("no response from OpenAI")
	}

	entry, ok := parseEntry(word, resp.Choices[0].Message.Content)
	if !ok {
		return Entry{}, Usage{}, fmt.Errorf("malformed JSON response for word %q", word)
	}

	usage := Usage{
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		TotalTokens:      resp.Usage.TotalTokens,
	}

	return entry, usage, nil
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// Model returns the model identifier used for billing entries
func (p *OpenAIProvider) Model() string {
	return p.model
}
