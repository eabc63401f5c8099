// Package transcribe converts stored voice recordings to text using the
// OpenAI audio transcription API.
package transcribe

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
)

// Transcriber converts an audio file on disk into transcript text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// WhisperTranscriber implements Transcriber via the OpenAI API. The clip
// duration is never taken from the response; billing uses the duration
// reported by the messaging platform.
type WhisperTranscriber struct {
	model    string
	language string
	client   *openai.Client
	breaker  *gobreaker.CircuitBreaker
}

// NewWhisperTranscriber creates a new transcriber instance. language is an
// ISO 639-1 hint passed with every request.
func NewWhisperTranscriber(apiKey, model, language string) (*WhisperTranscriber, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if model == "" {
		model = openai.Whisper1
	}

	return &WhisperTranscriber{
		model:    model,
		language: language,
		client:   openai.NewClient(apiKey),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "openai-transcribe",
			MaxRequests: 1,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
	}, nil
}

// Transcribe submits the audio file at audioPath and returns the
// recognized text.
func (t *WhisperTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	req := openai.AudioRequest{
		Model:    t.model,
		FilePath: audioPath,
		Language: t.language,
	}

	v, err := t.breaker.Execute(func() (interface{}, error) {
		return t.client.CreateTranscription(ctx, req)
	})
	if err != nil {
		return "", fmt.Errorf("transcription failed: %w", err)
	}
	resp := v.(openai.AudioResponse)

	return strings.TrimSpace(resp.Text), nil
}

// Model returns the model identifier used for billing entries
func (t *WhisperTranscriber) Model() string {
	return t.model
}
