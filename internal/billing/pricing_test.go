package billing

import (
	"math"
	"testing"
)

func TestTranscriptionCost(t *testing.T) {
	tests := []struct {
		durationSec int
		want        float64
	}{
		{30, 0.003},
		{60, 0.006},
		{0, 0},
		{90, 0.009},
		{7, 7.0 / 60.0 * 0.006},
	}

	for _, tt := range tests {
		got := TranscriptionCost(tt.durationSec)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("TranscriptionCost(%d) = %v, want %v", tt.durationSec, got, tt.want)
		}
	}
}

func TestCompletionCost(t *testing.T) {
	tests := []struct {
		prompt, completion int
		want               float64
	}{
		{0, 0, 0},
		{1_000_000, 0, 0.40},
		{0, 1_000_000, 1.60},
		{1_000_000, 1_000_000, 2.00},
		{1200, 340, 1200*0.40/1e6 + 340*1.60/1e6},
	}

	for _, tt := range tests {
		got := CompletionCost(tt.prompt, tt.completion)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("CompletionCost(%d, %d) = %v, want %v", tt.prompt, tt.completion, got, tt.want)
		}
	}
}
