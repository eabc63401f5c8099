package main

import (
	"os"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"codeberg.org/snonux/vocabot/internal/cli"
)

// clearSecrets removes every secret source so the startup checks are
// exercised from a clean slate.
func clearSecrets(t *testing.T) {
	t.Helper()
	for _, key := range []string{"TELEGRAM_BOT_TOKEN", "OPENAI_API_KEY", "GEMINI_API_KEY"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestRunCommand_MissingTelegramToken(t *testing.T) {
	clearSecrets(t)
	defer viper.Reset()

	err := runCommand(cli.NewFlags())
	if err == nil {
		t.Fatal("Expected startup to fail without a Telegram token")
	}
	if !strings.Contains(err.Error(), "Telegram bot token is required") {
		t.Errorf("Expected token error, got: %v", err)
	}
}

func TestRunCommand_MissingOpenAIKey(t *testing.T) {
	clearSecrets(t)
	defer viper.Reset()
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")

	err := runCommand(cli.NewFlags())
	if err == nil {
		t.Fatal("Expected startup to fail without an OpenAI API key")
	}
	if !strings.Contains(err.Error(), "OpenAI API key is required") {
		t.Errorf("Expected API key error, got: %v", err)
	}
}

func TestResolveFlags_ConfigOverridesAllKeys(t *testing.T) {
	defer viper.Reset()
	viper.Set("transcribe.language", "uz")
	viper.Set("transcribe.model", "whisper-large")
	viper.Set("enrich.provider", "gemini")
	viper.Set("enrich.openai_model", "gpt-4o")
	viper.Set("enrich.gemini_model", "gemini-1.5-pro")
	viper.Set("billing.exchange_rate", 11964.2)
	viper.Set("telegram.debug", true)

	flags := cli.NewFlags()
	resolveFlags(flags)

	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"Language", flags.Language, "uz"},
		{"TranscribeModel", flags.TranscribeModel, "whisper-large"},
		{"EnrichProvider", flags.EnrichProvider, "gemini"},
		{"OpenAIModel", flags.OpenAIModel, "gpt-4o"},
		{"GeminiModel", flags.GeminiModel, "gemini-1.5-pro"},
		{"ExchangeRate", flags.ExchangeRate, 11964.2},
		{"Debug", flags.Debug, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}
}

func TestResolveFlags_DefaultsSurviveEmptyConfig(t *testing.T) {
	defer viper.Reset()
	viper.Reset()

	flags := cli.NewFlags()
	resolveFlags(flags)

	if flags.EnrichProvider != "openai" || flags.OpenAIModel != "gpt-4.1-mini" {
		t.Errorf("Defaults changed without config: %+v", flags)
	}
}

func TestRunCommand_ConfigSelectsGeminiProvider(t *testing.T) {
	clearSecrets(t)
	defer viper.Reset()
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("OPENAI_API_KEY", "test-api-key")
	viper.Set("enrich.provider", "gemini")

	// With the gemini provider selected by config and no Gemini key,
	// startup must fail in enrichment setup; reaching that error proves
	// the config key was honored.
	err := runCommand(cli.NewFlags())
	if err == nil {
		t.Fatal("Expected startup to fail for gemini provider without a Gemini key")
	}
	if !strings.Contains(err.Error(), "Gemini API key is required") {
		t.Errorf("Expected Gemini key error, got: %v", err)
	}
}
