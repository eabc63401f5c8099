package main

import (
	"context"
	"fmt"
	"os"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/vocabot/internal/billing"
	"codeberg.org/snonux/vocabot/internal/bot"
	"codeberg.org/snonux/vocabot/internal/cli"
	"codeberg.org/snonux/vocabot/internal/enrich"
	"codeberg.org/snonux/vocabot/internal/transcribe"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(flags *cli.Flags) error {
	// Both secrets are required up front; the process refuses to start
	// without them.
	token := cli.GetTelegramToken()
	if token == "" {
		return fmt.Errorf("Telegram bot token is required (set TELEGRAM_BOT_TOKEN or telegram.token)")
	}
	apiKey := cli.GetOpenAIKey()
	if apiKey == "" {
		return fmt.Errorf("OpenAI API key is required (set OPENAI_API_KEY or openai.api_key)")
	}

	resolveFlags(flags)

	// One ledger for the whole process, handed to the bot explicitly.
	ledger := billing.NewLedger(flags.ExchangeRate)

	transcriber, err := transcribe.NewWhisperTranscriber(apiKey, flags.TranscribeModel, flags.Language)
	if err != nil {
		return fmt.Errorf("setting up transcription: %w", err)
	}

	enricher, err := enrich.NewProvider(context.Background(), &enrich.Config{
		Provider:    flags.EnrichProvider,
		OpenAIKey:   apiKey,
		OpenAIModel: flags.OpenAIModel,
		GeminiKey:   cli.GetGeminiKey(),
		GeminiModel: flags.GeminiModel,
	})
	if err != nil {
		return fmt.Errorf("setting up enrichment: %w", err)
	}
	fmt.Printf("Using enrichment provider: %s (%s)\n", enricher.Name(), enricher.Model())

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return fmt.Errorf("connecting to Telegram: %w", err)
	}
	api.Debug = flags.Debug

	b := bot.New(api, ledger, transcriber, enricher, transcriber.Model(), enricher.Model())
	return b.Run()
}

// resolveFlags overlays config file values onto flag defaults for every
// bound key. A flag given on the command line still wins: viper's
// precedence prefers a changed flag over the config file.
func resolveFlags(flags *cli.Flags) {
	if viper.IsSet("transcribe.language") {
		flags.Language = viper.GetString("transcribe.language")
	}
	if viper.IsSet("transcribe.model") {
		flags.TranscribeModel = viper.GetString("transcribe.model")
	}
	if viper.IsSet("enrich.provider") {
		flags.EnrichProvider = viper.GetString("enrich.provider")
	}
	if viper.IsSet("enrich.openai_model") {
		flags.OpenAIModel = viper.GetString("enrich.openai_model")
	}
	if viper.IsSet("enrich.gemini_model") {
		flags.GeminiModel = viper.GetString("enrich.gemini_model")
	}
	if viper.IsSet("billing.exchange_rate") {
		flags.ExchangeRate = viper.GetFloat64("billing.exchange_rate")
	}
	if viper.IsSet("telegram.debug") {
		flags.Debug = viper.GetBool("telegram.debug")
	}
}
