package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/vocabot/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vocabot",
		Short: "Telegram Voice Vocabulary Bot",
		Long: `vocabot runs a Telegram bot that transcribes voice messages with
OpenAI Whisper, extracts vocabulary words from the transcript and enriches
each word with an Uzbek translation and definition via a chat model.

Every transcription and enrichment call is recorded in an in-memory usage
ledger that users can inspect with the /balance command.

Examples:
  vocabot                             # Run with TELEGRAM_BOT_TOKEN and OPENAI_API_KEY from the environment
  vocabot --language en               # Language hint for speech recognition
  vocabot --enrich-provider gemini    # Use Gemini instead of OpenAI for word enrichment`,
		Args:    cobra.NoArgs,
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.vocabot.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.Language, "language", "l", flags.Language, "Language hint for voice transcription (ISO 639-1)")
	cmd.Flags().BoolVar(&flags.Debug, "debug", false, "Log raw Telegram API traffic")
	cmd.Flags().StringVar(&flags.EnrichProvider, "enrich-provider", flags.EnrichProvider, "Word enrichment provider: openai or gemini")
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model used for word enrichment")
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model used for word enrichment")
	cmd.Flags().StringVar(&flags.TranscribeModel, "transcribe-model", flags.TranscribeModel, "OpenAI transcription model")
	cmd.Flags().Float64Var(&flags.ExchangeRate, "exchange-rate", flags.ExchangeRate, "USD to UZS exchange rate used for the billing report")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("transcribe.language", cmd.Flags().Lookup("language"))
	viper.BindPFlag("transcribe.model", cmd.Flags().Lookup("transcribe-model"))
	viper.BindPFlag("enrich.provider", cmd.Flags().Lookup("enrich-provider"))
	viper.BindPFlag("enrich.openai_model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("enrich.gemini_model", cmd.Flags().Lookup("gemini-model"))
	viper.BindPFlag("billing.exchange_rate", cmd.Flags().Lookup("exchange-rate"))
	viper.BindPFlag("telegram.debug", cmd.Flags().Lookup("debug"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".vocabot" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".vocabot")
	}

	// Environment variables
	viper.SetEnvPrefix("VOCABOT")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("openai.api_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}

	return viper.GetString("gemini.api_key")
}

// GetTelegramToken retrieves the Telegram bot token from environment or config
func GetTelegramToken() string {
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		return token
	}

	return viper.GetString("telegram.token")
}
