package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/i18nsync/internal"
)

// ErrUsage marks errors caused by wrong command-line usage
var ErrUsage = errors.New("usage error")

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "i18nsync <reference-file> <translation-file>",
		Short: "Reconcile translation files against a reference",
		Long: `i18nsync brings a translation file in line with a reference file.

Every key of the reference ends up in the output. Keys the translation
already has keep their translated value, missing keys get the placeholder
"<TRANSLATE THIS>", and keys that no longer exist in the reference are
dropped. The result is written next to the translation file as
<name>_updated.<ext>.

Examples:
  i18nsync en.json de.json                  # writes de_updated.json
  i18nsync --check en.json de.json          # exit 1 if keys are missing
  i18nsync --suggest openai en.yaml fr.yaml # prefill with suggestions
  i18nsync --list-models                    # list OpenAI chat models`,
		Args:          validateArgs(flags),
		Version:       internal.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func validateArgs(flags *Flags) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if flags.ListModels {
			return nil
		}
		if err := cobra.ExactArgs(2)(cmd, args); err != nil {
			return fmt.Errorf("%w: %v", ErrUsage, err)
		}
		return nil
	}
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.i18nsync.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.OutputDir, "output-dir", "o", "", "Output directory (default: next to the translation file)")
	cmd.Flags().BoolVar(&flags.Check, "check", false, "Only report missing keys, exit 1 if any are missing")
	cmd.Flags().BoolVar(&flags.Backup, "backup", false, "Move an existing _updated file aside before writing")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI chat models for the current API key")
	cmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Verbose diagnostics on stderr")
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")

	// Suggestion flags
	cmd.Flags().StringVar(&flags.Suggest, "suggest", "", "Fill placeholders with machine suggestions: openai or gemini")
	cmd.Flags().StringVar(&flags.Lang, "lang", "", "Target language for suggestions (default: inferred from the translation file name)")
	cmd.Flags().StringVar(&flags.Model, "model", "", "Model used by the suggestion backend")
	cmd.Flags().StringVar(&flags.MemoryPath, "memory", "", "SQLite translation memory used by --suggest")
	cmd.Flags().Float64Var(&flags.RateLimit, "rate", flags.RateLimit, "Maximum suggestion requests per second")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("output.directory", cmd.Flags().Lookup("output-dir"))
	viper.BindPFlag("log.level", cmd.Flags().Lookup("log-level"))
	viper.BindPFlag("suggest.provider", cmd.Flags().Lookup("suggest"))
	viper.BindPFlag("suggest.lang", cmd.Flags().Lookup("lang"))
	viper.BindPFlag("suggest.model", cmd.Flags().Lookup("model"))
	viper.BindPFlag("suggest.memory", cmd.Flags().Lookup("memory"))
	viper.BindPFlag("suggest.rate", cmd.Flags().Lookup("rate"))
}

// LoadEnvFiles loads .env and then .env.local from the working directory.
// Variables already present in the environment win.
func LoadEnvFiles() {
	for _, name := range []string{".env", ".env.local"} {
		_ = godotenv.Load(name)
	}
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

		// Search config in home directory with name ".i18nsync" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".i18nsync")
	}

	// Environment variables
	viper.SetEnvPrefix("I18NSYNC")
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
	return viper.GetString("suggest.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("suggest.gemini_key")
}

// Execute runs the command and maps its outcome to an exit status.
// Errors are reported on stderr; usage errors also print the usage text
// to stdout.
func Execute(cmd *cobra.Command, stdout, stderr io.Writer) int {
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	if errors.Is(err, ErrUsage) {
		fmt.Fprint(stdout, cmd.UsageString())
	}
	return 1
}
