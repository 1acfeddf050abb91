package cli

import (
	"github.com/spf13/viper"

	"codeberg.org/snonux/i18nsync/internal/logging"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	OutputDir  string
	Check      bool
	Backup     bool
	ListModels bool
	Verbose    bool
	LogLevel   string

	// Suggestion flags
	Suggest    string
	Lang       string
	Model      string
	MemoryPath string
	RateLimit  float64
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		LogLevel:  logging.DefaultLevel,
		RateLimit: 2,
	}
}

// Resolve fills flags that were left at their defaults from the
// configuration file and environment
func (f *Flags) Resolve() {
	if f.OutputDir == "" {
		f.OutputDir = viper.GetString("output.directory")
	}
	if f.Suggest == "" {
		f.Suggest = viper.GetString("suggest.provider")
	}
	if f.Lang == "" {
		f.Lang = viper.GetString("suggest.lang")
	}
	if f.Model == "" {
		f.Model = viper.GetString("suggest.model")
	}
	if f.MemoryPath == "" {
		f.MemoryPath = viper.GetString("suggest.memory")
	}
	if viper.IsSet("suggest.rate") {
		f.RateLimit = viper.GetFloat64("suggest.rate")
	}
	if viper.IsSet("log.level") {
		f.LogLevel = viper.GetString("log.level")
	}
}
