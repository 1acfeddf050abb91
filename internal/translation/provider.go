package translation

import (
	"context"
	"fmt"
	"strings"
)

// Supported suggestion backends
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// ProviderConfig selects and configures a suggestion backend
type ProviderConfig struct {
	Provider     string
	Model        string
	OpenAIKey    string
	GeminiKey    string
	RequestsRate float64
}

// NewSuggester builds the configured backend wrapped in a Guard
func NewSuggester(ctx context.Context, cfg ProviderConfig) (Suggester, error) {
	var backend Suggester

	switch strings.ToLower(cfg.Provider) {
	case ProviderOpenAI:
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .i18nsync.yaml")
		}
		backend = NewTranslator(cfg.OpenAIKey, cfg.Model)
	case ProviderGemini:
		g, err := NewGeminiTranslator(ctx, cfg.GeminiKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		backend = g
	default:
		return nil, fmt.Errorf("unknown suggestion provider %q (use %s or %s)", cfg.Provider, ProviderOpenAI, ProviderGemini)
	}

	return NewGuard(backend, cfg.RequestsRate), nil
}
