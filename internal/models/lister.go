package models

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"

	"codeberg.org/snonux/i18nsync/internal/translation"
)

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client *openai.Client
}

// NewLister creates a new model lister
func NewLister(apiKey string) *Lister {
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
	}
}

func newListerWithConfig(apiKey string, config openai.ClientConfig) *Lister {
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClientWithConfig(config),
	}
}

// ListChatModels writes the chat models usable with --suggest openai to w
func (l *Lister) ListChatModels(ctx context.Context, w io.Writer) error {
	if l.apiKey == "" {
		return fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .i18nsync.yaml")
	}

	models, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	ids := make([]string, 0, len(models.Models))
	for _, model := range models.Models {
		ids = append(ids, model.ID)
	}
	chatModels := filterChatModels(ids)

	fmt.Fprintln(w, "Chat models usable for translation suggestions:")
	if len(chatModels) == 0 {
		fmt.Fprintln(w, "  No chat models found")
		return nil
	}

	for _, model := range chatModels {
		if model == translation.DefaultOpenAIModel {
			fmt.Fprintf(w, "  %s (default)\n", model)
		} else {
			fmt.Fprintf(w, "  %s\n", model)
		}
	}

	return nil
}

// filterChatModels keeps text chat models and returns them sorted
func filterChatModels(ids []string) []string {
	excluded := []string{"tts", "audio", "dall-e", "image", "realtime", "transcribe", "embedding", "search"}

	var chatModels []string
	for _, id := range ids {
		if !strings.Contains(id, "gpt") && !strings.Contains(id, "chat") {
			continue
		}

		skip := false
		for _, ex := range excluded {
			if strings.Contains(id, ex) {
				skip = true
				break
			}
		}
		if !skip {
			chatModels = append(chatModels, id)
		}
	}

	sort.Strings(chatModels)
	return chatModels
}
