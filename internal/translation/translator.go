package translation

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"golang.org/x/text/language"
)

// Suggester proposes a translation of text into lang
type Suggester interface {
	Suggest(ctx context.Context, text string, lang language.Tag) (string, error)
}

// DefaultOpenAIModel is used when no model is configured
const DefaultOpenAIModel = openai.GPT4oMini

// Translator handles translation through the OpenAI chat API
type Translator struct {
	apiKey string
	model  string
	client *openai.Client
}

// NewTranslator creates a new translator instance
func NewTranslator(apiKey, model string) *Translator {
	if model == "" {
		model = DefaultOpenAIModel
	}
	return &Translator{
		apiKey: apiKey,
		model:  model,
		client: openai.NewClient(apiKey),
	}
}

// Suggest translates a user interface string into lang
func (t *Translator) Suggest(ctx context.Context, text string, lang language.Tag) (string, error) {
	if t.apiKey == "" {
		return "", fmt.Errorf("OpenAI API key not found")
	}

	req := openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userPrompt(text, lang),
			},
		},
		MaxTokens:   512,
		Temperature: 0.3,
	}

	resp, err := t.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no translation returned")
	}

	translation := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translation == "" {
		return "", fmt.Errorf("empty translation returned")
	}
	return translation, nil
}

const systemPrompt = "You translate user interface strings for software localization. " +
	"Keep placeholders such as {name}, {{count}}, %s, %d and HTML tags exactly as they are. " +
	"Respond with only the translated string, nothing else."

func userPrompt(text string, lang language.Tag) string {
	return fmt.Sprintf("Translate the following string into %s (%s):\n\n%s", DisplayName(lang), lang, text)
}
