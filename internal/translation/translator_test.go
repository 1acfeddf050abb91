package translation

import (
	"context"
	"os"
	"testing"

	"golang.org/x/text/language"
)

func TestNewTranslator(t *testing.T) {
	translator := NewTranslator("test-api-key", "")

	if translator == nil {
		t.Fatal("NewTranslator returned nil")
	}

	if translator.apiKey != "test-api-key" {
		t.Errorf("Expected API key 'test-api-key', got '%s'", translator.apiKey)
	}

	if translator.model != DefaultOpenAIModel {
		t.Errorf("Expected default model '%s', got '%s'", DefaultOpenAIModel, translator.model)
	}

	if translator.client == nil {
		t.Error("OpenAI client not initialized")
	}
}

func TestSuggest_NoAPIKey(t *testing.T) {
	translator := NewTranslator("", "")

	_, err := translator.Suggest(context.Background(), "Save", language.German)
	if err == nil {
		t.Fatal("Expected error for missing API key")
	}

	if err.Error() != "OpenAI API key not found" {
		t.Errorf("Expected 'OpenAI API key not found' error, got: %v", err)
	}
}

func TestSuggest_Integration(t *testing.T) {
	// Skip if no API key
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	translator := NewTranslator(apiKey, "")

	translation, err := translator.Suggest(context.Background(), "Save changes", language.German)
	if err != nil {
		t.Errorf("Suggest failed: %v", err)
	}

	if translation == "" {
		t.Error("Got empty translation")
	}

	t.Logf("Translation of 'Save changes': %s", translation)
}

func TestNewGeminiTranslator_NoAPIKey(t *testing.T) {
	_, err := NewGeminiTranslator(context.Background(), "", "")
	if err == nil {
		t.Fatal("Expected error for missing API key")
	}
}

func TestGeminiSuggest_Integration(t *testing.T) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: GEMINI_API_KEY not set")
	}

	g, err := NewGeminiTranslator(context.Background(), apiKey, "")
	if err != nil {
		t.Fatalf("NewGeminiTranslator failed: %v", err)
	}

	translation, err := g.Suggest(context.Background(), "Save changes", language.French)
	if err != nil {
		t.Errorf("Suggest failed: %v", err)
	}
	t.Logf("Translation of 'Save changes': %s", translation)
}

func TestNewSuggester(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ProviderConfig
		wantErr bool
	}{
		{"openai", ProviderConfig{Provider: "openai", OpenAIKey: "k"}, false},
		{"openai upper case", ProviderConfig{Provider: "OpenAI", OpenAIKey: "k"}, false},
		{"openai without key", ProviderConfig{Provider: "openai"}, true},
		{"gemini without key", ProviderConfig{Provider: "gemini"}, true},
		{"unknown", ProviderConfig{Provider: "deepl", OpenAIKey: "k"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSuggester(context.Background(), tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewSuggester failed: %v", err)
			}
			if _, ok := s.(*Guard); !ok {
				t.Errorf("Expected suggester wrapped in *Guard, got %T", s)
			}
		})
	}
}

func TestTranslationCache(t *testing.T) {
	cache := NewTranslationCache()

	// Test empty cache
	_, found := cache.Get("Save")
	if found {
		t.Error("Expected not found in empty cache")
	}

	// Test adding and retrieving
	cache.Add("Save", "Speichern")
	cache.Add("Open", "Öffnen")

	translation, found := cache.Get("Save")
	if !found {
		t.Error("Expected to find 'Save' in cache")
	}
	if translation != "Speichern" {
		t.Errorf("Expected 'Speichern', got '%s'", translation)
	}

	// Test overwriting
	cache.Add("Save", "Sichern")
	translation, found = cache.Get("Save")
	if !found || translation != "Sichern" {
		t.Errorf("Expected 'Sichern', got '%s'", translation)
	}
}
