package testutil

import (
	"context"
	"fmt"

	"golang.org/x/text/language"
)

// MockSuggester mocks a translation backend
type MockSuggester struct {
	Translations map[string]string
	Errors       map[string]error
	// Err is returned for every call when set
	Err   error
	Calls []string
}

// Suggest mocks translating text
func (m *MockSuggester) Suggest(ctx context.Context, text string, lang language.Tag) (string, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("Suggest: %s (%s)", text, lang))

	if err := ctx.Err(); err != nil {
		return "", err
	}

	if m.Err != nil {
		return "", m.Err
	}

	if err, ok := m.Errors[text]; ok {
		return "", err
	}

	if translation, ok := m.Translations[text]; ok {
		return translation, nil
	}

	// Default mock translation
	return fmt.Sprintf("[%s] %s", lang, text), nil
}

// MockMemory mocks a translation memory
type MockMemory struct {
	Entries map[string]string
	Saved   []string
}

// NewMockMemory creates an empty mock memory
func NewMockMemory() *MockMemory {
	return &MockMemory{Entries: make(map[string]string)}
}

// Lookup mocks a memory lookup
func (m *MockMemory) Lookup(lang, source string) (string, bool, error) {
	v, ok := m.Entries[lang+"|"+source]
	return v, ok, nil
}

// Save mocks storing a suggestion
func (m *MockMemory) Save(lang, source, target string) error {
	m.Entries[lang+"|"+source] = target
	m.Saved = append(m.Saved, source)
	return nil
}
