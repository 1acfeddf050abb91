package translation

import (
	"testing"

	"golang.org/x/text/language"
)

func TestLanguageFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    language.Tag
		wantErr bool
	}{
		{"de.json", language.German, false},
		{"locales/fr.yaml", language.French, false},
		{"pt_BR.json", language.BrazilianPortuguese, false},
		{"zh-Hant.yml", language.TraditionalChinese, false},
		{"messages.es.json", language.Spanish, false},
		{"translation.json", language.Und, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := LanguageFromPath(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("LanguageFromPath failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("LanguageFromPath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestParseLanguage(t *testing.T) {
	if _, err := ParseLanguage("en_US"); err != nil {
		t.Errorf("Expected en_US to parse: %v", err)
	}
	if _, err := ParseLanguage(""); err == nil {
		t.Error("Expected error for empty language")
	}
	if _, err := ParseLanguage("not a language"); err == nil {
		t.Error("Expected error for invalid language")
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName(language.German); got != "German" {
		t.Errorf("DisplayName(de) = %q, want German", got)
	}
}
