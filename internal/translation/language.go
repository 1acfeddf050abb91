package translation

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// LanguageFromPath infers the target language from a translation file name.
// It accepts "de.json", "pt_BR.yaml" and "messages.fr.json" style names.
func LanguageFromPath(path string) (language.Tag, error) {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	candidates := []string{stem}
	if i := strings.LastIndex(stem, "."); i >= 0 {
		candidates = append(candidates, stem[i+1:])
	}

	for _, c := range candidates {
		if tag, err := ParseLanguage(c); err == nil {
			return tag, nil
		}
	}
	return language.Und, fmt.Errorf("cannot infer language from %q, use --lang", base)
}

// ParseLanguage parses a BCP 47 tag; underscores are accepted as separators
func ParseLanguage(s string) (language.Tag, error) {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(s), "_", "-"))
	if err != nil {
		return language.Und, fmt.Errorf("invalid language %q: %w", s, err)
	}
	if tag == language.Und {
		return language.Und, fmt.Errorf("invalid language %q", s)
	}
	return tag, nil
}

// DisplayName returns the English name of the language, e.g. "German"
func DisplayName(tag language.Tag) string {
	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return tag.String()
}
