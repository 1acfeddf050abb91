package translation

// TranslationCache stores suggestions in memory for the duration of a run,
// so repeated source strings are only translated once
type TranslationCache struct {
	translations map[string]string
}

// NewTranslationCache creates a new translation cache
func NewTranslationCache() *TranslationCache {
	return &TranslationCache{
		translations: make(map[string]string),
	}
}

// Add adds a translation to the cache
func (tc *TranslationCache) Add(source, translation string) {
	tc.translations[source] = translation
}

// Get retrieves a translation from the cache
func (tc *TranslationCache) Get(source string) (string, bool) {
	translation, ok := tc.translations[source]
	return translation, ok
}

