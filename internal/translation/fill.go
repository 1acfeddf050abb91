package translation

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"codeberg.org/snonux/i18nsync/internal/reconcile"
)

// Memory is a persistent store of earlier suggestions
type Memory interface {
	Lookup(lang, source string) (string, bool, error)
	Save(lang, source, target string) error
}

// FillStats counts what a Fill pass did
type FillStats struct {
	// Suggested placeholders were replaced by a backend suggestion
	Suggested int
	// Remembered placeholders were replaced from the cache or memory
	Remembered int
	// Skipped placeholders stay because the reference value is not text
	Skipped int
	// Failed placeholders stay because no suggestion could be obtained
	Failed int
}

// Filler replaces placeholder values with suggestions
type Filler struct {
	Suggester Suggester
	Lang      language.Tag
	// Memory is optional
	Memory Memory
	Cache  *TranslationCache
	Logger zerolog.Logger
}

// NewFiller creates a filler with an empty cache
func NewFiller(s Suggester, lang language.Tag, mem Memory, logger zerolog.Logger) *Filler {
	return &Filler{
		Suggester: s,
		Lang:      lang,
		Memory:    mem,
		Cache:     NewTranslationCache(),
		Logger:    logger,
	}
}

// Fill returns a copy of output in which every placeholder leaf whose
// reference value is a non-empty string is replaced by a suggestion.
// Failures leave the placeholder in place and are only logged. Once the
// backend is reported unavailable the remaining placeholders are left
// untouched. The only returned error is a cancelled context.
func (f *Filler) Fill(ctx context.Context, output, reference *reconcile.Tree) (*reconcile.Tree, FillStats, error) {
	var stats FillStats
	result := output.Clone()
	lang := f.Lang.String()
	unavailable := false

	for _, p := range reconcile.Leaves(output) {
		v, _ := reconcile.ResolvePath(output, p)
		if v != reconcile.Placeholder {
			continue
		}

		refValue, err := reconcile.ResolvePath(reference, p)
		source, ok := refValue.(string)
		if err != nil || !ok || source == "" {
			stats.Skipped++
			continue
		}

		if unavailable {
			stats.Failed++
			continue
		}

		suggestion, remembered, err := f.lookup(ctx, lang, source)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return result, stats, ctxErr
			}
			if errors.Is(err, ErrUnavailable) {
				f.Logger.Warn().Err(err).Msg("Translation backend unavailable, keeping remaining placeholders")
				unavailable = true
			} else {
				f.Logger.Warn().Err(err).Str("key", p.String()).Msg("Suggestion failed")
			}
			stats.Failed++
			continue
		}

		if remembered {
			stats.Remembered++
		} else {
			stats.Suggested++
		}
		f.Logger.Debug().Str("key", p.String()).Str("suggestion", suggestion).Bool("remembered", remembered).Msg("Filled placeholder")

		reconcile.MergeInto(result, reconcile.WrapAtPath(suggestion, p))
	}

	return result, stats, nil
}

// lookup consults the cache, then the memory, then the suggester
func (f *Filler) lookup(ctx context.Context, lang, source string) (string, bool, error) {
	if s, ok := f.Cache.Get(source); ok {
		return s, true, nil
	}

	if f.Memory != nil {
		s, ok, err := f.Memory.Lookup(lang, source)
		if err != nil {
			f.Logger.Warn().Err(err).Msg("Translation memory lookup failed")
		} else if ok {
			f.Cache.Add(source, s)
			return s, true, nil
		}
	}

	s, err := f.Suggester.Suggest(ctx, source, f.Lang)
	if err != nil {
		return "", false, fmt.Errorf("suggest %q: %w", source, err)
	}

	f.Cache.Add(source, s)
	if f.Memory != nil {
		if err := f.Memory.Save(lang, source, s); err != nil {
			f.Logger.Warn().Err(err).Msg("Failed to save suggestion to translation memory")
		}
	}
	return s, false, nil
}
