package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"codeberg.org/snonux/i18nsync/internal/archive"
	"codeberg.org/snonux/i18nsync/internal/cli"
	"codeberg.org/snonux/i18nsync/internal/document"
	"codeberg.org/snonux/i18nsync/internal/memory"
	"codeberg.org/snonux/i18nsync/internal/reconcile"
	"codeberg.org/snonux/i18nsync/internal/translation"
)

// ErrIncomplete is returned in check mode when keys are missing
var ErrIncomplete = errors.New("translation is incomplete")

// Result describes one reconciliation run
type Result struct {
	// OutputPath is where the reconciled document goes
	OutputPath string
	Report     reconcile.Report
	Fill       translation.FillStats
	// Written is false in check mode
	Written bool
	// BackupPath is set when an earlier output was moved aside
	BackupPath string
}

// Processor handles the main reconciliation logic
type Processor struct {
	flags     *cli.Flags
	out       io.Writer
	logger    zerolog.Logger
	suggester translation.Suggester
}

// NewProcessor creates a new processor writing its summary to out
func NewProcessor(flags *cli.Flags, out io.Writer, logger zerolog.Logger) *Processor {
	return &Processor{
		flags:  flags,
		out:    out,
		logger: logger,
	}
}

// WithSuggester sets the suggestion backend instead of building one from
// the flags
func (p *Processor) WithSuggester(s translation.Suggester) *Processor {
	p.suggester = s
	return p
}

// Run reconciles the translation at translationPath against the reference
// at referencePath and writes the result. Nothing is written when any
// input fails to load.
func (p *Processor) Run(ctx context.Context, referencePath, translationPath string) (*Result, error) {
	ref, err := document.Load(referencePath)
	if err != nil {
		return nil, err
	}

	trans, err := document.Load(translationPath)
	if err != nil {
		return nil, err
	}

	result := &Result{
		OutputPath: document.UpdatedPath(translationPath, p.flags.OutputDir),
		Report:     reconcile.Diff(ref.Tree, trans.Tree),
	}

	p.logger.Info().
		Str("reference", referencePath).
		Str("translation", translationPath).
		Int("kept", len(result.Report.Kept)).
		Int("missing", len(result.Report.Missing)).
		Int("dropped", len(result.Report.Dropped)).
		Msg("Compared documents")

	if p.flags.Check {
		p.printCheck(translationPath, result.Report)
		if !result.Report.Complete() {
			return result, fmt.Errorf("%w: %d missing keys in %s", ErrIncomplete, len(result.Report.Missing), translationPath)
		}
		return result, nil
	}

	output := reconcile.Reconcile(ref.Tree, trans.Tree)

	if p.flags.Suggest != "" && len(result.Report.Missing) > 0 {
		output, result.Fill, err = p.fill(ctx, output, ref.Tree, translationPath)
		if err != nil {
			return result, err
		}
	}

	if p.flags.OutputDir != "" {
		if err := os.MkdirAll(p.flags.OutputDir, 0755); err != nil {
			return result, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if p.flags.Backup {
		backup, err := archive.BackupFile(result.OutputPath)
		if err != nil {
			return result, fmt.Errorf("failed to back up %s: %w", result.OutputPath, err)
		}
		result.BackupPath = backup
	}

	if err := document.Save(result.OutputPath, output, trans.Format); err != nil {
		return result, err
	}
	result.Written = true

	p.printSummary(result)
	return result, nil
}

// fill replaces placeholders with suggestions from the configured backend
func (p *Processor) fill(ctx context.Context, output, reference *reconcile.Tree, translationPath string) (*reconcile.Tree, translation.FillStats, error) {
	var stats translation.FillStats

	lang, err := p.targetLanguage(translationPath)
	if err != nil {
		return nil, stats, err
	}

	suggester := p.suggester
	if suggester == nil {
		suggester, err = translation.NewSuggester(ctx, translation.ProviderConfig{
			Provider:     p.flags.Suggest,
			Model:        p.flags.Model,
			OpenAIKey:    cli.GetOpenAIKey(),
			GeminiKey:    cli.GetGeminiKey(),
			RequestsRate: p.flags.RateLimit,
		})
		if err != nil {
			return nil, stats, err
		}
	}

	var mem translation.Memory
	var db *memory.DB
	if p.flags.MemoryPath != "" {
		db, err = memory.Open(p.flags.MemoryPath)
		if err != nil {
			return nil, stats, err
		}
		defer db.Close()
		mem = db
	}

	p.logger.Info().Str("provider", p.flags.Suggest).Str("lang", translation.DisplayName(lang)).Msg("Requesting suggestions")

	filler := translation.NewFiller(suggester, lang, mem, p.logger)
	filled, stats, err := filler.Fill(ctx, output, reference)
	if err != nil || db == nil {
		return filled, stats, err
	}

	if n, err := db.Count(lang.String()); err != nil {
		p.logger.Warn().Err(err).Msg("Failed to count translation memory entries")
	} else {
		p.logger.Info().Str("memory", p.flags.MemoryPath).Int("entries", n).Msg("Translation memory updated")
	}
	return filled, stats, nil
}

func (p *Processor) targetLanguage(translationPath string) (language.Tag, error) {
	if p.flags.Lang != "" {
		return translation.ParseLanguage(p.flags.Lang)
	}
	return translation.LanguageFromPath(translationPath)
}

func (p *Processor) printCheck(translationPath string, report reconcile.Report) {
	if report.Complete() {
		fmt.Fprintf(p.out, "%s: all %d keys translated\n", translationPath, len(report.Kept))
		return
	}

	fmt.Fprintf(p.out, "%s: %d of %d keys missing\n", translationPath, len(report.Missing), len(report.Kept)+len(report.Missing))
	for _, path := range report.Missing {
		fmt.Fprintf(p.out, "  missing: %s\n", path)
	}
	for _, path := range report.Dropped {
		fmt.Fprintf(p.out, "  dropped: %s\n", path)
	}
}

func (p *Processor) printSummary(result *Result) {
	fmt.Fprintf(p.out, "Kept: %d\n", len(result.Report.Kept))
	fmt.Fprintf(p.out, "Added: %d\n", len(result.Report.Missing))
	fmt.Fprintf(p.out, "Dropped: %d\n", len(result.Report.Dropped))
	if p.flags.Suggest != "" {
		fill := result.Fill
		fmt.Fprintf(p.out, "Suggested: %d (from memory: %d, failed: %d)\n", fill.Suggested+fill.Remembered, fill.Remembered, fill.Failed)
	}
	if result.BackupPath != "" {
		fmt.Fprintf(p.out, "Backup: %s\n", result.BackupPath)
	}
	fmt.Fprintf(p.out, "Written: %s\n", result.OutputPath)
}
