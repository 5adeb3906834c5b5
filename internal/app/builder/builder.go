// Package builder wires the lexicon pipeline together and runs it end to
// end: read the source text, extract base forms, dedupe them into a fixed
// vocabulary, resolve translations, and write the lexicon file.
package builder

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexikon/internal/adapter/tagger/prosetag"
	"github.com/heartmarshall/lexikon/internal/adapter/tagger/spacyd"
	"github.com/heartmarshall/lexikon/internal/adapter/translate/gcloud"
	"github.com/heartmarshall/lexikon/internal/adapter/translate/gtx"
	"github.com/heartmarshall/lexikon/internal/config"
	"github.com/heartmarshall/lexikon/internal/dedupe"
	"github.com/heartmarshall/lexikon/internal/domain"
	"github.com/heartmarshall/lexikon/internal/filter"
	"github.com/heartmarshall/lexikon/internal/language"
	"github.com/heartmarshall/lexikon/internal/normalize"
	"github.com/heartmarshall/lexikon/internal/render"
	"github.com/heartmarshall/lexikon/internal/resolve"
	"github.com/heartmarshall/lexikon/pkg/ctxutil"
)

// Result holds per-stage counts for one pipeline run.
type Result struct {
	RunID      uuid.UUID
	InputBytes int
	Extracted  int
	Unique     int
	Resolved   int
	Unresolved int
	Duration   time.Duration
}

// Pipeline executes the lexicon build.
type Pipeline struct {
	cfg      *config.Config
	lang     *language.Language
	filter   filter.Filter
	resolver resolve.Resolver
	log      *slog.Logger
}

// NewPipeline creates a Pipeline from already-constructed stages. Most
// callers want Build, which assembles the stages from configuration.
func NewPipeline(cfg *config.Config, lang *language.Language, flt filter.Filter, resolver resolve.Resolver, log *slog.Logger) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		lang:     lang,
		filter:   flt,
		resolver: resolver,
		log:      log,
	}
}

// Build assembles a Pipeline from configuration: language resources, the
// configured filter strategy and tagger engine, and the translation
// backend for the configured mode.
func Build(cfg *config.Config, log *slog.Logger) (*Pipeline, error) {
	lang, err := language.Load(cfg.Input.SourceLanguage)
	if err != nil {
		return nil, fmt.Errorf("load language %q: %w", cfg.Input.SourceLanguage, err)
	}

	flt, err := buildFilter(cfg, lang, log)
	if err != nil {
		return nil, err
	}

	return NewPipeline(cfg, lang, flt, buildResolver(cfg, log), log), nil
}

func buildFilter(cfg *config.Config, lang *language.Language, log *slog.Logger) (filter.Filter, error) {
	switch cfg.FilterStrategy() {
	case domain.FilterStrategyTagBased:
		var tagger filter.Tagger
		switch cfg.TaggerEngine() {
		case domain.TaggerEngineSpacyd:
			if cfg.Tagger.SpacydBaseURL != "" {
				tagger = spacyd.NewTaggerWithURL(cfg.Tagger.SpacydBaseURL, lang.Code, log)
			} else {
				tagger = spacyd.NewTagger(lang.Code, log)
			}
		default:
			embedded, err := prosetag.NewTagger(lang, log)
			if err != nil {
				return nil, err
			}
			tagger = embedded
		}
		return filter.NewTagBased(lang, tagger), nil
	default:
		return filter.NewStopword(lang), nil
	}
}

func buildResolver(cfg *config.Config, log *slog.Logger) resolve.Resolver {
	source, target := cfg.Input.SourceLanguage, cfg.Input.TargetLanguage

	switch cfg.TranslationMode() {
	case domain.TranslationModeBatch:
		var backend resolve.BatchBackend
		if cfg.Translate.GCloudBaseURL != "" {
			backend = gcloud.NewClientWithURL(cfg.Translate.GCloudBaseURL, cfg.Translate.ProjectID, cfg.Translate.APIKey, source, target, log)
		} else {
			backend = gcloud.NewClient(cfg.Translate.ProjectID, cfg.Translate.APIKey, source, target, log)
		}
		return resolve.NewBatch(backend, cfg.Translate.RequestTimeout, log)
	default:
		var backend resolve.WordBackend
		if cfg.Translate.GTXBaseURL != "" {
			backend = gtx.NewClientWithURL(cfg.Translate.GTXBaseURL, source, target, log)
		} else {
			backend = gtx.NewClient(source, target, log)
		}
		return resolve.NewPerWord(backend, cfg.Translate.Workers, cfg.Translate.RequestTimeout, log)
	}
}

// Run executes the pipeline stages in order. Counts in Result are filled
// as stages complete, so a failed run still reports how far it got.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	start := time.Now()

	result := Result{RunID: uuid.New()}
	ctx = ctxutil.WithRunID(ctx, result.RunID)
	log := p.log.With(slog.String("run_id", result.RunID.String()))

	// 1. Read the source text.
	raw, err := os.ReadFile(p.cfg.Input.Filename)
	if err != nil {
		return result, fmt.Errorf("%w: %v", domain.ErrInputNotFound, err)
	}
	result.InputBytes = len(raw)
	log.InfoContext(ctx, "input loaded",
		slog.String("file", p.cfg.Input.Filename),
		slog.Int("bytes", len(raw)),
	)

	// 2. Normalize and extract base forms.
	text := normalize.Text(p.lang, string(raw))
	baseForms, err := p.filter.Extract(ctx, text)
	if err != nil {
		return result, fmt.Errorf("extract base forms: %w", err)
	}
	result.Extracted = len(baseForms)
	log.InfoContext(ctx, "base forms extracted", slog.Int("count", len(baseForms)))

	// 3. Dedupe into the fixed, collation-sorted vocabulary.
	words := dedupe.Words(p.lang.Collator(), baseForms)
	result.Unique = len(words)
	log.InfoContext(ctx, "vocabulary deduplicated", slog.Int("unique", len(words)))

	// The intermediate word list goes out before any translation call, so
	// it survives a later resolution failure.
	if p.cfg.Output.WordsPath != "" {
		if err := render.Write(p.cfg.Output.WordsPath, render.FormatWords(words)); err != nil {
			return result, fmt.Errorf("write word list: %w", err)
		}
		log.InfoContext(ctx, "word list written",
			slog.String("path", p.cfg.Output.WordsPath),
			slog.Int("words", len(words)),
		)
	}

	// 4. Resolve translations.
	lex := domain.NewLexicon(words)
	resolutions, err := p.resolver.Resolve(ctx, lex.Words())
	if err != nil {
		return result, fmt.Errorf("resolve translations: %w", err)
	}
	for word, res := range resolutions {
		if err := lex.Attach(word, res); err != nil {
			return result, fmt.Errorf("attach resolution: %w", err)
		}
	}

	unresolved := lex.UnresolvedWords()
	result.Resolved = lex.Len() - len(unresolved)
	result.Unresolved = len(unresolved)
	if len(unresolved) > 0 {
		log.WarnContext(ctx, "words left unresolved",
			slog.Int("count", len(unresolved)),
			slog.Any("words", wordStrings(unresolved)),
		)
	}

	// 5. Format and write the lexicon. Zero entries still produce the file.
	if err := render.Write(p.cfg.Output.Path, render.Format(lex, p.cfg.TranslationMode())); err != nil {
		return result, fmt.Errorf("write lexicon: %w", err)
	}

	result.Duration = time.Since(start)
	log.InfoContext(ctx, "lexicon written",
		slog.String("path", p.cfg.Output.Path),
		slog.Int("entries", lex.Len()),
		slog.Int("unresolved", result.Unresolved),
		slog.Duration("duration", result.Duration),
	)

	return result, nil
}

func wordStrings(words []domain.BaseForm) []string {
	strs := make([]string, len(words))
	for i, word := range words {
		strs[i] = word.String()
	}
	return strs
}
