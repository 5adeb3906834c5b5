// Command lexikon builds a translated vocabulary list from a source-language
// text file. It normalizes the text, extracts base forms through the
// configured filter, deduplicates them, resolves translations, and writes
// the formatted lexicon to disk.
//
// Flags (each overrides the corresponding config field):
//
//	-config    path to YAML config file (default: CONFIG_PATH env, then ./lexikon.yaml)
//	-input     source text file
//	-source    source language code (en, es, fr, sv)
//	-target    target language code
//	-strategy  filter strategy: stopword or tagbased
//	-mode      translation mode: perword or batch
//	-output    lexicon output path
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/heartmarshall/lexikon/internal/app"
	"github.com/heartmarshall/lexikon/internal/config"
)

func main() {
	configFlag := flag.String("config", "", "path to YAML config file")
	inputFlag := flag.String("input", "", "source text file")
	sourceFlag := flag.String("source", "", "source language code")
	targetFlag := flag.String("target", "", "target language code")
	strategyFlag := flag.String("strategy", "", "filter strategy: stopword or tagbased")
	modeFlag := flag.String("mode", "", "translation mode: perword or batch")
	outputFlag := flag.String("output", "", "lexicon output path")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// CLI flags override config.
	if *inputFlag != "" {
		cfg.Input.Filename = *inputFlag
	}
	if *sourceFlag != "" {
		cfg.Input.SourceLanguage = *sourceFlag
	}
	if *targetFlag != "" {
		cfg.Input.TargetLanguage = *targetFlag
	}
	if *strategyFlag != "" {
		cfg.Pipeline.FilterStrategy = *strategyFlag
	}
	if *modeFlag != "" {
		cfg.Pipeline.TranslationMode = *modeFlag
	}
	if *outputFlag != "" {
		cfg.Output.Path = *outputFlag
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	result, err := app.Run(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("lexicon build failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("lexicon build finished",
		slog.String("output", cfg.Output.Path),
		slog.Int("unique_words", result.Unique),
		slog.Int("resolved", result.Resolved),
		slog.Int("unresolved", result.Unresolved),
		slog.Duration("duration", result.Duration),
	)
}
