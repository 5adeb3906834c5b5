package app

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/lexikon/internal/app/builder"
	"github.com/heartmarshall/lexikon/internal/config"
)

// Run wires the pipeline from a validated configuration and executes it
// once. Flag parsing and validation belong to the caller.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) (builder.Result, error) {
	logger.Info("starting lexicon build",
		slog.String("version", BuildVersion()),
		slog.String("input", cfg.Input.Filename),
		slog.String("source_language", cfg.Input.SourceLanguage),
		slog.String("target_language", cfg.Input.TargetLanguage),
		slog.String("filter_strategy", cfg.Pipeline.FilterStrategy),
		slog.String("translation_mode", cfg.Pipeline.TranslationMode),
	)

	pipeline, err := builder.Build(cfg, logger)
	if err != nil {
		return builder.Result{}, err
	}

	return pipeline.Run(ctx)
}
