package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/heartmarshall/lexikon/internal/domain"
	"github.com/heartmarshall/lexikon/internal/language"
)

// Validate performs business-rule validation on the assembled
// configuration. Call it after any command-line overrides are applied.
func (c *Config) Validate() error {
	if c.Input.Filename == "" {
		return fmt.Errorf("input.filename is required")
	}
	if !slices.Contains(language.Supported(), c.Input.SourceLanguage) {
		return fmt.Errorf("input.source_language %q is not supported (supported: %s)",
			c.Input.SourceLanguage, strings.Join(language.Supported(), ", "))
	}
	if c.Input.TargetLanguage == "" {
		return fmt.Errorf("input.target_language is required")
	}

	if !c.FilterStrategy().IsValid() {
		return fmt.Errorf("pipeline.filter_strategy %q is invalid (want %s or %s)",
			c.Pipeline.FilterStrategy, domain.FilterStrategyStopword, domain.FilterStrategyTagBased)
	}
	if !c.TranslationMode().IsValid() {
		return fmt.Errorf("pipeline.translation_mode %q is invalid (want %s or %s)",
			c.Pipeline.TranslationMode, domain.TranslationModePerWord, domain.TranslationModeBatch)
	}
	if !c.TaggerEngine().IsValid() {
		return fmt.Errorf("pipeline.tagger_engine %q is invalid (want %s or %s)",
			c.Pipeline.TaggerEngine, domain.TaggerEngineEmbedded, domain.TaggerEngineSpacyd)
	}

	if c.Output.Path == "" {
		return fmt.Errorf("output.path is required")
	}

	if c.TranslationMode() == domain.TranslationModeBatch && c.Translate.ProjectID == "" {
		return fmt.Errorf("translate.project_id is required in batch mode")
	}
	if c.Translate.RequestTimeout <= 0 {
		return fmt.Errorf("translate.request_timeout must be > 0 (got %v)", c.Translate.RequestTimeout)
	}
	if c.Translate.Workers < 0 {
		return fmt.Errorf("translate.workers must be >= 0 (got %d)", c.Translate.Workers)
	}

	return nil
}
