package config

import (
	"time"

	"github.com/heartmarshall/lexikon/internal/domain"
)

// Config is the root pipeline configuration.
type Config struct {
	Input     InputConfig     `yaml:"input"`
	Pipeline  PipelineConfig  `yaml:"pipeline"`
	Output    OutputConfig    `yaml:"output"`
	Translate TranslateConfig `yaml:"translate"`
	Tagger    TaggerConfig    `yaml:"tagger"`
	Log       LogConfig       `yaml:"log"`
}

// InputConfig locates the source text and names the language pair.
type InputConfig struct {
	Filename       string `yaml:"filename"        env:"INPUT_FILENAME"`
	SourceLanguage string `yaml:"source_language" env:"INPUT_SOURCE_LANGUAGE" env-default:"fr"`
	TargetLanguage string `yaml:"target_language" env:"INPUT_TARGET_LANGUAGE" env-default:"en"`
}

// PipelineConfig selects the filtering and resolution variants.
type PipelineConfig struct {
	FilterStrategy  string `yaml:"filter_strategy"  env:"PIPELINE_FILTER_STRATEGY"  env-default:"stopword"`
	TranslationMode string `yaml:"translation_mode" env:"PIPELINE_TRANSLATION_MODE" env-default:"perword"`
	TaggerEngine    string `yaml:"tagger_engine"    env:"PIPELINE_TAGGER_ENGINE"    env-default:"embedded"`
}

// OutputConfig holds the output file paths. WordsPath is optional; when
// set, the deduplicated word list is written there before translation.
type OutputConfig struct {
	Path      string `yaml:"path"       env:"OUTPUT_PATH" env-default:"lexicon_output.txt"`
	WordsPath string `yaml:"words_path" env:"OUTPUT_WORDS_PATH"`
}

// TranslateConfig holds translation backend settings. Empty base URLs
// mean the clients' public endpoints.
type TranslateConfig struct {
	GTXBaseURL     string        `yaml:"gtx_base_url"    env:"TRANSLATE_GTX_BASE_URL"`
	GCloudBaseURL  string        `yaml:"gcloud_base_url" env:"TRANSLATE_GCLOUD_BASE_URL"`
	ProjectID      string        `yaml:"project_id"      env:"TRANSLATE_PROJECT_ID"`
	APIKey         string        `yaml:"api_key"         env:"TRANSLATE_API_KEY"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"TRANSLATE_REQUEST_TIMEOUT" env-default:"10s"`
	Workers        int           `yaml:"workers"         env:"TRANSLATE_WORKERS"         env-default:"4"`
}

// TaggerConfig holds spaCy sidecar settings, used only when the tagger
// engine is spacyd.
type TaggerConfig struct {
	SpacydBaseURL string `yaml:"spacyd_base_url" env:"TAGGER_SPACYD_BASE_URL"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// FilterStrategy returns the configured filter strategy as its domain type.
func (c *Config) FilterStrategy() domain.FilterStrategy {
	return domain.FilterStrategy(c.Pipeline.FilterStrategy)
}

// TranslationMode returns the configured translation mode as its domain type.
func (c *Config) TranslationMode() domain.TranslationMode {
	return domain.TranslationMode(c.Pipeline.TranslationMode)
}

// TaggerEngine returns the configured tagger engine as its domain type.
func (c *Config) TaggerEngine() domain.TaggerEngine {
	return domain.TaggerEngine(c.Pipeline.TaggerEngine)
}
