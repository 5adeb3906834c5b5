package domain

import "errors"

// Sentinel errors used across all layers.
var (
	// ErrNotFound marks lookups of words the lexicon was not built with.
	ErrNotFound = errors.New("not found")

	// ErrInputNotFound is returned when the source text file is missing or
	// unreadable. Fatal before any pipeline stage runs.
	ErrInputNotFound = errors.New("input file not found")

	// ErrTaggerUnavailable is returned when the tagging capability (model,
	// lemma dictionary, or tagging sidecar) cannot be initialized. Fatal,
	// reported once, never retried.
	ErrTaggerUnavailable = errors.New("tagging resources unavailable")

	// ErrTranslationUnavailable is returned when the translation backend is
	// unreachable for the whole run, as opposed to individual words coming
	// back without an answer. Fatal.
	ErrTranslationUnavailable = errors.New("translation service unavailable")
)
