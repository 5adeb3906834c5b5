// Package language bundles the per-language resources the pipeline depends
// on: the alphabet, casing and collation rules, the stop-word list, and the
// lemma dictionary. A Language is constructed once per run and passed into
// the stages that need it.
package language

import (
	"fmt"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/aaaton/golem/v4/dicts/es"
	"github.com/aaaton/golem/v4/dicts/fr"
	"github.com/aaaton/golem/v4/dicts/sv"
	"github.com/kljensen/snowball/english"
	"github.com/kljensen/snowball/french"
	"github.com/kljensen/snowball/spanish"
	"github.com/kljensen/snowball/swedish"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	xlang "golang.org/x/text/language"
)

// Lowercase letters of each supported alphabet, diacritics included.
const (
	alphabetEnglish = "abcdefghijklmnopqrstuvwxyz"
	alphabetFrench  = "abcdefghijklmnopqrstuvwxyzäàâçéèêëîïôöûùüÿñæœß"
	alphabetSpanish = "abcdefghijklmnopqrstuvwxyzáéíóúüñ"
	alphabetSwedish = "abcdefghijklmnopqrstuvwxyzåäöé"
)

// Language holds the per-language resources for one pipeline run.
type Language struct {
	Code string
	Tag  xlang.Tag

	alphabet map[rune]struct{}
	// One-letter words that may enter the lexicon. Every other single
	// letter is an elision fragment or stray noise after normalization.
	keptSingles   map[rune]struct{}
	isStop        func(string) bool
	newLemmatizer func() (*golem.Lemmatizer, error)
}

// Load resolves an ISO 639-1 code to the language's resources. Codes are
// matched case-insensitively.
func Load(code string) (*Language, error) {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "en":
		return &Language{
			Code:          "en",
			Tag:           xlang.English,
			alphabet:      runeSet(alphabetEnglish),
			keptSingles:   runeSet("ai"),
			isStop:        english.IsStopWord,
			newLemmatizer: func() (*golem.Lemmatizer, error) { return golem.New(en.New()) },
		}, nil
	case "es":
		return &Language{
			Code:          "es",
			Tag:           xlang.Spanish,
			alphabet:      runeSet(alphabetSpanish),
			keptSingles:   runeSet("yoaue"),
			isStop:        spanish.IsStopWord,
			newLemmatizer: func() (*golem.Lemmatizer, error) { return golem.New(es.New()) },
		}, nil
	case "fr":
		return &Language{
			Code:          "fr",
			Tag:           xlang.French,
			alphabet:      runeSet(alphabetFrench),
			keptSingles:   runeSet("yaàôç"),
			isStop:        french.IsStopWord,
			newLemmatizer: func() (*golem.Lemmatizer, error) { return golem.New(fr.New()) },
		}, nil
	case "sv":
		return &Language{
			Code:          "sv",
			Tag:           xlang.Swedish,
			alphabet:      runeSet(alphabetSwedish),
			keptSingles:   runeSet("iåö"),
			isStop:        swedish.IsStopWord,
			newLemmatizer: func() (*golem.Lemmatizer, error) { return golem.New(sv.New()) },
		}, nil
	}
	return nil, fmt.Errorf("unsupported source language %q", code)
}

// Supported lists the source language codes Load accepts.
func Supported() []string {
	return []string{"en", "es", "fr", "sv"}
}

// IsLetter reports whether the rune belongs to the language's alphabet.
// Only lowercase forms are members; input is expected to be normalized.
func (l *Language) IsLetter(r rune) bool {
	_, ok := l.alphabet[r]
	return ok
}

// Lower folds text to lowercase under the language's casing rules. Casers
// are stateful, so one is built per call.
func (l *Language) Lower(text string) string {
	return cases.Lower(l.Tag).String(text)
}

// Collator returns the language's collator. Collators carry internal
// buffers, so each caller gets its own.
func (l *Language) Collator() *collate.Collator {
	return collate.New(l.Tag)
}

// IsStopWord reports whether the surface form is in the language's
// stop-word list. Matching is exact and expects lowercase input.
func (l *Language) IsStopWord(word string) bool {
	return l.isStop(word)
}

// Lemmatizer builds the language's lemma dictionary.
func (l *Language) Lemmatizer() (*golem.Lemmatizer, error) {
	return l.newLemmatizer()
}

// ValidBaseForm reports whether a word may enter the lexicon: non-empty,
// alphabet letters only, and either longer than one rune or on the
// language's list of real one-letter words.
func (l *Language) ValidBaseForm(word string) bool {
	if word == "" {
		return false
	}
	runes := []rune(word)
	for _, r := range runes {
		if !l.IsLetter(r) {
			return false
		}
	}
	if len(runes) > 1 {
		return true
	}
	_, kept := l.keptSingles[runes[0]]
	return kept
}

func runeSet(letters string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(letters))
	for _, r := range letters {
		set[r] = struct{}{}
	}
	return set
}
