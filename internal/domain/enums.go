package domain

// FilterStrategy selects how candidate words are extracted from the
// normalized text.
type FilterStrategy string

const (
	// FilterStrategyStopword keeps lowercase surface forms and drops exact
	// stop-word matches. No lemmatization.
	FilterStrategyStopword FilterStrategy = "stopword"
	// FilterStrategyTagBased runs a part-of-speech tagger and keeps lemmas
	// of content words.
	FilterStrategyTagBased FilterStrategy = "tagbased"
)

func (s FilterStrategy) String() string { return string(s) }

func (s FilterStrategy) IsValid() bool {
	switch s {
	case FilterStrategyStopword, FilterStrategyTagBased:
		return true
	}
	return false
}

// TranslationMode selects how base forms reach the translation backend.
type TranslationMode string

const (
	// TranslationModePerWord issues one request per word and keeps every
	// sense the backend returns.
	TranslationModePerWord TranslationMode = "perword"
	// TranslationModeBatch sends all words in a single request and aligns
	// translations by position.
	TranslationModeBatch TranslationMode = "batch"
)

func (m TranslationMode) String() string { return string(m) }

func (m TranslationMode) IsValid() bool {
	switch m {
	case TranslationModePerWord, TranslationModeBatch:
		return true
	}
	return false
}

// TaggerEngine selects the tagging implementation behind the tag-based
// filter.
type TaggerEngine string

const (
	TaggerEngineEmbedded TaggerEngine = "embedded"
	TaggerEngineSpacyd   TaggerEngine = "spacyd"
)

func (e TaggerEngine) String() string { return string(e) }

func (e TaggerEngine) IsValid() bool {
	switch e {
	case TaggerEngineEmbedded, TaggerEngineSpacyd:
		return true
	}
	return false
}

// PartOfSpeech is a universal part-of-speech tag as produced by the taggers.
// The set follows the Universal Dependencies inventory plus the SPACE tag
// some engines emit for whitespace tokens.
type PartOfSpeech string

const (
	PartOfSpeechAdjective                PartOfSpeech = "ADJ"
	PartOfSpeechAdposition               PartOfSpeech = "ADP"
	PartOfSpeechAdverb                   PartOfSpeech = "ADV"
	PartOfSpeechAuxiliary                PartOfSpeech = "AUX"
	PartOfSpeechCoordinatingConjunction  PartOfSpeech = "CCONJ"
	PartOfSpeechDeterminer               PartOfSpeech = "DET"
	PartOfSpeechInterjection             PartOfSpeech = "INTJ"
	PartOfSpeechNoun                     PartOfSpeech = "NOUN"
	PartOfSpeechNumeral                  PartOfSpeech = "NUM"
	PartOfSpeechParticle                 PartOfSpeech = "PART"
	PartOfSpeechPronoun                  PartOfSpeech = "PRON"
	PartOfSpeechProperNoun               PartOfSpeech = "PROPN"
	PartOfSpeechPunctuation              PartOfSpeech = "PUNCT"
	PartOfSpeechSpace                    PartOfSpeech = "SPACE"
	PartOfSpeechSubordinatingConjunction PartOfSpeech = "SCONJ"
	PartOfSpeechSymbol                   PartOfSpeech = "SYM"
	PartOfSpeechVerb                     PartOfSpeech = "VERB"
	PartOfSpeechOther                    PartOfSpeech = "X"
)

func (p PartOfSpeech) String() string { return string(p) }

func (p PartOfSpeech) IsValid() bool {
	switch p {
	case PartOfSpeechAdjective, PartOfSpeechAdposition, PartOfSpeechAdverb,
		PartOfSpeechAuxiliary, PartOfSpeechCoordinatingConjunction,
		PartOfSpeechDeterminer, PartOfSpeechInterjection, PartOfSpeechNoun,
		PartOfSpeechNumeral, PartOfSpeechParticle, PartOfSpeechPronoun,
		PartOfSpeechProperNoun, PartOfSpeechPunctuation, PartOfSpeechSpace,
		PartOfSpeechSubordinatingConjunction, PartOfSpeechSymbol,
		PartOfSpeechVerb, PartOfSpeechOther:
		return true
	}
	return false
}
