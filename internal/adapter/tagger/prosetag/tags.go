package prosetag

import "github.com/heartmarshall/lexikon/internal/domain"

// universalTags maps the Penn Treebank tags the prose model emits to the
// universal inventory the filter's exclusion set is defined over.
var universalTags = map[string]domain.PartOfSpeech{
	"CC":   domain.PartOfSpeechCoordinatingConjunction,
	"CD":   domain.PartOfSpeechNumeral,
	"DT":   domain.PartOfSpeechDeterminer,
	"EX":   domain.PartOfSpeechPronoun,
	"FW":   domain.PartOfSpeechOther,
	"IN":   domain.PartOfSpeechAdposition,
	"JJ":   domain.PartOfSpeechAdjective,
	"JJR":  domain.PartOfSpeechAdjective,
	"JJS":  domain.PartOfSpeechAdjective,
	"LS":   domain.PartOfSpeechOther,
	"MD":   domain.PartOfSpeechAuxiliary,
	"NN":   domain.PartOfSpeechNoun,
	"NNP":  domain.PartOfSpeechProperNoun,
	"NNPS": domain.PartOfSpeechProperNoun,
	"NNS":  domain.PartOfSpeechNoun,
	"PDT":  domain.PartOfSpeechDeterminer,
	"POS":  domain.PartOfSpeechParticle,
	"PRP":  domain.PartOfSpeechPronoun,
	"PRP$": domain.PartOfSpeechPronoun,
	"RB":   domain.PartOfSpeechAdverb,
	"RBR":  domain.PartOfSpeechAdverb,
	"RBS":  domain.PartOfSpeechAdverb,
	"RP":   domain.PartOfSpeechParticle,
	"SYM":  domain.PartOfSpeechSymbol,
	"TO":   domain.PartOfSpeechParticle,
	"UH":   domain.PartOfSpeechInterjection,
	"VB":   domain.PartOfSpeechVerb,
	"VBD":  domain.PartOfSpeechVerb,
	"VBG":  domain.PartOfSpeechVerb,
	"VBN":  domain.PartOfSpeechVerb,
	"VBP":  domain.PartOfSpeechVerb,
	"VBZ":  domain.PartOfSpeechVerb,
	"WDT":  domain.PartOfSpeechDeterminer,
	"WP":   domain.PartOfSpeechPronoun,
	"WP$":  domain.PartOfSpeechPronoun,
	"WRB":  domain.PartOfSpeechAdverb,

	"(":  domain.PartOfSpeechPunctuation,
	")":  domain.PartOfSpeechPunctuation,
	",":  domain.PartOfSpeechPunctuation,
	":":  domain.PartOfSpeechPunctuation,
	".":  domain.PartOfSpeechPunctuation,
	"''": domain.PartOfSpeechPunctuation,
	"``": domain.PartOfSpeechPunctuation,
	"#":  domain.PartOfSpeechSymbol,
	"$":  domain.PartOfSpeechSymbol,
}

// universalTag resolves a Penn tag; anything unmapped is unclassified.
func universalTag(penn string) domain.PartOfSpeech {
	if pos, ok := universalTags[penn]; ok {
		return pos
	}
	return domain.PartOfSpeechOther
}
