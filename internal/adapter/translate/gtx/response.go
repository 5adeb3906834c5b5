package gtx

import (
	"encoding/json"
	"fmt"

	"github.com/heartmarshall/lexikon/internal/domain"
)

// The gtx endpoint answers with positional JSON arrays instead of objects.
// With dt=t and dt=bd the top-level array looks like:
//
//	[
//	  [["cat","chat",null,null,1]],                  // flat translation
//	  [["noun",["cat","puss"],...],["verb",[...]]],  // dictionary section
//	  "fr",
//	  ...
//	]
//
// Index 1 holds the dictionary section; each block there starts with the
// part-of-speech label followed by the list of target terms. The section
// is null for words the service has no dictionary data for.

// parseSenses extracts every (part of speech, term) pair from the
// dictionary section. A missing or null section yields no senses.
func parseSenses(body []byte) ([]domain.Sense, error) {
	var sections []json.RawMessage
	if err := json.Unmarshal(body, &sections); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if len(sections) < 2 || string(sections[1]) == "null" {
		return nil, nil
	}

	var blocks [][]json.RawMessage
	if err := json.Unmarshal(sections[1], &blocks); err != nil {
		return nil, fmt.Errorf("decode dict section: %w", err)
	}

	var senses []domain.Sense
	for _, block := range blocks {
		if len(block) < 2 {
			continue
		}

		var pos string
		if err := json.Unmarshal(block[0], &pos); err != nil {
			continue
		}

		var terms []string
		if err := json.Unmarshal(block[1], &terms); err != nil {
			continue
		}

		for _, term := range terms {
			if term == "" {
				continue
			}
			senses = append(senses, domain.Sense{PartOfSpeech: pos, Target: term})
		}
	}

	return senses, nil
}
