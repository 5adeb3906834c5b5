// Package render formats the resolved lexicon as plain text and writes
// it out.
package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/heartmarshall/lexikon/internal/domain"
)

// Format renders one line per sense, entries in lexicon order. Per-word
// mode carries the part of speech, batch mode does not, mirroring what
// each backend shape can actually provide.
func Format(lex *domain.Lexicon, mode domain.TranslationMode) string {
	var b strings.Builder
	for _, entry := range lex.Entries() {
		for _, sense := range entry.Senses {
			switch mode {
			case domain.TranslationModeBatch:
				fmt.Fprintf(&b, "%s - %s\n", entry.Source, sense.Target)
			default:
				fmt.Fprintf(&b, "%s (%s) - %s\n", entry.Source, sense.PartOfSpeech, sense.Target)
			}
		}
	}
	return b.String()
}

// FormatWords renders the bare word list, one word per line.
func FormatWords(words []domain.BaseForm) string {
	var b strings.Builder
	for _, word := range words {
		b.WriteString(word.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Write stores content at path in one go. Zero entries still produce the
// file, just empty.
func Write(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
