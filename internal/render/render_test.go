package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/heartmarshall/lexikon/internal/domain"
)

func TestFormat_PerWord(t *testing.T) {
	t.Parallel()

	lex := domain.NewLexicon([]domain.BaseForm{"chat", "souris", "voler"})
	if err := lex.Attach("chat", domain.Resolved(domain.Sense{PartOfSpeech: "noun", Target: "cat"})); err != nil {
		t.Fatalf("Attach(chat): %v", err)
	}
	if err := lex.Attach("voler", domain.Resolved(
		domain.Sense{PartOfSpeech: "VERB", Target: "to fly"},
		domain.Sense{PartOfSpeech: "VERB", Target: "to steal"},
	)); err != nil {
		t.Fatalf("Attach(voler): %v", err)
	}

	got := Format(lex, domain.TranslationModePerWord)
	want := "chat (noun) - cat\n" +
		"souris (?) - ???\n" +
		"voler (VERB) - to fly\n" +
		"voler (VERB) - to steal\n"
	if got != want {
		t.Errorf("Format() =\n%q\nwant\n%q", got, want)
	}
}

func TestFormat_Batch(t *testing.T) {
	t.Parallel()

	lex := domain.NewLexicon([]domain.BaseForm{"chat", "souris"})
	if err := lex.Attach("chat", domain.Resolved(domain.Sense{PartOfSpeech: domain.SentinelPartOfSpeech, Target: "cat"})); err != nil {
		t.Fatalf("Attach(chat): %v", err)
	}
	if err := lex.Attach("souris", domain.Resolved(domain.Sense{PartOfSpeech: domain.SentinelPartOfSpeech, Target: "mouse"})); err != nil {
		t.Fatalf("Attach(souris): %v", err)
	}

	got := Format(lex, domain.TranslationModeBatch)
	want := "chat - cat\nsouris - mouse\n"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestFormat_BatchSentinel(t *testing.T) {
	t.Parallel()

	lex := domain.NewLexicon([]domain.BaseForm{"xyzzy"})

	got := Format(lex, domain.TranslationModeBatch)
	want := "xyzzy - ???\n"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestFormat_Empty(t *testing.T) {
	t.Parallel()

	lex := domain.NewLexicon(nil)

	if got := Format(lex, domain.TranslationModePerWord); got != "" {
		t.Errorf("Format() = %q, want empty", got)
	}
}

func TestFormatWords(t *testing.T) {
	t.Parallel()

	got := FormatWords([]domain.BaseForm{"chat", "souris"})
	want := "chat\nsouris\n"
	if got != want {
		t.Errorf("FormatWords() = %q, want %q", got, want)
	}

	if got := FormatWords(nil); got != "" {
		t.Errorf("FormatWords(nil) = %q, want empty", got)
	}
}

func TestWrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "lexicon_output.txt")

	if err := Write(path, "chat (noun) - cat\n"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "chat (noun) - cat\n" {
		t.Errorf("content = %q, want %q", data, "chat (noun) - cat\n")
	}
}

func TestWrite_EmptyContentStillCreatesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "lexicon_output.txt")

	if err := Write(path, ""); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("size = %d, want 0", info.Size())
	}
}

func TestWrite_BadPath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "lexicon_output.txt")

	if err := Write(path, "x"); err == nil {
		t.Error("Write() error = nil, want error for missing directory")
	}
}
