package domain

import (
	"errors"
	"testing"
)

func TestResolved_EmptyIsUnresolved(t *testing.T) {
	t.Parallel()

	if Resolved().IsResolved() {
		t.Error("Resolved() with no senses should be unresolved")
	}
	if Unresolved().IsResolved() {
		t.Error("Unresolved().IsResolved() = true")
	}

	res := Resolved(Sense{PartOfSpeech: "noun", Target: "cat"})
	if !res.IsResolved() {
		t.Error("Resolved(one sense).IsResolved() = false")
	}
}

func TestResolved_KeepsSenseOrder(t *testing.T) {
	t.Parallel()

	res := Resolved(
		Sense{PartOfSpeech: "verb", Target: "to fly"},
		Sense{PartOfSpeech: "verb", Target: "to steal"},
	)

	senses := res.Senses()
	if len(senses) != 2 {
		t.Fatalf("expected 2 senses, got %d", len(senses))
	}
	if senses[0].Target != "to fly" || senses[1].Target != "to steal" {
		t.Errorf("sense order not preserved: %v", senses)
	}
}

func TestSentinelSense(t *testing.T) {
	t.Parallel()

	s := SentinelSense()
	if s.PartOfSpeech != "?" || s.Target != "???" {
		t.Errorf("SentinelSense() = %+v, want {? ???}", s)
	}
	if !s.IsSentinel() {
		t.Error("SentinelSense().IsSentinel() = false")
	}
	if (Sense{PartOfSpeech: "noun", Target: "cat"}).IsSentinel() {
		t.Error("real sense reported as sentinel")
	}
}

func TestNewLexicon_FixesOrder(t *testing.T) {
	t.Parallel()

	words := []BaseForm{"chat", "manger", "souris"}
	lex := NewLexicon(words)

	if lex.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", lex.Len())
	}
	got := lex.Words()
	for i, w := range words {
		if got[i] != w {
			t.Errorf("Words()[%d] = %q, want %q", i, got[i], w)
		}
	}

	// Mutating the input slice must not change the lexicon.
	words[0] = "zèbre"
	if lex.Words()[0] != "chat" {
		t.Error("lexicon order aliased the input slice")
	}
}

func TestLexicon_AttachUnknownWord(t *testing.T) {
	t.Parallel()

	lex := NewLexicon([]BaseForm{"chat"})

	err := lex.Attach("souris", Resolved(Sense{PartOfSpeech: "noun", Target: "mouse"}))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Attach(unknown) error = %v, want ErrNotFound", err)
	}
	if lex.Len() != 1 {
		t.Error("failed Attach changed the entry set")
	}
}

func TestLexicon_EntriesSentinelCompleteness(t *testing.T) {
	t.Parallel()

	lex := NewLexicon([]BaseForm{"chat", "souris", "voler"})

	if err := lex.Attach("chat", Resolved(Sense{PartOfSpeech: "noun", Target: "cat"})); err != nil {
		t.Fatalf("Attach(chat): %v", err)
	}
	if err := lex.Attach("souris", Unresolved()); err != nil {
		t.Fatalf("Attach(souris): %v", err)
	}
	// "voler" is never attached at all.

	entries := lex.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for _, e := range entries {
		if len(e.Senses) == 0 {
			t.Errorf("entry %q has no senses", e.Source)
		}
	}
	if entries[0].Senses[0].Target != "cat" {
		t.Errorf("chat sense = %+v, want cat", entries[0].Senses[0])
	}
	for _, i := range []int{1, 2} {
		if !entries[i].Senses[0].IsSentinel() {
			t.Errorf("entry %q: expected sentinel sense, got %+v", entries[i].Source, entries[i].Senses[0])
		}
		if len(entries[i].Senses) != 1 {
			t.Errorf("entry %q: expected exactly one sentinel sense, got %d", entries[i].Source, len(entries[i].Senses))
		}
	}
}

func TestLexicon_UnresolvedWords(t *testing.T) {
	t.Parallel()

	lex := NewLexicon([]BaseForm{"chat", "souris", "voler"})
	if err := lex.Attach("souris", Resolved(Sense{PartOfSpeech: "noun", Target: "mouse"})); err != nil {
		t.Fatalf("Attach: %v", err)
	}

	got := lex.UnresolvedWords()
	want := []BaseForm{"chat", "voler"}
	if len(got) != len(want) {
		t.Fatalf("UnresolvedWords() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("UnresolvedWords()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLexicon_MultiSenseEntry(t *testing.T) {
	t.Parallel()

	lex := NewLexicon([]BaseForm{"voler"})
	err := lex.Attach("voler", Resolved(
		Sense{PartOfSpeech: "verb", Target: "to fly"},
		Sense{PartOfSpeech: "verb", Target: "to steal"},
	))
	if err != nil {
		t.Fatalf("Attach: %v", err)
	}

	entries := lex.Entries()
	if len(entries) != 1 || len(entries[0].Senses) != 2 {
		t.Fatalf("unexpected entries: %+v", entries)
	}
	if entries[0].Senses[0].Target != "to fly" || entries[0].Senses[1].Target != "to steal" {
		t.Errorf("sense order lost: %+v", entries[0].Senses)
	}
}
