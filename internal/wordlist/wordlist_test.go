package wordlist

import "testing"

func TestEnglishIndexHasFullVocabulary(t *testing.T) {
	idx := EnglishIndex()
	if idx.WordCount() != Size {
		t.Fatalf("expected %d words, got %d", Size, idx.WordCount())
	}
	if idx.Language() != English {
		t.Fatalf("expected english, got %s", idx.Language())
	}
}

// Why(中文): 首、尾与校验向量用到的词必须落在固定排名上，否则位打包结果整体错位。
// Why(English): Ranks of the first, last, and test-vector words are fixed; any drift shifts every packed bit.
func TestLookupKnownRanks(t *testing.T) {
	idx := EnglishIndex()
	cases := map[string]uint16{
		"abandon": 0,
		"ability": 1,
		"about":   3,
		"zoo":     2047,
	}
	for word, want := range cases {
		got, ok := idx.Lookup(word)
		if !ok {
			t.Fatalf("expected %q to be found", word)
		}
		if got != want {
			t.Fatalf("unexpected rank for %q: got %d want %d", word, got, want)
		}
		if idx.Word(got) != word {
			t.Fatalf("expected Word(%d) = %q, got %q", got, word, idx.Word(got))
		}
	}
}

func TestLookupUnknownWord(t *testing.T) {
	idx := EnglishIndex()
	for _, w := range []string{"zzzzz", "", "Abandon", "abandon "} {
		if _, ok := idx.Lookup(w); ok {
			t.Fatalf("expected %q to be absent", w)
		}
	}
}

func TestForLanguage(t *testing.T) {
	idx, ok := For(English)
	if !ok || idx != EnglishIndex() {
		t.Fatalf("expected shared english index")
	}
	if _, ok := For(Language("klingon")); ok {
		t.Fatalf("expected unsupported language")
	}
	if got := Supported(); len(got) != 1 || got[0] != English {
		t.Fatalf("unexpected supported languages: %v", got)
	}
}
