package search

import (
	"testing"

	"github.com/kailas-cloud/reasoner/internal/domain/corpus"
)

func TestKeyword_DefaultCorpus(t *testing.T) {
	r := NewKeyword(corpus.Default())

	hits := r.Search("cloud computing resources", 3)
	if len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(hits))
	}
	if hits[0].Index() != 8 || hits[0].Score() != 1 {
		t.Errorf("top hit = (%d, %v), want (8, 1)", hits[0].Index(), hits[0].Score())
	}
	if hits[1].Index() != 11 || hits[1].Score() != 0.3333 {
		t.Errorf("second hit = (%d, %v), want (11, 0.3333)", hits[1].Index(), hits[1].Score())
	}
}

func TestKeyword_IdenticalQueryScoresOne(t *testing.T) {
	c := corpus.Default()
	r := NewKeyword(c)

	for _, d := range c.Documents() {
		hits := r.Search(d.Text(), 1)
		if len(hits) != 1 || hits[0].Index() != d.Index() || hits[0].Score() != 1 {
			t.Errorf("doc %d: got %+v, want self with score 1", d.Index(), hits)
		}
	}
}

func TestKeyword_NoZeroScores(t *testing.T) {
	r := NewKeyword(corpus.Default())

	for _, q := range []string{"blockchain", "zzz", "the", "a b c", "quantum leverages"} {
		for _, h := range r.Search(q, 12) {
			if h.Score() <= 0 {
				t.Errorf("query %q returned zero-score hit %d", q, h.Index())
			}
		}
	}
}

func TestKeyword_EmptyQuery(t *testing.T) {
	r := NewKeyword(corpus.Default())
	if got := r.Search("", 3); len(got) != 0 {
		t.Errorf("empty query returned %d hits", len(got))
	}
}

func TestKeyword_RepeatedQueryTokens(t *testing.T) {
	r := NewKeyword(corpus.New([]string{"go go gophers", "rust crabs"}))

	// Two of three query tokens ("go" twice) are in doc 0; "fast" is not.
	hits := r.Search("go go fast", 3)
	if len(hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(hits))
	}
	if hits[0].Score() != 0.6667 {
		t.Errorf("score = %v, want 0.6667", hits[0].Score())
	}
}

func TestKeyword_StableTiesAndTruncation(t *testing.T) {
	r := NewKeyword(corpus.Default())

	hits := r.Search("what is quantum computing", 3)
	if len(hits) != 3 {
		t.Fatalf("expected 3 hits, got %d", len(hits))
	}
	want := []struct {
		idx   int
		score float64
	}{{11, 0.5}, {0, 0.25}, {8, 0.25}}
	for i, w := range want {
		if hits[i].Index() != w.idx || hits[i].Score() != w.score {
			t.Errorf("hit %d = (%d, %v), want (%d, %v)", i, hits[i].Index(), hits[i].Score(), w.idx, w.score)
		}
	}
}

func TestKeyword_ShortTokensCount(t *testing.T) {
	r := NewKeyword(corpus.New([]string{"AI is a field", "nothing here"}))
	hits := r.Search("ai", 3)
	if len(hits) != 1 || hits[0].Index() != 0 || hits[0].Score() != 1 {
		t.Errorf("got %+v, want doc 0 with score 1", hits)
	}
}
