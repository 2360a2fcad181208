package search

import (
	"context"
	"math"
	"testing"

	"github.com/kailas-cloud/reasoner/internal/domain/corpus"
)

func TestSemantic_DefaultCorpus(t *testing.T) {
	r := NewSemantic(corpus.Default())

	if r.Vocabulary().Len() != 96 {
		t.Fatalf("vocabulary size = %d, want 96", r.Vocabulary().Len())
	}

	hits := r.Search("neural networks and deep learning", 3)
	if len(hits) != 3 {
		t.Fatalf("expected 3 hits, got %d", len(hits))
	}

	wantIdx := []int{1, 6, 4}
	wantScore := []float64{0.5394, 0.4243, 0.2697}
	for i := range hits {
		if hits[i].Index() != wantIdx[i] {
			t.Errorf("hit %d: index %d, want %d", i, hits[i].Index(), wantIdx[i])
		}
		if hits[i].Score() != wantScore[i] {
			t.Errorf("hit %d: score %v, want %v", i, hits[i].Score(), wantScore[i])
		}
	}
}

func TestSemantic_SelfSimilarity(t *testing.T) {
	c := corpus.Default()
	r := NewSemantic(c)

	for _, d := range c.Documents() {
		hits := r.Search(d.Text(), 1)
		if len(hits) != 1 {
			t.Fatalf("no hit for %q", d.Text())
		}
		if hits[0].Index() != d.Index() {
			t.Errorf("doc %d: top hit is %d", d.Index(), hits[0].Index())
		}
		if math.Abs(hits[0].Score()-1) > 1e-4 {
			t.Errorf("doc %d: self score %v, want 1", d.Index(), hits[0].Score())
		}
	}
}

func TestSemantic_ZeroScoresKeepCorpusOrder(t *testing.T) {
	r := NewSemantic(corpus.Default())

	hits := r.Search("", 3)
	if len(hits) != 3 {
		t.Fatalf("expected 3 zero-score hits, got %d", len(hits))
	}
	for i := range hits {
		if hits[i].Score() != 0 {
			t.Errorf("hit %d score %v, want 0", i, hits[i].Score())
		}
		if hits[i].Index() != i {
			t.Errorf("hit %d index %d, want corpus order", i, hits[i].Index())
		}
	}
}

func TestSemantic_StableTies(t *testing.T) {
	c := corpus.New([]string{"alpha beta", "gamma delta", "alpha beta"})
	r := NewSemantic(c)

	hits := r.Search("alpha beta", 3)
	if hits[0].Index() != 0 || hits[1].Index() != 2 {
		t.Errorf("tied hits out of corpus order: %d, %d", hits[0].Index(), hits[1].Index())
	}
	if hits[2].Score() != 0 {
		t.Errorf("unrelated doc score = %v", hits[2].Score())
	}
}

func TestSemantic_UnknownQueryTerms(t *testing.T) {
	r := NewSemantic(corpus.Default())
	for _, h := range r.Search("xylophone zeppelin", 12) {
		if h.Score() != 0 {
			t.Errorf("doc %d scored %v for out-of-vocabulary query", h.Index(), h.Score())
		}
	}
}

func TestSemantic_TopKBounds(t *testing.T) {
	r := NewSemantic(corpus.Default())

	if got := r.Search("computing", 0); len(got) != 0 {
		t.Errorf("topK=0 returned %d hits", len(got))
	}
	if got := r.Search("computing", 100); len(got) != 12 {
		t.Errorf("topK above corpus size returned %d hits, want 12", len(got))
	}
}

func TestSemantic_EmptyCorpus(t *testing.T) {
	r := NewSemantic(corpus.New(nil))
	if got := r.Search("anything", 3); len(got) != 0 {
		t.Errorf("empty corpus returned %d hits", len(got))
	}
}

func TestSemantic_ScoresInRange(t *testing.T) {
	r := NewSemantic(corpus.Default())
	queries := []string{"", "quantum", "!!!", "data data data science", "the of a"}
	for _, q := range queries {
		for _, h := range r.Search(q, 12) {
			if h.Score() < 0 || h.Score() > 1 || math.IsNaN(h.Score()) {
				t.Errorf("query %q: score %v out of range", q, h.Score())
			}
		}
	}
}

func TestSemantic_Counts(t *testing.T) {
	r := NewSemantic(corpus.Default())
	if got := r.DocumentCount(context.Background()); got != 12 {
		t.Errorf("DocumentCount = %d, want 12", got)
	}
	if got := r.VocabularySize(context.Background()); got != 96 {
		t.Errorf("VocabularySize = %d, want 96", got)
	}
}
