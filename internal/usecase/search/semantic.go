package search

import (
	"context"

	"github.com/kailas-cloud/reasoner/internal/domain/corpus"
	"github.com/kailas-cloud/reasoner/internal/domain/search/result"
	"github.com/kailas-cloud/reasoner/internal/domain/termvec"
)

// SemanticRanker ranks documents by cosine similarity of term-frequency vectors.
// The vocabulary and document vectors are built once; Search only reads them.
type SemanticRanker struct {
	docs    []corpus.Document
	vocab   *termvec.Vocabulary
	vectors []termvec.Vector
}

// NewSemantic builds the vocabulary of c and vectorizes every document.
func NewSemantic(c corpus.Corpus) *SemanticRanker {
	docs := c.Documents()
	vocab := termvec.BuildVocabulary(c.Texts())

	vectors := make([]termvec.Vector, len(docs))
	for i, d := range docs {
		vectors[i] = vocab.Vectorize(d.Text())
	}

	return &SemanticRanker{docs: docs, vocab: vocab, vectors: vectors}
}

// Vocabulary returns the corpus vocabulary.
func (r *SemanticRanker) Vocabulary() *termvec.Vocabulary { return r.vocab }

// DocumentCount returns the number of ranked documents.
func (r *SemanticRanker) DocumentCount(_ context.Context) int { return len(r.docs) }

// VocabularySize returns the number of vector dimensions.
func (r *SemanticRanker) VocabularySize(_ context.Context) int { return r.vocab.Len() }

// Search returns up to topK documents ordered by similarity to query.
// Scores are clamped at 0; zero-score hits are kept.
func (r *SemanticRanker) Search(query string, topK int) []result.Result {
	q := r.vocab.Vectorize(query)

	hits := make([]result.Result, len(r.docs))
	for i, d := range r.docs {
		sim := termvec.Cosine(q, r.vectors[i])
		hits[i] = result.New(d.Index(), d.Text(), max(0, sim))
	}

	return rankTop(hits, topK, false)
}
