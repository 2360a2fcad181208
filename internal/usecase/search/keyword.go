package search

import (
	"github.com/kailas-cloud/reasoner/internal/domain/corpus"
	"github.com/kailas-cloud/reasoner/internal/domain/search/result"
	"github.com/kailas-cloud/reasoner/internal/domain/termvec"
)

// KeywordRanker ranks documents by the fraction of query tokens they contain.
type KeywordRanker struct {
	docs      []corpus.Document
	tokenSets []map[string]struct{}
}

// NewKeyword tokenizes every document of c once.
func NewKeyword(c corpus.Corpus) *KeywordRanker {
	docs := c.Documents()

	sets := make([]map[string]struct{}, len(docs))
	for i, d := range docs {
		toks := termvec.KeywordTokens(d.Text())
		set := make(map[string]struct{}, len(toks))
		for _, t := range toks {
			set[t] = struct{}{}
		}
		sets[i] = set
	}

	return &KeywordRanker{docs: docs, tokenSets: sets}
}

// Search returns up to topK documents with a positive overlap score.
//
// Every query token occurrence found in a document counts once, so repeated
// query tokens count repeatedly while repeated document tokens do not.
// The score is matches / max(len(queryTokens), 1).
func (r *KeywordRanker) Search(query string, topK int) []result.Result {
	qTokens := termvec.KeywordTokens(query)
	denom := float64(max(len(qTokens), 1))

	hits := make([]result.Result, len(r.docs))
	for i, d := range r.docs {
		matches := 0
		for _, t := range qTokens {
			if _, ok := r.tokenSets[i][t]; ok {
				matches++
			}
		}
		hits[i] = result.New(d.Index(), d.Text(), float64(matches)/denom)
	}

	return rankTop(hits, topK, true)
}
