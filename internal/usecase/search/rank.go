package search

import (
	"sort"

	"github.com/kailas-cloud/reasoner/internal/domain/search/result"
)

// scorePlaces is the rounding applied to ranker scores at the output boundary.
const scorePlaces = 4

// rankTop orders hits by score descending, keeping corpus order among equal
// scores, truncates to topK and rounds scores. With dropZero set, hits that
// score 0 are removed. Comparisons use full precision.
func rankTop(hits []result.Result, topK int, dropZero bool) []result.Result {
	if topK <= 0 {
		return []result.Result{}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score() > hits[j].Score()
	})

	if len(hits) > topK {
		hits = hits[:topK]
	}

	out := make([]result.Result, 0, len(hits))
	for i := range hits {
		if dropZero && hits[i].Score() <= 0 {
			continue
		}
		out = append(out, hits[i].Rounded(scorePlaces))
	}
	return out
}
